package hledger

import (
	"encoding/json"
	"fmt"
)

// balanceShape is the result of structural classification of a balance
// report. hledger gives no discriminant field; the two encodings are told
// apart by their outer structure alone.
type balanceShape int

const (
	shapeSimple balanceShape = iota
	shapePeriodic
)

// classifyBalance decides which balance encoding a JSON value carries.
// A 2-element array whose first element is itself an array is the simple
// form; an object carrying prDates and prRows is the periodic form.
// Anything else is a hard error: guessing the wrong shape would misparse
// every amount in the report.
func classifyBalance(raw json.RawMessage) (balanceShape, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err == nil {
		if len(elems) != 2 {
			return 0, fmt.Errorf("%w: array of %d elements", ErrUnrecognizedShape, len(elems))
		}
		var accounts []json.RawMessage
		if err := json.Unmarshal(elems[0], &accounts); err != nil {
			return 0, fmt.Errorf("%w: first element is not an account list", ErrUnrecognizedShape)
		}
		return shapeSimple, nil
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err == nil {
		if _, ok := keys["prDates"]; !ok {
			return 0, fmt.Errorf("%w: object without prDates", ErrUnrecognizedShape)
		}
		if _, ok := keys["prRows"]; !ok {
			return 0, fmt.Errorf("%w: object without prRows", ErrUnrecognizedShape)
		}
		return shapePeriodic, nil
	}
	return 0, fmt.Errorf("%w: neither array nor object", ErrUnrecognizedShape)
}

// DecodeBalance decodes the output of `hledger balance --output-format
// json` into either a *SimpleBalance or a *PeriodicBalance. Row order is
// preserved exactly; it encodes hledger's canonical account ordering.
func DecodeBalance(data []byte) (BalanceReport, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, malformedJSON(err)
	}
	shape, err := classifyBalance(raw)
	if err != nil {
		return nil, err
	}
	if shape == shapeSimple {
		return decodeSimpleBalance(raw)
	}
	return decodePeriodicBalance(raw)
}

// decodeSimpleBalance decodes the [accounts, totals] pair. Each account
// entry is a positional 4-tuple: name, display name, indent, amounts.
func decodeSimpleBalance(raw json.RawMessage) (*SimpleBalance, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, malformedJSON(err)
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(elems[0], &entries); err != nil {
		return nil, malformedJSON(err)
	}
	accounts := make([]BalanceAccount, 0, len(entries))
	for _, entry := range entries {
		account, err := decodeBalanceAccount(entry)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	totals, err := decodeAmounts(elems[1])
	if err != nil {
		return nil, err
	}
	return &SimpleBalance{Accounts: accounts, Totals: totals}, nil
}

func decodeBalanceAccount(raw json.RawMessage) (BalanceAccount, error) {
	var tuple []json.RawMessage
	if err := json.Unmarshal(raw, &tuple); err != nil {
		return BalanceAccount{}, malformedJSON(err)
	}
	if len(tuple) < 4 {
		return BalanceAccount{}, fmt.Errorf("%w: account tuple of %d elements", ErrUnrecognizedShape, len(tuple))
	}
	var account BalanceAccount
	if err := json.Unmarshal(tuple[0], &account.Name); err != nil {
		return BalanceAccount{}, malformedJSON(err)
	}
	if err := json.Unmarshal(tuple[1], &account.DisplayName); err != nil {
		return BalanceAccount{}, malformedJSON(err)
	}
	if err := json.Unmarshal(tuple[2], &account.Indent); err != nil {
		return BalanceAccount{}, malformedJSON(err)
	}
	amounts, err := decodeAmounts(tuple[3])
	if err != nil {
		return BalanceAccount{}, err
	}
	account.Amounts = amounts
	return account, nil
}

type rawPeriodic struct {
	Dates  []json.RawMessage `json:"prDates"`
	Rows   []json.RawMessage `json:"prRows"`
	Totals json.RawMessage   `json:"prTotals"`
}

func decodePeriodicBalance(raw json.RawMessage) (*PeriodicBalance, error) {
	var rp rawPeriodic
	if err := json.Unmarshal(raw, &rp); err != nil {
		return nil, malformedJSON(err)
	}
	dates, err := decodePeriodDates(rp.Dates)
	if err != nil {
		return nil, err
	}
	rows := make([]PeriodicRow, 0, len(rp.Rows))
	for _, rowRaw := range rp.Rows {
		row, err := decodePeriodicRow(rowRaw)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	report := &PeriodicBalance{Dates: dates, Rows: rows}
	if !isNull(rp.Totals) {
		totals, err := decodePeriodicRow(rp.Totals)
		if err != nil {
			return nil, err
		}
		report.Totals = &totals
	}
	return report, nil
}

// decodePeriodDates decodes the period boundary list. Each period is a
// [start, end] pair of tagged date envelopes; only the contents value is
// consumed, the tag is ignored.
func decodePeriodDates(raws []json.RawMessage) ([]PeriodDate, error) {
	dates := make([]PeriodDate, 0, len(raws))
	for _, raw := range raws {
		var pair []json.RawMessage
		if err := json.Unmarshal(raw, &pair); err != nil {
			return nil, malformedJSON(err)
		}
		if len(pair) != 2 {
			return nil, fmt.Errorf("%w: period of %d dates", ErrUnrecognizedShape, len(pair))
		}
		dates = append(dates, PeriodDate{
			Start: taggedDate(pair[0]),
			End:   taggedDate(pair[1]),
		})
	}
	return dates, nil
}

func taggedDate(raw json.RawMessage) string {
	var envelope struct {
		Contents string `json:"contents"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return ""
	}
	return envelope.Contents
}

type rawPeriodicRow struct {
	Name    string            `json:"prrName"`
	Amounts []json.RawMessage `json:"prrAmounts"`
	Total   json.RawMessage   `json:"prrTotal"`
	Average json.RawMessage   `json:"prrAverage"`
}

// decodePeriodicRow decodes one account row of a periodic report. Total
// and Average stay nil when the corresponding column was not requested
// upstream; that is "not requested", not "empty".
func decodePeriodicRow(raw json.RawMessage) (PeriodicRow, error) {
	var rr rawPeriodicRow
	if err := json.Unmarshal(raw, &rr); err != nil {
		return PeriodicRow{}, malformedJSON(err)
	}
	row := PeriodicRow{Account: rr.Name, Amounts: make([][]Amount, 0, len(rr.Amounts))}
	for _, periodRaw := range rr.Amounts {
		amounts, err := decodeAmounts(periodRaw)
		if err != nil {
			return PeriodicRow{}, err
		}
		row.Amounts = append(row.Amounts, amounts)
	}
	if !isNull(rr.Total) {
		total, err := decodeAmounts(rr.Total)
		if err != nil {
			return PeriodicRow{}, err
		}
		row.Total = total
	}
	if !isNull(rr.Average) {
		average, err := decodeAmounts(rr.Average)
		if err != nil {
			return PeriodicRow{}, err
		}
		row.Average = average
	}
	return row, nil
}
