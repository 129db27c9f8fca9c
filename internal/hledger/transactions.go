package hledger

import (
	"encoding/json"
)

type rawTransaction struct {
	Index            int               `json:"tindex"`
	Date             string            `json:"tdate"`
	Date2            *string           `json:"tdate2"`
	Status           string            `json:"tstatus"`
	Code             string            `json:"tcode"`
	Description      string            `json:"tdescription"`
	Comment          string            `json:"tcomment"`
	Tags             [][]string        `json:"ttags"`
	Postings         []json.RawMessage `json:"tpostings"`
	PrecedingComment string            `json:"tprecedingcomment"`
	SourcePositions  []rawSourcePos    `json:"tsourcepos"`
}

type rawPosting struct {
	Account   *string         `json:"paccount"`
	Amounts   json.RawMessage `json:"pamount"`
	Status    string          `json:"pstatus"`
	Comment   string          `json:"pcomment"`
	Tags      [][]string      `json:"ptags"`
	Type      *string         `json:"ptype"`
	Date      *string         `json:"pdate"`
	Date2     *string         `json:"pdate2"`
	Assertion json.RawMessage `json:"pbalanceassertion"`
}

type rawAssertion struct {
	Amount    json.RawMessage `json:"baamount"`
	Inclusive bool            `json:"bainclusive"`
	Total     bool            `json:"batotal"`
	Position  *rawSourcePos   `json:"baposition"`
}

type rawSourcePos struct {
	Line   int    `json:"sourceLine"`
	Column int    `json:"sourceColumn"`
	File   string `json:"sourceName"`
}

// DecodeTransactions decodes the output of `hledger print --output-format
// json`: a list of transactions. An empty list is a valid result, distinct
// from a decode failure.
func DecodeTransactions(data []byte) ([]Transaction, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, malformedJSON(err)
	}
	transactions := make([]Transaction, 0, len(entries))
	for _, entry := range entries {
		tx, err := decodeTransaction(entry)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	return transactions, nil
}

func decodeTransaction(raw json.RawMessage) (Transaction, error) {
	var rt rawTransaction
	if err := json.Unmarshal(raw, &rt); err != nil {
		return Transaction{}, malformedJSON(err)
	}
	tx := Transaction{
		Index:            rt.Index,
		Date:             rt.Date,
		Status:           decodeStatus(rt.Status),
		Code:             rt.Code,
		Description:      rt.Description,
		Comment:          rt.Comment,
		Tags:             decodeTags(rt.Tags),
		PrecedingComment: rt.PrecedingComment,
	}
	if rt.Date2 != nil {
		tx.Date2 = *rt.Date2
	}
	tx.Postings = make([]Posting, 0, len(rt.Postings))
	for _, postingRaw := range rt.Postings {
		posting, err := decodePosting(postingRaw)
		if err != nil {
			return Transaction{}, err
		}
		tx.Postings = append(tx.Postings, posting)
	}
	tx.SourcePositions = make([]SourcePos, 0, len(rt.SourcePositions))
	for _, pos := range rt.SourcePositions {
		tx.SourcePositions = append(tx.SourcePositions, SourcePos{File: pos.File, Line: pos.Line, Column: pos.Column})
	}
	return tx, nil
}

func decodePosting(raw json.RawMessage) (Posting, error) {
	var rp rawPosting
	if err := json.Unmarshal(raw, &rp); err != nil {
		return Posting{}, malformedJSON(err)
	}
	// Kind is checked before anything else is decoded: an unrecognized
	// ptype invalidates the whole posting.
	kind, err := decodePostingKind(rp.Type)
	if err != nil {
		return Posting{}, err
	}
	posting := Posting{
		Status:  decodeStatus(rp.Status),
		Comment: rp.Comment,
		Tags:    decodeTags(rp.Tags),
		Kind:    kind,
	}
	if rp.Account != nil {
		posting.Account = *rp.Account
	}
	if rp.Date != nil {
		posting.Date = *rp.Date
	}
	if rp.Date2 != nil {
		posting.Date2 = *rp.Date2
	}
	amounts, err := decodeAmounts(rp.Amounts)
	if err != nil {
		return Posting{}, err
	}
	posting.Amounts = amounts
	assertion, err := decodeAssertion(rp.Assertion)
	if err != nil {
		return Posting{}, err
	}
	posting.Assertion = assertion
	return posting, nil
}

func decodePostingKind(value *string) (PostingKind, error) {
	if value == nil {
		return RegularPosting, nil
	}
	switch *value {
	case "RegularPosting":
		return RegularPosting, nil
	case "VirtualPosting":
		return VirtualPosting, nil
	case "BalancedVirtualPosting":
		return BalancedVirtualPosting, nil
	default:
		return 0, &UnknownPostingKindError{Kind: *value}
	}
}

func decodeStatus(value string) Status {
	switch value {
	case "Pending":
		return StatusPending
	case "Cleared":
		return StatusCleared
	default:
		return StatusUnmarked
	}
}

// decodeTags keeps tags as an ordered list. hledger journals may carry
// duplicate tag names; a map would collapse them.
func decodeTags(pairs [][]string) []Tag {
	tags := make([]Tag, 0, len(pairs))
	for _, pair := range pairs {
		if len(pair) != 2 {
			continue
		}
		tags = append(tags, Tag{Name: pair[0], Value: pair[1]})
	}
	return tags
}

func decodeAssertion(raw json.RawMessage) (*BalanceAssertion, error) {
	if isNull(raw) {
		return nil, nil
	}
	var ra rawAssertion
	if err := json.Unmarshal(raw, &ra); err != nil {
		return nil, malformedJSON(err)
	}
	if isNull(ra.Amount) {
		return nil, nil
	}
	amount, err := decodeAmount(ra.Amount)
	if err != nil {
		return nil, err
	}
	assertion := &BalanceAssertion{
		Amount:    amount,
		Inclusive: ra.Inclusive,
		Total:     ra.Total,
	}
	if ra.Position != nil {
		assertion.Position = SourcePos{File: ra.Position.File, Line: ra.Position.Line, Column: ra.Position.Column}
	}
	return assertion, nil
}
