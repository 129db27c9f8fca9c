package hledger

import (
	"encoding/json"
	"fmt"
)

type rawCompound struct {
	Title      string            `json:"cbrTitle"`
	Dates      []json.RawMessage `json:"cbrDates"`
	Subreports []json.RawMessage `json:"cbrSubreports"`
	Totals     json.RawMessage   `json:"cbrTotals"`
}

// DecodeCompound decodes a compound report (balancesheet, incomestatement,
// cashflow). Subreports are positional triples: name, periodic-form data,
// and the increases-total flag. The flag is the only authority on how a
// section contributes to the grand total; section names are labels.
func DecodeCompound(data []byte) (*CompoundReport, error) {
	var rc rawCompound
	if err := json.Unmarshal(data, &rc); err != nil {
		return nil, malformedJSON(err)
	}
	if rc.Subreports == nil {
		return nil, &MissingFieldError{Field: "cbrSubreports"}
	}
	dates, err := decodePeriodDates(rc.Dates)
	if err != nil {
		return nil, err
	}
	report := &CompoundReport{Title: rc.Title, Dates: dates}
	for _, entry := range rc.Subreports {
		section, err := decodeCompoundSection(entry)
		if err != nil {
			return nil, err
		}
		report.Sections = append(report.Sections, section)
	}
	if !isNull(rc.Totals) {
		totals, err := decodePeriodicRow(rc.Totals)
		if err != nil {
			return nil, err
		}
		report.Totals = &totals
	}
	return report, nil
}

func decodeCompoundSection(raw json.RawMessage) (CompoundSection, error) {
	var triple []json.RawMessage
	if err := json.Unmarshal(raw, &triple); err != nil {
		return CompoundSection{}, fmt.Errorf("%w: not an array", ErrMalformedSection)
	}
	if len(triple) != 3 {
		return CompoundSection{}, fmt.Errorf("%w: %d elements", ErrMalformedSection, len(triple))
	}
	var section CompoundSection
	if err := json.Unmarshal(triple[0], &section.Name); err != nil {
		return CompoundSection{}, fmt.Errorf("%w: name is not a string", ErrMalformedSection)
	}
	// Only periodic-form data appears inside a compound report.
	shape, err := classifyBalance(triple[1])
	if err != nil || shape != shapePeriodic {
		return CompoundSection{}, fmt.Errorf("%w: data is not a periodic report", ErrMalformedSection)
	}
	data, err := decodePeriodicBalance(triple[1])
	if err != nil {
		return CompoundSection{}, fmt.Errorf("%w: %v", ErrMalformedSection, err)
	}
	section.Data = *data
	if err := json.Unmarshal(triple[2], &section.IncreasesTotal); err != nil {
		return CompoundSection{}, fmt.Errorf("%w: flag is not a boolean", ErrMalformedSection)
	}
	return section, nil
}
