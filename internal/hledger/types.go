// Package hledger decodes the JSON reports emitted by the hledger
// command-line tool into typed Go models. hledger encodes the same logical
// report in structurally different shapes depending on the flags it was
// invoked with; everything in this package normalizes those shapes.
package hledger

import "github.com/shopspring/decimal"

// PriceKind distinguishes per-unit prices from whole-amount prices.
type PriceKind int

const (
	UnitPrice PriceKind = iota
	TotalPrice
)

func (k PriceKind) String() string {
	if k == TotalPrice {
		return "TotalPrice"
	}
	return "UnitPrice"
}

// Price is an amount attached to another amount as its cost.
type Price struct {
	Kind   PriceKind `json:"kind"`
	Amount Amount    `json:"amount"`
}

// AmountStyle carries hledger's display-style hints for an amount.
type AmountStyle struct {
	CommoditySide   string `json:"commodity_side"`
	CommoditySpaced bool   `json:"commodity_spaced"`
	DecimalMark     string `json:"decimal_mark"`
	DigitGroups     string `json:"digit_groups"`
	Precision       int    `json:"precision"`
	Rounding        string `json:"rounding"`
}

// Amount is a single commodity quantity. Quantity is exact: it is
// reconstructed from hledger's mantissa/scale pair, never from the floating
// approximation emitted alongside. Style is present only on reports that
// include display styles (the transaction listing).
type Amount struct {
	Commodity string          `json:"commodity"`
	Quantity  decimal.Decimal `json:"quantity"`
	Price     *Price          `json:"price,omitempty"`
	Style     *AmountStyle    `json:"style,omitempty"`
}

// BalanceAccount is one row of a simple (single-period) balance report.
// Indent is explicit in this form; it is supplied by hledger, not derived
// from the account name.
type BalanceAccount struct {
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name"`
	Indent      int      `json:"indent"`
	Amounts     []Amount `json:"amounts"`
}

// SimpleBalance is a single-period balance report.
type SimpleBalance struct {
	Accounts []BalanceAccount `json:"accounts"`
	Totals   []Amount         `json:"totals"`
}

// PeriodDate is one sub-period of a periodic report. End is exclusive.
// Dates are kept as the ISO-8601 strings hledger emits.
type PeriodDate struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// PeriodicRow is one account row of a periodic balance report, with one
// amount set per period. Total and Average are nil when the corresponding
// summary column was not requested, which is distinct from present-and-empty.
type PeriodicRow struct {
	Account string     `json:"account"`
	Amounts [][]Amount `json:"amounts"`
	Total   []Amount   `json:"total,omitempty"`
	Average []Amount   `json:"average,omitempty"`
}

// PeriodicBalance is a multi-period balance report.
type PeriodicBalance struct {
	Dates  []PeriodDate  `json:"dates"`
	Rows   []PeriodicRow `json:"rows"`
	Totals *PeriodicRow  `json:"totals,omitempty"`
}

// BalanceReport is either a SimpleBalance or a PeriodicBalance. The
// concrete type is determined structurally by DecodeBalance; nothing else
// constructs one.
type BalanceReport interface {
	balanceReport()
}

func (*SimpleBalance) balanceReport()   {}
func (*PeriodicBalance) balanceReport() {}

// CompoundSection is one named subreport of a compound report.
// IncreasesTotal is authoritative for the section's sign contribution to
// the grand total; it is read from the report, never inferred from Name.
type CompoundSection struct {
	Name           string          `json:"name"`
	Data           PeriodicBalance `json:"data"`
	IncreasesTotal bool            `json:"increases_total"`
}

// CompoundReport is a multi-section report: balance sheet, income
// statement or cashflow statement.
type CompoundReport struct {
	Title    string            `json:"title"`
	Dates    []PeriodDate      `json:"dates"`
	Sections []CompoundSection `json:"sections"`
	Totals   *PeriodicRow      `json:"totals,omitempty"`
}

// Status is a transaction or posting clearing status.
type Status int

const (
	StatusUnmarked Status = iota
	StatusPending
	StatusCleared
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusCleared:
		return "Cleared"
	default:
		return "Unmarked"
	}
}

// Tag is one journal tag. Tags are an ordered list, not a map: hledger
// allows duplicate tag names and their order is meaningful.
type Tag struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// SourcePos locates a journal entry in its source file.
type SourcePos struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

// PostingKind distinguishes real postings from (balanced) virtual ones.
type PostingKind int

const (
	RegularPosting PostingKind = iota
	VirtualPosting
	BalancedVirtualPosting
)

func (k PostingKind) String() string {
	switch k {
	case VirtualPosting:
		return "VirtualPosting"
	case BalancedVirtualPosting:
		return "BalancedVirtualPosting"
	default:
		return "RegularPosting"
	}
}

// BalanceAssertion is a posting's asserted balance.
type BalanceAssertion struct {
	Amount    Amount    `json:"amount"`
	Inclusive bool      `json:"inclusive"`
	Total     bool      `json:"total"`
	Position  SourcePos `json:"position"`
}

// Posting is one leg of a transaction.
type Posting struct {
	Account   string            `json:"account"`
	Amounts   []Amount          `json:"amounts"`
	Status    Status            `json:"status"`
	Comment   string            `json:"comment"`
	Tags      []Tag             `json:"tags"`
	Kind      PostingKind       `json:"kind"`
	Date      string            `json:"date,omitempty"`
	Date2     string            `json:"date2,omitempty"`
	Assertion *BalanceAssertion `json:"assertion,omitempty"`
}

// Transaction is one entry of the transaction listing.
type Transaction struct {
	Index            int         `json:"index"`
	Date             string      `json:"date"`
	Date2            string      `json:"date2,omitempty"`
	Status           Status      `json:"status"`
	Code             string      `json:"code"`
	Description      string      `json:"description"`
	Comment          string      `json:"comment"`
	Tags             []Tag       `json:"tags"`
	Postings         []Posting   `json:"postings"`
	PrecedingComment string      `json:"preceding_comment"`
	SourcePositions  []SourcePos `json:"source_positions"`
}
