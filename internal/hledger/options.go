package hledger

import "strconv"

// BalanceOptions selects what `hledger balance` computes and how. Zero
// value means hledger's defaults. Args returns the flag list in a stable
// order; the command name and --output-format are the caller's concern.
type BalanceOptions struct {
	// Calculation modes (mutually exclusive).
	ValueChange bool   `json:"valuechange,omitempty"`
	Gain        bool   `json:"gain,omitempty"`
	Budget      string `json:"budget,omitempty"`
	Count       bool   `json:"count,omitempty"`

	// Accumulation modes (mutually exclusive).
	Cumulative bool `json:"cumulative,omitempty"`
	Historical bool `json:"historical,omitempty"`

	// List/tree modes.
	Tree     bool `json:"tree,omitempty"`
	Drop     int  `json:"drop,omitempty"`
	Declared bool `json:"declared,omitempty"`

	// Multi-period columns.
	Average     bool `json:"average,omitempty"`
	RowTotal    bool `json:"row_total,omitempty"`
	SummaryOnly bool `json:"summary_only,omitempty"`
	NoTotal     bool `json:"no_total,omitempty"`
	NoElide     bool `json:"no_elide,omitempty"`

	// Sorting and display.
	SortAmount bool   `json:"sort_amount,omitempty"`
	Percent    bool   `json:"percent,omitempty"`
	Related    bool   `json:"related,omitempty"`
	Invert     bool   `json:"invert,omitempty"`
	Transpose  bool   `json:"transpose,omitempty"`
	Layout     string `json:"layout,omitempty"`

	Interval Interval `json:"interval,omitempty"`
	Period   string   `json:"period,omitempty"`

	Begin string `json:"begin,omitempty"`
	End   string `json:"end,omitempty"`

	Depth    int  `json:"depth,omitempty"`
	Unmarked bool `json:"unmarked,omitempty"`
	Pending  bool `json:"pending,omitempty"`
	Cleared  bool `json:"cleared,omitempty"`
	Real     bool `json:"real,omitempty"`
	Empty    bool `json:"empty,omitempty"`

	// Valuation.
	Cost     bool   `json:"cost,omitempty"`
	Market   bool   `json:"market,omitempty"`
	Exchange string `json:"exchange,omitempty"`
	Value    string `json:"value,omitempty"`

	Queries []string `json:"queries,omitempty"`
}

// Interval is a reporting period granularity.
type Interval string

const (
	IntervalNone      Interval = ""
	IntervalDaily     Interval = "daily"
	IntervalWeekly    Interval = "weekly"
	IntervalMonthly   Interval = "monthly"
	IntervalQuarterly Interval = "quarterly"
	IntervalYearly    Interval = "yearly"
)

func (i Interval) flag() string {
	if i == IntervalNone {
		return ""
	}
	return "--" + string(i)
}

func (o BalanceOptions) Args() []string {
	var args []string
	if flag := o.Interval.flag(); flag != "" {
		args = append(args, flag)
	}
	if o.Period != "" {
		args = append(args, "--period", o.Period)
	}
	if o.ValueChange {
		args = append(args, "--valuechange")
	}
	if o.Gain {
		args = append(args, "--gain")
	}
	if o.Budget != "" {
		args = append(args, "--budget="+o.Budget)
	}
	if o.Count {
		args = append(args, "--count")
	}
	if o.Cumulative {
		args = append(args, "--cumulative")
	}
	if o.Historical {
		args = append(args, "--historical")
	}
	if o.Tree {
		args = append(args, "--tree")
	} else {
		args = append(args, "--flat")
	}
	if o.Drop > 0 {
		args = append(args, "--drop="+strconv.Itoa(o.Drop))
	}
	if o.Declared {
		args = append(args, "--declared")
	}
	if o.Average {
		args = append(args, "--average")
	}
	if o.RowTotal {
		args = append(args, "--row-total")
	}
	if o.SummaryOnly {
		args = append(args, "--summary-only")
	}
	if o.NoTotal {
		args = append(args, "--no-total")
	}
	if o.NoElide {
		args = append(args, "--no-elide")
	}
	if o.SortAmount {
		args = append(args, "--sort-amount")
	}
	if o.Percent {
		args = append(args, "--percent")
	}
	if o.Related {
		args = append(args, "--related")
	}
	if o.Invert {
		args = append(args, "--invert")
	}
	if o.Transpose {
		args = append(args, "--transpose")
	}
	if o.Layout != "" {
		args = append(args, "--layout="+o.Layout)
	}
	args = append(args, filterArgs(o.Depth, o.Begin, o.End, o.Unmarked, o.Pending, o.Cleared, o.Real, o.Empty)...)
	if o.Cost {
		args = append(args, "--cost")
	}
	if o.Market {
		args = append(args, "--market")
	}
	if o.Exchange != "" {
		args = append(args, "--exchange", o.Exchange)
	}
	if o.Value != "" {
		args = append(args, "--value="+o.Value)
	}
	args = append(args, o.Queries...)
	return args
}

// CompoundOptions selects what a compound report command (balancesheet,
// incomestatement, cashflow) computes. The surface is the balance one
// minus the flags those commands reject.
type CompoundOptions struct {
	ValueChange bool `json:"valuechange,omitempty"`
	Gain        bool `json:"gain,omitempty"`

	Cumulative bool `json:"cumulative,omitempty"`
	Historical bool `json:"historical,omitempty"`

	Tree     bool `json:"tree,omitempty"`
	Drop     int  `json:"drop,omitempty"`
	Declared bool `json:"declared,omitempty"`

	Average     bool `json:"average,omitempty"`
	RowTotal    bool `json:"row_total,omitempty"`
	SummaryOnly bool `json:"summary_only,omitempty"`
	NoTotal     bool `json:"no_total,omitempty"`
	NoElide     bool `json:"no_elide,omitempty"`

	SortAmount bool   `json:"sort_amount,omitempty"`
	Percent    bool   `json:"percent,omitempty"`
	Layout     string `json:"layout,omitempty"`

	Interval Interval `json:"interval,omitempty"`
	Period   string   `json:"period,omitempty"`

	Begin string `json:"begin,omitempty"`
	End   string `json:"end,omitempty"`

	Depth    int  `json:"depth,omitempty"`
	Unmarked bool `json:"unmarked,omitempty"`
	Pending  bool `json:"pending,omitempty"`
	Cleared  bool `json:"cleared,omitempty"`
	Real     bool `json:"real,omitempty"`
	Empty    bool `json:"empty,omitempty"`

	Cost     bool   `json:"cost,omitempty"`
	Market   bool   `json:"market,omitempty"`
	Exchange string `json:"exchange,omitempty"`
	Value    string `json:"value,omitempty"`

	Queries []string `json:"queries,omitempty"`
}

func (o CompoundOptions) Args() []string {
	var args []string
	if flag := o.Interval.flag(); flag != "" {
		args = append(args, flag)
	}
	if o.Period != "" {
		args = append(args, "--period", o.Period)
	}
	if o.ValueChange {
		args = append(args, "--valuechange")
	}
	if o.Gain {
		args = append(args, "--gain")
	}
	if o.Cumulative {
		args = append(args, "--cumulative")
	}
	if o.Historical {
		args = append(args, "--historical")
	}
	if o.Tree {
		args = append(args, "--tree")
	} else {
		args = append(args, "--flat")
	}
	if o.Drop > 0 {
		args = append(args, "--drop="+strconv.Itoa(o.Drop))
	}
	if o.Declared {
		args = append(args, "--declared")
	}
	if o.Average {
		args = append(args, "--average")
	}
	if o.RowTotal {
		args = append(args, "--row-total")
	}
	if o.SummaryOnly {
		args = append(args, "--summary-only")
	}
	if o.NoTotal {
		args = append(args, "--no-total")
	}
	if o.NoElide {
		args = append(args, "--no-elide")
	}
	if o.SortAmount {
		args = append(args, "--sort-amount")
	}
	if o.Percent {
		args = append(args, "--percent")
	}
	if o.Layout != "" {
		args = append(args, "--layout="+o.Layout)
	}
	args = append(args, filterArgs(o.Depth, o.Begin, o.End, o.Unmarked, o.Pending, o.Cleared, o.Real, o.Empty)...)
	if o.Cost {
		args = append(args, "--cost")
	}
	if o.Market {
		args = append(args, "--market")
	}
	if o.Exchange != "" {
		args = append(args, "--exchange", o.Exchange)
	}
	if o.Value != "" {
		args = append(args, "--value="+o.Value)
	}
	args = append(args, o.Queries...)
	return args
}

// PrintOptions selects what `hledger print` emits.
type PrintOptions struct {
	Explicit  bool   `json:"explicit,omitempty"`
	ShowCosts bool   `json:"show_costs,omitempty"`
	Round     string `json:"round,omitempty"`
	New       bool   `json:"new,omitempty"`
	Match     string `json:"match,omitempty"`

	Begin string `json:"begin,omitempty"`
	End   string `json:"end,omitempty"`

	Unmarked bool `json:"unmarked,omitempty"`
	Pending  bool `json:"pending,omitempty"`
	Cleared  bool `json:"cleared,omitempty"`
	Real     bool `json:"real,omitempty"`
	Empty    bool `json:"empty,omitempty"`

	Queries []string `json:"queries,omitempty"`
}

func (o PrintOptions) Args() []string {
	var args []string
	if o.Explicit {
		args = append(args, "--explicit")
	}
	if o.ShowCosts {
		args = append(args, "--show-costs")
	}
	if o.Round != "" {
		args = append(args, "--round="+o.Round)
	}
	if o.New {
		args = append(args, "--new")
	}
	if o.Match != "" {
		args = append(args, "--match", o.Match)
	}
	args = append(args, filterArgs(0, o.Begin, o.End, o.Unmarked, o.Pending, o.Cleared, o.Real, o.Empty)...)
	args = append(args, o.Queries...)
	return args
}

// AccountsOptions selects what `hledger accounts` lists.
type AccountsOptions struct {
	Used     bool `json:"used,omitempty"`
	Declared bool `json:"declared,omitempty"`
	Unused   bool `json:"unused,omitempty"`
	Types    bool `json:"types,omitempty"`
	Drop     int  `json:"drop,omitempty"`

	Begin string `json:"begin,omitempty"`
	End   string `json:"end,omitempty"`
	Depth int    `json:"depth,omitempty"`

	Queries []string `json:"queries,omitempty"`
}

func (o AccountsOptions) Args() []string {
	var args []string
	if o.Used {
		args = append(args, "--used")
	}
	if o.Declared {
		args = append(args, "--declared")
	}
	if o.Unused {
		args = append(args, "--unused")
	}
	if o.Types {
		args = append(args, "--types")
	}
	if o.Drop > 0 {
		args = append(args, "--drop="+strconv.Itoa(o.Drop))
	}
	if o.Depth > 0 {
		args = append(args, "--depth="+strconv.Itoa(o.Depth))
	}
	if o.Begin != "" {
		args = append(args, "--begin", o.Begin)
	}
	if o.End != "" {
		args = append(args, "--end", o.End)
	}
	args = append(args, o.Queries...)
	return args
}

// filterArgs renders the depth/date/status filters shared by the report
// commands.
func filterArgs(depth int, begin, end string, unmarked, pending, cleared, real, empty bool) []string {
	var args []string
	if depth > 0 {
		args = append(args, "--depth="+strconv.Itoa(depth))
	}
	if empty {
		args = append(args, "--empty")
	}
	if begin != "" {
		args = append(args, "--begin", begin)
	}
	if end != "" {
		args = append(args, "--end", end)
	}
	if unmarked {
		args = append(args, "--unmarked")
	}
	if pending {
		args = append(args, "--pending")
	}
	if cleared {
		args = append(args, "--cleared")
	}
	if real {
		args = append(args, "--real")
	}
	return args
}
