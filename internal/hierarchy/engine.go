// Package hierarchy derives tree structure and visibility for account
// rows. hledger reports list accounts flat, in pre-order: a parent
// immediately precedes its first child and a subtree's rows are
// contiguous. Depth, has-children and the visibility cascade are all
// recomputed from scratch on every call; there is no incremental update
// path to diverge from the true state.
package hierarchy

import (
	"strings"

	"github.com/juev/hledger-viewer/internal/hledger"
)

// Mode selects flat-list or tree display.
type Mode int

const (
	ModeFlat Mode = iota
	ModeTree
)

func (m Mode) String() string {
	if m == ModeTree {
		return "tree"
	}
	return "flat"
}

// ParseMode maps the wire names of the two modes. Unknown strings fall
// back to flat, which shows everything.
func ParseMode(s string) Mode {
	if s == "tree" {
		return ModeTree
	}
	return ModeFlat
}

// Row is one account row as the engine sees it. Simple-form balance rows
// carry an explicit indent; periodic-form rows do not, and their depth is
// derived from the colon count of the account name.
type Row struct {
	Name   string `json:"name"`
	Indent int    `json:"indent"`
	// Explicit marks Indent as source-supplied rather than derived.
	Explicit bool `json:"explicit"`
}

// Node is the derived display state of one row. Nodes are recomputed in
// full whenever the rows or the expanded set change; nothing beyond the
// account name survives a recomputation.
type Node struct {
	Account     string `json:"account"`
	Depth       int    `json:"depth"`
	HasChildren bool   `json:"has_children"`
	Visible     bool   `json:"visible"`
}

// RowsFromSimple adapts simple-balance accounts, keeping their explicit
// indent.
func RowsFromSimple(accounts []hledger.BalanceAccount) []Row {
	rows := make([]Row, 0, len(accounts))
	for _, account := range accounts {
		rows = append(rows, Row{Name: account.Name, Indent: account.Indent, Explicit: true})
	}
	return rows
}

// RowsFromPeriodic adapts periodic-balance rows; depth comes from the
// account name.
func RowsFromPeriodic(periodicRows []hledger.PeriodicRow) []Row {
	rows := make([]Row, 0, len(periodicRows))
	for _, row := range periodicRows {
		rows = append(rows, Row{Name: row.Account})
	}
	return rows
}

func depth(row Row) int {
	if row.Explicit {
		return row.Indent
	}
	return strings.Count(row.Name, ":")
}

// Compute derives depth, has-children and visibility for every row in one
// forward pass. It is a pure function of its inputs and safe to call from
// any goroutine as long as the inputs are not mutated concurrently.
//
// Visibility follows the cascade rule: in tree mode a row is visible iff
// its nearest prior row one level shallower (its parent) is visible and
// expanded. A row whose parent cannot be located is treated as visible:
// hiding real data on malformed input is worse than showing an extra row.
func Compute(rows []Row, mode Mode, expanded map[string]bool) []Node {
	nodes := make([]Node, len(rows))
	depths := make([]int, len(rows))
	for i, row := range rows {
		depths[i] = depth(row)
	}

	// lastAtDepth[d] is the index of the most recent row at depth d,
	// which under pre-order is exactly the parent candidate for depth d+1.
	lastAtDepth := make(map[int]int)
	visible := make([]bool, len(rows))

	for i, row := range rows {
		d := depths[i]
		hasChildren := i+1 < len(rows) && depths[i+1] > d

		switch {
		case mode == ModeFlat:
			visible[i] = true
		case d == 0:
			visible[i] = true
		default:
			parent, ok := lastAtDepth[d-1]
			if !ok {
				visible[i] = true
			} else {
				visible[i] = visible[parent] && expanded[rows[parent].Name]
			}
		}

		lastAtDepth[d] = i
		nodes[i] = Node{
			Account:     row.Name,
			Depth:       d,
			HasChildren: hasChildren,
			Visible:     visible[i],
		}
	}
	return nodes
}
