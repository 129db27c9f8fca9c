package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juev/hledger-viewer/internal/hledger"
)

func fixtureRows() []Row {
	return []Row{
		{Name: "assets", Indent: 0, Explicit: true},
		{Name: "assets:bank", Indent: 1, Explicit: true},
		{Name: "assets:bank:checking", Indent: 2, Explicit: true},
		{Name: "expenses", Indent: 0, Explicit: true},
	}
}

func visibles(nodes []Node) []bool {
	out := make([]bool, len(nodes))
	for i, n := range nodes {
		out[i] = n.Visible
	}
	return out
}

func TestCompute_TreeVisibility(t *testing.T) {
	rows := fixtureRows()

	tests := []struct {
		name     string
		expanded []string
		want     []bool
	}{
		{name: "all collapsed", expanded: nil, want: []bool{true, false, false, true}},
		{name: "root expanded", expanded: []string{"assets"}, want: []bool{true, true, false, true}},
		{name: "two levels expanded", expanded: []string{"assets", "assets:bank"}, want: []bool{true, true, true, true}},
		// Expanding a hidden account does not reveal its children: the
		// cascade requires every ancestor visible and expanded.
		{name: "middle expanded only", expanded: []string{"assets:bank"}, want: []bool{true, false, false, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expanded := make(map[string]bool)
			for _, name := range tt.expanded {
				expanded[name] = true
			}
			nodes := Compute(rows, ModeTree, expanded)
			assert.Equal(t, tt.want, visibles(nodes))
		})
	}
}

func TestCompute_FlatAllVisible(t *testing.T) {
	nodes := Compute(fixtureRows(), ModeFlat, nil)
	assert.Equal(t, []bool{true, true, true, true}, visibles(nodes))
}

func TestCompute_HasChildren(t *testing.T) {
	nodes := Compute(fixtureRows(), ModeTree, nil)
	require.Len(t, nodes, 4)
	assert.True(t, nodes[0].HasChildren)
	assert.True(t, nodes[1].HasChildren)
	assert.False(t, nodes[2].HasChildren)
	assert.False(t, nodes[3].HasChildren)
}

func TestCompute_DepthFromColonCount(t *testing.T) {
	rows := []Row{
		{Name: "assets"},
		{Name: "assets:bank"},
		{Name: "assets:bank:checking"},
	}
	nodes := Compute(rows, ModeTree, nil)
	assert.Equal(t, 0, nodes[0].Depth)
	assert.Equal(t, 1, nodes[1].Depth)
	assert.Equal(t, 2, nodes[2].Depth)
}

func TestCompute_ExplicitIndentWins(t *testing.T) {
	// Tree-mode simple reports elide boring parents: the indent hledger
	// supplies does not match the colon count, and the indent wins.
	rows := []Row{
		{Name: "assets:bank", Indent: 0, Explicit: true},
		{Name: "assets:bank:checking", Indent: 1, Explicit: true},
	}
	nodes := Compute(rows, ModeTree, map[string]bool{"assets:bank": true})
	assert.Equal(t, 0, nodes[0].Depth)
	assert.Equal(t, 1, nodes[1].Depth)
	assert.Equal(t, []bool{true, true}, visibles(nodes))
}

// A row whose parent depth is missing from the prior rows fails open:
// showing an extra row beats silently hiding data.
func TestCompute_OrphanDepthVisible(t *testing.T) {
	rows := []Row{
		{Name: "a", Indent: 0, Explicit: true},
		{Name: "a:b:c", Indent: 2, Explicit: true},
	}
	nodes := Compute(rows, ModeTree, nil)
	assert.True(t, nodes[1].Visible)
}

func TestCompute_Empty(t *testing.T) {
	nodes := Compute(nil, ModeTree, nil)
	assert.Empty(t, nodes)
}

func TestRowsFromSimple(t *testing.T) {
	rows := RowsFromSimple([]hledger.BalanceAccount{
		{Name: "assets", Indent: 0},
		{Name: "assets:bank", Indent: 1},
	})
	require.Len(t, rows, 2)
	assert.True(t, rows[0].Explicit)
	assert.Equal(t, 1, rows[1].Indent)
}

func TestRowsFromPeriodic(t *testing.T) {
	rows := RowsFromPeriodic([]hledger.PeriodicRow{
		{Account: "assets:bank"},
	})
	require.Len(t, rows, 1)
	assert.False(t, rows[0].Explicit)
	assert.Equal(t, "assets:bank", rows[0].Name)
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, ModeTree, ParseMode("tree"))
	assert.Equal(t, ModeFlat, ParseMode("flat"))
	assert.Equal(t, ModeFlat, ParseMode("anything-else"))
}
