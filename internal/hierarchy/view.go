package hierarchy

import (
	"hash/fnv"
	"sort"
	"strconv"
	"sync"
)

// View holds one panel's display mode and expanded-account set. Each view
// owns its own state; concurrent views never share it. Derived nodes are
// memoized on a hash of (rows, mode, expanded set) so that re-renders with
// unchanged inputs skip the pass without any incremental bookkeeping.
type View struct {
	mu       sync.Mutex
	mode     Mode
	expanded map[string]bool

	cacheKey   uint64
	cacheNodes []Node
}

func NewView(mode Mode) *View {
	return &View{
		mode:     mode,
		expanded: make(map[string]bool),
	}
}

func (v *View) Mode() Mode {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.mode
}

// SetMode switches between flat and tree display. Changing mode clears
// the expanded set: depth semantics differ between modes, so expansion
// state from one mode is meaningless in the other.
func (v *View) SetMode(mode Mode) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if mode == v.mode {
		return
	}
	v.mode = mode
	v.expanded = make(map[string]bool)
	v.cacheNodes = nil
}

// Toggle flips one account's expansion.
func (v *View) Toggle(account string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.expanded[account] {
		delete(v.expanded, account)
	} else {
		v.expanded[account] = true
	}
	v.cacheNodes = nil
}

// Expanded reports one account's expansion state.
func (v *View) Expanded(account string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.expanded[account]
}

// Nodes computes (or returns the memoized) derived state for rows under
// the view's current mode and expanded set.
func (v *View) Nodes(rows []Row) []Node {
	v.mu.Lock()
	defer v.mu.Unlock()

	key := hashInputs(rows, v.mode, v.expanded)
	if v.cacheNodes != nil && v.cacheKey == key {
		return v.cacheNodes
	}
	nodes := Compute(rows, v.mode, v.expanded)
	v.cacheKey = key
	v.cacheNodes = nodes
	return nodes
}

func hashInputs(rows []Row, mode Mode, expanded map[string]bool) uint64 {
	h := fnv.New64a()
	h.Write([]byte{byte(mode)})
	for _, row := range rows {
		h.Write([]byte(row.Name))
		h.Write([]byte{0})
		h.Write([]byte(strconv.Itoa(depth(row))))
		h.Write([]byte{0})
	}
	names := make([]string, 0, len(expanded))
	for name, on := range expanded {
		if on {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		h.Write([]byte{1})
		h.Write([]byte(name))
	}
	return h.Sum64()
}
