package service

import "sync"

// SequenceGuard orders concurrent report requests per panel. Each fetch
// takes a sequence number before it starts; a result is applied only if
// no newer fetch for the same panel has already delivered. This closes
// the race where a stale response arriving late overwrites a newer one.
type SequenceGuard struct {
	mu      sync.Mutex
	issued  map[string]uint64
	applied map[string]uint64
}

func NewSequenceGuard() *SequenceGuard {
	return &SequenceGuard{
		issued:  make(map[string]uint64),
		applied: make(map[string]uint64),
	}
}

// Next issues the sequence number for a new request on panel.
func (g *SequenceGuard) Next(panel string) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.issued[panel]++
	return g.issued[panel]
}

// Deliver reports whether the result for seq should be applied. The
// newest applied sequence wins; anything older is dropped.
func (g *SequenceGuard) Deliver(panel string, seq uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if seq <= g.applied[panel] {
		return false
	}
	g.applied[panel] = seq
	return true
}
