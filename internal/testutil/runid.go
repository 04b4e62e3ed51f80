package testutil

import "sync"

// FixedRunIDs returns predetermined run ids in order, enabling golden
// trace comparison without UUID noise.
//
// Panics when exhausted: a test asking for more runs than it configured
// is misconfigured, and failing fast points straight at it.
type FixedRunIDs struct {
	mu  sync.Mutex
	ids []string
	idx int
}

// NewFixedRunIDs creates a generator that yields ids in the given order.
func NewFixedRunIDs(ids ...string) *FixedRunIDs {
	return &FixedRunIDs{ids: ids}
}

// Generate returns the next predetermined id.
func (g *FixedRunIDs) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.idx >= len(g.ids) {
		panic("FixedRunIDs: all ids exhausted")
	}
	id := g.ids[g.idx]
	g.idx++
	return id
}
