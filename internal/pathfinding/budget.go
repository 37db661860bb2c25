package pathfinding

import "sync/atomic"

// DefaultMaxPathfindsPerFrame is the number of full searches allowed per frame.
const DefaultMaxPathfindsPerFrame = 3

// Budget limits full path searches within one simulation frame.
//
// The frame driver calls Reset exactly once per frame before any agent acts.
// Searches are granted first come, first served; there is no fairness or priority.
// The counter is atomic so a driver that updates agents from several goroutines
// stays within the limit, with Reset acting as the barrier between frames.
type Budget struct {
	used atomic.Int32
	max  int32
}

// NewBudget creates a budget allowing limit searches per frame.
func NewBudget(limit int) *Budget {
	if limit <= 0 {
		limit = DefaultMaxPathfindsPerFrame
	}
	return &Budget{max: int32(limit)}
}

// Reset starts a new frame.
func (b *Budget) Reset() {
	b.used.Store(0)
}

// CanSearch reports whether another search is allowed this frame.
func (b *Budget) CanSearch() bool {
	return b.used.Load() < b.max
}

// TryConsume takes one unit of budget. It returns false, without mutating
// anything, when the frame's budget is already spent.
func (b *Budget) TryConsume() bool {
	for {
		cur := b.used.Load()
		if cur >= b.max {
			return false
		}
		if b.used.CompareAndSwap(cur, cur+1) {
			return true
		}
	}
}

// Used returns the number of searches consumed this frame.
func (b *Budget) Used() int {
	return int(b.used.Load())
}

// Max returns the per-frame limit.
func (b *Budget) Max() int {
	return int(b.max)
}

// Remaining returns how many searches are still available this frame.
func (b *Budget) Remaining() int {
	r := b.max - b.used.Load()
	if r < 0 {
		return 0
	}
	return int(r)
}
