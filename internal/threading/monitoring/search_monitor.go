package monitoring

import (
	"sync"
	"sync/atomic"
	"time"
)

// SearchOutcome classifies how a path search ended.
type SearchOutcome int

const (
	OutcomeFound SearchOutcome = iota
	OutcomeSameTile
	OutcomeTooFar
	OutcomeNoSubstitute
	OutcomeCapped
	OutcomeUnreachable
)

func (o SearchOutcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeSameTile:
		return "same_tile"
	case OutcomeTooFar:
		return "too_far"
	case OutcomeNoSubstitute:
		return "no_substitute"
	case OutcomeCapped:
		return "expansion_cap"
	case OutcomeUnreachable:
		return "unreachable"
	default:
		return "unknown"
	}
}

// SearchMonitor tracks pathfinding activity.
// All methods are safe on a nil receiver so callers can leave monitoring off.
type SearchMonitor struct {
	// Budget metrics
	searches      atomic.Uint64
	budgetDenials atomic.Uint64

	// Outcome metrics
	found         atomic.Uint64
	sameTile      atomic.Uint64
	tooFar        atomic.Uint64
	noSubstitute  atomic.Uint64
	capped        atomic.Uint64
	unreachable   atomic.Uint64
	ringSearches  atomic.Uint64
	nodesExpanded atomic.Uint64

	// Timing
	lastSearchTime  atomic.Uint64 // nanoseconds
	totalSearchTime atomic.Uint64 // nanoseconds

	mutex     sync.RWMutex
	peakNodes int
	startTime time.Time
}

// NewSearchMonitor creates a new search monitor
func NewSearchMonitor() *SearchMonitor {
	return &SearchMonitor{startTime: time.Now()}
}

// SearchTimer measures a single search
type SearchTimer struct {
	monitor   *SearchMonitor
	startTime time.Time
}

// StartSearch begins timing a search that was granted budget
func (sm *SearchMonitor) StartSearch() *SearchTimer {
	if sm == nil {
		return nil
	}
	sm.searches.Add(1)
	return &SearchTimer{monitor: sm, startTime: time.Now()}
}

// End records the search outcome and the number of nodes it expanded
func (st *SearchTimer) End(outcome SearchOutcome, expanded int) {
	if st == nil {
		return
	}
	sm := st.monitor
	elapsed := uint64(time.Since(st.startTime).Nanoseconds())
	sm.lastSearchTime.Store(elapsed)
	sm.totalSearchTime.Add(elapsed)
	sm.nodesExpanded.Add(uint64(expanded))

	switch outcome {
	case OutcomeFound:
		sm.found.Add(1)
	case OutcomeSameTile:
		sm.sameTile.Add(1)
	case OutcomeTooFar:
		sm.tooFar.Add(1)
	case OutcomeNoSubstitute:
		sm.noSubstitute.Add(1)
	case OutcomeCapped:
		sm.capped.Add(1)
	case OutcomeUnreachable:
		sm.unreachable.Add(1)
	}

	sm.mutex.Lock()
	if expanded > sm.peakNodes {
		sm.peakNodes = expanded
	}
	sm.mutex.Unlock()
}

// RecordBudgetDenied counts a search refused because the frame budget was spent
func (sm *SearchMonitor) RecordBudgetDenied() {
	if sm == nil {
		return
	}
	sm.budgetDenials.Add(1)
}

// RecordRingSearch counts a goal substitution attempt
func (sm *SearchMonitor) RecordRingSearch() {
	if sm == nil {
		return
	}
	sm.ringSearches.Add(1)
}

// SearchMetrics is a snapshot of the monitor counters
type SearchMetrics struct {
	Searches      uint64
	BudgetDenials uint64
	Found         uint64
	SameTile      uint64
	TooFar        uint64
	NoSubstitute  uint64
	Capped        uint64
	Unreachable   uint64
	RingSearches  uint64
	NodesExpanded uint64
	PeakNodes     int
	LastSearch    time.Duration
	AverageSearch time.Duration
}

// GetCurrentMetrics returns current search metrics
func (sm *SearchMonitor) GetCurrentMetrics() SearchMetrics {
	if sm == nil {
		return SearchMetrics{}
	}
	sm.mutex.RLock()
	peak := sm.peakNodes
	sm.mutex.RUnlock()

	searches := sm.searches.Load()
	var avg time.Duration
	if searches > 0 {
		avg = time.Duration(sm.totalSearchTime.Load() / searches)
	}

	return SearchMetrics{
		Searches:      searches,
		BudgetDenials: sm.budgetDenials.Load(),
		Found:         sm.found.Load(),
		SameTile:      sm.sameTile.Load(),
		TooFar:        sm.tooFar.Load(),
		NoSubstitute:  sm.noSubstitute.Load(),
		Capped:        sm.capped.Load(),
		Unreachable:   sm.unreachable.Load(),
		RingSearches:  sm.ringSearches.Load(),
		NodesExpanded: sm.nodesExpanded.Load(),
		PeakNodes:     peak,
		LastSearch:    time.Duration(sm.lastSearchTime.Load()),
		AverageSearch: avg,
	}
}

// GetDetailedStats returns the metrics keyed for log output
func (sm *SearchMonitor) GetDetailedStats() map[string]interface{} {
	if sm == nil {
		return nil
	}
	m := sm.GetCurrentMetrics()

	sm.mutex.RLock()
	uptime := time.Since(sm.startTime)
	sm.mutex.RUnlock()

	return map[string]interface{}{
		"uptime_seconds":      uptime.Seconds(),
		"searches":            m.Searches,
		"budget_denials":      m.BudgetDenials,
		"paths_found":         m.Found,
		"same_tile":           m.SameTile,
		"too_far":             m.TooFar,
		"no_substitute":       m.NoSubstitute,
		"expansion_cap_hits":  m.Capped,
		"unreachable":         m.Unreachable,
		"ring_searches":       m.RingSearches,
		"nodes_expanded":      m.NodesExpanded,
		"peak_nodes":          m.PeakNodes,
		"last_search_time_ms": float64(m.LastSearch) / float64(time.Millisecond),
		"avg_search_time_ms":  float64(m.AverageSearch) / float64(time.Millisecond),
	}
}

// SearchAlert represents a pathfinding warning
type SearchAlert struct {
	Type      string
	Message   string
	Value     float64
	Threshold float64
	Timestamp time.Time
}

const (
	denialRatioThreshold = 0.5
	capRatioThreshold    = 0.25
	alertMinSamples      = 20
)

// CheckSearchAlerts reports budget starvation and runaway expansion
func (sm *SearchMonitor) CheckSearchAlerts() []SearchAlert {
	alerts := make([]SearchAlert, 0)
	if sm == nil {
		return alerts
	}
	now := time.Now()
	m := sm.GetCurrentMetrics()

	requests := m.Searches + m.BudgetDenials
	if requests >= alertMinSamples {
		ratio := float64(m.BudgetDenials) / float64(requests)
		if ratio > denialRatioThreshold {
			alerts = append(alerts, SearchAlert{
				Type:      "budget_starvation",
				Message:   "More than half of path requests were refused by the frame budget",
				Value:     ratio,
				Threshold: denialRatioThreshold,
				Timestamp: now,
			})
		}
	}

	if m.Searches >= alertMinSamples {
		ratio := float64(m.Capped) / float64(m.Searches)
		if ratio > capRatioThreshold {
			alerts = append(alerts, SearchAlert{
				Type:      "expansion_cap",
				Message:   "Searches are frequently hitting the node expansion cap",
				Value:     ratio,
				Threshold: capRatioThreshold,
				Timestamp: now,
			})
		}
	}

	return alerts
}

// Reset resets all counters
func (sm *SearchMonitor) Reset() {
	if sm == nil {
		return
	}
	sm.searches.Store(0)
	sm.budgetDenials.Store(0)
	sm.found.Store(0)
	sm.sameTile.Store(0)
	sm.tooFar.Store(0)
	sm.noSubstitute.Store(0)
	sm.capped.Store(0)
	sm.unreachable.Store(0)
	sm.ringSearches.Store(0)
	sm.nodesExpanded.Store(0)
	sm.lastSearchTime.Store(0)
	sm.totalSearchTime.Store(0)

	sm.mutex.Lock()
	sm.peakNodes = 0
	sm.startTime = time.Now()
	sm.mutex.Unlock()
}
