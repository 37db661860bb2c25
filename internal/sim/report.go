package sim

import (
	"fmt"
	"strings"

	"gridtactics/internal/pathfinding"

	"github.com/yohamta/donburi"
)

// Report summarises a simulation run
type Report struct {
	Frames     int
	Agents     int
	Searches   int
	Denied     int
	EmptyPaths int
	Arrived    int
	Stuck      int
	Distance   float64
}

// Add accumulates another report into r
func (r *Report) Add(o Report) {
	r.Frames += o.Frames
	r.Agents += o.Agents
	r.Searches += o.Searches
	r.Denied += o.Denied
	r.EmptyPaths += o.EmptyPaths
	r.Arrived += o.Arrived
	r.Stuck += o.Stuck
	r.Distance += o.Distance
}

// DenialRate is the share of search attempts refused by the frame budget
func (r Report) DenialRate() float64 {
	attempts := r.Searches + r.Denied
	if attempts == 0 {
		return 0
	}
	return float64(r.Denied) / float64(attempts)
}

func (r Report) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "frames=%d agents=%d searches=%d denied=%d (%.1f%%) empty=%d",
		r.Frames, r.Agents, r.Searches, r.Denied, r.DenialRate()*100, r.EmptyPaths)
	fmt.Fprintf(&sb, " arrived=%d stuck=%d distance=%.0fpx", r.Arrived, r.Stuck, r.Distance)
	return sb.String()
}

// RunReport steps the simulation for frames frames and summarises it.
// An agent has arrived when it stands on the target's tile, and is stuck
// when it has no waypoints left anywhere else.
func RunReport(s *Simulation, frames int) Report {
	for i := 0; i < frames; i++ {
		s.Step()
	}
	return s.Summary(frames)
}

// Summary totals the per-agent stats as they stand now
func (s *Simulation) Summary(frames int) Report {
	r := Report{Frames: frames, Agents: len(s.agents)}
	goal := s.nav.PixelToTile(s.target.X, s.target.Y)

	for _, e := range s.agents {
		entry := s.world.Entry(e)
		r.addAgent(entry, s.nav, goal)
	}
	return r
}

func (r *Report) addAgent(entry *donburi.Entry, nav *pathfinding.Navigator, goal pathfinding.TileCoord) {
	pos := Position.Get(entry)
	p := Pursuer.Get(entry)
	st := Stats.Get(entry)

	r.Searches += st.Searches
	r.Denied += st.Denied
	r.EmptyPaths += st.EmptyPaths
	r.Distance += st.Distance

	switch {
	case nav.PixelToTile(pos.X, pos.Y) == goal:
		r.Arrived++
	case p.Next >= len(p.Waypoints):
		r.Stuck++
	}
}
