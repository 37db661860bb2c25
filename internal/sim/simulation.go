package sim

import (
	"math"

	"gridtactics/internal/pathfinding"

	"github.com/yohamta/donburi"
)

const (
	DefaultRepathInterval = 30
	DefaultSpeed          = 4.0
)

// AgentOptions configures a pursuing agent. Zero values use the defaults.
type AgentOptions struct {
	RepathInterval   int
	Speed            float64
	Delay            int // frames before the first search
	EightDirectional bool
}

// AgentView is a read-only snapshot of one agent for drawing and reports
type AgentView struct {
	Entity    donburi.Entity
	X, Y      float64
	Waypoints pathfinding.Path
	Next      int
	Stats     StatsData
}

// Simulation is a frame driver: it owns the per-frame budget reset and moves
// agents toward a shared target along paths from one navigator.
type Simulation struct {
	world  donburi.World
	nav    *pathfinding.Navigator
	agents []donburi.Entity
	target pathfinding.PixelPos
	frame  int
	avoid  bool
}

// New creates an empty simulation over nav
func New(nav *pathfinding.Navigator) *Simulation {
	return &Simulation{
		world: donburi.NewWorld(),
		nav:   nav,
		avoid: true,
	}
}

// Navigator returns the navigator agents search with
func (s *Simulation) Navigator() *pathfinding.Navigator { return s.nav }

// World returns the ECS world holding the agents
func (s *Simulation) World() donburi.World { return s.world }

// Frame returns the number of completed steps
func (s *Simulation) Frame() int { return s.frame }

// SetAvoidHazards sets whether agents route around hazard tiles
func (s *Simulation) SetAvoidHazards(avoid bool) { s.avoid = avoid }

// SetTarget moves the point every agent pursues
func (s *Simulation) SetTarget(x, y float64) {
	s.target = pathfinding.PixelPos{X: x, Y: y}
}

// Target returns the point agents pursue
func (s *Simulation) Target() pathfinding.PixelPos { return s.target }

// AddAgent spawns an agent at pixel (x, y). Agents act in the order they were added.
func (s *Simulation) AddAgent(x, y float64, opts AgentOptions) donburi.Entity {
	if opts.RepathInterval <= 0 {
		opts.RepathInterval = DefaultRepathInterval
	}
	if opts.Speed <= 0 {
		opts.Speed = DefaultSpeed
	}

	e := s.world.Create(Agent, Position, Pursuer, Stats)
	entry := s.world.Entry(e)
	Position.SetValue(entry, PositionData{X: x, Y: y})
	Pursuer.SetValue(entry, PursuerData{
		RepathInterval:   opts.RepathInterval,
		Speed:            opts.Speed,
		Cooldown:         max(opts.Delay, 0),
		EightDirectional: opts.EightDirectional,
	})
	s.agents = append(s.agents, e)
	return e
}

// AgentCount returns the number of agents
func (s *Simulation) AgentCount() int { return len(s.agents) }

// Step advances one frame. The budget is reset once, before any agent acts;
// an agent refused a search retries on the next frame.
func (s *Simulation) Step() {
	s.nav.ResetPathfindBudget()

	for _, e := range s.agents {
		entry := s.world.Entry(e)
		pos := Position.Get(entry)
		p := Pursuer.Get(entry)
		st := Stats.Get(entry)

		if p.Cooldown > 0 {
			p.Cooldown--
		} else {
			s.repath(pos, p, st)
		}
		advance(pos, p, st)
	}

	s.frame++
}

func (s *Simulation) repath(pos *PositionData, p *PursuerData, st *StatsData) {
	if !s.nav.CanPathfind() {
		st.Denied++
		return
	}

	path := s.nav.FindPath(pos.X, pos.Y, s.target.X, s.target.Y,
		pathfinding.WithAvoidHazards(s.avoid),
		pathfinding.WithEightDirectional(p.EightDirectional),
	)
	st.Searches++
	p.Cooldown = p.RepathInterval
	if path.Empty() {
		// No route now: stop rather than follow the stale one.
		st.EmptyPaths++
		p.Waypoints = nil
		p.Next = 0
		return
	}
	p.Waypoints = path
	p.Next = 0
}

// advance moves toward the next waypoint, carrying leftover movement onto
// the following one.
func advance(pos *PositionData, p *PursuerData, st *StatsData) {
	budget := p.Speed
	for budget > 0 && p.Next < len(p.Waypoints) {
		wp := p.Waypoints[p.Next]
		dx := wp.X - pos.X
		dy := wp.Y - pos.Y
		dist := math.Hypot(dx, dy)
		if dist <= budget {
			pos.X, pos.Y = wp.X, wp.Y
			st.Distance += dist
			budget -= dist
			p.Next++
			continue
		}
		pos.X += dx / dist * budget
		pos.Y += dy / dist * budget
		st.Distance += budget
		budget = 0
	}
}

// Lookup returns a snapshot of one agent
func (s *Simulation) Lookup(e donburi.Entity) (AgentView, bool) {
	if !s.world.Valid(e) {
		return AgentView{}, false
	}
	return view(s.world.Entry(e)), true
}

// EachAgent calls fn with a snapshot of every agent
func (s *Simulation) EachAgent(fn func(AgentView)) {
	Agent.Each(s.world, func(entry *donburi.Entry) {
		fn(view(entry))
	})
}

func view(entry *donburi.Entry) AgentView {
	pos := Position.Get(entry)
	p := Pursuer.Get(entry)
	return AgentView{
		Entity:    entry.Entity(),
		X:         pos.X,
		Y:         pos.Y,
		Waypoints: p.Waypoints,
		Next:      p.Next,
		Stats:     *Stats.Get(entry),
	}
}
