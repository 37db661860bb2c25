package viewer

import (
	"fmt"
	"log"
	"strings"

	"gridtactics/internal/config"
	"gridtactics/internal/pathfinding"
	"gridtactics/internal/sim"
	"gridtactics/internal/threading/monitoring"
	"gridtactics/internal/world"
)

// Overlay selects the tactical query drawn on top of the map
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayCover
	OverlayFlank
	OverlayLineOfSight
)

func (o Overlay) String() string {
	switch o {
	case OverlayCover:
		return "cover"
	case OverlayFlank:
		return "flank"
	case OverlayLineOfSight:
		return "line of sight"
	default:
		return "none"
	}
}

// Controller holds the interactive state behind the viewer. It drives one
// frame per Update and never touches the screen.
type Controller struct {
	cfg      *config.Config
	scenario *sim.Scenario
	nav      *pathfinding.Navigator
	sim      *sim.Simulation
	monitor  *monitoring.SearchMonitor
	// builds the navigator for each rebuild
	newNavigator func(*sim.Scenario) (*pathfinding.Navigator, error)

	start, goal pathfinding.TileCoord
	eight       bool
	avoid       bool
	paused      bool

	path  pathfinding.Path
	dirty bool

	overlay  Overlay
	marker   pathfinding.PixelPos
	hasMark  bool
	sight    []pathfinding.TileCoord
	visible  bool
	status   string
	reloaded int
}

// NewController loads the configured scenario
func NewController(cfg *config.Config) (*Controller, error) {
	c := &Controller{
		cfg:     cfg,
		monitor: monitoring.NewSearchMonitor(),
		eight:   cfg.GetEightDirectional(),
		avoid:   cfg.GetAvoidHazards(),
	}
	c.newNavigator = func(sc *sim.Scenario) (*pathfinding.Navigator, error) {
		return sc.NewNavigator(nil, c.monitor)
	}
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload re-reads the tile set and map from disk. On failure the current
// scenario stays in place.
func (c *Controller) Reload() error {
	sc, err := sim.LoadScenario(c.cfg)
	if err != nil {
		return err
	}
	prev := c.scenario
	c.scenario = sc
	if err := c.rebuild(); err != nil {
		c.scenario = prev
		return err
	}

	c.start = sc.StartTile()
	c.goal = c.start
	if enemies := sc.Map.Enemies(); len(enemies) > 0 {
		c.goal = pathfinding.TileCoord{Col: enemies[0].Col, Row: enemies[0].Row}
	}
	c.reloaded++
	c.setStatus("loaded %s (%dx%d)", sc.Map.Name, sc.Map.Tiles.Cols(), sc.Map.Tiles.Rows())
	c.invalidate()
	return nil
}

// rebuild makes a fresh navigator and agent set for the current scenario
func (c *Controller) rebuild() error {
	nav, err := c.newNavigator(c.scenario)
	if err != nil {
		return err
	}
	c.nav = nav
	c.sim = c.scenario.NewSimulation(nav, c.cfg.GetReportAgents(), 0)
	c.sim.SetAvoidHazards(c.avoid)
	return nil
}

func (c *Controller) setStatus(format string, args ...interface{}) {
	c.status = fmt.Sprintf(format, args...)
	log.Print(c.status)
}

func (c *Controller) invalidate() {
	c.dirty = true
	c.refreshOverlay()
}

// Update runs one frame: the agents act first, then the viewer's own route
// is searched if it changed and budget remains.
func (c *Controller) Update() {
	target := c.nav.TileToPixel(c.start)
	c.sim.SetTarget(target.X, target.Y)
	if c.paused {
		c.nav.ResetPathfindBudget()
	} else {
		c.sim.Step()
	}

	if c.dirty && c.nav.CanPathfind() {
		s := c.nav.TileToPixel(c.start)
		g := c.nav.TileToPixel(c.goal)
		c.path = c.nav.FindPath(s.X, s.Y, g.X, g.Y,
			pathfinding.WithAvoidHazards(c.avoid),
			pathfinding.WithEightDirectional(c.eight),
		)
		c.dirty = false
	}
}

func (c *Controller) inMap(t pathfinding.TileCoord) bool {
	tm := c.scenario.Map.Tiles
	return t.Col >= 0 && t.Row >= 0 && t.Col < tm.Cols() && t.Row < tm.Rows()
}

// SetStart moves the route start, which is also where the agents converge
func (c *Controller) SetStart(t pathfinding.TileCoord) {
	if !c.inMap(t) || t == c.start {
		return
	}
	c.start = t
	c.invalidate()
}

// SetGoal moves the route goal
func (c *Controller) SetGoal(t pathfinding.TileCoord) {
	if !c.inMap(t) || t == c.goal {
		return
	}
	c.goal = t
	c.invalidate()
}

// ToggleEightDirectional switches diagonal movement for the viewer route
func (c *Controller) ToggleEightDirectional() {
	c.eight = !c.eight
	c.setStatus("8-directional: %v", c.eight)
	c.invalidate()
}

// ToggleHazards switches hazard avoidance for the route and the agents
func (c *Controller) ToggleHazards() {
	c.avoid = !c.avoid
	c.sim.SetAvoidHazards(c.avoid)
	c.setStatus("avoid hazards: %v", c.avoid)
	c.invalidate()
}

// ToggleOverlay shows o, or hides it when it is already shown
func (c *Controller) ToggleOverlay(o Overlay) {
	if c.overlay == o {
		o = OverlayNone
	}
	c.overlay = o
	c.refreshOverlay()
}

// TogglePause freezes the agents. The viewer route keeps working.
func (c *Controller) TogglePause() {
	c.paused = !c.paused
}

// ResetAgents puts every agent back on its spawn
func (c *Controller) ResetAgents() error {
	if err := c.rebuild(); err != nil {
		return err
	}
	c.invalidate()
	return nil
}

// ToggleWall flips the tile at t between wall and floor
func (c *Controller) ToggleWall(t pathfinding.TileCoord) error {
	tm := c.scenario.Map.Tiles
	current, ok := tm.Tile(t.Col, t.Row)
	if !ok {
		return nil
	}
	key := world.WallKey
	if c.scenario.Tiles.GetTileKey(current) == world.WallKey {
		key = world.FloorKey
	}
	next, ok := c.scenario.Tiles.GetTileTypeFromKey(key)
	if !ok {
		return fmt.Errorf("tile set has no %q tile: %w", key, world.ErrUnknownTile)
	}
	if err := tm.SetTile(t.Col, t.Row, next); err != nil {
		return err
	}
	c.invalidate()
	return nil
}

// ToggleHazardKind flips the hazard flag of the kind of tile at t. The
// navigator is rebuilt so its hazard set follows.
func (c *Controller) ToggleHazardKind(t pathfinding.TileCoord) error {
	tileType, ok := c.scenario.Map.Tiles.Tile(t.Col, t.Row)
	if !ok {
		return nil
	}
	tiles := c.scenario.Tiles
	hazard := !tiles.IsHazard(tileType)
	if err := tiles.SetTileProperty(tileType, "hazard", hazard); err != nil {
		return err
	}
	if err := c.rebuild(); err != nil {
		if restoreErr := tiles.SetTileProperty(tileType, "hazard", !hazard); restoreErr != nil {
			log.Printf("Warning: could not restore hazard flag: %v", restoreErr)
		}
		return err
	}
	c.setStatus("%s hazard: %v", tiles.GetTileKey(tileType), hazard)
	c.invalidate()
	return nil
}

// refreshOverlay recomputes the active tactical query. These queries cost no budget.
func (c *Controller) refreshOverlay() {
	c.hasMark = false
	c.sight = nil
	c.visible = false

	s := c.nav.TileToPixel(c.start)
	g := c.nav.TileToPixel(c.goal)
	switch c.overlay {
	case OverlayCover:
		c.marker, c.hasMark = c.nav.FindCoverPosition(s.X, s.Y, g.X, g.Y, 0)
	case OverlayFlank:
		c.marker, c.hasMark = c.nav.FindFlankingPosition(g.X, g.Y, s.X, s.Y, 0)
	case OverlayLineOfSight:
		c.sight = pathfinding.LineTiles(c.start, c.goal)
		c.visible = c.nav.HasLineOfSight(s.X, s.Y, g.X, g.Y)
	}
}

func (c *Controller) Config() *config.Config                 { return c.cfg }
func (c *Controller) Scenario() *sim.Scenario                { return c.scenario }
func (c *Controller) Navigator() *pathfinding.Navigator      { return c.nav }
func (c *Controller) Simulation() *sim.Simulation            { return c.sim }
func (c *Controller) Monitor() *monitoring.SearchMonitor     { return c.monitor }
func (c *Controller) Start() pathfinding.TileCoord           { return c.start }
func (c *Controller) Goal() pathfinding.TileCoord            { return c.goal }
func (c *Controller) Path() pathfinding.Path                 { return c.path }
func (c *Controller) Pending() bool                          { return c.dirty }
func (c *Controller) EightDirectional() bool                 { return c.eight }
func (c *Controller) AvoidHazards() bool                     { return c.avoid }
func (c *Controller) Paused() bool                           { return c.paused }
func (c *Controller) Overlay() Overlay                       { return c.overlay }
func (c *Controller) Status() string                         { return c.status }
func (c *Controller) Marker() (pathfinding.PixelPos, bool)   { return c.marker, c.hasMark }
func (c *Controller) Sight() ([]pathfinding.TileCoord, bool) { return c.sight, c.visible }

// PathText renders the current route for the clipboard
func (c *Controller) PathText() string {
	return FormatPath(c.start, c.path, c.nav.TileSize())
}

// FormatPath lists the route as tile coordinates, start first
func FormatPath(start pathfinding.TileCoord, path pathfinding.Path, tileSize int) string {
	if path.Empty() {
		return fmt.Sprintf("(%d,%d) no path", start.Col, start.Row)
	}
	parts := make([]string, 0, path.Len()+1)
	parts = append(parts, fmt.Sprintf("(%d,%d)", start.Col, start.Row))
	for _, t := range path.Tiles(tileSize) {
		parts = append(parts, fmt.Sprintf("(%d,%d)", t.Col, t.Row))
	}
	return strings.Join(parts, " -> ")
}
