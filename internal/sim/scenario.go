package sim

import (
	"fmt"
	"log"

	"gridtactics/internal/config"
	"gridtactics/internal/pathfinding"
	"gridtactics/internal/threading/monitoring"
	"gridtactics/internal/world"
)

// Scenario is a configured map ready to be navigated
type Scenario struct {
	Config *config.Config
	Tiles  *world.TileManager
	Map    *world.MapData
}

// LoadScenario loads the tile set and map named in cfg
func LoadScenario(cfg *config.Config) (*Scenario, error) {
	tiles := world.NewTileManager()
	if err := tiles.LoadTileConfig(cfg.GetTilesPath()); err != nil {
		return nil, err
	}
	md, err := world.LoadMapFile(cfg.GetMapPath(), tiles)
	if err != nil {
		return nil, err
	}
	if !md.HasStart() {
		log.Printf("Warning: map %s has no player start, using the first open tile", md.Name)
	}
	return &Scenario{Config: cfg, Tiles: tiles, Map: md}, nil
}

// NewNavigator builds a navigator over the scenario map. A nil budget gets a
// private one sized from the config.
func (sc *Scenario) NewNavigator(budget *pathfinding.Budget, monitor *monitoring.SearchMonitor) (*pathfinding.Navigator, error) {
	if budget == nil {
		budget = pathfinding.NewBudget(sc.Config.GetMaxPathfindsPerFrame())
	}
	nav, err := pathfinding.NewNavigator(sc.Map.Tiles, pathfinding.Options{
		TileSize:          sc.Config.GetTileSize(),
		Hazards:           sc.Tiles.HazardKinds(),
		Budget:            budget,
		Monitor:           monitor,
		MaxDistance:       sc.Config.GetMaxDistance(),
		RingSearchRadius:  sc.Config.GetRingSearchRadius(),
		CoverSearchRadius: sc.Config.GetCoverSearchRadius(),
		FlankDistance:     sc.Config.GetFlankDistance(),
	})
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", sc.Map.Name, err)
	}
	return nav, nil
}

// StartTile returns the player start, or the first walkable tile in
// row-major order when the map has none.
func (sc *Scenario) StartTile() pathfinding.TileCoord {
	if sc.Map.HasStart() {
		return pathfinding.TileCoord{Col: sc.Map.StartCol, Row: sc.Map.StartRow}
	}
	tm := sc.Map.Tiles
	for row := 0; row < tm.Rows(); row++ {
		for col := 0; col < tm.Cols(); col++ {
			if !tm.IsSolid(col, row) {
				return pathfinding.TileCoord{Col: col, Row: row}
			}
		}
	}
	return pathfinding.TileCoord{}
}

// NewSimulation places one pursuing agent on each enemy spawn, cycling
// through the spawns when agents exceeds them, all chasing the start tile.
// agents <= 0 uses one agent per spawn. Agent i waits i*stagger frames
// before its first search.
func (sc *Scenario) NewSimulation(nav *pathfinding.Navigator, agents, stagger int) *Simulation {
	s := New(nav)
	s.SetAvoidHazards(sc.Config.GetAvoidHazards())
	target := nav.TileToPixel(sc.StartTile())
	s.SetTarget(target.X, target.Y)

	spawns := sc.Map.Enemies()
	if len(spawns) == 0 {
		return s
	}
	if agents <= 0 {
		agents = len(spawns)
	}
	for i := 0; i < agents; i++ {
		spawn := spawns[i%len(spawns)]
		pos := nav.TileToPixel(pathfinding.TileCoord{Col: spawn.Col, Row: spawn.Row})
		s.AddAgent(pos.X, pos.Y, AgentOptions{
			RepathInterval:   sc.Config.GetRepathInterval(),
			Delay:            i * stagger,
			EightDirectional: sc.Config.GetEightDirectional(),
		})
	}
	return s
}
