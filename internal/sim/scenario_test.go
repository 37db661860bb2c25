package sim

import (
	"os"
	"path/filepath"
	"testing"

	"gridtactics/internal/config"
	"gridtactics/internal/pathfinding"
	"gridtactics/internal/threading/monitoring"
)

const scenarioTiles = `tiles:
  floor:
    letter: "."
  wall:
    letter: "X"
    solid: true
  mud:
    letter: ","
    hazard: true
`

func writeScenario(t *testing.T, mapText string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	tilesPath := filepath.Join(dir, "tiles.yaml")
	mapPath := filepath.Join(dir, "arena.map")
	if err := os.WriteFile(tilesPath, []byte(scenarioTiles), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(mapPath, []byte(mapText), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.DefaultConfig()
	cfg.World.Tiles = tilesPath
	cfg.World.Map = mapPath
	return cfg
}

func TestScenario_RunToTarget(t *testing.T) {
	cfg := writeScenario(t, "XXXXXXXX\nX@....EX\nX.,,,..X\nXE.....X\nXXXXXXXX\n")
	cfg.Pathfinding.MaxPathfindsPerFrame = 1

	sc, err := LoadScenario(cfg)
	if err != nil {
		t.Fatalf("LoadScenario: %v", err)
	}
	if got := sc.StartTile(); got != (pathfinding.TileCoord{Col: 1, Row: 1}) {
		t.Errorf("expected start (1,1), got %v", got)
	}
	if !sc.Tiles.HazardKinds().Contains("mud") {
		t.Error("mud should be a hazard")
	}

	monitor := monitoring.NewSearchMonitor()
	nav, err := sc.NewNavigator(nil, monitor)
	if err != nil {
		t.Fatalf("NewNavigator: %v", err)
	}
	s := sc.NewSimulation(nav, 4, 0)
	if s.AgentCount() != 4 {
		t.Fatalf("expected 4 agents, got %d", s.AgentCount())
	}

	r := RunReport(s, 300)
	if r.Arrived != 4 {
		t.Errorf("every agent should reach the start, got %s", r)
	}
	if r.Denied == 0 {
		t.Error("four agents sharing a budget of one should see denials")
	}

	m := monitor.GetCurrentMetrics()
	if int(m.Searches) != r.Searches || int(m.BudgetDenials) != 0 {
		t.Errorf("monitor searches %d vs report %d, denials %d", m.Searches, r.Searches, m.BudgetDenials)
	}
}

func TestScenario_NoStartFallsBack(t *testing.T) {
	cfg := writeScenario(t, "XXXX\nX..X\nXXXX\n")
	sc, err := LoadScenario(cfg)
	if err != nil {
		t.Fatalf("LoadScenario: %v", err)
	}
	if got := sc.StartTile(); got != (pathfinding.TileCoord{Col: 1, Row: 1}) {
		t.Errorf("expected first open tile, got %v", got)
	}
	nav, err := sc.NewNavigator(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if s := sc.NewSimulation(nav, 3, 0); s.AgentCount() != 0 {
		t.Error("map without enemy spawns should have no agents")
	}
}

func TestScenario_MissingFiles(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.World.Tiles = filepath.Join(t.TempDir(), "none.yaml")
	if _, err := LoadScenario(cfg); err == nil {
		t.Error("expected error for missing tile config")
	}
}
