package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseConfig_Values(t *testing.T) {
	data := []byte(`
world:
  tile_size: 32
  map: maps/test.map
pathfinding:
  max_pathfinds_per_frame: 5
  max_distance: 12
  avoid_hazards: false
  eight_directional: true
report:
  runs: 2
`)
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.GetTileSize() != 32 {
		t.Errorf("expected tile size 32, got %d", cfg.GetTileSize())
	}
	if cfg.GetMapPath() != "maps/test.map" {
		t.Errorf("unexpected map path %q", cfg.GetMapPath())
	}
	if cfg.GetMaxPathfindsPerFrame() != 5 || cfg.GetMaxDistance() != 12 {
		t.Errorf("pathfinding values not decoded: %+v", cfg.Pathfinding)
	}
	if cfg.GetAvoidHazards() {
		t.Error("avoid_hazards: false should be honoured")
	}
	if !cfg.GetEightDirectional() {
		t.Error("eight_directional should be true")
	}
	if cfg.GetReportRuns() != 2 {
		t.Errorf("expected 2 runs, got %d", cfg.GetReportRuns())
	}
}

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("{}"))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.GetTileSize() != DefaultTileSize {
		t.Errorf("expected default tile size, got %d", cfg.GetTileSize())
	}
	if cfg.GetMaxPathfindsPerFrame() != DefaultMaxPathfindsPerFrame {
		t.Errorf("expected default budget, got %d", cfg.GetMaxPathfindsPerFrame())
	}
	if cfg.GetRingSearchRadius() != 3 || cfg.GetCoverSearchRadius() != 6 || cfg.GetFlankDistance() != 4 {
		t.Error("tactical radii should default to 3, 6 and 4")
	}
	if !cfg.GetAvoidHazards() {
		t.Error("avoid_hazards should default to true")
	}
	if cfg.GetWindowTitle() != DefaultWindowTitle || cfg.GetScreenWidth() != DefaultScreenWidth {
		t.Error("viewer values should default")
	}
	if cfg.GetReportWorkers() != 0 {
		t.Error("workers should default to 0")
	}
}

func TestParseConfig_RejectsNegative(t *testing.T) {
	_, err := ParseConfig([]byte("pathfinding:\n  max_pathfinds_per_frame: -1\n"))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}

	_, err = ParseConfig([]byte("world: [not, a, map]"))
	if err == nil {
		t.Fatal("expected a decode error")
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if !cfg.GetAvoidHazards() {
		t.Error("default config avoids hazards")
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("world:\n  tile_size: 48\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if GlobalConfig != cfg {
		t.Error("LoadConfig should set GlobalConfig")
	}
	if cfg.GetTileSize() != 48 {
		t.Errorf("expected 48, got %d", cfg.GetTileSize())
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}

func TestMustLoadConfigPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for missing config")
		}
	}()
	MustLoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
}
