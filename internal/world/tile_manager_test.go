package world

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestTileManager(t *testing.T) {
	// Write test config to a temporary file
	path := filepath.Join(t.TempDir(), "tiles.yaml")
	if err := os.WriteFile(path, []byte(testTilesYAML), 0o644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	tm := NewTileManager()
	if err := tm.LoadTileConfig(path); err != nil {
		t.Fatalf("Failed to load tile config: %v", err)
	}

	wall, ok := tm.GetTileTypeFromKey("wall")
	if !ok {
		t.Fatal("Expected wall to be loaded")
	}
	if !tm.IsSolid(wall) {
		t.Error("Expected wall to be solid")
	}
	if tm.IsHazard(wall) {
		t.Error("Expected wall not to be a hazard")
	}

	spikes, _ := tm.GetTileTypeFromKey("spikes")
	if tm.IsSolid(spikes) || !tm.IsHazard(spikes) {
		t.Error("Expected spikes to be a walkable hazard")
	}

	if got := tm.GetTileKey(spikes); got != "spikes" {
		t.Errorf("Expected key spikes, got %q", got)
	}
	if got := tm.Kind(spikes); got != "spikes" {
		t.Errorf("Expected kind spikes, got %q", got)
	}

	if tt, ok := tm.GetTileTypeFromLetter('~'); !ok || tm.GetTileKey(tt) != "water" {
		t.Error("Expected '~' to resolve to water")
	}
	if tm.GetLetterFromTileType(wall) != 'X' {
		t.Errorf("Expected wall letter X, got %q", tm.GetLetterFromTileType(wall))
	}

	keys := tm.GetAllTileKeys()
	if len(keys) != 4 || keys[0] != "floor" || keys[3] != "water" {
		t.Errorf("Expected sorted keys, got %v", keys)
	}
}

func TestTileManager_StableTypes(t *testing.T) {
	a := newTestTileManager(t)
	b := newTestTileManager(t)
	for _, key := range a.GetAllTileKeys() {
		ta, _ := a.GetTileTypeFromKey(key)
		tb, _ := b.GetTileTypeFromKey(key)
		if ta != tb || ta == TileNone {
			t.Errorf("tile %s: types %d and %d should match and be non-zero", key, ta, tb)
		}
	}
}

func TestTileManager_HazardKinds(t *testing.T) {
	tm := newTestTileManager(t)
	hazards := tm.HazardKinds()
	if hazards.Len() != 2 || !hazards.Contains("water") || !hazards.Contains("spikes") {
		t.Errorf("Expected water and spikes as hazards, got %v", hazards.Kinds())
	}
}

func TestTileManager_SetTileProperty(t *testing.T) {
	tm := newTestTileManager(t)
	spikes, _ := tm.GetTileTypeFromKey("spikes")

	if err := tm.SetTileProperty(spikes, "hazard", false); err != nil {
		t.Fatalf("SetTileProperty: %v", err)
	}
	if tm.IsHazard(spikes) {
		t.Error("Expected spikes hazard flag cleared")
	}
	if tm.HazardKinds().Contains("spikes") {
		t.Error("Hazard set should follow runtime changes")
	}

	if err := tm.SetTileProperty(spikes, "solid", "yes"); err == nil {
		t.Error("Expected error for non-boolean value")
	}
	if err := tm.SetTileProperty(spikes, "height", true); err == nil {
		t.Error("Expected error for unknown property")
	}
	if err := tm.SetTileProperty(TileType(999), "solid", true); !errors.Is(err, ErrUnknownTile) {
		t.Errorf("Expected ErrUnknownTile, got %v", err)
	}
}

func TestTileManager_LetterErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"duplicate letter", "tiles:\n  a:\n    letter: \"x\"\n  b:\n    letter: \"x\"\n"},
		{"reserved marker", "tiles:\n  a:\n    letter: \"@\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := NewTileManager()
			if err := tm.ParseTileConfig([]byte(tt.yaml)); !errors.Is(err, ErrDuplicateRune) {
				t.Errorf("Expected ErrDuplicateRune, got %v", err)
			}
		})
	}

	tm := NewTileManager()
	if err := tm.ParseTileConfig([]byte("tiles:\n  a:\n    letter: \"ab\"\n")); err == nil {
		t.Error("Expected error for multi-character letter")
	}
}

func TestTileManager_UnknownTypeDefaults(t *testing.T) {
	tm := newTestTileManager(t)
	unknown := TileType(42)
	if tm.IsSolid(unknown) || tm.IsHazard(unknown) {
		t.Error("Unknown tiles default to open ground")
	}
	if !tm.IsTransparent(unknown) {
		t.Error("Unknown tiles default to transparent")
	}
	if tm.GetLetterFromTileType(unknown) != '?' {
		t.Error("Unknown tiles render as '?'")
	}
}
