package world

import (
	"strings"
	"testing"
)

const testTilesYAML = `tiles:
  floor:
    name: "Floor"
    letter: "."
    transparent: true
  wall:
    name: "Wall"
    letter: "X"
    solid: true
  water:
    name: "Deep Water"
    letter: "~"
    solid: true
    hazard: true
    transparent: true
  spikes:
    name: "Spike Trap"
    letter: "^"
    hazard: true
    transparent: true
`

func newTestTileManager(t *testing.T) *TileManager {
	t.Helper()
	tm := NewTileManager()
	if err := tm.ParseTileConfig([]byte(testTilesYAML)); err != nil {
		t.Fatalf("Failed to load tile config: %v", err)
	}
	return tm
}

func mustParseMap(t *testing.T, tm *TileManager, rows ...string) *MapData {
	t.Helper()
	md, err := NewMapLoader(tm).ParseMap(strings.NewReader(strings.Join(rows, "\n")), "test")
	if err != nil {
		t.Fatalf("ParseMap: %v", err)
	}
	return md
}
