package world

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMapFile(t *testing.T) {
	tm := newTestTileManager(t)
	dir := t.TempDir()

	asciiPath := filepath.Join(dir, "room.map")
	if err := os.WriteFile(asciiPath, []byte("XXX\nX@X\nXXX\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	tmxPath := filepath.Join(dir, "yard.TMX")
	if err := os.WriteFile(tmxPath, []byte(strings.Replace(testTMX, "%s", "water", 1)), 0o644); err != nil {
		t.Fatal(err)
	}

	md, err := LoadMapFile(asciiPath, tm)
	if err != nil {
		t.Fatalf("ascii map: %v", err)
	}
	if md.Tiles.Cols() != 3 || !md.HasStart() {
		t.Errorf("unexpected ascii map %+v", md)
	}

	md, err = LoadMapFile(tmxPath, tm)
	if err != nil {
		t.Fatalf("tmx map: %v", err)
	}
	if md.Tiles.Classification(3, 1) != "water" {
		t.Errorf("expected water from the tmx tileset, got %q", md.Tiles.Classification(3, 1))
	}
}
