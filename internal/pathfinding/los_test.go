package pathfinding

import "testing"

func TestLineTiles(t *testing.T) {
	got := LineTiles(TileCoord{0, 0}, TileCoord{3, 1})
	want := []TileCoord{{1, 0}, {2, 1}, {3, 1}}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tile %d: expected %v, got %v", i, want[i], got[i])
		}
	}

	if tiles := LineTiles(TileCoord{2, 2}, TileCoord{2, 2}); len(tiles) != 0 {
		t.Errorf("line to self should be empty, got %v", tiles)
	}

	steep := LineTiles(TileCoord{5, 5}, TileCoord{4, 1})
	if len(steep) != 4 || steep[len(steep)-1] != (TileCoord{4, 1}) {
		t.Errorf("steep line should step once per row and end on target, got %v", steep)
	}
}

func TestHasLineOfSight(t *testing.T) {
	g := openRoom(10, 5).withWalls(TileCoord{5, 2})
	g.rows[1] = "#..^.....#"
	n := newTestNavigator(t, g)

	tests := []struct {
		name     string
		from, to TileCoord
		want     bool
	}{
		{"same tile", TileCoord{2, 2}, TileCoord{2, 2}, true},
		{"open row", TileCoord{1, 3}, TileCoord{8, 3}, true},
		{"wall between", TileCoord{2, 2}, TileCoord{8, 2}, false},
		{"wall is the end tile", TileCoord{2, 2}, TileCoord{5, 2}, true},
		{"wall is the start tile", TileCoord{5, 2}, TileCoord{8, 2}, true},
		{"hazard does not block", TileCoord{1, 1}, TileCoord{6, 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x1, y1 := center(tt.from)
			x2, y2 := center(tt.to)
			if got := n.HasLineOfSight(x1, y1, x2, y2); got != tt.want {
				t.Errorf("HasLineOfSight(%v, %v) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}

	if n.Budget().Used() != 0 {
		t.Errorf("line of sight must not spend budget, used=%d", n.Budget().Used())
	}
}

func TestHasLineOfSight_OutsideGridBlocks(t *testing.T) {
	g := newMockGrid("....")
	x1, y1 := center(TileCoord{0, 0})
	x2, y2 := center(TileCoord{6, 0})
	if HasLineOfSight(g, DefaultTileSize, x1, y1, x2, y2) {
		t.Error("sight line leaving the grid should be blocked")
	}
	x2, y2 = center(TileCoord{3, 0})
	if !HasLineOfSight(g, DefaultTileSize, x1, y1, x2, y2) {
		t.Error("sight line inside an open row should be clear")
	}
}
