package pathfinding

import "testing"

func TestFindCoverPosition(t *testing.T) {
	threatX, threatY := center(TileCoord{4, 1})

	t.Run("open room has no cover", func(t *testing.T) {
		n := newTestNavigator(t, openRoom(10, 10))
		sx, sy := center(TileCoord{4, 6})
		if pos, ok := n.FindCoverPosition(sx, sy, threatX, threatY, 0); ok {
			t.Errorf("expected no cover, got %v", pos)
		}
	})

	n := newTestNavigator(t, openRoom(10, 10).withWalls(TileCoord{4, 4}))

	t.Run("seeker already covered", func(t *testing.T) {
		sx, sy := center(TileCoord{4, 6})
		pos, ok := n.FindCoverPosition(sx, sy, threatX, threatY, 0)
		if !ok {
			t.Fatal("expected cover behind the pillar")
		}
		if got := n.PixelToTile(pos.X, pos.Y); got != (TileCoord{4, 6}) {
			t.Errorf("seeker's own tile is cover, got %v", got)
		}
	})

	t.Run("step behind pillar", func(t *testing.T) {
		sx, sy := center(TileCoord{5, 6})
		pos, ok := n.FindCoverPosition(sx, sy, threatX, threatY, 3)
		if !ok {
			t.Fatal("expected cover behind the pillar")
		}
		if got := n.PixelToTile(pos.X, pos.Y); got != (TileCoord{4, 6}) {
			t.Errorf("expected (4,6), got %v", got)
		}
		if hit := n.TileToPixel(TileCoord{4, 6}); pos != hit {
			t.Errorf("cover should be a tile centre, got %v", pos)
		}
	})

	t.Run("radius too small", func(t *testing.T) {
		sx, sy := center(TileCoord{7, 7})
		if pos, ok := n.FindCoverPosition(sx, sy, threatX, threatY, 1); ok {
			t.Errorf("no cover within one tile, got %v", pos)
		}
	})
}

func TestFindFlankingPosition(t *testing.T) {
	allyX, allyY := center(TileCoord{2, 5})
	targetX, targetY := center(TileCoord{5, 5})

	n := newTestNavigator(t, openRoom(12, 10))
	pos, ok := n.FindFlankingPosition(targetX, targetY, allyX, allyY, 2)
	if !ok {
		t.Fatal("expected a flanking position")
	}
	if got := n.PixelToTile(pos.X, pos.Y); got != (TileCoord{7, 5}) {
		t.Errorf("expected (7,5), got %v", got)
	}

	n = newTestNavigator(t, openRoom(12, 10).withWalls(TileCoord{7, 5}))
	pos, ok = n.FindFlankingPosition(targetX, targetY, allyX, allyY, 2)
	if !ok {
		t.Fatal("expected a substitute flanking position")
	}
	if got := n.PixelToTile(pos.X, pos.Y); got != (TileCoord{6, 4}) {
		t.Errorf("expected ring substitute (6,4), got %v", got)
	}

	if pos, ok := n.FindFlankingPosition(targetX, targetY, targetX, targetY, 2); ok {
		t.Errorf("ally on top of target has no flank direction, got %v", pos)
	}

	edge := newTestNavigator(t, openRoom(8, 8))
	ax, ay := center(TileCoord{1, 3})
	tx, ty := center(TileCoord{6, 3})
	if pos, ok := edge.FindFlankingPosition(tx, ty, ax, ay, 4); ok {
		t.Errorf("projection beyond the map edge should fail, got %v", pos)
	}
	if edge.Budget().Used() != 0 {
		t.Error("tactical queries must not spend budget")
	}
}
