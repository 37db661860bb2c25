package sim

import (
	"testing"

	"gridtactics/internal/pathfinding"
)

// roomGrid is a walled rectangle; blocked lists extra solid tiles.
type roomGrid struct {
	w, h    int
	blocked map[pathfinding.TileCoord]bool
}

func (g *roomGrid) Rows() int { return g.h }
func (g *roomGrid) Cols() int { return g.w }

func (g *roomGrid) IsSolid(col, row int) bool {
	if col <= 0 || row <= 0 || col >= g.w-1 || row >= g.h-1 {
		return true
	}
	return g.blocked[pathfinding.TileCoord{Col: col, Row: row}]
}

func (g *roomGrid) Classification(col, row int) pathfinding.TileKind {
	if g.IsSolid(col, row) {
		return "wall"
	}
	return "floor"
}

func newRoom(w, h int, blocked ...pathfinding.TileCoord) *roomGrid {
	g := &roomGrid{w: w, h: h, blocked: make(map[pathfinding.TileCoord]bool)}
	for _, b := range blocked {
		g.blocked[b] = true
	}
	return g
}

func newTestSim(t *testing.T, g pathfinding.Grid, budget *pathfinding.Budget) *Simulation {
	t.Helper()
	nav, err := pathfinding.NewNavigator(g, pathfinding.Options{Budget: budget})
	if err != nil {
		t.Fatalf("NewNavigator: %v", err)
	}
	return New(nav)
}

func tileCenter(col, row int) (float64, float64) {
	p := pathfinding.TileToPixel(pathfinding.TileCoord{Col: col, Row: row}, pathfinding.DefaultTileSize)
	return p.X, p.Y
}
