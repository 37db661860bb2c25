package pathfinding

import "gridtactics/internal/mathutil"

// walkLine steps from a toward b with integer Bresenham, major axis first,
// calling visit for every tile stepped onto (a excluded, b included).
// Stepping stops early when visit returns false.
func walkLine(a, b TileCoord, visit func(t TileCoord) bool) {
	dx := mathutil.IntAbs(b.Col - a.Col)
	dy := mathutil.IntAbs(b.Row - a.Row)
	sx := mathutil.IntSign(b.Col - a.Col)
	sy := mathutil.IntSign(b.Row - a.Row)
	x, y := a.Col, a.Row

	if dx >= dy {
		err := dx / 2
		for i := 0; i < dx; i++ {
			x += sx
			err -= dy
			if err < 0 {
				y += sy
				err += dx
			}
			if !visit(TileCoord{Col: x, Row: y}) {
				return
			}
		}
		return
	}

	err := dy / 2
	for i := 0; i < dy; i++ {
		y += sy
		err -= dx
		if err < 0 {
			x += sx
			err += dy
		}
		if !visit(TileCoord{Col: x, Row: y}) {
			return
		}
	}
}

// LineTiles returns the tiles traced from a to b, a excluded.
func LineTiles(a, b TileCoord) []TileCoord {
	tiles := make([]TileCoord, 0, mathutil.Chebyshev(b.Col-a.Col, b.Row-a.Row))
	walkLine(a, b, func(t TileCoord) bool {
		tiles = append(tiles, t)
		return true
	})
	return tiles
}

// blocksSight reports whether a tile stops a sight line. Tiles outside the
// grid block; hazards never do.
func blocksSight(g Grid, t TileCoord) bool {
	return !inBounds(g, t.Col, t.Row) || g.IsSolid(t.Col, t.Row)
}

// HasLineOfSight reports whether no solid tile lies strictly between the
// tiles containing (x1, y1) and (x2, y2).
func HasLineOfSight(g Grid, tileSize int, x1, y1, x2, y2 float64) bool {
	from := PixelToTile(x1, y1, tileSize)
	to := PixelToTile(x2, y2, tileSize)
	if from == to {
		return true
	}

	visible := true
	walkLine(from, to, func(t TileCoord) bool {
		if t == to {
			return false
		}
		if blocksSight(g, t) {
			visible = false
			return false
		}
		return true
	})
	return visible
}

// HasLineOfSight checks visibility on the navigator's grid. It costs no budget.
func (n *Navigator) HasLineOfSight(x1, y1, x2, y2 float64) bool {
	return HasLineOfSight(n.grid, n.tileSize, x1, y1, x2, y2)
}
