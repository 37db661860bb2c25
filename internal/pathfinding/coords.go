package pathfinding

import (
	"math"

	"gridtactics/internal/mathutil"
)

// DefaultTileSize is the pixel edge length of one grid tile.
const DefaultTileSize = 64

// TileCoord addresses one grid cell. It is comparable and safe to use as a map key.
type TileCoord struct {
	Col int
	Row int
}

// Add returns the coordinate offset by (dc, dr).
func (t TileCoord) Add(dc, dr int) TileCoord {
	return TileCoord{Col: t.Col + dc, Row: t.Row + dr}
}

// PixelPos is a position in world pixel space.
type PixelPos struct {
	X float64
	Y float64
}

// PixelToTile converts a pixel position to the tile containing it.
// Out-of-range positions produce out-of-range tiles; callers reject them downstream.
func PixelToTile(x, y float64, tileSize int) TileCoord {
	ts := float64(tileSize)
	return TileCoord{
		Col: int(math.Floor(x / ts)),
		Row: int(math.Floor(y / ts)),
	}
}

// TileToPixel returns the centre of a tile in pixel space (never its origin).
func TileToPixel(t TileCoord, tileSize int) PixelPos {
	half := float64(tileSize) / 2
	return PixelPos{
		X: float64(t.Col*tileSize) + half,
		Y: float64(t.Row*tileSize) + half,
	}
}

func manhattan(a, b TileCoord) int {
	return mathutil.Manhattan(a.Col-b.Col, a.Row-b.Row)
}

func chebyshev(a, b TileCoord) int {
	return mathutil.Chebyshev(a.Col-b.Col, a.Row-b.Row)
}
