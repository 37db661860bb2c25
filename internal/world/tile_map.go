package world

import (
	"fmt"
	"strings"

	"gridtactics/internal/pathfinding"
)

// TileMap is a rectangular grid of tile types backed by a TileManager.
// It satisfies pathfinding.Grid; anything outside the map reads as solid.
type TileMap struct {
	width   int
	height  int
	tiles   [][]TileType
	manager *TileManager
}

var _ pathfinding.Grid = (*TileMap)(nil)

// NewTileMap creates a width x height map filled with fill
func NewTileMap(width, height int, fill TileType, manager *TileManager) *TileMap {
	tiles := make([][]TileType, height)
	for y := range tiles {
		tiles[y] = make([]TileType, width)
		for x := range tiles[y] {
			tiles[y][x] = fill
		}
	}
	return &TileMap{width: width, height: height, tiles: tiles, manager: manager}
}

func (m *TileMap) Rows() int { return m.height }
func (m *TileMap) Cols() int { return m.width }

func (m *TileMap) inBounds(col, row int) bool {
	return col >= 0 && row >= 0 && col < m.width && row < m.height
}

// Manager returns the tile manager the map resolves properties through
func (m *TileMap) Manager() *TileManager { return m.manager }

// Tile returns the tile type at (col, row)
func (m *TileMap) Tile(col, row int) (TileType, bool) {
	if !m.inBounds(col, row) {
		return TileNone, false
	}
	return m.tiles[row][col], true
}

// IsSolid reports whether (col, row) blocks movement and sight
func (m *TileMap) IsSolid(col, row int) bool {
	if !m.inBounds(col, row) {
		return true
	}
	return m.manager.IsSolid(m.tiles[row][col])
}

// Classification returns the tile key at (col, row), empty outside the map
func (m *TileMap) Classification(col, row int) pathfinding.TileKind {
	if !m.inBounds(col, row) {
		return ""
	}
	return m.manager.Kind(m.tiles[row][col])
}

// SetTile replaces the tile at (col, row)
func (m *TileMap) SetTile(col, row int, tileType TileType) error {
	if !m.inBounds(col, row) {
		return fmt.Errorf("tile (%d,%d) outside %dx%d map", col, row, m.width, m.height)
	}
	if m.manager.GetTileData(tileType) == nil {
		return fmt.Errorf("tile type %d: %w", tileType, ErrUnknownTile)
	}
	m.tiles[row][col] = tileType
	return nil
}

// Fill sets every tile in the inclusive rectangle, clipped to the map
func (m *TileMap) Fill(col0, row0, col1, row1 int, tileType TileType) {
	if col0 > col1 {
		col0, col1 = col1, col0
	}
	if row0 > row1 {
		row0, row1 = row1, row0
	}
	for row := max(row0, 0); row <= min(row1, m.height-1); row++ {
		for col := max(col0, 0); col <= min(col1, m.width-1); col++ {
			m.tiles[row][col] = tileType
		}
	}
}

// Clone returns a deep copy sharing the same tile manager
func (m *TileMap) Clone() *TileMap {
	out := &TileMap{width: m.width, height: m.height, manager: m.manager}
	out.tiles = make([][]TileType, m.height)
	for y := range m.tiles {
		out.tiles[y] = append([]TileType(nil), m.tiles[y]...)
	}
	return out
}

// String renders the map with each tile's letter, one row per line
func (m *TileMap) String() string {
	var sb strings.Builder
	for y, row := range m.tiles {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, t := range row {
			sb.WriteRune(m.manager.GetLetterFromTileType(t))
		}
	}
	return sb.String()
}
