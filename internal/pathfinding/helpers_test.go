package pathfinding

import "testing"

// mockGrid is an ASCII grid for tests:
//
//	'#' wall (solid)   'W' water (solid, hazard)
//	'^' spikes (hazard) '.' floor
type mockGrid struct {
	rows []string
}

func newMockGrid(rows ...string) *mockGrid {
	return &mockGrid{rows: rows}
}

func (m *mockGrid) Rows() int { return len(m.rows) }

func (m *mockGrid) Cols() int {
	if len(m.rows) == 0 {
		return 0
	}
	return len(m.rows[0])
}

func (m *mockGrid) at(col, row int) byte {
	if row < 0 || row >= len(m.rows) || col < 0 || col >= len(m.rows[row]) {
		return '#'
	}
	return m.rows[row][col]
}

func (m *mockGrid) IsSolid(col, row int) bool {
	c := m.at(col, row)
	return c == '#' || c == 'W'
}

func (m *mockGrid) Classification(col, row int) TileKind {
	switch m.at(col, row) {
	case '#':
		return "wall"
	case 'W':
		return "water"
	case '^':
		return "spikes"
	default:
		return "floor"
	}
}

// openRoom returns a w x h grid bordered by walls with an open interior.
func openRoom(w, h int) *mockGrid {
	rows := make([]string, h)
	for y := 0; y < h; y++ {
		b := make([]byte, w)
		for x := 0; x < w; x++ {
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				b[x] = '#'
			} else {
				b[x] = '.'
			}
		}
		rows[y] = string(b)
	}
	return newMockGrid(rows...)
}

// withWalls returns a copy of the grid with the given tiles set to '#'.
func (m *mockGrid) withWalls(tiles ...TileCoord) *mockGrid {
	rows := make([][]byte, len(m.rows))
	for i, r := range m.rows {
		rows[i] = []byte(r)
	}
	for _, t := range tiles {
		rows[t.Row][t.Col] = '#'
	}
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = string(r)
	}
	return newMockGrid(out...)
}

var testHazards = NewHazardSet("water", "spikes")

func newTestNavigator(t *testing.T, g Grid) *Navigator {
	t.Helper()
	n, err := NewNavigator(g, Options{Hazards: testHazards, Budget: NewBudget(1000)})
	if err != nil {
		t.Fatalf("NewNavigator: %v", err)
	}
	return n
}

func center(t TileCoord) (float64, float64) {
	p := TileToPixel(t, DefaultTileSize)
	return p.X, p.Y
}

func findTiles(n *Navigator, from, to TileCoord, opts ...PathOption) []TileCoord {
	sx, sy := center(from)
	gx, gy := center(to)
	return n.FindPath(sx, sy, gx, gy, opts...).Tiles(n.TileSize())
}

func isAdjacent(a, b TileCoord, diagonal bool) bool {
	dc := a.Col - b.Col
	dr := a.Row - b.Row
	if dc < 0 {
		dc = -dc
	}
	if dr < 0 {
		dr = -dr
	}
	if diagonal {
		return dc <= 1 && dr <= 1 && dc+dr > 0
	}
	return dc+dr == 1
}
