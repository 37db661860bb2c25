package pathfinding

import (
	"errors"
	"fmt"

	"gridtactics/internal/threading/monitoring"
)

const (
	DefaultMaxDistance       = 20
	DefaultRingSearchRadius  = 3
	DefaultCoverSearchRadius = 6
	DefaultFlankDistance     = 4
	flankSearchRadius        = 2
)

var (
	ErrNilGrid         = errors.New("grid is nil")
	ErrInvalidGrid     = errors.New("grid has no rows or columns")
	ErrInvalidTileSize = errors.New("tile size must be positive")
)

// Options configures a Navigator. Zero values fall back to the package defaults.
type Options struct {
	TileSize          int
	Hazards           HazardSet
	Budget            *Budget
	Monitor           *monitoring.SearchMonitor
	MaxDistance       int
	RingSearchRadius  int
	CoverSearchRadius int
	FlankDistance     int
}

// Navigator answers movement, visibility and tactical queries over one grid.
// Only FindPath spends frame budget; every other query is a free read.
type Navigator struct {
	grid        Grid
	hazards     HazardSet
	budget      *Budget
	monitor     *monitoring.SearchMonitor
	tileSize    int
	maxDistance int
	ringRadius  int
	coverRadius int
	flankDist   int
}

// NewNavigator validates the grid and tile size and builds a navigator.
// A nil Budget gets a private one with the default per-frame limit.
func NewNavigator(grid Grid, opts Options) (*Navigator, error) {
	if grid == nil {
		return nil, fmt.Errorf("new navigator: %w", ErrNilGrid)
	}
	if grid.Rows() <= 0 || grid.Cols() <= 0 {
		return nil, fmt.Errorf("new navigator: %dx%d: %w", grid.Cols(), grid.Rows(), ErrInvalidGrid)
	}
	tileSize := opts.TileSize
	if tileSize == 0 {
		tileSize = DefaultTileSize
	}
	if tileSize < 0 {
		return nil, fmt.Errorf("new navigator: tile size %d: %w", tileSize, ErrInvalidTileSize)
	}

	n := &Navigator{
		grid:        grid,
		hazards:     opts.Hazards,
		budget:      opts.Budget,
		monitor:     opts.Monitor,
		tileSize:    tileSize,
		maxDistance: orDefault(opts.MaxDistance, DefaultMaxDistance),
		ringRadius:  orDefault(opts.RingSearchRadius, DefaultRingSearchRadius),
		coverRadius: orDefault(opts.CoverSearchRadius, DefaultCoverSearchRadius),
		flankDist:   orDefault(opts.FlankDistance, DefaultFlankDistance),
	}
	if n.budget == nil {
		n.budget = NewBudget(DefaultMaxPathfindsPerFrame)
	}
	return n, nil
}

// MustNewNavigator is NewNavigator that panics on a programmer error
func MustNewNavigator(grid Grid, opts Options) *Navigator {
	n, err := NewNavigator(grid, opts)
	if err != nil {
		panic("Failed to create navigator: " + err.Error())
	}
	return n
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}

// Grid returns the grid the navigator reads.
func (n *Navigator) Grid() Grid { return n.grid }

// Hazards returns the hazard set used when avoiding hazards.
func (n *Navigator) Hazards() HazardSet { return n.hazards }

// Budget returns the frame budget shared with the driver.
func (n *Navigator) Budget() *Budget { return n.budget }

// TileSize returns the pixel size of one tile.
func (n *Navigator) TileSize() int { return n.tileSize }

// ResetPathfindBudget starts a new frame. The frame driver calls it exactly once per frame.
func (n *Navigator) ResetPathfindBudget() {
	n.budget.Reset()
}

// CanPathfind reports whether FindPath would run a search this frame.
func (n *Navigator) CanPathfind() bool {
	return n.budget.CanSearch()
}

// PixelToTile converts a pixel position using the navigator's tile size.
func (n *Navigator) PixelToTile(x, y float64) TileCoord {
	return PixelToTile(x, y, n.tileSize)
}

// TileToPixel returns the pixel centre of a tile.
func (n *Navigator) TileToPixel(t TileCoord) PixelPos {
	return TileToPixel(t, n.tileSize)
}

// IsWalkable reports whether an agent can stand on (col, row).
func (n *Navigator) IsWalkable(col, row int, avoidHazards bool) bool {
	return IsWalkable(n.grid, n.hazards, col, row, avoidHazards)
}

func (n *Navigator) walkable(t TileCoord, avoidHazards bool) bool {
	return IsWalkable(n.grid, n.hazards, t.Col, t.Row, avoidHazards)
}
