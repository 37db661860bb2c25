package pathfinding

import (
	"math"
	"sync"
)

// pathScratch is the per-search arena. Back-pointers are indices into the
// same arena, so nothing outlives the call that prepared it.
type pathScratch struct {
	gScore   []float64
	cameFrom []int
	closed   []bool
	width    int
	height   int
	heap     nodeHeap
}

var scratchPool = sync.Pool{
	New: func() any { return new(pathScratch) },
}

func acquireScratch(width, height int) *pathScratch {
	ps := scratchPool.Get().(*pathScratch)
	ps.prepare(width, height)
	return ps
}

func releaseScratch(ps *pathScratch) {
	scratchPool.Put(ps)
}

func (ps *pathScratch) prepare(width, height int) {
	size := width * height
	if cap(ps.gScore) < size {
		ps.gScore = make([]float64, size)
		ps.cameFrom = make([]int, size)
		ps.closed = make([]bool, size)
	} else {
		ps.gScore = ps.gScore[:size]
		ps.cameFrom = ps.cameFrom[:size]
		ps.closed = ps.closed[:size]
	}
	for i := 0; i < size; i++ {
		ps.gScore[i] = math.Inf(1)
		ps.cameFrom[i] = -1
		ps.closed[i] = false
	}
	ps.width = width
	ps.height = height
	ps.heap.reset()
}

func (ps *pathScratch) index(tile TileCoord) int {
	if tile.Col < 0 || tile.Row < 0 || tile.Col >= ps.width || tile.Row >= ps.height {
		return -1
	}
	return tile.Row*ps.width + tile.Col
}

func (ps *pathScratch) coord(idx int) TileCoord {
	return TileCoord{Col: idx % ps.width, Row: idx / ps.width}
}
