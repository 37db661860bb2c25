package pathfinding

import (
	"math"

	"gridtactics/internal/threading/monitoring"
)

type pathQuery struct {
	maxDistance      int
	avoidHazards     bool
	eightDirectional bool
}

// PathOption adjusts a single FindPath call.
type PathOption func(*pathQuery)

// WithMaxDistance bounds the search. Goals more than 2*n Manhattan tiles away
// are rejected and at most n*n*4 nodes are expanded.
func WithMaxDistance(n int) PathOption {
	return func(q *pathQuery) {
		if n > 0 {
			q.maxDistance = n
		}
	}
}

// WithAvoidHazards sets whether hazard tiles are treated as unwalkable.
func WithAvoidHazards(avoid bool) PathOption {
	return func(q *pathQuery) { q.avoidHazards = avoid }
}

// IgnoreHazards lets the path cross non-solid hazard tiles.
func IgnoreHazards() PathOption {
	return WithAvoidHazards(false)
}

// WithEightDirectional toggles diagonal movement.
func WithEightDirectional(enabled bool) PathOption {
	return func(q *pathQuery) { q.eightDirectional = enabled }
}

// EightDirectional allows diagonal steps.
func EightDirectional() PathOption {
	return WithEightDirectional(true)
}

var (
	cardinalDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonalDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// FindPath computes a route from the start pixel position to the goal pixel
// position. Every call that finds budget available spends one unit of it,
// whatever the outcome. An empty Path is the normal "not this frame" answer.
func (n *Navigator) FindPath(startX, startY, goalX, goalY float64, opts ...PathOption) Path {
	q := pathQuery{
		maxDistance:  n.maxDistance,
		avoidHazards: true,
	}
	for _, opt := range opts {
		opt(&q)
	}

	if !n.budget.TryConsume() {
		n.monitor.RecordBudgetDenied()
		return nil
	}

	timer := n.monitor.StartSearch()
	path, outcome, expanded := n.search(n.PixelToTile(startX, startY), n.PixelToTile(goalX, goalY), q)
	timer.End(outcome, expanded)
	return path
}

func (n *Navigator) search(start, goal TileCoord, q pathQuery) (Path, monitoring.SearchOutcome, int) {
	if start == goal {
		return Path{n.TileToPixel(goal)}, monitoring.OutcomeSameTile, 0
	}

	limit := 2 * q.maxDistance
	// A ring substitute lies at most 2*ringRadius tiles from the raw goal, so
	// anything beyond that slack is rejected before the ring search.
	if manhattan(start, goal) > limit+2*n.ringRadius {
		return nil, monitoring.OutcomeTooFar, 0
	}

	if !n.walkable(goal, q.avoidHazards) {
		n.monitor.RecordRingSearch()
		sub, ok := n.nearestWalkable(goal, n.ringRadius, q.avoidHazards)
		if !ok {
			return nil, monitoring.OutcomeNoSubstitute, 0
		}
		goal = sub
		if start == goal {
			return Path{n.TileToPixel(goal)}, monitoring.OutcomeSameTile, 0
		}
	}
	if manhattan(start, goal) > limit {
		return nil, monitoring.OutcomeTooFar, 0
	}

	return n.astar(start, goal, q)
}

func (n *Navigator) astar(start, goal TileCoord, q pathQuery) (Path, monitoring.SearchOutcome, int) {
	ps := acquireScratch(n.grid.Cols(), n.grid.Rows())
	defer releaseScratch(ps)

	startIdx := ps.index(start)
	goalIdx := ps.index(goal)
	if startIdx < 0 || goalIdx < 0 {
		return nil, monitoring.OutcomeUnreachable, 0
	}

	// Manhattan is used for diagonal movement as well, so 8-directional
	// paths are not guaranteed shortest.
	heuristic := func(c TileCoord) float64 {
		return float64(manhattan(c, goal))
	}

	ps.gScore[startIdx] = 0
	ps.heap.push(gridNode{idx: startIdx, g: 0, f: heuristic(start)})

	maxNodes := q.maxDistance * q.maxDistance * 4
	expanded := 0

	for ps.heap.len() > 0 {
		current, ok := ps.heap.pop()
		if !ok {
			break
		}
		if ps.closed[current.idx] {
			continue
		}
		if current.g > ps.gScore[current.idx] {
			continue
		}

		if current.idx == goalIdx {
			return n.reconstructPath(ps, startIdx, goalIdx), monitoring.OutcomeFound, expanded
		}

		if expanded >= maxNodes {
			return nil, monitoring.OutcomeCapped, expanded
		}
		ps.closed[current.idx] = true
		expanded++

		coord := ps.coord(current.idx)
		for _, dir := range cardinalDirs {
			n.relax(ps, current, coord.Add(dir[0], dir[1]), 1, heuristic, q.avoidHazards)
		}
		if !q.eightDirectional {
			continue
		}
		for _, dir := range diagonalDirs {
			// Both cells sharing an edge with current and target must be open,
			// otherwise the move would clip a wall corner.
			if !n.walkable(coord.Add(dir[0], 0), q.avoidHazards) || !n.walkable(coord.Add(0, dir[1]), q.avoidHazards) {
				continue
			}
			n.relax(ps, current, coord.Add(dir[0], dir[1]), math.Sqrt2, heuristic, q.avoidHazards)
		}
	}

	return nil, monitoring.OutcomeUnreachable, expanded
}

func (n *Navigator) relax(ps *pathScratch, current gridNode, neighbor TileCoord, cost float64, heuristic func(TileCoord) float64, avoidHazards bool) {
	nidx := ps.index(neighbor)
	if nidx < 0 || ps.closed[nidx] {
		return
	}
	if !n.walkable(neighbor, avoidHazards) {
		return
	}
	tentativeG := ps.gScore[current.idx] + cost
	if tentativeG < ps.gScore[nidx] {
		ps.cameFrom[nidx] = current.idx
		ps.gScore[nidx] = tentativeG
		ps.heap.push(gridNode{idx: nidx, g: tentativeG, f: tentativeG + heuristic(neighbor)})
	}
}

// reconstructPath walks the back-pointers from goal to start and returns the
// waypoints in travel order, start excluded.
func (n *Navigator) reconstructPath(ps *pathScratch, startIdx, goalIdx int) Path {
	tiles := make([]TileCoord, 0, 16)
	for cur := goalIdx; cur >= 0 && cur != startIdx; cur = ps.cameFrom[cur] {
		tiles = append(tiles, ps.coord(cur))
	}
	path := make(Path, len(tiles))
	for i, t := range tiles {
		path[len(tiles)-1-i] = n.TileToPixel(t)
	}
	return path
}
