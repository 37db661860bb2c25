package pathfinding

import "gridtactics/internal/mathutil"

// nearestWalkable scans square rings of Chebyshev radius 1..maxRadius around
// center, visiting only the cells on each ring's boundary, and returns the
// first walkable tile in ring order.
func (n *Navigator) nearestWalkable(center TileCoord, maxRadius int, avoidHazards bool) (TileCoord, bool) {
	for r := 1; r <= maxRadius; r++ {
		for dc := -r; dc <= r; dc++ {
			step := 2 * r
			if mathutil.IntAbs(dc) == r {
				step = 1
			}
			for dr := -r; dr <= r; dr += step {
				t := center.Add(dc, dr)
				if n.walkable(t, avoidHazards) {
					return t, true
				}
			}
		}
	}
	return TileCoord{}, false
}
