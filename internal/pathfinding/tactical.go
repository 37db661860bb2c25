package pathfinding

import (
	"math"

	"gridtactics/internal/mathutil"
)

// FindCoverPosition looks for the nearest walkable tile around the seeker
// whose centre has no line of sight to the threat. Distance is the Manhattan
// offset from the seeker's tile; ties go to the first tile in scan order.
// searchRadius <= 0 uses the navigator's default.
func (n *Navigator) FindCoverPosition(seekerX, seekerY, threatX, threatY float64, searchRadius int) (PixelPos, bool) {
	if searchRadius <= 0 {
		searchRadius = n.coverRadius
	}
	seeker := n.PixelToTile(seekerX, seekerY)

	var best TileCoord
	bestDist := -1
	for dc := -searchRadius; dc <= searchRadius; dc++ {
		for dr := -searchRadius; dr <= searchRadius; dr++ {
			candidate := seeker.Add(dc, dr)
			if !n.walkable(candidate, true) {
				continue
			}
			center := n.TileToPixel(candidate)
			if n.HasLineOfSight(center.X, center.Y, threatX, threatY) {
				continue
			}
			dist := mathutil.Manhattan(dc, dr)
			if bestDist < 0 || dist < bestDist {
				best = candidate
				bestDist = dist
			}
		}
	}

	if bestDist < 0 {
		return PixelPos{}, false
	}
	return n.TileToPixel(best), true
}

// FindFlankingPosition projects a point flankDistance tiles past the target,
// on the side away from the ally, and returns the nearest walkable tile there.
// A zero-length ally-to-target vector has no flank direction and yields false.
// flankDistance <= 0 uses the navigator's default.
func (n *Navigator) FindFlankingPosition(targetX, targetY, allyX, allyY float64, flankDistance int) (PixelPos, bool) {
	if flankDistance <= 0 {
		flankDistance = n.flankDist
	}

	dx := targetX - allyX
	dy := targetY - allyY
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return PixelPos{}, false
	}

	reach := float64(flankDistance * n.tileSize)
	px := targetX + dx/dist*reach
	py := targetY + dy/dist*reach
	candidate := n.PixelToTile(px, py)

	if n.walkable(candidate, true) {
		return n.TileToPixel(candidate), true
	}
	if alt, ok := n.nearestWalkable(candidate, flankSearchRadius, true); ok {
		return n.TileToPixel(alt), true
	}
	return PixelPos{}, false
}
