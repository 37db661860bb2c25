package pathfinding

// Path is an ordered list of tile-centre waypoints from the next step to the
// goal. The start tile is never included. An empty Path means "no route this
// frame": the goal is unreachable, too far, or the frame budget is spent.
type Path []PixelPos

// Empty reports whether the path has no waypoints.
func (p Path) Empty() bool {
	return len(p) == 0
}

// Len returns the number of waypoints.
func (p Path) Len() int {
	return len(p)
}

// Last returns the final waypoint.
func (p Path) Last() (PixelPos, bool) {
	if len(p) == 0 {
		return PixelPos{}, false
	}
	return p[len(p)-1], true
}

// Tiles converts the waypoints back to tile coordinates.
func (p Path) Tiles(tileSize int) []TileCoord {
	tiles := make([]TileCoord, len(p))
	for i, wp := range p {
		tiles[i] = PixelToTile(wp.X, wp.Y, tileSize)
	}
	return tiles
}
