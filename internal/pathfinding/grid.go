package pathfinding

import "sort"

// TileKind is the classification key of a tile ("floor", "water", "spikes" ...).
type TileKind string

// Grid is the read-only view of a tile map consumed by the navigator.
type Grid interface {
	Rows() int
	Cols() int
	IsSolid(col, row int) bool
	Classification(col, row int) TileKind
}

// HazardSet is a fixed set of tile kinds agents may choose to avoid.
// The zero value is an empty set.
type HazardSet struct {
	kinds map[TileKind]struct{}
}

// NewHazardSet builds a hazard set from the given kinds.
func NewHazardSet(kinds ...TileKind) HazardSet {
	set := HazardSet{kinds: make(map[TileKind]struct{}, len(kinds))}
	for _, k := range kinds {
		set.kinds[k] = struct{}{}
	}
	return set
}

// Contains reports whether kind is classified as a hazard.
func (h HazardSet) Contains(kind TileKind) bool {
	_, ok := h.kinds[kind]
	return ok
}

// Len returns the number of hazard kinds.
func (h HazardSet) Len() int {
	return len(h.kinds)
}

// Kinds returns the hazard kinds in sorted order.
func (h HazardSet) Kinds() []TileKind {
	out := make([]TileKind, 0, len(h.kinds))
	for k := range h.kinds {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func inBounds(g Grid, col, row int) bool {
	return col >= 0 && row >= 0 && col < g.Cols() && row < g.Rows()
}

// IsWalkable reports whether an agent can stand on (col, row).
// Solidity always blocks. Hazards block only when avoidHazards is set.
func IsWalkable(g Grid, hazards HazardSet, col, row int, avoidHazards bool) bool {
	if !inBounds(g, col, row) {
		return false
	}
	if g.IsSolid(col, row) {
		return false
	}
	if avoidHazards && hazards.Contains(g.Classification(col, row)) {
		return false
	}
	return true
}
