package sim

import (
	"gridtactics/internal/pathfinding"

	"github.com/yohamta/donburi"
)

// PositionData is an agent's pixel position
type PositionData struct {
	X, Y float64
}

// PursuerData holds an agent's route toward the simulation target
type PursuerData struct {
	RepathInterval   int     // frames between search attempts once one is granted
	Speed            float64 // pixels per frame
	Cooldown         int     // frames until the next attempt
	EightDirectional bool
	Waypoints        pathfinding.Path
	Next             int
}

// StatsData counts what happened to one agent
type StatsData struct {
	Searches   int
	Denied     int
	EmptyPaths int
	Distance   float64
}

var (
	Position = donburi.NewComponentType[PositionData]()
	Pursuer  = donburi.NewComponentType[PursuerData]()
	Stats    = donburi.NewComponentType[StatsData]()

	Agent = donburi.NewTag().SetName("Agent")
)
