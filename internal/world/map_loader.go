package world

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Spawn markers in ASCII maps. Both stand on the floor tile.
const (
	PlayerStartMarker = '@'
	EnemySpawnMarker  = 'E'
)

var ErrNoFloorTile = errors.New("tile config has no floor tile")

// SpawnKind tells a player start from an enemy spawn
type SpawnKind string

const (
	SpawnPlayer SpawnKind = "player"
	SpawnEnemy  SpawnKind = "enemy"
)

// Spawn is a marked tile in a loaded map
type Spawn struct {
	Col, Row int
	Kind     SpawnKind
}

// MapData contains the loaded map information
type MapData struct {
	Name     string
	Tiles    *TileMap
	Spawns   []Spawn
	StartCol int
	StartRow int
}

// HasStart reports whether the map marked a player start
func (md *MapData) HasStart() bool {
	return md.StartCol >= 0 && md.StartRow >= 0
}

// Enemies returns the enemy spawns in file order
func (md *MapData) Enemies() []Spawn {
	out := make([]Spawn, 0, len(md.Spawns))
	for _, s := range md.Spawns {
		if s.Kind == SpawnEnemy {
			out = append(out, s)
		}
	}
	return out
}

// MapLoader handles loading ASCII world maps
type MapLoader struct {
	tiles *TileManager
}

// NewMapLoader creates a new map loader resolving letters through tiles
func NewMapLoader(tiles *TileManager) *MapLoader {
	return &MapLoader{tiles: tiles}
}

// LoadMap loads a map from the specified file path
func (ml *MapLoader) LoadMap(mapPath string) (*MapData, error) {
	file, err := os.Open(mapPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open map file %s: %w", mapPath, err)
	}
	defer file.Close()

	name := strings.TrimSuffix(filepath.Base(mapPath), filepath.Ext(mapPath))
	mapData, err := ml.ParseMap(file, name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", mapPath, err)
	}
	return mapData, nil
}

// ParseMap reads one tile letter per column. Empty lines and lines starting
// with '#' are skipped.
func (ml *MapLoader) ParseMap(r io.Reader, name string) (*MapData, error) {
	floor, ok := ml.tiles.GetTileTypeFromKey(FloorKey)
	if !ok {
		return nil, ErrNoFloorTile
	}

	var rows [][]rune
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		// Skip empty lines and comment lines (lines starting with #)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rows = append(rows, []rune(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading map file: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("map file contains no valid map data")
	}

	height := len(rows)
	width := len(rows[0])

	// Validate all lines have the same width
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("line %d has inconsistent width: expected %d, got %d", i+1, width, len(row))
		}
	}

	mapData := &MapData{
		Name:     name,
		Tiles:    NewTileMap(width, height, floor, ml.tiles),
		Spawns:   make([]Spawn, 0),
		StartCol: -1, // No default start position - must be set explicitly with @
		StartRow: -1,
	}

	for y, row := range rows {
		for x, letter := range row {
			switch letter {
			case PlayerStartMarker:
				if mapData.HasStart() {
					log.Printf("Warning: map %s has more than one player start, using (%d,%d)", name, x, y)
				}
				mapData.StartCol, mapData.StartRow = x, y
				mapData.Spawns = append(mapData.Spawns, Spawn{Col: x, Row: y, Kind: SpawnPlayer})
				continue
			case EnemySpawnMarker:
				mapData.Spawns = append(mapData.Spawns, Spawn{Col: x, Row: y, Kind: SpawnEnemy})
				continue
			}

			tileType, ok := ml.tiles.GetTileTypeFromLetter(letter)
			if !ok {
				return nil, fmt.Errorf("line %d column %d: letter %q: %w", y+1, x+1, letter, ErrUnknownTile)
			}
			mapData.Tiles.tiles[y][x] = tileType
		}
	}

	return mapData, nil
}
