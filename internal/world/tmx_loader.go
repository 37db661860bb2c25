package world

import (
	"fmt"
	"io/fs"
	"math"
	"path"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Names the TMX loader looks for
const (
	TerrainLayer     = "terrain"
	SpawnObjectGroup = "spawns"
	KindProperty     = "kind"
)

// LoadTMX builds a map from a Tiled file. Each tile on the terrain layer
// names its tile key through the tileset property "kind"; empty cells are
// floor. Objects in the spawns group are named "player" or "enemy".
func LoadTMX(fsys fs.FS, tmxPath string, tiles *TileManager) (*MapData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	floor, ok := tiles.GetTileTypeFromKey(FloorKey)
	if !ok {
		return nil, ErrNoFloorTile
	}

	var terrain *tiled.Layer
	for _, layer := range levelMap.Layers {
		if layer.Name == TerrainLayer {
			terrain = layer
			break
		}
	}
	if terrain == nil {
		return nil, fmt.Errorf("load TMX %s: no %q layer", tmxPath, TerrainLayer)
	}

	mapData := &MapData{
		Name:     strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Tiles:    NewTileMap(levelMap.Width, levelMap.Height, floor, tiles),
		Spawns:   make([]Spawn, 0),
		StartCol: -1,
		StartRow: -1,
	}

	for y := 0; y < levelMap.Height; y++ {
		for x := 0; x < levelMap.Width; x++ {
			tile := terrain.Tiles[y*levelMap.Width+x]
			if tile.IsNil() {
				continue
			}

			var kind string
			if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
				kind = tilesetTile.Properties.GetString(KindProperty)
			}
			tileType, ok := tiles.GetTileTypeFromKey(kind)
			if !ok {
				return nil, fmt.Errorf("load TMX %s: tile (%d,%d) kind %q: %w", tmxPath, x, y, kind, ErrUnknownTile)
			}
			mapData.Tiles.tiles[y][x] = tileType
		}
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, og := range levelMap.ObjectGroups {
		if og.Name != SpawnObjectGroup {
			continue
		}
		for _, o := range og.Objects {
			col := int(math.Floor(o.X / tileW))
			row := int(math.Floor(o.Y / tileH))
			switch SpawnKind(o.Name) {
			case SpawnPlayer:
				mapData.StartCol, mapData.StartRow = col, row
				mapData.Spawns = append(mapData.Spawns, Spawn{Col: col, Row: row, Kind: SpawnPlayer})
			case SpawnEnemy:
				mapData.Spawns = append(mapData.Spawns, Spawn{Col: col, Row: row, Kind: SpawnEnemy})
			default:
				return nil, fmt.Errorf("load TMX %s: object %d has unknown spawn name %q", tmxPath, o.ID, o.Name)
			}
		}
	}

	return mapData, nil
}
