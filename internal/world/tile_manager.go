package world

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"unicode/utf8"

	"gridtactics/internal/config"
	"gridtactics/internal/pathfinding"

	"gopkg.in/yaml.v3"
)

// TileType identifies a tile kind loaded from tiles.yaml. The zero value is
// never assigned to a configured tile.
type TileType int

const TileNone TileType = 0

// Keys the loaders rely on
const (
	FloorKey = "floor"
	WallKey  = "wall"
)

var (
	ErrUnknownTile   = errors.New("unknown tile")
	ErrDuplicateRune = errors.New("duplicate tile letter")
)

// TileManager handles tile configuration and properties
type TileManager struct {
	tileData     map[string]*config.TileData
	typeToKey    map[TileType]string
	keyToType    map[string]TileType
	letterToType map[rune]TileType
}

// NewTileManager creates a new tile manager
func NewTileManager() *TileManager {
	return &TileManager{
		tileData:     make(map[string]*config.TileData),
		typeToKey:    make(map[TileType]string),
		keyToType:    make(map[string]TileType),
		letterToType: make(map[rune]TileType),
	}
}

// LoadTileConfig loads tile configuration from a YAML file
func (tm *TileManager) LoadTileConfig(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read tile config file: %w", err)
	}
	return tm.ParseTileConfig(data)
}

// ParseTileConfig replaces the loaded tiles with the YAML document in data
func (tm *TileManager) ParseTileConfig(data []byte) error {
	var tileConfig config.TileConfig
	if err := yaml.Unmarshal(data, &tileConfig); err != nil {
		return fmt.Errorf("failed to parse tile config: %w", err)
	}

	tileData := make(map[string]*config.TileData, len(tileConfig.TileData))
	for key, td := range tileConfig.TileData {
		tileCopy := td
		tileData[key] = &tileCopy
	}

	// Types are assigned in key order so the same file always yields the same ids
	keys := make([]string, 0, len(tileData))
	for key := range tileData {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	typeToKey := make(map[TileType]string, len(keys))
	keyToType := make(map[string]TileType, len(keys))
	letterToType := make(map[rune]TileType, len(keys))
	for i, key := range keys {
		tileType := TileType(i + 1)
		typeToKey[tileType] = key
		keyToType[key] = tileType

		letter := tileData[key].Letter
		if letter == "" {
			continue
		}
		if utf8.RuneCountInString(letter) != 1 {
			return fmt.Errorf("tile %s: letter %q must be a single character", key, letter)
		}
		r, _ := utf8.DecodeRuneInString(letter)
		if r == PlayerStartMarker || r == EnemySpawnMarker {
			return fmt.Errorf("tile %s: letter %q is reserved for spawn markers: %w", key, letter, ErrDuplicateRune)
		}
		if other, exists := letterToType[r]; exists {
			return fmt.Errorf("tiles %s and %s share letter %q: %w", typeToKey[other], key, letter, ErrDuplicateRune)
		}
		letterToType[r] = tileType
	}

	tm.tileData = tileData
	tm.typeToKey = typeToKey
	tm.keyToType = keyToType
	tm.letterToType = letterToType
	return nil
}

// GetTileData returns the configuration data for a tile type
func (tm *TileManager) GetTileData(tileType TileType) *config.TileData {
	key, ok := tm.typeToKey[tileType]
	if !ok {
		return nil
	}
	return tm.tileData[key]
}

// GetTileDataByKey returns the configuration data for a tile by its string key
func (tm *TileManager) GetTileDataByKey(key string) *config.TileData {
	return tm.tileData[key]
}

// GetTileTypeFromKey returns the TileType for a given string key
func (tm *TileManager) GetTileTypeFromKey(key string) (TileType, bool) {
	tileType, ok := tm.keyToType[key]
	return tileType, ok
}

// GetTileKey returns the configuration key for a tile type
func (tm *TileManager) GetTileKey(tileType TileType) string {
	return tm.typeToKey[tileType]
}

// GetAllTileKeys returns all tile keys in sorted order
func (tm *TileManager) GetAllTileKeys() []string {
	keys := make([]string, 0, len(tm.tileData))
	for key := range tm.tileData {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// HasTileKey checks if a tile key exists in the loaded configuration
func (tm *TileManager) HasTileKey(key string) bool {
	_, exists := tm.tileData[key]
	return exists
}

// IsSolid returns whether a tile type blocks movement and sight
func (tm *TileManager) IsSolid(tileType TileType) bool {
	data := tm.GetTileData(tileType)
	if data == nil {
		return false // Default to non-solid for unknown tiles
	}
	return data.Solid
}

// IsHazard returns whether agents avoiding hazards should keep off this tile
func (tm *TileManager) IsHazard(tileType TileType) bool {
	data := tm.GetTileData(tileType)
	if data == nil {
		return false
	}
	return data.Hazard
}

// IsTransparent returns whether a tile type is drawn see-through by the viewer
func (tm *TileManager) IsTransparent(tileType TileType) bool {
	data := tm.GetTileData(tileType)
	if data == nil {
		return true // Default to transparent for unknown tiles
	}
	return data.Transparent
}

// GetColor returns the viewer colour for a tile type
func (tm *TileManager) GetColor(tileType TileType) [3]int {
	data := tm.GetTileData(tileType)
	if data == nil {
		return [3]int{255, 0, 255}
	}
	if data.Color == [3]int{} {
		if data.Solid {
			return [3]int{90, 90, 100} // Default stone
		}
		return [3]int{60, 140, 60} // Default green
	}
	return data.Color
}

// Kind returns the classification key the navigator matches hazards against
func (tm *TileManager) Kind(tileType TileType) pathfinding.TileKind {
	return pathfinding.TileKind(tm.typeToKey[tileType])
}

// HazardKinds collects every tile flagged as a hazard into a set
func (tm *TileManager) HazardKinds() pathfinding.HazardSet {
	kinds := make([]pathfinding.TileKind, 0)
	for _, key := range tm.GetAllTileKeys() {
		if tm.tileData[key].Hazard {
			kinds = append(kinds, pathfinding.TileKind(key))
		}
	}
	return pathfinding.NewHazardSet(kinds...)
}

// SetTileProperty allows dynamic modification of tile properties at runtime
func (tm *TileManager) SetTileProperty(tileType TileType, property string, value interface{}) error {
	key, ok := tm.typeToKey[tileType]
	if !ok {
		return fmt.Errorf("tile type %d: %w", tileType, ErrUnknownTile)
	}

	data := tm.tileData[key]
	if data == nil {
		return fmt.Errorf("no data found for tile type: %d", tileType)
	}

	val, ok := value.(bool)
	if !ok {
		return fmt.Errorf("%s property requires boolean value", property)
	}

	switch property {
	case "solid":
		data.Solid = val
	case "hazard":
		data.Hazard = val
	case "transparent":
		data.Transparent = val
	default:
		return fmt.Errorf("unknown property: %s", property)
	}

	return nil
}

// GetTileTypeFromLetter returns the tile type for a given map letter
func (tm *TileManager) GetTileTypeFromLetter(letter rune) (TileType, bool) {
	tileType, ok := tm.letterToType[letter]
	return tileType, ok
}

// GetLetterFromTileType returns the map letter for a tile type, '?' if it has none
func (tm *TileManager) GetLetterFromTileType(tileType TileType) rune {
	data := tm.GetTileData(tileType)
	if data == nil || data.Letter == "" {
		return '?'
	}
	r, _ := utf8.DecodeRuneInString(data.Letter)
	return r
}
