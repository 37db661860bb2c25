package world

import (
	"os"
	"path/filepath"
	"strings"
)

// LoadMapFile loads an ASCII .map or a Tiled .tmx file, chosen by extension
func LoadMapFile(mapPath string, tiles *TileManager) (*MapData, error) {
	if strings.EqualFold(filepath.Ext(mapPath), ".tmx") {
		dir, name := filepath.Split(mapPath)
		if dir == "" {
			dir = "."
		}
		return LoadTMX(os.DirFS(dir), name, tiles)
	}
	return NewMapLoader(tiles).LoadMap(mapPath)
}
