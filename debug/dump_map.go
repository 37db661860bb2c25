package main

import (
	"flag"
	"fmt"
	"log"

	"gridtactics/internal/world"
)

func main() {
	tilesPath := flag.String("tiles", "../assets/tiles.yaml", "tile set to load")
	mapPath := flag.String("map", "../assets/maps/arena.map", "map to dump (.map or .tmx)")
	flag.Parse()

	fmt.Println("Tile Set and Map Dump")
	fmt.Println("=====================")

	tm := world.NewTileManager()
	if err := tm.LoadTileConfig(*tilesPath); err != nil {
		log.Fatalf("Failed to load tile config: %v", err)
	}

	fmt.Println("\nTiles:")
	for _, key := range tm.GetAllTileKeys() {
		tileType, _ := tm.GetTileTypeFromKey(key)
		data := tm.GetTileDataByKey(key)
		fmt.Printf("'%c' %-8s type=%d solid=%v hazard=%v transparent=%v (%s)\n",
			tm.GetLetterFromTileType(tileType), key, tileType,
			tm.IsSolid(tileType), tm.IsHazard(tileType), tm.IsTransparent(tileType), data.Name)
	}

	fmt.Printf("\nHazard kinds: %v\n", tm.HazardKinds().Kinds())

	md, err := world.LoadMapFile(*mapPath, tm)
	if err != nil {
		log.Fatalf("Failed to load map: %v", err)
	}

	fmt.Printf("\nMap %s (%dx%d):\n", md.Name, md.Tiles.Cols(), md.Tiles.Rows())
	fmt.Println(md.Tiles.String())

	if md.HasStart() {
		fmt.Printf("\nPlayer start: (%d,%d)\n", md.StartCol, md.StartRow)
	} else {
		fmt.Println("\nPlayer start: none")
	}
	for i, s := range md.Enemies() {
		fmt.Printf("Enemy %d: (%d,%d)\n", i+1, s.Col, s.Row)
	}
}
