package main

import (
	"flag"
	"log"

	"gridtactics/internal/config"
	"gridtactics/internal/game"
	"gridtactics/internal/viewer"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config.yaml")
	mapPath := flag.String("map", "", "map to open instead of the configured one (.map or .tmx)")
	flag.Parse()

	// Load configuration
	cfg := config.MustLoadConfig(*configPath)
	if *mapPath != "" {
		cfg.World.Map = *mapPath
	}

	ctrl, err := viewer.NewController(cfg)
	if err != nil {
		log.Fatal(err)
	}

	// Set window properties from config
	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.GetWindowTitle())

	g := game.NewViewerGame(ctrl, cfg.Viewer.Watch)
	defer g.Close()
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
