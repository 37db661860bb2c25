package game

import (
	"log"
	"path/filepath"

	"gridtactics/internal/viewer"

	"github.com/hajimehoshi/ebiten/v2"
)

const hudHeight = 64

// ViewerGame is the ebiten front end over a viewer.Controller
type ViewerGame struct {
	ctrl    *viewer.Controller
	watcher *viewer.Watcher
	store   *viewer.SessionStore
	input   *InputHandler
	screenW int
	screenH int
}

const sessionApp = "gridtactics"

// NewViewerGame wraps ctrl and restores the last session for its map. When
// watch is set the map and tile files are reloaded as they change on disk.
func NewViewerGame(ctrl *viewer.Controller, watch bool) *ViewerGame {
	cfg := ctrl.Config()
	g := &ViewerGame{
		ctrl:    ctrl,
		screenW: cfg.GetScreenWidth(),
		screenH: cfg.GetScreenHeight(),
	}
	g.input = NewInputHandler(g)
	g.restoreSession()

	if watch {
		dirs := uniqueDirs(cfg.GetMapPath(), cfg.GetTilesPath())
		w, err := viewer.NewWatcher(dirs...)
		if err != nil {
			log.Printf("Warning: hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g
}

func uniqueDirs(paths ...string) []string {
	seen := make(map[string]bool)
	dirs := make([]string, 0, len(paths))
	for _, p := range paths {
		dir := filepath.Dir(p)
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

func (g *ViewerGame) restoreSession() {
	store, err := viewer.OpenSessionStore(sessionApp)
	if err != nil {
		log.Printf("Warning: Could not initialize session storage: %v", err)
		return
	}
	g.store = store

	sess, err := store.Load(g.ctrl.Scenario().Map.Name)
	if err != nil {
		log.Printf("Warning: Could not load session: %v", err)
		return
	}
	if sess != nil {
		g.ctrl.ApplySession(*sess)
	}
}

// Close saves the session and releases the file watcher
func (g *ViewerGame) Close() error {
	if err := g.store.Save(g.ctrl.Session()); err != nil {
		log.Printf("Warning: Could not save session: %v", err)
	}
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

// Update handles all logic for one frame. The controller resets the
// pathfinding budget exactly once here.
func (g *ViewerGame) Update() error {
	g.drainReloads()
	g.input.HandleInput()
	g.ctrl.Update()
	return nil
}

func (g *ViewerGame) drainReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name := <-g.watcher.Events:
			log.Printf("Reloading after change to %s", name)
			if err := g.ctrl.Reload(); err != nil {
				log.Printf("Warning: reload failed: %v", err)
			}
		case err := <-g.watcher.Errors:
			log.Printf("Warning: file watcher: %v", err)
		default:
			return
		}
	}
}

// Layout keeps a fixed logical screen
func (g *ViewerGame) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.screenW, g.screenH
}

// cellSize is the on-screen size of one tile so the whole map fits above the HUD
func (g *ViewerGame) cellSize() float64 {
	tm := g.ctrl.Scenario().Map.Tiles
	cw := float64(g.screenW) / float64(tm.Cols())
	ch := float64(g.screenH-hudHeight) / float64(tm.Rows())
	return min(cw, ch)
}

// screenToWorld converts a cursor position to navigator pixel space
func (g *ViewerGame) screenToWorld(sx, sy int) (float64, float64) {
	scale := float64(g.ctrl.Navigator().TileSize()) / g.cellSize()
	return float64(sx) * scale, float64(sy) * scale
}

// worldToScreen converts navigator pixel space to screen space
func (g *ViewerGame) worldToScreen(x, y float64) (float32, float32) {
	scale := g.cellSize() / float64(g.ctrl.Navigator().TileSize())
	return float32(x * scale), float32(y * scale)
}

var _ ebiten.Game = (*ViewerGame)(nil)
