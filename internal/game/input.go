package game

import (
	"log"

	"gridtactics/internal/pathfinding"
	"gridtactics/internal/viewer"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputHandler maps mouse and keyboard to controller actions
type InputHandler struct {
	game *ViewerGame
}

// NewInputHandler creates a new input handler
func NewInputHandler(game *ViewerGame) *InputHandler {
	return &InputHandler{game: game}
}

func (ih *InputHandler) cursorTile() (pathfinding.TileCoord, bool) {
	mx, my := ebiten.CursorPosition()
	if my >= ih.game.screenH-hudHeight {
		return pathfinding.TileCoord{}, false
	}
	x, y := ih.game.screenToWorld(mx, my)
	return ih.game.ctrl.Navigator().PixelToTile(x, y), true
}

// HandleInput processes this frame's input
func (ih *InputHandler) HandleInput() {
	ctrl := ih.game.ctrl

	if tile, ok := ih.cursorTile(); ok {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			ctrl.SetStart(tile)
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
			ctrl.SetGoal(tile)
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
			if err := ctrl.ToggleWall(tile); err != nil {
				log.Printf("Warning: %v", err)
			}
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyK) {
			if err := ctrl.ToggleHazardKind(tile); err != nil {
				log.Printf("Warning: %v", err)
			}
		}
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		ctrl.ToggleEightDirectional()
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		ctrl.ToggleHazards()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		ctrl.ToggleOverlay(viewer.OverlayCover)
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		ctrl.ToggleOverlay(viewer.OverlayFlank)
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		ctrl.ToggleOverlay(viewer.OverlayLineOfSight)
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		ctrl.TogglePause()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		if err := ctrl.ResetAgents(); err != nil {
			log.Printf("Warning: %v", err)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyY):
		ih.copyPath()
	}
}

func (ih *InputHandler) copyPath() {
	text := ih.game.ctrl.PathText()
	if err := clipboard.WriteAll(text); err != nil {
		log.Printf("Warning: clipboard unavailable: %v", err)
		return
	}
	log.Printf("Copied path: %s", text)
}
