package game

import (
	"fmt"
	"image/color"

	"gridtactics/internal/pathfinding"
	"gridtactics/internal/sim"
	"gridtactics/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebitext "github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	colorBackground = color.RGBA{16, 16, 24, 255}
	colorGridLine   = color.RGBA{0, 0, 0, 60}
	colorHazardMark = color.RGBA{230, 80, 40, 200}
	colorStart      = color.RGBA{60, 200, 255, 255}
	colorGoal       = color.RGBA{255, 210, 60, 255}
	colorPath       = color.RGBA{255, 255, 255, 220}
	colorAgent      = color.RGBA{220, 60, 60, 255}
	colorAgentPath  = color.RGBA{220, 60, 60, 90}
	colorMarker     = color.RGBA{160, 90, 255, 255}
	colorSightClear = color.RGBA{80, 255, 120, 120}
	colorSightBlock = color.RGBA{255, 60, 60, 120}
	colorHUDText    = color.RGBA{230, 230, 230, 255}
)

// Draw renders the map, routes, agents and HUD
func (g *ViewerGame) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	g.drawTiles(screen)
	g.drawOverlay(screen)
	g.drawAgents(screen)
	g.drawRoute(screen)
	g.drawHUD(screen)
}

func (g *ViewerGame) drawTiles(screen *ebiten.Image) {
	md := g.ctrl.Scenario().Map
	tiles := g.ctrl.Scenario().Tiles
	cell := float32(g.cellSize())

	for row := 0; row < md.Tiles.Rows(); row++ {
		for col := 0; col < md.Tiles.Cols(); col++ {
			tileType, _ := md.Tiles.Tile(col, row)
			x, y := float32(col)*cell, float32(row)*cell
			vector.DrawFilledRect(screen, x, y, cell, cell, tileColor(tiles, tileType), false)
			vector.StrokeRect(screen, x, y, cell, cell, 1, colorGridLine, false)
			if tiles.IsHazard(tileType) {
				vector.StrokeLine(screen, x+2, y+2, x+cell-2, y+cell-2, 2, colorHazardMark, false)
			}
		}
	}
}

func tileColor(tiles *world.TileManager, tileType world.TileType) color.RGBA {
	c := tiles.GetColor(tileType)
	return color.RGBA{uint8(c[0]), uint8(c[1]), uint8(c[2]), 255}
}

func (g *ViewerGame) tileCenter(t pathfinding.TileCoord) (float32, float32) {
	p := g.ctrl.Navigator().TileToPixel(t)
	return g.worldToScreen(p.X, p.Y)
}

func (g *ViewerGame) drawPolyline(screen *ebiten.Image, fromX, fromY float32, path pathfinding.Path, width float32, clr color.Color) {
	px, py := fromX, fromY
	for _, wp := range path {
		x, y := g.worldToScreen(wp.X, wp.Y)
		vector.StrokeLine(screen, px, py, x, y, width, clr, true)
		px, py = x, y
	}
}

func (g *ViewerGame) drawRoute(screen *ebiten.Image) {
	cell := float32(g.cellSize())
	sx, sy := g.tileCenter(g.ctrl.Start())
	gx, gy := g.tileCenter(g.ctrl.Goal())

	g.drawPolyline(screen, sx, sy, g.ctrl.Path(), 3, colorPath)
	vector.DrawFilledCircle(screen, sx, sy, cell/3, colorStart, true)
	vector.DrawFilledCircle(screen, gx, gy, cell/3, colorGoal, true)
}

func (g *ViewerGame) drawAgents(screen *ebiten.Image) {
	cell := float32(g.cellSize())
	g.ctrl.Simulation().EachAgent(func(a sim.AgentView) {
		x, y := g.worldToScreen(a.X, a.Y)
		if a.Next < len(a.Waypoints) {
			g.drawPolyline(screen, x, y, a.Waypoints[a.Next:], 2, colorAgentPath)
		}
		vector.DrawFilledCircle(screen, x, y, cell/4, colorAgent, true)
	})
}

func (g *ViewerGame) drawOverlay(screen *ebiten.Image) {
	cell := float32(g.cellSize())

	if sight, visible := g.ctrl.Sight(); len(sight) > 0 {
		clr := colorSightBlock
		if visible {
			clr = colorSightClear
		}
		for _, t := range sight {
			vector.DrawFilledRect(screen, float32(t.Col)*cell, float32(t.Row)*cell, cell, cell, clr, false)
		}
	}

	if marker, ok := g.ctrl.Marker(); ok {
		x, y := g.worldToScreen(marker.X, marker.Y)
		vector.StrokeCircle(screen, x, y, cell/2.5, 3, colorMarker, true)
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (g *ViewerGame) drawHUD(screen *ebiten.Image) {
	ctrl := g.ctrl
	face := basicfont.Face7x13
	top := g.screenH - hudHeight + 4

	budget := ctrl.Navigator().Budget()
	m := ctrl.Monitor().GetCurrentMetrics()
	route := "searching"
	if !ctrl.Pending() {
		route = fmt.Sprintf("%d steps", ctrl.Path().Len())
		if ctrl.Path().Empty() {
			route = "no path"
		}
	}

	lines := []string{
		fmt.Sprintf("map %s  route %s  8-dir %s  avoid hazards %s  overlay %s  agents %s",
			ctrl.Scenario().Map.Name, route, onOff(ctrl.EightDirectional()), onOff(ctrl.AvoidHazards()),
			ctrl.Overlay(), onOff(!ctrl.Paused())),
		fmt.Sprintf("budget %d/%d  searches %d  denied %d  capped %d  peak nodes %d  avg %v",
			budget.Used(), budget.Max(), m.Searches, m.BudgetDenials, m.Capped, m.PeakNodes, m.AverageSearch),
		"LMB start  RMB goal  MMB/W wall  K hazard kind  D diag  H hazards  C cover  F flank  L sight  Y copy  R reset  Space pause",
		ctrl.Status(),
	}
	for i, line := range lines {
		ebitext.Draw(screen, line, face, 6, top+face.Ascent+i*14, colorHUDText)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.0f fps", ebiten.ActualFPS()), g.screenW-60, 4)
}
