package pacman

import (
	"fmt"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/sim"
)

// Ghost glyphs and colors, indexed by identity.
var ghostGlyphs = map[sim.GhostType]rune{
	sim.GhostBlinky: 'B',
	sim.GhostPinky:  'P',
	sim.GhostInky:   'I',
	sim.GhostClyde:  'C',
}

var ghostColors = map[sim.GhostType]core.Color{
	sim.GhostBlinky: core.ColorBrightRed,
	sim.GhostPinky:  core.ColorPink,
	sim.GhostInky:   core.ColorBrightCyan,
	sim.GhostClyde:  core.ColorOrange,
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderMaze(dst)
	g.renderCollectibles(dst)
	g.renderGhosts(dst)
	g.renderPlayer(dst)

	w := g.engine.World()
	switch w.Status() {
	case sim.StatusReady:
		g.renderOverlay(dst, "Ready!", "Press Enter to start")
	case sim.StatusPaused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	case sim.StatusWon:
		g.renderOverlay(dst, "Maze cleared!", fmt.Sprintf("Final Score: %d", w.Score()))
	case sim.StatusLost:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	w := g.engine.World()

	hud := fmt.Sprintf(" %s — Score: %d  Lives: %d  Level: %d",
		g.Title(), w.Score(), w.Lives(), w.Level())
	if remaining := w.PowerUpTimeRemaining(); remaining > 0 {
		hud += fmt.Sprintf("  Power: %.1fs", remaining/1000)
	}

	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderMaze draws walls, the ghost-house door, and the tunnel mouths.
func (g *Game) renderMaze(dst *core.Screen) {
	maze := g.engine.Maze()

	for y := 0; y < maze.Height; y++ {
		for x := 0; x < maze.Width; x++ {
			sx, sy := g.mapOffsetX+x, g.mapOffsetY+y
			switch maze.Cell(x, y) {
			case sim.CellWall:
				dst.SetCell(sx, sy, '█', core.ColorBlue)
			case sim.CellGhostDoor:
				dst.SetCell(sx, sy, '─', core.ColorGray)
			}
		}
	}
}

// renderCollectibles draws remaining pellets and power pellets.
func (g *Game) renderCollectibles(dst *core.Screen) {
	for _, c := range sim.Collectibles(g.engine.World()) {
		sx, sy := g.mapOffsetX+c.GridX, g.mapOffsetY+c.GridY
		if c.PowerUp {
			dst.SetCell(sx, sy, 'o', core.ColorBrightWhite)
		} else {
			dst.SetCell(sx, sy, '·', core.ColorWhite)
		}
	}
}

// renderGhosts draws the four ghosts, recoloring for vulnerability.
func (g *Game) renderGhosts(dst *core.Screen) {
	for _, gh := range sim.Ghosts(g.engine.World()) {
		sx, sy := g.mapOffsetX+gh.GridX, g.mapOffsetY+gh.GridY

		switch {
		case gh.Mode == sim.ModeEaten:
			// Just the eyes heading home.
			dst.SetCell(sx, sy, '"', core.ColorGray)
		case gh.Vulnerable && gh.Flashing:
			dst.SetCell(sx, sy, ghostGlyphs[gh.Type], core.ColorBrightWhite)
		case gh.Vulnerable:
			dst.SetCell(sx, sy, ghostGlyphs[gh.Type], core.ColorBrightBlue)
		default:
			dst.SetCell(sx, sy, ghostGlyphs[gh.Type], ghostColors[gh.Type])
		}
	}
}

// renderPlayer draws the player.
func (g *Game) renderPlayer(dst *core.Screen) {
	p, ok := sim.Player(g.engine.World())
	if !ok {
		return
	}
	dst.SetCell(g.mapOffsetX+p.GridX, g.mapOffsetY+p.GridY, 'C', core.ColorBrightYellow)
}

// renderOverlay draws a centered overlay message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2), ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
