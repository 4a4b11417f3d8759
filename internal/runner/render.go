package runner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/sky-runner/internal/core"
	"github.com/vovakirdan/sky-runner/internal/motion"
)

// Visual characters for rendering
const (
	PlayerBody    = '█'
	PlayerHead    = '◆'
	PlatformChar  = '▀'
	VoidChar      = '~'
	playerAnchorX = 0.3 // Fraction of the screen width left of the player
)

// Camera maps world coordinates to screen cells. It keeps the player at a
// fixed column and on the middle row.
type Camera struct {
	Focus         core.Vec2
	ScreenW       int
	ScreenH       int
	CellsPerUnitX float64
	CellsPerUnitY float64
}

// ToCell converts a world position to a screen column and row.
func (c Camera) ToCell(p core.Vec2) (int, int) {
	col := float64(c.ScreenW)*playerAnchorX + (p.X-c.Focus.X)*c.CellsPerUnitX
	row := float64(c.ScreenH)/2 - (p.Y-c.Focus.Y)*c.CellsPerUnitY
	return int(math.Round(col)), int(math.Round(row))
}

func (g *Game) camera(dst *core.Screen) Camera {
	return Camera{
		Focus:         g.player.Position(),
		ScreenW:       dst.Width(),
		ScreenH:       dst.Height(),
		CellsPerUnitX: g.cfg.World.CellsPerUnitX,
		CellsPerUnitY: g.cfg.World.CellsPerUnitY,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	cam := g.camera(dst)

	// Void floor
	_, voidRow := cam.ToCell(core.V(0, g.cfg.Motion.BottomOfTheWorld))
	if voidRow >= 0 && voidRow < dst.Height() {
		dst.DrawHLine(0, voidRow, dst.Width(), VoidChar, core.ColorRed)
	}

	for _, p := range g.world.ActivePlatforms() {
		g.drawPlatform(dst, cam, p)
	}

	if g.world.Player().Active() {
		g.drawPlayer(dst, cam)
	}

	// HUD
	dst.DrawText(2, 0, fmt.Sprintf(" Distance: %d ", g.distance()))
	stats := g.pool.Stats()
	poolText := fmt.Sprintf(" Platforms: %d/%d ", stats.Active, stats.Created)
	dst.DrawTextColored(dst.Width()-len(poolText)-2, 0, poolText, core.ColorGray)
	dst.DrawTextColored(2, dst.Height()-1, " "+g.player.State().String()+" ", core.ColorCyan)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Distance: %d  |  Press R to restart", g.distance()))
	}
}

func (g *Game) drawPlatform(dst *core.Screen, cam Camera, p *Entity) {
	box := p.Box()
	left, row := cam.ToCell(core.V(box.Left(), box.Top()))
	right, _ := cam.ToCell(core.V(box.Right(), box.Top()))
	if right < 0 || left >= dst.Width() {
		return
	}
	dst.DrawHLine(left, row, core.Max(right-left, 1), PlatformChar, core.ColorGreen)
}

func (g *Game) drawPlayer(dst *core.Screen, cam Camera) {
	col, row := cam.ToCell(g.player.Position())
	color := core.ColorYellow
	if g.player.State() == motion.Airborne && g.player.HasFallen() {
		color = core.ColorRed
	}
	dst.SetColored(col, row-1, PlayerHead, color)
	dst.SetColored(col, row, PlayerBody, color)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
