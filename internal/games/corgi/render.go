package corgi

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/corgi-arcade/internal/actor"
	"github.com/vovakirdan/corgi-arcade/internal/core"
)

// Visual characters for rendering
const (
	HeartChar     = '♥'
	LostHeartChar = '♡'
)

// hudRows is the number of rows above the world box.
const hudRows = 1

// MinScreenSize returns the smallest terminal that fits the world box and HUD.
func (g *Game) MinScreenSize() (w, h int) {
	return g.cfg.Window.Width + 2, g.cfg.Window.Height + 2 + hudRows
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.scene == nil {
		return
	}

	minW, minH := g.MinScreenSize()
	if dst.Width() < minW || dst.Height() < minH {
		g.drawTooSmall(dst, minW, minH)
		return
	}

	// World box centred on screen, HUD just above it
	boxW, boxH := minW, minH-hudRows
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height()-minH)/2 + hudRows
	world := core.NewRect(boxX+1, boxY+1, g.cfg.Window.Width, g.cfg.Window.Height)

	dst.DrawBoxColored(core.NewRect(boxX, boxY, boxW, boxH), core.ColorGray)
	g.drawHUD(dst, boxX, boxY-hudRows, boxW)

	// Scenery first, then the player, then banners on top
	actors := g.scene.Actors()
	for _, a := range actors {
		if a.Kind != actor.KindPlayer && a.Kind != actor.KindMessage {
			g.drawActor(dst, world, a)
		}
	}
	g.drawActor(dst, world, g.player)
	for _, a := range actors {
		if a.Kind == actor.KindMessage {
			g.drawActor(dst, world, a)
		}
	}

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		hint := fmt.Sprintf("Score: %d  |  Press R to restart, Q to quit", g.state.Score)
		if boxY+boxH < dst.Height() {
			dst.DrawTextCentered(boxY+boxH, hint)
		}
	}
}

// drawActor draws a sprite centred on the actor position.
// World y grows upward; screen rows grow downward. Cells outside the world are clipped.
func (g *Game) drawActor(dst *core.Screen, world core.Rect, a *actor.Actor) {
	rows := a.Visual.Frame()
	if len(rows) == 0 {
		return
	}
	color := a.Visual.Color()
	s := a.Visual.Sprite
	pos := a.Position()

	left := int(math.Floor(pos.X - float64(s.Width)/2))
	top := int(math.Floor(float64(g.cfg.Window.Height) - (pos.Y + float64(s.Height)/2)))

	for dy, row := range rows {
		wy := top + dy
		if wy < 0 || wy >= world.H {
			continue
		}
		for dx, r := range row {
			wx := left + dx
			if r == ' ' || wx < 0 || wx >= world.W {
				continue
			}
			dst.SetColored(world.X+wx, world.Y+wy, r, color)
		}
	}
}

// drawHUD draws score, lives and state on the row above the world box.
func (g *Game) drawHUD(dst *core.Screen, x, y, w int) {
	if y < 0 {
		return
	}
	score := fmt.Sprintf(" Score: %d/%d ", g.state.Score, g.cfg.Gameplay.WinScore)
	dst.DrawTextColored(x+1, y, score, core.ColorBrightYellow)

	lost := core.Max(g.cfg.Gameplay.StartingLives-g.state.Lives, 0)
	lives := " Lives: " + strings.Repeat(string(HeartChar), g.state.Lives) +
		strings.Repeat(string(LostHeartChar), lost) + " "
	lx := x + (w-len([]rune(lives)))/2
	dst.DrawTextColored(lx, y, lives, core.ColorBrightRed)

	status := g.kin.State().String()
	switch {
	case g.gameOver && g.won:
		status = "won"
	case g.gameOver:
		status = "game over"
	case g.paused:
		status = "paused"
	}
	status = " " + status + " "
	dst.DrawTextColored(x+w-1-len(status), y, status, core.ColorCyan)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

func (g *Game) drawTooSmall(dst *core.Screen, minW, minH int) {
	h := dst.Height()
	lines := []string{
		"Terminal too small",
		fmt.Sprintf("need %dx%d, have %dx%d", minW, minH, dst.Width(), h),
	}
	start := (h - len(lines)) / 2
	for i, line := range lines {
		dst.DrawTextCentered(start+i, line)
	}
}
