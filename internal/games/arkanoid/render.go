package arkanoid

import (
	"fmt"

	"github.com/arcadekit/arkanoid/internal/arena"
	"github.com/arcadekit/arkanoid/internal/core"
	"github.com/arcadekit/arkanoid/internal/geom"
)

// Visual characters for rendering.
const (
	PaddleChar = '='
	BallChar   = '●'
	BrickChar  = '█'
)

// brickColor maps a brick's remaining hits to a tier color.
func brickColor(requiredHits int) core.Color {
	switch {
	case requiredHits >= 3:
		return core.ColorBrightRed
	case requiredHits == 2:
		return core.ColorYellow
	default:
		return core.ColorGreen
	}
}

// Render draws the current state to the screen. The logical arena is
// scaled onto the cell grid inside a border; row 0 carries the HUD.
// The host calls this after the tick's reap, so destroyed entities are
// never drawn.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)

	field := core.NewRect(0, 1, dst.Width(), dst.Height()-1)
	dst.DrawBox(field)
	inner := core.NewRect(field.X+1, field.Y+1, field.W-2, field.H-2)

	g.reg.Each(func(e arena.Entity) {
		switch v := e.(type) {
		case *arena.Brick:
			g.fillBox(dst, inner, v.Bounds(), BrickChar, brickColor(v.RequiredHits))
		case *arena.Paddle:
			g.fillBox(dst, inner, v.Bounds(), PaddleChar, core.ColorCyan)
		case *arena.Ball:
			x, y := g.toCell(inner, v.Pos)
			dst.SetCell(x, y, BallChar, core.ColorBrightWhite)
		}
	})

	g.renderOverlay(dst)
}

// toCell maps a logical arena point to a screen cell inside the field.
func (g *Game) toCell(inner core.Rect, p geom.Vec2) (int, int) {
	x := inner.X + int(p.X*float64(inner.W)/g.cfg.Arena.Width)
	y := inner.Y + int(p.Y*float64(inner.H)/g.cfg.Arena.Height)
	return core.Clamp(x, inner.X, inner.Right()-1), core.Clamp(y, inner.Y, inner.Bottom()-1)
}

// fillBox draws a logical box as a filled cell rectangle, at least one
// cell in each direction so thin entities stay visible.
func (g *Game) fillBox(dst *core.Screen, inner core.Rect, box geom.Box, ch rune, c core.Color) {
	x0, y0 := g.toCell(inner, geom.Vec2{X: box.Left, Y: box.Top})
	x1, y1 := g.toCell(inner, geom.Vec2{X: box.Right, Y: box.Bottom})
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dst.SetCell(x, y, ch, c)
		}
	}
}

// renderHUD draws the score, lives, and mode indicator.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))
	if g.mode == ModeClassic {
		dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d", g.lives))
	} else {
		dst.DrawTextCentered(0, "Practice")
	}
	modeText := g.Title()
	dst.DrawText(dst.Width()-len(modeText)-1, 0, modeText)
}

// renderOverlay draws the session state banner.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePaused:
		g.drawCenteredBox(dst, "Paused", "Press P to play")
	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "Game over!", subtitle)
	case StateVictory:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "You won!", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
