package angry

import (
	"strings"

	"github.com/JamieStevensDev/Angry-nerds/internal/core"
)

// Visual characters for rendering
const (
	AimChar    = '·'
	AnchorChar = '◎'
	TitleArt   = "A N G R Y   B I R D S !"
)

// Render draws the current game state to the screen using the viewport set
// by Reset or Resize. Cells outside dst are clipped.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.round.Stage == StagePlaying {
		g.drawPlayfield(dst)
	} else {
		g.drawMenu(dst)
	}

	text := g.backdrop.Text
	if g.round.Stage != StagePlaying {
		text = core.ColorWhite
	}

	// The counters share one centred row; at terminal widths their world
	// positions overlap.
	var hud []string
	hudRow := 0
	for _, l := range labels(g.round, g.paused) {
		if l.HUD {
			hud = append(hud, l.Text)
			_, hudRow = g.viewport.ToCell(l.Pos)
			continue
		}
		g.drawLabel(dst, l, text)
	}
	if len(hud) > 0 {
		dst.DrawTextCentered(hudRow, strings.Join(hud, "   "), text)
	}
}

// drawMenu draws the title and instructions background.
func (g *Game) drawMenu(dst *core.Screen) {
	frame := core.NewRect(0, 0, dst.Width(), dst.Height())
	dst.DrawBox(frame, core.ColorGreen)
	dst.DrawTextCentered(dst.Height()/4, TitleArt, core.ColorBrightYellow)
	dst.DrawTextCentered(dst.Height()/4+2, g.level.Name, core.ColorGray)
}

// drawPlayfield draws the backdrop and every visible object.
func (g *Game) drawPlayfield(dst *core.Screen) {
	bd := g.backdrop
	_, groundRow := g.viewport.ToCell(core.V(0, GroundLevel))

	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			switch {
			case y >= groundRow:
				dst.SetColor(x, y, bd.GroundGlyph, bd.Ground)
			case bd.Stars && star(x, y):
				dst.SetColor(x, y, '.', core.ColorWhite)
			}
		}
	}

	for i := range g.obstacles {
		g.drawObject(dst, &g.obstacles[i])
	}
	for i := range g.targets {
		g.drawObject(dst, &g.targets[i])
	}

	pad := g.viewport.BoxToRect(core.NewBox(g.projectile.Home.X, g.projectile.Home.Y, g.projectile.Box.W, g.projectile.Box.H))
	dst.SetColor(pad.X+pad.W/2, pad.Bottom(), AnchorChar, core.ColorBrown)

	if g.aim.active {
		g.drawAim(dst)
	}
	g.drawObject(dst, &g.projectile)

	for _, p := range g.popups {
		g.drawLabel(dst, Label{Text: p.Text, Pos: p.Pos()}, core.ColorBrightYellow)
	}
}

func (g *Game) drawObject(dst *core.Screen, o *GameObject) {
	if !o.Visible {
		return
	}
	dst.DrawRect(g.viewport.BoxToRect(o.Box), o.Glyph(), o.Color())
}

// drawAim draws a dotted line from the drag start to the pointer.
func (g *Game) drawAim(dst *core.Screen) {
	x0, y0 := g.viewport.ToCell(g.aim.start)
	x1, y1 := g.viewport.ToCell(g.aim.current)

	steps := max(abs(x1-x0), abs(y1-y0))
	for i := 0; i <= steps; i++ {
		x, y := x0, y0
		if steps > 0 {
			x = x0 + (x1-x0)*i/steps
			y = y0 + (y1-y0)*i/steps
		}
		dst.SetColor(x, y, AimChar, core.ColorRed)
	}
}

// drawLabel places a label at its world position, shifted left if needed so
// the whole line stays on screen.
func (g *Game) drawLabel(dst *core.Screen, l Label, c core.Color) {
	x, y := g.viewport.ToCell(l.Pos)
	n := len([]rune(l.Text))
	x = core.Clamp(x, 0, max(0, dst.Width()-n))
	dst.DrawTextColor(x, y, l.Text, c)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
