package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/JamieStevensDev/Angry-nerds/internal/core"
)

// Debug font cell size in pixels.
const (
	glyphW = 6
	glyphH = 16
)

// baseScale enlarges all text so the debug font is readable on a
// 1920x1080 logical screen.
const baseScale = 2

// textCache keeps one pre-rendered image per distinct string.
type textCache struct {
	images map[string]*ebiten.Image
}

func newTextCache() *textCache {
	return &textCache{images: make(map[string]*ebiten.Image)}
}

func (c *textCache) image(s string) *ebiten.Image {
	if img, ok := c.images[s]; ok {
		return img
	}
	img := ebiten.NewImage(max(len(s)*glyphW, 1), glyphH)
	ebitenutil.DebugPrint(img, s)
	c.images[s] = img
	return img
}

// draw renders text with its top-left corner at the text position.
func (c *textCache) draw(screen *ebiten.Image, l core.Text) {
	scale := baseScale * max(l.Scale, 1)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(l.Pos.X, l.Pos.Y)
	screen.DrawImage(c.image(l.Text), op)
}
