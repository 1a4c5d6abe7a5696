package angry

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/JamieStevensDev/Angry-nerds/internal/core"
)

// Popup animation constants.
const (
	PopupDuration = 0.8 // Seconds
	PopupRise     = 120 // World units travelled upwards
)

// Popup is a floating score label. It never affects round state.
type Popup struct {
	Text string
	X, Y float64
	Done bool

	tween *gween.Tween
}

// NewPopup starts a popup rising from the top edge of box.
func NewPopup(text string, box core.Box) *Popup {
	from := box.Y
	return &Popup{
		Text:  text,
		X:     box.Center().X,
		Y:     from,
		tween: gween.New(float32(from), float32(from-PopupRise), PopupDuration, ease.OutQuad),
	}
}

// Update advances the popup by dt seconds.
func (p *Popup) Update(dt float64) {
	if p.Done {
		return
	}
	y, finished := p.tween.Update(float32(dt))
	p.Y = float64(y)
	p.Done = finished
}

// Pos returns the popup's current world position.
func (p *Popup) Pos() core.Vec2 {
	return core.V(p.X, p.Y)
}

// updatePopups advances popups and drops finished ones.
func updatePopups(popups []*Popup, dt float64) []*Popup {
	live := popups[:0]
	for _, p := range popups {
		p.Update(dt)
		if !p.Done {
			live = append(live, p)
		}
	}
	return live
}
