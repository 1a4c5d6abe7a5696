package angry

import (
	"github.com/JamieStevensDev/Angry-nerds/internal/config"
	"github.com/JamieStevensDev/Angry-nerds/internal/core"
)

// Motion is the launch capability attached to a projectile.
// A drag records a start point on press and an end point on release; the
// launch vector is start minus end. Integration is explicit Euler with a
// gravity term added to the vertical component every tick while launched.
type Motion struct {
	start    core.Vec2
	end      core.Vec2
	vector   core.Vec2
	launched bool

	horizontalScale float64
	verticalScale   float64
	gravity         float64
}

// NewMotion creates a motion component using the projectile constants.
func NewMotion(p config.Projectile) *Motion {
	return &Motion{
		horizontalScale: p.HorizontalScale,
		verticalScale:   p.VerticalScale,
		gravity:         p.Gravity,
	}
}

// SetVector records a drag point. Ignored while launched.
func (m *Motion) SetVector(pressed bool, p core.Vec2) {
	if m.launched {
		return
	}
	if pressed {
		m.start = p
		return
	}
	m.end = p
	m.vector = m.start.Sub(m.end)
	m.launched = true
}

// ResetVector stops the projectile and allows a new drag.
func (m *Motion) ResetVector() {
	m.vector = core.Vec2{}
	m.launched = false
}

// Shoot returns pos advanced by dt seconds. The vector used is the one
// from before this tick's gravity.
func (m *Motion) Shoot(pos core.Vec2, dt float64) core.Vec2 {
	next := pos.Add(m.vector.Scale(m.horizontalScale*dt, m.verticalScale*dt))
	if m.launched {
		m.vector.Y += m.gravity * dt
	}
	return next
}

// Launched reports whether the projectile is in flight.
func (m *Motion) Launched() bool {
	return m.launched
}

// Vector returns the current launch vector.
func (m *Motion) Vector() core.Vec2 {
	return m.vector
}

// Start returns the last recorded press point.
func (m *Motion) Start() core.Vec2 {
	return m.start
}
