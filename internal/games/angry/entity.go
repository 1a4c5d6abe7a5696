package angry

import (
	"github.com/JamieStevensDev/Angry-nerds/internal/core"
	"github.com/JamieStevensDev/Angry-nerds/internal/levels"
)

// ObjectKind identifies the role of a game object.
type ObjectKind int

const (
	KindProjectile ObjectKind = iota
	KindTarget
	KindObstacle
)

// String returns the kind name.
func (k ObjectKind) String() string {
	switch k {
	case KindProjectile:
		return "projectile"
	case KindTarget:
		return "target"
	case KindObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// GameObject is anything placed in the world. Only the projectile carries a
// Motion component; targets and obstacles just toggle visibility.
type GameObject struct {
	Name     string
	Kind     ObjectKind
	Material string // "cow", "wood", "ice", "stone", "alien"
	Box      core.Box
	Home     core.Vec2 // Position restored on reset
	Visible  bool
	Motion   *Motion
}

// Restore moves the object back home and makes it visible.
func (o *GameObject) Restore() {
	o.Box = o.Box.MoveTo(o.Home)
	o.Visible = true
	if o.Motion != nil {
		o.Motion.ResetVector()
	}
}

// Color returns the display colour for the object's material.
func (o *GameObject) Color() core.Color {
	switch o.Material {
	case "alien":
		return core.ColorBrightYellow
	case "cow":
		return core.ColorWhite
	case "wood":
		return core.ColorBrown
	case "ice":
		return core.ColorBrightCyan
	case "stone":
		return core.ColorGray
	default:
		return core.ColorMagenta
	}
}

// Glyph returns the terminal fill rune for the object's material.
func (o *GameObject) Glyph() rune {
	switch o.Material {
	case "alien":
		return '●'
	case "cow":
		return '▓'
	case "ice":
		return '░'
	default:
		return '█'
	}
}

// newObjects builds ordered game objects from level placements.
func newObjects(placements []levels.Placement, kind ObjectKind) []GameObject {
	objs := make([]GameObject, len(placements))
	for i, p := range placements {
		objs[i] = GameObject{
			Name:     p.Name,
			Kind:     kind,
			Material: p.Kind,
			Box:      p.Box,
			Home:     p.Box.Pos(),
			Visible:  true,
		}
	}
	return objs
}
