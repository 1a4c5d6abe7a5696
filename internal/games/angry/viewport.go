package angry

import (
	"math"

	"github.com/JamieStevensDev/Angry-nerds/internal/core"
)

// Viewport maps world units onto a grid of screen cells. The whole world is
// stretched over the grid, so cells are usually taller than they are wide.
type Viewport struct {
	Cols, Rows int
	World      core.Vec2 // World size
}

// NewViewport creates a viewport; non-positive grid sizes become 1.
func NewViewport(cols, rows int, world core.Vec2) Viewport {
	return Viewport{Cols: max(cols, 1), Rows: max(rows, 1), World: world}
}

// ToCell returns the cell containing world point p.
func (v Viewport) ToCell(p core.Vec2) (int, int) {
	x := int(math.Floor(p.X * float64(v.Cols) / v.World.X))
	y := int(math.Floor(p.Y * float64(v.Rows) / v.World.Y))
	return x, y
}

// ToWorld returns the world point at the top-left corner of a cell.
// Fractional cell coordinates are allowed.
func (v Viewport) ToWorld(col, row float64) core.Vec2 {
	return core.Vec2{
		X: col * v.World.X / float64(v.Cols),
		Y: row * v.World.Y / float64(v.Rows),
	}
}

// BoxToRect returns the cells covered by a world box, at least one cell.
func (v Viewport) BoxToRect(b core.Box) core.Rect {
	x0, y0 := v.ToCell(b.Pos())
	x1 := int(math.Ceil(b.Right() * float64(v.Cols) / v.World.X))
	y1 := int(math.Ceil(b.Bottom() * float64(v.Rows) / v.World.Y))
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}
