package angry

import (
	"github.com/JamieStevensDev/Angry-nerds/internal/config"
	"github.com/JamieStevensDev/Angry-nerds/internal/core"
)

// Outcome lists what one collision pass changed.
type Outcome struct {
	Hits []int // Indexes into the target slice, in slice order
	Lost bool  // Projectile left the play area and went back to the pad
}

// resolve runs one collision pass. Every visible target overlapping the
// projectile is hidden and scored. The exit check runs once per tick after
// the target loop, so a projectile can be lost at most once per tick.
func resolve(r RoundState, proj *GameObject, targets []GameObject, world config.World) (RoundState, Outcome) {
	var out Outcome

	for i := range targets {
		t := &targets[i]
		if !t.Visible || !proj.Box.Intersects(t.Box) {
			continue
		}
		t.Visible = false
		r = r.HitTarget()
		out.Hits = append(out.Hits, i)
	}

	if outOfPlay(proj.Box.Pos(), world) {
		proj.Box = proj.Box.MoveTo(proj.Home)
		if proj.Motion != nil {
			proj.Motion.ResetVector()
		}
		r = r.LoseProjectile()
		out.Lost = true
	}

	return r, out
}

// outOfPlay reports whether the projectile's top-left corner has left the
// world through the floor or either side. Leaving through the top is allowed.
func outOfPlay(p core.Vec2, world config.World) bool {
	return p.Y >= world.Height || p.X <= 0 || p.X >= world.Width
}
