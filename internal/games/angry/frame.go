package angry

import "github.com/JamieStevensDev/Angry-nerds/internal/core"

// Window drawing constants, in world units.
const (
	AimWidth   = 4
	TitleScale = 3
)

// Frame describes the current state in world units for pixel renderers.
// Menus show the title over a plain background; the playing stage shows
// the backdrop, obstacles, visible targets, the projectile and any aim line.
func (g *Game) Frame() core.Frame {
	world := g.worldSize()
	f := core.Frame{World: world}

	if g.round.Stage == StagePlaying {
		bd := g.backdrop
		f.Background = []core.Fill{
			{Box: core.NewBox(0, 0, world.X, GroundLevel), Color: bd.Sky},
			{Box: core.NewBox(0, GroundLevel, world.X, world.Y-GroundLevel), Color: bd.Ground},
		}

		for i := range g.obstacles {
			if g.obstacles[i].Visible {
				f.Sprites = append(f.Sprites, sprite(&g.obstacles[i]))
			}
		}
		for i := range g.targets {
			if g.targets[i].Visible {
				f.Sprites = append(f.Sprites, sprite(&g.targets[i]))
			}
		}
		f.Sprites = append(f.Sprites, sprite(&g.projectile))

		if g.aim.active {
			f.Lines = append(f.Lines, core.Line{From: g.aim.start, To: g.aim.current, Width: AimWidth, Color: core.ColorRed})
		}
		for _, p := range g.popups {
			f.Texts = append(f.Texts, core.Text{Text: p.Text, Pos: p.Pos(), Scale: 1})
		}
	} else {
		f.Texts = append(f.Texts,
			core.Text{Text: TitleArt, Pos: core.V(world.X/4, world.Y/4), Scale: TitleScale},
			core.Text{Text: g.level.Name, Pos: core.V(world.X/4, world.Y/4+120), Scale: 1},
		)
	}

	for _, l := range labels(g.round, g.paused) {
		f.Texts = append(f.Texts, core.Text{Text: l.Text, Pos: l.Pos, Scale: l.Scale})
	}

	return f
}

func sprite(o *GameObject) core.Sprite {
	return core.Sprite{Name: o.Name, Kind: o.Kind.String(), Box: o.Box, Color: o.Color()}
}
