// Package window runs a game in a desktop window with Ebitengine.
// The logical screen is the game world, so cursor positions arrive in world
// units and no viewport mapping is needed.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/JamieStevensDev/Angry-nerds/internal/core"
	"github.com/JamieStevensDev/Angry-nerds/internal/registry"
)

// Window defaults.
const (
	Title         = "Angry Birds!"
	DefaultWidth  = 1280
	DefaultHeight = 720
)

// ErrNoFrame is returned for games that cannot describe themselves in
// world units.
var ErrNoFrame = errors.New("window: game does not provide frames")

// Source is a game that can be drawn in a window.
type Source interface {
	registry.Game
	registry.Framer
}

// Game implements ebiten.Game around a Source.
type Game struct {
	src    Source
	logger *log.Logger
	input  core.InputFrame
	world  core.Vec2
	text   *textCache
}

// New creates a window game and resets it for a world-sized screen.
// A nil logger discards all output.
func New(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) (*Game, error) {
	src, ok := game.(Source)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoFrame, game.ID())
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	world := src.Frame().World
	cfg.ScreenW, cfg.ScreenH = int(world.X), int(world.Y)
	src.Reset(cfg)

	return &Game{
		src:    src,
		logger: logger,
		input:  core.NewInputFrame(),
		world:  world,
		text:   newTextCache(),
	}, nil
}

// Update collects input and advances the game one tick.
func (g *Game) Update() error {
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		switch a := keyAction(k); a {
		case core.ActionQuit:
			g.logger.Info("quit")
			return ebiten.Termination
		case core.ActionNone:
		default:
			g.input.Set(a)
		}
	}

	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.logger.Debug("pointer", "kind", core.PointerPress, "x", x, "y", y)
		g.input.AddPointer(core.PointerPress, x, y)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.logger.Debug("pointer", "kind", core.PointerRelease, "x", x, "y", y)
		g.input.AddPointer(core.PointerRelease, x, y)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.input.AddPointer(core.PointerMove, x, y)
	}

	res := g.src.Step(g.input)
	for _, ev := range res.Events {
		g.logger.Info(ev.Kind.String(), "detail", ev.Detail)
	}
	g.input.Clear()
	return nil
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	f := g.src.Frame()

	for _, fill := range f.Background {
		b := fill.Box
		vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), rgba(fill.Color), false)
	}
	for _, s := range f.Sprites {
		drawSprite(screen, s)
	}
	for _, l := range f.Lines {
		vector.StrokeLine(screen,
			float32(l.From.X), float32(l.From.Y),
			float32(l.To.X), float32(l.To.Y),
			float32(l.Width), rgba(l.Color), true)
	}
	for _, t := range f.Texts {
		g.text.draw(screen, t)
	}
}

// Layout fixes the logical screen to the world size.
func (g *Game) Layout(_, _ int) (int, int) {
	return int(g.world.X), int(g.world.Y)
}

// Run opens the window and blocks until it is closed.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	g, err := New(game, cfg, logger)
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle(Title)
	ebiten.SetWindowSize(DefaultWidth, DefaultHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	g.logger.Info("window opened", "game", game.ID(), "world", fmt.Sprintf("%.0fx%.0f", g.world.X, g.world.Y), "tps", ebiten.TPS())
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("running %s: %w", game.ID(), err)
	}
	return nil
}

// keyAction maps a key to a game action.
func keyAction(k ebiten.Key) core.Action {
	switch k {
	case ebiten.KeySpace:
		return core.ActionAdvance
	case ebiten.KeyP:
		return core.ActionPause
	case ebiten.KeyR:
		return core.ActionRestart
	case ebiten.KeyEscape, ebiten.KeyQ:
		return core.ActionQuit
	default:
		return core.ActionNone
	}
}

// rgba converts a core colour to an opaque RGBA value.
func rgba(c core.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

func drawSprite(screen *ebiten.Image, s core.Sprite) {
	b := s.Box
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), rgba(s.Color), false)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 2, color.Black, false)
}
