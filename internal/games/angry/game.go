// Package angry implements a slingshot game: drag to launch an alien along a
// parabolic arc and capture every cow before the aliens run out.
//
// The game owns all objects and the round state. Frontends feed it one
// core.InputFrame per tick and draw it either through Render (terminal
// cells) or Frame (world space).
package angry

import (
	"fmt"

	"github.com/JamieStevensDev/Angry-nerds/internal/config"
	"github.com/JamieStevensDev/Angry-nerds/internal/core"
	"github.com/JamieStevensDev/Angry-nerds/internal/levels"
	"github.com/JamieStevensDev/Angry-nerds/internal/registry"
)

// Registry identifiers.
const (
	ID    = "angry"
	Title = "Angry Nerds"
)

// aim tracks a drag in progress.
type aim struct {
	active  bool
	start   core.Vec2
	current core.Vec2
}

// Game implements the slingshot game logic.
type Game struct {
	cfg      config.AngryConfig
	level    levels.Level
	runtime  core.RuntimeConfig
	viewport Viewport
	backdrop Backdrop

	projectile GameObject
	targets    []GameObject
	obstacles  []GameObject

	round     RoundState
	paused    bool
	popups    []*Popup
	aim       aim
	tickCount int
}

// New creates a game from a validated configuration and level.
// Objects are built once here; Reset only restores them.
func New(cfg config.AngryConfig, level levels.Level) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := level.Validate(); err != nil {
		return nil, err
	}

	pad := core.V(cfg.LaunchPad.X, cfg.LaunchPad.Y)
	g := &Game{
		cfg:   cfg,
		level: level,
		projectile: GameObject{
			Name:     "alien",
			Kind:     KindProjectile,
			Material: "alien",
			Box:      core.NewBox(pad.X, pad.Y, cfg.Projectile.Width, cfg.Projectile.Height),
			Home:     pad,
			Visible:  true,
			Motion:   NewMotion(cfg.Projectile),
		},
		targets:   newObjects(level.Targets, KindTarget),
		obstacles: newObjects(level.Obstacles, KindObstacle),
	}
	g.Reset(core.DefaultConfig())
	return g, nil
}

// Open loads configuration and level as directed by opts and creates a game.
func Open(opts registry.Options) (*Game, error) {
	cfg, _, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	preset, err := config.ParseDifficulty(opts.Difficulty)
	if err != nil {
		return nil, err
	}
	config.ApplyPreset(&cfg, preset)

	level, err := levels.Open(opts.LevelPath)
	if err != nil {
		return nil, fmt.Errorf("loading level: %w", err)
	}

	return New(cfg, level)
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return Title
}

// Reset returns to the title screen with a fresh round.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.viewport = NewViewport(cfg.ScreenW, cfg.ScreenH, g.worldSize())
	g.backdrop = PickBackdrop(cfg.Seed)
	g.round = NewRoundState(len(g.targets), g.cfg.Gameplay.Projectiles, g.cfg.Gameplay.PointsPerTarget)
	g.paused = false
	g.tickCount = 0
	g.restoreObjects()
}

// Resize changes the terminal grid without touching the round.
func (g *Game) Resize(cols, rows int) {
	g.runtime.ScreenW, g.runtime.ScreenH = cols, rows
	g.viewport = NewViewport(cols, rows, g.worldSize())
}

// Step applies one frame of input, then advances the simulation one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var events []core.Event
	emit := func(kind core.EventKind, format string, args ...any) {
		events = append(events, core.Event{Kind: kind, Detail: fmt.Sprintf(format, args...)})
	}

	prev := g.round
	if in.Has(core.ActionAdvance) {
		g.round = g.round.Advance()
	}
	if in.Has(core.ActionRestart) {
		g.round = g.round.Restart()
	}
	if g.round.Stage != prev.Stage {
		emit(core.EventStageChanged, "%s -> %s", prev.Stage, g.round.Stage)
	}
	if in.Has(core.ActionPause) && g.round.Active() {
		g.paused = !g.paused
		if g.paused {
			// Pointer events are dropped while paused, so a drag cannot finish
			g.aim = aim{}
		}
	}

	if g.round.ResetPending {
		g.round = g.round.Restored()
		g.paused = false
		g.restoreObjects()
		emit(core.EventRoundReset, "%d targets, %d projectiles", g.round.TargetsRemaining, g.round.ProjectilesRemaining)
	}

	if g.paused {
		return core.StepResult{State: g.State(), Events: events}
	}

	dt := g.runtime.TickDuration().Seconds()
	g.popups = updatePopups(g.popups, dt)

	if !g.round.Active() {
		g.aim = aim{}
		return core.StepResult{State: g.State(), Events: events}
	}

	if g.handlePointer(in.Pointer) {
		v := g.projectile.Motion.Vector()
		emit(core.EventLaunched, "vector (%.0f, %.0f)", v.X, v.Y)
	}

	g.tickCount++

	pos := g.projectile.Motion.Shoot(g.projectile.Box.Pos(), dt)
	g.projectile.Box = g.projectile.Box.MoveTo(pos)

	var out Outcome
	g.round, out = resolve(g.round, &g.projectile, g.targets, g.cfg.World)
	for _, i := range out.Hits {
		t := g.targets[i]
		g.popups = append(g.popups, NewPopup(fmt.Sprintf("+%d", g.round.PointsPerTarget), t.Box))
		emit(core.EventTargetHit, "%s, score %d", t.Name, g.round.Score)
	}
	if out.Lost {
		emit(core.EventProjectileLost, "%d remaining", g.round.ProjectilesRemaining)
	}

	g.round = g.round.Settle()
	switch {
	case g.round.Won:
		emit(core.EventRoundWon, "score %d", g.round.Score)
	case g.round.Lost:
		emit(core.EventRoundLost, "score %d, %d targets left", g.round.Score, g.round.TargetsRemaining)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// handlePointer feeds pointer events to the projectile. A release only
// counts after a press seen while the projectile was at rest.
// Returns true if the projectile was launched.
func (g *Game) handlePointer(events []core.PointerEvent) bool {
	motion := g.projectile.Motion
	launched := false

	for _, ev := range events {
		p := g.viewport.ToWorld(ev.X, ev.Y)
		switch ev.Kind {
		case core.PointerPress:
			if motion.Launched() {
				continue
			}
			motion.SetVector(true, p)
			g.aim = aim{active: true, start: p, current: p}
		case core.PointerMove:
			if g.aim.active {
				g.aim.current = p
			}
		case core.PointerRelease:
			if !g.aim.active {
				continue
			}
			motion.SetVector(false, p)
			g.aim = aim{}
			launched = launched || motion.Launched()
		}
	}
	return launched
}

// restoreObjects puts every object back at its home position.
func (g *Game) restoreObjects() {
	g.projectile.Restore()
	for i := range g.targets {
		g.targets[i].Restore()
	}
	for i := range g.obstacles {
		g.obstacles[i].Restore()
	}
	g.popups = nil
	g.aim = aim{}
}

func (g *Game) worldSize() core.Vec2 {
	return core.V(g.cfg.World.Width, g.cfg.World.Height)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.round.Score,
		GameOver: g.round.Over(),
		Paused:   g.paused,
	}
}

// Round returns a copy of the round state.
func (g *Game) Round() RoundState {
	return g.round
}

// Backdrop returns the theme chosen at the last reset.
func (g *Game) Backdrop() Backdrop {
	return g.backdrop
}

// Level returns the level being played.
func (g *Game) Level() levels.Level {
	return g.level
}

var (
	_ registry.Resizer = (*Game)(nil)
	_ registry.Framer  = (*Game)(nil)
)

func init() {
	registry.Register(ID, Title, func(opts registry.Options) (registry.Game, error) {
		g, err := Open(opts)
		if err != nil {
			return nil, err
		}
		return g, nil
	})
}
