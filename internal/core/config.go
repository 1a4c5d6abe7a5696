package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickDuration returns the simulated time covered by one tick.
func (c RuntimeConfig) TickDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState represents the current state of a game.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the round has ended (won or lost)
	Paused   bool // Whether the game is paused
}

// EventKind classifies something notable that happened during a tick.
type EventKind int

const (
	EventStageChanged EventKind = iota
	EventLaunched
	EventTargetHit
	EventProjectileLost
	EventRoundWon
	EventRoundLost
	EventRoundReset
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventStageChanged:
		return "stage_changed"
	case EventLaunched:
		return "launched"
	case EventTargetHit:
		return "target_hit"
	case EventProjectileLost:
		return "projectile_lost"
	case EventRoundWon:
		return "round_won"
	case EventRoundLost:
		return "round_lost"
	case EventRoundReset:
		return "round_reset"
	default:
		return "unknown"
	}
}

// Event is emitted by a game step for the platform to log or react to.
type Event struct {
	Kind   EventKind
	Detail string
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
