// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by Validate failures.
var ErrInvalid = errors.New("config: invalid")

// AngryConfig contains all tunables for the slingshot game.
type AngryConfig struct {
	World      World      `yaml:"world"`
	LaunchPad  LaunchPad  `yaml:"launch_pad"`
	Projectile Projectile `yaml:"projectile"`
	Gameplay   Gameplay   `yaml:"gameplay"`
}

// World is the logical play area in world units. Y grows downwards.
type World struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// LaunchPad is where the projectile rests before launch and returns to
// after leaving the play area.
type LaunchPad struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Projectile defines the projectile hitbox and motion constants.
type Projectile struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	HorizontalScale float64 `yaml:"horizontal_scale"` // Multiplier on the x component per second
	VerticalScale   float64 `yaml:"vertical_scale"`   // Multiplier on the y component per second
	Gravity         float64 `yaml:"gravity"`          // Added to the y component per second while launched
}

// Gameplay defines round rules.
type Gameplay struct {
	Projectiles     int `yaml:"projectiles"`       // Projectiles per round
	PointsPerTarget int `yaml:"points_per_target"` // Score for each target hit
}

// Validate checks that the configuration can drive a game.
func (c AngryConfig) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("%w: world size %vx%v", ErrInvalid, c.World.Width, c.World.Height)
	}
	if c.Projectile.Width <= 0 || c.Projectile.Height <= 0 {
		return fmt.Errorf("%w: projectile size %vx%v", ErrInvalid, c.Projectile.Width, c.Projectile.Height)
	}
	// Without a downward pull a launched projectile can hang in the world forever
	if c.Projectile.Gravity <= 0 || c.Projectile.VerticalScale <= 0 {
		return fmt.Errorf("%w: gravity and vertical_scale must be positive, got %v and %v",
			ErrInvalid, c.Projectile.Gravity, c.Projectile.VerticalScale)
	}
	if c.Projectile.HorizontalScale < 0 {
		return fmt.Errorf("%w: horizontal_scale must not be negative, got %v", ErrInvalid, c.Projectile.HorizontalScale)
	}
	if c.Gameplay.Projectiles <= 0 {
		return fmt.Errorf("%w: projectiles must be positive, got %d", ErrInvalid, c.Gameplay.Projectiles)
	}
	if c.Gameplay.PointsPerTarget < 0 {
		return fmt.Errorf("%w: points_per_target must not be negative, got %d", ErrInvalid, c.Gameplay.PointsPerTarget)
	}
	if c.LaunchPad.X <= 0 || c.LaunchPad.X >= c.World.Width || c.LaunchPad.Y < 0 || c.LaunchPad.Y >= c.World.Height {
		return fmt.Errorf("%w: launch pad (%v, %v) outside the world", ErrInvalid, c.LaunchPad.X, c.LaunchPad.Y)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty maps a flag value to a preset. Empty means no preset.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal or hard)", ErrInvalid, s)
	}
}
