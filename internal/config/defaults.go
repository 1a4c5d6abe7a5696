package config

import (
	_ "embed"
)

//go:embed defaults/angry.yaml
var defaultAngryYAML []byte

// DefaultAngryConfig returns the built-in configuration.
// The launch pad sits left of a 640-wide strip, centred for a 70-wide sprite.
func DefaultAngryConfig() AngryConfig {
	return AngryConfig{
		World: World{
			Width:  1920,
			Height: 1080,
		},
		LaunchPad: LaunchPad{
			X: 640/2.0 - 70/2.0,
			Y: 700,
		},
		Projectile: Projectile{
			Width:           70,
			Height:          70,
			HorizontalScale: 3,
			VerticalScale:   5,
			Gravity:         250,
		},
		Gameplay: Gameplay{
			Projectiles:     3,
			PointsPerTarget: 5,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultAngryYAML
}
