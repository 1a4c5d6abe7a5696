package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded is reported by Load when no file overrides the defaults.
const SourceEmbedded = "embedded"

// Load loads the game configuration and reports where it came from.
// Search order: customPath -> ~/.angry/configs/angry.yaml -> ./configs/angry.yaml -> embedded default
//
// A custom path that cannot be read or parsed is an error. Unreadable or
// broken files further down the search order are skipped.
func Load(customPath string) (AngryConfig, string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return AngryConfig{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return AngryConfig{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	candidates := []string{userConfigPath("angry.yaml"), filepath.Join("configs", "angry.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, path, nil
		}
	}

	cfg, err := Parse(defaultAngryYAML)
	if err != nil {
		return DefaultAngryConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// Parse decodes YAML on top of the built-in defaults and validates the result.
// Fields missing from data keep their default values.
func Parse(data []byte) (AngryConfig, error) {
	cfg := DefaultAngryConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AngryConfig{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return AngryConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg AngryConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".angry", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// Presets only change how hard the arc is to control; round rules stay fixed.
func ApplyPreset(cfg *AngryConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Projectile.Gravity *= 0.8
		cfg.Projectile.VerticalScale *= 0.9
	case DifficultyHard:
		cfg.Projectile.Gravity *= 1.3
		cfg.Projectile.HorizontalScale *= 1.2
	}
}
