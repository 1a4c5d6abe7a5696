package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultAngryConfig() {
		t.Errorf("embedded YAML = %+v, expected %+v", cfg, DefaultAngryConfig())
	}
}

func TestDefaultLaunchPad(t *testing.T) {
	cfg := DefaultAngryConfig()
	if cfg.LaunchPad.X != 285 || cfg.LaunchPad.Y != 700 {
		t.Errorf("launch pad = (%v, %v), expected (285, 700)", cfg.LaunchPad.X, cfg.LaunchPad.Y)
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("projectile:\n  gravity: 400\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Projectile.Gravity != 400 {
		t.Errorf("Gravity = %v, expected 400", cfg.Projectile.Gravity)
	}
	if cfg.Projectile.HorizontalScale != 3 || cfg.Gameplay.Projectiles != 3 {
		t.Errorf("unspecified fields should keep defaults, got %+v", cfg)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero world", "world:\n  width: 0\n"},
		{"zero gravity", "projectile:\n  gravity: 0\n"},
		{"negative gravity", "projectile:\n  gravity: -250\n"},
		{"zero vertical scale", "projectile:\n  vertical_scale: 0\n"},
		{"negative vertical scale", "projectile:\n  vertical_scale: -5\n"},
		{"negative horizontal scale", "projectile:\n  horizontal_scale: -3\n"},
		{"no projectiles", "gameplay:\n  projectiles: 0\n"},
		{"negative points", "gameplay:\n  points_per_target: -5\n"},
		{"pad outside world", "launch_pad:\n  x: 5000\n"},
		{"pad on left edge", "launch_pad:\n  x: 0\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Parse() error = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse([]byte("world: [")); err == nil {
		t.Error("Parse() should fail on malformed YAML")
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "angry.yaml")
	if err := os.WriteFile(path, []byte("gameplay:\n  points_per_target: 10\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Gameplay.PointsPerTarget != 10 {
		t.Errorf("PointsPerTarget = %d, expected 10", cfg.Gameplay.PointsPerTarget)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, expected os.ErrNotExist", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	in := DefaultAngryConfig()
	in.Projectile.Gravity = 321

	data, err := Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	out, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) failed: %v", err)
	}
	if out != in {
		t.Errorf("round trip = %+v, expected %+v", out, in)
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
		wantErr  bool
	}{
		{"", "", false},
		{"easy", DifficultyEasy, false},
		{"normal", DifficultyNormal, false},
		{"hard", DifficultyHard, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParseDifficulty(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.expected {
			t.Errorf("ParseDifficulty(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	base := DefaultAngryConfig()

	easy := base
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Projectile.Gravity >= base.Projectile.Gravity {
		t.Errorf("easy gravity %v should be below %v", easy.Projectile.Gravity, base.Projectile.Gravity)
	}

	hard := base
	ApplyPreset(&hard, DifficultyHard)
	if hard.Projectile.Gravity <= base.Projectile.Gravity {
		t.Errorf("hard gravity %v should be above %v", hard.Projectile.Gravity, base.Projectile.Gravity)
	}

	normal := base
	ApplyPreset(&normal, DifficultyNormal)
	if normal != base {
		t.Error("normal preset should leave the config unchanged")
	}

	for _, cfg := range []AngryConfig{easy, hard} {
		if cfg.Gameplay != base.Gameplay {
			t.Error("presets must not change round rules")
		}
	}
}
