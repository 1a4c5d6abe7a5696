package formats

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// TOMLLevel represents the TOML structure for a level file.
// Entities are arrays of tables: [[targets]] and [[obstacles]].
type TOMLLevel struct {
	ID        string       `toml:"id"`
	Name      string       `toml:"name"`
	Targets   []TOMLEntity `toml:"targets"`
	Obstacles []TOMLEntity `toml:"obstacles"`
}

// TOMLEntity represents a single placed object in TOML format.
type TOMLEntity struct {
	Name string  `toml:"name"`
	Kind string  `toml:"kind"`
	X    float64 `toml:"x"`
	Y    float64 `toml:"y"`
	W    float64 `toml:"w"`
	H    float64 `toml:"h"`
}

// ParseTOML parses a TOML level file. Unknown keys are rejected.
func ParseTOML(data []byte) (Level, error) {
	var tl TOMLLevel

	md, err := toml.Decode(string(data), &tl)
	if err != nil {
		return Level{}, fmt.Errorf("toml decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Level{}, fmt.Errorf("toml decode: unknown keys %s", strings.Join(keys, ", "))
	}

	level := Level{
		ID:        tl.ID,
		Name:      tl.Name,
		Targets:   make([]Entity, 0, len(tl.Targets)),
		Obstacles: make([]Entity, 0, len(tl.Obstacles)),
	}
	for _, e := range tl.Targets {
		level.Targets = append(level.Targets, Entity(e))
	}
	for _, e := range tl.Obstacles {
		level.Obstacles = append(level.Obstacles, Entity(e))
	}

	return level, nil
}
