package formats

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID        string       `yaml:"id"`
	Name      string       `yaml:"name"`
	Targets   []YAMLEntity `yaml:"targets"`
	Obstacles []YAMLEntity `yaml:"obstacles,omitempty"`
}

// YAMLEntity represents a single placed object in YAML format.
type YAMLEntity struct {
	Name string  `yaml:"name"`
	Kind string  `yaml:"kind,omitempty"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	W    float64 `yaml:"w"`
	H    float64 `yaml:"h"`
}

// ParseYAML parses a YAML level file. Unknown keys are rejected so typos in
// hand-written levels surface as errors.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&yl); err != nil && !errors.Is(err, io.EOF) {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	level := Level{
		ID:        yl.ID,
		Name:      yl.Name,
		Targets:   make([]Entity, 0, len(yl.Targets)),
		Obstacles: make([]Entity, 0, len(yl.Obstacles)),
	}
	for _, e := range yl.Targets {
		level.Targets = append(level.Targets, Entity(e))
	}
	for _, e := range yl.Obstacles {
		level.Obstacles = append(level.Obstacles, Entity(e))
	}

	return level, nil
}
