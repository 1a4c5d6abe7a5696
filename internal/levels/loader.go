// Package levels loads level definitions: the ordered targets and obstacles
// placed in the world. The default level is embedded; others are read from
// YAML or TOML files.
package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/JamieStevensDev/Angry-nerds/internal/core"
	"github.com/JamieStevensDev/Angry-nerds/internal/levels/formats"
)

// DefaultID is the ID of the embedded level played when none is chosen.
const DefaultID = "classic"

var (
	// ErrNotFound is returned when no level matches the requested ID.
	ErrNotFound = errors.New("level not found")

	// ErrInvalid is returned for level files that parse but cannot be played.
	ErrInvalid = errors.New("invalid level")

	// ErrUnsupportedFormat is returned for unknown file extensions.
	ErrUnsupportedFormat = formats.ErrUnsupported
)

//go:embed data/*.yaml
var embedded embed.FS

// Placement is a named object in the world.
type Placement struct {
	Name string
	Kind string
	Box  core.Box
}

// Level represents a complete level definition.
type Level struct {
	ID        string
	Name      string
	Targets   []Placement // Order is preserved from the file
	Obstacles []Placement
	FilePath  string // Empty for embedded levels
}

// Validate checks that the level can be played.
func (l Level) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalid)
	}
	if len(l.Targets) == 0 {
		return fmt.Errorf("%w: %s has no targets", ErrInvalid, l.ID)
	}
	for _, p := range append(append([]Placement{}, l.Targets...), l.Obstacles...) {
		if p.Box.W <= 0 || p.Box.H <= 0 {
			return fmt.Errorf("%w: %s/%s has size %vx%v", ErrInvalid, l.ID, p.Name, p.Box.W, p.Box.H)
		}
	}
	return nil
}

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !formats.Supported(filepath.Ext(path)) {
			return nil
		}

		level, err := LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}

		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sortByID(levels)
	return levels, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// LoadFile loads and validates a single level file.
func LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	level, err := decode(data, filepath.Ext(path))
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	level.FilePath = path
	return level, nil
}

// Embedded returns the levels compiled into the binary, sorted by ID.
func Embedded() ([]Level, error) {
	entries, err := fs.ReadDir(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("reading embedded levels: %w", err)
	}

	levels := make([]Level, 0, len(entries))
	for _, e := range entries {
		data, err := embedded.ReadFile("data/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("reading embedded level %s: %w", e.Name(), err)
		}
		level, err := decode(data, filepath.Ext(e.Name()))
		if err != nil {
			return nil, fmt.Errorf("parsing embedded level %s: %w", e.Name(), err)
		}
		levels = append(levels, level)
	}

	sortByID(levels)
	return levels, nil
}

// Open resolves a level reference: "" selects the default embedded level,
// a path with a supported extension is loaded from disk, anything else is
// looked up by ID among the embedded levels.
func Open(ref string) (Level, error) {
	if ref == "" {
		ref = DefaultID
	}

	if ext := filepath.Ext(ref); ext != "" {
		if !formats.Supported(ext) {
			return Level{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ref)
		}
		return LoadFile(ref)
	}

	levels, err := Embedded()
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range levels {
		if strings.EqualFold(lvl.ID, ref) {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("%w: %s", ErrNotFound, ref)
}

// decode parses data by extension and converts it into a validated Level.
func decode(data []byte, ext string) (Level, error) {
	parsed, err := formats.Parse(data, ext)
	if err != nil {
		return Level{}, err
	}

	level := Level{
		ID:        parsed.ID,
		Name:      parsed.Name,
		Targets:   toPlacements(parsed.Targets, "cow"),
		Obstacles: toPlacements(parsed.Obstacles, "wood"),
	}
	if err := level.Validate(); err != nil {
		return Level{}, err
	}
	return level, nil
}

func toPlacements(in []formats.Entity, defaultKind string) []Placement {
	out := make([]Placement, len(in))
	for i, e := range in {
		kind := e.Kind
		if kind == "" {
			kind = defaultKind
		}
		name := e.Name
		if name == "" {
			name = fmt.Sprintf("%s-%d", kind, i+1)
		}
		out[i] = Placement{
			Name: name,
			Kind: kind,
			Box:  core.NewBox(e.X, e.Y, e.W, e.H),
		}
	}
	return out
}

func sortByID(levels []Level) {
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
}
