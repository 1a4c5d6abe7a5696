// Package formats provides pluggable level file format parsers.
package formats

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupported is returned for a file extension without a parser.
var ErrUnsupported = errors.New("unsupported level format")

// Entity is one placed object in a level file.
type Entity struct {
	Name string
	Kind string
	X, Y float64
	W, H float64
}

// Level is the format-independent result of parsing a level file.
type Level struct {
	ID        string
	Name      string
	Targets   []Entity
	Obstacles []Entity
}

// Parser decodes raw file contents into a Level.
type Parser func(data []byte) (Level, error)

var parsers = map[string]Parser{
	".yaml": ParseYAML,
	".yml":  ParseYAML,
	".toml": ParseTOML,
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".toml", ".yaml", ".yml"}
}

// Supported reports whether ext (with leading dot, any case) has a parser.
func Supported(ext string) bool {
	_, ok := parsers[strings.ToLower(ext)]
	return ok
}

// Parse routes data to the parser registered for ext.
func Parse(data []byte, ext string) (Level, error) {
	p, ok := parsers[strings.ToLower(ext)]
	if !ok {
		return Level{}, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}
	return p(data)
}
