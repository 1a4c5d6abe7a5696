package angry

import (
	"math/rand"

	"github.com/JamieStevensDev/Angry-nerds/internal/core"
)

// GroundLevel is the world y where the ground strip starts.
const GroundLevel = 900

// Backdrop is a cosmetic theme for the playing stage.
type Backdrop struct {
	ID          string // lvl1, lvl2, lvl3
	Name        string
	Sky         core.Color
	Ground      core.Color
	Text        core.Color
	GroundGlyph rune
	Stars       bool
}

var backdrops = []Backdrop{
	{ID: "lvl1", Name: "Meadow", Sky: core.ColorBrightBlue, Ground: core.ColorGreen, Text: core.ColorWhite, GroundGlyph: '▒'},
	{ID: "lvl2", Name: "Canyon", Sky: core.ColorOrange, Ground: core.ColorBrown, Text: core.ColorBrightYellow, GroundGlyph: '░'},
	{ID: "lvl3", Name: "Night", Sky: core.ColorBlack, Ground: core.ColorGray, Text: core.ColorWhite, GroundGlyph: '▒', Stars: true},
}

// Backdrops returns all themes in ID order.
func Backdrops() []Backdrop {
	out := make([]Backdrop, len(backdrops))
	copy(out, backdrops)
	return out
}

// PickBackdrop chooses a theme pseudo-randomly from seed.
func PickBackdrop(seed int64) Backdrop {
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // cosmetic choice
	return backdrops[rng.Intn(len(backdrops))]
}

// star reports whether a sky cell shows a star on the night theme.
func star(x, y int) bool {
	return (x*7+y*13)%29 == 0
}
