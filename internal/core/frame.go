package core

// Frame is a world-space draw list for frontends that render in world units
// rather than terminal cells. Each layer is drawn in slice order, background
// first and text last.
type Frame struct {
	World      Vec2 // Logical screen size
	Background []Fill
	Sprites    []Sprite
	Lines      []Line
	Texts      []Text
}

// Fill is a solid area with no outline.
type Fill struct {
	Box   Box
	Color Color
}

// Sprite is a named, outlined object.
type Sprite struct {
	Name  string
	Kind  string
	Box   Box
	Color Color
}

// Line is a straight stroke between two points.
type Line struct {
	From, To Vec2
	Width    float64
	Color    Color
}

// Text is a line of text with its top-left corner at Pos.
type Text struct {
	Text  string
	Pos   Vec2
	Scale float64
}

// SpritesOfKind returns the sprites whose Kind matches kind.
func (f Frame) SpritesOfKind(kind string) []Sprite {
	var out []Sprite
	for _, s := range f.Sprites {
		if s.Kind == kind {
			out = append(out, s)
		}
	}
	return out
}

// HasText reports whether any text in the frame reads exactly s.
func (f Frame) HasText(s string) bool {
	for _, t := range f.Texts {
		if t.Text == s {
			return true
		}
	}
	return false
}
