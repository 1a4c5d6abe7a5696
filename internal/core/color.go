package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the terminal and to RGB in the window.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightCyan
	ColorOrange
	ColorBrown
	ColorGray
	ColorBlack
)

// ANSI returns the ANSI 256-color code for the colour, or "" for the
// terminal default.
func (c Color) ANSI() string {
	switch c {
	case ColorRed:
		return "1"
	case ColorGreen:
		return "2"
	case ColorYellow:
		return "3"
	case ColorBlue:
		return "4"
	case ColorMagenta:
		return "5"
	case ColorCyan:
		return "6"
	case ColorWhite:
		return "7"
	case ColorBrightGreen:
		return "10"
	case ColorBrightYellow:
		return "11"
	case ColorBrightBlue:
		return "12"
	case ColorBrightCyan:
		return "14"
	case ColorOrange:
		return "208"
	case ColorBrown:
		return "130"
	case ColorGray:
		return "245"
	case ColorBlack:
		return "0"
	default:
		return ""
	}
}

// RGB returns an approximate 8-bit RGB triple for the colour.
// ColorDefault is treated as white.
func (c Color) RGB() (r, g, b uint8) {
	switch c {
	case ColorRed:
		return 0xcd, 0x31, 0x31
	case ColorGreen:
		return 0x0d, 0xbc, 0x79
	case ColorYellow:
		return 0xe5, 0xe5, 0x10
	case ColorBlue:
		return 0x24, 0x72, 0xc8
	case ColorMagenta:
		return 0xbc, 0x3f, 0xbc
	case ColorCyan:
		return 0x11, 0xa8, 0xcd
	case ColorBrightGreen:
		return 0x23, 0xd1, 0x8b
	case ColorBrightYellow:
		return 0xf5, 0xf5, 0x43
	case ColorBrightBlue:
		return 0x3b, 0x8e, 0xea
	case ColorBrightCyan:
		return 0x29, 0xb8, 0xdb
	case ColorOrange:
		return 0xff, 0x87, 0x00
	case ColorBrown:
		return 0xaf, 0x5f, 0x00
	case ColorGray:
		return 0x8a, 0x8a, 0x8a
	case ColorBlack:
		return 0x00, 0x00, 0x00
	default:
		return 0xe5, 0xe5, 0xe5
	}
}
