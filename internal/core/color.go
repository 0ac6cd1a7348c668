package core

import "image/color"

// Color is a palette entry shared by every rendering surface.
// The terminal maps it to ANSI 256-color codes, the window to RGBA.
type Color uint8

// Palette.
const (
	ColorDefault Color = iota
	ColorGray
	ColorGold
	ColorCyan
	ColorYellow
	ColorGreen
	ColorRed
	ColorWhite
)

// ANSI returns the 256-color code for terminal output.
func (c Color) ANSI() string {
	switch c {
	case ColorGray:
		return "245"
	case ColorGold:
		return "222"
	case ColorCyan:
		return "14"
	case ColorYellow:
		return "11"
	case ColorGreen:
		return "10"
	case ColorRed:
		return "9"
	case ColorWhite:
		return "15"
	default:
		return ""
	}
}

// RGBA returns the color used by pixel surfaces.
func (c Color) RGBA() color.RGBA {
	switch c {
	case ColorGray:
		return color.RGBA{0x4c, 0x56, 0x6a, 0xff}
	case ColorGold:
		return color.RGBA{0xeb, 0xcb, 0x8b, 0xff}
	case ColorCyan:
		return color.RGBA{0x88, 0xc0, 0xd0, 0xff}
	case ColorYellow:
		return color.RGBA{0xf0, 0xd0, 0x50, 0xff}
	case ColorGreen:
		return color.RGBA{0xa3, 0xbe, 0x8c, 0xff}
	case ColorRed:
		return color.RGBA{0xbf, 0x61, 0x6a, 0xff}
	case ColorWhite:
		return color.RGBA{0xec, 0xef, 0xf4, 0xff}
	default:
		return color.RGBA{0xd8, 0xde, 0xe9, 0xff}
	}
}
