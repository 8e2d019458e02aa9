package core

import "strconv"

// Color is the foreground colour of a screen cell. The engine only names
// colours; the platform decides how to emit them.
type Color uint8

// The palette. Effects, characters and HUD elements pick from these.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray

	colorCount
)

// xterm-256 indexes for every palette entry but the default.
var ansiCodes = [colorCount]int{
	ColorRed:           1,
	ColorGreen:         2,
	ColorYellow:        3,
	ColorBlue:          4,
	ColorMagenta:       5,
	ColorCyan:          6,
	ColorWhite:         7,
	ColorBrightRed:     9,
	ColorBrightGreen:   10,
	ColorBrightYellow:  11,
	ColorBrightBlue:    12,
	ColorBrightMagenta: 13,
	ColorBrightCyan:    14,
	ColorBrightWhite:   15,
	ColorOrange:        208,
	ColorGray:          245,
}

// ANSI returns the xterm-256 index of the colour as a string, or "" for
// the terminal default and unknown values.
func (c Color) ANSI() string {
	if c == ColorDefault || c >= colorCount {
		return ""
	}
	return strconv.Itoa(ansiCodes[c])
}

// Colors returns every palette entry in order.
func Colors() []Color {
	out := make([]Color, 0, colorCount)
	for c := ColorDefault; c < colorCount; c++ {
		out = append(out, c)
	}
	return out
}
