// Package gfx implements the console's graphics model: an indexed-color
// pixel screen, an immutable sprite sheet, and a renderer with color-key
// transparency. How the indexed colors reach the terminal is the platform
// layer's business.
package gfx

// Color is an index into the console's fixed 16-color palette.
type Color uint8

// The console palette. Sprites and screen pixels store these indices;
// the platform maps them to terminal colors.
const (
	ColorBlack Color = iota
	ColorDarkBlue
	ColorDarkPurple
	ColorDarkGreen
	ColorBrown
	ColorDarkGray
	ColorLightGray
	ColorWhite
	ColorRed
	ColorOrange
	ColorYellow
	ColorGreen
	ColorBlue
	ColorIndigo
	ColorPink
	ColorPeach
)

// NumColors is the size of the console palette.
const NumColors = 16
