package core

// Color represents a foreground color for a screen cell: a tetromino, the
// ghost piece, the frame or HUD text. Values map to ANSI 256-color codes in
// the platform renderer.
type Color uint8

// Palette shared by the game and the renderer. Each tetromino kind owns one
// entry (see model.Kind.Color).
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
	ColorDim // ghost piece, inactive borders
)
