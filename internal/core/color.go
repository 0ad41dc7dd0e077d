package core

// Color represents a foreground color class for a screen cell.
// The core treats colors as opaque tags; the platform layer maps them
// to terminal attributes.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorMagenta
	ColorWhite
	ColorGray
)
