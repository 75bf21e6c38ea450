package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for scene elements.
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
	ColorBrown      // Wooden platforms, coop walls
	ColorGold       // Golden Feather, temple ornaments
	ColorSilver     // Silver Egg, temple columns
	ColorPurple     // Deep purple accents
	ColorSkyBlue    // Daytime sky
	ColorTerracotta // Golden Sunset primary
)
