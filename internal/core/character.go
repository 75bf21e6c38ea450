package core

import "fmt"

// Option counts for the enumerated cosmetic attributes.
const (
	OptionCount    = 3
	MaxTemperament = 10
)

var (
	colorSchemeNames = [OptionCount]string{"Golden Sunset", "Ocean Depths", "Forest Haven"}
	patternNames     = [OptionCount]string{"Regal", "Cosmic", "War Paint"}
	accessoryNames   = [OptionCount]string{"None", "Bow Tie", "Glasses"}
	wingStyleNames   = [OptionCount]string{"Classic", "Angel", "Pointy"}
	eyeTypeNames     = [OptionCount]string{"Round", "Oval", "Sleepy"}
)

// Palette holds the three colors of a color scheme.
type Palette struct {
	Primary   Color
	Secondary Color
	Tertiary  Color
}

var palettes = [OptionCount]Palette{
	{Primary: ColorTerracotta, Secondary: ColorGold, Tertiary: ColorPurple},
	{Primary: ColorBlue, Secondary: ColorOrange, Tertiary: ColorMagenta},
	{Primary: ColorGreen, Secondary: ColorRed, Tertiary: ColorYellow},
}

// Character is the cosmetic description of the player's chicken.
// Only the renderer reads it; physics never does.
type Character struct {
	ColorScheme int `yaml:"color_scheme"`
	Pattern     int `yaml:"pattern"`
	Temperament int `yaml:"temperament"`
	Accessory   int `yaml:"accessory"`
	WingStyle   int `yaml:"wing_style"`
	EyeType     int `yaml:"eye_type"`
}

// DefaultCharacter returns the character a new player starts with.
func DefaultCharacter() Character {
	return Character{Temperament: 5}
}

// Validate reports the first attribute that is out of range.
func (c Character) Validate() error {
	checks := []struct {
		name  string
		value int
		max   int
	}{
		{"color scheme", c.ColorScheme, OptionCount - 1},
		{"pattern", c.Pattern, OptionCount - 1},
		{"temperament", c.Temperament, MaxTemperament},
		{"accessory", c.Accessory, OptionCount - 1},
		{"wing style", c.WingStyle, OptionCount - 1},
		{"eye type", c.EyeType, OptionCount - 1},
	}
	for _, ch := range checks {
		if ch.value < 0 || ch.value > ch.max {
			return fmt.Errorf("character: %s %d out of range [0, %d]", ch.name, ch.value, ch.max)
		}
	}
	return nil
}

// Clamp returns a copy with every attribute forced into range.
func (c Character) Clamp() Character {
	return Character{
		ColorScheme: Clamp(c.ColorScheme, 0, OptionCount-1),
		Pattern:     Clamp(c.Pattern, 0, OptionCount-1),
		Temperament: Clamp(c.Temperament, 0, MaxTemperament),
		Accessory:   Clamp(c.Accessory, 0, OptionCount-1),
		WingStyle:   Clamp(c.WingStyle, 0, OptionCount-1),
		EyeType:     Clamp(c.EyeType, 0, OptionCount-1),
	}
}

// Palette returns the colors of the character's scheme.
func (c Character) Palette() Palette {
	return palettes[Clamp(c.ColorScheme, 0, OptionCount-1)]
}

// AnimSpeed is the idle animation step in radians per frame.
// Livelier temperaments bob faster.
func (c Character) AnimSpeed() float64 {
	return 0.05 + float64(Clamp(c.Temperament, 0, MaxTemperament))/MaxTemperament*0.2
}

// Mood describes the temperament in words.
func (c Character) Mood() string {
	switch {
	case c.Temperament < 3:
		return "A peaceful chicken that stays cool under pressure"
	case c.Temperament < 7:
		return "A balanced temperament, neither too calm nor too excitable"
	default:
		return "An energetic chicken that's always on high alert"
	}
}

func optionName(names [OptionCount]string, i int) string {
	if i < 0 || i >= OptionCount {
		return "?"
	}
	return names[i]
}

// ColorSchemeName returns the display name of a color scheme option.
func ColorSchemeName(i int) string { return optionName(colorSchemeNames, i) }

// PatternName returns the display name of a pattern option.
func PatternName(i int) string { return optionName(patternNames, i) }

// AccessoryName returns the display name of an accessory option.
func AccessoryName(i int) string { return optionName(accessoryNames, i) }

// WingStyleName returns the display name of a wing style option.
func WingStyleName(i int) string { return optionName(wingStyleNames, i) }

// EyeTypeName returns the display name of an eye type option.
func EyeTypeName(i int) string { return optionName(eyeTypeNames, i) }
