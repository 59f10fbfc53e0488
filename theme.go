package scrim

import (
	"fmt"
	"strconv"
	"strings"
)

// Theme is a named set of styles for consistent appearance across widgets.
type Theme struct {
	Base   Style // default text style
	Muted  Style // de-emphasized text
	Accent Style // highlighted/important text
	Error  Style // error messages
	Border Style // border/divider style
}

// ThemeDark is light text on a dark background.
var ThemeDark = Theme{
	Base:   Style{FG: White},
	Muted:  Style{FG: BrightBlack},
	Accent: Style{FG: BrightCyan},
	Error:  Style{FG: BrightRed},
	Border: Style{FG: BrightBlack},
}

// ThemeLight is dark text on a light background.
var ThemeLight = Theme{
	Base:   Style{FG: Black},
	Muted:  Style{FG: BrightBlack},
	Accent: Style{FG: Blue},
	Error:  Style{FG: Red},
	Border: Style{FG: White},
}

// ThemeMono uses only attributes, for terminals without color.
var ThemeMono = Theme{
	Base:   Style{},
	Muted:  Style{Attr: AttrDim},
	Accent: Style{Attr: AttrBold},
	Error:  Style{Attr: AttrBold | AttrUnderline},
	Border: Style{Attr: AttrDim},
}

// ThemeByName looks up a built-in theme.
func ThemeByName(name string) (Theme, bool) {
	switch strings.ToLower(name) {
	case "", "dark":
		return ThemeDark, true
	case "light":
		return ThemeLight, true
	case "mono", "monochrome":
		return ThemeMono, true
	}
	return Theme{}, false
}

var namedColors = map[string]Color{
	"default":        DefaultColor(),
	"black":          Black,
	"red":            Red,
	"green":          Green,
	"yellow":         Yellow,
	"blue":           Blue,
	"magenta":        Magenta,
	"cyan":           Cyan,
	"white":          White,
	"bright-black":   BrightBlack,
	"bright-red":     BrightRed,
	"bright-green":   BrightGreen,
	"bright-yellow":  BrightYellow,
	"bright-blue":    BrightBlue,
	"bright-magenta": BrightMagenta,
	"bright-cyan":    BrightCyan,
	"bright-white":   BrightWhite,
}

// ParseColor parses a color from its text form: a name ("red",
// "bright-cyan", "default"), a palette index ("208"), or a hex triplet
// ("#ff5500").
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		hex, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil || len(s) != 7 {
			return Color{}, fmt.Errorf("scrim: bad hex color %q", s)
		}
		return Hex(uint32(hex)), nil
	}
	if n, err := strconv.ParseUint(s, 10, 8); err == nil {
		return PaletteColor(uint8(n)), nil
	}
	return Color{}, fmt.Errorf("scrim: unknown color %q", s)
}
