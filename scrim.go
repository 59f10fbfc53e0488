// Package scrim is a terminal rendering and interaction engine. A host
// application rebuilds a widget tree every frame; scrim lays it out into a
// cell grid, diffs the grid against the previously flushed frame, and emits
// the minimal set of positioned writes through a pluggable terminal backend.
// Cross-frame interaction state (focus, hover, scroll offsets, auto-hide
// timers) is keyed by stable interaction ids instead of a retained widget
// graph.
package scrim

// Attr represents text styling attributes that can be combined.
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrReverse
	AttrStrike
)

// Has returns true if the attribute set contains the given attribute.
func (a Attr) Has(attr Attr) bool {
	return a&attr != 0
}

// With returns a new attribute set with the given attribute added.
func (a Attr) With(attr Attr) Attr {
	return a | attr
}

// Without returns a new attribute set with the given attribute removed.
func (a Attr) Without(attr Attr) Attr {
	return a &^ attr
}

// ColorMode selects how a Color value is interpreted.
type ColorMode uint8

const (
	ColorDefault ColorMode = iota // terminal default
	Color16                       // basic 16 colors (0-15)
	Color256                      // 256 color palette
	ColorRGB                      // 24-bit true color
)

// Color represents a terminal color in one of four modes.
type Color struct {
	Mode    ColorMode
	R, G, B uint8 // ColorRGB
	Index   uint8 // Color16 / Color256
}

// DefaultColor returns the terminal's default color.
func DefaultColor() Color {
	return Color{Mode: ColorDefault}
}

// BasicColor returns one of the 16 basic terminal colors.
func BasicColor(index uint8) Color {
	return Color{Mode: Color16, Index: index}
}

// PaletteColor returns one of the 256 palette colors.
func PaletteColor(index uint8) Color {
	return Color{Mode: Color256, Index: index}
}

// RGB returns a 24-bit true color.
func RGB(r, g, b uint8) Color {
	return Color{Mode: ColorRGB, R: r, G: g, B: b}
}

// Hex returns a 24-bit true color from a packed hex value (e.g. 0xFF5500).
func Hex(hex uint32) Color {
	return Color{
		Mode: ColorRGB,
		R:    uint8((hex >> 16) & 0xFF),
		G:    uint8((hex >> 8) & 0xFF),
		B:    uint8(hex & 0xFF),
	}
}

// Standard basic colors.
var (
	Black   = BasicColor(0)
	Red     = BasicColor(1)
	Green   = BasicColor(2)
	Yellow  = BasicColor(3)
	Blue    = BasicColor(4)
	Magenta = BasicColor(5)
	Cyan    = BasicColor(6)
	White   = BasicColor(7)

	BrightBlack   = BasicColor(8)
	BrightRed     = BasicColor(9)
	BrightGreen   = BasicColor(10)
	BrightYellow  = BasicColor(11)
	BrightBlue    = BasicColor(12)
	BrightMagenta = BasicColor(13)
	BrightCyan    = BasicColor(14)
	BrightWhite   = BasicColor(15)
)

// Style combines foreground and background colors with attributes.
type Style struct {
	FG   Color
	BG   Color
	Attr Attr
}

// DefaultStyle returns a style with default colors and no attributes.
func DefaultStyle() Style {
	return Style{FG: DefaultColor(), BG: DefaultColor()}
}

// Foreground returns a copy of the style with the given foreground color.
func (s Style) Foreground(c Color) Style {
	s.FG = c
	return s
}

// Background returns a copy of the style with the given background color.
func (s Style) Background(c Color) Style {
	s.BG = c
	return s
}

// Bold returns a copy of the style with bold enabled.
func (s Style) Bold() Style {
	s.Attr = s.Attr.With(AttrBold)
	return s
}

// Dim returns a copy of the style with dim enabled.
func (s Style) Dim() Style {
	s.Attr = s.Attr.With(AttrDim)
	return s
}

// Italic returns a copy of the style with italic enabled.
func (s Style) Italic() Style {
	s.Attr = s.Attr.With(AttrItalic)
	return s
}

// Underline returns a copy of the style with underline enabled.
func (s Style) Underline() Style {
	s.Attr = s.Attr.With(AttrUnderline)
	return s
}

// Reverse returns a copy of the style with reverse video enabled.
func (s Style) Reverse() Style {
	s.Attr = s.Attr.With(AttrReverse)
	return s
}

// Cell is one styled character at one grid position. Value type; equality is
// structural.
type Cell struct {
	Rune  rune
	Style Style
}

// EmptyCell returns a cell holding a space with the default style.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Style: DefaultStyle()}
}

// NewCell creates a cell with the given rune and style.
func NewCell(r rune, style Style) Cell {
	return Cell{Rune: r, Style: style}
}
