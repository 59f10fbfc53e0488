package scrim

import "unicode"

// FigletFont maps runes to fixed-height banner glyphs. scrim ships one small
// built-in font; hosts can plug in their own by filling this struct from any
// source.
type FigletFont struct {
	Height int
	Glyphs map[rune][]string
}

// glyph returns the rows for a rune, folding lowercase to uppercase and
// substituting a blank for anything the font does not cover.
func (f *FigletFont) glyph(r rune) []string {
	if g, ok := f.Glyphs[r]; ok {
		return g
	}
	if g, ok := f.Glyphs[unicode.ToUpper(r)]; ok {
		return g
	}
	blank := make([]string, f.Height)
	for i := range blank {
		blank[i] = "  "
	}
	return blank
}

// RenderLines renders a string with the font, one string per glyph row.
func (f *FigletFont) RenderLines(text string) []string {
	rows := make([]string, f.Height)
	for _, r := range text {
		g := f.glyph(r)
		for i := 0; i < f.Height; i++ {
			rows[i] += g[i]
		}
	}
	return rows
}

// FigletText renders a short string as banner text.
type FigletText struct {
	Text  string
	Style Style
	Align Alignment
	Font  *FigletFont
}

// NewFigletText creates banner text with the built-in font.
func NewFigletText(text string) *FigletText {
	return &FigletText{Text: text, Style: DefaultStyle(), Font: MiniFont}
}

// Styled returns the banner text with the given style.
func (f *FigletText) Styled(s Style) *FigletText {
	f.Style = s
	return f
}

// Measure implements Widget.
func (f *FigletText) Measure(available Rect) (int, int) {
	lines := f.Font.RenderLines(f.Text)
	w := 0
	for _, line := range lines {
		w = max(w, StringWidth(line))
	}
	return min(w, available.W), f.Font.Height
}

// Draw implements Widget.
func (f *FigletText) Draw(vp *Viewport) error {
	w, _ := vp.Size()
	lines := f.Font.RenderLines(f.Text)
	for y, line := range lines {
		x := alignOffset(StringWidth(line), w, f.Align)
		vp.SetString(x, y, line, f.Style)
	}
	return nil
}

// HandleEvent implements Widget.
func (f *FigletText) HandleEvent(Event, InteractionState) bool {
	return false
}

// MiniFont is the built-in three-row banner font. It covers ASCII letters,
// digits and light punctuation.
var MiniFont = &FigletFont{
	Height: 3,
	Glyphs: map[rune][]string{
		' ': {"  ", "  ", "  "},
		'A': {" __ ", "|__|", "|  |"},
		'B': {" __ ", "|__)", "|__)"},
		'C': {" __ ", "|   ", "|__ "},
		'D': {" __ ", "|  \\", "|__/"},
		'E': {" __ ", "|__ ", "|__ "},
		'F': {" __ ", "|__ ", "|   "},
		'G': {" __ ", "| _ ", "|__|"},
		'H': {"    ", "|__|", "|  |"},
		'I': {" _ ", "| |", "|_|"},
		'J': {"  _ ", "  | ", "__| "},
		'K': {"    ", "|_/ ", "| \\ "},
		'L': {"    ", "|   ", "|__ "},
		'M': {"    ", "|\\/|", "|  |"},
		'N': {"    ", "|\\ |", "| \\|"},
		'O': {" __ ", "|  |", "|__|"},
		'P': {" __ ", "|__|", "|   "},
		'Q': {" __ ", "|  |", "|__\\"},
		'R': {" __ ", "|__/", "| \\ "},
		'S': {" __ ", "|__ ", " __|"},
		'T': {"___ ", " |  ", " |  "},
		'U': {"    ", "|  |", "|__|"},
		'V': {"    ", "\\  /", " \\/ "},
		'W': {"    ", "|  |", "|/\\|"},
		'X': {"    ", "\\_/ ", "/ \\ "},
		'Y': {"    ", "\\_/ ", " |  "},
		'Z': {"___ ", " _/ ", "/__ "},
		'0': {" _ ", "| |", "|_|"},
		'1': {" . ", "/| ", " | "},
		'2': {" _ ", " _|", "|_ "},
		'3': {" _ ", " _|", " _|"},
		'4': {"   ", "|_|", "  |"},
		'5': {" _ ", "|_ ", " _|"},
		'6': {" _ ", "|_ ", "|_|"},
		'7': {" _ ", "  |", "  |"},
		'8': {" _ ", "|_|", "|_|"},
		'9': {" _ ", "|_|", " _|"},
		'.': {"  ", "  ", ". "},
		',': {"  ", "  ", ", "},
		'!': {" | ", " | ", " . "},
		'?': {" _ ", " _|", " . "},
		'-': {"   ", "__ ", "   "},
		':': {"  ", ". ", ". "},
	},
}
