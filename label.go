package scrim

// Label is a single line of styled text, truncated at the viewport width.
type Label struct {
	Text  string
	Style Style
	Align Alignment
}

// NewLabel creates a left-aligned label with the default style.
func NewLabel(text string) *Label {
	return &Label{Text: text, Style: DefaultStyle()}
}

// Styled returns the label with the given style.
func (l *Label) Styled(s Style) *Label {
	l.Style = s
	return l
}

// Aligned returns the label with the given alignment.
func (l *Label) Aligned(a Alignment) *Label {
	l.Align = a
	return l
}

// Measure implements Widget.
func (l *Label) Measure(available Rect) (int, int) {
	return min(StringWidth(l.Text), available.W), 1
}

// Draw implements Widget. The output is a pure function of
// (text, width, alignment); the input text is never mutated.
func (l *Label) Draw(vp *Viewport) error {
	w, h := vp.Size()
	if w <= 0 || h <= 0 {
		return nil
	}
	line := Truncate(l.Text, w)
	x := alignOffset(StringWidth(line), w, l.Align)
	vp.SetString(x, 0, line, l.Style)
	return nil
}

// HandleEvent implements Widget. Labels are inert.
func (l *Label) HandleEvent(Event, InteractionState) bool {
	return false
}
