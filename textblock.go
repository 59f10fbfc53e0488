package scrim

// TextBlock renders multi-line text wrapped at the viewport width. Wrapping
// is deterministic and never mutates the input. An optional ScrollState
// makes the block vertically scrollable; the state is host-owned so the
// offset survives the per-frame widget rebuild.
type TextBlock struct {
	Text   string
	Style  Style
	Align  Alignment
	Wrap   WrapMode
	Scroll *ScrollState
}

// NewTextBlock creates a word-wrapped text block.
func NewTextBlock(text string) *TextBlock {
	return &TextBlock{Text: text, Style: DefaultStyle(), Wrap: WrapWord}
}

// Styled returns the block with the given style.
func (t *TextBlock) Styled(s Style) *TextBlock {
	t.Style = s
	return t
}

// Aligned returns the block with the given alignment.
func (t *TextBlock) Aligned(a Alignment) *TextBlock {
	t.Align = a
	return t
}

// Scrollable attaches a host-owned scroll state.
func (t *TextBlock) Scrollable(s *ScrollState) *TextBlock {
	t.Scroll = s
	return t
}

// Measure implements Widget: the wrapped line count at the available width.
func (t *TextBlock) Measure(available Rect) (int, int) {
	lines := WrapText(t.Text, available.W, t.Wrap)
	w := 0
	for _, line := range lines {
		w = max(w, StringWidth(line))
	}
	return min(w, available.W), len(lines)
}

// Draw implements Widget.
func (t *TextBlock) Draw(vp *Viewport) error {
	w, h := vp.Size()
	if w <= 0 || h <= 0 {
		return nil
	}
	lines := WrapText(t.Text, w, t.Wrap)

	start := 0
	if t.Scroll != nil {
		t.Scroll.SetContentLength(len(lines))
		t.Scroll.Resize(h)
		start = t.Scroll.Offset()
	}

	for y := 0; y < h && start+y < len(lines); y++ {
		line := lines[start+y]
		if t.Wrap == WrapNone {
			line = Truncate(line, w)
		}
		x := alignOffset(StringWidth(line), w, t.Align)
		vp.SetString(x, y, line, t.Style)
	}
	return nil
}

// HandleEvent implements Widget: wheel scrolling while hovered, arrow and
// page keys while focused, when a scroll state is attached.
func (t *TextBlock) HandleEvent(ev Event, state InteractionState) bool {
	if t.Scroll == nil {
		return false
	}
	switch e := ev.(type) {
	case MouseEvent:
		if !state.Hovered {
			return false
		}
		switch e.Kind {
		case MouseWheelUp:
			t.Scroll.ScrollBy(-1)
			return true
		case MouseWheelDown:
			t.Scroll.ScrollBy(1)
			return true
		}
	case KeyEvent:
		if !state.Focused {
			return false
		}
		switch e.Key {
		case KeyUp:
			t.Scroll.ScrollBy(-1)
			return true
		case KeyDown:
			t.Scroll.ScrollBy(1)
			return true
		case KeyPageUp:
			t.Scroll.ScrollBy(-t.Scroll.ViewportLength())
			return true
		case KeyPageDown:
			t.Scroll.ScrollBy(t.Scroll.ViewportLength())
			return true
		case KeyHome:
			t.Scroll.ScrollToStart()
			return true
		case KeyEnd:
			t.Scroll.ScrollToEnd()
			return true
		}
	}
	return false
}
