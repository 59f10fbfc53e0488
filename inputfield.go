package scrim

// InputState is the host-owned editing state of an input field: the value,
// the cursor position in runes, and the horizontal scroll origin. Keeping it
// outside the widget lets the field be rebuilt every frame without losing
// the edit in progress.
type InputState struct {
	runes  []rune
	cursor int
	scroll int
}

// NewInputState creates editing state with the cursor at the end.
func NewInputState(initial string) *InputState {
	rs := []rune(initial)
	return &InputState{runes: rs, cursor: len(rs)}
}

// Value returns the current text.
func (s *InputState) Value() string { return string(s.runes) }

// Cursor returns the cursor position in runes.
func (s *InputState) Cursor() int { return s.cursor }

// SetValue replaces the text and clamps the cursor.
func (s *InputState) SetValue(v string) {
	s.runes = []rune(v)
	s.cursor = min(s.cursor, len(s.runes))
}

// Insert inserts a rune at the cursor.
func (s *InputState) Insert(r rune) {
	s.runes = append(s.runes[:s.cursor], append([]rune{r}, s.runes[s.cursor:]...)...)
	s.cursor++
}

// Backspace removes the rune before the cursor.
func (s *InputState) Backspace() {
	if s.cursor > 0 {
		s.runes = append(s.runes[:s.cursor-1], s.runes[s.cursor:]...)
		s.cursor--
	}
}

// Delete removes the rune under the cursor.
func (s *InputState) Delete() {
	if s.cursor < len(s.runes) {
		s.runes = append(s.runes[:s.cursor], s.runes[s.cursor+1:]...)
	}
}

// Left moves the cursor one rune left.
func (s *InputState) Left() {
	if s.cursor > 0 {
		s.cursor--
	}
}

// Right moves the cursor one rune right.
func (s *InputState) Right() {
	if s.cursor < len(s.runes) {
		s.cursor++
	}
}

// Home moves the cursor to the start.
func (s *InputState) Home() { s.cursor = 0 }

// End moves the cursor past the last rune.
func (s *InputState) End() { s.cursor = len(s.runes) }

// Clear empties the field.
func (s *InputState) Clear() {
	s.runes = s.runes[:0]
	s.cursor = 0
	s.scroll = 0
}

// scrollToCursor keeps the cursor column inside a window of the given width.
func (s *InputState) scrollToCursor(width int) {
	if width <= 0 {
		return
	}
	if s.cursor < s.scroll {
		s.scroll = s.cursor
	}
	// leave the last column free for the cursor cell
	if s.cursor >= s.scroll+width {
		s.scroll = s.cursor - width + 1
	}
	s.scroll = max(0, min(s.scroll, len(s.runes)))
}

// InputField is a single-line text editor bound to a host-owned InputState.
// The visible window scrolls horizontally to follow the cursor, and the
// cursor cell is drawn reversed while the field has focus.
type InputField struct {
	State       *InputState
	Placeholder string
	Style       Style
	FocusStyle  Style
	CursorStyle Style
	OnSubmit    func(value string)

	drawFocused bool // latched from the router state seen in HandleEvent
}

// NewInputField creates an input field bound to host-owned state.
func NewInputField(state *InputState) *InputField {
	return &InputField{
		State:       state,
		Style:       DefaultStyle(),
		FocusStyle:  DefaultStyle().Underline(),
		CursorStyle: DefaultStyle().Reverse(),
	}
}

// Measure implements Widget.
func (f *InputField) Measure(available Rect) (int, int) {
	return available.W, 1
}

// Draw implements Widget.
func (f *InputField) Draw(vp *Viewport) error {
	w, _ := vp.Size()
	if w <= 0 {
		return nil
	}
	focused := f.drawFocused

	style := f.Style
	if focused {
		style = f.FocusStyle
	}
	vp.FillRect(Rect{W: w, H: 1}, NewCell(' ', style))

	s := f.State
	if len(s.runes) == 0 && !focused && f.Placeholder != "" {
		vp.SetString(0, 0, Truncate(f.Placeholder, w), f.Style.Dim())
		return nil
	}

	s.scrollToCursor(w)
	visible := s.runes[s.scroll:min(s.scroll+w, len(s.runes))]
	vp.SetString(0, 0, string(visible), style)

	if focused {
		col := s.cursor - s.scroll
		under := ' '
		if s.cursor < len(s.runes) {
			under = s.runes[s.cursor]
		}
		vp.Set(col, 0, NewCell(under, f.CursorStyle))
	}
	return nil
}

// SetFocused sets the draw-time focus hint directly, for hosts that route
// focus themselves instead of through a Router.
func (f *InputField) SetFocused(on bool) {
	f.drawFocused = on
}

// HandleEvent implements Widget: editing keys while focused.
func (f *InputField) HandleEvent(ev Event, state InteractionState) bool {
	f.drawFocused = state.Focused
	if !state.Focused {
		return false
	}
	switch e := ev.(type) {
	case CharEvent:
		if e.Mod.Has(ModCtrl) {
			return false
		}
		f.State.Insert(e.Rune)
		return true
	case KeyEvent:
		switch e.Key {
		case KeyLeft:
			f.State.Left()
			return true
		case KeyRight:
			f.State.Right()
			return true
		case KeyHome:
			f.State.Home()
			return true
		case KeyEnd:
			f.State.End()
			return true
		case KeyBackspace:
			f.State.Backspace()
			return true
		case KeyDelete:
			f.State.Delete()
			return true
		case KeyEnter:
			if f.OnSubmit != nil {
				f.OnSubmit(f.State.Value())
			}
			return true
		}
	}
	return false
}
