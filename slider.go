package scrim

// Slider is a horizontal value selector over an integer range. The value
// lives behind a host-owned pointer so it survives the per-frame rebuild.
type Slider struct {
	Value      *int
	Min, Max   int
	Step       int
	Style      Style
	FilledRune rune
	EmptyRune  rune
	KnobRune   rune

	lastRect Rect
}

// NewSlider creates a slider over [min, max] bound to a host-owned value.
func NewSlider(value *int, min, max int) *Slider {
	return &Slider{
		Value:      value,
		Min:        min,
		Max:        max,
		Step:       1,
		Style:      DefaultStyle(),
		FilledRune: '━',
		EmptyRune:  '─',
		KnobRune:   '●',
	}
}

func (s *Slider) clampValue() {
	if *s.Value < s.Min {
		*s.Value = s.Min
	}
	if *s.Value > s.Max {
		*s.Value = s.Max
	}
}

// knobCol maps the current value onto a track of the given width.
func (s *Slider) knobCol(width int) int {
	span := s.Max - s.Min
	if span <= 0 || width <= 1 {
		return 0
	}
	return (*s.Value - s.Min) * (width - 1) / span
}

// valueAt maps a track column back to a value, the inverse of knobCol.
func (s *Slider) valueAt(col, width int) int {
	if width <= 1 {
		return s.Min
	}
	col = max(0, min(col, width-1))
	span := s.Max - s.Min
	return s.Min + (col*span+(width-1)/2)/(width-1)
}

// Measure implements Widget.
func (s *Slider) Measure(available Rect) (int, int) {
	return available.W, 1
}

// Draw implements Widget.
func (s *Slider) Draw(vp *Viewport) error {
	w, _ := vp.Size()
	if w <= 0 {
		return nil
	}
	s.clampValue()
	s.lastRect = vp.AbsRect(Rect{W: w, H: 1})

	knob := s.knobCol(w)
	vp.HLine(0, 0, knob, s.FilledRune, s.Style)
	vp.HLine(knob+1, 0, w-knob-1, s.EmptyRune, s.Style.Dim())
	vp.Set(knob, 0, NewCell(s.KnobRune, s.Style))
	return nil
}

// HandleEvent implements Widget: left/right keys step while focused, press
// or drag sets the value from the pointer column.
func (s *Slider) HandleEvent(ev Event, state InteractionState) bool {
	switch e := ev.(type) {
	case KeyEvent:
		if !state.Focused {
			return false
		}
		switch e.Key {
		case KeyLeft:
			*s.Value -= max(s.Step, 1)
			s.clampValue()
			return true
		case KeyRight:
			*s.Value += max(s.Step, 1)
			s.clampValue()
			return true
		case KeyHome:
			*s.Value = s.Min
			return true
		case KeyEnd:
			*s.Value = s.Max
			return true
		}
	case MouseEvent:
		set := (e.Kind == MousePress && state.Hovered && e.Button == ButtonLeft) ||
			(e.Kind == MouseMove && state.Pressed)
		if set {
			*s.Value = s.valueAt(e.X-s.lastRect.X, s.lastRect.W)
			return true
		}
	}
	return false
}
