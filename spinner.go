package scrim

// Spinner is a frame-driven activity indicator. It carries no timer of its
// own: the host passes the current tick each frame and the spinner picks its
// glyph from it, so rendering stays a pure function of host state.
type Spinner struct {
	Frames   []string
	Interval uint64 // ticks per frame, minimum 1
	Tick     uint64
	Style    Style
}

// SpinnerDots is the default braille spinner frame set.
var SpinnerDots = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// NewSpinner creates a braille spinner advancing every other tick.
func NewSpinner(tick uint64) *Spinner {
	return &Spinner{Frames: SpinnerDots, Interval: 2, Tick: tick, Style: DefaultStyle()}
}

func (s *Spinner) frame() string {
	if len(s.Frames) == 0 {
		return ""
	}
	interval := max(s.Interval, 1)
	return s.Frames[(s.Tick/interval)%uint64(len(s.Frames))]
}

// Measure implements Widget.
func (s *Spinner) Measure(available Rect) (int, int) {
	w := 0
	for _, f := range s.Frames {
		w = max(w, StringWidth(f))
	}
	return min(w, available.W), 1
}

// Draw implements Widget.
func (s *Spinner) Draw(vp *Viewport) error {
	vp.SetString(0, 0, s.frame(), s.Style)
	return nil
}

// HandleEvent implements Widget.
func (s *Spinner) HandleEvent(Event, InteractionState) bool {
	return false
}
