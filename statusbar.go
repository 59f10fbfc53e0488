package scrim

// Segment is one styled piece of a status bar.
type Segment struct {
	Text  string
	Style Style
}

// StatusBar renders a single row with left-, center- and right-anchored
// segments over a background fill. Overlapping regions resolve in that
// order: right draws over center draws over left.
type StatusBar struct {
	Left   []Segment
	Center []Segment
	Right  []Segment
	Style  Style // background fill
}

// NewStatusBar creates an empty status bar with the default style.
func NewStatusBar() *StatusBar {
	return &StatusBar{Style: DefaultStyle()}
}

func segmentsWidth(segs []Segment) int {
	w := 0
	for _, s := range segs {
		w += StringWidth(s.Text)
	}
	return w
}

func drawSegments(vp *Viewport, x int, segs []Segment) {
	for _, s := range segs {
		x += vp.SetString(x, 0, s.Text, s.Style)
	}
}

// Measure implements Widget.
func (b *StatusBar) Measure(available Rect) (int, int) {
	return available.W, 1
}

// Draw implements Widget.
func (b *StatusBar) Draw(vp *Viewport) error {
	w, _ := vp.Size()
	vp.FillRect(Rect{W: w, H: 1}, NewCell(' ', b.Style))

	drawSegments(vp, 0, b.Left)
	if cw := segmentsWidth(b.Center); cw > 0 {
		drawSegments(vp, alignOffset(cw, w, AlignCenter), b.Center)
	}
	if rw := segmentsWidth(b.Right); rw > 0 {
		drawSegments(vp, max(0, w-rw), b.Right)
	}
	return nil
}

// HandleEvent implements Widget.
func (b *StatusBar) HandleEvent(Event, InteractionState) bool {
	return false
}
