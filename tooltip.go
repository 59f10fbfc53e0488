package scrim

// Tooltip shows a one-line hint once the pointer has rested on a target
// region for a delay, the dual of the scrollbar's idle auto-hide. The host
// draws it into the root viewport after everything else so it lands on top.
type Tooltip struct {
	Text   string
	Target InteractionID
	Router *Router

	// Delay is the hover duration in ticks before the tooltip appears.
	Delay uint64

	Style Style
}

// NewTooltip creates a tooltip bound to a router-registered target.
func NewTooltip(text string, target InteractionID, router *Router) *Tooltip {
	return &Tooltip{
		Text:   text,
		Target: target,
		Router: router,
		Delay:  10,
		Style:  DefaultStyle().Foreground(Yellow),
	}
}

// WithDelay sets the hover delay in ticks.
func (t *Tooltip) WithDelay(ticks uint64) *Tooltip {
	t.Delay = ticks
	return t
}

// WithStyle sets the tooltip style.
func (t *Tooltip) WithStyle(s Style) *Tooltip {
	t.Style = s
	return t
}

// ShouldShow reports whether the pointer has rested on the target long
// enough. It stays true while the hover lasts and resets when the pointer
// leaves.
func (t *Tooltip) ShouldShow() bool {
	ticks, hovering := t.Router.HoverTicks(t.Target, t.Router.Tick())
	return hovering && ticks >= t.Delay
}

// Measure implements Widget.
func (t *Tooltip) Measure(available Rect) (int, int) {
	return min(StringWidth(t.Text), available.W), 1
}

// Draw implements Widget. The tooltip positions itself below the target's
// cached bounds, pulled back inside the viewport at the edges. Nothing is
// drawn while hidden.
func (t *Tooltip) Draw(vp *Viewport) error {
	if !t.ShouldShow() {
		return nil
	}
	target, ok := t.Router.Bounds(t.Target)
	if !ok {
		return nil
	}
	x, y := tooltipPosition(target, StringWidth(t.Text), vp.Width(), vp.Height())
	vp.SetString(x, y, t.Text, t.Style)
	return nil
}

// HandleEvent implements Widget. Tooltips are display-only.
func (t *Tooltip) HandleEvent(Event, InteractionState) bool {
	return false
}

// tooltipPosition places a width-wide, one-row tooltip below the target,
// left-aligned with it, clamped so it stays on screen.
func tooltipPosition(target Rect, width, screenW, screenH int) (int, int) {
	x := target.X
	y := target.Y + target.H
	if maxX := screenW - width; x > maxX {
		x = max(0, maxX)
	}
	if y > screenH-1 {
		y = max(0, screenH-1)
	}
	return x, y
}
