package scrim

// ScrollBox makes any widget vertically scrollable. The inner widget draws
// into a translated viewport sized to its full measured height; rows outside
// the box are clipped by the viewport, so the inner widget needs no scroll
// awareness of its own. The ScrollState is host-owned and survives the
// per-frame widget rebuild.
type ScrollBox struct {
	Inner  Widget
	Scroll *ScrollState
}

// NewScrollBox wraps a widget with a host-owned scroll state.
func NewScrollBox(inner Widget, scroll *ScrollState) *ScrollBox {
	return &ScrollBox{Inner: inner, Scroll: scroll}
}

// Measure implements Widget: a scroll box takes whatever it is offered,
// since the overflow is exactly what it exists to hide.
func (b *ScrollBox) Measure(available Rect) (int, int) {
	return available.W, available.H
}

// Draw implements Widget.
func (b *ScrollBox) Draw(vp *Viewport) error {
	w, h := vp.Size()
	if w <= 0 || h <= 0 {
		return nil
	}

	_, contentH := b.Inner.Measure(Rect{W: w, H: 1 << 20})
	b.Scroll.SetContentLength(contentH)
	b.Scroll.Resize(h)

	inner := vp.Sub(Rect{W: w, H: contentH}).Scrolled(0, b.Scroll.Offset())
	return b.Inner.Draw(inner)
}

// HandleEvent implements Widget: wheel while hovered, arrow and page keys
// while focused. Unconsumed events fall through to the inner widget.
func (b *ScrollBox) HandleEvent(ev Event, state InteractionState) bool {
	switch e := ev.(type) {
	case MouseEvent:
		if state.Hovered {
			switch e.Kind {
			case MouseWheelUp:
				b.Scroll.ScrollBy(-1)
				return true
			case MouseWheelDown:
				b.Scroll.ScrollBy(1)
				return true
			}
		}
	case KeyEvent:
		if state.Focused {
			switch e.Key {
			case KeyUp:
				b.Scroll.ScrollBy(-1)
				return true
			case KeyDown:
				b.Scroll.ScrollBy(1)
				return true
			case KeyPageUp:
				b.Scroll.ScrollBy(-b.Scroll.ViewportLength())
				return true
			case KeyPageDown:
				b.Scroll.ScrollBy(b.Scroll.ViewportLength())
				return true
			case KeyHome:
				b.Scroll.ScrollToStart()
				return true
			case KeyEnd:
				b.Scroll.ScrollToEnd()
				return true
			}
		}
	}
	return b.Inner.HandleEvent(ev, state)
}
