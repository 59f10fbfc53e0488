package scrim

// Scrollbar renders a vertical track with a proportional thumb for a
// host-owned ScrollState. When wired to a Router it auto-hides after a
// period of inactivity and supports click-to-position and thumb dragging.
type Scrollbar struct {
	Scroll     *ScrollState
	ID         InteractionID
	Router     *Router
	TrackStyle Style
	ThumbStyle Style
	TrackRune  rune
	ThumbRune  rune

	lastRect Rect // screen bounds from the most recent Draw
}

// NewScrollbar creates a scrollbar for a host-owned scroll state. Pass a
// zero ID and nil router for an always-visible, non-interactive bar.
func NewScrollbar(scroll *ScrollState, id InteractionID, router *Router) *Scrollbar {
	return &Scrollbar{
		Scroll:     scroll,
		ID:         id,
		Router:     router,
		TrackStyle: DefaultStyle().Dim(),
		ThumbStyle: DefaultStyle(),
		TrackRune:  '│',
		ThumbRune:  '█',
	}
}

// Measure implements Widget: one column, full offered height.
func (s *Scrollbar) Measure(available Rect) (int, int) {
	return 1, available.H
}

// Draw implements Widget.
func (s *Scrollbar) Draw(vp *Viewport) error {
	_, h := vp.Size()
	if h <= 0 {
		return nil
	}
	s.lastRect = vp.AbsRect(Rect{W: 1, H: h})

	if s.Router != nil && s.ID != NoID {
		s.Router.Register(s.ID, s.lastRect, FlagScrollable|FlagDraggable)
		if !s.Router.IsVisible(s.ID, s.Router.Tick()) {
			return nil
		}
	}
	if !s.Scroll.CanScroll() {
		return nil
	}

	vp.VLine(0, 0, h, s.TrackRune, s.TrackStyle)
	pos, length := ThumbGeometry(*s.Scroll, h)
	vp.VLine(0, pos, length, s.ThumbRune, s.ThumbStyle)
	return nil
}

// HandleEvent implements Widget: press or drag on the track jumps the
// offset so the thumb lands under the pointer; the wheel scrolls by one.
func (s *Scrollbar) HandleEvent(ev Event, state InteractionState) bool {
	e, ok := ev.(MouseEvent)
	if !ok {
		return false
	}
	switch e.Kind {
	case MouseWheelUp:
		if state.Hovered {
			s.Scroll.ScrollBy(-1)
			return true
		}
	case MouseWheelDown:
		if state.Hovered {
			s.Scroll.ScrollBy(1)
			return true
		}
	case MousePress:
		if state.Hovered && e.Button == ButtonLeft {
			s.Scroll.ScrollTo(TrackTarget(*s.Scroll, s.lastRect.H, e.Y-s.lastRect.Y))
			return true
		}
	case MouseMove:
		if state.Pressed {
			s.Scroll.ScrollTo(TrackTarget(*s.Scroll, s.lastRect.H, e.Y-s.lastRect.Y))
			return true
		}
	}
	return false
}
