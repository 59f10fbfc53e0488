package scrim

// Widget is the capability contract every drawable element implements.
// Widgets are transient: they are rebuilt from host state every frame and
// hold no cross-frame identity themselves. Anything that must persist
// (scroll offsets, input cursors, focus) lives in host-owned state keyed by
// an InteractionID.
type Widget interface {
	// Measure returns the widget's natural size inside the available rect.
	// It must not draw or mutate anything.
	Measure(available Rect) (width, height int)

	// Draw paints the widget into the viewport. The viewport is borrowed
	// for the duration of the call only. Out-of-bounds drawing is clipped,
	// not an error; Draw fails only on genuinely impossible input.
	Draw(vp *Viewport) error

	// HandleEvent reacts to an input event routed to this widget, with the
	// router's cached interaction snapshot. It returns true if the event
	// was consumed.
	HandleEvent(ev Event, state InteractionState) bool
}

// nilSafeHandle forwards an event to a widget, tolerating nil.
func nilSafeHandle(w Widget, ev Event, st InteractionState) bool {
	if w == nil {
		return false
	}
	return w.HandleEvent(ev, st)
}
