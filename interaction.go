package scrim

// InteractionID is an opaque, process-unique, stable key for a logical
// widget instance. Widgets themselves are rebuilt every frame; the id is
// what lets focus, hover, scroll and auto-hide state survive across frames.
// Zero is never a valid id.
type InteractionID uint64

// NoID is the absent id.
const NoID InteractionID = 0

// IDAllocator issues unique interaction ids. A live id is never reissued.
// Hosts may supply their own ids (for widgets that must persist state under
// a well-known key); Reserve teaches the allocator about them so Alloc only
// fills the gaps around them.
type IDAllocator struct {
	next uint64
	used map[InteractionID]struct{}
}

// NewIDAllocator creates an allocator starting at id 1.
func NewIDAllocator() *IDAllocator {
	return &IDAllocator{next: 1, used: make(map[InteractionID]struct{})}
}

// Alloc returns a fresh id, skipping any reserved ones.
func (a *IDAllocator) Alloc() InteractionID {
	for {
		id := InteractionID(a.next)
		a.next++
		if _, taken := a.used[id]; !taken {
			a.used[id] = struct{}{}
			return id
		}
	}
}

// Reserve marks an externally chosen id as taken. Reserving NoID or an
// already reserved id is a no-op.
func (a *IDAllocator) Reserve(id InteractionID) {
	if id == NoID {
		return
	}
	a.used[id] = struct{}{}
}

// InteractionFlags describe how a registered region participates in input.
type InteractionFlags uint8

const (
	FlagNone      InteractionFlags = 0
	FlagFocusable InteractionFlags = 1 << iota
	FlagScrollable
	FlagDraggable
)

// Has returns true if the flag set contains the given flag.
func (f InteractionFlags) Has(flag InteractionFlags) bool {
	return f&flag != 0
}

// InteractionState is the per-id snapshot handed to a widget's HandleEvent.
type InteractionState struct {
	Hovered      bool
	Focused      bool
	Pressed      bool
	LastActivity uint64
}

// entry is the cached record for one id: last-known bounds plus interaction
// state that outlives the transient widget values.
type entry struct {
	bounds Rect
	z      int
	seq    int // registration order within the frame, later wins ties
	flags  InteractionFlags
	frame  uint64 // frame the entry was last registered in

	hovered      bool
	hoverStart   uint64 // tick the pointer entered the bounds
	pressed      bool
	lastActivity uint64
}

// Router assigns stable identities to widgets across frames, caches their
// last drawn bounds, hit-tests pointer events, tracks focus, and applies the
// auto-hide visibility policy. The cache is refreshed once per frame, after
// layout, and consulted when dispatching the next cycle's events.
type Router struct {
	alloc   *IDAllocator
	entries map[InteractionID]*entry
	order   []InteractionID // registration order of the current frame

	focused InteractionID
	frame   uint64
	seq     int
	tick    uint64

	idleThreshold uint64
}

// NewRouter creates a router with the given auto-hide idle threshold in
// ticks.
func NewRouter(idleThreshold uint64) *Router {
	return &Router{
		alloc:         NewIDAllocator(),
		entries:       make(map[InteractionID]*entry),
		idleThreshold: idleThreshold,
	}
}

// Alloc returns a fresh stable id for a logical widget instance.
func (r *Router) Alloc() InteractionID {
	return r.alloc.Alloc()
}

// Reserve marks a host-chosen id as taken.
func (r *Router) Reserve(id InteractionID) {
	r.alloc.Reserve(id)
}

// SetTick records the current frame tick; activity stamps and the auto-hide
// policy are measured against it.
func (r *Router) SetTick(tick uint64) {
	r.tick = tick
}

// Tick returns the router's current tick.
func (r *Router) Tick() uint64 {
	return r.tick
}

// BeginFrame starts a new registration pass. Called by the app loop before
// the render callback runs.
func (r *Router) BeginFrame() {
	r.frame++
	r.order = r.order[:0]
	r.seq = 0
}

// Register records a widget's absolute bounds for this frame. Re-registering
// the same id replaces its bounds; the later registration wins hit-test ties,
// matching draw order. Entries are created lazily on first observation.
func (r *Router) Register(id InteractionID, bounds Rect, flags InteractionFlags) {
	r.RegisterZ(id, bounds, flags, 0)
}

// RegisterZ registers with an explicit z-index. Higher z wins hit tests
// regardless of registration order.
func (r *Router) RegisterZ(id InteractionID, bounds Rect, flags InteractionFlags, z int) {
	if id == NoID {
		return
	}
	e, ok := r.entries[id]
	if !ok {
		e = &entry{lastActivity: r.tick}
		r.entries[id] = e
	}
	e.bounds = bounds
	e.z = z
	e.flags = flags
	e.seq = r.seq
	e.frame = r.frame
	r.seq++
	r.order = append(r.order, id)
}

// EndFrame evicts every id that was not registered this frame: the widget
// was not redrawn, so it no longer exists. A focused id that disappears
// clears focus.
func (r *Router) EndFrame() {
	for id, e := range r.entries {
		if e.frame != r.frame {
			delete(r.entries, id)
			if r.focused == id {
				r.focused = NoID
			}
		}
	}
}

// Bounds returns the last-known rect for an id. Absence is not a fault: it
// means the widget has not been drawn this frame.
func (r *Router) Bounds(id InteractionID) (Rect, bool) {
	e, ok := r.entries[id]
	if !ok {
		return Rect{}, false
	}
	return e.bounds, true
}

// State returns the interaction snapshot for an id.
func (r *Router) State(id InteractionID) (InteractionState, bool) {
	e, ok := r.entries[id]
	if !ok {
		return InteractionState{}, false
	}
	return InteractionState{
		Hovered:      e.hovered,
		Focused:      r.focused == id,
		Pressed:      e.pressed,
		LastActivity: e.lastActivity,
	}, true
}

// HitTest returns the id whose cached rect contains the point, preferring
// the highest z-index and, on ties, the most recently registered entry
// (topmost: later widgets draw over earlier ones).
func (r *Router) HitTest(x, y int) (InteractionID, bool) {
	var bestID InteractionID
	var best *entry
	for id, e := range r.entries {
		if !e.bounds.Contains(x, y) {
			continue
		}
		if best == nil || e.z > best.z || (e.z == best.z && e.seq > best.seq) {
			bestID, best = id, e
		}
	}
	return bestID, best != nil
}

// Focused returns the id holding keyboard focus, or NoID.
func (r *Router) Focused() InteractionID {
	return r.focused
}

// Focus moves keyboard focus to the given id. Focusing an unknown id is a
// no-op so hosts can focus widgets that appear a frame later.
func (r *Router) Focus(id InteractionID) {
	if _, ok := r.entries[id]; !ok {
		return
	}
	r.focused = id
	r.Touch(id)
}

// ClearFocus unsets keyboard focus.
func (r *Router) ClearFocus() {
	r.focused = NoID
}

// FocusNext moves focus to the next focusable id in registration order,
// wrapping around. With no focusable entries it clears focus.
func (r *Router) FocusNext() {
	r.cycleFocus(1)
}

// FocusPrev moves focus to the previous focusable id in registration order.
func (r *Router) FocusPrev() {
	r.cycleFocus(-1)
}

func (r *Router) cycleFocus(dir int) {
	var focusables []InteractionID
	for _, id := range r.order {
		if e, ok := r.entries[id]; ok && e.flags.Has(FlagFocusable) {
			focusables = append(focusables, id)
		}
	}
	if len(focusables) == 0 {
		r.focused = NoID
		return
	}
	cur := -1
	for i, id := range focusables {
		if id == r.focused {
			cur = i
			break
		}
	}
	next := (cur + dir + len(focusables)) % len(focusables)
	if cur < 0 {
		if dir > 0 {
			next = 0
		} else {
			next = len(focusables) - 1
		}
	}
	r.focused = focusables[next]
	r.Touch(r.focused)
}

// Touch stamps an id with the current tick, keeping it visible under the
// auto-hide policy.
func (r *Router) Touch(id InteractionID) {
	if e, ok := r.entries[id]; ok {
		e.lastActivity = r.tick
	}
}

// HoverTicks returns how many ticks the pointer has rested on the id. The
// count runs from the tick the pointer entered the bounds; moving within the
// bounds does not reset it. Returns false when the id is not hovered.
func (r *Router) HoverTicks(id InteractionID, currentTick uint64) (uint64, bool) {
	e, ok := r.entries[id]
	if !ok || !e.hovered {
		return 0, false
	}
	return currentTick - e.hoverStart, true
}

// IsVisible applies the auto-hide policy: an id is visible while an
// interaction is in progress (pressed or hovered) or while fewer than the
// idle threshold of ticks have elapsed since its last activity.
func (r *Router) IsVisible(id InteractionID, currentTick uint64) bool {
	e, ok := r.entries[id]
	if !ok {
		return false
	}
	if e.pressed || e.hovered {
		return true
	}
	return currentTick-e.lastActivity <= r.idleThreshold
}

// HandleMouse routes a pointer event through the cache: it updates hover,
// press and activity state and applies click-to-focus for focusable regions.
// It returns the hit id so the host can dispatch to the matching widget.
func (r *Router) HandleMouse(ev MouseEvent) (InteractionID, bool) {
	target, hit := r.HitTest(ev.X, ev.Y)

	for id, e := range r.entries {
		was := e.hovered
		e.hovered = hit && id == target
		if e.hovered && !was {
			e.hoverStart = r.tick
			e.lastActivity = r.tick
		}
	}

	switch ev.Kind {
	case MousePress:
		if hit {
			e := r.entries[target]
			e.pressed = true
			e.lastActivity = r.tick
			if e.flags.Has(FlagFocusable) {
				r.focused = target
			}
		} else {
			r.focused = NoID
		}
	case MouseRelease:
		for _, e := range r.entries {
			e.pressed = false
		}
		if hit {
			r.entries[target].lastActivity = r.tick
		}
	case MouseWheelUp, MouseWheelDown, MouseMove:
		if hit {
			r.entries[target].lastActivity = r.tick
		}
	}

	return target, hit
}
