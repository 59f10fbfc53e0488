package scrim

import "time"

// Window is the drawing surface handed to the render callback each cycle.
// It exposes the working grid as a root viewport plus the interaction
// router, so a render function can register hit regions while it draws.
type Window struct {
	renderer *Renderer
	router   *Router
	tick     uint64
}

// Root returns a viewport over the whole working grid.
func (w *Window) Root() *Viewport {
	width, height := w.renderer.Size()
	return NewViewport(w.renderer.Working(), NewRect(0, 0, width, height))
}

// Router returns the interaction router for this app.
func (w *Window) Router() *Router {
	return w.router
}

// Size returns the current grid size.
func (w *Window) Size() (width, height int) {
	return w.renderer.Size()
}

// Tick returns the current frame tick. It only advances in fixed-rate mode.
func (w *Window) Tick() uint64 {
	return w.tick
}

// Draw renders a widget into a region of the root viewport.
func (w *Window) Draw(widget Widget, r Rect) error {
	return widget.Draw(w.Root().Sub(r))
}

// UpdateFunc folds one event into host state. Returning false stops the app.
type UpdateFunc[S any] func(state *S, ev Event) bool

// RenderFunc rebuilds the frame from host state. A returned error skips this
// cycle's flush; the terminal keeps the previous frame and the loop carries
// on.
type RenderFunc[S any] func(state *S, w *Window) error

// App owns the event loop: it polls the backend, routes mouse events,
// synthesizes frame ticks, and runs the update/render cycle against
// host-owned state.
type App[S any] struct {
	backend Backend
	state   *S
	cfg     Config

	renderer    *Renderer
	router      *Router
	tick        uint64
	lastDrawErr error
}

// NewApp creates an app over a backend and host-owned state, with the
// default config.
func NewApp[S any](backend Backend, state *S) *App[S] {
	return &App[S]{backend: backend, state: state, cfg: DefaultConfig()}
}

// WithConfig replaces the app config.
func (a *App[S]) WithConfig(cfg Config) *App[S] {
	a.cfg = cfg
	return a
}

// WithFrameRate switches to fixed-rate mode at the given ticks per second.
func (a *App[S]) WithFrameRate(tps int) *App[S] {
	a.cfg.TickRate = tps
	return a
}

// Router returns the interaction router. Valid after Run has started; before
// that it allocates one so ids can be reserved up front.
func (a *App[S]) Router() *Router {
	if a.router == nil {
		a.router = NewRouter(a.cfg.AutoHideIdleTicks)
	}
	return a.router
}

// LastDrawError returns the most recent render callback error, if any. Draw
// errors do not stop the loop, so this is the place to look when a frame
// silently kept its previous content.
func (a *App[S]) LastDrawError() error {
	return a.lastDrawErr
}

// Run drives the loop until update returns false or the backend fails.
func (a *App[S]) Run(update UpdateFunc[S], render RenderFunc[S]) error {
	if err := a.backend.Init(); err != nil {
		return backendErr("init", err)
	}
	defer a.backend.Fini()

	if err := a.backend.SetRawMode(true); err != nil {
		return backendErr("raw mode", err)
	}
	defer a.backend.SetRawMode(false)

	a.renderer = NewRenderer(a.backend)
	a.Router() // ensure allocated

	var interval time.Duration
	var nextTick time.Time
	if a.cfg.TickRate > 0 {
		interval = time.Second / time.Duration(a.cfg.TickRate)
		nextTick = time.Now().Add(interval)
	}

	// Initial frame before any input arrives.
	if err := a.cycle(render); err != nil {
		return err
	}

	for {
		timeout := time.Duration(-1)
		if interval > 0 {
			timeout = max(0, time.Until(nextTick))
		}

		ev, err := a.backend.PollEvent(timeout)
		if err != nil {
			return backendErr("poll", err)
		}

		if ev == nil {
			if interval == 0 {
				continue
			}
			now := time.Now()
			if now.Before(nextTick) {
				// Spurious wakeup: the backend returned early without an
				// event. A frame may arrive late but never early, so re-poll
				// for the remaining time.
				continue
			}
			// Schedule the next tick from now, so a stall slips the cadence
			// instead of building a backlog.
			a.tick++
			nextTick = now.Add(interval)
			ev = FrameEvent{Tick: a.tick}
		}

		switch e := ev.(type) {
		case ResizeEvent:
			a.renderer.Resize(e.Width, e.Height)
		case FrameEvent:
			a.router.SetTick(e.Tick)
		case MouseEvent:
			a.router.HandleMouse(e)
		}

		if !update(a.state, ev) {
			return nil
		}

		if err := a.cycle(render); err != nil {
			return err
		}
	}
}

// cycle runs one render pass: clear the working grid, rebuild the frame
// inside a router registration window, and flush the diff.
func (a *App[S]) cycle(render RenderFunc[S]) error {
	a.renderer.Working().Clear()
	a.router.BeginFrame()

	w := &Window{renderer: a.renderer, router: a.router, tick: a.tick}
	drawErr := render(a.state, w)

	a.router.EndFrame()

	if drawErr != nil {
		a.lastDrawErr = drawErr
		return nil
	}
	if err := a.renderer.Flush(); err != nil {
		return backendErr("flush", err)
	}
	return nil
}
