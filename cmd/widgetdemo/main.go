package main

import (
	"fmt"
	"log"
	"os"

	"scrim"
)

// demoState owns the widgets and their cross-frame state. Widgets hold
// pointers into this struct, so event handling mutates it directly and the
// next render pass picks the changes up.
type demoState struct {
	theme  scrim.Theme
	router *scrim.Router
	status string

	table  *scrim.Table
	field  *scrim.InputField
	slider *scrim.Slider

	input    *scrim.InputState
	volume   int
	selected int
	rowsVis  scrim.ScrollState

	widgets map[scrim.InteractionID]scrim.Widget
	regions map[scrim.InteractionID]scrim.Rect
}

var rows = [][]string{
	{"nginx", "1.2%", "54 MB"},
	{"postgres", "3.8%", "312 MB"},
	{"redis", "0.4%", "28 MB"},
	{"node", "7.1%", "190 MB"},
	{"go-server", "2.2%", "61 MB"},
	{"docker", "1.0%", "88 MB"},
	{"kubelet", "4.4%", "140 MB"},
	{"python", "5.9%", "220 MB"},
}

func main() {
	cfg, err := scrim.LoadConfig(os.ExpandEnv("$HOME/.config/scrim/demo.toml"))
	if err != nil {
		log.Fatal(err)
	}
	theme, err := cfg.ResolveTheme()
	if err != nil {
		log.Fatal(err)
	}

	state := &demoState{
		theme:  theme,
		status: "tab: focus  q: quit",
		input:  scrim.NewInputState(""),
		volume: 40,
	}

	state.table = scrim.NewTable(
		[]scrim.Column{
			{Header: "NAME", Width: scrim.Fill(1)},
			{Header: "CPU", Width: scrim.Fixed(8), Align: scrim.AlignRight},
			{Header: "MEM", Width: scrim.Fixed(10), Align: scrim.AlignRight},
		},
		rows, &state.selected, &state.rowsVis,
	)
	state.field = scrim.NewInputField(state.input)
	state.field.Placeholder = "type a note..."
	state.field.OnSubmit = func(v string) {
		state.status = "submitted: " + v
		state.input.Clear()
	}
	state.slider = scrim.NewSlider(&state.volume, 0, 100)

	app := scrim.NewApp(scrim.NewTcellBackend(cfg.MouseEnabled), state).
		WithConfig(cfg).
		WithFrameRate(30)

	state.router = app.Router()
	state.widgets = map[scrim.InteractionID]scrim.Widget{
		state.router.Alloc(): state.table,
		state.router.Alloc(): state.field,
		state.router.Alloc(): state.slider,
	}
	state.regions = make(map[scrim.InteractionID]scrim.Rect)

	if err := app.Run(update, render); err != nil {
		log.Fatal(err)
	}
}

func update(s *demoState, ev scrim.Event) bool {
	typing := false
	if st, ok := s.router.State(focusedID(s)); ok {
		typing = st.Focused && s.widgets[focusedID(s)] == s.field
	}

	switch e := ev.(type) {
	case scrim.CharEvent:
		if e.Rune == 'q' && e.Mod == scrim.ModNone && !typing {
			return false
		}
	case scrim.KeyEvent:
		switch e.Key {
		case scrim.KeyEscape:
			return false
		case scrim.KeyTab:
			s.router.FocusNext()
			return true
		case scrim.KeyBacktab:
			s.router.FocusPrev()
			return true
		}
	}

	dispatch(s, ev)
	return true
}

func focusedID(s *demoState) scrim.InteractionID {
	return s.router.Focused()
}

// dispatch delivers an event to the widget that should see it: mouse events
// to the widget under the pointer (or the pressed one), everything else to
// the focused widget.
func dispatch(s *demoState, ev scrim.Event) {
	switch e := ev.(type) {
	case scrim.MouseEvent:
		if id, ok := s.router.HitTest(e.X, e.Y); ok {
			deliver(s, id, ev)
			return
		}
		// drags continue outside the original bounds
		for id, w := range s.widgets {
			if st, ok := s.router.State(id); ok && st.Pressed {
				w.HandleEvent(ev, st)
			}
		}
	default:
		deliver(s, s.router.Focused(), ev)
	}
}

func deliver(s *demoState, id scrim.InteractionID, ev scrim.Event) {
	w, ok := s.widgets[id]
	if !ok {
		return
	}
	st, _ := s.router.State(id)
	w.HandleEvent(ev, st)
	if f, isField := w.(*scrim.InputField); isField {
		f.SetFocused(st.Focused)
	}
}

func render(s *demoState, w *scrim.Window) error {
	width, height := w.Size()

	root := scrim.NewContainer(scrim.Vertical)
	root.Add(scrim.NewFigletText("SCRIM").Styled(s.theme.Accent), scrim.Fixed(3))
	root.Add(s.table, scrim.Fill(1))
	root.Add(s.field, scrim.Fixed(1))
	root.Add(s.slider, scrim.Fixed(1))

	bar := scrim.NewStatusBar()
	bar.Left = []scrim.Segment{{Text: s.status, Style: s.theme.Muted}}
	bar.Right = []scrim.Segment{{Text: fmt.Sprintf("vol %d%%", s.volume), Style: s.theme.Base}}
	root.Add(bar, scrim.Fixed(1))

	if err := w.Draw(root, scrim.NewRect(0, 0, width, height)); err != nil {
		return err
	}

	// hit regions mirror the vertical layout above
	s.regions[idOf(s, s.table)] = scrim.NewRect(0, 3, width, height-6)
	s.regions[idOf(s, s.field)] = scrim.NewRect(0, height-3, width, 1)
	s.regions[idOf(s, s.slider)] = scrim.NewRect(0, height-2, width, 1)
	for id, r := range s.regions {
		flags := scrim.FlagFocusable
		if s.widgets[id] == s.table {
			flags |= scrim.FlagScrollable
		}
		if s.widgets[id] == s.slider {
			flags |= scrim.FlagDraggable
		}
		s.router.Register(id, r, flags)
	}
	return nil
}

func idOf(s *demoState, w scrim.Widget) scrim.InteractionID {
	for id, cand := range s.widgets {
		if cand == w {
			return id
		}
	}
	return scrim.NoID
}
