package main

import (
	"fmt"
	"log"
	"strings"

	"scrim"
)

// scrolldemo shows the scroll machinery end to end: a wrapped text block in
// a scroll box, an auto-hiding scrollbar beside it, and a spinner driven by
// frame ticks.
type state struct {
	scroll scrim.ScrollState
	barID  scrim.InteractionID
	boxID  scrim.InteractionID
	router *scrim.Router
	tick   uint64

	box *scrim.ScrollBox
	bar *scrim.Scrollbar
}

func main() {
	var paragraphs []string
	for i := 1; i <= 60; i++ {
		paragraphs = append(paragraphs, fmt.Sprintf(
			"%3d  The quick brown fox jumps over the lazy dog, then scrolls away.", i))
	}
	text := strings.Join(paragraphs, "\n")

	s := &state{}
	app := scrim.NewApp(scrim.NewAnsiBackend(true), s).WithFrameRate(20)

	s.router = app.Router()
	s.boxID = s.router.Alloc()
	s.barID = s.router.Alloc()
	s.box = scrim.NewScrollBox(scrim.NewTextBlock(text), &s.scroll)
	s.bar = scrim.NewScrollbar(&s.scroll, s.barID, s.router)

	if err := app.Run(update, render); err != nil {
		log.Fatal(err)
	}
}

func update(s *state, ev scrim.Event) bool {
	switch e := ev.(type) {
	case scrim.CharEvent:
		if e.Rune == 'q' {
			return false
		}
	case scrim.FrameEvent:
		s.tick = e.Tick
	case scrim.MouseEvent:
		if id, ok := s.router.HitTest(e.X, e.Y); ok {
			st, _ := s.router.State(id)
			switch id {
			case s.boxID:
				s.box.HandleEvent(ev, st)
			case s.barID:
				s.bar.HandleEvent(ev, st)
			}
		} else {
			// keep a drag on the scrollbar alive off-track
			if st, ok := s.router.State(s.barID); ok && st.Pressed {
				s.bar.HandleEvent(ev, st)
			}
		}
	case scrim.KeyEvent:
		st, _ := s.router.State(s.boxID)
		st.Focused = true
		s.box.HandleEvent(ev, st)
	}
	return true
}

func render(s *state, w *scrim.Window) error {
	width, height := w.Size()

	spin := scrim.NewSpinner(s.tick)
	bar := scrim.NewStatusBar()
	bar.Left = []scrim.Segment{{Text: "arrows/wheel: scroll  q: quit", Style: scrim.DefaultStyle().Dim()}}
	bar.Right = []scrim.Segment{
		{Text: fmt.Sprintf("%d/%d ", s.scroll.Offset(), s.scroll.MaxOffset()), Style: scrim.DefaultStyle()},
	}

	body := scrim.NewRect(0, 1, width-1, height-2)
	if err := w.Draw(spin, scrim.NewRect(0, 0, 2, 1)); err != nil {
		return err
	}
	if err := w.Draw(s.box, body); err != nil {
		return err
	}
	if err := w.Draw(s.bar, scrim.NewRect(width-1, 1, 1, height-2)); err != nil {
		return err
	}
	if err := w.Draw(bar, scrim.NewRect(0, height-1, width, 1)); err != nil {
		return err
	}

	s.router.Register(s.boxID, body, scrim.FlagFocusable|scrim.FlagScrollable)
	return nil
}
