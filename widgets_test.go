package scrim

import (
	"strings"
	"testing"
)

func TestLabelAlignment(t *testing.T) {
	tests := []struct {
		align Alignment
		want  string
	}{
		{AlignLeft, "hi"},
		{AlignCenter, "    hi"},
		{AlignRight, "        hi"},
	}
	for _, tt := range tests {
		g := NewGrid(10, 1)
		l := NewLabel("hi").Aligned(tt.align)
		if err := l.Draw(NewViewport(g, NewRect(0, 0, 10, 1))); err != nil {
			t.Fatal(err)
		}
		if got := g.Line(0); got != tt.want {
			t.Errorf("align %v = %q, want %q", tt.align, got, tt.want)
		}
	}
}

func TestLabelTruncates(t *testing.T) {
	g := NewGrid(4, 1)
	l := NewLabel("toolong")
	if err := l.Draw(NewViewport(g, NewRect(0, 0, 4, 1))); err != nil {
		t.Fatal(err)
	}
	if got := g.Line(0); got != "tool" {
		t.Errorf("row = %q, want %q", got, "tool")
	}
}

func TestTextBlockWrapsAndScrolls(t *testing.T) {
	text := "one two three four five six"
	scroll := NewScrollState(0, 0)
	tb := NewTextBlock(text).Scrollable(&scroll)

	g := NewGrid(9, 2)
	vp := NewViewport(g, NewRect(0, 0, 9, 2))
	if err := tb.Draw(vp); err != nil {
		t.Fatal(err)
	}
	if g.Line(0) != "one two" || g.Line(1) != "three" {
		t.Fatalf("unscrolled rows = %q / %q", g.Line(0), g.Line(1))
	}

	tb.HandleEvent(KeyEvent{Key: KeyDown}, InteractionState{Focused: true})
	g.Clear()
	if err := tb.Draw(vp); err != nil {
		t.Fatal(err)
	}
	if g.Line(0) != "three" {
		t.Errorf("scrolled first row = %q, want %q", g.Line(0), "three")
	}
}

func TestTextBlockIgnoresEventsWithoutFocus(t *testing.T) {
	scroll := NewScrollState(0, 0)
	tb := NewTextBlock("a b c d e f g h").Scrollable(&scroll)
	if tb.HandleEvent(KeyEvent{Key: KeyDown}, InteractionState{}) {
		t.Error("unfocused text block consumed a key")
	}
	if tb.HandleEvent(MouseEvent{Kind: MouseWheelDown}, InteractionState{}) {
		t.Error("unhovered text block consumed a wheel event")
	}
}

func TestFigletTextHeightAndWidth(t *testing.T) {
	f := NewFigletText("GO")
	w, h := f.Measure(NewRect(0, 0, 80, 24))
	if h != 3 {
		t.Errorf("height = %d, want 3", h)
	}
	if w != 8 {
		t.Errorf("width = %d, want 8", w)
	}

	g := NewGrid(20, 3)
	if err := f.Draw(NewViewport(g, NewRect(0, 0, 20, 3))); err != nil {
		t.Fatal(err)
	}
	if g.String() == strings.Repeat(" ", 20)+"\n"+strings.Repeat(" ", 20)+"\n"+strings.Repeat(" ", 20) {
		t.Error("banner drew nothing")
	}
}

func TestFigletUnknownRuneFallsBack(t *testing.T) {
	f := MiniFont
	g := f.glyph('~')
	if len(g) != f.Height {
		t.Fatalf("fallback glyph height = %d, want %d", len(g), f.Height)
	}
}

func TestSpinnerAdvancesWithTicks(t *testing.T) {
	s := NewSpinner(0)
	first := s.frame()
	s.Tick = s.Interval
	second := s.frame()
	if first == second {
		t.Error("spinner frame did not advance after an interval")
	}
	s.Tick = s.Interval * uint64(len(s.Frames))
	if got := s.frame(); got != first {
		t.Errorf("spinner did not wrap: %q, want %q", got, first)
	}
}

func TestStatusBarSegments(t *testing.T) {
	b := NewStatusBar()
	b.Left = []Segment{{Text: "L", Style: DefaultStyle()}}
	b.Center = []Segment{{Text: "CC", Style: DefaultStyle()}}
	b.Right = []Segment{{Text: "R", Style: DefaultStyle()}}

	g := NewGrid(10, 1)
	if err := b.Draw(NewViewport(g, NewRect(0, 0, 10, 1))); err != nil {
		t.Fatal(err)
	}
	row := g.Line(0)
	if !strings.HasPrefix(row, "L") {
		t.Errorf("left segment misplaced: %q", row)
	}
	if !strings.HasSuffix(row, "R") {
		t.Errorf("right segment misplaced: %q", row)
	}
	if g.Get(4, 0).Rune != 'C' || g.Get(5, 0).Rune != 'C' {
		t.Errorf("center segment misplaced: %q", row)
	}
}

func TestScrollBoxClipsOverflow(t *testing.T) {
	scroll := NewScrollState(0, 0)
	box := NewScrollBox(NewTextBlock("l1\nl2\nl3\nl4\nl5"), &scroll)

	g := NewGrid(5, 2)
	vp := NewViewport(g, NewRect(0, 0, 5, 2))
	if err := box.Draw(vp); err != nil {
		t.Fatal(err)
	}
	if g.Line(0) != "l1" || g.Line(1) != "l2" {
		t.Fatalf("top rows = %q / %q", g.Line(0), g.Line(1))
	}
	if scroll.ContentLength() != 5 || scroll.ViewportLength() != 2 {
		t.Errorf("scroll sync = (%d, %d), want (5, 2)", scroll.ContentLength(), scroll.ViewportLength())
	}

	box.HandleEvent(MouseEvent{Kind: MouseWheelDown}, InteractionState{Hovered: true})
	g.Clear()
	if err := box.Draw(vp); err != nil {
		t.Fatal(err)
	}
	if g.Line(0) != "l2" || g.Line(1) != "l3" {
		t.Errorf("scrolled rows = %q / %q", g.Line(0), g.Line(1))
	}
}

func TestScrollBoxEndKey(t *testing.T) {
	scroll := NewScrollState(0, 0)
	box := NewScrollBox(NewTextBlock("a\nb\nc\nd\ne\nf"), &scroll)

	g := NewGrid(3, 2)
	vp := NewViewport(g, NewRect(0, 0, 3, 2))
	if err := box.Draw(vp); err != nil {
		t.Fatal(err)
	}

	box.HandleEvent(KeyEvent{Key: KeyEnd}, InteractionState{Focused: true})
	if !scroll.AtEnd() {
		t.Errorf("offset = %d, want max %d", scroll.Offset(), scroll.MaxOffset())
	}
}

func TestScrollbarDrawsThumb(t *testing.T) {
	scroll := NewScrollState(100, 10)
	bar := NewScrollbar(&scroll, NoID, nil)

	g := NewGrid(1, 10)
	if err := bar.Draw(NewViewport(g, NewRect(0, 0, 1, 10))); err != nil {
		t.Fatal(err)
	}
	if g.Get(0, 0).Rune != bar.ThumbRune {
		t.Errorf("thumb not at track start: %q", g.Get(0, 0).Rune)
	}
	if g.Get(0, 5).Rune != bar.TrackRune {
		t.Errorf("track rune missing at mid-track: %q", g.Get(0, 5).Rune)
	}

	scroll.ScrollToEnd()
	g.Clear()
	if err := bar.Draw(NewViewport(g, NewRect(0, 0, 1, 10))); err != nil {
		t.Fatal(err)
	}
	if g.Get(0, 9).Rune != bar.ThumbRune {
		t.Errorf("thumb not at track end: %q", g.Get(0, 9).Rune)
	}
}

func TestScrollbarHiddenWhenIdle(t *testing.T) {
	router := NewRouter(5)
	id := router.Alloc()
	scroll := NewScrollState(100, 10)
	bar := NewScrollbar(&scroll, id, router)

	g := NewGrid(1, 10)
	router.SetTick(0)
	router.BeginFrame()
	if err := bar.Draw(NewViewport(g, NewRect(0, 0, 1, 10))); err != nil {
		t.Fatal(err)
	}
	router.EndFrame()
	if g.Get(0, 0).Rune != bar.ThumbRune {
		t.Fatal("scrollbar hidden while fresh")
	}

	router.SetTick(100)
	g.Clear()
	router.BeginFrame()
	if err := bar.Draw(NewViewport(g, NewRect(0, 0, 1, 10))); err != nil {
		t.Fatal(err)
	}
	router.EndFrame()
	if g.Line(0) != "" {
		t.Errorf("idle scrollbar still drawn: %q", g.String())
	}
}

func TestScrollbarClickJumpsOffset(t *testing.T) {
	scroll := NewScrollState(100, 10)
	bar := NewScrollbar(&scroll, NoID, nil)

	g := NewGrid(1, 10)
	if err := bar.Draw(NewViewport(g, NewRect(0, 0, 1, 10))); err != nil {
		t.Fatal(err)
	}

	bar.HandleEvent(
		MouseEvent{Kind: MousePress, Button: ButtonLeft, X: 0, Y: 9},
		InteractionState{Hovered: true},
	)
	if scroll.Offset() != 90 {
		t.Errorf("offset after click at track end = %d, want 90", scroll.Offset())
	}
}

func TestSliderKeysAndClamp(t *testing.T) {
	value := 50
	s := NewSlider(&value, 0, 100)
	s.Step = 10

	s.HandleEvent(KeyEvent{Key: KeyRight}, InteractionState{Focused: true})
	if value != 60 {
		t.Errorf("value after right = %d, want 60", value)
	}
	s.HandleEvent(KeyEvent{Key: KeyEnd}, InteractionState{Focused: true})
	if value != 100 {
		t.Errorf("value after end = %d, want 100", value)
	}
	s.HandleEvent(KeyEvent{Key: KeyRight}, InteractionState{Focused: true})
	if value != 100 {
		t.Errorf("value exceeded max: %d", value)
	}
	if s.HandleEvent(KeyEvent{Key: KeyRight}, InteractionState{}) {
		t.Error("unfocused slider consumed a key")
	}
}

func TestSliderClickSetsValue(t *testing.T) {
	value := 0
	s := NewSlider(&value, 0, 100)

	g := NewGrid(11, 1)
	if err := s.Draw(NewViewport(g, NewRect(0, 0, 11, 1))); err != nil {
		t.Fatal(err)
	}

	s.HandleEvent(
		MouseEvent{Kind: MousePress, Button: ButtonLeft, X: 10, Y: 0},
		InteractionState{Hovered: true},
	)
	if value != 100 {
		t.Errorf("value after click at right edge = %d, want 100", value)
	}
	s.HandleEvent(
		MouseEvent{Kind: MousePress, Button: ButtonLeft, X: 5, Y: 0},
		InteractionState{Hovered: true},
	)
	if value != 50 {
		t.Errorf("value after click at middle = %d, want 50", value)
	}
}

func TestTableSelectionFollowsKeys(t *testing.T) {
	rows := [][]string{{"a"}, {"b"}, {"c"}, {"d"}}
	selected := 0
	scroll := NewScrollState(0, 0)
	tbl := NewTable([]Column{{Header: "H", Width: Fill(1)}}, rows, &selected, &scroll)

	tbl.HandleEvent(KeyEvent{Key: KeyDown}, InteractionState{Focused: true})
	tbl.HandleEvent(KeyEvent{Key: KeyDown}, InteractionState{Focused: true})
	if selected != 2 {
		t.Errorf("selected = %d, want 2", selected)
	}
	tbl.HandleEvent(KeyEvent{Key: KeyEnd}, InteractionState{Focused: true})
	if selected != 3 {
		t.Errorf("selected after end = %d, want 3", selected)
	}
	tbl.HandleEvent(KeyEvent{Key: KeyDown}, InteractionState{Focused: true})
	if selected != 3 {
		t.Errorf("selection ran past the last row: %d", selected)
	}
}

func TestTableScrollKeepsSelectionVisible(t *testing.T) {
	var rows [][]string
	for i := 0; i < 20; i++ {
		rows = append(rows, []string{string(rune('a' + i))})
	}
	selected := 0
	scroll := NewScrollState(0, 0)
	tbl := NewTable([]Column{{Header: "H", Width: Fill(1)}}, rows, &selected, &scroll)

	g := NewGrid(5, 5) // header + 4 body rows
	vp := NewViewport(g, NewRect(0, 0, 5, 5))

	selected = 10
	if err := tbl.Draw(vp); err != nil {
		t.Fatal(err)
	}
	if off := scroll.Offset(); off != 7 {
		t.Errorf("offset = %d, want 7 (selection at window bottom)", off)
	}
	if g.Line(4) != "k" {
		t.Errorf("bottom row = %q, want selected row %q", g.Line(4), "k")
	}
}

func TestTableRendersHeader(t *testing.T) {
	rows := [][]string{{"x", "1"}}
	selected := 0
	tbl := NewTable(
		[]Column{
			{Header: "NAME", Width: Fill(1)},
			{Header: "N", Width: Fixed(2), Align: AlignRight},
		},
		rows, &selected, nil,
	)

	g := NewGrid(10, 3)
	if err := tbl.Draw(NewViewport(g, NewRect(0, 0, 10, 3))); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(g.Line(0), "NAME") {
		t.Errorf("header row = %q", g.Line(0))
	}
	if !strings.HasPrefix(g.Line(1), "x") {
		t.Errorf("body row = %q", g.Line(1))
	}
}

func TestInputStateEditing(t *testing.T) {
	s := NewInputState("ab")
	s.Insert('c')
	if s.Value() != "abc" {
		t.Fatalf("value = %q, want %q", s.Value(), "abc")
	}
	s.Left()
	s.Insert('X')
	if s.Value() != "abXc" {
		t.Errorf("insert mid-string = %q, want %q", s.Value(), "abXc")
	}
	s.Backspace()
	if s.Value() != "abc" {
		t.Errorf("backspace = %q, want %q", s.Value(), "abc")
	}
	s.Home()
	s.Delete()
	if s.Value() != "bc" {
		t.Errorf("delete at home = %q, want %q", s.Value(), "bc")
	}
	s.Backspace() // at position 0, no-op
	if s.Value() != "bc" {
		t.Errorf("backspace at start mutated value: %q", s.Value())
	}
}

func TestInputFieldTypingWhileFocused(t *testing.T) {
	state := NewInputState("")
	f := NewInputField(state)

	for _, r := range "hi" {
		f.HandleEvent(CharEvent{Rune: r}, InteractionState{Focused: true})
	}
	if state.Value() != "hi" {
		t.Errorf("value = %q, want %q", state.Value(), "hi")
	}

	if f.HandleEvent(CharEvent{Rune: 'x'}, InteractionState{}) {
		t.Error("unfocused field consumed a character")
	}
	if state.Value() != "hi" {
		t.Errorf("unfocused typing mutated value: %q", state.Value())
	}
}

func TestInputFieldSubmit(t *testing.T) {
	state := NewInputState("done")
	f := NewInputField(state)
	var got string
	f.OnSubmit = func(v string) { got = v }

	f.HandleEvent(KeyEvent{Key: KeyEnter}, InteractionState{Focused: true})
	if got != "done" {
		t.Errorf("submitted %q, want %q", got, "done")
	}
}

func TestInputFieldScrollsToCursor(t *testing.T) {
	state := NewInputState("abcdefghij") // cursor at end
	f := NewInputField(state)
	f.SetFocused(true)

	g := NewGrid(5, 1)
	if err := f.Draw(NewViewport(g, NewRect(0, 0, 5, 1))); err != nil {
		t.Fatal(err)
	}
	// window follows the cursor: last 4 runes plus the cursor cell
	if got := g.Line(0); got != "ghij" {
		t.Errorf("visible window = %q, want %q", got, "ghij")
	}
}

func TestInputFieldPlaceholder(t *testing.T) {
	f := NewInputField(NewInputState(""))
	f.Placeholder = "search"

	g := NewGrid(10, 1)
	if err := f.Draw(NewViewport(g, NewRect(0, 0, 10, 1))); err != nil {
		t.Fatal(err)
	}
	if g.Line(0) != "search" {
		t.Errorf("placeholder row = %q, want %q", g.Line(0), "search")
	}
}
