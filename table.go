package scrim

// Column describes one table column: a header and a width constraint.
// Constraints resolve against the table width the same way container
// children do.
type Column struct {
	Header string
	Width  Constraint
	Align  Alignment
}

// Table renders rows of cells under a header, with a selectable row and
// vertical scrolling. Selection and scroll state are host-owned so they
// survive the per-frame rebuild; the table keeps the selected row inside
// the visible window as it moves.
type Table struct {
	Columns     []Column
	Rows        [][]string
	Selected    *int
	Scroll      *ScrollState
	HeaderStyle Style
	RowStyle    Style
	SelectStyle Style
	colGap      int
}

// NewTable creates a table bound to host-owned selection and scroll state.
func NewTable(columns []Column, rows [][]string, selected *int, scroll *ScrollState) *Table {
	return &Table{
		Columns:     columns,
		Rows:        rows,
		Selected:    selected,
		Scroll:      scroll,
		HeaderStyle: DefaultStyle().Bold(),
		RowStyle:    DefaultStyle(),
		SelectStyle: DefaultStyle().Reverse(),
		colGap:      1,
	}
}

// Gap sets the spacing between columns.
func (t *Table) Gap(n int) *Table {
	t.colGap = n
	return t
}

func (t *Table) colWidths(total int) []int {
	cons := make([]Constraint, len(t.Columns))
	for i, c := range t.Columns {
		cons[i] = c.Width
	}
	gaps := t.colGap * max(0, len(t.Columns)-1)
	return ResolveConstraints(max(0, total-gaps), cons)
}

func (t *Table) clampSelection() {
	if t.Selected == nil {
		return
	}
	if *t.Selected >= len(t.Rows) {
		*t.Selected = len(t.Rows) - 1
	}
	if *t.Selected < 0 {
		*t.Selected = 0
	}
}

// scrollToSelection nudges the offset the minimum distance needed to bring
// the selected row into the visible window.
func (t *Table) scrollToSelection() {
	if t.Selected == nil || t.Scroll == nil {
		return
	}
	sel := *t.Selected
	if sel < t.Scroll.Offset() {
		t.Scroll.ScrollTo(sel)
	} else if bottom := t.Scroll.Offset() + t.Scroll.ViewportLength(); sel >= bottom {
		t.Scroll.ScrollTo(sel - t.Scroll.ViewportLength() + 1)
	}
}

func (t *Table) drawRow(vp *Viewport, y int, cells []string, widths []int, style Style) {
	x := 0
	for i, w := range widths {
		if i < len(cells) && w > 0 {
			text := Truncate(cells[i], w)
			align := AlignLeft
			if i < len(t.Columns) {
				align = t.Columns[i].Align
			}
			vp.SetString(x+alignOffset(StringWidth(text), w, align), y, text, style)
		}
		x += w + t.colGap
	}
}

// Measure implements Widget: header plus all rows, capped by the offer.
func (t *Table) Measure(available Rect) (int, int) {
	return available.W, min(1+len(t.Rows), available.H)
}

// Draw implements Widget.
func (t *Table) Draw(vp *Viewport) error {
	w, h := vp.Size()
	if w <= 0 || h <= 1 {
		return nil
	}
	widths := t.colWidths(w)
	t.clampSelection()

	t.drawRow(vp, 0, headers(t.Columns), widths, t.HeaderStyle)

	body := h - 1
	start := 0
	if t.Scroll != nil {
		t.Scroll.SetContentLength(len(t.Rows))
		t.Scroll.Resize(body)
		t.scrollToSelection()
		start = t.Scroll.Offset()
	}

	for y := 0; y < body && start+y < len(t.Rows); y++ {
		row := start + y
		style := t.RowStyle
		if t.Selected != nil && row == *t.Selected {
			style = t.SelectStyle
			vp.FillRect(Rect{Y: 1 + y, W: w, H: 1}, NewCell(' ', style))
		}
		t.drawRow(vp, 1+y, t.Rows[row], widths, style)
	}
	return nil
}

func headers(cols []Column) []string {
	hs := make([]string, len(cols))
	for i, c := range cols {
		hs[i] = c.Header
	}
	return hs
}

// HandleEvent implements Widget: selection keys while focused, wheel while
// hovered.
func (t *Table) HandleEvent(ev Event, state InteractionState) bool {
	switch e := ev.(type) {
	case MouseEvent:
		if !state.Hovered || t.Scroll == nil {
			return false
		}
		switch e.Kind {
		case MouseWheelUp:
			t.Scroll.ScrollBy(-1)
			return true
		case MouseWheelDown:
			t.Scroll.ScrollBy(1)
			return true
		}
	case KeyEvent:
		if !state.Focused || t.Selected == nil {
			return false
		}
		switch e.Key {
		case KeyUp:
			*t.Selected--
			t.clampSelection()
			return true
		case KeyDown:
			*t.Selected++
			t.clampSelection()
			return true
		case KeyPageUp:
			if t.Scroll != nil {
				*t.Selected -= t.Scroll.ViewportLength()
			}
			t.clampSelection()
			return true
		case KeyPageDown:
			if t.Scroll != nil {
				*t.Selected += t.Scroll.ViewportLength()
			}
			t.clampSelection()
			return true
		case KeyHome:
			*t.Selected = 0
			return true
		case KeyEnd:
			*t.Selected = len(t.Rows) - 1
			t.clampSelection()
			return true
		}
	}
	return false
}
