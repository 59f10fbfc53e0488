package scrim

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Grid is a fixed-size 2D array of styled cells representing one full screen
// frame. Writes outside the bounds are dropped, never wrapped and never a
// panic: widgets draw speculatively and rely on clipping.
type Grid struct {
	cells  []Cell
	width  int
	height int

	// dirty marks rows written since the last ClearDirty. The diff renderer
	// skips clean rows entirely.
	dirty []bool
}

// NewGrid creates a grid of the given dimensions filled with empty cells.
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([]Cell, width*height)
	empty := EmptyCell()
	for i := range cells {
		cells[i] = empty
	}
	return &Grid{
		cells:  cells,
		width:  width,
		height: height,
		dirty:  make([]bool, height),
	}
}

// Width returns the grid width.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height.
func (g *Grid) Height() int { return g.height }

// Size returns the grid dimensions.
func (g *Grid) Size() (width, height int) {
	return g.width, g.height
}

// InBounds returns true if the coordinates fall inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// Get returns the cell at the given coordinates, or an empty cell when out
// of bounds.
func (g *Grid) Get(x, y int) Cell {
	if !g.InBounds(x, y) {
		return EmptyCell()
	}
	return g.cells[g.index(x, y)]
}

// Set writes a cell at the given coordinates. Out-of-bounds writes are
// silently dropped.
func (g *Grid) Set(x, y int, c Cell) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[g.index(x, y)] = c
	g.dirty[y] = true
}

// SetString writes a string starting at (x, y) with the given style and
// returns the number of columns consumed. Double-width runes occupy two
// cells; the trailing cell holds a zero rune placeholder so the diff
// renderer can skip it.
func (g *Grid) SetString(x, y int, s string, style Style) int {
	cols := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		g.Set(x, y, NewCell(r, style))
		if w == 2 {
			g.Set(x+1, y, Cell{Rune: 0, Style: style})
		}
		x += w
		cols += w
	}
	return cols
}

// Fill fills the entire grid with the given cell.
func (g *Grid) Fill(c Cell) {
	for i := range g.cells {
		g.cells[i] = c
	}
	for y := range g.dirty {
		g.dirty[y] = true
	}
}

// Clear resets the grid to empty cells with the default style.
func (g *Grid) Clear() {
	g.Fill(EmptyCell())
}

// FillRect fills a rectangular region with the given cell, clipped to the
// grid.
func (g *Grid) FillRect(r Rect, c Cell) {
	for dy := 0; dy < r.H; dy++ {
		for dx := 0; dx < r.W; dx++ {
			g.Set(r.X+dx, r.Y+dy, c)
		}
	}
}

// HLine draws a horizontal run of the given rune.
func (g *Grid) HLine(x, y, length int, r rune, style Style) {
	for i := 0; i < length; i++ {
		g.Set(x+i, y, NewCell(r, style))
	}
}

// VLine draws a vertical run of the given rune.
func (g *Grid) VLine(x, y, length int, r rune, style Style) {
	for i := 0; i < length; i++ {
		g.Set(x, y+i, NewCell(r, style))
	}
}

// RowDirty reports whether the row has been written since the last
// ClearDirty.
func (g *Grid) RowDirty(y int) bool {
	if y < 0 || y >= g.height {
		return false
	}
	return g.dirty[y]
}

// MarkAllDirty flags every row for the next diff pass.
func (g *Grid) MarkAllDirty() {
	for y := range g.dirty {
		g.dirty[y] = true
	}
}

// ClearDirty resets the dirty-row flags.
func (g *Grid) ClearDirty() {
	for y := range g.dirty {
		g.dirty[y] = false
	}
}

// Resize reallocates the grid to new dimensions, preserving content where it
// fits. All rows are marked dirty.
func (g *Grid) Resize(width, height int) {
	if width == g.width && height == g.height {
		return
	}
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	cells := make([]Cell, width*height)
	empty := EmptyCell()
	for i := range cells {
		cells[i] = empty
	}

	minW := min(width, g.width)
	minH := min(height, g.height)
	for y := 0; y < minH; y++ {
		copy(cells[y*width:y*width+minW], g.cells[y*g.width:y*g.width+minW])
	}

	g.cells = cells
	g.width = width
	g.height = height
	g.dirty = make([]bool, height)
	g.MarkAllDirty()
}

// Line returns the text content of a single row with trailing spaces
// removed.
func (g *Grid) Line(y int) string {
	if y < 0 || y >= g.height {
		return ""
	}
	var b strings.Builder
	lastNonSpace := -1
	for x := 0; x < g.width; x++ {
		r := g.cells[g.index(x, y)].Rune
		if r == 0 {
			continue // placeholder half of a wide rune
		}
		b.WriteRune(r)
		if r != ' ' {
			lastNonSpace = b.Len()
		}
	}
	if lastNonSpace < 0 {
		return ""
	}
	return b.String()[:lastNonSpace]
}

// String renders the grid as text, one line per row, for tests and
// debugging.
func (g *Grid) String() string {
	var b strings.Builder
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			r := g.cells[g.index(x, y)].Rune
			if r == 0 {
				continue
			}
			b.WriteRune(r)
		}
		if y < g.height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
