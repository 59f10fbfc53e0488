package scrim

// Viewport is a rectangular drawing region over a grid with a clip boundary
// and an optional scroll offset. Child coordinates are local to the
// viewport's content origin, translated by the scroll offset, then clipped
// against the viewport's own rect intersected with every ancestor clip.
// Writes outside the clip are dropped.
//
// Viewports are scoped, borrowed views: a widget receives one for the
// duration of its Draw call and must not retain it.
type Viewport struct {
	grid *Grid
	rect Rect // this viewport's region in absolute grid coordinates
	clip Rect // rect intersected with all ancestor clips
	dx   int  // horizontal scroll offset
	dy   int  // vertical scroll offset
}

// NewViewport creates a root viewport covering the given region of a grid.
func NewViewport(g *Grid, rect Rect) *Viewport {
	bounds := Rect{W: g.Width(), H: g.Height()}
	return &Viewport{
		grid: g,
		rect: rect,
		clip: rect.Intersect(bounds),
	}
}

// Sub returns a child viewport for a region given in this viewport's local
// (content) coordinates. The child's clip is the intersection of its region
// with this viewport's clip, so a child can never draw outside an ancestor.
func (v *Viewport) Sub(local Rect) *Viewport {
	abs := local.Translate(v.rect.X-v.dx, v.rect.Y-v.dy)
	return &Viewport{
		grid: v.grid,
		rect: abs,
		clip: abs.Intersect(v.clip),
	}
}

// Scrolled returns a copy of the viewport with the given scroll offset.
// Content drawn at local (x, y) appears at (x-dx, y-dy) within the region.
func (v *Viewport) Scrolled(dx, dy int) *Viewport {
	c := *v
	c.dx = dx
	c.dy = dy
	return &c
}

// Size returns the viewport's region dimensions.
func (v *Viewport) Size() (width, height int) {
	return v.rect.W, v.rect.H
}

// Width returns the viewport's region width.
func (v *Viewport) Width() int { return v.rect.W }

// Height returns the viewport's region height.
func (v *Viewport) Height() int { return v.rect.H }

// Bounds returns the viewport's region in absolute grid coordinates. Widgets
// use this to register interaction rects with the router.
func (v *Viewport) Bounds() Rect {
	return v.rect
}

// AbsRect converts a rectangle in local coordinates to absolute grid
// coordinates, applying the scroll offset.
func (v *Viewport) AbsRect(local Rect) Rect {
	return local.Translate(v.rect.X-v.dx, v.rect.Y-v.dy)
}

// Set writes a cell at local coordinates, translated and clipped.
func (v *Viewport) Set(x, y int, c Cell) {
	ax := v.rect.X + x - v.dx
	ay := v.rect.Y + y - v.dy
	if !v.clip.Contains(ax, ay) {
		return
	}
	v.grid.Set(ax, ay, c)
}

// Get returns the cell at local coordinates, or an empty cell outside the
// clip.
func (v *Viewport) Get(x, y int) Cell {
	ax := v.rect.X + x - v.dx
	ay := v.rect.Y + y - v.dy
	if !v.clip.Contains(ax, ay) {
		return EmptyCell()
	}
	return v.grid.Get(ax, ay)
}

// SetString writes a string at local coordinates with per-cell clipping.
// Returns the number of columns consumed (clipped cells still consume their
// columns so layout stays deterministic).
func (v *Viewport) SetString(x, y int, s string, style Style) int {
	cols := 0
	for _, r := range s {
		w := runeWidth(r)
		if w == 0 {
			continue
		}
		v.Set(x, y, NewCell(r, style))
		if w == 2 {
			v.Set(x+1, y, Cell{Rune: 0, Style: style})
		}
		x += w
		cols += w
	}
	return cols
}

// Fill fills the viewport's visible region with the given cell.
func (v *Viewport) Fill(c Cell) {
	v.FillRect(Rect{W: v.rect.W, H: v.rect.H}, c)
}

// FillRect fills a local rectangle with the given cell, clipped.
func (v *Viewport) FillRect(r Rect, c Cell) {
	for dy := 0; dy < r.H; dy++ {
		for dx := 0; dx < r.W; dx++ {
			v.Set(r.X+dx, r.Y+dy, c)
		}
	}
}

// HLine draws a horizontal run of the given rune at local coordinates.
func (v *Viewport) HLine(x, y, length int, r rune, style Style) {
	for i := 0; i < length; i++ {
		v.Set(x+i, y, NewCell(r, style))
	}
}

// VLine draws a vertical run of the given rune at local coordinates.
func (v *Viewport) VLine(x, y, length int, r rune, style Style) {
	for i := 0; i < length; i++ {
		v.Set(x, y+i, NewCell(r, style))
	}
}

// DrawBorder draws a border just inside the viewport's region.
func (v *Viewport) DrawBorder(border BorderStyle, style Style) {
	w, h := v.rect.W, v.rect.H
	if w < 2 || h < 2 {
		return
	}
	v.Set(0, 0, NewCell(border.TopLeft, style))
	v.Set(w-1, 0, NewCell(border.TopRight, style))
	v.Set(0, h-1, NewCell(border.BottomLeft, style))
	v.Set(w-1, h-1, NewCell(border.BottomRight, style))
	for i := 1; i < w-1; i++ {
		v.Set(i, 0, NewCell(border.Horizontal, style))
		v.Set(i, h-1, NewCell(border.Horizontal, style))
	}
	for i := 1; i < h-1; i++ {
		v.Set(0, i, NewCell(border.Vertical, style))
		v.Set(w-1, i, NewCell(border.Vertical, style))
	}
}

// BorderStyle defines the characters used for drawing borders.
type BorderStyle struct {
	Horizontal  rune
	Vertical    rune
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
}

// Standard border styles.
var (
	BorderSingle = BorderStyle{
		Horizontal: '─', Vertical: '│',
		TopLeft: '┌', TopRight: '┐', BottomLeft: '└', BottomRight: '┘',
	}
	BorderRounded = BorderStyle{
		Horizontal: '─', Vertical: '│',
		TopLeft: '╭', TopRight: '╮', BottomLeft: '╰', BottomRight: '╯',
	}
	BorderDouble = BorderStyle{
		Horizontal: '═', Vertical: '║',
		TopLeft: '╔', TopRight: '╗', BottomLeft: '╚', BottomRight: '╝',
	}
)
