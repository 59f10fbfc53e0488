package scrim

// Rect is a rectangle in cell coordinates. Width or height of zero (or less)
// means the rectangle is empty.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle from position and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Empty returns true if the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains returns true if the point lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Intersect returns the overlap of two rectangles, or an empty Rect.
func (r Rect) Intersect(o Rect) Rect {
	x1 := max(r.X, o.X)
	y1 := max(r.Y, o.Y)
	x2 := min(r.X+r.W, o.X+o.W)
	y2 := min(r.Y+r.H, o.Y+o.H)
	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// Inset returns the rectangle shrunk by n cells on every side. Collapses to
// empty rather than inverting.
func (r Rect) Inset(n int) Rect {
	r.X += n
	r.Y += n
	r.W -= 2 * n
	r.H -= 2 * n
	if r.W < 0 {
		r.W = 0
	}
	if r.H < 0 {
		r.H = 0
	}
	return r
}

// Translate returns the rectangle shifted by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Padding is per-edge spacing inside a container's border.
type Padding struct {
	Top, Right, Bottom, Left int
}

// UniformPadding returns equal padding on all four edges.
func UniformPadding(n int) Padding {
	return Padding{Top: n, Right: n, Bottom: n, Left: n}
}

// apply shrinks a rectangle by the padding, collapsing to empty.
func (p Padding) apply(r Rect) Rect {
	r.X += p.Left
	r.Y += p.Top
	r.W -= p.Left + p.Right
	r.H -= p.Top + p.Bottom
	if r.W < 0 {
		r.W = 0
	}
	if r.H < 0 {
		r.H = 0
	}
	return r
}
