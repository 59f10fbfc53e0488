package scrim

import "math"

// Direction selects the main axis a container stacks children along.
type Direction uint8

const (
	Vertical Direction = iota
	Horizontal
)

// Constraint describes how much of the parent's content area a child takes
// along the main axis: a fixed cell count, a fraction of the parent, or a
// weighted share of whatever remains.
type Constraint struct {
	kind   constraintKind
	cells  int
	frac   float64
	weight float64
}

type constraintKind uint8

const (
	constraintFixed constraintKind = iota
	constraintPercent
	constraintFill
)

// Fixed allocates an exact number of cells.
func Fixed(n int) Constraint {
	return Constraint{kind: constraintFixed, cells: n}
}

// Percent allocates a fraction (0..1) of the parent's content area.
func Percent(frac float64) Constraint {
	return Constraint{kind: constraintPercent, frac: frac}
}

// Fill allocates a weighted share of the space remaining after fixed and
// percent children.
func Fill(weight float64) Constraint {
	return Constraint{kind: constraintFill, weight: weight}
}

// ResolveConstraints splits total cells among the constraints in declaration
// order. Fixed and percent allocations are clamped to what remains; fill
// children share the leftover by weight, with the final fill child absorbing
// rounding slack. Results are never negative.
func ResolveConstraints(total int, cons []Constraint) []int {
	sizes := make([]int, len(cons))
	remaining := max(0, total)

	var fillIdx []int
	var fillWeight float64
	for i, c := range cons {
		switch c.kind {
		case constraintFixed:
			sizes[i] = min(max(0, c.cells), remaining)
			remaining -= sizes[i]
		case constraintPercent:
			want := int(math.Round(c.frac * float64(total)))
			sizes[i] = min(max(0, want), remaining)
			remaining -= sizes[i]
		case constraintFill:
			fillIdx = append(fillIdx, i)
			fillWeight += c.weight
		}
	}

	if len(fillIdx) > 0 && fillWeight > 0 {
		left := remaining
		for n, i := range fillIdx {
			var share int
			if n == len(fillIdx)-1 {
				share = left
			} else {
				share = int(float64(remaining) * cons[i].weight / fillWeight)
			}
			sizes[i] = min(max(0, share), left)
			left -= sizes[i]
		}
	}
	return sizes
}

// child pairs a widget with its main-axis constraint.
type child struct {
	widget     Widget
	constraint Constraint
}

// Container lays out children along one axis and paints its own decoration
// (background, border, title, padding) underneath them. Children never draw
// outside the container's content area: their viewports are clipped, not
// bounds-checked.
type Container struct {
	dir      Direction
	children []child
	gap      int

	border      *BorderStyle
	borderStyle Style
	title       string
	padding     Padding
	background  *Style
}

// NewContainer creates an empty container stacking along the given axis.
func NewContainer(dir Direction) *Container {
	return &Container{dir: dir}
}

// Add appends a child with its constraint. Children are resolved in
// declaration order.
func (c *Container) Add(w Widget, con Constraint) *Container {
	c.children = append(c.children, child{widget: w, constraint: con})
	return c
}

// Border sets the border characters and style.
func (c *Container) Border(b BorderStyle, style Style) *Container {
	c.border = &b
	c.borderStyle = style
	return c
}

// Title sets a title rendered into the top border.
func (c *Container) Title(title string) *Container {
	c.title = title
	return c
}

// Pad sets interior padding inside the border.
func (c *Container) Pad(p Padding) *Container {
	c.padding = p
	return c
}

// Background fills the container's area with the style's colors before
// children draw.
func (c *Container) Background(style Style) *Container {
	c.background = &style
	return c
}

// Gap sets spacing between children along the main axis.
func (c *Container) Gap(n int) *Container {
	c.gap = n
	return c
}

// contentRect returns the area children may occupy, in local coordinates.
func (c *Container) contentRect(w, h int) Rect {
	r := Rect{W: w, H: h}
	if c.border != nil {
		r = r.Inset(1)
	}
	return c.padding.apply(r)
}

// childRects computes each child's rect within the content area.
func (c *Container) childRects(content Rect) []Rect {
	cons := make([]Constraint, len(c.children))
	for i, ch := range c.children {
		cons[i] = ch.constraint
	}

	total := content.H
	if c.dir == Horizontal {
		total = content.W
	}
	// Gaps come off the top before constraints are resolved.
	if n := len(c.children); n > 1 {
		total = max(0, total-c.gap*(n-1))
	}
	sizes := ResolveConstraints(total, cons)

	rects := make([]Rect, len(c.children))
	pos := 0
	for i, size := range sizes {
		if c.dir == Vertical {
			rects[i] = Rect{X: content.X, Y: content.Y + pos, W: content.W, H: size}
		} else {
			rects[i] = Rect{X: content.X + pos, Y: content.Y, W: size, H: content.H}
		}
		pos += size + c.gap
	}
	return rects
}

// Measure implements Widget. Containers take the space they are offered.
func (c *Container) Measure(available Rect) (int, int) {
	return available.W, available.H
}

// Draw implements Widget: decoration first, then children in declaration
// order, each in a clipped sub-viewport.
func (c *Container) Draw(vp *Viewport) error {
	w, h := vp.Size()

	if c.background != nil {
		vp.Fill(NewCell(' ', *c.background))
	}
	if c.border != nil {
		vp.DrawBorder(*c.border, c.borderStyle)
		if c.title != "" && w > 4 {
			t := TruncateEllipsis(c.title, w-4)
			vp.SetString(2, 0, " "+t+" ", c.borderStyle)
		}
	}

	content := c.contentRect(w, h)
	if content.Empty() {
		return nil
	}
	for i, rect := range c.childRects(content) {
		if rect.Empty() || c.children[i].widget == nil {
			continue
		}
		if err := c.children[i].widget.Draw(vp.Sub(rect)); err != nil {
			return err
		}
	}
	return nil
}

// HandleEvent forwards the event to children topmost-first (reverse
// declaration order) until one consumes it.
func (c *Container) HandleEvent(ev Event, state InteractionState) bool {
	for i := len(c.children) - 1; i >= 0; i-- {
		if nilSafeHandle(c.children[i].widget, ev, state) {
			return true
		}
	}
	return false
}
