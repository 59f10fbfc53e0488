package scrim

import "testing"

func TestViewportTranslation(t *testing.T) {
	g := NewGrid(20, 10)
	vp := NewViewport(g, NewRect(5, 3, 10, 4))

	vp.Set(0, 0, NewCell('a', DefaultStyle()))
	vp.Set(9, 3, NewCell('b', DefaultStyle()))

	if g.Get(5, 3).Rune != 'a' {
		t.Errorf("local origin landed at %q, want at grid (5,3)", g.Get(5, 3).Rune)
	}
	if g.Get(14, 6).Rune != 'b' {
		t.Errorf("local (9,3) landed wrong, grid (14,6) = %q", g.Get(14, 6).Rune)
	}
}

func TestViewportClipsWrites(t *testing.T) {
	g := NewGrid(20, 10)
	vp := NewViewport(g, NewRect(5, 3, 10, 4))

	vp.Set(-1, 0, NewCell('x', DefaultStyle()))
	vp.Set(10, 0, NewCell('x', DefaultStyle()))
	vp.Set(0, 4, NewCell('x', DefaultStyle()))

	for y := 0; y < 10; y++ {
		if g.Line(y) != "" {
			t.Errorf("row %d written by clipped Set: %q", y, g.Line(y))
		}
	}
}

func TestViewportSubClipIntersectsAncestors(t *testing.T) {
	g := NewGrid(20, 10)
	parent := NewViewport(g, NewRect(2, 2, 8, 4))

	// child extends past the parent on the right
	sub := parent.Sub(NewRect(4, 1, 10, 2))

	sub.SetString(0, 0, "abcdefghij", DefaultStyle())

	// parent covers x 2..9; child starts at grid x 6, so only 4 columns fit
	if got := g.Line(3); got != "      abcd" {
		t.Errorf("clipped child row = %q, want %q", got, "      abcd")
	}
}

func TestViewportScrolled(t *testing.T) {
	g := NewGrid(10, 3)
	vp := NewViewport(g, NewRect(0, 0, 10, 3)).Scrolled(0, 2)

	// content row 2 appears at screen row 0; rows 0..1 scroll out of view
	vp.Set(0, 2, NewCell('v', DefaultStyle()))
	vp.Set(0, 0, NewCell('x', DefaultStyle()))

	if g.Get(0, 0).Rune != 'v' {
		t.Errorf("grid (0,0) = %q, want scrolled-in 'v'", g.Get(0, 0).Rune)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 10; x++ {
			if g.Get(x, y).Rune == 'x' {
				t.Fatalf("scrolled-out cell drawn at (%d,%d)", x, y)
			}
		}
	}
}

func TestViewportOutsideGridBounds(t *testing.T) {
	g := NewGrid(5, 5)
	vp := NewViewport(g, NewRect(3, 3, 10, 10))

	vp.Fill(NewCell('#', DefaultStyle()))

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			filled := g.Get(x, y).Rune == '#'
			inside := x >= 3 && y >= 3
			if filled != inside {
				t.Errorf("cell (%d,%d) filled=%v, want %v", x, y, filled, inside)
			}
		}
	}
}

func TestViewportDrawBorder(t *testing.T) {
	g := NewGrid(6, 4)
	vp := NewViewport(g, NewRect(0, 0, 6, 4))
	vp.DrawBorder(BorderSingle, DefaultStyle())

	want := "┌────┐\n│    │\n│    │\n└────┘"
	if got := g.String(); got != want {
		t.Errorf("border:\n%s\nwant:\n%s", got, want)
	}
}

func TestViewportBorderTooSmall(t *testing.T) {
	g := NewGrid(6, 4)
	vp := NewViewport(g, NewRect(0, 0, 1, 1))
	vp.DrawBorder(BorderSingle, DefaultStyle()) // must not panic or draw
	if g.Line(0) != "" {
		t.Errorf("1x1 viewport drew a border: %q", g.Line(0))
	}
}
