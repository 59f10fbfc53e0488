package scrim

import "testing"

func TestScrollClampsAtStart(t *testing.T) {
	s := NewScrollState(100, 10)
	s.ScrollBy(-5)
	if s.Offset() != 0 {
		t.Errorf("offset = %d, want 0", s.Offset())
	}
	if !s.AtStart() {
		t.Error("AtStart() = false, want true")
	}
}

func TestScrollClampsAtEnd(t *testing.T) {
	s := NewScrollState(100, 10)
	s.ScrollTo(1000)
	if s.Offset() != 90 {
		t.Errorf("offset = %d, want 90", s.Offset())
	}
	if !s.AtEnd() {
		t.Error("AtEnd() = false, want true")
	}
}

func TestScrollShrinkingContentClampsOffset(t *testing.T) {
	s := NewScrollState(100, 10)
	s.ScrollToEnd()
	s.SetContentLength(5)
	if s.Offset() != 0 {
		t.Errorf("offset after shrink = %d, want 0", s.Offset())
	}
	if s.CanScroll() {
		t.Error("CanScroll() = true with content smaller than viewport")
	}
}

func TestScrollResizeReclamps(t *testing.T) {
	s := NewScrollState(50, 10)
	s.ScrollToEnd() // 40
	s.Resize(45)
	if s.Offset() != 5 {
		t.Errorf("offset after resize = %d, want 5", s.Offset())
	}
}

func TestScrollRatio(t *testing.T) {
	s := NewScrollState(30, 10)
	if s.Ratio() != 0 {
		t.Errorf("Ratio at start = %v, want 0", s.Ratio())
	}
	s.ScrollToEnd()
	if s.Ratio() != 1 {
		t.Errorf("Ratio at end = %v, want 1", s.Ratio())
	}

	empty := NewScrollState(5, 10)
	if empty.Ratio() != 0 {
		t.Errorf("Ratio with no range = %v, want 0", empty.Ratio())
	}
}

func TestThumbGeometry(t *testing.T) {
	tests := []struct {
		name              string
		content, viewport int
		offset, track     int
		wantPos, wantLen  int
	}{
		{"top of long content", 100, 10, 0, 10, 0, 1},
		{"bottom of long content", 100, 10, 90, 10, 9, 1},
		{"middle of long content", 100, 10, 45, 10, 5, 1},
		{"short content fills track", 5, 10, 0, 10, 0, 10},
		{"content equals viewport", 10, 10, 0, 10, 0, 10},
		{"half visible", 20, 10, 0, 10, 0, 5},
		{"half visible scrolled", 20, 10, 10, 10, 5, 5},
		{"zero track", 100, 10, 0, 0, 0, 0},
		{"empty content", 0, 10, 0, 10, 0, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScrollState(tt.content, tt.viewport)
			s.ScrollTo(tt.offset)
			pos, length := ThumbGeometry(s, tt.track)
			if pos != tt.wantPos || length != tt.wantLen {
				t.Errorf("ThumbGeometry = (%d, %d), want (%d, %d)", pos, length, tt.wantPos, tt.wantLen)
			}
		})
	}
}

func TestThumbNeverShorterThanOne(t *testing.T) {
	s := NewScrollState(1_000_000, 10)
	_, length := ThumbGeometry(s, 10)
	if length < 1 {
		t.Errorf("thumb length = %d, want >= 1", length)
	}
}

func TestTrackTargetRoundTrip(t *testing.T) {
	s := NewScrollState(100, 10)

	if got := TrackTarget(s, 10, 0); got != 0 {
		t.Errorf("click at track start = %d, want 0", got)
	}
	if got := TrackTarget(s, 10, 9); got != 90 {
		t.Errorf("click at track end = %d, want 90", got)
	}
	if got := TrackTarget(s, 10, 100); got != 90 {
		t.Errorf("click past track end = %d, want clamped 90", got)
	}

	// no scrollable range means no target
	small := NewScrollState(5, 10)
	if got := TrackTarget(small, 10, 5); got != 0 {
		t.Errorf("target with no range = %d, want 0", got)
	}
}
