package scrim

import "math"

// ScrollState models one axis of a scrollable surface: total content length,
// visible viewport length, and the current offset. Every mutation clamps the
// offset into [0, max(0, content-viewport)]; scroll arithmetic saturates and
// never errors.
//
// The state is owned by whichever widget instantiates it (ScrollBox, Slider)
// and is expected to be persisted by the host across frames, keyed by the
// same stable id discipline as the interaction router.
type ScrollState struct {
	content  int
	viewport int
	offset   int
}

// NewScrollState creates a clamped scroll state.
func NewScrollState(contentLength, viewportLength int) ScrollState {
	s := ScrollState{content: contentLength, viewport: viewportLength}
	s.clamp()
	return s
}

// ContentLength returns the total content length.
func (s *ScrollState) ContentLength() int { return s.content }

// ViewportLength returns the visible viewport length.
func (s *ScrollState) ViewportLength() int { return s.viewport }

// Offset returns the current clamped offset.
func (s *ScrollState) Offset() int { return s.offset }

// MaxOffset returns max(0, content-viewport).
func (s *ScrollState) MaxOffset() int {
	return max(0, s.content-s.viewport)
}

// Resize updates the viewport length and re-clamps the offset.
func (s *ScrollState) Resize(viewportLength int) {
	s.viewport = viewportLength
	s.clamp()
}

// SetContentLength updates the content length and re-clamps the offset,
// which handles shrinking content.
func (s *ScrollState) SetContentLength(n int) {
	s.content = n
	s.clamp()
}

// ScrollBy moves the offset by a signed delta, saturating at both ends.
func (s *ScrollState) ScrollBy(delta int) {
	s.offset += delta
	s.clamp()
}

// ScrollTo moves the offset to a target position, clamped. Used by slider
// drags and scrollbar click-to-position.
func (s *ScrollState) ScrollTo(target int) {
	s.offset = target
	s.clamp()
}

// ScrollToStart moves the offset to zero.
func (s *ScrollState) ScrollToStart() {
	s.offset = 0
}

// ScrollToEnd moves the offset to the maximum.
func (s *ScrollState) ScrollToEnd() {
	s.offset = s.MaxOffset()
}

// AtStart returns true when the offset is zero.
func (s *ScrollState) AtStart() bool { return s.offset == 0 }

// AtEnd returns true when the offset is at the maximum.
func (s *ScrollState) AtEnd() bool { return s.offset >= s.MaxOffset() }

// CanScroll returns true when there is any scrollable range.
func (s *ScrollState) CanScroll() bool { return s.MaxOffset() > 0 }

// Ratio returns the offset as a fraction of the scrollable range in [0, 1],
// or 0 when there is no range.
func (s *ScrollState) Ratio() float64 {
	m := s.MaxOffset()
	if m == 0 {
		return 0
	}
	return float64(s.offset) / float64(m)
}

func (s *ScrollState) clamp() {
	if s.offset < 0 {
		s.offset = 0
	}
	if m := s.MaxOffset(); s.offset > m {
		s.offset = m
	}
}

// ThumbGeometry computes the scrollbar thumb placement for a scroll state on
// a track of the given length. Both results are pure functions of the
// (content, viewport, offset) triple:
//
//	length   = max(1, round(viewport² / content)), clamped to the track
//	position = round(offset × (track - length) / maxOffset), 0 when maxOffset is 0
func ThumbGeometry(s ScrollState, trackLength int) (position, length int) {
	if trackLength <= 0 {
		return 0, 0
	}
	if s.content <= 0 || s.content <= s.viewport {
		return 0, trackLength
	}

	length = int(math.Round(float64(s.viewport) * float64(s.viewport) / float64(s.content)))
	if length < 1 {
		length = 1
	}
	if length > trackLength {
		length = trackLength
	}

	m := s.MaxOffset()
	if m == 0 || trackLength == length {
		return 0, length
	}
	position = int(math.Round(float64(s.offset) * float64(trackLength-length) / float64(m)))
	if position < 0 {
		position = 0
	}
	if position > trackLength-length {
		position = trackLength - length
	}
	return position, length
}

// TrackTarget inverts ThumbGeometry: given a click position on the track it
// returns the offset that centers the thumb there. Used for click-to-position
// and drag.
func TrackTarget(s ScrollState, trackLength, trackPos int) int {
	_, length := ThumbGeometry(s, trackLength)
	span := trackLength - length
	if span <= 0 {
		return 0
	}
	p := trackPos - length/2
	if p < 0 {
		p = 0
	}
	if p > span {
		p = span
	}
	return int(math.Round(float64(p) / float64(span) * float64(s.MaxOffset())))
}
