//go:build property
// +build property

package scrim

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestScrollStateProperties drives a scroll state with random operation
// sequences and checks the clamping invariant after every step.
func TestScrollStateProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("offset stays within [0, MaxOffset]", prop.ForAll(
		func(content, viewport int, ops []int) bool {
			s := NewScrollState(content, viewport)
			for _, op := range ops {
				switch {
				case op%5 == 0:
					s.SetContentLength(op % 500)
				case op%5 == 1:
					s.Resize(op % 100)
				case op%5 == 2:
					s.ScrollTo(op)
				case op%5 == 3:
					s.ScrollToEnd()
				default:
					s.ScrollBy(op%21 - 10)
				}
				if s.Offset() < 0 || s.Offset() > s.MaxOffset() {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 1000),
		gen.IntRange(0, 200),
		gen.SliceOf(gen.IntRange(0, 10000)),
	))

	properties.Property("thumb fits the track", prop.ForAll(
		func(content, viewport, offset, track int) bool {
			s := NewScrollState(content, viewport)
			s.ScrollTo(offset)
			pos, length := ThumbGeometry(s, track)
			if track <= 0 {
				return pos == 0 && length == 0
			}
			return length >= 1 && length <= track &&
				pos >= 0 && pos+length <= track
		},
		gen.IntRange(0, 5000),
		gen.IntRange(1, 300),
		gen.IntRange(0, 5000),
		gen.IntRange(0, 200),
	))

	properties.Property("track target stays within range", prop.ForAll(
		func(content, viewport, track, click int) bool {
			s := NewScrollState(content, viewport)
			target := TrackTarget(s, track, click)
			return target >= 0 && target <= s.MaxOffset()
		},
		gen.IntRange(0, 5000),
		gen.IntRange(1, 300),
		gen.IntRange(1, 200),
		gen.IntRange(-50, 300),
	))

	properties.TestingRun(t)
}
