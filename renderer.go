package scrim

import (
	"fmt"
	"os"
)

// FlushStats holds statistics from the most recent flush.
type FlushStats struct {
	RowsCompared int
	SpansWritten int
	CellsWritten int
	FullRepaint  bool
}

// debugFlush enables flush diagnostics on stderr via SCRIM_DEBUG_FLUSH.
var debugFlush = os.Getenv("SCRIM_DEBUG_FLUSH") != ""

// Renderer owns the front (last flushed) and working (being built) grids and
// performs diff-based flushes through a Backend. The two grids are swapped on
// flush, never aliased and never copied.
type Renderer struct {
	backend Backend
	front   *Grid
	working *Grid

	// forceFull treats the whole front grid as different on the next flush
	// (set on resize).
	forceFull bool

	stats FlushStats
}

// NewRenderer creates a renderer sized to the backend's current terminal.
func NewRenderer(b Backend) *Renderer {
	w, h := b.Size()
	return &Renderer{
		backend:   b,
		front:     NewGrid(w, h),
		working:   NewGrid(w, h),
		forceFull: true, // nothing on screen yet
	}
}

// Working returns the grid the current frame is being built into.
func (r *Renderer) Working() *Grid {
	return r.working
}

// Size returns the current grid dimensions.
func (r *Renderer) Size() (width, height int) {
	return r.working.Size()
}

// Stats returns statistics from the last Flush.
func (r *Renderer) Stats() FlushStats {
	return r.stats
}

// Resize reallocates both grids and forces a full repaint on the next flush.
func (r *Renderer) Resize(width, height int) {
	r.front.Resize(width, height)
	r.working.Resize(width, height)
	r.forceFull = true
}

// Flush compares the working grid against the front grid, emits one
// WriteSpan per contiguous run of differing cells in row-major order, then
// swaps the grids so the working grid becomes the new front. If no cell
// differs, no backend write happens at all.
//
// A terminal resized mid-frame is detected here as a size mismatch with the
// backend; both grids are reallocated and the frame is repainted in full on
// the following flush rather than failing.
func (r *Renderer) Flush() error {
	if bw, bh := r.backend.Size(); bw != r.working.Width() || bh != r.working.Height() {
		r.Resize(bw, bh)
	}

	width, height := r.working.Size()
	stats := FlushStats{FullRepaint: r.forceFull}

	for y := 0; y < height; y++ {
		if !r.forceFull && !r.working.RowDirty(y) {
			continue
		}
		stats.RowsCompared++

		runStart := -1
		for x := 0; x <= width; x++ {
			changed := false
			if x < width {
				changed = r.working.Get(x, y) != r.front.Get(x, y) || r.forceFull
			}
			switch {
			case changed && runStart < 0:
				runStart = x
			case !changed && runStart >= 0:
				span := r.working.cells[y*width+runStart : y*width+x]
				if err := r.backend.WriteSpan(y, runStart, span); err != nil {
					return backendErr("write", err)
				}
				stats.SpansWritten++
				stats.CellsWritten += len(span)
				runStart = -1
			}
		}
	}

	if stats.SpansWritten > 0 {
		if err := r.backend.Flush(); err != nil {
			return backendErr("flush", err)
		}
	}

	if debugFlush {
		fmt.Fprintf(os.Stderr, "flush: %d rows compared, %d spans, %d cells, full=%v\n",
			stats.RowsCompared, stats.SpansWritten, stats.CellsWritten, stats.FullRepaint)
	}

	// Ownership transfer: working becomes the new front, the old front is
	// reused as the next working grid. Callers clear it before drawing.
	r.front, r.working = r.working, r.front
	r.front.ClearDirty()
	r.working.MarkAllDirty()
	r.forceFull = false
	r.stats = stats
	return nil
}
