package scrim

import (
	"errors"
	"testing"
	"time"
)

// recordedSpan is one WriteSpan call captured by the fake backend.
type recordedSpan struct {
	row, col int
	text     string
}

// fakeBackend records span writes and serves scripted events, standing in
// for a real terminal in renderer and app loop tests.
type fakeBackend struct {
	width, height int
	spans         []recordedSpan
	flushes       int
	events        []Event
	writeErr      error
	pollErr       error
}

func newFakeBackend(w, h int) *fakeBackend {
	return &fakeBackend{width: w, height: h}
}

func (b *fakeBackend) Init() error           { return nil }
func (b *fakeBackend) Fini()                 {}
func (b *fakeBackend) SetRawMode(bool) error { return nil }
func (b *fakeBackend) Size() (int, int)      { return b.width, b.height }

func (b *fakeBackend) PollEvent(timeout time.Duration) (Event, error) {
	if b.pollErr != nil {
		return nil, b.pollErr
	}
	if len(b.events) == 0 {
		return nil, nil // timeout
	}
	ev := b.events[0]
	b.events = b.events[1:]
	return ev, nil
}

func (b *fakeBackend) WriteSpan(row, col int, cells []Cell) error {
	if b.writeErr != nil {
		return b.writeErr
	}
	text := ""
	for _, c := range cells {
		if c.Rune != 0 {
			text += string(c.Rune)
		}
	}
	b.spans = append(b.spans, recordedSpan{row: row, col: col, text: text})
	return nil
}

func (b *fakeBackend) Flush() error {
	b.flushes++
	return nil
}

func (b *fakeBackend) reset() {
	b.spans = nil
	b.flushes = 0
}

func TestRendererFirstFlushIsFullRepaint(t *testing.T) {
	be := newFakeBackend(8, 2)
	r := NewRenderer(be)

	if err := r.Flush(); err != nil {
		t.Fatal(err)
	}
	if !r.Stats().FullRepaint {
		t.Error("first flush not a full repaint")
	}
	if r.Stats().CellsWritten != 16 {
		t.Errorf("cells written = %d, want 16", r.Stats().CellsWritten)
	}
}

func TestRendererUnchangedFrameWritesNothing(t *testing.T) {
	be := newFakeBackend(40, 4)
	r := NewRenderer(be)

	r.Working().SetString(0, 0, "Press 'q' to quit", DefaultStyle())
	if err := r.Flush(); err != nil {
		t.Fatal(err)
	}
	be.reset()

	// identical frame
	r.Working().Clear()
	r.Working().SetString(0, 0, "Press 'q' to quit", DefaultStyle())
	if err := r.Flush(); err != nil {
		t.Fatal(err)
	}

	if len(be.spans) != 0 {
		t.Errorf("unchanged frame wrote %d spans: %+v", len(be.spans), be.spans)
	}
	if be.flushes != 0 {
		t.Errorf("unchanged frame flushed backend %d times", be.flushes)
	}
}

func TestRendererChangedRunBecomesOneSpan(t *testing.T) {
	be := newFakeBackend(40, 4)
	r := NewRenderer(be)
	if err := r.Flush(); err != nil { // settle initial repaint
		t.Fatal(err)
	}
	be.reset()

	r.Working().Clear()
	r.Working().SetString(0, 1, "Press 'q' to quit", DefaultStyle())
	if err := r.Flush(); err != nil {
		t.Fatal(err)
	}

	if len(be.spans) != 1 {
		t.Fatalf("got %d spans, want 1: %+v", len(be.spans), be.spans)
	}
	s := be.spans[0]
	if s.row != 1 || s.col != 0 || s.text != "Press 'q' to quit" {
		t.Errorf("span = %+v", s)
	}
}

func TestRendererSeparateRunsBecomeSeparateSpans(t *testing.T) {
	be := newFakeBackend(20, 1)
	r := NewRenderer(be)
	if err := r.Flush(); err != nil {
		t.Fatal(err)
	}
	be.reset()

	r.Working().Clear()
	r.Working().SetString(0, 0, "ab", DefaultStyle())
	r.Working().SetString(10, 0, "cd", DefaultStyle())
	if err := r.Flush(); err != nil {
		t.Fatal(err)
	}

	if len(be.spans) != 2 {
		t.Fatalf("got %d spans, want 2: %+v", len(be.spans), be.spans)
	}
	if be.spans[0].col != 0 || be.spans[0].text != "ab" {
		t.Errorf("first span = %+v", be.spans[0])
	}
	if be.spans[1].col != 10 || be.spans[1].text != "cd" {
		t.Errorf("second span = %+v", be.spans[1])
	}
}

func TestRendererStyleOnlyChangeIsWritten(t *testing.T) {
	be := newFakeBackend(10, 1)
	r := NewRenderer(be)
	r.Working().SetString(0, 0, "hi", DefaultStyle())
	if err := r.Flush(); err != nil {
		t.Fatal(err)
	}
	be.reset()

	r.Working().Clear()
	r.Working().SetString(0, 0, "hi", DefaultStyle().Bold())
	if err := r.Flush(); err != nil {
		t.Fatal(err)
	}

	if len(be.spans) != 1 || be.spans[0].text != "hi" {
		t.Errorf("style change spans = %+v, want one 'hi' span", be.spans)
	}
}

func TestRendererResizeForcesFullRepaint(t *testing.T) {
	be := newFakeBackend(10, 2)
	r := NewRenderer(be)
	if err := r.Flush(); err != nil {
		t.Fatal(err)
	}
	be.reset()

	be.width, be.height = 12, 3 // terminal resized behind our back
	r.Working().Clear()
	if err := r.Flush(); err != nil {
		t.Fatal(err)
	}

	if w, h := r.Size(); w != 12 || h != 3 {
		t.Errorf("renderer size = %dx%d, want 12x3", w, h)
	}
	if !r.Stats().FullRepaint {
		t.Error("flush after resize not a full repaint")
	}
	if r.Stats().CellsWritten != 36 {
		t.Errorf("cells written = %d, want 36", r.Stats().CellsWritten)
	}
}

func TestRendererWriteErrorPropagates(t *testing.T) {
	be := newFakeBackend(4, 1)
	be.writeErr = errors.New("broken pipe")
	r := NewRenderer(be)

	err := r.Flush()
	var berr *BackendError
	if !errors.As(err, &berr) {
		t.Fatalf("err = %v, want *BackendError", err)
	}
}

func TestRendererFlushIsIdempotent(t *testing.T) {
	be := newFakeBackend(10, 2)
	r := NewRenderer(be)

	draw := func() {
		r.Working().Clear()
		r.Working().SetString(1, 0, "steady", DefaultStyle())
	}

	draw()
	if err := r.Flush(); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		be.reset()
		draw()
		if err := r.Flush(); err != nil {
			t.Fatal(err)
		}
		if len(be.spans) != 0 {
			t.Fatalf("iteration %d wrote %d spans, want 0", i, len(be.spans))
		}
	}
}
