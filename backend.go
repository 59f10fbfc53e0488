package scrim

import "time"

// Backend is the narrow contract the engine has with the terminal. The core
// depends only on this interface; implementations wrap an existing
// terminal-control layer (TcellBackend) or speak ANSI directly (AnsiBackend).
type Backend interface {
	// Init prepares the backend for use (allocates the terminal, starts
	// input decoding). Fini releases it. Fini must be safe to call after a
	// failed Init.
	Init() error
	Fini()

	// SetRawMode toggles raw input mode. Backends that can only operate raw
	// may treat this as a no-op after Init.
	SetRawMode(on bool) error

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// PollEvent blocks until an input event arrives or the timeout elapses.
	// A negative timeout blocks indefinitely. A nil event with a nil error
	// means the timeout expired.
	PollEvent(timeout time.Duration) (Event, error)

	// WriteSpan writes a horizontal run of cells at (row, col). Spans are
	// emitted by the diff renderer in row-major order and may be buffered
	// until Flush.
	WriteSpan(row, col int, cells []Cell) error

	// Flush commits buffered spans to the terminal.
	Flush() error
}
