package scrim

import (
	"errors"
	"fmt"
)

// ErrNotATerminal is returned when a backend is pointed at something that
// is not an interactive terminal.
var ErrNotATerminal = errors.New("scrim: not a terminal")

// BackendError wraps an I/O failure from the terminal backend. It is fatal:
// the app loop stops and propagates it from Run.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("scrim: backend %s: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// backendErr wraps err unless it already is a *BackendError.
func backendErr(op string, err error) error {
	if err == nil {
		return nil
	}
	var be *BackendError
	if errors.As(err, &be) {
		return err
	}
	return &BackendError{Op: op, Err: err}
}

// DrawError reports that a widget's draw step failed, for example because of
// an impossible layout constraint. It aborts the current cycle's flush; the
// terminal keeps the previous frame and the loop continues.
type DrawError struct {
	Widget string
	Err    error
}

func (e *DrawError) Error() string {
	if e.Widget == "" {
		return fmt.Sprintf("scrim: draw: %v", e.Err)
	}
	return fmt.Sprintf("scrim: draw %s: %v", e.Widget, e.Err)
}

func (e *DrawError) Unwrap() error {
	return e.Err
}

// drawErrf builds a DrawError for the named widget.
func drawErrf(widget, format string, args ...any) error {
	return &DrawError{Widget: widget, Err: fmt.Errorf(format, args...)}
}
