package scrim

// Event is the wire contract between a terminal backend and the application.
// Concrete types: CharEvent, KeyEvent, MouseEvent, ResizeEvent, FrameEvent.
type Event interface {
	isEvent()
}

// Modifiers is a bitmask of modifier keys held during an event.
type Modifiers uint8

const (
	ModNone  Modifiers = 0
	ModShift Modifiers = 1 << iota
	ModAlt
	ModCtrl
)

// Has returns true if the mask contains the given modifier.
func (m Modifiers) Has(mod Modifiers) bool {
	return m&mod != 0
}

// Key identifies a non-character key.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyDelete
	KeyTab
	KeyBacktab
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// MouseKind classifies a mouse event.
type MouseKind uint8

const (
	MousePress MouseKind = iota
	MouseRelease
	MouseMove
	MouseWheelUp
	MouseWheelDown
)

// MouseButton identifies which button a press/release refers to.
type MouseButton uint8

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// CharEvent is a printable character keypress.
type CharEvent struct {
	Rune rune
	Mod  Modifiers
}

// KeyEvent is a non-character key with modifiers.
type KeyEvent struct {
	Key Key
	Mod Modifiers
}

// MouseEvent is a pointer event at an absolute cell position.
type MouseEvent struct {
	Kind   MouseKind
	Button MouseButton
	X, Y   int
	Mod    Modifiers
}

// ResizeEvent reports a new terminal size.
type ResizeEvent struct {
	Width, Height int
}

// FrameEvent is a synthesized fixed-rate timer tick.
type FrameEvent struct {
	Tick uint64
}

func (CharEvent) isEvent()   {}
func (KeyEvent) isEvent()    {}
func (MouseEvent) isEvent()  {}
func (ResizeEvent) isEvent() {}
func (FrameEvent) isEvent()  {}
