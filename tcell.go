package scrim

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// TcellBackend drives the terminal through tcell. tcell owns raw mode, the
// alternate screen and input decoding; this backend translates between its
// event and style models and ours.
//
// tcell's PollEvent has no timeout form, so Init starts a pump goroutine
// that forwards events into a channel PollEvent can select on.
type TcellBackend struct {
	screen tcell.Screen
	mouse  bool

	lastButtons tcell.ButtonMask

	events chan tcell.Event
	quit   chan struct{}
}

// NewTcellBackend creates a tcell-based backend. Mouse reporting is enabled
// during Init when mouse is true.
func NewTcellBackend(mouse bool) *TcellBackend {
	return &TcellBackend{mouse: mouse}
}

// Init implements Backend.
func (b *TcellBackend) Init() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	if b.mouse {
		screen.EnableMouse()
	}
	b.screen = screen
	b.events = make(chan tcell.Event, 16)
	b.quit = make(chan struct{})
	go b.pump()
	return nil
}

func (b *TcellBackend) pump() {
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case b.events <- ev:
		case <-b.quit:
			return
		}
	}
}

// Fini implements Backend.
func (b *TcellBackend) Fini() {
	if b.screen == nil {
		return
	}
	close(b.quit)
	b.screen.Fini()
	b.screen = nil
}

// SetRawMode implements Backend. tcell is always raw once initialized.
func (b *TcellBackend) SetRawMode(bool) error {
	return nil
}

// Size implements Backend.
func (b *TcellBackend) Size() (width, height int) {
	return b.screen.Size()
}

// PollEvent implements Backend. tcell events with no mapping (paste, focus)
// are skipped without consuming the timeout: a nil return always means the
// full timeout elapsed.
func (b *TcellBackend) PollEvent(timeout time.Duration) (Event, error) {
	if timeout < 0 {
		for {
			if ev := b.translate(<-b.events); ev != nil {
				return ev, nil
			}
		}
	}
	deadline := time.Now().Add(timeout)
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	for {
		select {
		case tev := <-b.events:
			if ev := b.translate(tev); ev != nil {
				return ev, nil
			}
			remaining := time.Until(deadline)
			if remaining <= 0 {
				return nil, nil
			}
			if !timer.Stop() {
				<-timer.C
			}
			timer.Reset(remaining)
		case <-timer.C:
			return nil, nil
		}
	}
}

// translate maps a tcell event onto our event types. Events with no
// equivalent come back nil and PollEvent keeps waiting.
func (b *TcellBackend) translate(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventResize:
		w, h := e.Size()
		return ResizeEvent{Width: w, Height: h}
	case *tcell.EventKey:
		mod := modFromTcell(e.Modifiers())
		if e.Key() == tcell.KeyRune {
			return CharEvent{Rune: e.Rune(), Mod: mod}
		}
		if key, ok := keyFromTcell(e.Key()); ok {
			return KeyEvent{Key: key, Mod: mod}
		}
		// Control characters arrive as distinct tcell keys.
		if e.Key() >= tcell.KeyCtrlA && e.Key() <= tcell.KeyCtrlZ {
			r := rune('a' + (e.Key() - tcell.KeyCtrlA))
			return CharEvent{Rune: r, Mod: mod | ModCtrl}
		}
		return KeyEvent{Key: KeyUnknown, Mod: mod}
	case *tcell.EventMouse:
		x, y := e.Position()
		kind, button := mouseFromTcell(e.Buttons(), b.lastButtons)
		b.lastButtons = e.Buttons()
		return MouseEvent{Kind: kind, Button: button, X: x, Y: y, Mod: modFromTcell(e.Modifiers())}
	}
	return nil
}

func modFromTcell(m tcell.ModMask) Modifiers {
	var mod Modifiers
	if m&tcell.ModShift != 0 {
		mod |= ModShift
	}
	if m&tcell.ModAlt != 0 {
		mod |= ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		mod |= ModCtrl
	}
	return mod
}

var tcellKeys = map[tcell.Key]Key{
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBacktab:    KeyBacktab,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyPgUp:       KeyPageUp,
	tcell.KeyPgDn:       KeyPageDown,
	tcell.KeyInsert:     KeyInsert,
	tcell.KeyF1:         KeyF1,
	tcell.KeyF2:         KeyF2,
	tcell.KeyF3:         KeyF3,
	tcell.KeyF4:         KeyF4,
	tcell.KeyF5:         KeyF5,
	tcell.KeyF6:         KeyF6,
	tcell.KeyF7:         KeyF7,
	tcell.KeyF8:         KeyF8,
	tcell.KeyF9:         KeyF9,
	tcell.KeyF10:        KeyF10,
	tcell.KeyF11:        KeyF11,
	tcell.KeyF12:        KeyF12,
}

func keyFromTcell(k tcell.Key) (Key, bool) {
	key, ok := tcellKeys[k]
	return key, ok
}

// mouseFromTcell classifies a button-state transition. tcell reports the
// full button mask each event, so presses and releases show up as edges.
func mouseFromTcell(now, prev tcell.ButtonMask) (MouseKind, MouseButton) {
	switch {
	case now&tcell.WheelUp != 0:
		return MouseWheelUp, ButtonNone
	case now&tcell.WheelDown != 0:
		return MouseWheelDown, ButtonNone
	}
	pressed := now &^ prev
	released := prev &^ now
	switch {
	case pressed&tcell.Button1 != 0:
		return MousePress, ButtonLeft
	case pressed&tcell.Button2 != 0:
		return MousePress, ButtonMiddle
	case pressed&tcell.Button3 != 0:
		return MousePress, ButtonRight
	case released&tcell.Button1 != 0:
		return MouseRelease, ButtonLeft
	case released&tcell.Button2 != 0:
		return MouseRelease, ButtonMiddle
	case released&tcell.Button3 != 0:
		return MouseRelease, ButtonRight
	}
	return MouseMove, ButtonNone
}

// WriteSpan implements Backend. Zero-rune cells are wide-rune placeholders;
// tcell manages trailing cells itself, so they are skipped.
func (b *TcellBackend) WriteSpan(row, col int, cells []Cell) error {
	x := col
	for _, c := range cells {
		if c.Rune == 0 {
			x++
			continue
		}
		b.screen.SetContent(x, row, c.Rune, nil, styleToTcell(c.Style))
		x++
	}
	return nil
}

// Flush implements Backend.
func (b *TcellBackend) Flush() error {
	b.screen.Show()
	return nil
}

func styleToTcell(s Style) tcell.Style {
	st := tcell.StyleDefault.
		Foreground(colorToTcell(s.FG)).
		Background(colorToTcell(s.BG))
	if s.Attr.Has(AttrBold) {
		st = st.Bold(true)
	}
	if s.Attr.Has(AttrDim) {
		st = st.Dim(true)
	}
	if s.Attr.Has(AttrItalic) {
		st = st.Italic(true)
	}
	if s.Attr.Has(AttrUnderline) {
		st = st.Underline(true)
	}
	if s.Attr.Has(AttrBlink) {
		st = st.Blink(true)
	}
	if s.Attr.Has(AttrReverse) {
		st = st.Reverse(true)
	}
	if s.Attr.Has(AttrStrike) {
		st = st.StrikeThrough(true)
	}
	return st
}

func colorToTcell(c Color) tcell.Color {
	switch c.Mode {
	case Color16:
		return tcell.PaletteColor(int(c.Index))
	case Color256:
		return tcell.PaletteColor(int(c.Index))
	case ColorRGB:
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	default:
		return tcell.ColorDefault
	}
}
