package scrim

import (
	"os"
	"time"
	"unicode/utf8"

	"golang.org/x/sys/unix"
)

// escapeTimeout distinguishes a standalone ESC keypress from the start of an
// escape sequence.
const escapeTimeout = 50 * time.Millisecond

// inputReader decodes raw stdin bytes into events: UTF-8 runes, control
// characters, CSI/SS3 key sequences and SGR mouse reports. It keeps a
// persistent buffer so partial sequences split across reads survive the
// boundary.
type inputReader struct {
	in      *os.File
	eventCh chan Event
	stopCh  chan struct{}
	doneCh  chan struct{}
	buf     []byte
}

func newInputReader(in *os.File) *inputReader {
	return &inputReader{
		in:      in,
		eventCh: make(chan Event, 256),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
		buf:     make([]byte, 0, 256),
	}
}

func (r *inputReader) start() {
	go r.readLoop()
}

func (r *inputReader) stop() {
	close(r.stopCh)
	select {
	case <-r.doneCh:
	case <-time.After(100 * time.Millisecond):
		// reader stuck on a blocking read, proceed anyway
	}
}

func (r *inputReader) events() <-chan Event {
	return r.eventCh
}

func (r *inputReader) send(ev Event) {
	select {
	case r.eventCh <- ev:
	case <-r.stopCh:
	}
}

// readLoop polls stdin so it can wake up both for the stop signal and for
// the ESC disambiguation timeout.
func (r *inputReader) readLoop() {
	defer close(r.doneCh)
	defer close(r.eventCh)

	fd := int(r.in.Fd())
	chunk := make([]byte, 256)

	for {
		select {
		case <-r.stopCh:
			return
		default:
		}

		fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		n, err := unix.Poll(fds, int(escapeTimeout.Milliseconds()))
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return
		}

		if n == 0 {
			// Timeout. A lone buffered ESC is a real Escape keypress.
			if len(r.buf) == 1 && r.buf[0] == 0x1b {
				r.send(KeyEvent{Key: KeyEscape})
				r.buf = r.buf[:0]
			}
			continue
		}

		count, err := r.in.Read(chunk)
		if err != nil || count == 0 {
			return
		}
		r.buf = append(r.buf, chunk[:count]...)

		consumed := r.parse(r.buf)
		if consumed > 0 {
			r.buf = append(r.buf[:0], r.buf[consumed:]...)
		}
	}
}

// parse decodes as many complete events as the buffer holds and returns the
// number of bytes consumed, stopping at the first incomplete sequence.
func (r *inputReader) parse(data []byte) int {
	i := 0
	for i < len(data) {
		b := data[i]

		if b == 0x1b {
			used, ok := r.parseEscape(data[i:])
			if !ok {
				return i
			}
			i += used
			continue
		}

		// control characters
		if b < 0x20 || b == 0x7f {
			switch b {
			case '\r', '\n':
				r.send(KeyEvent{Key: KeyEnter})
			case '\t':
				r.send(KeyEvent{Key: KeyTab})
			case 0x7f, 0x08:
				r.send(KeyEvent{Key: KeyBackspace})
			default:
				if b >= 0x01 && b <= 0x1a {
					r.send(CharEvent{Rune: rune('a' + b - 1), Mod: ModCtrl})
				}
			}
			i++
			continue
		}

		if b < utf8.RuneSelf {
			r.send(CharEvent{Rune: rune(b)})
			i++
			continue
		}

		if !utf8.FullRune(data[i:]) {
			return i // partial rune at buffer end
		}
		ru, size := utf8.DecodeRune(data[i:])
		if ru != utf8.RuneError {
			r.send(CharEvent{Rune: ru})
		}
		i += size
	}
	return i
}

// parseEscape decodes one sequence starting at an ESC byte. ok=false means
// the sequence is incomplete and more bytes are needed; a lone ESC is left
// in place for the timeout path to claim.
func (r *inputReader) parseEscape(data []byte) (used int, ok bool) {
	if len(data) < 2 {
		return 0, false
	}
	switch data[1] {
	case '[':
		return r.parseCSI(data)
	case 'O':
		return r.parseSS3(data)
	}
	// Alt+key
	if data[1] < 0x20 || data[1] == 0x7f {
		r.send(KeyEvent{Key: KeyEscape})
		return 1, true
	}
	if !utf8.FullRune(data[1:]) {
		return 0, false
	}
	ru, size := utf8.DecodeRune(data[1:])
	r.send(CharEvent{Rune: ru, Mod: ModAlt})
	return 1 + size, true
}

var csiTildeKeys = map[int]Key{
	1:  KeyHome,
	2:  KeyInsert,
	3:  KeyDelete,
	4:  KeyEnd,
	5:  KeyPageUp,
	6:  KeyPageDown,
	15: KeyF5,
	17: KeyF6,
	18: KeyF7,
	19: KeyF8,
	20: KeyF9,
	21: KeyF10,
	23: KeyF11,
	24: KeyF12,
}

// parseCSI decodes "ESC [ params final" sequences, including SGR mouse
// reports (ESC [ < b ; x ; y M/m).
func (r *inputReader) parseCSI(data []byte) (used int, ok bool) {
	mouse := false
	i := 2
	if i < len(data) && data[i] == '<' {
		mouse = true
		i++
	}

	params := []int{0}
	for ; i < len(data); i++ {
		c := data[i]
		switch {
		case c >= '0' && c <= '9':
			params[len(params)-1] = params[len(params)-1]*10 + int(c-'0')
		case c == ';':
			params = append(params, 0)
		case c >= 0x40 && c <= 0x7e:
			if mouse {
				r.sendMouse(params, c)
			} else {
				r.sendCSIKey(params, c)
			}
			return i + 1, true
		default:
			// unknown intermediate byte, drop the sequence
			return i + 1, true
		}
	}
	return 0, false
}

// csiModifiers decodes the xterm modifier parameter (value minus one is a
// shift/alt/ctrl bitmask).
func csiModifiers(params []int) Modifiers {
	if len(params) < 2 || params[1] < 2 {
		return ModNone
	}
	bits := params[1] - 1
	var mod Modifiers
	if bits&1 != 0 {
		mod |= ModShift
	}
	if bits&2 != 0 {
		mod |= ModAlt
	}
	if bits&4 != 0 {
		mod |= ModCtrl
	}
	return mod
}

func (r *inputReader) sendCSIKey(params []int, final byte) {
	mod := csiModifiers(params)
	switch final {
	case 'A':
		r.send(KeyEvent{Key: KeyUp, Mod: mod})
	case 'B':
		r.send(KeyEvent{Key: KeyDown, Mod: mod})
	case 'C':
		r.send(KeyEvent{Key: KeyRight, Mod: mod})
	case 'D':
		r.send(KeyEvent{Key: KeyLeft, Mod: mod})
	case 'H':
		r.send(KeyEvent{Key: KeyHome, Mod: mod})
	case 'F':
		r.send(KeyEvent{Key: KeyEnd, Mod: mod})
	case 'Z':
		r.send(KeyEvent{Key: KeyBacktab, Mod: ModShift})
	case '~':
		if key, found := csiTildeKeys[params[0]]; found {
			r.send(KeyEvent{Key: key, Mod: mod})
		}
	}
}

// sendMouse decodes an SGR mouse report. The button code carries the button
// in the low bits, motion at 32, wheel at 64, and modifiers at 4/8/16.
func (r *inputReader) sendMouse(params []int, final byte) {
	if len(params) < 3 {
		return
	}
	code, x, y := params[0], params[1]-1, params[2]-1

	var mod Modifiers
	if code&4 != 0 {
		mod |= ModShift
	}
	if code&8 != 0 {
		mod |= ModAlt
	}
	if code&16 != 0 {
		mod |= ModCtrl
	}

	ev := MouseEvent{X: x, Y: y, Mod: mod}
	switch {
	case code&64 != 0:
		if code&1 == 0 {
			ev.Kind = MouseWheelUp
		} else {
			ev.Kind = MouseWheelDown
		}
	case code&32 != 0:
		ev.Kind = MouseMove
		ev.Button = sgrButton(code)
	case final == 'M':
		ev.Kind = MousePress
		ev.Button = sgrButton(code)
	default:
		ev.Kind = MouseRelease
		ev.Button = sgrButton(code)
	}
	r.send(ev)
}

func sgrButton(code int) MouseButton {
	switch code & 3 {
	case 0:
		return ButtonLeft
	case 1:
		return ButtonMiddle
	case 2:
		return ButtonRight
	}
	return ButtonNone
}

// parseSS3 decodes "ESC O final" sequences (application-mode keys).
func (r *inputReader) parseSS3(data []byte) (used int, ok bool) {
	if len(data) < 3 {
		return 0, false
	}
	switch data[2] {
	case 'A':
		r.send(KeyEvent{Key: KeyUp})
	case 'B':
		r.send(KeyEvent{Key: KeyDown})
	case 'C':
		r.send(KeyEvent{Key: KeyRight})
	case 'D':
		r.send(KeyEvent{Key: KeyLeft})
	case 'H':
		r.send(KeyEvent{Key: KeyHome})
	case 'F':
		r.send(KeyEvent{Key: KeyEnd})
	case 'P':
		r.send(KeyEvent{Key: KeyF1})
	case 'Q':
		r.send(KeyEvent{Key: KeyF2})
	case 'R':
		r.send(KeyEvent{Key: KeyF3})
	case 'S':
		r.send(KeyEvent{Key: KeyF4})
	}
	return 3, true
}
