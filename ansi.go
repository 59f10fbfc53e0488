package scrim

import (
	"bytes"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mattn/go-runewidth"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// AnsiBackend speaks ANSI escape sequences directly over stdin/stdout. It
// owns raw mode via termios, watches SIGWINCH for resizes, and batches span
// writes into one buffer per flush so a frame lands in a single syscall.
type AnsiBackend struct {
	in    *os.File
	out   io.Writer
	fd    int
	mouse bool

	width  int
	height int

	origTermios *unix.Termios
	rawMode     bool

	buf       bytes.Buffer
	lastStyle Style
	haveStyle bool

	reader  *inputReader
	sigChan chan os.Signal
	resize  chan ResizeEvent
}

// NewAnsiBackend creates a direct-ANSI backend over stdin/stdout.
func NewAnsiBackend(mouse bool) *AnsiBackend {
	return &AnsiBackend{
		in:    os.Stdin,
		out:   os.Stdout,
		fd:    int(os.Stdout.Fd()),
		mouse: mouse,
	}
}

// Init implements Backend.
func (b *AnsiBackend) Init() error {
	if !term.IsTerminal(b.fd) {
		return ErrNotATerminal
	}

	w, h, err := b.terminalSize()
	if err != nil {
		w, h = 80, 24
	}
	b.width, b.height = w, h

	b.writeString("\x1b[?1049h") // alternate screen
	b.writeString("\x1b[2J")     // clear
	b.writeString("\x1b[H")      // home
	b.writeString("\x1b[?25l")   // hide cursor
	if b.mouse {
		// button + drag tracking, SGR encoding
		b.writeString("\x1b[?1000h\x1b[?1002h\x1b[?1006h")
	}

	b.sigChan = make(chan os.Signal, 1)
	b.resize = make(chan ResizeEvent, 1)
	signal.Notify(b.sigChan, syscall.SIGWINCH)
	go b.watchResize()

	b.reader = newInputReader(b.in)
	b.reader.start()
	return nil
}

// Fini implements Backend.
func (b *AnsiBackend) Fini() {
	if b.reader != nil {
		b.reader.stop()
	}
	if b.sigChan != nil {
		signal.Stop(b.sigChan)
	}
	if b.mouse {
		b.writeString("\x1b[?1006l\x1b[?1002l\x1b[?1000l")
	}
	b.writeString("\x1b[0m")
	b.writeString("\x1b[?25h")   // show cursor
	b.writeString("\x1b[?1049l") // leave alternate screen
	b.SetRawMode(false)
}

// SetRawMode implements Backend.
func (b *AnsiBackend) SetRawMode(on bool) error {
	if on == b.rawMode {
		return nil
	}
	if on {
		termios, err := unix.IoctlGetTermios(b.fd, ioctlGetTermios)
		if err != nil {
			return backendErr("raw mode", err)
		}
		b.origTermios = termios

		raw := *termios
		raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
		raw.Oflag &^= unix.OPOST
		raw.Cflag |= unix.CS8
		raw.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
		raw.Cc[unix.VMIN] = 1
		raw.Cc[unix.VTIME] = 0

		if err := unix.IoctlSetTermios(b.fd, ioctlSetTermios, &raw); err != nil {
			return backendErr("raw mode", err)
		}
		b.rawMode = true
		return nil
	}
	if b.origTermios != nil {
		if err := unix.IoctlSetTermios(b.fd, ioctlSetTermios, b.origTermios); err != nil {
			return backendErr("raw mode", err)
		}
	}
	b.rawMode = false
	return nil
}

func (b *AnsiBackend) terminalSize() (int, int, error) {
	ws, err := unix.IoctlGetWinsize(b.fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}

// watchResize only measures and forwards; width/height are owned by the
// polling thread, which applies them when it delivers the event. Size must
// never race with a flush in progress.
func (b *AnsiBackend) watchResize() {
	for range b.sigChan {
		w, h, err := b.terminalSize()
		if err != nil {
			continue
		}
		select {
		case b.resize <- ResizeEvent{Width: w, Height: h}:
		default:
		}
	}
}

// applyResize records the new size on the polling thread and drops no-op
// notifications.
func (b *AnsiBackend) applyResize(ev ResizeEvent) bool {
	if ev.Width == b.width && ev.Height == b.height {
		return false
	}
	b.width, b.height = ev.Width, ev.Height
	return true
}

// Size implements Backend.
func (b *AnsiBackend) Size() (width, height int) {
	return b.width, b.height
}

// PollEvent implements Backend. A nil return always means the full timeout
// elapsed; duplicate resize notifications are swallowed without cutting the
// wait short.
func (b *AnsiBackend) PollEvent(timeout time.Duration) (Event, error) {
	if timeout < 0 {
		for {
			select {
			case ev := <-b.resize:
				if b.applyResize(ev) {
					return ev, nil
				}
			case ev, ok := <-b.reader.events():
				if !ok {
					return nil, backendErr("poll", io.EOF)
				}
				return ev, nil
			}
		}
	}
	deadline := time.Now().Add(timeout)
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	for {
		select {
		case ev := <-b.resize:
			if b.applyResize(ev) {
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
		case ev, ok := <-b.reader.events():
			if !ok {
				return nil, backendErr("poll", io.EOF)
			}
			return ev, nil
		case <-timer.C:
			return nil, nil
		}
	}
}

// WriteSpan implements Backend. Cells are appended to the frame buffer with
// one cursor position per contiguous run; zero-rune placeholders after wide
// runes emit nothing, the wide rune already advanced the terminal cursor.
func (b *AnsiBackend) WriteSpan(row, col int, cells []Cell) error {
	b.moveTo(row, col)
	for _, c := range cells {
		if c.Rune == 0 {
			continue
		}
		if !b.haveStyle || c.Style != b.lastStyle {
			b.writeStyle(c.Style)
			b.lastStyle = c.Style
			b.haveStyle = true
		}
		b.buf.WriteRune(c.Rune)
		if runewidth.RuneWidth(c.Rune) == 0 {
			// zero-width rune still occupies its cell, repad
			b.buf.WriteByte(' ')
		}
	}
	return nil
}

// Flush implements Backend.
func (b *AnsiBackend) Flush() error {
	if b.buf.Len() == 0 {
		return nil
	}
	b.buf.WriteString("\x1b[0m")
	b.haveStyle = false
	_, err := b.out.Write(b.buf.Bytes())
	b.buf.Reset()
	return backendErr("flush", err)
}

func (b *AnsiBackend) moveTo(row, col int) {
	b.buf.WriteString("\x1b[")
	b.writeInt(row + 1)
	b.buf.WriteByte(';')
	b.writeInt(col + 1)
	b.buf.WriteByte('H')
}

func (b *AnsiBackend) writeStyle(style Style) {
	b.buf.WriteString("\x1b[0")
	if style.Attr.Has(AttrBold) {
		b.buf.WriteString(";1")
	}
	if style.Attr.Has(AttrDim) {
		b.buf.WriteString(";2")
	}
	if style.Attr.Has(AttrItalic) {
		b.buf.WriteString(";3")
	}
	if style.Attr.Has(AttrUnderline) {
		b.buf.WriteString(";4")
	}
	if style.Attr.Has(AttrBlink) {
		b.buf.WriteString(";5")
	}
	if style.Attr.Has(AttrReverse) {
		b.buf.WriteString(";7")
	}
	if style.Attr.Has(AttrStrike) {
		b.buf.WriteString(";9")
	}
	b.writeColor(style.FG, true)
	b.writeColor(style.BG, false)
	b.buf.WriteByte('m')
}

func (b *AnsiBackend) writeColor(c Color, fg bool) {
	switch c.Mode {
	case ColorDefault:
		if fg {
			b.buf.WriteString(";39")
		} else {
			b.buf.WriteString(";49")
		}
	case Color16:
		base := 30
		if !fg {
			base = 40
		}
		b.buf.WriteByte(';')
		if c.Index >= 8 {
			b.writeInt(base + 60 + int(c.Index-8))
		} else {
			b.writeInt(base + int(c.Index))
		}
	case Color256:
		if fg {
			b.buf.WriteString(";38;5;")
		} else {
			b.buf.WriteString(";48;5;")
		}
		b.writeInt(int(c.Index))
	case ColorRGB:
		if fg {
			b.buf.WriteString(";38;2;")
		} else {
			b.buf.WriteString(";48;2;")
		}
		b.writeInt(int(c.R))
		b.buf.WriteByte(';')
		b.writeInt(int(c.G))
		b.buf.WriteByte(';')
		b.writeInt(int(c.B))
	}
}

// writeInt appends a decimal integer without allocating.
func (b *AnsiBackend) writeInt(n int) {
	if n == 0 {
		b.buf.WriteByte('0')
		return
	}
	var scratch [10]byte
	i := len(scratch)
	for n > 0 {
		i--
		scratch[i] = byte('0' + n%10)
		n /= 10
	}
	b.buf.Write(scratch[i:])
}

func (b *AnsiBackend) writeString(s string) {
	io.WriteString(b.out, s)
}
