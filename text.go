package scrim

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// WrapMode selects how text is broken at the viewport width.
type WrapMode uint8

const (
	WrapWord WrapMode = iota // break between words, splitting oversized words
	WrapChar                 // break between runes
	WrapNone                 // no breaking; lines are clipped
)

// Alignment positions a line inside its available width.
type Alignment uint8

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// runeWidth returns the display width of a rune.
func runeWidth(r rune) int {
	return runewidth.RuneWidth(r)
}

// StringWidth returns the display width of a string in terminal columns.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate cuts a string to at most width display columns.
func Truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "")
}

// TruncateEllipsis cuts a string to at most width columns, appending an
// ellipsis when anything was removed.
func TruncateEllipsis(s string, width int) string {
	return runewidth.Truncate(s, width, "…")
}

// WrapText breaks text into lines of at most width display columns. It is a
// pure function of (text, width, mode): the input is never mutated and the
// same input always yields the same lines. Explicit newlines always break.
func WrapText(text string, width int, mode WrapMode) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		switch mode {
		case WrapNone:
			lines = append(lines, para)
		case WrapChar:
			lines = append(lines, breakRunes(para, width)...)
		default:
			lines = append(lines, wrapWords(para, width)...)
		}
	}
	return lines
}

// wrapWords greedily packs words into lines, splitting words wider than the
// line on rune boundaries.
func wrapWords(para string, width int) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	cur := ""
	curW := 0
	flush := func() {
		lines = append(lines, cur)
		cur = ""
		curW = 0
	}

	for _, word := range words {
		w := StringWidth(word)

		if w > width {
			if curW > 0 {
				flush()
			}
			chunks := breakRunes(word, width)
			for _, chunk := range chunks[:len(chunks)-1] {
				lines = append(lines, chunk)
			}
			cur = chunks[len(chunks)-1]
			curW = StringWidth(cur)
			continue
		}

		switch {
		case curW == 0:
			cur, curW = word, w
		case curW+1+w <= width:
			cur += " " + word
			curW += 1 + w
		default:
			flush()
			cur, curW = word, w
		}
	}
	if curW > 0 {
		lines = append(lines, cur)
	}
	return lines
}

// breakRunes splits a string into chunks of at most width display columns.
func breakRunes(s string, width int) []string {
	if s == "" {
		return []string{""}
	}
	var chunks []string
	var b strings.Builder
	cols := 0
	for _, r := range s {
		w := runeWidth(r)
		if cols+w > width && cols > 0 {
			chunks = append(chunks, b.String())
			b.Reset()
			cols = 0
		}
		b.WriteRune(r)
		cols += w
	}
	if b.Len() > 0 {
		chunks = append(chunks, b.String())
	}
	return chunks
}

// alignOffset returns the x offset that positions a line of lineWidth
// columns inside width columns.
func alignOffset(lineWidth, width int, align Alignment) int {
	switch align {
	case AlignCenter:
		if width > lineWidth {
			return (width - lineWidth) / 2
		}
	case AlignRight:
		if width > lineWidth {
			return width - lineWidth
		}
	}
	return 0
}
