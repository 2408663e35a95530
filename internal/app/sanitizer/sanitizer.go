// Package sanitizer removes terminal control sequences from note text that
// came from the API before it is drawn.
package sanitizer

import (
	"regexp"
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// Mouse reports whose ESC byte was lost arrive as plain text, e.g. "[<65;1;2M".
var orphanedMousePattern = regexp.MustCompile(`\[<[0-9]+;[0-9]+;[0-9]+[Mm]`)

type Mode int

const (
	// Block keeps line breaks. Used for note content.
	Block Mode = iota
	// Line folds line breaks into single spaces. Used for titles and table cells.
	Line
)

const defaultTabWidth = 4

type Sanitizer struct {
	mode     Mode
	tabWidth int
}

func New(mode Mode) *Sanitizer {
	return &Sanitizer{mode: mode, tabWidth: defaultTabWidth}
}

func (s *Sanitizer) Sanitize(input string) string {
	if input == "" {
		return input
	}
	input = xansi.Strip(input)
	input = orphanedMousePattern.ReplaceAllString(input, "")
	input = strings.ReplaceAll(input, "\r\n", "\n")

	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		switch {
		case r == '\n' || r == '\r':
			if s.mode == Line {
				b.WriteByte(' ')
			} else {
				b.WriteByte('\n')
			}
		case r == '\t':
			if s.mode == Line {
				b.WriteByte(' ')
			} else {
				b.WriteString(strings.Repeat(" ", s.tabWidth))
			}
		case r < 32 || r == 127 || (r >= 0x80 && r < 0xa0):
		default:
			b.WriteRune(r)
		}
	}
	out := b.String()
	if s.mode == Line {
		out = strings.TrimSpace(out)
	}
	return out
}

var (
	lineSanitizer  = New(Line)
	blockSanitizer = New(Block)
)

// Title returns a single-line, control-free title.
func Title(title string) string {
	return lineSanitizer.Sanitize(title)
}

func Content(content string) string {
	return blockSanitizer.Sanitize(content)
}
