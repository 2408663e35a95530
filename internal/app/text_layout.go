package app

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"notes/internal/app/sanitizer"
)

const (
	snippetColumns = 30
	snippetTail    = "..."
)

func padLines(lines []string, width int) string {
	if width <= 0 {
		return strings.Join(lines, "\n")
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = padToWidth(line, width)
	}
	return strings.Join(out, "\n")
}

func padToWidth(text string, width int) string {
	lineWidth := xansi.StringWidth(text)
	if lineWidth >= width {
		return text
	}
	return text + strings.Repeat(" ", width-lineWidth)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return text
	}
	if xansi.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return "…"
	}
	return xansi.Cut(text, 0, width-1) + "…"
}

func indentBlock(block string, spaces int) string {
	if spaces <= 0 {
		return block
	}
	prefix := strings.Repeat(" ", spaces)
	lines := strings.Split(block, "\n")
	for i := range lines {
		lines[i] = prefix + lines[i]
	}
	return strings.Join(lines, "\n")
}

// overlayBlock replaces the lines of base starting at row y with block.
func overlayBlock(base, block string, y int) string {
	if block == "" {
		return base
	}
	lines := strings.Split(base, "\n")
	for i, line := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 {
			continue
		}
		for row >= len(lines) {
			lines = append(lines, "")
		}
		lines[row] = line
	}
	return strings.Join(lines, "\n")
}

// wrapPlain word-wraps plain note content, then hard-wraps words that are
// still wider than the panel.
func wrapPlain(text string, width int) string {
	if width <= 0 {
		return text
	}
	wrapped := wordwrap.String(text, width)
	return xansi.Hardwrap(wrapped, width, true)
}

// ContentSnippet is the note preview: the first thirty columns of the
// content on one line, with a trailing "..." when anything was cut.
func ContentSnippet(content string) string {
	flat := strings.Join(strings.Fields(sanitizer.Content(content)), " ")
	if runewidth.StringWidth(flat) <= snippetColumns {
		return flat
	}
	return runewidth.Truncate(flat, snippetColumns, "") + snippetTail
}
