package sanitizer

import "testing"

func TestSanitizeStripsEscapeSequences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "color", input: "\x1b[31mred text\x1b[0m", expected: "red text"},
		{name: "cursor position", input: "\x1b[10;20Hposition", expected: "position"},
		{name: "private mode", input: "\x1b[?25lhidden", expected: "hidden"},
		{name: "sgr mouse", input: "hello\x1b[<65;113;33Mworld", expected: "helloworld"},
		{name: "orphaned mouse", input: "a[<65;113;33Mb", expected: "ab"},
		{name: "osc title", input: "\x1b]0;pwned\x07note", expected: "note"},
		{name: "osc52 with st", input: "\x1b]52;c;aGk=\x1b\\after", expected: "after"},
		{name: "bell and nul", input: "a\x07b\x00c", expected: "abc"},
		{name: "unicode kept", input: "héllo 世界", expected: "héllo 世界"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Content(tc.input); got != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestContentKeepsLinesAndExpandsTabs(t *testing.T) {
	got := Content("one\r\ntwo\n\tthree")
	if got != "one\ntwo\n    three" {
		t.Fatalf("unexpected content %q", got)
	}
}

func TestTitleFoldsToOneLine(t *testing.T) {
	got := Title("  first\nsecond\tthird \x1b[1mbold\x1b[0m  ")
	if got != "first second third bold" {
		t.Fatalf("unexpected title %q", got)
	}
}

func TestSanitizeEmpty(t *testing.T) {
	if got := New(Line).Sanitize(""); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
