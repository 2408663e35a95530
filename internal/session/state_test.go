package session

import (
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"notes/internal/types"
)

func TestClipTitleCountsRunes(t *testing.T) {
	long := strings.Repeat("é", types.MaxTitleLength+5)
	clipped := ClipTitle(long)
	if got := utf8.RuneCountInString(clipped); got != types.MaxTitleLength {
		t.Fatalf("expected %d runes, got %d", types.MaxTitleLength, got)
	}
	if ClipTitle("short") != "short" {
		t.Fatalf("expected short title untouched")
	}
}

func TestSetDraftClipsTitle(t *testing.T) {
	s := NewState(ThemeLight).BeginCreate().SetDraft(strings.Repeat("x", 200), "body")
	if len(s.Draft.Title) != types.MaxTitleLength {
		t.Fatalf("expected clipped title, got %d", len(s.Draft.Title))
	}
}

func TestTransitionsDoNotShareNotes(t *testing.T) {
	base := NewState(ThemeLight).NotesLoaded([]types.Note{{ID: "1", Title: "a"}, {ID: "2", Title: "b"}})
	updated := base.NoteUpdated(types.Note{ID: "1", Title: "changed"})
	if base.Notes[0].Title != "a" {
		t.Fatalf("expected receiver untouched, got %q", base.Notes[0].Title)
	}
	if updated.Notes[0].Title != "changed" {
		t.Fatalf("expected update applied, got %q", updated.Notes[0].Title)
	}

	clone := base.Clone()
	clone.Notes[1].Title = "mutated"
	if base.Notes[1].Title != "b" {
		t.Fatalf("expected clone to copy notes")
	}
}

func TestViewProjection(t *testing.T) {
	loaded := NewState(ThemeLight).NotesLoaded([]types.Note{{ID: "1", Title: "a", Content: "c"}})

	cases := []struct {
		name  string
		state State
		kind  ViewKind
	}{
		{name: "welcome", state: NewState(ThemeLight), kind: ViewWelcome},
		{name: "note", state: loaded, kind: ViewNote},
		{name: "dangling", state: loaded.SelectNote("gone"), kind: ViewWelcome},
		{name: "editor", state: loaded.BeginEdit(), kind: ViewEditor},
		{name: "loading", state: loaded.StartLoading(false), kind: ViewLoading},
		{name: "error", state: loaded.Failed(MsgLoadFailed), kind: ViewError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.state.View().Kind; got != tc.kind {
				t.Fatalf("expected %v, got %v", tc.kind, got)
			}
		})
	}

	if p := loaded.Failed(MsgLoadFailed).View(); p.Message != MsgLoadFailed {
		t.Fatalf("unexpected error message %q", p.Message)
	}
	if p := loaded.BeginCreate().View(); !p.Creating {
		t.Fatalf("expected create editor")
	}
	if p := loaded.BeginEdit().View(); p.Creating || p.Draft.Title != "a" {
		t.Fatalf("unexpected edit projection: %#v", p)
	}
}

func TestDismissErrorWithoutDraftReturnsToViewing(t *testing.T) {
	s := NewState(ThemeLight).StartLoading(false).Failed(MsgLoadFailed).DismissError()
	if s.Mode != ModeViewing || s.Error != "" {
		t.Fatalf("unexpected state: %v %q", s.Mode, s.Error)
	}
}

func TestThemeToggle(t *testing.T) {
	s := NewState("")
	if s.Theme != ThemeLight {
		t.Fatalf("expected light default, got %q", s.Theme)
	}
	if s.ToggleTheme().Theme != ThemeDark || s.ToggleTheme().ToggleTheme().Theme != ThemeLight {
		t.Fatalf("unexpected toggle result")
	}
}

func TestStateJSONUsesModeNames(t *testing.T) {
	data, err := json.Marshal(NewState(ThemeDark))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"mode":"viewing"`) || !strings.Contains(string(data), `"theme":"dark"`) {
		t.Fatalf("unexpected json: %s", data)
	}

	var m Mode
	if err := m.UnmarshalText([]byte("Loading")); err != nil || m != ModeLoading {
		t.Fatalf("unexpected mode parse: %v %v", m, err)
	}
	if err := m.UnmarshalText([]byte("nope")); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}
