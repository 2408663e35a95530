package session

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"notes/internal/types"
)

// Mode is the single active UI mode of a session.
type Mode int

const (
	ModeViewing Mode = iota
	ModeEditing
	ModeLoading
	ModeError
)

func (m Mode) String() string {
	switch m {
	case ModeViewing:
		return "viewing"
	case ModeEditing:
		return "editing"
	case ModeLoading:
		return "loading"
	case ModeError:
		return "error"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "viewing":
		*m = ModeViewing
	case "editing":
		*m = ModeEditing
	case "loading":
		*m = ModeLoading
	case "error":
		*m = ModeError
	default:
		return fmt.Errorf("unknown mode %q", string(text))
	}
	return nil
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func (t Theme) IsDark() bool {
	return t == ThemeDark
}

// Draft holds the editor buffers. NoteID is set when the draft was primed
// from a fetched note.
type Draft struct {
	NoteID  types.NoteID `json:"note_id,omitempty"`
	Title   string       `json:"title"`
	Content string       `json:"content"`
}

// State is the client-side session. Transitions are value methods that
// return the next state and never mutate the receiver's slices.
//
// Draft is non-nil while editing, while a save it started is in flight or
// has failed (so the edit can resume), and in Viewing only right after
// LoadOne primed it.
type State struct {
	Notes      []types.Note `json:"notes"`
	SelectedID types.NoteID `json:"selected_id,omitempty"`
	Mode       Mode         `json:"mode"`
	Error      string       `json:"error,omitempty"`
	Draft      *Draft       `json:"draft,omitempty"`
	Theme      Theme        `json:"theme"`
}

func NewState(theme Theme) State {
	if theme != ThemeDark {
		theme = ThemeLight
	}
	return State{Notes: []types.Note{}, Mode: ModeViewing, Theme: theme}
}

// Lookup finds a note by id. Every operation that needs the current note
// goes through here so stale ids behave the same everywhere.
func (s State) Lookup(id types.NoteID) (types.Note, bool) {
	if id.IsZero() {
		return types.Note{}, false
	}
	for _, note := range s.Notes {
		if note.ID == id {
			return note, true
		}
	}
	return types.Note{}, false
}

func (s State) Selected() (types.Note, bool) {
	return s.Lookup(s.SelectedID)
}

func (s State) Busy() bool {
	return s.Mode == ModeLoading
}

// Creating reports whether the editor targets a new note.
func (s State) Creating() bool {
	return s.Mode == ModeEditing && s.SelectedID.IsZero()
}

func (s State) Clone() State {
	out := s
	out.Notes = append([]types.Note{}, s.Notes...)
	if s.Draft != nil {
		draft := *s.Draft
		out.Draft = &draft
	}
	return out
}

func (s State) SelectNote(id types.NoteID) State {
	s.SelectedID = id
	s.Mode = ModeViewing
	s.Error = ""
	s.Draft = nil
	return s
}

func (s State) BeginCreate() State {
	s.SelectedID = ""
	s.Mode = ModeEditing
	s.Error = ""
	s.Draft = &Draft{}
	return s
}

func (s State) BeginEdit() State {
	note, ok := s.Selected()
	if !ok {
		return s
	}
	draft := &Draft{NoteID: note.ID, Title: note.Title, Content: note.Content}
	if s.Draft != nil && s.Draft.NoteID == note.ID {
		primed := *s.Draft
		draft = &primed
	}
	s.Mode = ModeEditing
	s.Error = ""
	s.Draft = draft
	return s
}

func (s State) SetDraft(title, content string) State {
	if s.Mode != ModeEditing {
		return s
	}
	draft := Draft{Title: ClipTitle(title), Content: content}
	if s.Draft != nil {
		draft.NoteID = s.Draft.NoteID
	}
	s.Draft = &draft
	return s
}

func (s State) CancelEdit() State {
	if s.Mode != ModeEditing && s.Mode != ModeError {
		return s
	}
	s.Mode = ModeViewing
	s.Error = ""
	s.Draft = nil
	return s
}

func (s State) DismissError() State {
	if s.Mode != ModeError {
		return s
	}
	s.Error = ""
	if s.Draft != nil {
		s.Mode = ModeEditing
		return s
	}
	s.Mode = ModeViewing
	return s
}

func (s State) ToggleTheme() State {
	s.Theme = s.Theme.Toggle()
	return s
}

// StartLoading enters ModeLoading. keepDraft is true only for saves.
func (s State) StartLoading(keepDraft bool) State {
	s.Mode = ModeLoading
	s.Error = ""
	if !keepDraft {
		s.Draft = nil
	}
	return s
}

// Failed records an operation failure. Notes and selection are untouched.
func (s State) Failed(message string) State {
	s.Mode = ModeError
	s.Error = message
	return s
}

func (s State) NotesLoaded(notes []types.Note) State {
	s.Notes = append([]types.Note{}, notes...)
	s.Mode = ModeViewing
	s.Error = ""
	s.Draft = nil
	if s.SelectedID.IsZero() && len(s.Notes) > 0 {
		s.SelectedID = s.Notes[0].ID
	}
	return s
}

func (s State) NoteFetched(note types.Note) State {
	s.SelectedID = note.ID
	s.Mode = ModeViewing
	s.Error = ""
	s.Draft = &Draft{NoteID: note.ID, Title: note.Title, Content: note.Content}
	return s
}

func (s State) NoteCreated(note types.Note) State {
	notes := make([]types.Note, 0, len(s.Notes)+1)
	notes = append(notes, note)
	notes = append(notes, s.Notes...)
	s.Notes = notes
	s.SelectedID = note.ID
	s.Mode = ModeViewing
	s.Error = ""
	s.Draft = nil
	return s
}

func (s State) NoteUpdated(note types.Note) State {
	notes := make([]types.Note, len(s.Notes))
	for i, existing := range s.Notes {
		if existing.ID == note.ID {
			notes[i] = note
			continue
		}
		notes[i] = existing
	}
	s.Notes = notes
	s.SelectedID = note.ID
	s.Mode = ModeViewing
	s.Error = ""
	s.Draft = nil
	return s
}

// NoteDeleted removes id and re-selects from the list as it is after the
// removal.
func (s State) NoteDeleted(id types.NoteID) State {
	remaining := make([]types.Note, 0, len(s.Notes))
	for _, note := range s.Notes {
		if note.ID != id {
			remaining = append(remaining, note)
		}
	}
	s.Notes = remaining
	s.SelectedID = ""
	if len(remaining) > 0 {
		s.SelectedID = remaining[0].ID
	}
	s.Mode = ModeViewing
	s.Error = ""
	s.Draft = nil
	return s
}

// ClipTitle enforces types.MaxTitleLength on rune boundaries.
func ClipTitle(title string) string {
	if utf8.RuneCountInString(title) <= types.MaxTitleLength {
		return title
	}
	runes := []rune(title)
	return string(runes[:types.MaxTitleLength])
}

type ViewKind int

const (
	ViewWelcome ViewKind = iota
	ViewNote
	ViewEditor
	ViewLoading
	ViewError
)

// Projection is what the main panel should show for a state.
type Projection struct {
	Kind     ViewKind
	Note     types.Note
	Draft    Draft
	Creating bool
	Message  string
}

func (s State) View() Projection {
	switch s.Mode {
	case ModeLoading:
		return Projection{Kind: ViewLoading}
	case ModeError:
		return Projection{Kind: ViewError, Message: s.Error}
	case ModeEditing:
		p := Projection{Kind: ViewEditor, Creating: s.SelectedID.IsZero()}
		if s.Draft != nil {
			p.Draft = *s.Draft
		}
		return p
	}
	note, ok := s.Selected()
	if !ok {
		return Projection{Kind: ViewWelcome}
	}
	return Projection{Kind: ViewNote, Note: note}
}
