package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	xansi "github.com/charmbracelet/x/ansi"

	"notes/internal/session"
	"notes/internal/types"
)

type memoryNotesAPI struct {
	mu      sync.Mutex
	notes   []types.Note
	nextID  int
	listErr error
	fetched *types.Note
	created []types.NoteInput
	deleted []types.NoteID
}

func (a *memoryNotesAPI) ListNotes(context.Context) ([]types.Note, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.listErr != nil {
		return nil, a.listErr
	}
	return append([]types.Note{}, a.notes...), nil
}

func (a *memoryNotesAPI) GetNote(_ context.Context, id types.NoteID) (*types.Note, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.fetched != nil && a.fetched.ID == id {
		note := *a.fetched
		return &note, nil
	}
	for _, note := range a.notes {
		if note.ID == id {
			return &note, nil
		}
	}
	return nil, errors.New("not found")
}

func (a *memoryNotesAPI) CreateNote(_ context.Context, input types.NoteInput) (*types.Note, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.nextID++
	a.created = append(a.created, input)
	note := types.Note{ID: types.NoteID(fmt.Sprintf("n%d", a.nextID)), Title: input.Title, Content: input.Content}
	a.notes = append([]types.Note{note}, a.notes...)
	return &note, nil
}

func (a *memoryNotesAPI) UpdateNote(_ context.Context, id types.NoteID, input types.NoteInput) (*types.Note, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.notes {
		if a.notes[i].ID == id {
			a.notes[i].Title = input.Title
			a.notes[i].Content = input.Content
			note := a.notes[i]
			return &note, nil
		}
	}
	return nil, errors.New("not found")
}

func (a *memoryNotesAPI) DeleteNote(_ context.Context, id types.NoteID) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.deleted = append(a.deleted, id)
	for i := range a.notes {
		if a.notes[i].ID == id {
			a.notes = append(a.notes[:i], a.notes[i+1:]...)
			return nil
		}
	}
	return nil
}

func sampleNotes() []types.Note {
	return []types.Note{
		{ID: "1", Title: "Groceries", Content: "milk, eggs, bread, butter, coffee beans"},
		{ID: "2", Title: "", Content: "short"},
		{ID: "3", Title: "Ideas", Content: ""},
	}
}

func newTestModel(t *testing.T, api *memoryNotesAPI) (*Model, chan tea.Msg) {
	t.Helper()
	link := newProgramLink()
	sent := make(chan tea.Msg, 8)
	link.attach(func(msg tea.Msg) { sent <- msg })
	ctl := session.New(api, session.WithConfirm(link.Confirm))
	model := newModel(context.Background(), ctl, Options{SidebarWidth: 40})
	model.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }
	model.statusTTL = 0
	m := &model
	m = applyCmd(t, m, m.Init())
	return applyMsg(t, m, tea.WindowSizeMsg{Width: 110, Height: 32}), sent
}

func applyMsg(t *testing.T, m *Model, msg tea.Msg) *Model {
	t.Helper()
	updated, cmd := m.Update(msg)
	out, ok := updated.(*Model)
	if !ok {
		t.Fatalf("expected *Model, got %T", updated)
	}
	return applyCmd(t, out, cmd)
}

// applyCmd runs cmd and feeds back the messages the model cares about.
// Spinner ticks are dropped so the loop terminates.
func applyCmd(t *testing.T, m *Model, cmd tea.Cmd) *Model {
	t.Helper()
	if cmd == nil {
		return m
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, sub := range msg {
			m = applyCmd(t, m, sub)
		}
		return m
	case opDoneMsg, stateChangedMsg, confirmRequestMsg:
		return applyMsg(t, m, msg)
	case spinner.TickMsg:
		return m
	default:
		return m
	}
}

// typeText sends printable keys without running the returned commands,
// which are cursor blinks.
func typeText(t *testing.T, m *Model, text string) *Model {
	t.Helper()
	for _, r := range text {
		updated, _ := m.Update(keyRune(r))
		m = updated.(*Model)
	}
	return m
}

func keyRune(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func ctrlKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

func renderedText(m *Model) string {
	return xansi.Strip(fmt.Sprint(m.View().Content))
}

func waitMsg(t *testing.T, ch <-chan tea.Msg) tea.Msg {
	t.Helper()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for message")
		return nil
	}
}

func TestModelLoadsNotesIntoSidebar(t *testing.T) {
	m, _ := newTestModel(t, &memoryNotesAPI{notes: sampleNotes()})

	if m.booting {
		t.Fatalf("expected initial load to finish")
	}
	if m.state.SelectedID != "1" {
		t.Fatalf("expected first note selected, got %q", m.state.SelectedID)
	}
	view := renderedText(m)
	for _, want := range []string{
		sidebarHeading,
		newNoteHint,
		"Groceries",
		"milk, eggs, bread, butter, cof...",
		untitledLabel,
		"Simple Notes App © 2025",
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
	if strings.Contains(view, welcomeTitle) {
		t.Fatalf("expected selected note instead of welcome")
	}
}

func TestModelEmptyListShowsWelcome(t *testing.T) {
	m, _ := newTestModel(t, &memoryNotesAPI{})

	view := renderedText(m)
	for _, want := range []string{emptyNotesLabel, welcomeTitle, welcomeMessage} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestModelNavigationMovesSelection(t *testing.T) {
	m, _ := newTestModel(t, &memoryNotesAPI{notes: sampleNotes()})

	m = applyMsg(t, m, keyRune('j'))
	if m.state.SelectedID != "2" {
		t.Fatalf("expected note 2, got %q", m.state.SelectedID)
	}
	m = applyMsg(t, m, tea.KeyPressMsg{Code: tea.KeyDown})
	if m.state.SelectedID != "3" {
		t.Fatalf("expected note 3, got %q", m.state.SelectedID)
	}
	m = applyMsg(t, m, keyRune('j'))
	if m.state.SelectedID != "3" {
		t.Fatalf("expected selection to stay at the end, got %q", m.state.SelectedID)
	}
	if !strings.Contains(renderedText(m), noContentLabel) {
		t.Fatalf("expected empty content placeholder")
	}
	m = applyMsg(t, m, keyRune('k'))
	if m.state.SelectedID != "2" {
		t.Fatalf("expected note 2, got %q", m.state.SelectedID)
	}
}

func TestModelCreateNoteFromEditor(t *testing.T) {
	api := &memoryNotesAPI{notes: sampleNotes()}
	m, _ := newTestModel(t, api)

	m = applyMsg(t, m, keyRune('n'))
	if m.state.Mode != session.ModeEditing || !m.state.Creating() {
		t.Fatalf("expected create editor, got %v", m.state.Mode)
	}
	if !strings.Contains(renderedText(m), createNoteLabel) {
		t.Fatalf("expected %q button", createNoteLabel)
	}
	m = typeText(t, m, "Hi")
	m = applyMsg(t, m, tea.KeyPressMsg{Code: tea.KeyTab})
	m = typeText(t, m, "body")
	m = applyMsg(t, m, ctrlKey('s'))

	if len(api.created) != 1 || api.created[0].Title != "Hi" || api.created[0].Content != "body" {
		t.Fatalf("unexpected create input: %#v", api.created)
	}
	if m.state.Mode != session.ModeViewing || m.state.Notes[0].Title != "Hi" || m.state.SelectedID != m.state.Notes[0].ID {
		t.Fatalf("expected created note first and selected, got %#v", m.state)
	}
	if m.status.text != "Note saved." {
		t.Fatalf("unexpected status %q", m.status.text)
	}
}

func TestModelEditShowsSaveChanges(t *testing.T) {
	m, _ := newTestModel(t, &memoryNotesAPI{notes: sampleNotes()})

	m = applyMsg(t, m, keyRune('e'))
	if m.state.Mode != session.ModeEditing || m.state.Creating() {
		t.Fatalf("expected edit mode, got %#v", m.state)
	}
	title, content := m.editor.Values()
	if title != "Groceries" || !strings.HasPrefix(content, "milk") {
		t.Fatalf("expected editor primed from note, got %q %q", title, content)
	}
	if !strings.Contains(renderedText(m), saveChangesLabel) {
		t.Fatalf("expected %q button", saveChangesLabel)
	}
	m = applyMsg(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.state.Mode != session.ModeViewing || m.state.SelectedID != "1" {
		t.Fatalf("expected cancel back to note 1, got %#v", m.state)
	}
}

func TestModelEmptyTitleShowsErrorAndReturnsToEditor(t *testing.T) {
	api := &memoryNotesAPI{notes: sampleNotes()}
	m, _ := newTestModel(t, api)

	m = applyMsg(t, m, keyRune('n'))
	m = applyMsg(t, m, ctrlKey('s'))
	if len(api.created) != 0 {
		t.Fatalf("expected no create request")
	}
	if !strings.Contains(renderedText(m), session.MsgEmptyTitle) {
		t.Fatalf("expected empty title message:\n%s", renderedText(m))
	}
	m = applyMsg(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.state.Mode != session.ModeEditing {
		t.Fatalf("expected editor after dismissing, got %v", m.state.Mode)
	}
}

func TestModelDeleteAsksForConfirmation(t *testing.T) {
	api := &memoryNotesAPI{notes: sampleNotes()}
	m, sent := newTestModel(t, api)
	m = applyMsg(t, m, keyRune('j'))

	_, cmd := m.Update(keyRune('d'))
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	m = applyMsg(t, m, waitMsg(t, sent))
	if !m.confirm.IsOpen() {
		t.Fatalf("expected confirm dialog")
	}
	if !strings.Contains(renderedText(m), "Are you sure") {
		t.Fatalf("expected prompt in view:\n%s", renderedText(m))
	}
	m = applyMsg(t, m, keyRune('y'))
	if m.confirm.IsOpen() {
		t.Fatalf("expected dialog closed after answer")
	}
	m = applyMsg(t, m, waitMsg(t, done))

	if len(api.deleted) != 1 || api.deleted[0] != "2" {
		t.Fatalf("unexpected deletes: %v", api.deleted)
	}
	if len(m.state.Notes) != 2 || m.state.SelectedID != "1" {
		t.Fatalf("expected [1 3] with 1 selected, got %#v", m.state)
	}
}

func TestModelDeleteDeclined(t *testing.T) {
	api := &memoryNotesAPI{notes: sampleNotes()}
	m, sent := newTestModel(t, api)

	_, cmd := m.Update(keyRune('d'))
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	m = applyMsg(t, m, waitMsg(t, sent))
	m = applyMsg(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	m = applyMsg(t, m, waitMsg(t, done))

	if len(api.deleted) != 0 || len(m.state.Notes) != 3 {
		t.Fatalf("expected nothing deleted, got %v", api.deleted)
	}
	if m.status.text != "Delete cancelled." {
		t.Fatalf("unexpected status %q", m.status.text)
	}
}

func TestModelToggleTheme(t *testing.T) {
	m, _ := newTestModel(t, &memoryNotesAPI{notes: sampleNotes()})
	if !strings.Contains(renderedText(m), "[t] Dark") {
		t.Fatalf("expected dark toggle hint in light theme")
	}
	m = applyMsg(t, m, keyRune('t'))
	if m.state.Theme != session.ThemeDark || !m.palette.dark {
		t.Fatalf("expected dark theme, got %q", m.state.Theme)
	}
	if !strings.Contains(renderedText(m), "[t] Light") {
		t.Fatalf("expected light toggle hint in dark theme")
	}
}

func TestModelLoadFailureShowsMessage(t *testing.T) {
	m, _ := newTestModel(t, &memoryNotesAPI{listErr: errors.New("connection refused")})

	view := renderedText(m)
	if !strings.Contains(view, session.MsgLoadFailed) {
		t.Fatalf("expected load failure in view:\n%s", view)
	}
	if strings.Contains(view, loadingLabel) {
		t.Fatalf("expected loading indicator to clear")
	}
	m = applyMsg(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.state.Mode != session.ModeViewing {
		t.Fatalf("expected error dismissed, got %v", m.state.Mode)
	}
}

func TestModelRefreshEditUsesFetchedNote(t *testing.T) {
	api := &memoryNotesAPI{
		notes:   sampleNotes(),
		fetched: &types.Note{ID: "1", Title: "Groceries (server)", Content: "fresh"},
	}
	m, _ := newTestModel(t, api)

	m = applyMsg(t, m, keyRune('E'))
	if m.state.Mode != session.ModeEditing {
		t.Fatalf("expected editor, got %v", m.state.Mode)
	}
	title, content := m.editor.Values()
	if title != "Groceries (server)" || content != "fresh" {
		t.Fatalf("expected fetched values, got %q %q", title, content)
	}
}

func TestModelCopySelectedNote(t *testing.T) {
	origWriteAll := clipboardWriteAll
	t.Cleanup(func() { clipboardWriteAll = origWriteAll })
	var copied string
	clipboardWriteAll = func(text string) error {
		copied = text
		return nil
	}

	m, _ := newTestModel(t, &memoryNotesAPI{notes: sampleNotes()})
	m = applyMsg(t, m, keyRune('y'))
	if copied != sampleNotes()[0].Content {
		t.Fatalf("unexpected clipboard text %q", copied)
	}
	if m.status.text != "Copied note content." {
		t.Fatalf("unexpected status %q", m.status.text)
	}
}
