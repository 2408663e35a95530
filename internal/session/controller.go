package session

import (
	"context"
	"strings"
	"sync"

	"notes/internal/logging"
	"notes/internal/types"
)

// DeletePrompt is the question passed to the ConfirmFunc before a delete.
const DeletePrompt = "Are you sure you want to delete this note?"

const (
	opLoadAll = "load_all"
	opLoadOne = "load_one"
	opCreate  = "create"
	opUpdate  = "update"
	opSave    = "save"
	opDelete  = "delete"
)

type NotesAPI interface {
	ListNotes(ctx context.Context) ([]types.Note, error)
	GetNote(ctx context.Context, id types.NoteID) (*types.Note, error)
	CreateNote(ctx context.Context, input types.NoteInput) (*types.Note, error)
	UpdateNote(ctx context.Context, id types.NoteID, input types.NoteInput) (*types.Note, error)
	DeleteNote(ctx context.Context, id types.NoteID) error
}

// ConfirmFunc asks the user a yes/no question and blocks for the answer.
type ConfirmFunc func(ctx context.Context, prompt string) bool

type Option func(*Controller)

// WithConfirm sets the delete confirmation. Without one, deletes are declined.
func WithConfirm(confirm ConfirmFunc) Option {
	return func(c *Controller) {
		if confirm != nil {
			c.confirm = confirm
		}
	}
}

func WithLogger(logger logging.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func WithTheme(theme Theme) Option {
	return func(c *Controller) {
		c.state.Theme = NewState(theme).Theme
	}
}

// WithObserver registers a callback invoked with a snapshot after every
// state change. It runs outside the controller lock.
func WithObserver(observe func(State)) Option {
	return func(c *Controller) {
		c.observe = observe
	}
}

// Controller serializes all note operations against one State. Operations
// issued while another is in flight fail with ErrBusy.
type Controller struct {
	api     NotesAPI
	confirm ConfirmFunc
	logger  logging.Logger
	observe func(State)

	mu    sync.Mutex
	state State
}

func New(api NotesAPI, opts ...Option) *Controller {
	c := &Controller{
		api:     api,
		confirm: func(context.Context, string) bool { return false },
		logger:  logging.Nop(),
		state:   NewState(ThemeLight),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// Start performs the initial load.
func (c *Controller) Start(ctx context.Context) error {
	return c.LoadAll(ctx)
}

func (c *Controller) LoadAll(ctx context.Context) error {
	if err := c.begin(false); err != nil {
		return err
	}
	notes, err := c.api.ListNotes(ctx)
	if err != nil {
		return c.fail(opLoadAll, MsgLoadFailed, err)
	}
	next := c.commit(func(s State) State { return s.NotesLoaded(notes) })
	c.logger.Info("notes loaded", logging.F("count", len(next.Notes)), logging.F("selected", next.SelectedID))
	return nil
}

func (c *Controller) LoadOne(ctx context.Context, id types.NoteID) error {
	if err := c.begin(false); err != nil {
		return err
	}
	note, err := c.api.GetNote(ctx, id)
	if err != nil {
		return c.fail(opLoadOne, MsgNotFound, err, logging.F("id", id))
	}
	c.commit(func(s State) State { return s.NoteFetched(*note) })
	c.logger.Debug("note fetched", logging.F("id", note.ID))
	return nil
}

func (c *Controller) SelectNote(id types.NoteID) error {
	return c.local(func(s State) (State, error) {
		return s.SelectNote(id), nil
	})
}

func (c *Controller) BeginCreate() error {
	return c.local(func(s State) (State, error) {
		return s.BeginCreate(), nil
	})
}

// BeginEdit is a no-op when the selection does not resolve to a note.
func (c *Controller) BeginEdit() error {
	return c.local(func(s State) (State, error) {
		if _, ok := s.Selected(); !ok {
			c.logger.Debug("begin edit ignored", logging.F("selected", s.SelectedID))
			return s, nil
		}
		return s.BeginEdit(), nil
	})
}

func (c *Controller) SetDraft(title, content string) error {
	return c.local(func(s State) (State, error) {
		if s.Mode != ModeEditing {
			return s, ErrNotEditing
		}
		return s.SetDraft(title, content), nil
	})
}

func (c *Controller) CancelEdit() error {
	return c.local(func(s State) (State, error) {
		return s.CancelEdit(), nil
	})
}

func (c *Controller) DismissError() error {
	return c.local(func(s State) (State, error) {
		return s.DismissError(), nil
	})
}

// ToggleTheme is allowed in every mode, including while loading.
func (c *Controller) ToggleTheme() Theme {
	next := c.commit(func(s State) State { return s.ToggleTheme() })
	return next.Theme
}

// Save submits the draft: an update when editing a selected note, a create
// otherwise. An empty title fails before any request is made.
func (c *Controller) Save(ctx context.Context) error {
	c.mu.Lock()
	if c.state.Busy() {
		c.mu.Unlock()
		return ErrBusy
	}
	if c.state.Mode != ModeEditing || c.state.Draft == nil {
		c.mu.Unlock()
		return ErrNotEditing
	}
	draft := *c.state.Draft
	if strings.TrimSpace(draft.Title) == "" {
		c.state = c.state.Failed(MsgEmptyTitle)
		snapshot := c.state.Clone()
		c.mu.Unlock()
		c.notify(snapshot)
		return &OpError{Op: opSave, Message: MsgEmptyTitle, Err: ErrEmptyTitle}
	}
	targetID := c.state.SelectedID
	c.state = c.state.StartLoading(true)
	snapshot := c.state.Clone()
	c.mu.Unlock()
	c.notify(snapshot)

	input := types.NoteInput{Title: draft.Title, Content: draft.Content}
	if !targetID.IsZero() {
		note, err := c.api.UpdateNote(ctx, targetID, input)
		if err != nil {
			return c.fail(opUpdate, MsgUpdateFailed, err, logging.F("id", targetID))
		}
		c.commit(func(s State) State { return s.NoteUpdated(*note) })
		c.logger.Info("note updated", logging.F("id", note.ID))
		return nil
	}
	note, err := c.api.CreateNote(ctx, input)
	if err != nil {
		return c.fail(opCreate, MsgCreateFailed, err)
	}
	c.commit(func(s State) State { return s.NoteCreated(*note) })
	c.logger.Info("note created", logging.F("id", note.ID))
	return nil
}

// Delete removes the selected note after the ConfirmFunc agrees.
func (c *Controller) Delete(ctx context.Context) error {
	c.mu.Lock()
	if c.state.Busy() {
		c.mu.Unlock()
		return ErrBusy
	}
	note, ok := c.state.Selected()
	c.mu.Unlock()
	if !ok {
		return ErrNoSelection
	}

	if !c.confirm(ctx, DeletePrompt) {
		c.logger.Debug("delete declined", logging.F("id", note.ID))
		return ErrDeclined
	}

	c.mu.Lock()
	if c.state.Busy() {
		c.mu.Unlock()
		return ErrBusy
	}
	if c.state.SelectedID != note.ID {
		c.mu.Unlock()
		return ErrStale
	}
	c.state = c.state.StartLoading(false)
	snapshot := c.state.Clone()
	c.mu.Unlock()
	c.notify(snapshot)

	if err := c.api.DeleteNote(ctx, note.ID); err != nil {
		return c.fail(opDelete, MsgDeleteFailed, err, logging.F("id", note.ID))
	}
	next := c.commit(func(s State) State { return s.NoteDeleted(note.ID) })
	c.logger.Info("note deleted", logging.F("id", note.ID), logging.F("selected", next.SelectedID))
	return nil
}

func (c *Controller) begin(keepDraft bool) error {
	c.mu.Lock()
	if c.state.Busy() {
		c.mu.Unlock()
		return ErrBusy
	}
	c.state = c.state.StartLoading(keepDraft)
	snapshot := c.state.Clone()
	c.mu.Unlock()
	c.notify(snapshot)
	return nil
}

func (c *Controller) local(fn func(State) (State, error)) error {
	c.mu.Lock()
	if c.state.Busy() {
		c.mu.Unlock()
		return ErrBusy
	}
	next, err := fn(c.state)
	if err != nil {
		c.mu.Unlock()
		return err
	}
	c.state = next
	snapshot := c.state.Clone()
	c.mu.Unlock()
	c.notify(snapshot)
	return nil
}

func (c *Controller) commit(fn func(State) State) State {
	c.mu.Lock()
	c.state = fn(c.state)
	snapshot := c.state.Clone()
	c.mu.Unlock()
	c.notify(snapshot)
	return snapshot
}

func (c *Controller) fail(op, message string, cause error, fields ...logging.Field) error {
	c.commit(func(s State) State { return s.Failed(message) })
	fields = append([]logging.Field{logging.F("op", op), logging.Err(cause)}, fields...)
	c.logger.Warn("operation failed", fields...)
	return &OpError{Op: op, Message: message, Err: cause}
}

func (c *Controller) notify(snapshot State) {
	if c.observe != nil {
		c.observe(snapshot)
	}
}
