package session

import "errors"

const (
	MsgLoadFailed   = "Failed to load notes."
	MsgNotFound     = "Note not found."
	MsgUpdateFailed = "Failed to update note."
	MsgCreateFailed = "Failed to create note."
	MsgDeleteFailed = "Failed to delete note."
	MsgEmptyTitle   = "Title cannot be empty."
)

var (
	ErrBusy        = errors.New("another operation is in progress")
	ErrStale       = errors.New("selection changed before the operation started")
	ErrNoSelection = errors.New("no note selected")
	ErrNotEditing  = errors.New("not editing a note")
	ErrDeclined    = errors.New("delete declined")
	ErrEmptyTitle  = errors.New("empty title")
)

// OpError is a failed controller operation. Message is the user-facing
// text also recorded in State.Error.
type OpError struct {
	Op      string
	Message string
	Err     error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return e.Message
	}
	return e.Message + " (" + e.Op + ": " + e.Err.Error() + ")"
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// UserMessage returns the text to show for err, or "" when err carries none.
func UserMessage(err error) string {
	var opErr *OpError
	if errors.As(err, &opErr) {
		return opErr.Message
	}
	return ""
}
