package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// MaxTitleLength is the longest title, in runes, the client will submit.
const MaxTitleLength = 120

// NoteID is the opaque identifier the notes API assigns. The API may send
// it as a JSON string or a JSON number; both decode to the same textual form.
type NoteID string

func (id NoteID) String() string {
	return string(id)
}

func (id NoteID) IsZero() bool {
	return strings.TrimSpace(string(id)) == ""
}

func (id *NoteID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = NoteID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("note id must be a string or number: %w", err)
	}
	*id = NoteID(n.String())
	return nil
}

type Note struct {
	ID      NoteID `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// NoteInput is the body of create and update requests.
type NoteInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
