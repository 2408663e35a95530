package app

import (
	"strings"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"notes/internal/session"
	"notes/internal/types"
)

const (
	createNoteLabel  = "Create Note"
	saveChangesLabel = "Save Changes"
)

type editorField int

const (
	editorFieldTitle editorField = iota
	editorFieldContent
)

// EditorController owns the title and content inputs while a draft is open.
type EditorController struct {
	title   textinput.Model
	content textarea.Model
	focus   editorField
	width   int
}

func NewEditorController() *EditorController {
	title := textinput.New()
	title.Prompt = ""
	title.Placeholder = "Title"
	title.CharLimit = types.MaxTitleLength

	content := textarea.New()
	content.Placeholder = "Write your note..."
	content.ShowLineNumbers = false
	content.CharLimit = 0

	return &EditorController{title: title, content: content}
}

// Open loads a draft into the inputs and focuses the title.
func (c *EditorController) Open(draft session.Draft) {
	c.title.SetValue(draft.Title)
	c.content.SetValue(draft.Content)
	c.focusField(editorFieldTitle)
}

func (c *EditorController) Values() (string, string) {
	return c.title.Value(), c.content.Value()
}

func (c *EditorController) ToggleFocus() {
	if c.focus == editorFieldTitle {
		c.focusField(editorFieldContent)
		return
	}
	c.focusField(editorFieldTitle)
}

func (c *EditorController) focusField(field editorField) {
	c.focus = field
	if field == editorFieldTitle {
		c.content.Blur()
		c.title.Focus()
		return
	}
	c.title.Blur()
	c.content.Focus()
}

func (c *EditorController) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if c.focus == editorFieldTitle {
		c.title, cmd = c.title.Update(msg)
		return cmd
	}
	c.content, cmd = c.content.Update(msg)
	return cmd
}

func (c *EditorController) SetSize(width, height int) {
	c.width = max(10, width)
	c.title.SetWidth(c.width)
	c.content.SetWidth(c.width)
	// Heading, title label, title, content label and the button row.
	c.content.SetHeight(max(3, height-7))
}

func (c *EditorController) View(p palette, creating bool) string {
	heading := "Edit Note"
	action := saveChangesLabel
	if creating {
		heading = "New Note"
		action = createNoteLabel
	}
	lines := []string{
		p.noteTitle.Render(heading),
		"",
		p.label.Render("Title"),
		c.title.View(),
		p.label.Render("Content"),
		c.content.View(),
		p.button.Render(action) + "  " + p.help.Render("ctrl+s save • tab switch field • esc cancel"),
	}
	return strings.Join(lines, "\n")
}
