package app

import (
	"fmt"
	"io"
	"strings"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"notes/internal/app/sanitizer"
	"notes/internal/types"
)

const (
	sidebarHeading  = "Simple Notes"
	newNoteHint     = "+ New Note"
	emptyNotesLabel = "No notes"
	untitledLabel   = "(Untitled)"
	sidebarHeader   = 3
	minListWidth    = 20
	minListHeight   = 3
)

type noteItem struct {
	note types.Note
}

func (i noteItem) FilterValue() string {
	return i.note.Title
}

func (i noteItem) displayTitle() string {
	return displayTitle(i.note.Title)
}

// displayTitle is the title as drawn: one line, no control sequences, and a
// placeholder when blank.
func displayTitle(title string) string {
	title = sanitizer.Title(title)
	if title == "" {
		return untitledLabel
	}
	return title
}

type noteDelegate struct {
	palette    palette
	selectedID types.NoteID
}

func (d *noteDelegate) Height() int {
	return 2
}

func (d *noteDelegate) Spacing() int {
	return 1
}

func (d *noteDelegate) Update(tea.Msg, *list.Model) tea.Cmd {
	return nil
}

func (d *noteDelegate) Render(w io.Writer, m list.Model, _ int, item list.Item) {
	entry, ok := item.(noteItem)
	if !ok {
		return
	}
	width := max(1, m.Width())
	title := padToWidth(truncateToWidth(" "+entry.displayTitle(), width), width)
	snippet := padToWidth(truncateToWidth(" "+ContentSnippet(entry.note.Content), width), width)
	if entry.note.ID == d.selectedID {
		title = d.palette.selected.Bold(true).Render(title)
		snippet = d.palette.selected.Render(snippet)
	} else {
		title = d.palette.itemTitle.Render(title)
		snippet = d.palette.itemSnippet.Render(snippet)
	}
	fmt.Fprint(w, title+"\n"+snippet)
}

// SidebarController renders the note list and keeps the list cursor on the
// session's selected note.
type SidebarController struct {
	list     list.Model
	delegate *noteDelegate
	notes    []types.Note
	width    int
	height   int
}

func NewSidebarController() *SidebarController {
	delegate := &noteDelegate{palette: lightPalette()}
	mlist := list.New([]list.Item{}, delegate, minListWidth, minListHeight)
	mlist.SetShowTitle(false)
	mlist.SetShowHelp(false)
	mlist.SetFilteringEnabled(false)
	mlist.SetShowPagination(false)
	mlist.SetShowStatusBar(false)
	mlist.DisableQuitKeybindings()
	return &SidebarController{list: mlist, delegate: delegate}
}

func (c *SidebarController) SetSize(width, height int) {
	c.width = max(minListWidth, width)
	c.height = max(sidebarHeader+minListHeight, height)
	c.list.SetSize(c.width, c.height-sidebarHeader)
}

func (c *SidebarController) SetPalette(p palette) {
	c.delegate.palette = p
}

// Sync replaces the items and moves the cursor to selectedID.
func (c *SidebarController) Sync(notes []types.Note, selectedID types.NoteID) {
	c.notes = notes
	c.delegate.selectedID = selectedID
	items := make([]list.Item, 0, len(notes))
	selectedIdx := -1
	for i, note := range notes {
		items = append(items, noteItem{note: note})
		if note.ID == selectedID {
			selectedIdx = i
		}
	}
	c.list.SetItems(items)
	if selectedIdx >= 0 {
		c.list.Select(selectedIdx)
	}
}

// Neighbor returns the note delta steps away from the selection. With no
// resolvable selection it starts from the top.
func (c *SidebarController) Neighbor(selectedID types.NoteID, delta int) (types.NoteID, bool) {
	if len(c.notes) == 0 {
		return "", false
	}
	current := -1
	for i, note := range c.notes {
		if note.ID == selectedID {
			current = i
			break
		}
	}
	if current < 0 {
		return c.notes[0].ID, true
	}
	next := min(max(current+delta, 0), len(c.notes)-1)
	if next == current {
		return "", false
	}
	return c.notes[next].ID, true
}

func (c *SidebarController) View() string {
	p := c.delegate.palette
	header := []string{
		p.sidebarTitle.Render(truncateToWidth(" "+sidebarHeading, c.width)),
		p.newNoteHint.Render(truncateToWidth(" [n] "+newNoteHint, c.width)),
		p.divider.Render(strings.Repeat("─", max(1, c.width))),
	}
	body := ""
	if len(c.notes) == 0 {
		body = p.empty.Render(" " + emptyNotesLabel)
	} else {
		body = c.list.View()
	}
	view := lipgloss.JoinVertical(lipgloss.Left, strings.Join(header, "\n"), body)
	return lipgloss.NewStyle().Width(c.width).Height(c.height).MaxHeight(c.height).Render(view)
}
