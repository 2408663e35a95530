package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	xansi "github.com/charmbracelet/x/ansi"
)

type confirmChoice int

const (
	confirmChoiceNone confirmChoice = iota
	confirmChoiceConfirm
	confirmChoiceCancel
)

const (
	confirmMinWidth = 30
	confirmMaxWidth = 60
)

type confirmButton int

const (
	confirmButtonYes confirmButton = iota
	confirmButtonNo
)

// ConfirmController is the modal yes/no dialog shown before a delete.
type ConfirmController struct {
	active       bool
	title        string
	message      string
	confirmLabel string
	cancelLabel  string
	selected     confirmButton
}

func NewConfirmController() *ConfirmController {
	return &ConfirmController{}
}

func (c *ConfirmController) IsOpen() bool {
	return c != nil && c.active
}

func (c *ConfirmController) Open(title, message, confirmLabel, cancelLabel string) {
	if c == nil {
		return
	}
	if confirmLabel == "" {
		confirmLabel = "Confirm"
	}
	if cancelLabel == "" {
		cancelLabel = "Cancel"
	}
	*c = ConfirmController{
		active:       true,
		title:        strings.TrimSpace(title),
		message:      strings.TrimSpace(message),
		confirmLabel: confirmLabel,
		cancelLabel:  cancelLabel,
	}
}

func (c *ConfirmController) Close() {
	if c == nil {
		return
	}
	*c = ConfirmController{}
}

func (c *ConfirmController) HandleKey(msg tea.KeyPressMsg) (bool, confirmChoice) {
	if !c.IsOpen() {
		return false, confirmChoiceNone
	}
	switch msg.String() {
	case "esc", "n", "q":
		return true, confirmChoiceCancel
	case "y":
		return true, confirmChoiceConfirm
	case "left", "h":
		c.selected = confirmButtonYes
	case "right", "l":
		c.selected = confirmButtonNo
	case "tab":
		c.selected = 1 - c.selected
	case "enter":
		if c.selected == confirmButtonYes {
			return true, confirmChoiceConfirm
		}
		return true, confirmChoiceCancel
	default:
		// Swallow everything else while the dialog is up.
	}
	return true, confirmChoiceNone
}

func (c *ConfirmController) HandleMouse(msg tea.MouseMsg, maxWidth, maxHeight int) (bool, confirmChoice) {
	if !c.IsOpen() {
		return false, confirmChoiceNone
	}
	if _, ok := msg.(tea.MouseClickMsg); !ok {
		return false, confirmChoiceNone
	}
	mouse := msg.Mouse()
	if mouse.Button != tea.MouseLeft {
		return false, confirmChoiceNone
	}
	x, y, width, height := c.layout(maxWidth, maxHeight)
	if mouse.X < x || mouse.X >= x+width || mouse.Y < y || mouse.Y >= y+height {
		return false, confirmChoiceNone
	}
	if mouse.Y != y+height-2 {
		return true, confirmChoiceNone
	}
	contentX := x + 1
	contentWidth := max(1, width-2)
	if mouse.X < contentX || mouse.X >= contentX+contentWidth {
		return true, confirmChoiceNone
	}
	if mouse.X < contentX+contentWidth/2 {
		c.selected = confirmButtonYes
		return true, confirmChoiceConfirm
	}
	c.selected = confirmButtonNo
	return true, confirmChoiceCancel
}

// View renders the dialog box and the row it should be drawn at.
func (c *ConfirmController) View(p palette, maxWidth, maxHeight int) (string, int) {
	if !c.IsOpen() {
		return "", 0
	}
	x, y, width, _ := c.layout(maxWidth, maxHeight)
	innerWidth := max(1, width-2)
	contentWidth := max(1, innerWidth-2)

	title := truncateToWidth(c.displayTitle(), contentWidth)
	lines := []string{p.dialogHeader.Render(" " + padToWidth(title, contentWidth) + " ")}
	for _, line := range c.messageLines(contentWidth) {
		line = truncateToWidth(line, contentWidth)
		lines = append(lines, p.dialogBody.Render(" "+padToWidth(line, contentWidth)+" "))
	}

	leftWidth := contentWidth / 2
	rightWidth := contentWidth - leftWidth
	yes := padToWidth(truncateToWidth("["+c.confirmLabel+"]", leftWidth), leftWidth)
	no := padToWidth(truncateToWidth("["+c.cancelLabel+"]", rightWidth), rightWidth)
	if c.selected == confirmButtonYes {
		yes, no = p.dialogActive.Render(yes), p.dialogBody.Render(no)
	} else {
		yes, no = p.dialogBody.Render(yes), p.dialogActive.Render(no)
	}
	lines = append(lines, padToWidth(" "+yes+no+" ", innerWidth))

	block := p.dialogBorder.Render(strings.Join(lines, "\n"))
	return indentBlock(block, x), y
}

func (c *ConfirmController) displayTitle() string {
	if c.title == "" {
		return "Confirm"
	}
	return c.title
}

func (c *ConfirmController) messageLines(width int) []string {
	if c.message == "" {
		return nil
	}
	return strings.Split(xansi.Hardwrap(c.message, width, true), "\n")
}

// layout returns the dialog's x, y, width and height centered in the area.
func (c *ConfirmController) layout(maxWidth, maxHeight int) (int, int, int, int) {
	width := c.width()
	if maxWidth > 0 && width > maxWidth {
		width = maxWidth
	}
	contentWidth := max(1, width-4)
	height := 1 + len(c.messageLines(contentWidth)) + 1 + 2
	x, y := 0, 0
	if maxWidth > 0 {
		x = max(0, (maxWidth-width)/2)
	}
	if maxHeight > 0 {
		y = max(1, (maxHeight-height)/2+1)
	}
	return x, y, width, height
}

func (c *ConfirmController) width() int {
	contentWidth := max(xansi.StringWidth(c.displayTitle()), xansi.StringWidth(c.message))
	buttons := xansi.StringWidth(c.confirmLabel) + xansi.StringWidth(c.cancelLabel) + 6
	contentWidth = max(contentWidth, buttons)
	return min(confirmMaxWidth, max(confirmMinWidth, contentWidth+4))
}
