package app

import "charm.land/bubbles/v2/key"

type keyMap struct {
	down        key.Binding
	up          key.Binding
	newNote     key.Binding
	edit        key.Binding
	refreshEdit key.Binding
	remove      key.Binding
	reload      key.Binding
	theme       key.Binding
	copy        key.Binding
	dismiss     key.Binding
	quit        key.Binding
	pageDown    key.Binding
	pageUp      key.Binding

	save       key.Binding
	cancel     key.Binding
	switchEdit key.Binding
	forceQuit  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		down:        key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/k", "move")),
		up:          key.NewBinding(key.WithKeys("k", "up")),
		newNote:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
		edit:        key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		refreshEdit: key.NewBinding(key.WithKeys("E"), key.WithHelp("E", "refresh+edit")),
		remove:      key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		reload:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		theme:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		copy:        key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		dismiss:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss")),
		quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		pageDown:    key.NewBinding(key.WithKeys("pgdown", "ctrl+d")),
		pageUp:      key.NewBinding(key.WithKeys("pgup", "ctrl+u")),
		save:        key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		cancel:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		switchEdit:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "field")),
		forceQuit:   key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// normalHelp satisfies help.KeyMap for the viewing footer.
type normalHelp keyMap

func (k normalHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.down, k.newNote, k.edit, k.refreshEdit, k.remove, k.reload, k.theme, k.copy, k.quit}
}

func (k normalHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type editorHelp keyMap

func (k editorHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.save, k.switchEdit, k.cancel}
}

func (k editorHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
