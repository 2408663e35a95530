package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"notes/internal/app/sanitizer"
	"notes/internal/logging"
	"notes/internal/session"
)

const (
	headerHeight        = 1
	footerHeight        = 3
	dividerWidth        = 3
	defaultSidebarWidth = 32
	minMainWidth        = 10

	loadingLabel   = "Loading..."
	welcomeTitle   = "Welcome!"
	welcomeMessage = "Select a note on the left or create a new note."
	noContentLabel = "(No content)"
	footerCredit   = "Simple Notes App © %d — Minimal, fast, and yours."
)

const (
	opLoadAll     = "load_all"
	opRefreshEdit = "refresh_edit"
	opSave        = "save"
	opDelete      = "delete"
)

type opDoneMsg struct {
	op  string
	err error
}

type Options struct {
	Theme          session.Theme
	RenderMarkdown bool
	SidebarWidth   int
	BaseURL        string
	Logger         logging.Logger
}

type Model struct {
	ctx    context.Context
	cancel context.CancelFunc
	ctl    *session.Controller
	opts   Options
	logger logging.Logger
	keys   keyMap
	help   help.Model
	now    func() time.Time

	state   session.State
	palette palette
	booting bool

	sidebar      *SidebarController
	editor       *EditorController
	confirm      *ConfirmController
	confirmReply chan<- bool
	viewport     viewport.Model
	spinner      spinner.Model
	spinning     bool
	bodyKey      string

	width     int
	height    int
	status    statusLine
	statusTTL time.Duration
}

// Run starts the TUI against api and blocks until the user quits.
func Run(ctx context.Context, api session.NotesAPI, opts Options) error {
	link := newProgramLink()
	ctl := session.New(api,
		session.WithConfirm(link.Confirm),
		session.WithObserver(link.StateChanged),
		session.WithLogger(opts.logger()),
		session.WithTheme(opts.Theme),
	)
	model := newModel(ctx, ctl, opts)
	defer model.cancel()
	p := tea.NewProgram(&model, tea.WithContext(ctx))
	link.attach(p.Send)
	_, err := p.Run()
	return err
}

func (o Options) logger() logging.Logger {
	if o.Logger == nil {
		return logging.Nop()
	}
	return o.Logger
}

func newModel(parent context.Context, ctl *session.Controller, opts Options) Model {
	if opts.SidebarWidth <= 0 {
		opts.SidebarWidth = defaultSidebarWidth
	}
	ctx, cancel := context.WithCancel(parent)
	state := ctl.Snapshot()
	m := Model{
		ctx:       ctx,
		cancel:    cancel,
		ctl:       ctl,
		opts:      opts,
		logger:    opts.logger(),
		keys:      newKeyMap(),
		help:      help.New(),
		now:       time.Now,
		statusTTL: defaultStatusTTL,
		state:     state,
		palette:   newPalette(state.Theme),
		booting:   true,
		sidebar:   NewSidebarController(),
		editor:    NewEditorController(),
		confirm:   NewConfirmController(),
		viewport:  viewport.New(viewport.WithWidth(40), viewport.WithHeight(10)),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	m.resize(80, 24)
	return m
}

func (m *Model) Init() tea.Cmd {
	m.spinning = true
	return tea.Batch(m.runOp(opLoadAll, m.ctl.Start), m.spinner.Tick)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	if timer := m.statusTimer(); timer != nil {
		cmd = tea.Batch(cmd, timer)
	}
	return next, cmd
}

func (m *Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statusExpiredMsg:
		m.expireStatus(msg)
		return m, nil
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case spinner.TickMsg:
		if !m.loading() {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case stateChangedMsg:
		return m, m.sync()
	case opDoneMsg:
		return m, m.handleOpDone(msg)
	case confirmRequestMsg:
		m.confirmReply = msg.reply
		m.confirm.Open("Delete Note", msg.prompt, "Delete", "Cancel")
		return m, nil
	case tea.MouseWheelMsg:
		if m.confirm.IsOpen() || m.state.View().Kind != session.ViewNote {
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	case tea.MouseMsg:
		if handled, choice := m.confirm.HandleMouse(msg, m.width, m.height); handled {
			m.resolveConfirm(choice)
		}
		return m, nil
	case tea.KeyPressMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if m.confirm.IsOpen() {
		_, choice := m.confirm.HandleKey(msg)
		m.resolveConfirm(choice)
		return nil
	}
	if m.state.Mode == session.ModeEditing {
		return m.handleEditorKey(msg)
	}
	return m.handleNormalKey(msg)
}

func (m *Model) handleNormalKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.quit):
		m.cancel()
		return tea.Quit
	case key.Matches(msg, m.keys.theme):
		theme := m.ctl.ToggleTheme()
		m.logger.Debug("theme toggled", logging.F("theme", theme))
		return m.sync()
	case key.Matches(msg, m.keys.down):
		return m.moveSelection(1)
	case key.Matches(msg, m.keys.up):
		return m.moveSelection(-1)
	case key.Matches(msg, m.keys.newNote):
		return m.local(m.ctl.BeginCreate())
	case key.Matches(msg, m.keys.edit):
		return m.local(m.ctl.BeginEdit())
	case key.Matches(msg, m.keys.refreshEdit):
		note, ok := m.state.Selected()
		if !ok {
			m.setStatusError("No note selected.")
			return nil
		}
		id := note.ID
		return m.runOp(opRefreshEdit, func(ctx context.Context) error {
			return m.ctl.LoadOne(ctx, id)
		})
	case key.Matches(msg, m.keys.remove):
		return m.runOp(opDelete, m.ctl.Delete)
	case key.Matches(msg, m.keys.reload):
		return m.runOp(opLoadAll, m.ctl.LoadAll)
	case key.Matches(msg, m.keys.copy):
		m.copySelected()
		return nil
	case key.Matches(msg, m.keys.dismiss):
		return m.local(m.ctl.DismissError())
	case key.Matches(msg, m.keys.pageDown), key.Matches(msg, m.keys.pageUp):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) handleEditorKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.forceQuit):
		m.cancel()
		return tea.Quit
	case key.Matches(msg, m.keys.save):
		if err := m.pushDraft(); err != nil {
			return m.local(err)
		}
		return m.runOp(opSave, m.ctl.Save)
	case key.Matches(msg, m.keys.cancel):
		return m.local(m.ctl.CancelEdit())
	case key.Matches(msg, m.keys.switchEdit):
		m.editor.ToggleFocus()
		return nil
	}
	cmd := m.editor.Update(msg)
	if err := m.pushDraft(); err != nil {
		return tea.Batch(cmd, m.local(err))
	}
	return tea.Batch(cmd, m.sync())
}

func (m *Model) pushDraft() error {
	title, content := m.editor.Values()
	return m.ctl.SetDraft(title, content)
}

func (m *Model) moveSelection(delta int) tea.Cmd {
	id, ok := m.sidebar.Neighbor(m.state.SelectedID, delta)
	if !ok {
		return nil
	}
	return m.local(m.ctl.SelectNote(id))
}

// runOp runs a blocking controller call off the event loop.
func (m *Model) runOp(op string, fn func(context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return opDoneMsg{op: op, err: fn(ctx)}
	}
}

// local reports the result of a synchronous controller call.
func (m *Model) local(err error) tea.Cmd {
	if err != nil {
		m.reportError("local", err)
	}
	return m.sync()
}

func (m *Model) handleOpDone(msg opDoneMsg) tea.Cmd {
	if msg.op == opLoadAll {
		m.booting = false
	}
	if msg.err != nil {
		m.reportError(msg.op, msg.err)
		return m.sync()
	}
	switch msg.op {
	case opRefreshEdit:
		if err := m.ctl.BeginEdit(); err != nil {
			m.reportError(msg.op, err)
		}
	case opSave:
		m.setStatus("Note saved.")
	case opDelete:
		m.setStatus("Note deleted.")
	case opLoadAll:
		m.setStatus(fmt.Sprintf("%d notes loaded.", len(m.ctl.Snapshot().Notes)))
	}
	return m.sync()
}

func (m *Model) reportError(op string, err error) {
	switch {
	case errors.Is(err, session.ErrDeclined):
		m.setStatus("Delete cancelled.")
	case errors.Is(err, session.ErrBusy):
		m.setStatusError("Another operation is in progress.")
	case errors.Is(err, session.ErrStale):
		m.setStatusError("Selection changed; delete cancelled.")
	case errors.Is(err, session.ErrNoSelection):
		m.setStatusError("No note selected.")
	case errors.Is(err, session.ErrNotEditing):
		m.setStatusError("Nothing to save.")
	default:
		if text := session.UserMessage(err); text != "" {
			m.setStatusError(text)
		} else {
			m.setStatusError(err.Error())
		}
	}
	m.logger.Debug("ui operation failed", logging.F("op", op), logging.Err(err))
}

func (m *Model) resolveConfirm(choice confirmChoice) {
	if choice == confirmChoiceNone {
		return
	}
	if m.confirmReply != nil {
		m.confirmReply <- choice == confirmChoiceConfirm
		m.confirmReply = nil
	}
	m.confirm.Close()
}

func (m *Model) copySelected() {
	note, ok := m.state.Selected()
	if !ok {
		m.setStatusError("No note selected.")
		return
	}
	method, err := copyTextToClipboard(note.Content)
	if err != nil {
		m.setStatusError("copy failed: " + err.Error())
		return
	}
	if method == clipboardMethodOSC52 {
		m.setStatus("Copied note content (OSC52).")
		return
	}
	m.setStatus("Copied note content.")
}

func (m *Model) loading() bool {
	return m.booting || m.state.Busy()
}

// sync pulls a fresh snapshot from the controller into the view state.
func (m *Model) sync() tea.Cmd {
	prevMode := m.state.Mode
	m.state = m.ctl.Snapshot()
	m.palette = newPalette(m.state.Theme)
	m.sidebar.SetPalette(m.palette)
	m.sidebar.Sync(m.state.Notes, m.state.SelectedID)
	if m.state.Mode == session.ModeEditing && prevMode != session.ModeEditing && m.state.Draft != nil {
		m.editor.Open(*m.state.Draft)
	}
	m.refreshBody()
	if m.loading() && !m.spinning {
		m.spinning = true
		return m.spinner.Tick
	}
	return nil
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	bodyHeight := m.bodyHeight()
	sidebarWidth := m.sidebarWidth()
	mainWidth := m.mainWidth()
	m.sidebar.SetSize(sidebarWidth, bodyHeight)
	m.editor.SetSize(mainWidth, bodyHeight)
	m.viewport.SetWidth(mainWidth)
	m.viewport.SetHeight(max(1, bodyHeight-2))
	m.bodyKey = ""
	m.refreshBody()
}

func (m *Model) bodyHeight() int {
	return max(1, m.height-headerHeight-footerHeight)
}

func (m *Model) sidebarWidth() int {
	return min(m.opts.SidebarWidth, max(minListWidth, m.width/2))
}

func (m *Model) mainWidth() int {
	return max(minMainWidth, m.width-m.sidebarWidth()-dividerWidth)
}

// refreshBody re-renders the note body only when something it depends on
// changed.
func (m *Model) refreshBody() {
	proj := m.state.View()
	if proj.Kind != session.ViewNote {
		return
	}
	width := m.mainWidth()
	bodyKey := fmt.Sprintf("%s|%d|%t|%t|%s", proj.Note.ID, width, m.palette.dark, m.opts.RenderMarkdown, proj.Note.Content)
	if bodyKey == m.bodyKey {
		return
	}
	m.bodyKey = bodyKey
	if strings.TrimSpace(proj.Note.Content) == "" {
		m.viewport.SetContent(m.palette.muted.Render(noContentLabel))
	} else {
		m.viewport.SetContent(renderNoteBody(sanitizer.Content(proj.Note.Content), width, m.palette.dark, m.opts.RenderMarkdown))
	}
	m.viewport.GotoTop()
}

func (m *Model) render() string {
	width := max(m.width, minListWidth+minMainWidth+dividerWidth)
	bodyHeight := m.bodyHeight()
	divider := m.palette.divider.Render(strings.TrimRight(strings.Repeat(" │ \n", bodyHeight), "\n"))
	main := lipgloss.NewStyle().
		Width(m.mainWidth()).
		Height(bodyHeight).
		MaxHeight(bodyHeight).
		Render(m.renderMain())
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.View(), divider, main)
	content := lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(width), body, m.renderFooter(width))
	if m.confirm.IsOpen() {
		block, y := m.confirm.View(m.palette, m.width, m.height)
		content = overlayBlock(content, block, y)
	}
	return content
}

func (m *Model) renderHeader(width int) string {
	left := m.palette.header.Render("Notes")
	if m.opts.BaseURL != "" {
		left += "  " + m.palette.themeHint.Render(m.opts.BaseURL)
	}
	toggle := "[t] Dark"
	if m.state.Theme.IsDark() {
		toggle = "[t] Light"
	}
	right := m.palette.themeHint.Render(toggle)
	gap := max(1, width-lipgloss.Width(left)-lipgloss.Width(right))
	return left + strings.Repeat(" ", gap) + right
}

func (m *Model) renderMain() string {
	p := m.palette
	proj := m.state.View()
	if m.booting && proj.Kind != session.ViewError {
		proj.Kind = session.ViewLoading
	}
	switch proj.Kind {
	case session.ViewLoading:
		return m.spinner.View() + " " + p.muted.Render(loadingLabel)
	case session.ViewError:
		hint := "esc dismiss • r reload"
		if m.state.Draft != nil {
			hint = "esc back to editor • r reload"
		}
		return p.errorText.Render(proj.Message) + "\n\n" + p.help.Render(hint)
	case session.ViewEditor:
		return m.editor.View(p, proj.Creating)
	case session.ViewNote:
		lines := []string{
			p.noteTitle.Render(truncateToWidth(displayTitle(proj.Note.Title), m.mainWidth())),
			p.divider.Render(strings.Repeat("─", m.mainWidth())),
			m.viewport.View(),
		}
		return strings.Join(lines, "\n")
	default:
		return p.welcome.Render(welcomeTitle) + "\n\n" + p.muted.Render(welcomeMessage)
	}
}

func (m *Model) renderFooter(width int) string {
	status := m.renderStatus()
	var helpLine string
	if m.state.Mode == session.ModeEditing {
		helpLine = m.help.View(editorHelp(m.keys))
	} else {
		helpLine = m.help.View(normalHelp(m.keys))
	}
	credit := m.palette.footer.Render(fmt.Sprintf(footerCredit, m.now().Year()))
	return strings.Join([]string{
		truncateToWidth(status, width),
		truncateToWidth(helpLine, width),
		truncateToWidth(credit, width),
	}, "\n")
}
