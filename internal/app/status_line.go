package app

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
)

const defaultStatusTTL = 4 * time.Second

type statusLevel int

const (
	statusLevelInfo statusLevel = iota
	statusLevelError
)

type statusExpiredMsg struct {
	seq int
}

// statusLine is the transient footer message. A zero statusTTL keeps the
// message until it is replaced.
type statusLine struct {
	text  string
	level statusLevel
	until time.Time
	seq   int
	armed bool
}

func (m *Model) setStatus(text string) {
	m.showStatus(statusLevelInfo, text)
}

func (m *Model) setStatusError(text string) {
	m.showStatus(statusLevelError, text)
}

func (m *Model) showStatus(level statusLevel, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		m.clearStatus()
		return
	}
	next := statusLine{text: text, level: level, seq: m.status.seq + 1}
	if m.statusTTL > 0 {
		next.until = m.now().Add(m.statusTTL)
		next.armed = true
	}
	m.status = next
}

func (m *Model) clearStatus() {
	m.status = statusLine{seq: m.status.seq + 1}
}

// statusTimer returns the expiry tick for a message shown during the
// current update, at most once per message.
func (m *Model) statusTimer() tea.Cmd {
	if !m.status.armed {
		return nil
	}
	m.status.armed = false
	seq := m.status.seq
	return tea.Tick(m.statusTTL, func(time.Time) tea.Msg {
		return statusExpiredMsg{seq: seq}
	})
}

func (m *Model) expireStatus(msg statusExpiredMsg) {
	if msg.seq != m.status.seq {
		return
	}
	m.clearStatus()
}

func (m *Model) statusActive() bool {
	if m.status.text == "" {
		return false
	}
	return m.status.until.IsZero() || m.now().Before(m.status.until)
}

func (m *Model) renderStatus() string {
	if !m.statusActive() {
		return ""
	}
	if m.status.level == statusLevelError {
		return m.palette.statusError.Render(m.status.text)
	}
	return m.palette.status.Render(m.status.text)
}
