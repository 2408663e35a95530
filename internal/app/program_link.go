package app

import (
	"context"
	"sync"

	tea "charm.land/bubbletea/v2"

	"notes/internal/session"
)

type confirmRequestMsg struct {
	prompt string
	reply  chan<- bool
}

type stateChangedMsg struct{}

// programLink connects the session controller, which runs inside tea.Cmd
// goroutines, back to the running program.
type programLink struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

func newProgramLink() *programLink {
	return &programLink{}
}

func (l *programLink) attach(send func(tea.Msg)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.send = send
}

func (l *programLink) sender() func(tea.Msg) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.send
}

// Confirm is a session.ConfirmFunc. It asks the model to open the dialog
// and blocks until the user answers or ctx ends.
func (l *programLink) Confirm(ctx context.Context, prompt string) bool {
	send := l.sender()
	if send == nil {
		return false
	}
	reply := make(chan bool, 1)
	send(confirmRequestMsg{prompt: prompt, reply: reply})
	select {
	case ok := <-reply:
		return ok
	case <-ctx.Done():
		return false
	}
}

// StateChanged is a session observer. Observers can fire from inside
// Update, so the send must not block the event loop.
func (l *programLink) StateChanged(session.State) {
	send := l.sender()
	if send == nil {
		return
	}
	go send(stateChangedMsg{})
}
