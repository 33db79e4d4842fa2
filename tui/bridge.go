package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"text-translator/models"
	"text-translator/services"
)

// Bridge forwards controller callbacks into a running program as messages.
// Messages sent before Attach are queued and delivered on attach.
type Bridge struct {
	mu      sync.Mutex
	send    func(tea.Msg)
	pending []tea.Msg
}

var _ services.Display = (*Bridge)(nil)

// NewBridge creates a detached bridge.
func NewBridge() *Bridge {
	return &Bridge{}
}

// Attach starts delivering messages to p.
func (b *Bridge) Attach(p *tea.Program) {
	b.attach(p.Send)
}

func (b *Bridge) attach(send func(tea.Msg)) {
	b.mu.Lock()
	b.send = send
	queued := b.pending
	b.pending = nil
	b.mu.Unlock()

	for _, msg := range queued {
		send(msg)
	}
}

func (b *Bridge) deliver(msg tea.Msg) {
	b.mu.Lock()
	send := b.send
	if send == nil {
		b.pending = append(b.pending, msg)
	}
	b.mu.Unlock()

	if send != nil {
		send(msg)
	}
}

// SetOutputText implements services.Display
func (b *Bridge) SetOutputText(text string) {
	b.deliver(outputMsg(text))
}

// Alert implements services.Display
func (b *Bridge) Alert(message string) {
	b.deliver(alertMsg(message))
}

// StateChanged is registered with Controller.OnStateChange.
func (b *Bridge) StateChanged(a models.Action) {
	b.deliver(statusMsg(a))
}
