package session

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Message is a minimal view of one chat turn. Only text is kept; tool blocks
// are transient to the run that produced them.
type Message struct {
	Role string `json:"role"`
	Text string `json:"text,omitempty"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// DefaultMaxMessages caps how many messages one session retains.
const DefaultMaxMessages = 10

// Manager tracks per-session conversation history, capped to the newest
// messages. Histories live in memory for the lifetime of the process.
type Manager struct {
	mu          sync.Mutex
	maxMessages int
	sessions    map[string][]Message
}

func NewManager(maxMessages int) *Manager {
	if maxMessages <= 0 {
		maxMessages = DefaultMaxMessages
	}
	return &Manager{maxMessages: maxMessages, sessions: map[string][]Message{}}
}

// NewSession returns a fresh session ID.
func (m *Manager) NewSession() string {
	id := uuid.NewString()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[id] = nil
	return id
}

// AddExchange records one user question and the assistant's answer, trimming
// the oldest messages beyond the cap.
func (m *Manager) AddExchange(id, userText, assistantText string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	msgs := append(m.sessions[id],
		Message{Role: RoleUser, Text: userText},
		Message{Role: RoleAssistant, Text: assistantText},
	)
	if len(msgs) > m.maxMessages {
		msgs = msgs[len(msgs)-m.maxMessages:]
	}
	m.sessions[id] = msgs
}

// History renders a session's retained messages as prompt-ready text, one
// "Role: text" line pair per exchange. Unknown sessions yield "".
func (m *Manager) History(id string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	msgs := m.sessions[id]
	if len(msgs) == 0 {
		return ""
	}
	lines := make([]string, 0, len(msgs))
	for _, msg := range msgs {
		label := "User"
		if msg.Role == RoleAssistant {
			label = "Assistant"
		}
		lines = append(lines, label+": "+msg.Text)
	}
	return strings.Join(lines, "\n")
}

// Clear forgets a session's history but keeps the session usable.
func (m *Manager) Clear(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[id] = nil
}
