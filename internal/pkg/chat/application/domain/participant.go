package chat

import (
	"strings"
	"sync"
)

// The assistant is a reserved participant that answers automatically. It
// has no user record.
const (
	AssistantID   = "ai-bot"
	AssistantName = "AI Assistant"
)

// Contact is someone the current user can open a conversation with.
type Contact struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Designation string `json:"designation,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
	Assistant   bool   `json:"assistant,omitempty"`
}

// AssistantContact is the directory entry for the assistant.
func AssistantContact() Contact {
	return Contact{ID: AssistantID, DisplayName: AssistantName, Assistant: true}
}

// MatchesQuery reports whether the display name contains q, ignoring case.
// An empty query matches everyone.
func (c Contact) MatchesQuery(q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	return q == "" || strings.Contains(strings.ToLower(c.DisplayName), q)
}

// PinnedSet is the ordered set of contacts a session pinned to the top of
// its list. It is not persisted.
type PinnedSet struct {
	mu  sync.Mutex
	ids []string
}

// Pin adds id at the end unless already pinned.
func (p *PinnedSet) Pin(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, existing := range p.ids {
		if existing == id {
			return
		}
	}
	p.ids = append(p.ids, id)
}

func (p *PinnedSet) Unpin(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, existing := range p.ids {
		if existing == id {
			p.ids = append(p.ids[:i], p.ids[i+1:]...)
			return
		}
	}
}

// IDs returns the pinned ids in pin order.
func (p *PinnedSet) IDs() []string {
	if p == nil {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.ids...)
}
