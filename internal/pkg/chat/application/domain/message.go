package chat

import (
	"sort"
	"time"
)

// Message is one entry of a conversation. Messages are append-only: never
// edited, never deleted.
type Message struct {
	ID             string         `json:"id"`
	ConversationID ConversationID `json:"conversation_id"`
	SenderID       string         `json:"sender_id"`
	Body           string         `json:"body"`
	CreatedAt      time.Time      `json:"created_at"`
	// Seq is the store's insertion counter. It orders messages that share
	// a timestamp.
	Seq int64 `json:"seq"`
}

// Before reports whether m sorts before o: by timestamp, then insertion.
func (m Message) Before(o Message) bool {
	if !m.CreatedAt.Equal(o.CreatedAt) {
		return m.CreatedAt.Before(o.CreatedAt)
	}
	return m.Seq < o.Seq
}

// SortMessages orders msgs in place, oldest first.
func SortMessages(msgs []Message) {
	sort.SliceStable(msgs, func(i, j int) bool { return msgs[i].Before(msgs[j]) })
}
