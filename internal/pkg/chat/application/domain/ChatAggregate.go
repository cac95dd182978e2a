package chat

import (
	"strings"

	"github.com/Shreya020904/Planner-ui/internal/apperror"
)

// Domain-level errors for chat behaviors
var (
	ErrEmptyMessage   = apperror.New(apperror.ErrValidation, "message body is empty")
	ErrNoConversation = apperror.New(apperror.ErrValidation, "no conversation selected")
	ErrNotParticipant = apperror.New(apperror.ErrForbidden, "sender is not a participant in the conversation")
	ErrPeerNotFound   = apperror.New(apperror.ErrNotFound, "peer not found")
)

// Chat is a conversation seen from one of its two participants.
type Chat struct {
	ID ConversationID
	A  string
	B  string
}

// Open validates id and returns the chat it addresses.
func Open(id ConversationID) (*Chat, error) {
	if id == "" {
		return nil, ErrNoConversation
	}
	a, b, err := id.Participants()
	if err != nil {
		return nil, err
	}
	return &Chat{ID: id, A: a, B: b}, nil
}

// HasParticipant tells whether userID is part of this chat.
func (c *Chat) HasParticipant(userID string) bool {
	return c != nil && (userID == c.A || userID == c.B)
}

// Peer returns the participant that is not senderID.
func (c *Chat) Peer(senderID string) string {
	if senderID == c.A {
		return c.B
	}
	return c.A
}

// WithAssistant reports whether one side of the chat is the assistant.
func (c *Chat) WithAssistant() bool {
	return c.A == AssistantID || c.B == AssistantID
}

// PostMessage applies domain rules and returns a message ready to append.
// The store assigns ID, CreatedAt and Seq.
//
// Validations:
// - Body must contain something other than whitespace
// - Sender must be a participant
func (c *Chat) PostMessage(senderID, body string) (Message, error) {
	if strings.TrimSpace(body) == "" {
		return Message{}, ErrEmptyMessage
	}
	if !c.HasParticipant(senderID) {
		return Message{}, ErrNotParticipant
	}
	return Message{ConversationID: c.ID, SenderID: senderID, Body: body}, nil
}
