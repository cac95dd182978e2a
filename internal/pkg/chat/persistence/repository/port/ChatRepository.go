package repository

import (
	"context"

	chat "github.com/Shreya020904/Planner-ui/internal/pkg/chat/application/domain"
)

// ChatRepository defines persistence operations for the chat domain.
// Messages are append-only; there is no update or delete.
type ChatRepository interface {
	// AppendMessage stores m and returns it with ID, CreatedAt and Seq
	// assigned by the store.
	AppendMessage(ctx context.Context, m chat.Message) (chat.Message, error)
	// ListMessages returns every message of the conversation, oldest first.
	ListMessages(ctx context.Context, conversationID chat.ConversationID) ([]chat.Message, error)
}
