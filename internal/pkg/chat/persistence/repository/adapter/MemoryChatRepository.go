package adapter

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Shreya020904/Planner-ui/internal/clock"
	chat "github.com/Shreya020904/Planner-ui/internal/pkg/chat/application/domain"
	repository "github.com/Shreya020904/Planner-ui/internal/pkg/chat/persistence/repository/port"
)

// MemoryChatRepository keeps conversations in process memory.
type MemoryChatRepository struct {
	mu            sync.RWMutex
	clock         clock.Clock
	seq           int64
	conversations map[chat.ConversationID][]chat.Message
}

func NewMemoryChatRepository(clk clock.Clock) *MemoryChatRepository {
	if clk == nil {
		clk = clock.Real()
	}
	return &MemoryChatRepository{
		clock:         clk,
		conversations: make(map[chat.ConversationID][]chat.Message),
	}
}

var _ repository.ChatRepository = (*MemoryChatRepository)(nil)

func (r *MemoryChatRepository) AppendMessage(_ context.Context, m chat.Message) (chat.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	m.Seq = r.seq
	m.ID = uuid.NewString()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = r.clock.Now().UTC()
	}
	r.conversations[m.ConversationID] = append(r.conversations[m.ConversationID], m)
	return m, nil
}

func (r *MemoryChatRepository) ListMessages(_ context.Context, conversationID chat.ConversationID) ([]chat.Message, error) {
	r.mu.RLock()
	msgs := make([]chat.Message, len(r.conversations[conversationID]))
	copy(msgs, r.conversations[conversationID])
	r.mu.RUnlock()

	chat.SortMessages(msgs)
	return msgs, nil
}
