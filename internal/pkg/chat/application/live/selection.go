package live

import (
	"context"
	"sync"

	chat "github.com/Shreya020904/Planner-ui/internal/pkg/chat/application/domain"
)

// Selection follows at most one conversation at a time, the way a chat
// view shows one thread. Switching stops the previous subscription before
// the next one starts, so updates never cross conversations.
type Selection struct {
	feed *Feed

	mu      sync.Mutex
	current *Subscription
}

func NewSelection(feed *Feed) *Selection {
	return &Selection{feed: feed}
}

// Select switches to conversationID. Callbacks must not call back into the
// Selection.
func (s *Selection) Select(ctx context.Context, conversationID chat.ConversationID, onUpdate UpdateFunc, opts ...Option) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil {
		s.current.Stop()
		s.current = nil
	}
	sub, err := s.feed.Subscribe(ctx, conversationID, onUpdate, opts...)
	if err != nil {
		return err
	}
	s.current = sub
	return nil
}

// Current returns the followed conversation, or "" when none.
func (s *Selection) Current() chat.ConversationID {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return ""
	}
	return s.current.ConversationID()
}

// Release stops following the current conversation.
func (s *Selection) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil {
		s.current.Stop()
		s.current = nil
	}
}
