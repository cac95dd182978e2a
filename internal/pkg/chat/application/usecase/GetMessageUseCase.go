package usecase

import (
	"context"
	"fmt"

	chat "github.com/Shreya020904/Planner-ui/internal/pkg/chat/application/domain"
	repository "github.com/Shreya020904/Planner-ui/internal/pkg/chat/persistence/repository/port"
)

// GetMessageInput carries parameters to fetch messages of a conversation
type GetMessageInput struct {
	ConversationID chat.ConversationID
	UserID         string
}

// GetMessageUseCase returns a one-shot, ordered snapshot of a conversation.
type GetMessageUseCase struct {
	Repo repository.ChatRepository
	Join *JoinConversationUseCase
}

func NewGetMessageUseCase(repo repository.ChatRepository) *GetMessageUseCase {
	return &GetMessageUseCase{Repo: repo, Join: NewJoinConversationUseCase()}
}

func (uc *GetMessageUseCase) Execute(ctx context.Context, in GetMessageInput) ([]chat.Message, error) {
	if _, err := uc.Join.Execute(JoinConversationInput(in)); err != nil {
		return nil, err
	}
	msgs, err := uc.Repo.ListMessages(ctx, in.ConversationID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	if msgs == nil {
		msgs = []chat.Message{}
	}
	chat.SortMessages(msgs)
	return msgs, nil
}
