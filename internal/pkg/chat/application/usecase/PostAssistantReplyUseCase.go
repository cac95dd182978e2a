package usecase

import (
	"context"
	"fmt"
	"log/slog"

	pubsub "github.com/Shreya020904/Planner-ui/internal/infrastructure/pubsub/port"
	chat "github.com/Shreya020904/Planner-ui/internal/pkg/chat/application/domain"
	repository "github.com/Shreya020904/Planner-ui/internal/pkg/chat/persistence/repository/port"
)

// PostAssistantReplyUseCase appends a reply authored by the assistant.
type PostAssistantReplyUseCase struct {
	Repo     repository.ChatRepository
	Notifier pubsub.Notifier
	Logger   *slog.Logger
}

func NewPostAssistantReplyUseCase(repo repository.ChatRepository, notifier pubsub.Notifier, logger *slog.Logger) *PostAssistantReplyUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostAssistantReplyUseCase{Repo: repo, Notifier: notifier, Logger: logger}
}

func (uc *PostAssistantReplyUseCase) Execute(ctx context.Context, in chat.AssistantReply) (*chat.Message, error) {
	c, err := chat.Open(in.ConversationID)
	if err != nil {
		return nil, err
	}
	draft, err := c.PostMessage(chat.AssistantID, in.Body)
	if err != nil {
		return nil, err
	}
	msg, err := uc.Repo.AppendMessage(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	publish(ctx, uc.Notifier, uc.Logger, c.ID)
	return &msg, nil
}
