package usecase

import (
	"context"
	"errors"
	"fmt"

	chat "github.com/Shreya020904/Planner-ui/internal/pkg/chat/application/domain"
	users "github.com/Shreya020904/Planner-ui/internal/repository/port"
)

// OpenConversationInput names the caller and the contact they picked.
type OpenConversationInput struct {
	UserID string
	PeerID string
}

// OpenConversationUseCase resolves the conversation between the caller and
// a peer. Nothing is written: a conversation exists as soon as it is
// addressed.
type OpenConversationUseCase struct {
	Users users.UserRepository
}

func NewOpenConversationUseCase(repo users.UserRepository) *OpenConversationUseCase {
	return &OpenConversationUseCase{Users: repo}
}

func (uc *OpenConversationUseCase) Execute(ctx context.Context, in OpenConversationInput) (chat.ConversationID, error) {
	id, err := chat.AddressOf(in.UserID, in.PeerID)
	if err != nil {
		return "", err
	}
	if in.PeerID == chat.AssistantID || in.PeerID == in.UserID {
		return id, nil
	}
	if _, err := uc.Users.FindByID(ctx, in.PeerID); err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return "", chat.ErrPeerNotFound
		}
		return "", fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return id, nil
}
