package usecase

import (
	chat "github.com/Shreya020904/Planner-ui/internal/pkg/chat/application/domain"
)

// JoinConversationInput validates a request to follow a conversation.
type JoinConversationInput struct {
	ConversationID chat.ConversationID
	UserID         string
}

// JoinConversationUseCase ensures the user belongs to the conversation
// before its history is read or followed live. Membership is encoded in
// the id itself, so no store call is needed.
type JoinConversationUseCase struct{}

func NewJoinConversationUseCase() *JoinConversationUseCase {
	return &JoinConversationUseCase{}
}

func (uc *JoinConversationUseCase) Execute(in JoinConversationInput) (*chat.Chat, error) {
	c, err := chat.Open(in.ConversationID)
	if err != nil {
		return nil, err
	}
	if !c.HasParticipant(in.UserID) {
		return nil, chat.ErrNotParticipant
	}
	return c, nil
}
