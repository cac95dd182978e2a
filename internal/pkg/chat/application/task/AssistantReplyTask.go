package task

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Shreya020904/Planner-ui/internal/apperror"
	qport "github.com/Shreya020904/Planner-ui/internal/infrastructure/queue/port"
	chat "github.com/Shreya020904/Planner-ui/internal/pkg/chat/application/domain"
	"github.com/Shreya020904/Planner-ui/internal/pkg/chat/application/usecase"
)

// RegisterAssistantReplyTask binds the assistant reply handler to srv.
func RegisterAssistantReplyTask(srv qport.Server, uc *usecase.PostAssistantReplyUseCase) {
	srv.Register(chat.AssistantReplyTaskType, func(ctx context.Context, t qport.Task) error {
		var p chat.AssistantReply
		if err := json.Unmarshal(t.Payload, &p); err != nil {
			// malformed payload: retrying cannot fix it
			uc.Logger.Error("decode assistant reply", "error", err.Error())
			return nil
		}

		// give the store a reasonable time budget per task execution
		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		_, err := uc.Execute(ctx, p)
		if err != nil && errors.Is(err, apperror.ErrValidation) {
			uc.Logger.Error("drop assistant reply", "conversation_id", p.ConversationID.String(), "error", err.Error())
			return nil
		}
		// persistence errors are retried per the adapter's policy
		return err
	})
}
