package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	pubsub "github.com/Shreya020904/Planner-ui/internal/infrastructure/pubsub/port"
	queue "github.com/Shreya020904/Planner-ui/internal/infrastructure/queue/port"
	chat "github.com/Shreya020904/Planner-ui/internal/pkg/chat/application/domain"
	repository "github.com/Shreya020904/Planner-ui/internal/pkg/chat/persistence/repository/port"
)

// DefaultAssistantReplyDelay is how long the assistant "types" before
// answering.
const DefaultAssistantReplyDelay = time.Second

// Responder picks the assistant's answer to a message.
type Responder interface {
	Reply(message string) string
}

// SendMessageInput carries the data needed to send a new message
type SendMessageInput struct {
	ConversationID chat.ConversationID
	SenderID       string
	Body           string
}

// SendMessageUseCase appends a message and tells live subscribers about it.
// Messages to the assistant also schedule its reply.
type SendMessageUseCase struct {
	Repo       repository.ChatRepository
	Notifier   pubsub.Notifier
	Queue      queue.Client
	Responder  Responder
	ReplyDelay time.Duration
	Logger     *slog.Logger
}

func NewSendMessageUseCase(repo repository.ChatRepository, notifier pubsub.Notifier, q queue.Client, responder Responder, replyDelay time.Duration, logger *slog.Logger) *SendMessageUseCase {
	if replyDelay <= 0 {
		replyDelay = DefaultAssistantReplyDelay
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SendMessageUseCase{
		Repo:       repo,
		Notifier:   notifier,
		Queue:      q,
		Responder:  responder,
		ReplyDelay: replyDelay,
		Logger:     logger,
	}
}

// Execute validates and appends the message. Empty bodies and missing
// conversations are rejected before anything is written. A failure to
// notify or to schedule the assistant reply is logged, not returned: the
// message itself is stored.
func (uc *SendMessageUseCase) Execute(ctx context.Context, in SendMessageInput) (*chat.Message, error) {
	c, err := chat.Open(in.ConversationID)
	if err != nil {
		return nil, err
	}
	draft, err := c.PostMessage(in.SenderID, in.Body)
	if err != nil {
		return nil, err
	}

	msg, err := uc.Repo.AppendMessage(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	publish(ctx, uc.Notifier, uc.Logger, c.ID)

	if c.Peer(in.SenderID) == chat.AssistantID && in.SenderID != chat.AssistantID {
		uc.scheduleReply(ctx, msg, in.Body)
	}
	return &msg, nil
}

// scheduleReply keys the task by the triggering message so a retried
// enqueue cannot make the assistant answer twice.
func (uc *SendMessageUseCase) scheduleReply(ctx context.Context, trigger chat.Message, body string) {
	id := trigger.ConversationID
	payload, err := json.Marshal(chat.AssistantReply{ConversationID: id, Body: uc.Responder.Reply(body)})
	if err != nil {
		uc.Logger.ErrorContext(ctx, "encode assistant reply", slog.String("error", err.Error()))
		return
	}
	_, err = uc.Queue.Enqueue(ctx,
		queue.Task{Type: chat.AssistantReplyTaskType, Payload: payload},
		queue.EnqueueOption{
			TaskID:    chat.AssistantReplyTaskType + ":" + trigger.ID,
			Queue:     chat.AssistantReplyQueue,
			ProcessIn: uc.ReplyDelay,
			MaxRetry:  3,
		})
	if err != nil {
		uc.Logger.ErrorContext(ctx, "schedule assistant reply",
			slog.String("conversation_id", id.String()), slog.String("error", err.Error()))
	}
}

func publish(ctx context.Context, n pubsub.Notifier, logger *slog.Logger, id chat.ConversationID) {
	if err := n.Publish(ctx, chat.Topic(id)); err != nil {
		logger.WarnContext(ctx, "publish conversation change",
			slog.String("conversation_id", id.String()), slog.String("error", err.Error()))
	}
}
