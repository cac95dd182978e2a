package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Shreya020904/Planner-ui/internal/auth"
	pubsub "github.com/Shreya020904/Planner-ui/internal/infrastructure/pubsub/port"
	qport "github.com/Shreya020904/Planner-ui/internal/infrastructure/queue/port"
	"github.com/Shreya020904/Planner-ui/internal/infrastructure/realtime"
	"github.com/Shreya020904/Planner-ui/internal/pkg/chat/application/assistant"
	"github.com/Shreya020904/Planner-ui/internal/pkg/chat/application/live"
	"github.com/Shreya020904/Planner-ui/internal/pkg/chat/application/usecase"
	repository "github.com/Shreya020904/Planner-ui/internal/pkg/chat/persistence/repository/port"
	"github.com/Shreya020904/Planner-ui/internal/pkg/chat/presentation/controller"
	"github.com/Shreya020904/Planner-ui/internal/pkg/chat/presentation/middleware"
	users "github.com/Shreya020904/Planner-ui/internal/repository/port"
)

// Deps carries what the chat endpoints need.
type Deps struct {
	Users    users.UserRepository
	Messages repository.ChatRepository
	Notifier pubsub.Notifier
	Queue    qport.Client
	Router   *realtime.Router
	Auth     *auth.Authenticator
	Limiter  *middleware.RateLimiter
	Logger   *slog.Logger

	// ReplyDelay defaults to usecase.DefaultAssistantReplyDelay.
	ReplyDelay time.Duration
	OnConnect  []controller.ConnectHook
}

// RegisterRoutes registers chat-related HTTP endpoints under the given router group
// It constructs per-endpoint controllers and binds them directly to routes.
func RegisterRoutes(g *gin.RouterGroup, d Deps) {
	if d.Limiter == nil {
		d.Limiter = middleware.NewRateLimiter(middleware.DefaultRate, middleware.DefaultBurst)
	}

	sendUC := usecase.NewSendMessageUseCase(d.Messages, d.Notifier, d.Queue, assistant.Default(), d.ReplyDelay, d.Logger)
	openUC := usecase.NewOpenConversationUseCase(d.Users)
	contactsUC := usecase.NewListContactsUseCase(d.Users)
	feed := live.NewFeed(d.Messages, d.Notifier, d.Logger)

	openCtl := controller.NewOpenConversationController(openUC)
	contactsCtl := controller.NewListContactsController(contactsUC)
	sendMsgCtl := controller.NewSendMessageController(sendUC)
	getMsgCtl := controller.NewGetMessageController(usecase.NewGetMessageUseCase(d.Messages))
	socketCtl := controller.NewChatSocketController(d.Router, feed, openUC, sendUC, contactsUC, d.Limiter, d.Logger)
	socketCtl.OnConnect(d.OnConnect...)

	c := g.Group("/chat", d.Auth.RequireAuth())

	// GET /api/v1/chat/contacts?q= -> contact sidebar
	c.GET("/contacts", contactsCtl.Handle())

	// POST /api/v1/chat/conversations -> resolve the chat id for a peer
	c.POST("/conversations", openCtl.Handle())

	// POST /api/v1/chat/:chatId -> send a message into a chat
	c.POST("/:chatId", d.Limiter.PerUser(), sendMsgCtl.Handle())

	// GET /api/v1/chat/:chatId/messages -> fetch messages by chat id
	c.GET("/:chatId/messages", getMsgCtl.Handle())

	// GET /api/v1/chat/ws?token=&device_id= -> websocket endpoint for realtime chat
	c.GET("/ws", socketCtl.Handle())
}
