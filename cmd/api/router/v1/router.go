package v1

import (
	"context"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Shreya020904/Planner-ui/internal/auth"
	"github.com/Shreya020904/Planner-ui/internal/clock"
	cache "github.com/Shreya020904/Planner-ui/internal/infrastructure/cache/port"
	pubsub "github.com/Shreya020904/Planner-ui/internal/infrastructure/pubsub/port"
	qport "github.com/Shreya020904/Planner-ui/internal/infrastructure/queue/port"
	"github.com/Shreya020904/Planner-ui/internal/infrastructure/realtime"
	accountHTTP "github.com/Shreya020904/Planner-ui/internal/pkg/account/presentation/http"
	chatRepo "github.com/Shreya020904/Planner-ui/internal/pkg/chat/persistence/repository/port"
	chatController "github.com/Shreya020904/Planner-ui/internal/pkg/chat/presentation/controller"
	chatHTTP "github.com/Shreya020904/Planner-ui/internal/pkg/chat/presentation/http"
	"github.com/Shreya020904/Planner-ui/internal/pkg/chat/presentation/middleware"
	shellUsecase "github.com/Shreya020904/Planner-ui/internal/pkg/shell/application/usecase"
	shellController "github.com/Shreya020904/Planner-ui/internal/pkg/shell/presentation/controller"
	shellHTTP "github.com/Shreya020904/Planner-ui/internal/pkg/shell/presentation/http"
	taskRepo "github.com/Shreya020904/Planner-ui/internal/pkg/task/persistence/repository/port"
	taskHTTP "github.com/Shreya020904/Planner-ui/internal/pkg/task/presentation/http"
	users "github.com/Shreya020904/Planner-ui/internal/repository/port"
)

// Deps is everything main wires before mounting the API.
type Deps struct {
	Users    users.UserRepository
	Messages chatRepo.ChatRepository
	Tasks    taskRepo.TaskRepository
	Cache    cache.Cache
	Notifier pubsub.Notifier
	Queue    qport.Client
	Realtime *realtime.Router
	Auth     *auth.Authenticator
	Clock    clock.Clock
	Logger   *slog.Logger

	AssistantReplyDelay time.Duration
}

// RegisterRoutes mounts all version 1 API routes under /api/v1
func RegisterRoutes(r *gin.Engine, d Deps) {
	v1 := r.Group("/api/v1")

	prefs := shellUsecase.NewPreferences(d.Cache)
	store := shellUsecase.NewStore(prefs)
	push := shellController.PushToDevice(d.Realtime, d.Logger)
	store.Subscribe(push)

	accountHTTP.RegisterRoutes(v1, accountHTTP.Deps{Users: d.Users, Devices: prefs, Auth: d.Auth})
	shellHTTP.RegisterRoutes(v1, store)
	taskHTTP.RegisterRoutes(v1, taskHTTP.Deps{Tasks: d.Tasks, Clock: d.Clock, Auth: d.Auth})
	chatHTTP.RegisterRoutes(v1, chatHTTP.Deps{
		Users:      d.Users,
		Messages:   d.Messages,
		Notifier:   d.Notifier,
		Queue:      d.Queue,
		Router:     d.Realtime,
		Auth:       d.Auth,
		Limiter:    middleware.NewRateLimiter(middleware.DefaultRate, middleware.DefaultBurst),
		Logger:     d.Logger,
		ReplyDelay: d.AssistantReplyDelay,
		// new sockets start with the device's current shell state
		OnConnect: []chatController.ConnectHook{func(conn *realtime.Connection) {
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			st, err := store.State(ctx, conn.DeviceID)
			if err != nil {
				d.Logger.Warn("load shell state", slog.String("device_id", conn.DeviceID), slog.String("error", err.Error()))
				return
			}
			push(conn.DeviceID, st)
		}},
	})
}
