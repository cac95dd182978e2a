package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	v1 "github.com/Shreya020904/Planner-ui/cmd/api/router/v1"
	"github.com/Shreya020904/Planner-ui/internal/auth"
	"github.com/Shreya020904/Planner-ui/internal/clock"
	"github.com/Shreya020904/Planner-ui/internal/config"
	cacheAdapter "github.com/Shreya020904/Planner-ui/internal/infrastructure/cache/adapter"
	cache "github.com/Shreya020904/Planner-ui/internal/infrastructure/cache/port"
	"github.com/Shreya020904/Planner-ui/internal/infrastructure/database"
	pubsubAdapter "github.com/Shreya020904/Planner-ui/internal/infrastructure/pubsub/adapter"
	pubsub "github.com/Shreya020904/Planner-ui/internal/infrastructure/pubsub/port"
	queueAdapter "github.com/Shreya020904/Planner-ui/internal/infrastructure/queue/adapter"
	qport "github.com/Shreya020904/Planner-ui/internal/infrastructure/queue/port"
	"github.com/Shreya020904/Planner-ui/internal/infrastructure/realtime"
	"github.com/Shreya020904/Planner-ui/internal/logging"
	chat "github.com/Shreya020904/Planner-ui/internal/pkg/chat/application/domain"
	chatTask "github.com/Shreya020904/Planner-ui/internal/pkg/chat/application/task"
	chatUsecase "github.com/Shreya020904/Planner-ui/internal/pkg/chat/application/usecase"
	chatRepoAdapter "github.com/Shreya020904/Planner-ui/internal/pkg/chat/persistence/repository/adapter"
	chatRepo "github.com/Shreya020904/Planner-ui/internal/pkg/chat/persistence/repository/port"
	taskRepoAdapter "github.com/Shreya020904/Planner-ui/internal/pkg/task/persistence/repository/adapter"
	taskRepo "github.com/Shreya020904/Planner-ui/internal/pkg/task/persistence/repository/port"
	userAdapter "github.com/Shreya020904/Planner-ui/internal/repository/adapter"
	users "github.com/Shreya020904/Planner-ui/internal/repository/port"
)

func main() {
	var (
		addr    string
		envFile string
		migrate bool
	)
	pflag.StringVar(&addr, "addr", "", "listen address, overrides HTTP_ADDR")
	pflag.StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the environment")
	pflag.BoolVar(&migrate, "migrate", false, "apply the embedded schema before serving")
	pflag.Parse()

	cfg, err := config.Load(envFile)
	if err != nil {
		slog.Error("load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if addr != "" {
		cfg.HTTPAddr = addr
	}

	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, migrate, logger); err != nil {
		logger.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

type stores struct {
	users    users.UserRepository
	messages chatRepo.ChatRepository
	tasks    taskRepo.TaskRepository
}

type infra struct {
	cache    cache.Cache
	notifier pubsub.Notifier
	client   qport.Client
	worker   qport.Server
}

func run(ctx context.Context, cfg *config.Config, migrate bool, logger *slog.Logger) error {
	clk := clock.Real()

	st, closeStores, err := openStores(ctx, cfg, migrate, clk, logger)
	if err != nil {
		return err
	}
	defer closeStores()

	in, closeInfra, err := openInfra(ctx, cfg, clk, logger)
	if err != nil {
		return err
	}
	defer closeInfra()

	chatTask.RegisterAssistantReplyTask(in.worker, chatUsecase.NewPostAssistantReplyUseCase(st.messages, in.notifier, logger))

	sessions := realtime.NewRouter()

	r := gin.New()
	r.Use(gin.Recovery(), logging.Middleware(logger))
	r.GET("/health", func(c *gin.Context) {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()
		if err := in.cache.Ping(pingCtx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "DEGRADED", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "OK",
			"sessions": sessions.Sessions(),
			"project":  cfg.PlatformProjectID,
		})
	})
	v1.RegisterRoutes(r, v1.Deps{
		Users:               st.users,
		Messages:            st.messages,
		Tasks:               st.tasks,
		Cache:               in.cache,
		Notifier:            in.notifier,
		Queue:               in.client,
		Realtime:            sessions,
		Auth:                auth.NewAuthenticator(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL),
		Clock:               clk,
		Logger:              logger,
		AssistantReplyDelay: cfg.AssistantReplyDelay,
	})

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return in.worker.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		sessions.Close()
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// openStores picks Postgres when DB_URL is set and memory otherwise.
func openStores(ctx context.Context, cfg *config.Config, migrate bool, clk clock.Clock, logger *slog.Logger) (stores, func(), error) {
	if cfg.DBURL == "" {
		logger.Warn("DB_URL not set, data is kept in memory")
		return stores{
			users:    userAdapter.NewMemoryUserRepository(clk),
			messages: chatRepoAdapter.NewMemoryChatRepository(clk),
			tasks:    taskRepoAdapter.NewMemoryTaskRepository(clk),
		}, func() {}, nil
	}

	connectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	pool, err := database.Open(connectCtx, cfg.DBURL, database.PoolOptions{MaxConns: int32(cfg.DBMaxConns)})
	if err != nil {
		return stores{}, nil, err
	}
	if migrate {
		if err := database.Migrate(connectCtx, pool); err != nil {
			pool.Close()
			return stores{}, nil, err
		}
		logger.Info("schema applied")
	}
	return stores{
		users:    userAdapter.NewPgUserRepository(pool),
		messages: chatRepoAdapter.NewPgChatRepository(pool),
		tasks:    taskRepoAdapter.NewPgTaskRepository(pool),
	}, pool.Close, nil
}

// openInfra picks Redis-backed cache, fan-out and asynq when REDIS_URL is
// set, and in-process adapters otherwise.
func openInfra(ctx context.Context, cfg *config.Config, clk clock.Clock, logger *slog.Logger) (infra, func(), error) {
	if cfg.RedisURL == "" {
		logger.Warn("REDIS_URL not set, using in-process cache, pub/sub and queue")
		local := queueAdapter.NewLocalQueue(clk, logger)
		notifier := pubsubAdapter.NewMemoryNotifier()
		in := infra{
			cache:    cacheAdapter.NewMemoryCache(clk),
			notifier: notifier,
			client:   local,
			worker:   local,
		}
		return in, func() { _ = notifier.Close() }, nil
	}

	client, err := cacheAdapter.DialRedis(ctx, cfg.RedisURL)
	if err != nil {
		return infra{}, nil, err
	}
	notifier, err := pubsubAdapter.NewRedisNotifier(ctx, client, chat.TopicPattern, logger)
	if err != nil {
		_ = client.Close()
		return infra{}, nil, err
	}
	queueClient, err := queueAdapter.NewAsynqClient(cfg.RedisURL)
	if err != nil {
		_ = notifier.Close()
		_ = client.Close()
		return infra{}, nil, err
	}
	worker, err := queueAdapter.NewAsynqServer(queueAdapter.AsynqServerConfig{
		RedisURL:    cfg.RedisURL,
		Concurrency: cfg.AsynqConcurrency,
		Queues:      cfg.QueueWeights(),
		Logger:      logger,
	})
	if err != nil {
		_ = queueClient.Close()
		_ = notifier.Close()
		_ = client.Close()
		return infra{}, nil, err
	}

	in := infra{
		cache:    cacheAdapter.NewRedisCache(client, "planner:"),
		notifier: notifier,
		client:   queueClient,
		worker:   worker,
	}
	closeAll := func() {
		_ = queueClient.Close()
		_ = notifier.Close()
		_ = client.Close()
	}
	return in, closeAll, nil
}
