package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the process configuration. Every field comes from the
// environment (optionally seeded by a .env file).
type Config struct {
	HTTPAddr string

	// DBURL selects the Postgres store; empty keeps everything in memory.
	DBURL string
	// DBMaxConns caps the Postgres pool.
	DBMaxConns int
	// RedisURL enables the redis cache, pub/sub fan-out and the asynq queue.
	// Empty falls back to in-process adapters.
	RedisURL string

	JWTSecret string
	JWTIssuer string
	TokenTTL  time.Duration

	AssistantReplyDelay time.Duration
	AsynqConcurrency    int
	// AsynqQueues is a CSV like "chat=2,default=1".
	AsynqQueues string

	LogLevel  string
	LogFormat string

	// PlatformProjectID is an opaque identifier for the hosting platform.
	PlatformProjectID string
}

// Load reads envFile (if present) and then the environment.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		// a missing .env is not an error; the environment may be set directly
		_ = godotenv.Load(envFile)
	}

	cfg := &Config{
		HTTPAddr:            getEnvOrDefault("HTTP_ADDR", ":8080"),
		DBURL:               strings.TrimSpace(os.Getenv("DB_URL")),
		DBMaxConns:          8,
		RedisURL:            strings.TrimSpace(os.Getenv("REDIS_URL")),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		JWTIssuer:           getEnvOrDefault("JWT_ISSUER", "planner"),
		TokenTTL:            24 * time.Hour,
		AssistantReplyDelay: time.Second,
		AsynqConcurrency:    10,
		AsynqQueues:         getEnvOrDefault("ASYNQ_QUEUES", "chat=2,default=1"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "text"),
		PlatformProjectID:   os.Getenv("PLATFORM_PROJECT_ID"),
	}

	var err error
	if cfg.TokenTTL, err = durationEnv("TOKEN_TTL", cfg.TokenTTL); err != nil {
		return nil, err
	}
	if cfg.AssistantReplyDelay, err = durationEnv("ASSISTANT_REPLY_DELAY", cfg.AssistantReplyDelay); err != nil {
		return nil, err
	}
	if cfg.AssistantReplyDelay == 0 {
		return nil, fmt.Errorf("config: ASSISTANT_REPLY_DELAY must be positive")
	}
	if v := strings.TrimSpace(os.Getenv("DB_MAX_CONNS")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("config: DB_MAX_CONNS must be a positive integer, got %q", v)
		}
		cfg.DBMaxConns = n
	}
	if v := strings.TrimSpace(os.Getenv("ASYNQ_CONCURRENCY")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("config: ASYNQ_CONCURRENCY must be a positive integer, got %q", v)
		}
		cfg.AsynqConcurrency = n
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET environment variable is not set")
	}
	return cfg, nil
}

// AssistantQueue is the asynq queue carrying delayed assistant replies.
const AssistantQueue = "chat"

// QueueWeights parses AsynqQueues into a queue->priority map.
func (c *Config) QueueWeights() map[string]int {
	res := make(map[string]int)
	for _, part := range strings.Split(c.AsynqQueues, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		kv := strings.SplitN(part, "=", 2)
		name := strings.TrimSpace(kv[0])
		if name == "" {
			continue
		}
		w := 1
		if len(kv) == 2 {
			if i, err := strconv.Atoi(strings.TrimSpace(kv[1])); err == nil && i > 0 {
				w = i
			}
		}
		res[name] = w
	}
	// replies are enqueued on AssistantQueue; it must always be polled
	if res[AssistantQueue] == 0 {
		res[AssistantQueue] = 1
	}
	return res
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("config: %s must be a non-negative duration, got %q", key, v)
	}
	return d, nil
}
