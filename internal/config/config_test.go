package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"HTTP_ADDR", "DB_URL", "DB_MAX_CONNS", "REDIS_URL", "JWT_SECRET", "JWT_ISSUER", "TOKEN_TTL",
		"ASSISTANT_REPLY_DELAY", "ASYNQ_CONCURRENCY", "ASYNQ_QUEUES", "LOG_LEVEL", "LOG_FORMAT",
		"PLATFORM_PROJECT_ID",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Empty(t, cfg.DBURL)
	assert.Empty(t, cfg.RedisURL)
	assert.Equal(t, "planner", cfg.JWTIssuer)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, time.Second, cfg.AssistantReplyDelay)
	assert.Equal(t, 10, cfg.AsynqConcurrency)
	assert.Equal(t, 8, cfg.DBMaxConns)
	assert.Equal(t, map[string]int{"chat": 2, "default": 1}, cfg.QueueWeights())
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("ASSISTANT_REPLY_DELAY", "250ms")
	t.Setenv("ASYNQ_CONCURRENCY", "3")
	t.Setenv("ASYNQ_QUEUES", "chat, low=0, =4")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, 250*time.Millisecond, cfg.AssistantReplyDelay)
	assert.Equal(t, 3, cfg.AsynqConcurrency)
	assert.Equal(t, map[string]int{"chat": 1, "low": 1}, cfg.QueueWeights())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing secret", map[string]string{}},
		{"bad delay", map[string]string{"JWT_SECRET": "x", "ASSISTANT_REPLY_DELAY": "soon"}},
		{"bad pool size", map[string]string{"JWT_SECRET": "x", "DB_MAX_CONNS": "-2"}},
		{"zero delay", map[string]string{"JWT_SECRET": "x", "ASSISTANT_REPLY_DELAY": "0s"}},
		{"negative ttl", map[string]string{"JWT_SECRET": "x", "TOKEN_TTL": "-1h"}},
		{"bad concurrency", map[string]string{"JWT_SECRET": "x", "ASYNQ_CONCURRENCY": "0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestQueueWeights_AlwaysPollsAssistantQueue(t *testing.T) {
	tests := []struct {
		queues string
		want   map[string]int
	}{
		{"default=1", map[string]int{"default": 1, "chat": 1}},
		{"", map[string]int{"chat": 1}},
		{"chat=5,low=1", map[string]int{"chat": 5, "low": 1}},
	}
	for _, tt := range tests {
		t.Run(tt.queues, func(t *testing.T) {
			cfg := &Config{AsynqQueues: tt.queues}
			assert.Equal(t, tt.want, cfg.QueueWeights())
		})
	}
}
