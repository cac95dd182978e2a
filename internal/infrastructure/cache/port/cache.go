package port

import (
	"context"
	"time"
)

// Cache is the string key-value store behind per-device preferences
// (theme, remembered display name). Implementations are safe for
// concurrent use.
type Cache interface {
	// Get returns ("", ErrMiss) for absent or expired keys. Any other error
	// means the backend could not answer.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value; ttl <= 0 keeps it until deleted.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error

	// Del reports how many of keys existed.
	Del(ctx context.Context, keys ...string) (int64, error)

	// Ping is used by the health endpoint.
	Ping(ctx context.Context) error

	Close() error
}

// ErrMiss tells a missing key apart from a backend failure.
var ErrMiss = errMiss{}

type errMiss struct{}

func (errMiss) Error() string { return "cache: miss" }
