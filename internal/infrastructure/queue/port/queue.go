package port

import (
	"context"
	"errors"
	"time"
)

// ErrDuplicateTask is returned by Enqueue when a task with the same
// EnqueueOption.TaskID is still waiting to run.
var ErrDuplicateTask = errors.New("queue: duplicate task id")

// Task is a unit of deferred work: a stable type name plus an opaque payload.
type Task struct {
	Type    string
	Payload []byte
}

// Handler runs one Task. A non-nil error asks the backend to retry, so
// handlers must tolerate running more than once.
type Handler func(ctx context.Context, task Task) error

// EnqueueOption tunes a single Enqueue call. Zero values leave the backend
// default in place.
type EnqueueOption struct {
	// TaskID makes the enqueue idempotent while the task is pending.
	TaskID    string
	Queue     string
	ProcessIn time.Duration
	// ProcessAt wins over ProcessIn when both are set.
	ProcessAt time.Time
	MaxRetry  int
}

// Client schedules tasks.
type Client interface {
	Enqueue(ctx context.Context, t Task, opts ...EnqueueOption) (id string, err error)
	Close() error
}

// Server runs registered handlers. Run blocks until ctx ends.
type Server interface {
	Register(taskType string, h Handler)
	Run(ctx context.Context) error
	Stop(ctx context.Context) error
}
