package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Shreya020904/Planner-ui/internal/clock"
	"github.com/Shreya020904/Planner-ui/internal/infrastructure/queue/port"
)

// ErrQueueStopped is returned by LocalQueue.Enqueue after Stop.
var ErrQueueStopped = errors.New("queue: stopped")

const localRetryBackoff = time.Second

// LocalQueue is an in-process port.Client and port.Server backed by clock
// timers. Tasks are lost on restart; it is meant for single-node setups
// without Redis and for tests.
type LocalQueue struct {
	clock  clock.Clock
	logger *slog.Logger

	mu       sync.Mutex
	handlers map[string]port.Handler
	pending  map[string]clock.Timer
	stopped  bool
	wg       sync.WaitGroup
}

// NewLocalQueue builds an empty queue.
func NewLocalQueue(clk clock.Clock, logger *slog.Logger) *LocalQueue {
	if clk == nil {
		clk = clock.Real()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &LocalQueue{
		clock:    clk,
		logger:   logger,
		handlers: make(map[string]port.Handler),
		pending:  make(map[string]clock.Timer),
	}
}

var (
	_ port.Client = (*LocalQueue)(nil)
	_ port.Server = (*LocalQueue)(nil)
)

func (q *LocalQueue) Register(taskType string, h port.Handler) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.handlers[taskType] = h
}

func (q *LocalQueue) Enqueue(_ context.Context, t port.Task, opts ...port.EnqueueOption) (string, error) {
	if t.Type == "" {
		return "", errors.New("queue: task type is required")
	}
	var op port.EnqueueOption
	if len(opts) > 0 {
		op = opts[0]
	}
	delay := op.ProcessIn
	if !op.ProcessAt.IsZero() {
		delay = op.ProcessAt.Sub(q.clock.Now())
	}
	if delay < 0 {
		delay = 0
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	if q.stopped {
		return "", ErrQueueStopped
	}
	if _, ok := q.handlers[t.Type]; !ok {
		return "", fmt.Errorf("queue: no handler registered for %q", t.Type)
	}
	id := op.TaskID
	if id == "" {
		id = uuid.NewString()
	} else if _, dup := q.pending[id]; dup {
		return "", port.ErrDuplicateTask
	}
	q.scheduleLocked(id, t, delay, op.MaxRetry, 0)
	return id, nil
}

func (q *LocalQueue) scheduleLocked(id string, t port.Task, delay time.Duration, maxRetry, attempt int) {
	q.wg.Add(1)
	q.pending[id] = q.clock.AfterFunc(delay, func() {
		defer q.wg.Done()
		q.run(id, t, maxRetry, attempt)
	})
}

func (q *LocalQueue) run(id string, t port.Task, maxRetry, attempt int) {
	q.mu.Lock()
	delete(q.pending, id)
	h := q.handlers[t.Type]
	stopped := q.stopped
	q.mu.Unlock()
	if stopped || h == nil {
		return
	}

	err := h(context.Background(), t)
	if err == nil {
		return
	}
	q.logger.Error("task failed",
		slog.String("task_type", t.Type),
		slog.String("task_id", id),
		slog.Int("attempt", attempt+1),
		slog.String("error", err.Error()))

	if attempt >= maxRetry {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.stopped {
		return
	}
	q.scheduleLocked(id, t, localRetryBackoff*time.Duration(attempt+1), maxRetry, attempt+1)
}

// Run blocks until ctx is canceled and then stops the queue.
func (q *LocalQueue) Run(ctx context.Context) error {
	<-ctx.Done()
	return q.Stop(context.Background())
}

// Stop cancels pending tasks and waits for running handlers to return.
func (q *LocalQueue) Stop(ctx context.Context) error {
	q.mu.Lock()
	q.stopped = true
	for id, timer := range q.pending {
		if timer.Stop() {
			q.wg.Done()
		}
		delete(q.pending, id)
	}
	q.mu.Unlock()

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *LocalQueue) Close() error { return nil }
