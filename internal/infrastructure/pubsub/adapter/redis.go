package adapter

import (
	"context"
	"log/slog"
	"sync"

	"github.com/pkg/errors"
	redis "github.com/redis/go-redis/v9"

	"github.com/Shreya020904/Planner-ui/internal/infrastructure/pubsub/port"
)

// RedisNotifier relays signals through Redis pub/sub so every node sees
// changes written by any other node. A single pattern subscription feeds
// all local topic handlers.
type RedisNotifier struct {
	client *redis.Client
	ps     *redis.PubSub
	logger *slog.Logger

	mu       sync.RWMutex
	next     uint64
	handlers map[string]map[uint64]func()

	done chan struct{}
	once sync.Once
}

// NewRedisNotifier subscribes to pattern (e.g. "chat:conversation:*") and
// starts the dispatch loop. Topics passed to Subscribe must match pattern.
func NewRedisNotifier(ctx context.Context, client *redis.Client, pattern string, logger *slog.Logger) (*RedisNotifier, error) {
	if logger == nil {
		logger = slog.Default()
	}
	ps := client.PSubscribe(ctx, pattern)
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, errors.Wrapf(err, "redis: psubscribe %s", pattern)
	}
	n := &RedisNotifier{
		client:   client,
		ps:       ps,
		logger:   logger,
		handlers: make(map[string]map[uint64]func()),
		done:     make(chan struct{}),
	}
	go n.loop()
	return n, nil
}

var _ port.Notifier = (*RedisNotifier)(nil)

func (n *RedisNotifier) loop() {
	defer close(n.done)
	for msg := range n.ps.Channel() {
		n.mu.RLock()
		fns := make([]func(), 0, len(n.handlers[msg.Channel]))
		for _, fn := range n.handlers[msg.Channel] {
			fns = append(fns, fn)
		}
		n.mu.RUnlock()
		for _, fn := range fns {
			fn()
		}
	}
}

func (n *RedisNotifier) Publish(ctx context.Context, topic string) error {
	if err := n.client.Publish(ctx, topic, "1").Err(); err != nil {
		return errors.Wrapf(err, "redis: publish %s", topic)
	}
	return nil
}

func (n *RedisNotifier) Subscribe(topic string, fn func()) (func(), error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.next++
	id := n.next
	set := n.handlers[topic]
	if set == nil {
		set = make(map[uint64]func())
		n.handlers[topic] = set
	}
	set[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			n.mu.Lock()
			defer n.mu.Unlock()
			if set := n.handlers[topic]; set != nil {
				delete(set, id)
				if len(set) == 0 {
					delete(n.handlers, topic)
				}
			}
		})
	}, nil
}

// Close ends the pattern subscription and waits for the dispatch loop.
func (n *RedisNotifier) Close() error {
	var err error
	n.once.Do(func() {
		err = n.ps.Close()
		<-n.done
		if err != nil {
			n.logger.Warn("redis pubsub close", slog.String("error", err.Error()))
		}
	})
	return err
}
