package adapter

import (
	"context"
	"sync"

	"github.com/Shreya020904/Planner-ui/internal/infrastructure/pubsub/port"
)

// MemoryNotifier fans signals out to in-process subscribers. Publish calls
// handlers synchronously on the publishing goroutine.
type MemoryNotifier struct {
	mu       sync.RWMutex
	next     uint64
	handlers map[string]map[uint64]func()
	closed   bool
}

// NewMemoryNotifier returns an empty notifier.
func NewMemoryNotifier() *MemoryNotifier {
	return &MemoryNotifier{handlers: make(map[string]map[uint64]func())}
}

var _ port.Notifier = (*MemoryNotifier)(nil)

func (m *MemoryNotifier) Publish(_ context.Context, topic string) error {
	m.mu.RLock()
	if m.closed {
		m.mu.RUnlock()
		return nil
	}
	fns := make([]func(), 0, len(m.handlers[topic]))
	for _, fn := range m.handlers[topic] {
		fns = append(fns, fn)
	}
	m.mu.RUnlock()

	for _, fn := range fns {
		fn()
	}
	return nil
}

func (m *MemoryNotifier) Subscribe(topic string, fn func()) (func(), error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	id := m.next
	set := m.handlers[topic]
	if set == nil {
		set = make(map[uint64]func())
		m.handlers[topic] = set
	}
	set[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			if set := m.handlers[topic]; set != nil {
				delete(set, id)
				if len(set) == 0 {
					delete(m.handlers, topic)
				}
			}
		})
	}, nil
}

// Subscribers reports how many handlers are registered on topic.
func (m *MemoryNotifier) Subscribers(topic string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.handlers[topic])
}

func (m *MemoryNotifier) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.handlers = make(map[string]map[uint64]func())
	return nil
}
