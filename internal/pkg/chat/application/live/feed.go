// Package live turns change notifications into full, ordered message lists
// pushed to subscribers.
package live

import (
	"context"
	"log/slog"
	"sync"

	pubsub "github.com/Shreya020904/Planner-ui/internal/infrastructure/pubsub/port"
	chat "github.com/Shreya020904/Planner-ui/internal/pkg/chat/application/domain"
)

// MessageLister loads the current messages of a conversation.
type MessageLister interface {
	ListMessages(ctx context.Context, conversationID chat.ConversationID) ([]chat.Message, error)
}

// UpdateFunc receives the complete ordered message list, never a delta.
type UpdateFunc func(msgs []chat.Message)

// ErrorFunc receives load failures. The subscription stays active and
// retries on the next change.
type ErrorFunc func(conversationID chat.ConversationID, err error)

// Option configures a Subscription.
type Option func(*Subscription)

// WithErrorHandler replaces the default logging of load failures.
func WithErrorHandler(fn ErrorFunc) Option {
	return func(s *Subscription) { s.onError = fn }
}

// Feed multiplexes one notifier subscription per conversation over any
// number of local subscribers.
type Feed struct {
	messages MessageLister
	notifier pubsub.Notifier
	logger   *slog.Logger

	mu     sync.Mutex
	topics map[chat.ConversationID]*topic
}

type topic struct {
	cancel func()
	subs   map[*Subscription]struct{}
}

func NewFeed(messages MessageLister, notifier pubsub.Notifier, logger *slog.Logger) *Feed {
	if logger == nil {
		logger = slog.Default()
	}
	return &Feed{
		messages: messages,
		notifier: notifier,
		logger:   logger,
		topics:   make(map[chat.ConversationID]*topic),
	}
}

// Subscribe delivers the conversation's messages to onUpdate once right
// away and again after every change, until Stop is called or ctx ends.
func (f *Feed) Subscribe(ctx context.Context, conversationID chat.ConversationID, onUpdate UpdateFunc, opts ...Option) (*Subscription, error) {
	if conversationID == "" {
		return nil, chat.ErrNoConversation
	}
	loadCtx, cancel := context.WithCancel(ctx)
	s := &Subscription{
		feed:           f,
		conversationID: conversationID,
		onUpdate:       onUpdate,
		dirty:          make(chan struct{}, 1),
		quit:           make(chan struct{}),
		ctx:            loadCtx,
		cancel:         cancel,
	}
	s.onError = func(id chat.ConversationID, err error) {
		f.logger.Warn("load conversation", slog.String("conversation_id", id.String()), slog.String("error", err.Error()))
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := f.add(s); err != nil {
		cancel()
		return nil, err
	}
	s.signal()
	go s.run()
	return s, nil
}

// Active reports how many conversations currently hold a notifier
// subscription.
func (f *Feed) Active() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.topics)
}

func (f *Feed) add(s *Subscription) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := f.topics[s.conversationID]
	if t == nil {
		t = &topic{subs: make(map[*Subscription]struct{})}
		id := s.conversationID
		cancel, err := f.notifier.Subscribe(chat.Topic(id), func() { f.changed(id) })
		if err != nil {
			return err
		}
		t.cancel = cancel
		f.topics[id] = t
	}
	t.subs[s] = struct{}{}
	return nil
}

func (f *Feed) remove(s *Subscription) {
	f.mu.Lock()
	t := f.topics[s.conversationID]
	var cancel func()
	if t != nil {
		delete(t.subs, s)
		if len(t.subs) == 0 {
			delete(f.topics, s.conversationID)
			cancel = t.cancel
		}
	}
	f.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (f *Feed) changed(id chat.ConversationID) {
	f.mu.Lock()
	t := f.topics[id]
	var subs []*Subscription
	if t != nil {
		subs = make([]*Subscription, 0, len(t.subs))
		for s := range t.subs {
			subs = append(subs, s)
		}
	}
	f.mu.Unlock()
	for _, s := range subs {
		s.signal()
	}
}

// Subscription is a handle on one live message list.
type Subscription struct {
	feed           *Feed
	conversationID chat.ConversationID
	onUpdate       UpdateFunc
	onError        ErrorFunc

	// dirty holds at most one pending reload; signals arriving while one
	// is pending are coalesced.
	dirty  chan struct{}
	quit   chan struct{}
	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	stopped bool
}

// ConversationID is the conversation this subscription follows.
func (s *Subscription) ConversationID() chat.ConversationID { return s.conversationID }

// Stop releases the subscription. Once Stop returns onUpdate is never
// called again, even for a reload already in flight. Stop is idempotent.
// It must not be called from inside onUpdate.
func (s *Subscription) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	s.mu.Unlock()

	close(s.quit)
	s.cancel()
	s.feed.remove(s)
}

func (s *Subscription) signal() {
	select {
	case s.dirty <- struct{}{}:
	default:
	}
}

func (s *Subscription) run() {
	for {
		select {
		case <-s.quit:
			return
		case <-s.ctx.Done():
			s.Stop()
			return
		case <-s.dirty:
			s.reload()
		}
	}
}

func (s *Subscription) reload() {
	msgs, err := s.feed.messages.ListMessages(s.ctx, s.conversationID)
	if err != nil {
		if s.ctx.Err() != nil {
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		if !s.stopped && s.onError != nil {
			s.onError(s.conversationID, err)
		}
		return
	}
	if msgs == nil {
		msgs = []chat.Message{}
	}
	chat.SortMessages(msgs)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.onUpdate(msgs)
}
