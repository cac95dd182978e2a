package live

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shreya020904/Planner-ui/internal/clock"
	pubsubAdapter "github.com/Shreya020904/Planner-ui/internal/infrastructure/pubsub/adapter"
	chat "github.com/Shreya020904/Planner-ui/internal/pkg/chat/application/domain"
	repoAdapter "github.com/Shreya020904/Planner-ui/internal/pkg/chat/persistence/repository/adapter"
)

const wait = time.Second

func collect() (UpdateFunc, chan []chat.Message) {
	ch := make(chan []chat.Message, 16)
	return func(msgs []chat.Message) { ch <- msgs }, ch
}

func next(t *testing.T, ch chan []chat.Message) []chat.Message {
	t.Helper()
	select {
	case msgs := <-ch:
		return msgs
	case <-time.After(wait):
		t.Fatal("no update delivered")
		return nil
	}
}

func quiet(t *testing.T, ch chan []chat.Message) {
	t.Helper()
	select {
	case msgs := <-ch:
		t.Fatalf("unexpected update: %v", msgs)
	case <-time.After(50 * time.Millisecond):
	}
}

func bodies(msgs []chat.Message) []string {
	out := make([]string, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, m.Body)
	}
	return out
}

type harness struct {
	repo     *repoAdapter.MemoryChatRepository
	notifier *pubsubAdapter.MemoryNotifier
	feed     *Feed
}

func newHarness() harness {
	repo := repoAdapter.NewMemoryChatRepository(clock.Real())
	n := pubsubAdapter.NewMemoryNotifier()
	return harness{repo: repo, notifier: n, feed: NewFeed(repo, n, nil)}
}

func (h harness) post(t *testing.T, conv chat.ConversationID, body string) {
	t.Helper()
	_, err := h.repo.AppendMessage(context.Background(), chat.Message{ConversationID: conv, SenderID: "a", Body: body})
	require.NoError(t, err)
	require.NoError(t, h.notifier.Publish(context.Background(), chat.Topic(conv)))
}

func TestFeed_DeliversFullListOnEveryChange(t *testing.T) {
	h := newHarness()
	fn, ch := collect()

	sub, err := h.feed.Subscribe(context.Background(), "a_b", fn)
	require.NoError(t, err)
	defer sub.Stop()

	first := next(t, ch)
	assert.NotNil(t, first)
	assert.Empty(t, first)

	h.post(t, "a_b", "one")
	assert.Equal(t, []string{"one"}, bodies(next(t, ch)))

	h.post(t, "a_b", "two")
	assert.Equal(t, []string{"one", "two"}, bodies(next(t, ch)))
}

type unorderedLister struct{ msgs []chat.Message }

func (u unorderedLister) ListMessages(context.Context, chat.ConversationID) ([]chat.Message, error) {
	out := make([]chat.Message, len(u.msgs))
	copy(out, u.msgs)
	return out, nil
}

func TestFeed_OrdersByTimestamp(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	lister := unorderedLister{msgs: []chat.Message{
		{Body: "3", CreatedAt: base.Add(3 * time.Second)},
		{Body: "1", CreatedAt: base.Add(1 * time.Second)},
		{Body: "2", CreatedAt: base.Add(2 * time.Second)},
	}}
	feed := NewFeed(lister, pubsubAdapter.NewMemoryNotifier(), nil)
	fn, ch := collect()

	sub, err := feed.Subscribe(context.Background(), "a_b", fn)
	require.NoError(t, err)
	defer sub.Stop()

	assert.Equal(t, []string{"1", "2", "3"}, bodies(next(t, ch)))
}

// gatedLister blocks every load until release is closed, ignoring ctx.
type gatedLister struct {
	started chan struct{}
	release chan struct{}
	once    sync.Once
}

func (g *gatedLister) ListMessages(context.Context, chat.ConversationID) ([]chat.Message, error) {
	g.once.Do(func() { close(g.started) })
	<-g.release
	return []chat.Message{{Body: "late"}}, nil
}

func TestSubscription_NoCallbackAfterStop(t *testing.T) {
	g := &gatedLister{started: make(chan struct{}), release: make(chan struct{})}
	feed := NewFeed(g, pubsubAdapter.NewMemoryNotifier(), nil)
	fn, ch := collect()

	sub, err := feed.Subscribe(context.Background(), "a_b", fn)
	require.NoError(t, err)

	<-g.started
	sub.Stop()
	sub.Stop()
	close(g.release)

	quiet(t, ch)
	assert.Equal(t, 0, feed.Active())
}

func TestSubscription_StopsWithContext(t *testing.T) {
	h := newHarness()
	fn, ch := collect()
	ctx, cancel := context.WithCancel(context.Background())

	_, err := h.feed.Subscribe(ctx, "a_b", fn)
	require.NoError(t, err)
	next(t, ch)

	cancel()
	assert.Eventually(t, func() bool { return h.feed.Active() == 0 }, wait, 5*time.Millisecond)
	h.post(t, "a_b", "ignored")
	quiet(t, ch)
}

func TestFeed_SharesOneNotifierSubscription(t *testing.T) {
	h := newHarness()
	fn1, ch1 := collect()
	fn2, ch2 := collect()

	s1, err := h.feed.Subscribe(context.Background(), "a_b", fn1)
	require.NoError(t, err)
	s2, err := h.feed.Subscribe(context.Background(), "a_b", fn2)
	require.NoError(t, err)
	next(t, ch1)
	next(t, ch2)
	assert.Equal(t, 1, h.notifier.Subscribers(chat.Topic("a_b")))

	s1.Stop()
	h.post(t, "a_b", "hi")
	assert.Equal(t, []string{"hi"}, bodies(next(t, ch2)))
	quiet(t, ch1)

	s2.Stop()
	assert.Equal(t, 0, h.notifier.Subscribers(chat.Topic("a_b")))
}

type failingLister struct{}

func (failingLister) ListMessages(context.Context, chat.ConversationID) ([]chat.Message, error) {
	return nil, errors.New("store down")
}

func TestFeed_ReportsLoadErrors(t *testing.T) {
	feed := NewFeed(failingLister{}, pubsubAdapter.NewMemoryNotifier(), nil)
	errs := make(chan error, 1)
	fn, ch := collect()

	sub, err := feed.Subscribe(context.Background(), "a_b", fn,
		WithErrorHandler(func(_ chat.ConversationID, err error) { errs <- err }))
	require.NoError(t, err)
	defer sub.Stop()

	select {
	case err := <-errs:
		assert.EqualError(t, err, "store down")
	case <-time.After(wait):
		t.Fatal("error handler not called")
	}
	quiet(t, ch)
}

func TestFeed_RejectsEmptyConversation(t *testing.T) {
	h := newHarness()
	_, err := h.feed.Subscribe(context.Background(), "", func([]chat.Message) {})
	assert.ErrorIs(t, err, chat.ErrNoConversation)
}

func TestSubscription_SignalsCoalesce(t *testing.T) {
	s := &Subscription{dirty: make(chan struct{}, 1)}
	s.signal()
	s.signal()
	s.signal()
	assert.Len(t, s.dirty, 1)
}

func TestSelection_SwitchHasNoCrossDelivery(t *testing.T) {
	h := newHarness()
	sel := NewSelection(h.feed)
	fnA, chA := collect()
	fnB, chB := collect()

	require.NoError(t, sel.Select(context.Background(), "a_b", fnA))
	next(t, chA)

	require.NoError(t, sel.Select(context.Background(), "a_c", fnB))
	next(t, chB)
	assert.Equal(t, chat.ConversationID("a_c"), sel.Current())

	h.post(t, "a_b", "for b")
	quiet(t, chA)
	quiet(t, chB)

	h.post(t, "a_c", "for c")
	assert.Equal(t, []string{"for c"}, bodies(next(t, chB)))
	quiet(t, chA)

	sel.Release()
	assert.Equal(t, chat.ConversationID(""), sel.Current())
	assert.Equal(t, 0, h.feed.Active())
}
