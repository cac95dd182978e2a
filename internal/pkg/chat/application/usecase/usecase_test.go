package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shreya020904/Planner-ui/internal/apperror"
	"github.com/Shreya020904/Planner-ui/internal/clock"
	pubsubAdapter "github.com/Shreya020904/Planner-ui/internal/infrastructure/pubsub/adapter"
	queue "github.com/Shreya020904/Planner-ui/internal/infrastructure/queue/port"
	"github.com/Shreya020904/Planner-ui/internal/pkg/chat/application/assistant"
	chat "github.com/Shreya020904/Planner-ui/internal/pkg/chat/application/domain"
	repoAdapter "github.com/Shreya020904/Planner-ui/internal/pkg/chat/persistence/repository/adapter"
	userAdapter "github.com/Shreya020904/Planner-ui/internal/repository/adapter"
	users "github.com/Shreya020904/Planner-ui/internal/repository/port"
)

type enqueued struct {
	task queue.Task
	opt  queue.EnqueueOption
}

type recordingQueue struct {
	tasks []enqueued
	err   error
}

func (q *recordingQueue) Enqueue(_ context.Context, t queue.Task, opts ...queue.EnqueueOption) (string, error) {
	if q.err != nil {
		return "", q.err
	}
	var opt queue.EnqueueOption
	if len(opts) > 0 {
		opt = opts[0]
	}
	q.tasks = append(q.tasks, enqueued{task: t, opt: opt})
	return "task-1", nil
}

func (q *recordingQueue) Close() error { return nil }

type sendFixture struct {
	repo     *repoAdapter.MemoryChatRepository
	notifier *pubsubAdapter.MemoryNotifier
	queue    *recordingQueue
	uc       *SendMessageUseCase
}

func newSendFixture() sendFixture {
	repo := repoAdapter.NewMemoryChatRepository(clock.Fake(time.Unix(0, 0)))
	n := pubsubAdapter.NewMemoryNotifier()
	q := &recordingQueue{}
	return sendFixture{
		repo:     repo,
		notifier: n,
		queue:    q,
		uc:       NewSendMessageUseCase(repo, n, q, assistant.Default(), 0, nil),
	}
}

func TestSendMessage_Validation(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		in   SendMessageInput
		want error
	}{
		{"empty body", SendMessageInput{ConversationID: "a_b", SenderID: "a", Body: ""}, chat.ErrEmptyMessage},
		{"whitespace body", SendMessageInput{ConversationID: "a_b", SenderID: "a", Body: "  \n "}, chat.ErrEmptyMessage},
		{"no conversation", SendMessageInput{SenderID: "a", Body: "hi"}, chat.ErrNoConversation},
		{"malformed conversation", SendMessageInput{ConversationID: "ab", SenderID: "a", Body: "hi"}, chat.ErrInvalidConversation},
		{"outsider", SendMessageInput{ConversationID: "a_b", SenderID: "c", Body: "hi"}, chat.ErrNotParticipant},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSendFixture()
			published := 0
			_, err := f.notifier.Subscribe(chat.Topic("a_b"), func() { published++ })
			require.NoError(t, err)

			msg, err := f.uc.Execute(ctx, tt.in)
			assert.Nil(t, msg)
			assert.ErrorIs(t, err, tt.want)

			stored, err := f.repo.ListMessages(ctx, "a_b")
			require.NoError(t, err)
			assert.Empty(t, stored)
			assert.Zero(t, published)
			assert.Empty(t, f.queue.tasks)
		})
	}
}

func TestSendMessage_AppendsAndPublishes(t *testing.T) {
	ctx := context.Background()
	f := newSendFixture()
	published := 0
	_, err := f.notifier.Subscribe(chat.Topic("alice_bob"), func() { published++ })
	require.NoError(t, err)

	msg, err := f.uc.Execute(ctx, SendMessageInput{ConversationID: "alice_bob", SenderID: "bob", Body: "hello alice"})
	require.NoError(t, err)
	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, "bob", msg.SenderID)
	assert.Equal(t, 1, published)
	// human peers get no automatic reply
	assert.Empty(t, f.queue.tasks)
}

func TestSendMessage_SchedulesAssistantReply(t *testing.T) {
	ctx := context.Background()
	f := newSendFixture()

	msg, err := f.uc.Execute(ctx, SendMessageInput{ConversationID: "ai-bot_alice", SenderID: "alice", Body: "Hello"})
	require.NoError(t, err)

	require.Len(t, f.queue.tasks, 1)
	got := f.queue.tasks[0]
	assert.Equal(t, chat.AssistantReplyTaskType, got.task.Type)
	assert.Equal(t, chat.AssistantReplyTaskType+":"+msg.ID, got.opt.TaskID)
	assert.Equal(t, "chat", got.opt.Queue)
	assert.Equal(t, time.Second, got.opt.ProcessIn)

	var payload chat.AssistantReply
	require.NoError(t, json.Unmarshal(got.task.Payload, &payload))
	assert.Equal(t, chat.ConversationID("ai-bot_alice"), payload.ConversationID)
	assert.Equal(t, "Hello! How can I assist you today? 😊", payload.Body)
}

func TestSendMessage_QueueFailureKeepsMessage(t *testing.T) {
	ctx := context.Background()
	f := newSendFixture()
	f.queue.err = errors.New("redis down")

	msg, err := f.uc.Execute(ctx, SendMessageInput{ConversationID: "ai-bot_alice", SenderID: "alice", Body: "bye"})
	require.NoError(t, err)
	require.NotNil(t, msg)

	stored, err := f.repo.ListMessages(ctx, "ai-bot_alice")
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestPostAssistantReply(t *testing.T) {
	ctx := context.Background()
	repo := repoAdapter.NewMemoryChatRepository(clock.Fake(time.Unix(0, 0)))
	uc := NewPostAssistantReplyUseCase(repo, pubsubAdapter.NewMemoryNotifier(), nil)

	msg, err := uc.Execute(ctx, chat.AssistantReply{ConversationID: "ai-bot_alice", Body: "Goodbye! Have a great day. 👋"})
	require.NoError(t, err)
	assert.Equal(t, chat.AssistantID, msg.SenderID)

	_, err = uc.Execute(ctx, chat.AssistantReply{ConversationID: "alice_bob", Body: "sneaky"})
	assert.ErrorIs(t, err, chat.ErrNotParticipant)
}

func TestGetMessage(t *testing.T) {
	ctx := context.Background()
	f := newSendFixture()
	for _, body := range []string{"one", "two"} {
		_, err := f.uc.Execute(ctx, SendMessageInput{ConversationID: "alice_bob", SenderID: "alice", Body: body})
		require.NoError(t, err)
	}

	uc := NewGetMessageUseCase(f.repo)
	msgs, err := uc.Execute(ctx, GetMessageInput{ConversationID: "alice_bob", UserID: "bob"})
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "one", msgs[0].Body)

	_, err = uc.Execute(ctx, GetMessageInput{ConversationID: "alice_bob", UserID: "eve"})
	assert.ErrorIs(t, err, chat.ErrNotParticipant)
	assert.Equal(t, apperror.CodeForbidden, apperror.CodeOf(err))
}

func seedUsers(t *testing.T, names ...string) *userAdapter.MemoryUserRepository {
	t.Helper()
	clk := clock.Fake(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	repo := userAdapter.NewMemoryUserRepository(clk)
	for _, n := range names {
		require.NoError(t, repo.Create(context.Background(), &users.User{ID: n, DisplayName: n}))
		clk.Advance(time.Second)
	}
	return repo
}

func TestOpenConversation(t *testing.T) {
	ctx := context.Background()
	uc := NewOpenConversationUseCase(seedUsers(t, "alice", "bob"))

	id, err := uc.Execute(ctx, OpenConversationInput{UserID: "bob", PeerID: "alice"})
	require.NoError(t, err)
	assert.Equal(t, chat.ConversationID("alice_bob"), id)

	id, err = uc.Execute(ctx, OpenConversationInput{UserID: "bob", PeerID: chat.AssistantID})
	require.NoError(t, err)
	assert.Equal(t, chat.ConversationID("ai-bot_bob"), id)

	_, err = uc.Execute(ctx, OpenConversationInput{UserID: "bob", PeerID: "ghost"})
	assert.ErrorIs(t, err, chat.ErrPeerNotFound)

	_, err = uc.Execute(ctx, OpenConversationInput{UserID: "bob", PeerID: "bad_id"})
	assert.ErrorIs(t, err, chat.ErrInvalidParticipant)
}

func contactNames(cs []chat.Contact) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.DisplayName)
	}
	return out
}

func TestListContacts(t *testing.T) {
	ctx := context.Background()
	uc := NewListContactsUseCase(seedUsers(t, "alice", "bob", "carol", "dave"))

	list, err := uc.Execute(ctx, ListContactsInput{UserID: "bob"})
	require.NoError(t, err)
	assert.Empty(t, list.Pinned)
	assert.Equal(t, []string{"alice", "carol", "dave", "AI Assistant"}, contactNames(list.Others))

	list, err = uc.Execute(ctx, ListContactsInput{UserID: "bob", Pinned: []string{"dave", chat.AssistantID, "dave", "ghost"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"dave", "AI Assistant"}, contactNames(list.Pinned))
	assert.Equal(t, []string{"alice", "carol"}, contactNames(list.Others))

	list, err = uc.Execute(ctx, ListContactsInput{UserID: "bob", Query: "A", Pinned: []string{"dave"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"dave"}, contactNames(list.Pinned))
	assert.Equal(t, []string{"alice", "carol", "AI Assistant"}, contactNames(list.Others))
}
