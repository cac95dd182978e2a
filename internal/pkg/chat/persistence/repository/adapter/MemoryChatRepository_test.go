package adapter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shreya020904/Planner-ui/internal/clock"
	chat "github.com/Shreya020904/Planner-ui/internal/pkg/chat/application/domain"
)

func TestMemoryChatRepository_OrdersByTimestampThenSeq(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := NewMemoryChatRepository(clock.Fake(base))
	conv := chat.ConversationID("a_b")

	for _, tc := range []struct {
		body string
		at   time.Time
	}{
		{"third", base.Add(3 * time.Second)},
		{"first", base.Add(1 * time.Second)},
		{"second", base.Add(2 * time.Second)},
		{"second-tie", base.Add(2 * time.Second)},
	} {
		_, err := repo.AppendMessage(ctx, chat.Message{ConversationID: conv, SenderID: "a", Body: tc.body, CreatedAt: tc.at})
		require.NoError(t, err)
	}

	msgs, err := repo.ListMessages(ctx, conv)
	require.NoError(t, err)
	var bodies []string
	for _, m := range msgs {
		bodies = append(bodies, m.Body)
	}
	assert.Equal(t, []string{"first", "second", "second-tie", "third"}, bodies)
}

func TestMemoryChatRepository_AssignsIdentity(t *testing.T) {
	ctx := context.Background()
	clk := clock.Fake(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	repo := NewMemoryChatRepository(clk)

	m, err := repo.AppendMessage(ctx, chat.Message{ConversationID: "a_b", SenderID: "a", Body: "x"})
	require.NoError(t, err)
	assert.NotEmpty(t, m.ID)
	assert.Equal(t, int64(1), m.Seq)
	assert.Equal(t, clk.Now(), m.CreatedAt)

	empty, err := repo.ListMessages(ctx, "c_d")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
