package adapter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryNotifier_PublishReachesTopicSubscribersOnly(t *testing.T) {
	n := NewMemoryNotifier()
	ctx := context.Background()

	var a, b int
	cancelA, err := n.Subscribe("chat:conversation:x", func() { a++ })
	require.NoError(t, err)
	_, err = n.Subscribe("chat:conversation:y", func() { b++ })
	require.NoError(t, err)

	require.NoError(t, n.Publish(ctx, "chat:conversation:x"))
	assert.Equal(t, 1, a)
	assert.Equal(t, 0, b)

	cancelA()
	cancelA()
	require.NoError(t, n.Publish(ctx, "chat:conversation:x"))
	assert.Equal(t, 1, a)
	assert.Equal(t, 0, n.Subscribers("chat:conversation:x"))
}

func TestMemoryNotifier_ClosedDropsSignals(t *testing.T) {
	n := NewMemoryNotifier()
	calls := 0
	_, err := n.Subscribe("t", func() { calls++ })
	require.NoError(t, err)

	require.NoError(t, n.Close())
	require.NoError(t, n.Publish(context.Background(), "t"))
	assert.Zero(t, calls)
}
