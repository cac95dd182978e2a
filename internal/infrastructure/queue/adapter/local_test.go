package adapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shreya020904/Planner-ui/internal/clock"
	"github.com/Shreya020904/Planner-ui/internal/infrastructure/queue/port"
)

func TestLocalQueue_RunsAfterDelay(t *testing.T) {
	clk := clock.Fake(time.Unix(0, 0))
	q := NewLocalQueue(clk, nil)

	var got []string
	q.Register("greet", func(_ context.Context, task port.Task) error {
		got = append(got, string(task.Payload))
		return nil
	})

	_, err := q.Enqueue(context.Background(), port.Task{Type: "greet", Payload: []byte("hi")},
		port.EnqueueOption{ProcessIn: time.Second})
	require.NoError(t, err)

	clk.Advance(999 * time.Millisecond)
	assert.Empty(t, got)

	clk.Advance(time.Millisecond)
	assert.Equal(t, []string{"hi"}, got)
}

func TestLocalQueue_RetriesUntilMaxRetry(t *testing.T) {
	clk := clock.Fake(time.Unix(0, 0))
	q := NewLocalQueue(clk, nil)

	attempts := 0
	q.Register("flaky", func(context.Context, port.Task) error {
		attempts++
		return errors.New("boom")
	})

	_, err := q.Enqueue(context.Background(), port.Task{Type: "flaky"}, port.EnqueueOption{MaxRetry: 2})
	require.NoError(t, err)

	clk.Advance(0)
	assert.Equal(t, 1, attempts)
	clk.Advance(time.Second)
	assert.Equal(t, 2, attempts)
	clk.Advance(2 * time.Second)
	assert.Equal(t, 3, attempts)
	clk.Advance(time.Hour)
	assert.Equal(t, 3, attempts)
}

func TestLocalQueue_RejectsUnknownTypeAndStopped(t *testing.T) {
	clk := clock.Fake(time.Unix(0, 0))
	q := NewLocalQueue(clk, nil)

	_, err := q.Enqueue(context.Background(), port.Task{Type: "nobody"})
	assert.Error(t, err)

	ran := false
	q.Register("late", func(context.Context, port.Task) error { ran = true; return nil })
	_, err = q.Enqueue(context.Background(), port.Task{Type: "late"}, port.EnqueueOption{ProcessIn: time.Minute})
	require.NoError(t, err)

	require.NoError(t, q.Stop(context.Background()))
	clk.Advance(time.Hour)
	assert.False(t, ran)

	_, err = q.Enqueue(context.Background(), port.Task{Type: "late"})
	assert.ErrorIs(t, err, ErrQueueStopped)
}

func TestLocalQueue_DeduplicatesPendingTaskID(t *testing.T) {
	clk := clock.Fake(time.Unix(0, 0))
	q := NewLocalQueue(clk, nil)

	runs := 0
	q.Register("once", func(context.Context, port.Task) error { runs++; return nil })

	opt := port.EnqueueOption{TaskID: "reply:1", ProcessIn: time.Second}
	id, err := q.Enqueue(context.Background(), port.Task{Type: "once"}, opt)
	require.NoError(t, err)
	assert.Equal(t, "reply:1", id)

	_, err = q.Enqueue(context.Background(), port.Task{Type: "once"}, opt)
	assert.ErrorIs(t, err, port.ErrDuplicateTask)

	clk.Advance(time.Second)
	assert.Equal(t, 1, runs)

	// once it has run the id is free again
	_, err = q.Enqueue(context.Background(), port.Task{Type: "once"}, opt)
	require.NoError(t, err)
}
