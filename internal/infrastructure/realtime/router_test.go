package realtime

import (
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSocket struct {
	mu     sync.Mutex
	writes [][]byte
	closed bool
}

func (f *fakeSocket) SetWriteDeadline(time.Time) error { return nil }

func (f *fakeSocket) WriteMessage(_ int, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes = append(f.writes, data)
	return nil
}

func (f *fakeSocket) WriteControl(int, []byte, time.Time) error { return nil }

func (f *fakeSocket) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeSocket) isClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

func (f *fakeSocket) written() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.writes)
}

func TestRouter_AttachReplacesSameDevice(t *testing.T) {
	r := NewRouter()
	defer r.Close()

	first := &fakeSocket{}
	second := &fakeSocket{}
	other := &fakeSocket{}

	r.Attach(NewConnection("u1", "laptop", first))
	r.Attach(NewConnection("u1", "laptop", second))
	r.Attach(NewConnection("u1", "phone", other))

	assert.True(t, first.isClosed())
	assert.False(t, second.isClosed())
	assert.Equal(t, 2, r.Sessions())
}

func TestRouter_NotifyUserAndDevice(t *testing.T) {
	r := NewRouter()
	defer r.Close()

	laptop := &fakeSocket{}
	phone := &fakeSocket{}
	r.Attach(NewConnection("u1", "laptop", laptop))
	r.Attach(NewConnection("u1", "phone", phone))

	assert.Equal(t, 2, r.NotifyUser("u1", []byte(`{"type":"x"}`)))
	assert.Equal(t, 0, r.NotifyUser("nobody", []byte(`{}`)))
	assert.Equal(t, 1, r.NotifyDevice("phone", []byte(`{"type":"shell"}`)))

	assert.Eventually(t, func() bool { return laptop.written() == 1 && phone.written() == 2 },
		time.Second, 5*time.Millisecond)
}

func TestRouter_DetachStopsDelivery(t *testing.T) {
	r := NewRouter()
	defer r.Close()

	conn := NewConnection("u1", "laptop", &fakeSocket{})
	r.Attach(conn)
	r.Detach(conn)

	assert.Equal(t, 0, r.NotifyUser("u1", []byte(`{}`)))
	assert.Equal(t, 0, r.Sessions())
}

func TestConnection_SendAfterClose(t *testing.T) {
	conn := NewConnection("u1", "d", &fakeSocket{})
	conn.Close(1000, "bye")
	assert.ErrorIs(t, conn.Send([]byte("x")), ErrConnectionClosed)
}

// serialSocket records writes and counts any that overlap another write.
type serialSocket struct {
	fakeSocket
	inFlight atomic.Int32
	overlaps atomic.Int32
}

func (s *serialSocket) WriteMessage(kind int, data []byte) error {
	if s.inFlight.Add(1) > 1 {
		s.overlaps.Add(1)
	}
	defer s.inFlight.Add(-1)
	time.Sleep(100 * time.Microsecond)
	return s.fakeSocket.WriteMessage(kind, data)
}

func TestConnection_SingleWriterKeepsOrder(t *testing.T) {
	r := NewRouter()
	defer r.Close()

	ws := &serialSocket{}
	conn := NewConnection("u1", "laptop", ws)
	r.Attach(conn)
	conn.Start() // already started by Attach

	const frames = 50
	for i := 0; i < frames; i++ {
		require.NoError(t, conn.Send([]byte(strconv.Itoa(i))))
	}
	require.Eventually(t, func() bool { return ws.written() == frames }, 2*time.Second, 5*time.Millisecond)

	assert.Zero(t, ws.overlaps.Load())
	ws.mu.Lock()
	defer ws.mu.Unlock()
	for i, w := range ws.writes {
		assert.Equal(t, strconv.Itoa(i), string(w))
	}
}
