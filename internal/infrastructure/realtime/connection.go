package realtime

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
	sendBuffer = 128
)

var (
	ErrConnectionClosed = errors.New("realtime: connection closed")
	ErrBufferExceeded   = errors.New("realtime: connection buffer exceeded")
)

// Socket is the part of *websocket.Conn a Connection writes to.
type Socket interface {
	SetWriteDeadline(t time.Time) error
	WriteMessage(messageType int, data []byte) error
	WriteControl(messageType int, data []byte, deadline time.Time) error
	Close() error
}

// Connection wraps a websocket and serializes outbound writes through a
// buffered channel. One Connection exists per (user, device) session and it
// is safe for concurrent use.
type Connection struct {
	ID       string
	UserID   string
	DeviceID string

	ws      Socket
	send    chan []byte
	started sync.Once
	once    sync.Once
	close   chan struct{}
}

// NewConnection constructs a Connection for the given user device.
func NewConnection(userID, deviceID string, ws Socket) *Connection {
	return &Connection{
		ID:       uuid.NewString(),
		UserID:   userID,
		DeviceID: deviceID,
		ws:       ws,
		send:     make(chan []byte, sendBuffer),
		close:    make(chan struct{}),
	}
}

// Start launches the write loop. Later calls are no-ops: gorilla allows a
// single concurrent writer and frames must leave in Send order.
func (c *Connection) Start() {
	c.started.Do(func() { go c.writeLoop() })
}

// Send enqueues payload for delivery. A client too slow to drain its buffer
// is disconnected.
func (c *Connection) Send(payload []byte) error {
	select {
	case <-c.close:
		return ErrConnectionClosed
	default:
	}
	select {
	case <-c.close:
		return ErrConnectionClosed
	case c.send <- payload:
		return nil
	default:
		c.Close(websocket.CloseGoingAway, "send buffer full")
		return ErrBufferExceeded
	}
}

// SendJSON encodes v and enqueues it.
func (c *Connection) SendJSON(v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.Send(payload)
}

// Done is closed once the connection is closed.
func (c *Connection) Done() <-chan struct{} { return c.close }

// Close terminates the connection and stops the write loop.
func (c *Connection) Close(code int, reason string) {
	c.once.Do(func() {
		close(c.close)
		_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
		_ = c.ws.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, reason), time.Now().Add(writeWait))
		_ = c.ws.Close()
	})
}

func (c *Connection) writeLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-c.close:
			return
		case msg := <-c.send:
			if err := c.writeMessage(msg); err != nil {
				c.Close(websocket.CloseAbnormalClosure, "write failed")
				return
			}
		case <-ticker.C:
			if err := c.writePing(); err != nil {
				c.Close(websocket.CloseAbnormalClosure, "ping failed")
				return
			}
		}
	}
}

func (c *Connection) writeMessage(payload []byte) error {
	if err := c.ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.ws.WriteMessage(websocket.TextMessage, payload)
}

func (c *Connection) writePing() error {
	if err := c.ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.ws.WriteMessage(websocket.PingMessage, nil)
}
