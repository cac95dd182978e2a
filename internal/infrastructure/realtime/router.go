package realtime

import (
	"sync"
)

const closeSessionReplaced = 4001

// Router tracks live websocket sessions. It keeps one active Connection per
// (user, device) pair and lets other modules push frames to a user or to a
// single device without knowing about sockets.
type Router struct {
	mu             sync.RWMutex
	sessions       map[string]*Connection         // sessionID -> connection
	deviceSessions map[string]string              // deviceKey -> sessionID
	userSessions   map[string]map[string]struct{} // userID -> set of sessionIDs
}

// NewRouter constructs an initialized Router.
func NewRouter() *Router {
	return &Router{
		sessions:       make(map[string]*Connection),
		deviceSessions: make(map[string]string),
		userSessions:   make(map[string]map[string]struct{}),
	}
}

func deviceKey(userID, deviceID string) string { return userID + "\x00" + deviceID }

// Attach registers conn and starts its write loop. A previous session of the
// same user on the same device is detached and closed after the swap.
func (r *Router) Attach(conn *Connection) {
	var previous *Connection
	key := deviceKey(conn.UserID, conn.DeviceID)

	r.mu.Lock()
	if existingID, ok := r.deviceSessions[key]; ok {
		if existing := r.sessions[existingID]; existing != nil {
			previous = existing
			r.detachLocked(existingID)
		}
	}

	r.sessions[conn.ID] = conn
	r.deviceSessions[key] = conn.ID
	set := r.userSessions[conn.UserID]
	if set == nil {
		set = make(map[string]struct{})
		r.userSessions[conn.UserID] = set
	}
	set[conn.ID] = struct{}{}
	r.mu.Unlock()

	conn.Start()

	if previous != nil {
		previous.Close(closeSessionReplaced, "session replaced")
	}
}

// Detach removes a connection if it is still tracked.
func (r *Router) Detach(conn *Connection) {
	r.mu.Lock()
	r.detachLocked(conn.ID)
	r.mu.Unlock()
}

// NotifyUser delivers payload to every session of userID and reports how
// many accepted it.
func (r *Router) NotifyUser(userID string, payload []byte) int {
	r.mu.RLock()
	conns := make([]*Connection, 0, len(r.userSessions[userID]))
	for id := range r.userSessions[userID] {
		if conn := r.sessions[id]; conn != nil {
			conns = append(conns, conn)
		}
	}
	r.mu.RUnlock()

	delivered := 0
	for _, conn := range conns {
		if conn.Send(payload) == nil {
			delivered++
		}
	}
	return delivered
}

// NotifyDevice delivers payload to every user session opened from deviceID.
func (r *Router) NotifyDevice(deviceID string, payload []byte) int {
	r.mu.RLock()
	var conns []*Connection
	for _, conn := range r.sessions {
		if conn.DeviceID == deviceID {
			conns = append(conns, conn)
		}
	}
	r.mu.RUnlock()

	delivered := 0
	for _, conn := range conns {
		if conn.Send(payload) == nil {
			delivered++
		}
	}
	return delivered
}

// Sessions reports the number of tracked connections.
func (r *Router) Sessions() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Close terminates all tracked connections and clears router state.
func (r *Router) Close() {
	r.mu.Lock()
	sessions := make([]*Connection, 0, len(r.sessions))
	for _, conn := range r.sessions {
		sessions = append(sessions, conn)
	}
	r.sessions = make(map[string]*Connection)
	r.deviceSessions = make(map[string]string)
	r.userSessions = make(map[string]map[string]struct{})
	r.mu.Unlock()

	for _, conn := range sessions {
		conn.Close(1001, "router shutdown")
	}
}

func (r *Router) detachLocked(sessionID string) {
	conn, ok := r.sessions[sessionID]
	if !ok {
		return
	}
	delete(r.sessions, sessionID)

	key := deviceKey(conn.UserID, conn.DeviceID)
	if current, ok := r.deviceSessions[key]; ok && current == sessionID {
		delete(r.deviceSessions, key)
	}
	if set := r.userSessions[conn.UserID]; set != nil {
		delete(set, sessionID)
		if len(set) == 0 {
			delete(r.userSessions, conn.UserID)
		}
	}
}
