// session/session.go
package session

import (
	"sync"
	"time"

	"github.com/playgrid/arcade/network"
)

// Session is the registry entry for one live connection. The identity
// fields are empty until the client joins a room.
type Session struct {
	ID         string
	Conn       network.Connection
	PlayerID   string
	PlayerName string
	RoomID     string
	CreatedAt  time.Time
	LastActive time.Time
	mutex      sync.RWMutex
}

func NewSession(id string, conn network.Connection) *Session {
	now := time.Now()
	return &Session{
		ID:         id,
		Conn:       conn,
		CreatedAt:  now,
		LastActive: now,
	}
}

// Identify records (or overwrites) the player identity and joined room.
func (s *Session) Identify(playerID, playerName, roomID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.PlayerID = playerID
	s.PlayerName = playerName
	s.RoomID = roomID
}

// Identity returns the player identity recorded by Identify.
func (s *Session) Identity() (playerID, playerName, roomID string) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.PlayerID, s.PlayerName, s.RoomID
}

// ClearRoom detaches the session from its room without dropping the
// player identity.
func (s *Session) ClearRoom() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.RoomID = ""
}

func (s *Session) Send(event string, payload interface{}) error {
	s.Touch()
	return s.Conn.Send(event, payload)
}

func (s *Session) Touch() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.LastActive = time.Now()
}

func (s *Session) GetID() string {
	return s.ID
}

func (s *Session) Close() error {
	return s.Conn.Close()
}

// Manager is the connection registry.
type Manager struct {
	sessions map[string]*Session
	mutex    sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
	}
}

func (m *Manager) Add(session *Session) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.sessions[session.ID] = session
}

func (m *Manager) Remove(sessionID string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	delete(m.sessions, sessionID)
}

// Get looks up a session by connection ID. A miss is not an error:
// callers treat it as a no-op (e.g. disconnect of a connection that
// never joined a room).
func (m *Manager) Get(sessionID string) (*Session, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	session, exists := m.sessions[sessionID]
	return session, exists
}

func (m *Manager) Count() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.sessions)
}
