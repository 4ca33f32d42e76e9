// room/room.go
package room

import (
	"sync"
	"time"

	"github.com/playgrid/arcade/game"
)

// Member is one room occupant. JSON field names are part of the wire
// format (they appear in joined-game rosters).
type Member struct {
	SessionID  string `json:"socketId"`
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
}

// Room is a named group of connections sharing one game instance. The
// game type is fixed at creation. The board is created lazily on the
// first move, so a room can hold members with no board yet.
//
// All board access goes through the per-room mutex; callers receive
// value copies and never touch the stored state directly.
type Room struct {
	ID        string
	GameType  string
	CreatedAt time.Time

	engine     game.Engine
	members    []Member
	state      game.State
	emptySince time.Time
	mu         sync.Mutex
}

func newRoom(id, gameType string, engine game.Engine) *Room {
	return &Room{
		ID:        id,
		GameType:  gameType,
		CreatedAt: time.Now(),
		engine:    engine,
	}
}

// AddMember appends a member in join order and returns the full roster.
func (r *Room) AddMember(m Member) []Member {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.members = append(r.members, m)
	r.emptySince = time.Time{}
	return r.membersLocked()
}

// RemoveMember removes the member for a session ID. Returns the removed
// member and whether it was present.
func (r *Room) RemoveMember(sessionID string) (Member, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, m := range r.members {
		if m.SessionID == sessionID {
			r.members = append(r.members[:i], r.members[i+1:]...)
			if len(r.members) == 0 {
				r.emptySince = time.Now()
			}
			return m, true
		}
	}
	return Member{}, false
}

// Members returns a copy of the roster in join order.
func (r *Room) Members() []Member {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.membersLocked()
}

func (r *Room) membersLocked() []Member {
	out := make([]Member, len(r.members))
	copy(out, r.members)
	return out
}

// ApplyMove runs the room's engine over the current state under the
// room mutex, stores the result and returns it. The lock covers only
// the read-modify-write; broadcasting happens after it is released.
func (r *Room) ApplyMove(input int) (game.State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state == nil {
		r.state = r.engine.NewState()
	}

	next, err := r.engine.Apply(r.state, input)
	if err != nil {
		return nil, err
	}
	r.state = next
	return next, nil
}

// State returns the current board, or nil if no move has been made.
func (r *Room) State() game.State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// EmptySince returns when the room last became memberless, or the zero
// time while it is occupied (or has never been joined-and-left).
func (r *Room) EmptySince() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.emptySince
}

// Manager owns the room-ID to room mapping.
type Manager struct {
	rooms map[string]*Room
	mutex sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		rooms: make(map[string]*Room),
	}
}

// GetOrCreate returns the room for id, creating it on first sight. The
// game type only matters on creation; later joins inherit the room's
// original type regardless of what they ask for. Returns false if the
// room would need creating and the game type is unknown.
func (m *Manager) GetOrCreate(id, gameType string) (*Room, bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.getOrCreateLocked(id, gameType)
}

func (m *Manager) getOrCreateLocked(id, gameType string) (*Room, bool) {
	if room, exists := m.rooms[id]; exists {
		return room, true
	}

	engine, ok := game.EngineFor(gameType)
	if !ok {
		return nil, false
	}

	room := newRoom(id, gameType, engine)
	m.rooms[id] = room
	return room, true
}

// Join resolves the room for id, creating it on first sight, and
// appends the member. The whole lookup-and-append runs under the store
// lock so the idle sweep can never evict the room between the two
// steps: a member is either appended to a room that is in the store,
// or joins a freshly created replacement. Returns the room, the
// resulting roster and false if the room would need creating and the
// game type is unknown.
func (m *Manager) Join(id, gameType string, member Member) (*Room, []Member, bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	room, ok := m.getOrCreateLocked(id, gameType)
	if !ok {
		return nil, nil, false
	}
	return room, room.AddMember(member), true
}

func (m *Manager) Get(id string) (*Room, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	room, exists := m.rooms[id]
	return room, exists
}

func (m *Manager) Remove(id string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	delete(m.rooms, id)
}

func (m *Manager) Count() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.rooms)
}
