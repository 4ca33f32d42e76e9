// broadcast/broadcast.go
package broadcast

import (
	"errors"

	"github.com/playgrid/arcade/room"
	"github.com/playgrid/arcade/session"
)

var (
	ErrRoomNotFound    = errors.New("room not found")
	ErrSessionNotFound = errors.New("session not found")
)

// RoomBroadcaster fans events out to room members. Delivery is best
// effort: a member whose transport already failed is skipped and gets
// cleaned up by the disconnect path, not here.
type RoomBroadcaster struct {
	roomManager    *room.Manager
	sessionManager *session.Manager
}

func NewRoomBroadcaster(roomManager *room.Manager, sessionManager *session.Manager) *RoomBroadcaster {
	return &RoomBroadcaster{
		roomManager:    roomManager,
		sessionManager: sessionManager,
	}
}

// ToRoom delivers event to every current member of the room.
func (b *RoomBroadcaster) ToRoom(roomID, event string, payload interface{}) error {
	return b.send(roomID, "", event, payload)
}

// ToOthers delivers event to every member except one connection,
// typically the one whose action triggered the notification.
func (b *RoomBroadcaster) ToOthers(roomID, exceptSessionID, event string, payload interface{}) error {
	return b.send(roomID, exceptSessionID, event, payload)
}

// ToSession delivers event to a single connection.
func (b *RoomBroadcaster) ToSession(sessionID, event string, payload interface{}) error {
	sess, exists := b.sessionManager.Get(sessionID)
	if !exists {
		return ErrSessionNotFound
	}
	return sess.Send(event, payload)
}

func (b *RoomBroadcaster) send(roomID, exceptSessionID, event string, payload interface{}) error {
	rm, exists := b.roomManager.Get(roomID)
	if !exists {
		return ErrRoomNotFound
	}

	for _, member := range rm.Members() {
		if member.SessionID == exceptSessionID {
			continue
		}
		sess, ok := b.sessionManager.Get(member.SessionID)
		if !ok {
			continue
		}
		if err := sess.Send(event, payload); err != nil {
			// Dead connections are reaped on disconnect.
			continue
		}
	}
	return nil
}
