// room/coordinator.go
package room

import (
	"errors"
	"time"

	"github.com/playgrid/arcade/game"
	"github.com/playgrid/arcade/logger"
	"github.com/playgrid/arcade/network"
	"github.com/playgrid/arcade/session"
)

var (
	ErrMissingRoomID   = errors.New("missing gameId")
	ErrMissingPlayerID = errors.New("missing playerId")
	ErrUnknownGameType = errors.New("unknown game type")
)

// Coordinator orchestrates room membership and move application. All
// room mutation funnels through here; the per-room mutex inside Room
// serializes moves for one room while leaving other rooms independent.
type Coordinator struct {
	rooms    *Manager
	sessions *session.Manager
	notifier Notifier
	stats    Stats    // optional
	recorder Recorder // optional
}

func NewCoordinator(rooms *Manager, sessions *session.Manager, notifier Notifier) *Coordinator {
	return &Coordinator{
		rooms:    rooms,
		sessions: sessions,
		notifier: notifier,
	}
}

// SetStats attaches a metrics sink. Nil is fine.
func (c *Coordinator) SetStats(stats Stats) {
	c.stats = stats
}

// SetRecorder attaches a finished-match sink. Nil is fine.
func (c *Coordinator) SetRecorder(recorder Recorder) {
	c.recorder = recorder
}

type joinedPayload struct {
	GameID  string   `json:"gameId"`
	Players []Member `json:"players"`
}

type playerJoinedPayload struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
}

type playerLeftPayload struct {
	PlayerID string `json:"playerId"`
}

type moveRejectedPayload struct {
	GameID string `json:"gameId"`
	Reason string `json:"reason"`
}

// Join puts a session into a room, creating the room on first sight.
// The joining connection gets the full roster (joined-game); everyone
// already present gets just the newcomer (player-joined).
func (c *Coordinator) Join(sess *session.Session, roomID, playerID, playerName, gameType string) error {
	if roomID == "" {
		return ErrMissingRoomID
	}
	if playerID == "" {
		return ErrMissingPlayerID
	}

	room, roster, ok := c.rooms.Join(roomID, gameType, Member{
		SessionID:  sess.ID,
		PlayerID:   playerID,
		PlayerName: playerName,
	})
	if !ok {
		return ErrUnknownGameType
	}
	sess.Identify(playerID, playerName, roomID)

	if c.stats != nil {
		c.stats.SetActiveRooms(c.rooms.Count())
	}
	logger.Log.Infof("Player %s joined room %s (%s)", playerID, roomID, room.GameType)

	c.notifier.ToSession(sess.ID, network.EventJoinedGame, joinedPayload{GameID: roomID, Players: roster})
	c.notifier.ToOthers(roomID, sess.ID, network.EventPlayerJoined, playerJoinedPayload{
		PlayerID:   playerID,
		PlayerName: playerName,
	})
	return nil
}

// ApplyMove applies one move to a room. An unknown room is a silent
// no-op. An illegal move leaves the state untouched and reports the
// reason to the submitting connection only; nothing is broadcast.
func (c *Coordinator) ApplyMove(sessionID, roomID, gameType string, input int) {
	room, exists := c.rooms.Get(roomID)
	if !exists {
		logger.Log.Debugf("Move for unknown room %s dropped", roomID)
		return
	}

	if room.GameType != gameType {
		c.rejectMove(sessionID, roomID, game.ErrWrongGame)
		return
	}

	state, err := room.ApplyMove(input)
	if err != nil {
		c.rejectMove(sessionID, roomID, err)
		return
	}

	if c.stats != nil {
		c.stats.IncMovesApplied()
	}

	start := time.Now()
	c.notifier.ToRoom(roomID, updateEventFor(gameType), state)
	if c.stats != nil {
		c.stats.ObserveBroadcastLatency(time.Since(start))
	}

	if result := state.Result(); result != "" {
		logger.Log.Infof("Room %s finished: %s", roomID, result)
		if c.recorder != nil {
			c.recorder.RecordResult(roomID, gameType, room.Members(), result)
		}
	}
}

func (c *Coordinator) rejectMove(sessionID, roomID string, reason error) {
	if c.stats != nil {
		c.stats.IncMovesRejected()
	}
	c.notifier.ToSession(sessionID, network.EventMoveRejected, moveRejectedPayload{
		GameID: roomID,
		Reason: reason.Error(),
	})
}

// Leave detaches a session from its room, if any, and tells the
// remaining members. The room itself stays in the store, board and all,
// so a rejoining player sees the current game. A session that never
// joined is a no-op.
func (c *Coordinator) Leave(sessionID string) {
	sess, exists := c.sessions.Get(sessionID)
	if !exists {
		return
	}

	playerID, _, roomID := sess.Identity()
	if roomID == "" {
		return
	}
	sess.ClearRoom()

	room, exists := c.rooms.Get(roomID)
	if !exists {
		return
	}
	if _, removed := room.RemoveMember(sessionID); !removed {
		return
	}

	logger.Log.Infof("Player %s left room %s", playerID, roomID)
	c.notifier.ToRoom(roomID, network.EventPlayerLeft, playerLeftPayload{PlayerID: playerID})
}

func updateEventFor(gameType string) string {
	if gameType == game.TypeConnectFour {
		return network.EventC4Update
	}
	return network.EventTTTUpdate
}
