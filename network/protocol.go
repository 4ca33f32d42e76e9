package network

// Inbound event names.
const (
	EventHeartbeat      = "heartbeat"
	EventJoinGame       = "join-game"
	EventLeaveGame      = "leave-game"
	EventTTTMove        = "ttt-move"
	EventC4Move         = "c4-move"
	EventGetLeaderboard = "get-leaderboard"
)

// Outbound event names.
const (
	EventJoinedGame   = "joined-game"
	EventPlayerJoined = "player-joined"
	EventPlayerLeft   = "player-left"
	EventTTTUpdate    = "ttt-update"
	EventC4Update     = "c4-update"
	EventMoveRejected = "move-rejected"
	EventError        = "error"
	EventLeaderboard  = "leaderboard"
)
