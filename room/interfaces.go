package room

import "time"

// Notifier delivers events to connections. Defined here to break the
// import cycle between room and broadcast.
type Notifier interface {
	ToRoom(roomID, event string, payload interface{}) error
	ToOthers(roomID, exceptSessionID, event string, payload interface{}) error
	ToSession(sessionID, event string, payload interface{}) error
}

// Stats receives coordinator counters. Implemented by monitor.Monitor.
type Stats interface {
	IncMovesApplied()
	IncMovesRejected()
	SetActiveRooms(count int)
	ObserveBroadcastLatency(d time.Duration)
}

// Recorder receives finished matches. Implemented by services.StatsService.
type Recorder interface {
	RecordResult(roomID, gameType string, members []Member, result string)
}
