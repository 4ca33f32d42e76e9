// models/models.go
package models

import (
	"time"
)

// PlayerInfo identifies one participant of a finished match.
type PlayerInfo struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
}

// MatchRecord is the archive row for one finished game.
type MatchRecord struct {
	RoomID    string       `json:"roomId"`
	GameType  string       `json:"gameType"`
	Players   []PlayerInfo `json:"players"`
	Result    string       `json:"result"` // winning symbol/color, or "tie"
	CreatedAt time.Time    `json:"createdAt"`
}

// LeaderboardEntry is one row of the win leaderboard.
type LeaderboardEntry struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}
