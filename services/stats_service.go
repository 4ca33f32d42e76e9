// services/stats_service.go
package services

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/playgrid/arcade/game"
	"github.com/playgrid/arcade/logger"
	"github.com/playgrid/arcade/models"
	"github.com/playgrid/arcade/persistence"
	"github.com/playgrid/arcade/room"
)

const (
	leaderboardKey = "leaderboard:wins"
	playerNamesKey = "player:names"
)

// StatsService archives finished matches and keeps a win leaderboard.
// Both sinks are optional: a nil archive skips recording, a nil redis
// client skips the leaderboard. The game itself never depends on either.
type StatsService struct {
	db  persistence.Database
	rdb *redis.Client
}

func NewStatsService(db persistence.Database, rdb *redis.Client) *StatsService {
	return &StatsService{db: db, rdb: rdb}
}

// RecordResult implements room.Recorder. The writes happen off the
// caller's goroutine so a slow archive never stalls move handling.
func (s *StatsService) RecordResult(roomID, gameType string, members []room.Member, result string) {
	players := make([]models.PlayerInfo, 0, len(members))
	for _, m := range members {
		players = append(players, models.PlayerInfo{
			PlayerID:   m.PlayerID,
			PlayerName: m.PlayerName,
		})
	}

	record := &models.MatchRecord{
		RoomID:    roomID,
		GameType:  gameType,
		Players:   players,
		Result:    result,
		CreatedAt: time.Now(),
	}

	go s.persist(record)
}

func (s *StatsService) persist(record *models.MatchRecord) {
	if s.db != nil {
		if err := s.db.SaveMatchRecord(record); err != nil {
			logger.Log.Errorf("Failed to archive match for room %s: %v", record.RoomID, err)
		}
	}

	if s.rdb == nil || record.Result == game.ResultTie {
		return
	}

	winner, ok := winnerOf(record)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.rdb.ZIncrBy(ctx, leaderboardKey, 1, winner.PlayerID).Err(); err != nil {
		logger.Log.Errorf("Failed to update leaderboard: %v", err)
		return
	}
	if err := s.rdb.HSet(ctx, playerNamesKey, winner.PlayerID, winner.PlayerName).Err(); err != nil {
		logger.Log.Errorf("Failed to store player name: %v", err)
	}
}

// winnerOf maps a terminal result back to a participant. The first
// joiner plays X / red, the second O / yellow.
func winnerOf(record *models.MatchRecord) (models.PlayerInfo, bool) {
	idx := 1
	if record.Result == game.MarkX || record.Result == game.ColorRed {
		idx = 0
	}
	if idx >= len(record.Players) {
		return models.PlayerInfo{}, false
	}
	return record.Players[idx], true
}

// Leaderboard returns the top n players by wins, best first.
func (s *StatsService) Leaderboard(ctx context.Context, n int64) ([]models.LeaderboardEntry, error) {
	if s.rdb == nil {
		return []models.LeaderboardEntry{}, nil
	}

	idScores, err := s.rdb.ZRevRangeWithScores(ctx, leaderboardKey, 0, n-1).Result()
	if err != nil {
		return nil, err
	}
	if len(idScores) == 0 {
		return []models.LeaderboardEntry{}, nil
	}

	playerIDs := make([]string, 0, len(idScores))
	for _, idScore := range idScores {
		playerIDs = append(playerIDs, idScore.Member.(string))
	}

	names, err := s.rdb.HMGet(ctx, playerNamesKey, playerIDs...).Result()
	if err != nil {
		return nil, err
	}

	leaderboard := make([]models.LeaderboardEntry, 0, len(idScores))
	for i, idScore := range idScores {
		name := "Unknown Player"
		if names[i] != nil {
			name = names[i].(string)
		}
		leaderboard = append(leaderboard, models.LeaderboardEntry{
			Name:  name,
			Score: idScore.Score,
		})
	}
	return leaderboard, nil
}

// MatchHistory returns a player's recent finished matches from the
// archive, newest first.
func (s *StatsService) MatchHistory(playerID string, limit int) ([]models.MatchRecord, error) {
	if s.db == nil {
		return nil, nil
	}
	return s.db.LoadMatchRecords(playerID, limit)
}
