package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/cors"

	"github.com/playgrid/arcade/broadcast"
	"github.com/playgrid/arcade/game"
	"github.com/playgrid/arcade/logger"
	"github.com/playgrid/arcade/monitor"
	"github.com/playgrid/arcade/network"
	"github.com/playgrid/arcade/room"
	"github.com/playgrid/arcade/services"
	"github.com/playgrid/arcade/session"
	"github.com/playgrid/arcade/timer"
)

type GameServer struct {
	addr           string
	upgrader       websocket.Upgrader
	roomManager    *room.Manager
	sessionManager *session.Manager
	coordinator    *room.Coordinator
	stats          *services.StatsService
	mon            *monitor.Monitor
	shutdownChan   chan struct{}
}

// NewGameServer wires the room store, registry, coordinator and
// broadcaster together. stats and mon may be nil.
func NewGameServer(addr string, stats *services.StatsService, mon *monitor.Monitor) *GameServer {
	s := &GameServer{
		addr:           addr,
		roomManager:    room.NewManager(),
		sessionManager: session.NewManager(),
		stats:          stats,
		mon:            mon,
		shutdownChan:   make(chan struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // 允许所有跨域请求
			},
		},
	}

	broadcaster := broadcast.NewRoomBroadcaster(s.roomManager, s.sessionManager)
	s.coordinator = room.NewCoordinator(s.roomManager, s.sessionManager, broadcaster)
	if mon != nil {
		s.coordinator.SetStats(mon)
	}
	if stats != nil {
		s.coordinator.SetRecorder(stats)
	}

	return s
}

// ScheduleEviction starts the idle-room sweep on timers.
func (s *GameServer) ScheduleEviction(timers *timer.TimerManager, interval, ttl time.Duration) int64 {
	return s.coordinator.ScheduleEviction(timers, interval, ttl)
}

func (s *GameServer) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/api/health", s.handleHealth)

	handler := cors.Default().Handler(mux)

	logger.Log.Infof("Game server listening on %s", s.addr)
	return http.ListenAndServe(s.addr, handler)
}

func (s *GameServer) Shutdown() {
	close(s.shutdownChan)
}

func (s *GameServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":    "Server running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *GameServer) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Infof("Failed to upgrade connection: %v", err)
		return
	}
	s.handleConnection(conn)
}

func (s *GameServer) handleConnection(conn *websocket.Conn) {
	wsConn := network.NewWSConnection(conn)
	sess := session.NewSession(uuid.New().String(), wsConn)
	s.sessionManager.Add(sess)
	if s.mon != nil {
		s.mon.IncOnlinePlayers()
	}

	logger.Log.Infof("New connection from %s, session ID: %s", wsConn.RemoteAddr(), sess.GetID())

	defer func() {
		logger.Log.Infof("Connection closed from %s, session ID: %s", wsConn.RemoteAddr(), sess.GetID())
		s.coordinator.Leave(sess.GetID())
		s.sessionManager.Remove(sess.GetID())
		if s.mon != nil {
			s.mon.DecOnlinePlayers()
		}
		wsConn.Close()
	}()

	for {
		select {
		case <-s.shutdownChan:
			return
		default:
			env, err := wsConn.ReadEvent()
			if err != nil {
				return
			}
			s.handleEvent(sess, env)
		}
	}
}

type joinRequest struct {
	GameID     string `json:"gameId"`
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	GameType   string `json:"gameType"`
}

type tttMoveRequest struct {
	GameID   string `json:"gameId"`
	Position int    `json:"position"`
}

type c4MoveRequest struct {
	GameID string `json:"gameId"`
	Column int    `json:"column"`
}

type errorPayload struct {
	Message string `json:"message"`
}

func (s *GameServer) handleEvent(sess *session.Session, env *network.Envelope) {
	if s.mon != nil {
		s.mon.IncEventsReceived()
	}

	switch env.Event {
	case network.EventHeartbeat:
		sess.Touch()
	case network.EventJoinGame:
		s.handleJoinGame(sess, env.Data)
	case network.EventLeaveGame:
		s.coordinator.Leave(sess.GetID())
	case network.EventTTTMove:
		s.handleTTTMove(sess, env.Data)
	case network.EventC4Move:
		s.handleC4Move(sess, env.Data)
	case network.EventGetLeaderboard:
		s.handleGetLeaderboard(sess)
	default:
		logger.Log.Infof("Unknown event %q from session %s", env.Event, sess.GetID())
	}
}

// handleJoinGame validates the join before anything is registered. A
// malformed join gets an error event back and touches no state.
func (s *GameServer) handleJoinGame(sess *session.Session, data json.RawMessage) {
	var req joinRequest
	if err := json.Unmarshal(data, &req); err != nil {
		sess.Send(network.EventError, errorPayload{Message: "malformed join-game payload"})
		return
	}

	if err := s.coordinator.Join(sess, req.GameID, req.PlayerID, req.PlayerName, req.GameType); err != nil {
		sess.Send(network.EventError, errorPayload{Message: err.Error()})
	}
}

func (s *GameServer) handleTTTMove(sess *session.Session, data json.RawMessage) {
	var req tttMoveRequest
	if err := json.Unmarshal(data, &req); err != nil {
		logger.Log.Debugf("Malformed ttt-move from %s: %v", sess.GetID(), err)
		return
	}
	s.coordinator.ApplyMove(sess.GetID(), req.GameID, game.TypeTicTacToe, req.Position)
}

func (s *GameServer) handleC4Move(sess *session.Session, data json.RawMessage) {
	var req c4MoveRequest
	if err := json.Unmarshal(data, &req); err != nil {
		logger.Log.Debugf("Malformed c4-move from %s: %v", sess.GetID(), err)
		return
	}
	s.coordinator.ApplyMove(sess.GetID(), req.GameID, game.TypeConnectFour, req.Column)
}

func (s *GameServer) handleGetLeaderboard(sess *session.Session) {
	if s.stats == nil {
		sess.Send(network.EventLeaderboard, []struct{}{})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	entries, err := s.stats.Leaderboard(ctx, 10)
	if err != nil {
		logger.Log.Errorf("Failed to load leaderboard: %v", err)
		return
	}
	sess.Send(network.EventLeaderboard, entries)
}
