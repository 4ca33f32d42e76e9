// game/game.go
package game

import (
	"errors"
)

// Game types as they appear on the wire.
const (
	TypeTicTacToe   = "tic-tac-toe"
	TypeConnectFour = "connect-four"
)

// Terminal result for a drawn game.
const ResultTie = "tie"

// Move rejection reasons. The coordinator drops the move and reports the
// reason back to the submitting connection only.
var (
	ErrOutOfRange = errors.New("move out of range")
	ErrOccupied   = errors.New("cell already occupied")
	ErrColumnFull = errors.New("column is full")
	ErrGameOver   = errors.New("game already over")
	ErrWrongGame  = errors.New("move does not match room game type")
)

// State is the authoritative board, turn and result for one room.
// Implementations are plain values; applying a move never mutates the
// input, it returns the updated value.
type State interface {
	// Result returns the winning symbol or color, ResultTie for a draw,
	// or "" while the game is still in progress.
	Result() string
}

// Engine applies moves for one game type. Engines are stateless; the
// room owns the state and stores whatever Apply returns.
type Engine interface {
	NewState() State
	Apply(s State, input int) (State, error)
}

// EngineFor resolves the engine for a wire game type. The choice is made
// once, when a room is created, and never changes for that room.
func EngineFor(gameType string) (Engine, bool) {
	switch gameType {
	case TypeTicTacToe:
		return LineEngine{}, true
	case TypeConnectFour:
		return DropEngine{}, true
	}
	return nil, false
}
