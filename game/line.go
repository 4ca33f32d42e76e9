// game/line.go
package game

// Tic-tac-toe marks. X always moves first.
const (
	MarkX = "X"
	MarkO = "O"
)

// LineState is a 3x3 board stored as a flat 9-cell array, row-major.
// Empty cells are "".
type LineState struct {
	Board         [9]string `json:"board"`
	CurrentPlayer string    `json:"currentPlayer"`
	Winner        string    `json:"winner"`
}

func (s LineState) Result() string { return s.Winner }

// The eight winning triples: three rows, three columns, two diagonals.
var winningTriples = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// LineEngine implements tic-tac-toe.
type LineEngine struct{}

func (LineEngine) NewState() State {
	return LineState{CurrentPlayer: MarkX}
}

// Apply places the current mark at cell index input (0..8), advances the
// turn and evaluates termination. The input state is returned unchanged
// on an illegal move.
func (LineEngine) Apply(s State, input int) (State, error) {
	ls, ok := s.(LineState)
	if !ok {
		return s, ErrWrongGame
	}

	if input < 0 || input >= len(ls.Board) {
		return s, ErrOutOfRange
	}
	if ls.Winner != "" {
		return s, ErrGameOver
	}
	if ls.Board[input] != "" {
		return s, ErrOccupied
	}

	mark := ls.CurrentPlayer
	ls.Board[input] = mark
	if mark == MarkX {
		ls.CurrentPlayer = MarkO
	} else {
		ls.CurrentPlayer = MarkX
	}

	ls.Winner = evaluateLine(ls.Board)
	return ls, nil
}

// evaluateLine returns the winning mark, ResultTie on a full board, or
// "". A full board that completes a triple is a win, not a tie.
func evaluateLine(board [9]string) string {
	for _, triple := range winningTriples {
		a, b, c := triple[0], triple[1], triple[2]
		if board[a] != "" && board[a] == board[b] && board[a] == board[c] {
			return board[a]
		}
	}

	for _, cell := range board {
		if cell == "" {
			return ""
		}
	}
	return ResultTie
}
