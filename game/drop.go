// game/drop.go
package game

// Connect-four board dimensions and colors. Red always moves first.
const (
	DropRows = 6
	DropCols = 7

	ColorRed    = "red"
	ColorYellow = "yellow"
)

// DropState is a 6x7 grid, row 0 on top. Empty cells are "".
type DropState struct {
	Board         [DropRows][DropCols]string `json:"board"`
	CurrentPlayer string                     `json:"currentPlayer"`
	Winner        string                     `json:"winner"`
}

func (s DropState) Result() string { return s.Winner }

// DropEngine implements connect-four.
type DropEngine struct{}

func (DropEngine) NewState() State {
	return DropState{CurrentPlayer: ColorRed}
}

// Apply drops the current color into column input (0..6). The piece
// settles on the lowest empty row. The input state is returned unchanged
// on an illegal move.
func (DropEngine) Apply(s State, input int) (State, error) {
	ds, ok := s.(DropState)
	if !ok {
		return s, ErrWrongGame
	}

	if input < 0 || input >= DropCols {
		return s, ErrOutOfRange
	}
	if ds.Winner != "" {
		return s, ErrGameOver
	}
	if ds.Board[0][input] != "" {
		return s, ErrColumnFull
	}

	color := ds.CurrentPlayer
	row := -1
	for r := DropRows - 1; r >= 0; r-- {
		if ds.Board[r][input] == "" {
			ds.Board[r][input] = color
			row = r
			break
		}
	}

	if color == ColorRed {
		ds.CurrentPlayer = ColorYellow
	} else {
		ds.CurrentPlayer = ColorRed
	}

	if connectsFour(&ds.Board, row, input) {
		ds.Winner = color
	} else if boardFull(&ds.Board) {
		ds.Winner = ResultTie
	}
	return ds, nil
}

// connectsFour walks the four axes through the just-placed cell, counting
// consecutive same-color cells in both directions. Only the new piece can
// create a new line, so no other cell needs checking.
func connectsFour(board *[DropRows][DropCols]string, row, col int) bool {
	color := board[row][col]
	dirs := [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

	for _, d := range dirs {
		count := 1

		r, c := row+d[0], col+d[1]
		for r >= 0 && r < DropRows && c >= 0 && c < DropCols && board[r][c] == color {
			count++
			r += d[0]
			c += d[1]
		}

		r, c = row-d[0], col-d[1]
		for r >= 0 && r < DropRows && c >= 0 && c < DropCols && board[r][c] == color {
			count++
			r -= d[0]
			c -= d[1]
		}

		if count >= 4 {
			return true
		}
	}
	return false
}

// boardFull reports whether no column can accept another piece. The top
// row is enough: gravity fills columns bottom-up.
func boardFull(board *[DropRows][DropCols]string) bool {
	for c := 0; c < DropCols; c++ {
		if board[0][c] == "" {
			return false
		}
	}
	return true
}
