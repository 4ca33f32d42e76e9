package game

import (
	"testing"
)

func applyDrop(t *testing.T, s State, column int) State {
	t.Helper()
	next, err := DropEngine{}.Apply(s, column)
	if err != nil {
		t.Fatalf("Apply(%d) failed: %v", column, err)
	}
	return next
}

func TestDropEngine_Gravity(t *testing.T) {
	s := DropEngine{}.NewState()

	s = applyDrop(t, s, 3)
	s = applyDrop(t, s, 3)
	ds := s.(DropState)

	if ds.Board[5][3] != ColorRed {
		t.Errorf("Expected red at bottom of column 3, got %q", ds.Board[5][3])
	}
	if ds.Board[4][3] != ColorYellow {
		t.Errorf("Expected yellow stacked above, got %q", ds.Board[4][3])
	}
	if ds.CurrentPlayer != ColorRed {
		t.Errorf("Expected turn back to red, got %q", ds.CurrentPlayer)
	}
}

func TestDropEngine_OutOfRange(t *testing.T) {
	s := DropEngine{}.NewState()
	for _, column := range []int{-1, 7, 42} {
		if _, err := (DropEngine{}).Apply(s, column); err != ErrOutOfRange {
			t.Errorf("Apply(%d): expected ErrOutOfRange, got %v", column, err)
		}
	}
}

func TestDropEngine_ColumnFull(t *testing.T) {
	s := DropEngine{}.NewState()
	// Six alternating pieces fill column 0 without a win.
	for i := 0; i < DropRows; i++ {
		s = applyDrop(t, s, 0)
	}

	next, err := DropEngine{}.Apply(s, 0)
	if err != ErrColumnFull {
		t.Fatalf("Expected ErrColumnFull on the 7th drop, got %v", err)
	}
	if next.(DropState) != s.(DropState) {
		t.Error("State changed on a rejected move")
	}
}

func TestDropEngine_HorizontalWin(t *testing.T) {
	s := DropEngine{}.NewState()
	// Red walks the bottom row, yellow stacks on top of red.
	for _, column := range []int{0, 0, 1, 1, 2, 2} {
		s = applyDrop(t, s, column)
	}
	if s.Result() != "" {
		t.Fatalf("Unexpected early result %q", s.Result())
	}

	s = applyDrop(t, s, 3)
	if got := s.Result(); got != ColorRed {
		t.Errorf("Expected red horizontal win, got %q", got)
	}
}

func TestDropEngine_VerticalWin(t *testing.T) {
	s := DropEngine{}.NewState()
	for _, column := range []int{0, 1, 0, 1, 0, 1} {
		s = applyDrop(t, s, column)
	}
	s = applyDrop(t, s, 0)

	if got := s.Result(); got != ColorRed {
		t.Errorf("Expected red vertical win, got %q", got)
	}
}

// Red builds the rising diagonal (5,0),(4,1),(3,2),(2,3); the win must
// land exactly on the fourth placement.
func TestDropEngine_DiagonalWin(t *testing.T) {
	s := DropEngine{}.NewState()
	moves := []int{
		0, // red  (5,0)
		1, // yellow
		1, // red  (4,1)
		2, // yellow
		6, // red  filler
		2, // yellow
		2, // red  (3,2)
		3, // yellow
		3, // red
		3, // yellow
	}
	for i, column := range moves {
		s = applyDrop(t, s, column)
		if s.Result() != "" {
			t.Fatalf("Unexpected result %q after move %d", s.Result(), i)
		}
	}

	s = applyDrop(t, s, 3) // red (2,3)
	if got := s.Result(); got != ColorRed {
		t.Errorf("Expected red diagonal win, got %q", got)
	}
}

func TestDropEngine_MoveAfterWinRejected(t *testing.T) {
	s := DropEngine{}.NewState()
	for _, column := range []int{0, 1, 0, 1, 0, 1, 0} {
		s = applyDrop(t, s, column)
	}

	if _, err := (DropEngine{}).Apply(s, 3); err != ErrGameOver {
		t.Errorf("Expected ErrGameOver, got %v", err)
	}
}

// tieBoard builds a full-board-minus-one pattern with no four-in-a-row:
// every column alternates colors bottom-up, column 3 with inverted
// phase, which caps every axis at runs of three.
func tieBoard() DropState {
	var ds DropState
	for c := 0; c < DropCols; c++ {
		for i := 0; i < DropRows; i++ {
			color := ColorRed
			if i%2 == 1 {
				color = ColorYellow
			}
			if c == 3 {
				if color == ColorRed {
					color = ColorYellow
				} else {
					color = ColorRed
				}
			}
			ds.Board[DropRows-1-i][c] = color
		}
	}
	ds.Board[0][6] = "" // one slot left, top of column 6
	ds.CurrentPlayer = ColorYellow
	return ds
}

func TestDropEngine_TieOnFullBoard(t *testing.T) {
	s, err := DropEngine{}.Apply(tieBoard(), 6)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if got := s.Result(); got != ResultTie {
		t.Errorf("Expected tie on full board, got %q", got)
	}
}
