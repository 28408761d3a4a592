package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

// Mark is the content of a board cell.
type Mark string

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"

	EmptyCell Mark = ""
)

// BoardSize is the number of cells on the 3x3 board.
const BoardSize = 9

// WinCombos lists every row, column and diagonal of the board.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// IsPlayer reports whether the mark belongs to one of the two players.
func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// IsMaximizer reports whether the mark plays for the highest utility. X always maximizes and O
// always minimizes, no matter who controls them.
func (that Mark) IsMaximizer() bool {
	return that == PlayerX
}

func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

// Outcome is the state of a board as seen by Evaluate.
type Outcome int

const (
	InProgress Outcome = iota
	WinsX
	WinsO
	Draw
)

func (that Outcome) String() string {
	switch that {
	case InProgress:
		return "in progress"
	case WinsX:
		return "X wins"
	case WinsO:
		return "O wins"
	case Draw:
		return "draw"
	default:
		return fmt.Sprintf("outcome(%d)", int(that))
	}
}

// Winner returns the winning mark, or EmptyCell for a draw or a game in progress.
func (that Outcome) Winner() Mark {
	switch that {
	case WinsX:
		return PlayerX
	case WinsO:
		return PlayerO
	default:
		return EmptyCell
	}
}

// Utility scores a terminal outcome from X's point of view.
func (that Outcome) Utility() int {
	switch that {
	case WinsX:
		return 1
	case WinsO:
		return -1
	default:
		return 0
	}
}

// Board holds the 9 cells in row-major order.
type Board [BoardSize]Mark

func NewBoard() Board {
	return Board{}
}

// AvailableMoves returns the empty cells in ascending order.
func (that *Board) AvailableMoves() []int {
	moves := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == EmptyCell {
			moves = append(moves, i)
		}
	}

	return moves
}

// Filled returns the number of non-empty cells.
func (that *Board) Filled() int {
	filled := 0
	for _, cell := range that {
		if cell != EmptyCell {
			filled++
		}
	}

	return filled
}

// ApplyMove writes mark into cell. The board is left untouched on error.
func (that *Board) ApplyMove(cell int, mark Mark) error {
	if !mark.IsPlayer() {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMark, mark)
	}

	if cell < 0 || cell >= BoardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that[cell] != EmptyCell {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	that[cell] = mark

	return nil
}

// Evaluate returns the outcome of the board. The first completed line decides the winner.
func (that *Board) Evaluate() Outcome {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != EmptyCell && a == b && b == c {
			if a == PlayerX {
				return WinsX
			}
			return WinsO
		}
	}

	// the game will continue until all the squares are full
	for _, cell := range that {
		if cell == EmptyCell {
			return InProgress
		}
	}

	return Draw
}
