package tictactoe

import "github.com/rocketscienceinc/tictactoe-cli/internal/entity"

// FindWinningMove returns the first empty cell that completes a line for mark.
func FindWinningMove(board entity.Board, mark entity.Mark) (int, bool) {
	for _, combo := range entity.WinCombos {
		owned, empty := 0, noMove

		for _, cell := range combo {
			switch board[cell] {
			case mark:
				owned++
			case entity.EmptyCell:
				empty = cell
			}
		}

		if owned == 2 && empty != noMove {
			return empty, true
		}
	}

	return noMove, false
}
