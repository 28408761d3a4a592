package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const noMove = -1

// Analysis is the result of a full game-tree search.
type Analysis struct {
	Move  int
	Score int
	Nodes int
}

// BestMove returns the optimal cell for mark. Ties go to the lowest cell index, so the result is
// deterministic for a given board and mark.
func BestMove(board entity.Board, mark entity.Mark) (int, error) {
	analysis, err := Analyze(board, mark)
	if err != nil {
		return noMove, err
	}

	return analysis.Move, nil
}

// Analyze searches the whole game tree from board with mark to move. The board is passed by
// value and the caller's copy is never touched.
func Analyze(board entity.Board, mark entity.Mark) (Analysis, error) {
	if !mark.IsPlayer() {
		return Analysis{Move: noMove}, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, mark)
	}

	if outcome := board.Evaluate(); outcome != entity.InProgress {
		return Analysis{Move: noMove}, fmt.Errorf("%w: game is over (%s)", apperror.ErrNoLegalMove, outcome)
	}

	moves := board.AvailableMoves()
	if len(moves) == 0 {
		return Analysis{Move: noMove}, apperror.ErrNoLegalMove
	}

	s := &search{board: board}
	score, move := s.minimax(mark)
	if move == noMove {
		move = moves[0]
	}

	return Analysis{Move: move, Score: score, Nodes: s.nodes}, nil
}

type search struct {
	board entity.Board
	nodes int
}

// minimax scores the position with mark to move. Every trial move is undone before the next one.
func (that *search) minimax(mark entity.Mark) (int, int) {
	that.nodes++

	if outcome := that.board.Evaluate(); outcome != entity.InProgress {
		return outcome.Utility(), noMove
	}

	maximizing := mark.IsMaximizer()
	bestScore, bestMove := worstScore(maximizing), noMove

	for _, cell := range that.board.AvailableMoves() {
		that.board[cell] = mark
		score, _ := that.minimax(mark.Opponent())
		that.board[cell] = entity.EmptyCell

		if isBetter(score, bestScore, maximizing) {
			bestScore, bestMove = score, cell
		}

		// nothing beats a forced win, skip the remaining siblings
		if bestScore == bestPossible(maximizing) {
			break
		}
	}

	return bestScore, bestMove
}

func isBetter(score, best int, maximizing bool) bool {
	if maximizing {
		return score > best
	}
	return score < best
}

func worstScore(maximizing bool) int {
	if maximizing {
		return entity.WinsO.Utility() - 1
	}
	return entity.WinsX.Utility() + 1
}

func bestPossible(maximizing bool) int {
	if maximizing {
		return entity.WinsX.Utility()
	}
	return entity.WinsO.Utility()
}
