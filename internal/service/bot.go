package service

import (
	"fmt"
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

//go:generate mockgen -source=bot.go -destination=mocks/bot_mock.go -package=mocks

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// BotService picks the computer's moves.
type BotService interface {
	NextMove(board entity.Board, mark entity.Mark) (int, error)
}

// NewBotService returns a bot for the given difficulty. rng is only used by the easy and medium
// bots; the hard bot is deterministic.
func NewBotService(difficulty string, rng *rand.Rand) (BotService, error) {
	switch difficulty {
	case DifficultyEasy:
		return &randomBot{rng: rng}, nil
	case DifficultyMedium:
		return &tacticalBot{fallback: &randomBot{rng: rng}}, nil
	case DifficultyHard:
		return &minimaxBot{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, difficulty)
	}
}

type randomBot struct {
	rng *rand.Rand
}

func (that *randomBot) NextMove(board entity.Board, _ entity.Mark) (int, error) {
	if board.Evaluate() != entity.InProgress {
		return 0, apperror.ErrNoLegalMove
	}

	availableCells := board.AvailableMoves()

	return availableCells[that.rng.IntN(len(availableCells))], nil
}

// tacticalBot wins when it can, blocks when it must and plays randomly otherwise.
type tacticalBot struct {
	fallback *randomBot
}

func (that *tacticalBot) NextMove(board entity.Board, mark entity.Mark) (int, error) {
	if board.Evaluate() != entity.InProgress {
		return 0, apperror.ErrNoLegalMove
	}

	if cell, ok := tictactoe.FindWinningMove(board, mark); ok {
		return cell, nil
	}

	if cell, ok := tictactoe.FindWinningMove(board, mark.Opponent()); ok {
		return cell, nil
	}

	return that.fallback.NextMove(board, mark)
}

type minimaxBot struct{}

func (that *minimaxBot) NextMove(board entity.Board, mark entity.Mark) (int, error) {
	cell, err := tictactoe.BestMove(board, mark)
	if err != nil {
		return 0, fmt.Errorf("bot failed to pick a move: %w", err)
	}

	return cell, nil
}
