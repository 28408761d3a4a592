package service

import (
	"math/rand/v2"
	"testing"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = entity.PlayerX
	o = entity.PlayerO
	e = entity.EmptyCell
)

func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2)) //nolint: gosec // deterministic tests
}

func TestNewBotService(t *testing.T) {
	for _, difficulty := range []string{DifficultyEasy, DifficultyMedium, DifficultyHard} {
		bot, err := NewBotService(difficulty, newTestRand())

		require.NoError(t, err)
		require.NotNil(t, bot)
	}

	_, err := NewBotService("impossible", newTestRand())
	require.ErrorIs(t, err, apperror.ErrUnknownDifficulty)
}

func TestBotService_NextMove(t *testing.T) {
	t.Run("Easy bot plays legal moves", func(t *testing.T) {
		// Given: an easy bot and a board with three free cells
		bot, err := NewBotService(DifficultyEasy, newTestRand())
		require.NoError(t, err)
		board := entity.Board{
			x, o, x,
			e, o, e,
			o, x, e,
		}

		// When: the bot plays many times
		for range 50 {
			cell, err := bot.NextMove(board, x)

			// Then: every move is one of the free cells
			require.NoError(t, err)
			assert.Contains(t, []int{3, 5, 8}, cell)
		}
	})

	t.Run("Easy bot with the last cell", func(t *testing.T) {
		bot, err := NewBotService(DifficultyEasy, newTestRand())
		require.NoError(t, err)
		board := entity.Board{
			x, o, x,
			x, o, o,
			o, x, e,
		}

		cell, err := bot.NextMove(board, x)

		require.NoError(t, err)
		assert.Equal(t, 8, cell)
	})

	t.Run("Medium bot wins", func(t *testing.T) {
		bot, err := NewBotService(DifficultyMedium, newTestRand())
		require.NoError(t, err)
		board := entity.Board{
			o, o, e,
			x, x, e,
			e, e, e,
		}

		cell, err := bot.NextMove(board, x)

		require.NoError(t, err)
		assert.Equal(t, 5, cell)
	})

	t.Run("Medium bot blocks", func(t *testing.T) {
		bot, err := NewBotService(DifficultyMedium, newTestRand())
		require.NoError(t, err)
		board := entity.Board{
			o, o, e,
			x, e, e,
			e, e, e,
		}

		cell, err := bot.NextMove(board, x)

		require.NoError(t, err)
		assert.Equal(t, 2, cell)
	})

	t.Run("Hard bot plays the search result", func(t *testing.T) {
		bot, err := NewBotService(DifficultyHard, newTestRand())
		require.NoError(t, err)

		cell, err := bot.NextMove(entity.NewBoard(), x)

		require.NoError(t, err)
		assert.Equal(t, 0, cell)
	})

	t.Run("Finished board", func(t *testing.T) {
		board := entity.Board{
			x, x, x,
			o, o, e,
			e, e, e,
		}

		for _, difficulty := range []string{DifficultyEasy, DifficultyMedium, DifficultyHard} {
			bot, err := NewBotService(difficulty, newTestRand())
			require.NoError(t, err)

			_, err = bot.NextMove(board, o)

			assert.ErrorIs(t, err, apperror.ErrNoLegalMove, difficulty)
		}
	})
}

func TestHardBot_NeverLoses(t *testing.T) {
	// Given: a hard bot as O against a random bot as X, over many games
	hard, err := NewBotService(DifficultyHard, newTestRand())
	require.NoError(t, err)
	random, err := NewBotService(DifficultyEasy, newTestRand())
	require.NoError(t, err)

	for range 30 {
		game, err := entity.NewGame(entity.WithBotMode, x)
		require.NoError(t, err)

		for game.IsOngoing() {
			bot := random
			if game.Turn == o {
				bot = hard
			}

			cell, err := bot.NextMove(game.Board, game.Turn)
			require.NoError(t, err)
			require.NoError(t, game.MakeTurn(game.Turn, cell))
		}

		// Then: X never wins
		assert.NotEqual(t, entity.WinsX, game.Outcome)
	}
}
