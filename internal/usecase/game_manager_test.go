package usecase

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/service/mocks"
)

var errBotBroken = errors.New("bot is broken")

func newTestManager(t *testing.T) (*GameManager, *mocks.MockBotService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	bot := mocks.NewMockBotService(ctrl)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	return NewGameManager(logger, bot), bot
}

func TestGameManager_NewGame(t *testing.T) {
	t.Run("Local game", func(t *testing.T) {
		manager, _ := newTestManager(t)

		game, err := manager.NewGame(entity.LocalMode, entity.EmptyCell)

		require.NoError(t, err)
		assert.Equal(t, entity.LocalMode, game.Mode)
		assert.Equal(t, entity.PlayerX, game.Turn)
	})

	t.Run("Invalid human mark", func(t *testing.T) {
		manager, _ := newTestManager(t)

		_, err := manager.NewGame(entity.WithBotMode, "Z")

		require.ErrorIs(t, err, apperror.ErrInvalidMark)
	})
}

func TestGameManager_MakeTurn(t *testing.T) {
	t.Run("Alternates turns in a local game", func(t *testing.T) {
		// Given: a local game
		manager, _ := newTestManager(t)
		game, err := manager.NewGame(entity.LocalMode, entity.EmptyCell)
		require.NoError(t, err)

		// When: both players move
		require.NoError(t, manager.MakeTurn(game, 4))
		require.NoError(t, manager.MakeTurn(game, 0))

		// Then: the marks land where they were played
		assert.Equal(t, entity.PlayerX, game.Board[4])
		assert.Equal(t, entity.PlayerO, game.Board[0])
		assert.Equal(t, entity.PlayerX, game.Turn)
	})

	t.Run("Human cannot move on the bot's turn", func(t *testing.T) {
		// Given: a bot game where the bot holds X
		manager, _ := newTestManager(t)
		game, err := manager.NewGame(entity.WithBotMode, entity.PlayerO)
		require.NoError(t, err)

		// When: the human tries to move first
		err = manager.MakeTurn(game, 4)

		// Then: the move is rejected
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, entity.NewBoard(), game.Board)
	})

	t.Run("Occupied cell keeps the turn", func(t *testing.T) {
		manager, _ := newTestManager(t)
		game, err := manager.NewGame(entity.LocalMode, entity.EmptyCell)
		require.NoError(t, err)
		require.NoError(t, manager.MakeTurn(game, 4))

		err = manager.MakeTurn(game, 4)

		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Equal(t, entity.PlayerO, game.Turn)
	})
}

func TestGameManager_BotTurn(t *testing.T) {
	t.Run("Plays the bot's move", func(t *testing.T) {
		// Given: a bot game where the bot holds X
		manager, bot := newTestManager(t)
		game, err := manager.NewGame(entity.WithBotMode, entity.PlayerO)
		require.NoError(t, err)

		bot.EXPECT().
			NextMove(entity.NewBoard(), entity.PlayerX).
			Return(4, nil).
			Times(1)

		// When: the bot takes its turn
		cell, err := manager.BotTurn(game)

		// Then: its move is on the board and the human is next
		require.NoError(t, err)
		assert.Equal(t, 4, cell)
		assert.Equal(t, entity.PlayerX, game.Board[4])
		assert.Equal(t, entity.PlayerO, game.Turn)
		assert.False(t, game.IsBotTurn())
	})

	t.Run("Not the bot's turn", func(t *testing.T) {
		manager, _ := newTestManager(t)
		game, err := manager.NewGame(entity.WithBotMode, entity.PlayerX)
		require.NoError(t, err)

		_, err = manager.BotTurn(game)

		require.ErrorIs(t, err, ErrNotBotTurn)
	})

	t.Run("Bot error", func(t *testing.T) {
		manager, bot := newTestManager(t)
		game, err := manager.NewGame(entity.WithBotMode, entity.PlayerO)
		require.NoError(t, err)

		bot.EXPECT().
			NextMove(gomock.Any(), entity.PlayerX).
			Return(0, errBotBroken)

		_, err = manager.BotTurn(game)

		require.ErrorIs(t, err, errBotBroken)
		assert.Equal(t, entity.NewBoard(), game.Board)
	})

	t.Run("Bot picks an occupied cell", func(t *testing.T) {
		// Given: a bot game where the human already took the center
		manager, bot := newTestManager(t)
		game, err := manager.NewGame(entity.WithBotMode, entity.PlayerX)
		require.NoError(t, err)
		require.NoError(t, manager.MakeTurn(game, 4))

		bot.EXPECT().
			NextMove(gomock.Any(), entity.PlayerO).
			Return(4, nil)

		// When: the bot answers with the same cell
		_, err = manager.BotTurn(game)

		// Then: the move is refused
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, entity.PlayerO, game.Turn)
	})

	t.Run("Finished game", func(t *testing.T) {
		manager, _ := newTestManager(t)
		game := &entity.Game{Status: entity.StatusFinished}

		_, err := manager.BotTurn(game)

		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}
