package usecase

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

var ErrNotBotTurn = errors.New("it's not the bot's turn")

type botService interface {
	NextMove(board entity.Board, mark entity.Mark) (int, error)
}

// GameManager runs game sessions for the front-ends.
type GameManager struct {
	logger *slog.Logger
	bot    botService
}

func NewGameManager(logger *slog.Logger, bot botService) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),
		bot:    bot,
	}
}

// NewGame starts a session. humanMark is only used in bot mode.
func (that *GameManager) NewGame(mode entity.GameMode, humanMark entity.Mark) (*entity.Game, error) {
	game, err := entity.NewGame(mode, humanMark)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game started", "game_id", game.ID, "mode", game.Mode, "human_mark", humanMark)

	return game, nil
}

// MakeTurn plays cell for the human whose turn it is.
func (that *GameManager) MakeTurn(game *entity.Game, cell int) error {
	if game.IsBotTurn() {
		return apperror.ErrNotYourTurn
	}

	return that.play(game, cell)
}

// BotTurn asks the bot for a move and plays it.
func (that *GameManager) BotTurn(game *entity.Game) (int, error) {
	if game.IsFinished() {
		return 0, apperror.ErrGameFinished
	}

	if !game.IsBotTurn() {
		return 0, ErrNotBotTurn
	}

	cell, err := that.bot.NextMove(game.Board, game.Turn)
	if err != nil {
		return 0, fmt.Errorf("failed to get bot move: %w", err)
	}

	if err = that.play(game, cell); err != nil {
		return 0, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return cell, nil
}

func (that *GameManager) play(game *entity.Game, cell int) error {
	log := that.logger.With("game_id", game.ID)
	mark := game.Turn

	if err := game.MakeTurn(mark, cell); err != nil {
		log.Debug("turn rejected", "mark", mark, "cell", cell, "error", err)
		return fmt.Errorf("failed make turn: %w", err)
	}

	log.Info("turn made", "mark", mark, "cell", cell)

	if game.IsFinished() {
		log.Info("game finished", "outcome", game.Outcome.String())
	}

	return nil
}
