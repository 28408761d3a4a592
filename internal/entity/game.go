package entity

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// GameMode selects who controls the two marks.
type GameMode string

const (
	LocalMode   GameMode = "local"
	WithBotMode GameMode = "bot"
)

// Game is a single game session. X always moves first.
type Game struct {
	ID      string
	Board   Board
	Turn    Mark
	Outcome Outcome
	Status  string
	Mode    GameMode
	Players [2]*Player
}

// NewGame creates a session. In WithBotMode humanMark selects the side the human plays and the
// other side is taken by the bot; it is ignored in LocalMode.
func NewGame(mode GameMode, humanMark Mark) (*Game, error) {
	var players [2]*Player

	switch mode {
	case LocalMode:
		players = [2]*Player{
			{Name: "Player X", Mark: PlayerX},
			{Name: "Player O", Mark: PlayerO},
		}
	case WithBotMode:
		if !humanMark.IsPlayer() {
			return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, humanMark)
		}

		players = [2]*Player{
			{Name: "You", Mark: humanMark},
			{Name: "CPU", Mark: humanMark.Opponent(), Bot: true},
		}
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidMode, mode)
	}

	return &Game{
		ID:      uuid.NewString(),
		Board:   NewBoard(),
		Turn:    PlayerX,
		Outcome: InProgress,
		Status:  StatusOngoing,
		Mode:    mode,
		Players: players,
	}, nil
}

// PlayerByMark returns the player holding mark, or nil.
func (that *Game) PlayerByMark(mark Mark) *Player {
	for _, player := range that.Players {
		if player != nil && player.Mark == mark {
			return player
		}
	}

	return nil
}

// CurrentPlayer returns the player whose turn it is, or nil once the game is finished.
func (that *Game) CurrentPlayer() *Player {
	if that.IsFinished() {
		return nil
	}

	return that.PlayerByMark(that.Turn)
}

func (that *Game) IsBotTurn() bool {
	player := that.CurrentPlayer()

	return player != nil && player.IsBot()
}

func (that *Game) UpdateGameState() {
	that.Outcome = that.Board.Evaluate()

	if that.Outcome == InProgress {
		that.Status = StatusOngoing
		return
	}

	that.Status = StatusFinished
	that.Turn = EmptyCell
}

// MakeTurn places mark on cell and passes the turn to the opponent.
func (that *Game) MakeTurn(mark Mark, cell int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if err := that.Board.ApplyMove(cell, mark); err != nil {
		return err
	}

	that.Turn = mark.Opponent()
	that.UpdateGameState()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}
