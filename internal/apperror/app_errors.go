package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMove  = errors.New("invalid move")
	ErrInvalidCell  = fmt.Errorf("%w: invalid cell index", ErrInvalidMove)
	ErrCellOccupied = fmt.Errorf("%w: cell is already occupied", ErrInvalidMove)
	ErrInvalidMark  = fmt.Errorf("%w: invalid mark", ErrInvalidMove)

	ErrNoLegalMove = errors.New("no legal move")

	ErrGameFinished      = errors.New("game is already finished")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrInvalidMode       = errors.New("invalid game mode")
	ErrUnknownDifficulty = errors.New("unknown bot difficulty")
)
