package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type screen int

const (
	menuScreen screen = iota
	gameScreen
	resultScreen
)

const (
	boardLeft = 2
	boardTop  = 2
)

type gameManager interface {
	NewGame(mode entity.GameMode, humanMark entity.Mark) (*entity.Game, error)
	MakeTurn(game *entity.Game, cell int) error
	BotTurn(game *entity.Game) (int, error)
}

// cursor is the highlighted cell. It wraps around the board edges.
type cursor struct {
	row, col int
}

func (that *cursor) move(dRow, dCol int) {
	that.row = (that.row + dRow + 3) % 3
	that.col = (that.col + dCol + 3) % 3
}

func (that cursor) cell() int {
	return that.row*3 + that.col
}

// UI is a full-screen front-end drawn with termbox.
type UI struct {
	logger  *slog.Logger
	manager gameManager

	screen screen
	game   *entity.Game
	cursor cursor
	status string
}

func New(logger *slog.Logger, manager gameManager) *UI {
	return &UI{
		logger:  logger.With("component", "tui"),
		manager: manager,
		screen:  menuScreen,
	}
}

// Run takes over the terminal until the player quits or ctx is cancelled.
func (that *UI) Run(ctx context.Context) error {
	if err := termbox.Init(); err != nil {
		return fmt.Errorf("failed to init terminal: %w", err)
	}
	defer termbox.Close()

	stop := context.AfterFunc(ctx, termbox.Interrupt)
	defer stop()

	for {
		if err := that.draw(); err != nil {
			return err
		}

		switch ev := termbox.PollEvent(); ev.Type {
		case termbox.EventInterrupt:
			that.logger.Info("interrupted")
			return nil
		case termbox.EventError:
			return fmt.Errorf("terminal event error: %w", ev.Err)
		case termbox.EventKey:
			quit, err := that.handleKey(ev)
			if err != nil {
				return err
			}

			if quit {
				return nil
			}
		}
	}
}

// handleKey applies one key press and reports whether the player asked to quit.
func (that *UI) handleKey(ev termbox.Event) (bool, error) {
	if ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC || ev.Ch == 'q' {
		return true, nil
	}

	switch that.screen {
	case menuScreen:
		return false, that.handleMenuKey(ev)
	case gameScreen:
		return false, that.handleGameKey(ev)
	case resultScreen:
		if ev.Ch == 'r' || ev.Key == termbox.KeyEnter {
			that.screen = menuScreen
			that.status = ""
		}
	}

	return false, nil
}

func (that *UI) handleMenuKey(ev termbox.Event) error {
	switch ev.Ch {
	case '1':
		return that.start(entity.LocalMode, entity.EmptyCell)
	case '2':
		return that.start(entity.WithBotMode, entity.PlayerX)
	case '3':
		return that.start(entity.WithBotMode, entity.PlayerO)
	default:
		return nil
	}
}

func (that *UI) handleGameKey(ev termbox.Event) error {
	switch ev.Key {
	case termbox.KeyArrowUp:
		that.cursor.move(-1, 0)
	case termbox.KeyArrowDown:
		that.cursor.move(1, 0)
	case termbox.KeyArrowLeft:
		that.cursor.move(0, -1)
	case termbox.KeyArrowRight:
		that.cursor.move(0, 1)
	case termbox.KeyEnter, termbox.KeySpace:
		return that.place(that.cursor.cell())
	}

	if ev.Ch >= '1' && ev.Ch <= '9' {
		cell := int(ev.Ch - '1')
		that.cursor = cursor{row: cell / 3, col: cell % 3}

		return that.place(cell)
	}

	return nil
}

func (that *UI) start(mode entity.GameMode, humanMark entity.Mark) error {
	game, err := that.manager.NewGame(mode, humanMark)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	that.game = game
	that.cursor = cursor{row: 1, col: 1}
	that.screen = gameScreen
	that.status = ""

	return that.advance()
}

func (that *UI) place(cell int) error {
	err := that.manager.MakeTurn(that.game, cell)
	if errors.Is(err, apperror.ErrInvalidMove) {
		that.status = "That cell is taken."
		return nil
	}

	if err != nil {
		return fmt.Errorf("turn failed: %w", err)
	}

	that.status = ""

	return that.advance()
}

// advance lets the bot answer and switches to the result screen once the game is over.
func (that *UI) advance() error {
	if that.game.IsBotTurn() {
		mark := that.game.Turn

		cell, err := that.manager.BotTurn(that.game)
		if err != nil {
			return fmt.Errorf("cpu turn failed: %w", err)
		}

		that.status = fmt.Sprintf("CPU placed %s on cell %d.", mark, cell+1)
	}

	if that.game.IsFinished() {
		that.screen = resultScreen

		if winner := that.game.Outcome.Winner(); winner != entity.EmptyCell {
			that.status = fmt.Sprintf("%s wins!", winner)
		} else {
			that.status = "Draw."
		}
	}

	return nil
}

func (that *UI) draw() error {
	const fg, bg = termbox.ColorDefault, termbox.ColorDefault

	if err := termbox.Clear(fg, bg); err != nil {
		return fmt.Errorf("failed to clear screen: %w", err)
	}

	drawText(boardLeft, 0, "=== Tic-Tac-Toe ===", termbox.AttrBold, bg)

	switch that.screen {
	case menuScreen:
		drawText(boardLeft, 2, "1) 2 players (local)", fg, bg)
		drawText(boardLeft, 3, "2) Play X against the CPU", fg, bg)
		drawText(boardLeft, 4, "3) Play O against the CPU", fg, bg)
		drawText(boardLeft, 5, "q) Quit", fg, bg)
	case gameScreen:
		that.drawBoard()
		drawText(boardLeft, boardTop+6, fmt.Sprintf("%s to move", that.game.Turn), fg, bg)
		drawText(boardLeft, boardTop+7, that.status, fg, bg)
		drawText(boardLeft, boardTop+9, "arrows: move  enter: place  1-9: cell  q: quit", fg, bg)
	case resultScreen:
		that.drawBoard()
		drawText(boardLeft, boardTop+6, that.status, termbox.AttrBold, bg)
		drawText(boardLeft, boardTop+9, "r: menu  q: quit", fg, bg)
	}

	if err := termbox.Flush(); err != nil {
		return fmt.Errorf("failed to flush screen: %w", err)
	}

	return nil
}

func (that *UI) drawBoard() {
	for row := range 3 {
		y := boardTop + row*2

		for col := range 3 {
			x := boardLeft + col*4
			cell := row*3 + col

			fg, bg := markColor(that.game.Board[cell]), termbox.ColorDefault
			if that.screen == gameScreen && that.cursor.cell() == cell {
				fg |= termbox.AttrReverse
			}

			drawText(x, y, " "+cellLabel(that.game.Board, cell)+" ", fg, bg)

			if col < 2 {
				termbox.SetCell(x+3, y, '|', termbox.ColorDefault, termbox.ColorDefault)
			}
		}

		if row < 2 {
			drawText(boardLeft, y+1, "---+---+---", termbox.ColorDefault, termbox.ColorDefault)
		}
	}
}

func cellLabel(board entity.Board, cell int) string {
	if board[cell] == entity.EmptyCell {
		return fmt.Sprint(cell + 1)
	}

	return string(board[cell])
}

func markColor(mark entity.Mark) termbox.Attribute {
	switch mark {
	case entity.PlayerX:
		return termbox.ColorRed
	case entity.PlayerO:
		return termbox.ColorCyan
	default:
		return termbox.ColorDefault
	}
}

func drawText(x, y int, text string, fg, bg termbox.Attribute) {
	for _, r := range text {
		termbox.SetCell(x, y, r, fg, bg)
		x += runewidth.RuneWidth(r)
	}
}
