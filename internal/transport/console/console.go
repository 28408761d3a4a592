package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

var errQuit = errors.New("player left the game")

type gameManager interface {
	NewGame(mode entity.GameMode, humanMark entity.Mark) (*entity.Game, error)
	MakeTurn(game *entity.Game, cell int) error
	BotTurn(game *entity.Game) (int, error)
}

// Console plays games over a line-oriented terminal.
type Console struct {
	logger  *slog.Logger
	manager gameManager
	in      io.Reader
	out     io.Writer

	lines <-chan string
}

func New(logger *slog.Logger, manager gameManager, in io.Reader, out io.Writer) *Console {
	return &Console{
		logger:  logger.With("component", "console"),
		manager: manager,
		in:      in,
		out:     out,
	}
}

// Run shows the main menu and plays games until the player leaves, the input ends or ctx is
// cancelled. Leaving is not an error.
func (that *Console) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	that.lines = readLines(ctx, that.in)

	err := that.menu(ctx)
	switch {
	case err == nil, errors.Is(err, errQuit):
		return nil
	case errors.Is(err, io.EOF):
		that.println("\nEnd of input. Bye.")
		return nil
	case errors.Is(err, context.Canceled):
		that.println("\nInterrupted. Bye.")
		return nil
	default:
		return err
	}
}

func (that *Console) menu(ctx context.Context) error {
	for {
		that.println("=== Tic-Tac-Toe ===")
		that.println("Choose a mode:")
		that.println("  1) 2 players (local)")
		that.println("  2) Play against the CPU")
		that.println("  q) Quit")

		played, err := that.chooseMode(ctx)
		if err != nil || !played {
			return err
		}

		again, err := that.askPlayAgain(ctx)
		if err != nil {
			return err
		}

		if !again {
			that.println("Thanks for playing.")
			return nil
		}
	}
}

func (that *Console) chooseMode(ctx context.Context) (bool, error) {
	for {
		that.print("Option: ")

		option, err := that.readLine(ctx)
		if err != nil {
			return false, err
		}

		switch {
		case option == "1":
			return true, that.playLocal(ctx)
		case option == "2":
			return true, that.playWithBot(ctx)
		case isQuit(option):
			that.println("Goodbye.")
			return false, nil
		default:
			that.println("Invalid option. Type 1, 2 or q.")
		}
	}
}

func (that *Console) askPlayAgain(ctx context.Context) (bool, error) {
	for {
		that.print("Play again? (y/n): ")

		answer, err := that.readLine(ctx)
		if err != nil {
			return false, err
		}

		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			that.println("Answer 'y' or 'n'.")
		}
	}
}

func (that *Console) playLocal(ctx context.Context) error {
	game, err := that.manager.NewGame(entity.LocalMode, entity.EmptyCell)
	if err != nil {
		return fmt.Errorf("failed to start local game: %w", err)
	}

	return that.play(ctx, game)
}

func (that *Console) playWithBot(ctx context.Context) error {
	humanMark, err := that.chooseMark(ctx)
	if err != nil {
		return err
	}

	game, err := that.manager.NewGame(entity.WithBotMode, humanMark)
	if err != nil {
		return fmt.Errorf("failed to start game against the CPU: %w", err)
	}

	return that.play(ctx, game)
}

func (that *Console) chooseMark(ctx context.Context) (entity.Mark, error) {
	for {
		that.print("Playing against the CPU. Choose your mark: X (moves first) or O: ")

		choice, err := that.readLine(ctx)
		if err != nil {
			return entity.EmptyCell, err
		}

		if isQuit(choice) {
			that.println("Leaving the game.")
			return entity.EmptyCell, errQuit
		}

		mark := entity.Mark(strings.ToUpper(choice))
		if mark.IsPlayer() {
			return mark, nil
		}

		that.println("Invalid input. Type 'X' or 'O'.")
	}
}

func (that *Console) play(ctx context.Context, game *entity.Game) error {
	for game.IsOngoing() {
		that.print(RenderBoard(game.Board))

		if game.IsBotTurn() {
			mark := game.Turn
			that.println("CPU's turn...")

			cell, err := that.manager.BotTurn(game)
			if err != nil {
				return fmt.Errorf("cpu turn failed: %w", err)
			}

			that.printf("CPU places %s on cell %d.\n", mark, cell+1)
			continue
		}

		if err := that.humanTurn(ctx, game); err != nil {
			return err
		}
	}

	that.print(RenderBoard(game.Board))

	if winner := game.Outcome.Winner(); winner != entity.EmptyCell {
		that.printf("%s wins!\n", winner)
	} else {
		that.println("Draw.")
	}

	return nil
}

func (that *Console) humanTurn(ctx context.Context, game *entity.Game) error {
	for {
		that.printf("%s's turn. Enter a cell number (1-9): ", game.Turn)

		input, err := that.readLine(ctx)
		if err != nil {
			return err
		}

		if isQuit(input) {
			that.println("Leaving the game.")
			return errQuit
		}

		number, err := strconv.Atoi(input)
		if err != nil {
			that.println("Invalid input. Enter a number between 1 and 9, or 'q' to quit.")
			continue
		}

		err = that.manager.MakeTurn(game, number-1)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, apperror.ErrInvalidCell):
			that.println("Invalid number. It must be between 1 and 9.")
		case errors.Is(err, apperror.ErrCellOccupied):
			that.println("That cell is taken. Choose another one.")
		default:
			return fmt.Errorf("turn failed: %w", err)
		}
	}
}

// RenderBoard draws the board as three rows. Empty cells show their 1-based number.
func RenderBoard(board entity.Board) string {
	cell := func(i int) string {
		if board[i] == entity.EmptyCell {
			return strconv.Itoa(i + 1)
		}
		return string(board[i])
	}

	rowSeparator := strings.Repeat("-", 11)

	var sb strings.Builder
	for row := range 3 {
		if row > 0 {
			sb.WriteString(rowSeparator + "\n")
		}
		fmt.Fprintf(&sb, " %s | %s | %s \n", cell(row*3), cell(row*3+1), cell(row*3+2))
	}

	return sb.String()
}

func isQuit(input string) bool {
	switch strings.ToLower(input) {
	case "q", "quit", "exit":
		return true
	default:
		return false
	}
}

// readLines feeds input lines to a channel so that a blocked read can be abandoned when ctx is
// cancelled. The channel is closed at end of input.
func readLines(ctx context.Context, in io.Reader) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	return lines
}

func (that *Console) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-that.lines:
		if !ok {
			return "", io.EOF
		}
		return strings.TrimSpace(line), nil
	}
}

func (that *Console) print(text string) {
	if _, err := io.WriteString(that.out, text); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}

func (that *Console) println(text string) {
	that.print(text + "\n")
}

func (that *Console) printf(format string, args ...any) {
	that.print(fmt.Sprintf(format, args...))
}
