package application

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/service"
	"github.com/rocketscienceinc/tictactoe-cli/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-cli/internal/transport/tui"
	"github.com/rocketscienceinc/tictactoe-cli/internal/usecase"
)

type frontend interface {
	Run(ctx context.Context) error
}

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	botService, err := service.NewBotService(conf.Bot.Difficulty, newRand(conf.Bot.Seed))
	if err != nil {
		return fmt.Errorf("could not create bot: %w", err)
	}

	gameManager := usecase.NewGameManager(logger, botService)

	var ui frontend
	switch conf.UI {
	case config.UITUI:
		ui = tui.New(logger, gameManager)
	default:
		ui = console.New(logger, gameManager, os.Stdin, os.Stdout)
	}

	log.Info("Starting game", "ui", conf.UI, "difficulty", conf.Bot.Difficulty)

	if err = ui.Run(ctx); err != nil {
		return fmt.Errorf("%s front-end error: %w", conf.UI, err)
	}

	return nil
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}

	return rand.New(rand.NewPCG(seed, seed)) //nolint: gosec // game moves, not secrets
}
