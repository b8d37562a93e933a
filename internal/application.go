package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
)

// RunApp - wires the console game together and blocks until it ends.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	game := console.NewGame(logger, os.Stdin, os.Stdout)

	log.Info("starting game", "log-level", conf.LogLevel)

	if err := game.Run(context.Background()); err != nil {
		return fmt.Errorf("game loop failed: %w", err)
	}

	return nil
}
