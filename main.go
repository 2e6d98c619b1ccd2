package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"power4/config"
	"power4/engine"
	"power4/game"
	"power4/stats"
	"power4/terminal"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		var exitErr *config.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "power4: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, exit, err := config.Parse(args, stderr)
	if err != nil || exit {
		return err
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	theme, err := terminal.ThemeFromNames(cfg.PlayerOneColor, cfg.PlayerTwoColor)
	if err != nil {
		return &config.ExitError{Code: 2, Message: err.Error()}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	term, err := terminal.New(screen, theme)
	if err != nil {
		return err
	}

	collector := stats.NewCollector()
	local := engine.NewLocal(game.New(), term, term,
		engine.WithTickInterval(cfg.TickInterval),
		engine.WithStats(collector),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	term.Start()
	err = local.Run(ctx)
	term.Close()
	if err != nil {
		return err
	}

	score := collector.Scoreboard()
	log.Info().Msgf("session over: %d games, %d draws", score.Games, score.Draws)

	if cfg.Summary {
		return stats.WriteGameRecords(stdout, collector.Games())
	}
	return nil
}

// setupLogging points the global logger at the configured file. Logs are
// discarded without one since the screen belongs to the game.
func setupLogging(cfg *config.Config) (func(), error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	zerolog.SetGlobalLevel(level)

	if cfg.LogFile == "" {
		log.Logger = zerolog.New(io.Discard)
		return func() {}, nil
	}

	file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.Logger = zerolog.New(file).With().Timestamp().Logger()
	return func() { file.Close() }, nil
}
