package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/tomz197/spacedodge/internal/config"
	"github.com/tomz197/spacedodge/internal/draw"
	"github.com/tomz197/spacedodge/internal/game"
	"github.com/tomz197/spacedodge/internal/input"
	"github.com/tomz197/spacedodge/internal/logging"
	"github.com/tomz197/spacedodge/internal/loop"
)

type terminalConfig struct {
	KeyHold  time.Duration `env:"SPACEDODGE_KEY_HOLD" envDefault:"120ms"`
	LogLevel string        `env:"LOG_LEVEL"           envDefault:"warn"`
}

func main() {
	var tc terminalConfig
	if err := config.ParseEnv(&tc); err != nil {
		logging.New("game", "error").Fatal("load config", "err", err)
	}
	logger := logging.New("game", tc.LogLevel)

	cfg, err := game.LoadConfig()
	if err != nil {
		logger.Fatal("load game config", "err", err)
	}
	opts, err := loop.LoadOptions()
	if err != nil {
		logger.Fatal("load loop options", "err", err)
	}
	opts.Logger = logger

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		logger.Fatal("failed to enable raw mode", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	screen := draw.NewTerminal(os.Stdout, nil, cfg.Width, cfg.Height)
	screen.Open()

	runErr := loop.Run(ctx, game.New(cfg), input.StartStream(os.Stdin, tc.KeyHold), screen, loop.NewFrameTicker(opts.FPS), opts)

	screen.Close()
	stop()
	_ = term.Restore(fd, oldState)

	if runErr != nil && !errors.Is(runErr, loop.ErrIdle) {
		logger.Error("game error", "err", runErr)
		os.Exit(1)
	}
}
