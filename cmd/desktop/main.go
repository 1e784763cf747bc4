package main

import (
	"github.com/tomz197/spacedodge/internal/config"
	"github.com/tomz197/spacedodge/internal/game"
	"github.com/tomz197/spacedodge/internal/host/desktop"
	"github.com/tomz197/spacedodge/internal/logging"
)

type windowConfig struct {
	Title    string `env:"SPACEDODGE_WINDOW_TITLE" envDefault:"Space Dodge"`
	Scale    int    `env:"SPACEDODGE_WINDOW_SCALE" envDefault:"1"`
	FPS      int    `env:"SPACEDODGE_FPS"          envDefault:"60"`
	LogLevel string `env:"LOG_LEVEL"               envDefault:"info"`
}

func main() {
	var wc windowConfig
	if err := config.ParseEnv(&wc); err != nil {
		logging.New("desktop", "error").Fatal("load config", "err", err)
	}
	logger := logging.New("desktop", wc.LogLevel)

	cfg, err := game.LoadConfig()
	if err != nil {
		logger.Fatal("load game config", "err", err)
	}

	opts := desktop.Options{
		Title:  wc.Title,
		Scale:  wc.Scale,
		FPS:    wc.FPS,
		Logger: logger,
	}
	if err := desktop.Run(game.New(cfg), opts); err != nil {
		logger.Fatal("desktop error", "err", err)
	}
}
