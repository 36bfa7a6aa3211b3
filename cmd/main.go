package main

import (
	"context"
	"errors"
	"os"

	"github.com/desertthunder/vibelist/internal/services"
	"github.com/desertthunder/vibelist/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	svc := services.NewVibeListService(config.Backend.BaseURL, nil)

	runner := NewRunner(RunnerOpts{
		Config:  config,
		Service: svc,
		Logger:  logger,
	})

	app := &cli.Command{
		Name:     "vibelist",
		Usage:    "Generate Spotify playlists from a vibe",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, shared.ErrNotConnected) {
			logger.Error("Spotify account not connected, run 'vibelist connect' first")
			os.Exit(1)
		}
		logger.Fatalf("application error: %v", err)
	}
}
