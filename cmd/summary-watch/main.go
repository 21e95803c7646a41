package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog"

	"clinician-hours-summary/internal/config"
	"clinician-hours-summary/internal/watcher"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}

	inputPath, err := filepath.Abs(cfg.InputPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("resolve input path")
	}
	if _, err := os.Stat(inputPath); err != nil {
		logger.Fatal().Str("path", inputPath).Msg("input file not found; nothing to watch")
	}

	runner := &watcher.Runner{
		Command: cfg.PipelineCommand,
		Timeout: cfg.RunTimeout,
	}

	ctx := context.Background()
	w := watcher.New(inputPath, cfg.Debounce, func() {
		logger.Info().Str("file", filepath.Base(inputPath)).Msg("detected change, regenerating summary")
		result := runner.Run(ctx)
		switch {
		case result.TimedOut:
			logger.Error().Str("run_id", result.ID.String()).Dur("duration", result.Duration).
				Str("output", result.Output).Msg("pipeline run timed out")
		case result.Err != nil:
			logger.Error().Err(result.Err).Str("run_id", result.ID.String()).Dur("duration", result.Duration).
				Str("output", result.Output).Msg("pipeline run failed")
		default:
			logger.Info().Str("run_id", result.ID.String()).Dur("duration", result.Duration).
				Msg("summary regenerated")
		}
	})

	if err := w.Start(); err != nil {
		logger.Fatal().Err(err).Msg("start watcher")
	}
	logger.Info().Str("path", inputPath).Msg("watching for changes")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("stopping file watcher")
	w.Stop()
}
