package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/DjordjeVuckovic/truth-table/internal/ingest"
	"github.com/DjordjeVuckovic/truth-table/internal/storage/factory"
	"github.com/DjordjeVuckovic/truth-table/pkg/config/env"
)

func main() {
	cfg, err := NewAppConfig().Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	slog.SetLogLoggerLevel(env.LogLevel())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dataFile, err := os.Open(cfg.DatasetPath)
	if err != nil {
		slog.Error("Failed to open dataset", "path", cfg.DatasetPath, "error", err)
		os.Exit(1)
	}
	defer dataFile.Close()

	slog.Info("Creating pipeline", "storageType", cfg.StorageConfig.Type, "dataset", cfg.DatasetPath)

	backend, err := factory.NewStore(ctx, cfg.StorageConfig)
	if err != nil {
		slog.Error("Failed to create storage", "error", err)
		os.Exit(1)
	}
	defer backend.Close()

	c := ingest.NewEvaluationCollector(
		ingest.NewCSVReader(dataFile),
		ingest.WithColumn(cfg.ExpressionColumn),
		ingest.WithWorkers(cfg.Workers),
		ingest.WithMaxVariables(cfg.MaxVariables),
	)

	stats, err := ingest.NewPipeline(c, backend.Store).Run(ctx)
	if err != nil {
		slog.Error("Failed to run pipeline", "saved", stats.Saved, "error", err)
		backend.Close()
		os.Exit(1)
	}
	if stats.Failed > 0 {
		slog.Warn("Some expressions were skipped", "failed", stats.Failed)
	}
}
