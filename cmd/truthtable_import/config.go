package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/truth-table/internal/ingest"
	"github.com/DjordjeVuckovic/truth-table/internal/storage/factory"
	"github.com/DjordjeVuckovic/truth-table/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type ImportConfig struct {
	DatasetPath      string
	ExpressionColumn string
	Workers          int
	MaxVariables     int
	factory.StorageConfig
}

func (as *AppConfig) Load() (*ImportConfig, error) {
	if err := env.LoadDotEnv(as.ENV, "cmd/truthtable_import/.env"); err != nil {
		slog.Info("Skipping .env environment variables...", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		return nil, err
	}

	dsPath := os.Getenv("DATASET_PATH")
	if dsPath == "" {
		return nil, fmt.Errorf("DATASET_PATH environment variable is not set")
	}

	column := os.Getenv("EXPRESSION_COLUMN")
	if column == "" {
		column = ingest.DefaultExpressionColumn
	}

	return &ImportConfig{
		DatasetPath:      dsPath,
		ExpressionColumn: column,
		Workers:          env.IntOr("IMPORT_WORKERS", ingest.DefaultWorkers),
		MaxVariables:     env.IntOr("MAX_VARIABLES", ingest.DefaultMaxVariables),
		StorageConfig:    *storageCfg,
	}, nil
}
