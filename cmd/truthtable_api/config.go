package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/truth-table/internal/api/router"
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

type TruthTableAPIConfig struct {
	StorageConfig factory.StorageConfig
	MaxVariables  int
}

func (as *AppConfig) Load() (*TruthTableAPIConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/truthtable_api/.env")
	if err != nil {
		slog.Info("Failed to load .env, continuing with existing environment variables", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	return &TruthTableAPIConfig{
		StorageConfig: *storageCfg,
		MaxVariables:  env.IntOr("MAX_VARIABLES", router.DefaultMaxVariables),
	}, nil
}
