// Package main Truth Table API
// @title Truth Table API
// @version 1.0
// @description Compiles propositional logic expressions and builds their truth tables, PDNF and PCNF
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/DjordjeVuckovic/truth-table/internal/api/router"
	"github.com/DjordjeVuckovic/truth-table/internal/api/server"
	"github.com/DjordjeVuckovic/truth-table/internal/storage/factory"
	"github.com/DjordjeVuckovic/truth-table/pkg/config/env"
	"github.com/labstack/echo/v4"
)

const StorageStartupTimeout = 30 * time.Second

func main() {
	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	slog.SetLogLoggerLevel(env.LogLevel())

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load server config", "error", err)
		os.Exit(1)
	}

	// backend is created before the server so its health checker can be wired in
	ctx, cancel := context.WithTimeout(context.Background(), StorageStartupTimeout)
	backend, err := factory.NewStore(ctx, cfg.StorageConfig)
	cancel()
	if err != nil {
		slog.Error("Failed to create storage", "type", cfg.StorageConfig.Type, "error", err)
		os.Exit(1)
	}
	defer backend.Close()

	s := server.New(sCfg, backend.HealthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Truth Table API is running")
	})

	tableRouter := router.NewTruthTableRouter(s.Echo, backend.Store, router.WithMaxVariables(cfg.MaxVariables))
	tableRouter.Bind()

	slog.Info("Starting Truth Table API", "port", sCfg.Port, "storage", cfg.StorageConfig.Type, "maxVariables", cfg.MaxVariables)

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	if err := s.Start(); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}
