package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/truth-table/internal/report"
	"github.com/DjordjeVuckovic/truth-table/internal/suite"
	"github.com/DjordjeVuckovic/truth-table/internal/truthtable"
	"github.com/DjordjeVuckovic/truth-table/pkg/config/env"
)

func main() {
	cfg := parseFlags()
	slog.SetLogLoggerLevel(env.LogLevel())

	switch cfg.Mode {
	case "eval":
		runEval(cfg)
	case "check":
		runCheck(cfg)
	default:
		slog.Error("Unknown mode", "mode", cfg.Mode)
		os.Exit(1)
	}
}

func runEval(cfg cliConfig) {
	if cfg.Expr == "" {
		slog.Error("No expression given, use -expr")
		os.Exit(1)
	}

	expr, table, err := truthtable.Evaluate(cfg.Expr)
	if err != nil {
		slog.Error("Failed to evaluate expression", "expression", cfg.Expr, "error", err)
		os.Exit(1)
	}

	report.WriteTable(cfg.Expr, expr, table, os.Stdout)

	if cfg.Output != "" {
		if err := report.WriteJSON(table, cfg.Output); err != nil {
			slog.Error("Failed to write JSON report", "error", err)
			os.Exit(1)
		}
		slog.Info("Table written", "path", cfg.Output)
	}
}

func runCheck(cfg cliConfig) {
	s, err := suite.LoadFromFile(cfg.SuitePath)
	if err != nil {
		slog.Error("Failed to load suite", "path", cfg.SuitePath, "error", err)
		os.Exit(1)
	}

	slog.Info("Running suite", "name", s.Name, "cases", len(s.Cases))
	result := suite.Run(s)

	report.WriteSuite(result, os.Stdout)

	if cfg.Output != "" {
		if err := report.WriteJSON(result, cfg.Output); err != nil {
			slog.Error("Failed to write JSON report", "error", err)
			os.Exit(1)
		}
		slog.Info("Suite results written", "path", cfg.Output)
	}

	if result.Failed > 0 {
		os.Exit(1)
	}
}
