package main

import (
	"flag"
)

type cliConfig struct {
	Mode      string
	Expr      string
	SuitePath string
	Output    string
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.Mode, "mode", "eval", "Run mode: eval or check")
	flag.StringVar(&cfg.Expr, "expr", "", "Expression to evaluate (eval mode)")
	flag.StringVar(&cfg.SuitePath, "suite", "configs/suites/basics.yaml", "Path to expression suite YAML (check mode)")
	flag.StringVar(&cfg.Output, "output", "", "Output path for JSON results")

	flag.Parse()
	return cfg
}
