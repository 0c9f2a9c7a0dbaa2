package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/olehkaliuzhnyi/wallet-identity/internal/cli"
	"github.com/olehkaliuzhnyi/wallet-identity/internal/config"
	"github.com/olehkaliuzhnyi/wallet-identity/internal/logging"
	"github.com/olehkaliuzhnyi/wallet-identity/internal/metrics"
)

func main() {
	cfg := config.FromEnv()

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	m := metrics.New(prometheus.DefaultRegisterer, cfg.MetricsNamespace)

	if err := cli.NewRootCommand(cfg, logger, m).Execute(); err != nil {
		_ = logger.Sync()
		os.Exit(1)
	}
}
