package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/HerbHall/opticode/internal/inventory"
	"github.com/HerbHall/opticode/internal/metrics"
	"github.com/HerbHall/opticode/internal/output"
)

func (a *app) runInventory(args []string) int {
	fs := newFlagSet("inventory")
	fs.Int("concurrency", inventory.DefaultConcurrency, "ports decoded in parallel")
	fs.String("metrics-file", "", "write Prometheus metrics to this textfile-collector path")

	env, code := a.parse(fs, args)
	if env == nil {
		return code
	}
	defer func() { _ = env.logger.Sync() }()
	logger := env.logger.Named("inventory")

	if fs.NArg() != 1 {
		logger.Error("expected exactly one inventory file", zap.Strings("args", fs.Args()))
		return exitUsage
	}
	path := fs.Arg(0)

	inv, err := inventory.Load(path)
	if err != nil {
		logger.Error("failed to load inventory", zap.String("path", path), zap.Error(err))
		return exitFailure
	}

	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg)
	if err != nil {
		logger.Error("failed to create metrics", zap.Error(err))
		return exitFailure
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	resolver := inventory.NewResolver(logger, m, env.settings.Inventory.Concurrency)
	res, err := resolver.Resolve(ctx, inv)
	if err != nil {
		logger.Error("inventory decode aborted", zap.Error(err))
		return exitFailure
	}

	if err := output.Encode(a.stdout, env.format, res); err != nil {
		logger.Error("failed to write output", zap.Error(err))
		return exitFailure
	}

	if textfile := env.settings.Metrics.Textfile; textfile != "" {
		if err := metrics.WriteTextfile(textfile, reg); err != nil {
			logger.Error("failed to write metrics", zap.Error(err))
			return exitFailure
		}
		logger.Debug("metrics written", zap.String("path", textfile))
	}

	if res.Malformed > 0 {
		return exitFailure
	}
	return exitOK
}
