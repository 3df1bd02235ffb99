package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"dashboard/internal/configuration"
	"dashboard/internal/core"
	"dashboard/internal/database"

	"go.uber.org/zap"
)

func main() {
	zap.ReplaceGlobals(zap.Must(zap.NewProduction()))

	config := configuration.Read()
	core.NewLogger(config.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	location, err := time.LoadLocation(config.App.ReportingTimezone)
	if err != nil {
		zap.L().Fatal("Invalid reporting timezone", zap.Error(err))
	}

	shutdownTracing, err := core.NewTracerProvider(ctx, config.Tracing)
	if err != nil {
		zap.L().Fatal("Failed to initialize tracing", zap.Error(err))
	}
	defer func() { _ = shutdownTracing(context.Background()) }()

	if profiler := core.StartProfiler(config.Profiling); profiler != nil {
		defer func() { _ = profiler.Stop() }()
	}

	stores := database.InitStores(config.Database)
	defer stores.Close()

	cache := core.NewCache(config.Cache)
	if cache != nil {
		defer func() { _ = cache.Close() }()
	}

	core.StartHTTPServer(ctx, config, stores, cache, location)
}
