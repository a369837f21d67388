package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/wingfantasy/wingfantasy/internal/app"
	"github.com/wingfantasy/wingfantasy/internal/config"
	"github.com/wingfantasy/wingfantasy/internal/observability"
	"github.com/wingfantasy/wingfantasy/internal/platform/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, drainShutdown, err := observability.InitLogDrain(cfg, nil)
	if err != nil {
		panic(err)
	}
	logging.SetDefault(logger)

	uptraceShutdown, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		os.Exit(1)
	}

	pyroscopeStop, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		logger.Error("init pyroscope", "error", err)
		os.Exit(1)
	}

	pprofSrv, err := observability.StartPprofServer(cfg, logger)
	if err != nil {
		logger.Error("start pprof server", "error", err)
		os.Exit(1)
	}

	srv, err := app.NewHTTPServer(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		os.Exit(1)
	}

	go func() {
		logger.Info("http server starting", "addr", cfg.HTTPAddr, "env", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
	logger.Info("http server stopped")

	if err := observability.StopPprofServer(pprofSrv, logger, cfg.ShutdownTimeout); err != nil {
		logger.Error("stop pprof server", "error", err)
	}
	if err := pyroscopeStop(); err != nil {
		logger.Error("stop pyroscope", "error", err)
	}
	if err := uptraceShutdown(shutdownCtx); err != nil {
		logger.Error("shutdown uptrace", "error", err)
	}
	if err := drainShutdown(shutdownCtx); err != nil {
		logger.Error("shutdown log drain", "error", err)
	}
	_ = logger.Sync()
}
