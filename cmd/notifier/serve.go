package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/logger"
	"github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/metrics"
	"github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/notify"
	"github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/platform/validation"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the ops server and, when enabled, the job scheduler",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(parent context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := logger.New(cfg.AppEnv)
	log.Info().Str("config", cfg.String()).Msg("starting notifier")

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := openPool(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()
	rc := openRedis(cfg)
	if rc != nil {
		defer func() { _ = rc.Close() }()
	}

	mod, err := notify.New(pool, rc, cfg)
	if err != nil {
		return err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(metrics.HTTPMiddleware())
	e.Validator = validation.New()
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	mod.Register(e)

	if cfg.SchedulerEnabled {
		sched, err := mod.Scheduler(log)
		if err != nil {
			return err
		}
		sched.Start()
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()
			if err := sched.Stop(sctx); err != nil {
				log.Warn().Err(err).Msg("scheduler did not drain in time")
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.AppAddr).Msg("ops server listening")
		if err := e.Start(cfg.AppAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		return err
	}

	sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.Shutdown(sctx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
	log.Info().Msg("notifier stopped")
	return nil
}
