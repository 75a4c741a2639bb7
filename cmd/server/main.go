// Command server runs the shard launcher API. It loads the APP_PROFILE
// configuration, wires the services with samber/do and serves until SIGINT
// or SIGTERM, then drains requests and waits for running JVMs.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"
	"golang.org/x/sync/errgroup"

	adapthttp "github.com/jsamuelsen11/shard-launcher-service/internal/adapters/http"
	"github.com/jsamuelsen11/shard-launcher-service/internal/app"
	"github.com/jsamuelsen11/shard-launcher-service/internal/platform/config"
	"github.com/jsamuelsen11/shard-launcher-service/internal/platform/logging"
)

const (
	drainTimeout   = 15 * time.Second
	jvmWaitTimeout = 15 * time.Second
	telemetryFlush = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "shard-launcher: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE must name a config profile, e.g. local or prod")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading %s config: %w", profile, err)
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otel, err := initTelemetry(ctx, &cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("starting telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), telemetryFlush)
		defer cancel()
		if err := otel.Shutdown(flushCtx); err != nil {
			logger.Error("flushing telemetry failed", slog.Any("error", err))
		}
	}()

	injector := do.New()
	if err := provide(injector, cfg, logger, otel.metrics); err != nil {
		return err
	}

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("wiring server: %w", err)
	}
	if err := registerHealthChecks(injector); err != nil {
		return err
	}

	launches := do.MustInvoke[*app.LaunchService](injector)
	if err := serve(ctx, server, launches, logger); err != nil {
		return err
	}

	logger.Info("shard launcher stopped")
	return nil
}

// serve runs the server until ctx is canceled or the listener fails, then
// drains HTTP and gives running JVMs jvmWaitTimeout to exit.
func serve(ctx context.Context, server *adapthttp.Server, launches *app.LaunchService, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(server.Start)
	g.Go(func() error {
		<-gctx.Done()
		if ctx.Err() != nil {
			logger.Info("shutdown requested", slog.String("cause", context.Cause(ctx).Error()))
		}

		drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), drainTimeout)
		defer cancel()
		return server.Shutdown(drainCtx)
	})

	err := g.Wait()
	waitForJVMs(launches, logger)
	return err
}

// waitForJVMs lets launch records settle so exit codes reach the log. JVMs
// that outlive the wait keep running detached from the service.
func waitForJVMs(launches *app.LaunchService, logger *slog.Logger) {
	done := make(chan struct{})
	go func() {
		launches.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(jvmWaitTimeout):
		logger.Warn("JVMs still running at shutdown", slog.Duration("waited", jvmWaitTimeout))
	}
}
