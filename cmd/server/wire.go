package main

import (
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/shard-launcher-service/internal/adapters/http"
	"github.com/jsamuelsen11/shard-launcher-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/shard-launcher-service/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/shard-launcher-service/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/shard-launcher-service/internal/adapters/native"
	"github.com/jsamuelsen11/shard-launcher-service/internal/adapters/storage/fsversions"
	"github.com/jsamuelsen11/shard-launcher-service/internal/app"
	"github.com/jsamuelsen11/shard-launcher-service/internal/domain/filename"
	"github.com/jsamuelsen11/shard-launcher-service/internal/domain/launch"
	"github.com/jsamuelsen11/shard-launcher-service/internal/platform/config"
	"github.com/jsamuelsen11/shard-launcher-service/internal/platform/health"
	"github.com/jsamuelsen11/shard-launcher-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/shard-launcher-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/shard-launcher-service/internal/ports"
)

// provide registers the dependency graph. Nothing is built until the
// server is invoked. metrics is nil when telemetry is disabled.
func provide(i *do.RootScope, cfg *config.Config, logger *slog.Logger, metrics *telemetry.Metrics) error {
	rules, err := filename.RulesFor(cfg.Filename.Platform)
	if err != nil {
		return fmt.Errorf("filename rules: %w", err)
	}

	do.ProvideValue(i, cfg)
	do.ProvideValue(i, logger)
	do.ProvideValue(i, metrics)

	provideAdapters(i, cfg, logger, metrics)
	provideServices(i, cfg, rules, logger, metrics)
	provideHTTP(i, cfg, logger, metrics)
	return nil
}

// provideAdapters covers the outbound side: manifest host, versions
// directory and the Java runtime.
func provideAdapters(i *do.RootScope, cfg *config.Config, logger *slog.Logger, metrics *telemetry.Metrics) {
	do.Provide(i, func(do.Injector) (*acl.ManifestClient, error) {
		client := httpclient.New(&cfg.Client, "manifest-api", metrics, logger)
		return acl.NewManifestClient(client, logger), nil
	})
	do.Provide(i, func(i do.Injector) (ports.ManifestClient, error) {
		return do.Invoke[*acl.ManifestClient](i)
	})

	do.Provide(i, func(do.Injector) (ports.VersionRepository, error) {
		return fsversions.New(osfs.New(cfg.Launcher.VersionsDir), osfs.New(cfg.Launcher.GameDir)), nil
	})

	do.Provide(i, func(do.Injector) (*native.Runtime, error) {
		// Without a default runtime the probe reports the native boundary
		// as unavailable rather than failing startup.
		rt, _ := cfg.Launcher.Runtime(cfg.Launcher.DefaultRuntime)
		probe := launch.Runtime{Name: rt.Name, Home: rt.Home, JavaVersion: rt.JavaVersion}
		return native.New(probe, cfg.Launcher.ProbeTimeout, os.Stdout, logger), nil
	})
	do.Provide(i, func(i do.Injector) (ports.NativeRuntime, error) {
		return do.Invoke[*native.Runtime](i)
	})

	do.Provide(i, func(do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})
}

func provideServices(i *do.RootScope, cfg *config.Config, rules filename.Rules, logger *slog.Logger, metrics *telemetry.Metrics) {
	do.Provide(i, func(do.Injector) (ports.FilenameService, error) {
		return app.NewFilenameService(rules, metrics, logger), nil
	})

	do.Provide(i, func(i do.Injector) (ports.VersionService, error) {
		repo, err := do.Invoke[ports.VersionRepository](i)
		if err != nil {
			return nil, err
		}
		return app.NewVersionService(repo, rules, cfg.Launcher.ListWorkers, logger), nil
	})

	do.Provide(i, func(i do.Injector) (ports.ManifestService, error) {
		client, err := do.Invoke[ports.ManifestClient](i)
		if err != nil {
			return nil, err
		}
		return app.NewManifestService(client, logger), nil
	})

	do.Provide(i, func(i do.Injector) (*app.LaunchService, error) {
		rt := do.MustInvoke[ports.NativeRuntime](i)
		repo := do.MustInvoke[ports.VersionRepository](i)
		home := osfs.New(cfg.Launcher.UserHome)
		return app.NewLaunchService(rt, repo, home, launchSettings(&cfg.Launcher), metrics, logger), nil
	})
	do.Provide(i, func(i do.Injector) (ports.LaunchService, error) {
		return do.Invoke[*app.LaunchService](i)
	})
}

func provideHTTP(i *do.RootScope, cfg *config.Config, logger *slog.Logger, metrics *telemetry.Metrics) {
	do.Provide(i, func(i do.Injector) (nethttp.Handler, error) {
		h := adapthttp.Handlers{
			Filename: handlers.NewFilenameHandler(do.MustInvoke[ports.FilenameService](i)),
			Version:  handlers.NewVersionHandler(do.MustInvoke[ports.VersionService](i)),
			Manifest: handlers.NewManifestHandler(do.MustInvoke[ports.ManifestService](i)),
			Launch:   handlers.NewLaunchHandler(do.MustInvoke[ports.LaunchService](i)),
			Health:   handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
		}
		return adapthttp.NewRouter(h,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(i, func(i do.Injector) (*adapthttp.Server, error) {
		handler, err := do.Invoke[nethttp.Handler](i)
		if err != nil {
			return nil, err
		}
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

// registerHealthChecks feeds the readiness probe once the graph is built.
func registerHealthChecks(i *do.RootScope) error {
	registry, err := do.Invoke[ports.HealthRegistry](i)
	if err != nil {
		return fmt.Errorf("health registry: %w", err)
	}
	manifest, err := do.Invoke[*acl.ManifestClient](i)
	if err != nil {
		return fmt.Errorf("manifest client: %w", err)
	}
	runtime, err := do.Invoke[*native.Runtime](i)
	if err != nil {
		return fmt.Errorf("native runtime: %w", err)
	}

	registry.Register(manifest)
	registry.Register(runtime)
	return nil
}

func launchSettings(cfg *config.LauncherConfig) app.LaunchSettings {
	runtimes := make([]launch.Runtime, 0, len(cfg.Runtimes))
	for _, rt := range cfg.Runtimes {
		runtimes = append(runtimes, launch.Runtime{Name: rt.Name, Home: rt.Home, JavaVersion: rt.JavaVersion})
	}
	return app.LaunchSettings{
		GameDir:        cfg.GameDir,
		VersionsDir:    cfg.VersionsDir,
		ComponentsDir:  cfg.ComponentsDir,
		DefaultRuntime: cfg.DefaultRuntime,
		Runtimes:       runtimes,
		JVMArgs:        cfg.JVMArgs,
		WindowWidth:    cfg.WindowWidth,
		WindowHeight:   cfg.WindowHeight,
	}
}
