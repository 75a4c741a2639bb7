package config_test

import (
	"testing"
	"time"

	"github.com/jsamuelsen11/shard-launcher-service/internal/platform/config"
)

// Load reads ./configs, so these tests run from the module root and cannot
// be parallel.
const moduleRoot = "../../.."

func TestLoad_Profiles(t *testing.T) {
	tests := []struct {
		profile string
		check   func(t *testing.T, cfg *config.Config)
	}{
		{
			profile: "local",
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Log.Level != "debug" || cfg.Log.Format != "text" {
					t.Errorf("Log = %+v, want debug/text", cfg.Log)
				}
				if cfg.Telemetry.Enabled {
					t.Error("Telemetry.Enabled = true, want false")
				}
				if cfg.Launcher.GameDir != "data/.minecraft" {
					t.Errorf("Launcher.GameDir = %q, want the base value", cfg.Launcher.GameDir)
				}
			},
		},
		{
			profile: "prod",
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Log.Format != "json" {
					t.Errorf("Log.Format = %q, want json", cfg.Log.Format)
				}
				if !cfg.Telemetry.Enabled || cfg.Telemetry.Exporter != "otlp" || cfg.Telemetry.Endpoint == "" {
					t.Errorf("Telemetry = %+v, want otlp with an endpoint", cfg.Telemetry)
				}
				if cfg.Launcher.VersionsDir != "/var/lib/shard/.minecraft/versions" {
					t.Errorf("Launcher.VersionsDir = %q", cfg.Launcher.VersionsDir)
				}
				if rt, ok := cfg.Launcher.Runtime("jre-17"); !ok || rt.Home != "/opt/java/jre-17" {
					t.Errorf("Runtime(jre-17) = %+v, %v", rt, ok)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.profile, func(t *testing.T) {
			t.Chdir(moduleRoot)

			cfg, err := config.Load(tt.profile)
			if err != nil {
				t.Fatalf("Load(%q) error = %v", tt.profile, err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoad_BaseLayer(t *testing.T) {
	t.Chdir(moduleRoot)

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Host != "0.0.0.0" || cfg.Server.Port != 8080 {
		t.Errorf("Server = %s:%d, want 0.0.0.0:8080", cfg.Server.Host, cfg.Server.Port)
	}
	if cfg.Client.BaseURL != "https://piston-meta.mojang.com" {
		t.Errorf("Client.BaseURL = %q", cfg.Client.BaseURL)
	}
	if cfg.Client.Retry.MaxAttempts != 3 || cfg.Client.CircuitBreaker.MaxFailures != 5 {
		t.Errorf("Client = %+v, want 3 attempts and 5 breaker failures", cfg.Client)
	}
	if cfg.Client.RateLimit.BurstSize != 20 {
		t.Errorf("Client.RateLimit.BurstSize = %d, want 20", cfg.Client.RateLimit.BurstSize)
	}
	if cfg.Filename.Platform != "portable" {
		t.Errorf("Filename.Platform = %q, want portable", cfg.Filename.Platform)
	}
	if len(cfg.Launcher.Runtimes) != 2 {
		t.Fatalf("len(Launcher.Runtimes) = %d, want 2", len(cfg.Launcher.Runtimes))
	}
	rt, ok := cfg.Launcher.Runtime(cfg.Launcher.DefaultRuntime)
	if !ok || rt.JavaVersion != 17 {
		t.Errorf("default runtime = %+v (found %v), want java 17", rt, ok)
	}
	if cfg.Launcher.ProbeTimeout != 5*time.Second || cfg.Launcher.ListWorkers != 8 {
		t.Errorf("Launcher probe/workers = %v/%d, want 5s/8", cfg.Launcher.ProbeTimeout, cfg.Launcher.ListWorkers)
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	tests := []struct {
		env   string
		value string
		check func(cfg *config.Config) bool
	}{
		{env: "APP_SERVER_PORT", value: "9090", check: func(c *config.Config) bool { return c.Server.Port == 9090 }},
		{env: "APP_SERVER_READ_TIMEOUT", value: "15s", check: func(c *config.Config) bool { return c.Server.ReadTimeout == 15*time.Second }},
		{env: "APP_CLIENT_RETRY_MAX_ATTEMPTS", value: "7", check: func(c *config.Config) bool { return c.Client.Retry.MaxAttempts == 7 }},
		{env: "APP_LAUNCHER_DEFAULT_RUNTIME", value: "jre-8", check: func(c *config.Config) bool { return c.Launcher.DefaultRuntime == "jre-8" }},
		{env: "APP_FILENAME_PLATFORM", value: "windows", check: func(c *config.Config) bool { return c.Filename.Platform == "windows" }},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Chdir(moduleRoot)
			t.Setenv(tt.env, tt.value)

			cfg, err := config.Load("local")
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if !tt.check(cfg) {
				t.Errorf("%s=%s was not applied", tt.env, tt.value)
			}
		})
	}
}

func TestLoad_Rejects(t *testing.T) {
	t.Chdir(moduleRoot)

	for _, profile := range []string{"", "  ", "../etc", `a\b`, "staging"} {
		if _, err := config.Load(profile); err == nil {
			t.Errorf("Load(%q) error = nil, want error", profile)
		}
	}
}

func TestLoad_WithConfigDir(t *testing.T) {
	t.Parallel()

	if _, err := config.Load("local", config.WithConfigDir(t.TempDir())); err == nil {
		t.Error("Load() from an empty dir error = nil, want missing base.yaml")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*config.Config) {}},
		{name: "port zero", mutate: func(c *config.Config) { c.Server.Port = 0 }, wantErr: true},
		{name: "unknown log level", mutate: func(c *config.Config) { c.Log.Level = "verbose" }, wantErr: true},
		{name: "otlp without endpoint", mutate: func(c *config.Config) {
			c.Telemetry.Enabled = true
			c.Telemetry.Exporter = "otlp"
		}, wantErr: true},
		{name: "rate limit without burst", mutate: func(c *config.Config) { c.Client.RateLimit.BurstSize = 0 }, wantErr: true},
		{name: "unknown filename platform", mutate: func(c *config.Config) { c.Filename.Platform = "amiga" }, wantErr: true},
		{name: "default runtime not declared", mutate: func(c *config.Config) { c.Launcher.DefaultRuntime = "jre-21" }, wantErr: true},
		{name: "duplicate runtime", mutate: func(c *config.Config) {
			c.Launcher.Runtimes = append(c.Launcher.Runtimes, c.Launcher.Runtimes[0])
		}, wantErr: true},
		{name: "no default runtime", mutate: func(c *config.Config) { c.Launcher.DefaultRuntime = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(cfg)

			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func validConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:         "127.0.0.1",
			Port:         8080,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  time.Minute,
		},
		Log: config.LogConfig{Level: "info", Format: "json"},
		Client: config.ClientConfig{
			BaseURL: "https://piston-meta.mojang.com",
			Timeout: 30 * time.Second,
			Retry: config.RetryConfig{
				MaxAttempts:     3,
				InitialInterval: 100 * time.Millisecond,
				MaxInterval:     10 * time.Second,
				Multiplier:      2,
			},
			CircuitBreaker: config.CircuitBreakerConfig{MaxFailures: 5, Timeout: 30 * time.Second, HalfOpenLimit: 1},
			RateLimit:      config.RateLimitConfig{RequestsPerSecond: 10, BurstSize: 20},
		},
		Telemetry: config.TelemetryConfig{Exporter: "stdout"},
		Filename:  config.FilenameConfig{Platform: "portable"},
		Launcher: config.LauncherConfig{
			GameDir:        "data/.minecraft",
			VersionsDir:    "data/.minecraft/versions",
			ComponentsDir:  "data/components",
			UserHome:       "data",
			DefaultRuntime: "jre-17",
			WindowWidth:    1280,
			WindowHeight:   720,
			ProbeTimeout:   5 * time.Second,
			ListWorkers:    8,
			Runtimes:       []config.RuntimeConfig{{Name: "jre-17", Home: "/opt/java/jre-17", JavaVersion: 17}},
		},
	}
}
