// Package config loads the launcher's settings. Later layers override
// earlier ones: compiled defaults, configs/base.yaml, configs/{profile}.yaml
// and finally APP_* environment variables.
package config

import "time"

type Config struct {
	Launcher  LauncherConfig  `koanf:"launcher"`
	Filename  FilenameConfig  `koanf:"filename"`
	Client    ClientConfig    `koanf:"client"`
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig is the launcher API listener. WriteTimeout doubles as the
// per-request deadline.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig picks the slog level (debug|info|warn|error) and format
// (json|text).
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig holds settings for the remote version manifest client.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RateLimitConfig holds client-side rate limiting settings.
// A zero RequestsPerSecond disables the limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// RetryConfig drives the exponential backoff between manifest attempts.
// MaxAttempts counts the first try.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig trips after MaxFailures consecutive failed calls
// and probes again after Timeout with up to HalfOpenLimit calls.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// TelemetryConfig selects the OpenTelemetry exporter, stdout or otlp.
// Disabled telemetry keeps the global no-op providers.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// FilenameConfig selects the default filename rule set.
type FilenameConfig struct {
	Platform string `koanf:"platform"`
}

// LauncherConfig holds game directory layout and JVM launch settings.
type LauncherConfig struct {
	GameDir        string          `koanf:"game_dir"`
	VersionsDir    string          `koanf:"versions_dir"`
	ComponentsDir  string          `koanf:"components_dir"`
	UserHome       string          `koanf:"user_home"`
	DefaultRuntime string          `koanf:"default_runtime"`
	JVMArgs        []string        `koanf:"jvm_args"`
	WindowWidth    int             `koanf:"window_width"`
	WindowHeight   int             `koanf:"window_height"`
	ProbeTimeout   time.Duration   `koanf:"probe_timeout"`
	ListWorkers    int             `koanf:"list_workers"`
	Runtimes       []RuntimeConfig `koanf:"runtimes"`
}

// RuntimeConfig describes an installed Java runtime.
type RuntimeConfig struct {
	Name        string `koanf:"name"`
	Home        string `koanf:"home"`
	JavaVersion int    `koanf:"java_version"`
}

// Runtime returns the runtime named name.
func (l *LauncherConfig) Runtime(name string) (RuntimeConfig, bool) {
	for _, rt := range l.Runtimes {
		if rt.Name == name {
			return rt, true
		}
	}
	return RuntimeConfig{}, false
}
