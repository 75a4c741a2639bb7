package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/jsamuelsen11/shard-launcher-service/internal/domain/filename"
)

// Validate reports every invalid setting at once, joined.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Client.validate(),
		c.Telemetry.validate(),
		c.Filename.validate(),
		c.Launcher.validate(),
	)
}

// problems collects validation failures for one config section.
type problems []error

func (p *problems) check(ok bool, format string, args ...any) {
	if !ok {
		*p = append(*p, fmt.Errorf(format, args...))
	}
}

func (s *ServerConfig) validate() error {
	var p problems
	p.check(s.Port >= 1 && s.Port <= 65535, "server.port must be within 1-65535, got %d", s.Port)
	p.check(s.ReadTimeout > 0, "server.read_timeout must be positive")
	p.check(s.WriteTimeout > 0, "server.write_timeout must be positive")
	return errors.Join(p...)
}

func (l *LogConfig) validate() error {
	var p problems
	p.check(slices.Contains([]string{"debug", "info", "warn", "error"}, l.Level),
		"log.level must be debug, info, warn or error, got %q", l.Level)
	p.check(l.Format == "json" || l.Format == "text", "log.format must be json or text, got %q", l.Format)
	return errors.Join(p...)
}

func (cl *ClientConfig) validate() error {
	var p problems
	p.check(cl.BaseURL != "", "client.base_url must not be empty")
	p.check(cl.Timeout > 0, "client.timeout must be positive")
	p.check(cl.Retry.MaxAttempts >= 1, "client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts)
	p.check(cl.Retry.Multiplier > 0, "client.retry.multiplier must be positive, got %g", cl.Retry.Multiplier)
	p.check(cl.CircuitBreaker.MaxFailures >= 1,
		"client.circuit_breaker.max_failures must be >= 1, got %d", cl.CircuitBreaker.MaxFailures)
	p.check(cl.RateLimit.RequestsPerSecond >= 0,
		"client.rate_limit.requests_per_second must not be negative, got %g", cl.RateLimit.RequestsPerSecond)
	p.check(cl.RateLimit.RequestsPerSecond == 0 || cl.RateLimit.BurstSize >= 1,
		"client.rate_limit.burst_size must be >= 1 when rate limiting, got %d", cl.RateLimit.BurstSize)
	return errors.Join(p...)
}

// validate ignores exporter settings while telemetry is off.
func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}
	var p problems
	p.check(t.Exporter == "stdout" || t.Exporter == "otlp", "telemetry.exporter must be stdout or otlp, got %q", t.Exporter)
	p.check(t.Exporter != "otlp" || t.Endpoint != "", "telemetry.endpoint is required for the otlp exporter")
	return errors.Join(p...)
}

func (f *FilenameConfig) validate() error {
	if _, err := filename.RulesFor(f.Platform); err != nil {
		return fmt.Errorf("filename.platform: %w", err)
	}
	return nil
}

func (l *LauncherConfig) validate() error {
	var errs []error

	if l.GameDir == "" {
		errs = append(errs, errors.New("launcher.game_dir must not be empty"))
	}
	if l.VersionsDir == "" {
		errs = append(errs, errors.New("launcher.versions_dir must not be empty"))
	}
	if l.WindowWidth < 1 || l.WindowHeight < 1 {
		errs = append(errs, fmt.Errorf("launcher window size must be positive, got %dx%d",
			l.WindowWidth, l.WindowHeight))
	}
	if l.ProbeTimeout <= 0 {
		errs = append(errs, errors.New("launcher.probe_timeout must be positive"))
	}
	if l.ListWorkers < 1 {
		errs = append(errs, fmt.Errorf("launcher.list_workers must be >= 1, got %d", l.ListWorkers))
	}

	seen := make(map[string]bool, len(l.Runtimes))
	for i, rt := range l.Runtimes {
		switch {
		case rt.Name == "":
			errs = append(errs, fmt.Errorf("launcher.runtimes[%d].name must not be empty", i))
		case seen[rt.Name]:
			errs = append(errs, fmt.Errorf("launcher.runtimes[%d].name %q is duplicated", i, rt.Name))
		}
		seen[rt.Name] = true

		if rt.Home == "" {
			errs = append(errs, fmt.Errorf("launcher.runtimes[%d].home must not be empty", i))
		}
		if rt.JavaVersion < 8 {
			errs = append(errs, fmt.Errorf("launcher.runtimes[%d].java_version must be >= 8, got %d", i, rt.JavaVersion))
		}
	}

	if l.DefaultRuntime != "" && !seen[l.DefaultRuntime] {
		errs = append(errs, fmt.Errorf("launcher.default_runtime %q is not a configured runtime", l.DefaultRuntime))
	}

	return errors.Join(errs...)
}
