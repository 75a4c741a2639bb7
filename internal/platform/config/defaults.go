package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitRPS   = 10.0
	defaultRateLimitBurst = 20

	defaultWindowWidth  = 1280
	defaultWindowHeight = 720
	defaultListWorkers  = 8
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"client.base_url":                        "https://piston-meta.mojang.com",
		"client.timeout":                         "30s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "10s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  defaultRateLimitRPS,
		"client.rate_limit.burst_size":           defaultRateLimitBurst,

		"telemetry.enabled":  false,
		"telemetry.exporter": "stdout",
		"telemetry.endpoint": "",

		"filename.platform": "portable",

		"launcher.game_dir":        "data/.minecraft",
		"launcher.versions_dir":    "data/.minecraft/versions",
		"launcher.components_dir":  "data/components",
		"launcher.user_home":       "data",
		"launcher.default_runtime": "",
		"launcher.window_width":    defaultWindowWidth,
		"launcher.window_height":   defaultWindowHeight,
		"launcher.probe_timeout":   "5s",
		"launcher.list_workers":    defaultListWorkers,
	}
}
