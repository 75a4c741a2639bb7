// Package native is the boundary to the Java runtime. The JVM runs as a
// child process started from <runtime home>/bin/java.
package native

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/jsamuelsen11/shard-launcher-service/internal/domain"
	"github.com/jsamuelsen11/shard-launcher-service/internal/domain/launch"
	"github.com/jsamuelsen11/shard-launcher-service/internal/platform/logging"
	"github.com/jsamuelsen11/shard-launcher-service/internal/ports"
)

// checkerName is reported by the readiness endpoint.
const checkerName = "native-runtime"

// Compile-time interface checks.
var (
	_ ports.NativeRuntime = (*Runtime)(nil)
	_ ports.HealthChecker = (*Runtime)(nil)
)

// Runtime implements [ports.NativeRuntime] by running the java executable
// of a launch.Runtime. It also implements [ports.HealthChecker] by probing
// the default runtime.
type Runtime struct {
	probe        launch.Runtime
	probeTimeout time.Duration
	output       io.Writer
	logger       *slog.Logger
}

// New creates a Runtime. probe is the runtime exercised by
// ProbeCriticalNative. JVM stdout and stderr are copied to output; a nil
// output discards them.
func New(probe launch.Runtime, probeTimeout time.Duration, output io.Writer, logger *slog.Logger) *Runtime {
	if output == nil {
		output = io.Discard
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runtime{
		probe:        probe,
		probeTimeout: probeTimeout,
		output:       output,
		logger:       logger,
	}
}

// JavaPath returns the java executable inside a runtime home.
func JavaPath(home string) string {
	return filepath.Join(home, "bin", "java")
}

// LaunchJVM runs java with spec.Args in spec.WorkDir and waits for it to
// exit. A process that ran and exited non-zero yields its code and a nil
// error; a process that could not be started yields -1 and an error.
func (r *Runtime) LaunchJVM(ctx context.Context, spec launch.Spec) (int, error) {
	java := JavaPath(spec.Runtime.Home)

	cmd := exec.CommandContext(ctx, java, spec.Args...)
	cmd.Dir = spec.WorkDir
	cmd.Stdout = r.output
	cmd.Stderr = r.output

	logging.FromContext(ctx).Info("starting jvm",
		slog.String("runtime", spec.Runtime.Name),
		slog.String("java", java),
		slog.String("work_dir", spec.WorkDir),
		slog.Int("args", len(spec.Args)),
	)

	return exitCode(cmd.Run(), java)
}

// ProbeCriticalNative runs "java -version" on the probe runtime under the
// probe timeout. a and b carry no meaning beyond the call itself. Without a
// configured runtime home nothing is run and the boundary is unavailable.
func (r *Runtime) ProbeCriticalNative(ctx context.Context, a, b int32) error {
	if r.probe.Home == "" {
		return fmt.Errorf("probing native runtime: %w: no default runtime configured", domain.ErrUnavailable)
	}

	if r.probeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.probeTimeout)
		defer cancel()
	}

	java := JavaPath(r.probe.Home)
	cmd := exec.CommandContext(ctx, java, "-version")

	r.logger.DebugContext(ctx, "probing native runtime",
		slog.String("runtime", r.probe.Name),
		slog.Int("a", int(a)),
		slog.Int("b", int(b)),
	)

	code, err := exitCode(cmd.Run(), java)
	if err != nil {
		return fmt.Errorf("probing runtime %q: %w: %w", r.probe.Name, domain.ErrUnavailable, err)
	}
	if code != 0 {
		return fmt.Errorf("probing runtime %q: %w: java -version exited with %d",
			r.probe.Name, domain.ErrUnavailable, code)
	}
	return nil
}

// Name implements [ports.HealthChecker].
func (r *Runtime) Name() string {
	return checkerName
}

// HealthCheck implements [ports.HealthChecker].
func (r *Runtime) HealthCheck(ctx context.Context) error {
	return r.ProbeCriticalNative(ctx, 0, 0)
}

func exitCode(err error, java string) (int, error) {
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
		return exitErr.ExitCode(), nil
	}
	return -1, fmt.Errorf("running %s: %w", java, err)
}
