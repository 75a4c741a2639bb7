// Package launch models JVM launches: the runtime to start, the argument
// list handed to it, and the record of a launch's outcome.
package launch

import (
	"time"

	"github.com/jsamuelsen11/shard-launcher-service/internal/domain"
)

// Runtime is an installed Java runtime.
type Runtime struct {
	Name        string
	Home        string
	JavaVersion int
}

// Request is a caller's request to start the JVM.
type Request struct {
	// Version optionally names an installed version whose metadata supplies
	// the working directory, runtime and extra JVM arguments.
	Version string

	// JVMArgs is a single argument string; see SplitArgs.
	JVMArgs string

	// Runtime overrides the runtime chosen by version or configuration.
	Runtime string

	WindowWidth  int
	WindowHeight int
}

// Validate checks window dimensions. Zero means "use the default".
func (r *Request) Validate() error {
	errs := make(map[string]string)
	if r.WindowWidth < 0 {
		errs["window_width"] = "must not be negative"
	}
	if r.WindowHeight < 0 {
		errs["window_height"] = "must not be negative"
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Fields: errs}
	}
	return nil
}

// Spec is what the native boundary needs to start the JVM.
type Spec struct {
	Runtime Runtime
	Args    []string
	WorkDir string
}

// State is the lifecycle state of a launch.
type State string

const (
	StateRunning State = "running"
	StateExited  State = "exited"
	StateFailed  State = "failed"
)

// IsTerminal reports whether the launch has finished.
func (s State) IsTerminal() bool {
	return s == StateExited || s == StateFailed
}

// Launch records one JVM launch.
type Launch struct {
	ID         string
	Version    string
	Runtime    string
	Args       []string
	State      State
	ExitCode   *int
	Error      string
	StartedAt  time.Time
	FinishedAt *time.Time
}

// Finish records the outcome of the JVM. A start error marks the launch
// failed; otherwise it exited with code.
func (l *Launch) Finish(code int, err error, at time.Time) {
	l.FinishedAt = &at
	if err != nil {
		l.State = StateFailed
		l.Error = err.Error()
		return
	}
	l.State = StateExited
	l.ExitCode = &code
}
