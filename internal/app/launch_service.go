package app

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"

	appctx "github.com/jsamuelsen11/shard-launcher-service/internal/app/context"
	"github.com/jsamuelsen11/shard-launcher-service/internal/domain"
	"github.com/jsamuelsen11/shard-launcher-service/internal/domain/launch"
	"github.com/jsamuelsen11/shard-launcher-service/internal/domain/version"
	"github.com/jsamuelsen11/shard-launcher-service/internal/platform/logging"
	"github.com/jsamuelsen11/shard-launcher-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/shard-launcher-service/internal/ports"
)

// Compile-time check that LaunchService implements ports.LaunchService.
var _ ports.LaunchService = (*LaunchService)(nil)

// LaunchSettings is the launcher configuration the service needs.
type LaunchSettings struct {
	GameDir        string
	VersionsDir    string
	ComponentsDir  string
	DefaultRuntime string
	Runtimes       []launch.Runtime
	JVMArgs        []string
	WindowWidth    int
	WindowHeight   int
}

// LaunchService implements ports.LaunchService. JVMs run in background
// goroutines; their records are kept in memory for the life of the process.
type LaunchService struct {
	native   ports.NativeRuntime
	versions ports.VersionRepository
	home     billy.Filesystem
	settings LaunchSettings
	metrics  *telemetry.Metrics
	logger   *slog.Logger

	launches *appctx.SafeRef[map[string]*launch.Launch]
	running  sync.WaitGroup

	now   func() time.Time
	newID func() string
}

// NewLaunchService creates a LaunchService. home is the user home where
// launcher_profiles.json is written. metrics may be nil.
func NewLaunchService(
	native ports.NativeRuntime,
	versions ports.VersionRepository,
	home billy.Filesystem,
	settings LaunchSettings,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *LaunchService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &LaunchService{
		native:   native,
		versions: versions,
		home:     home,
		settings: settings,
		metrics:  metrics,
		logger:   logger,
		launches: appctx.NewRef(map[string]*launch.Launch{}),
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Start resolves the version, runtime and arguments for req and starts the
// JVM in the background. The returned record is in state running.
func (s *LaunchService) Start(ctx context.Context, req launch.Request) (*launch.Launch, error) {
	s.logger.InfoContext(ctx, "starting launch",
		slog.String("version", req.Version),
		slog.String("runtime", req.Runtime),
	)

	if err := req.Validate(); err != nil {
		return nil, err
	}

	var v *version.Version
	if req.Version != "" {
		if !version.IsFolderName(req.Version) || version.IsHidden(req.Version) {
			return nil, fmt.Errorf("version %q: %w", req.Version, domain.ErrNotFound)
		}
		loaded, err := s.versions.Load(ctx, req.Version)
		if err != nil {
			s.logger.ErrorContext(ctx, "failed to load version",
				slog.String("operation", "Start"),
				slog.String("version", req.Version),
				slog.Any("error", err),
			)
			return nil, err
		}
		if !loaded.Valid {
			return nil, domain.FieldError("version", MsgInvalidVersion)
		}
		v = loaded
	}

	rt, err := s.resolveRuntime(req.Runtime, v)
	if err != nil {
		return nil, err
	}

	spec := launch.Spec{
		Runtime: rt,
		Args:    launch.BuildArgs(s.argsInput(req, rt, v)),
		WorkDir: s.settings.GameDir,
	}
	if v != nil && v.Config.Isolation {
		spec.WorkDir = filepath.Join(s.settings.VersionsDir, v.Name)
	}

	s.ensureLauncherProfiles(ctx)

	rec := &launch.Launch{
		ID:        s.newID(),
		Runtime:   rt.Name,
		Args:      spec.Args,
		State:     launch.StateRunning,
		StartedAt: s.now(),
	}
	if v != nil {
		rec.Version = v.Name
	}
	s.launches.Update(func(m *map[string]*launch.Launch) {
		(*m)[rec.ID] = rec
	})
	snapshot := copyLaunch(rec)

	s.running.Add(1)
	go s.run(context.WithoutCancel(ctx), rec.ID, spec)

	return snapshot, nil
}

// Get returns a copy of the record with the given ID.
func (s *LaunchService) Get(_ context.Context, id string) (*launch.Launch, error) {
	var found *launch.Launch
	s.launches.View(func(m map[string]*launch.Launch) {
		if l, ok := m[id]; ok {
			found = copyLaunch(l)
		}
	})
	if found == nil {
		return nil, fmt.Errorf("launch %q: %w", id, domain.ErrNotFound)
	}
	return found, nil
}

// List returns copies of all records, newest first.
func (s *LaunchService) List(_ context.Context) ([]launch.Launch, error) {
	var out []launch.Launch
	s.launches.View(func(m map[string]*launch.Launch) {
		out = make([]launch.Launch, 0, len(m))
		for _, l := range m {
			out = append(out, *copyLaunch(l))
		}
	})
	slices.SortFunc(out, func(a, b launch.Launch) int {
		if c := b.StartedAt.Compare(a.StartedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

// Probe runs the native diagnostic hook.
func (s *LaunchService) Probe(ctx context.Context, a, b int32) error {
	if err := s.native.ProbeCriticalNative(ctx, a, b); err != nil {
		s.logger.ErrorContext(ctx, "native probe failed",
			slog.String("operation", "Probe"),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// Wait blocks until every started JVM has exited.
func (s *LaunchService) Wait() {
	s.running.Wait()
}

func (s *LaunchService) run(ctx context.Context, id string, spec launch.Spec) {
	defer s.running.Done()

	code, err := s.native.LaunchJVM(ctx, spec)

	var state launch.State
	s.launches.Update(func(m *map[string]*launch.Launch) {
		l := (*m)[id]
		l.Finish(code, err, s.now())
		state = l.State
	})

	logger := logging.FromContext(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "jvm failed to start",
			slog.String("operation", "Start"),
			slog.String("launch_id", id),
			slog.Any("error", err),
		)
	} else {
		logger.InfoContext(ctx, "jvm exited",
			slog.String("launch_id", id),
			slog.Int("exit_code", code),
		)
	}

	if s.metrics != nil {
		attrs := metric.WithAttributes(
			telemetry.AttrResult.String(string(state)),
			telemetry.AttrRuntime.String(spec.Runtime.Name),
		)
		s.metrics.JVMLaunches.Add(ctx, 1, attrs)
		if err == nil {
			s.metrics.JVMExitCode.Record(ctx, int64(code), metric.WithAttributes(
				telemetry.AttrRuntime.String(spec.Runtime.Name),
			))
		}
	}
}

// resolveRuntime picks the request runtime, else the version's runtime,
// else the configured default.
func (s *LaunchService) resolveRuntime(requested string, v *version.Version) (launch.Runtime, error) {
	name := requested
	if name == "" && v != nil {
		name = v.Config.JavaRuntime
	}
	if name == "" {
		name = s.settings.DefaultRuntime
	}
	for _, rt := range s.settings.Runtimes {
		if rt.Name == name {
			return rt, nil
		}
	}
	return launch.Runtime{}, fmt.Errorf("runtime %q: %w", name, domain.ErrNotFound)
}

func (s *LaunchService) argsInput(req launch.Request, rt launch.Runtime, v *version.Version) launch.ArgsInput {
	in := launch.ArgsInput{
		Runtime:        rt,
		ComponentsDir:  s.settings.ComponentsDir,
		WindowWidth:    cmp.Or(req.WindowWidth, s.settings.WindowWidth),
		WindowHeight:   cmp.Or(req.WindowHeight, s.settings.WindowHeight),
		DefaultJVMArgs: s.settings.JVMArgs,
		RequestJVMArgs: req.JVMArgs,
	}
	if v != nil {
		in.VersionJVMArgs = v.Config.JVMArgs
	}
	return in
}

// ensureLauncherProfiles writes launcher_profiles.json into the user home
// if it is missing. Failure is logged and the launch continues.
func (s *LaunchService) ensureLauncherProfiles(ctx context.Context) {
	if s.home == nil {
		return
	}
	_, err := s.home.Stat(launch.LauncherProfilesFile)
	if err == nil {
		return
	}
	if errors.Is(err, os.ErrNotExist) {
		err = util.WriteFile(s.home, launch.LauncherProfilesFile, []byte(launch.LauncherProfiles), 0o644)
	}
	if err != nil {
		s.logger.WarnContext(ctx, "failed to write launcher profiles",
			slog.String("file", launch.LauncherProfilesFile),
			slog.Any("error", err),
		)
	}
}

func copyLaunch(l *launch.Launch) *launch.Launch {
	c := *l
	c.Args = slices.Clone(l.Args)
	if l.ExitCode != nil {
		code := *l.ExitCode
		c.ExitCode = &code
	}
	if l.FinishedAt != nil {
		at := *l.FinishedAt
		c.FinishedAt = &at
	}
	return &c
}
