package appctx

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"testing"
)

// folders is an in-memory versions directory: folder name to present.
type folders map[string]bool

// moveFolder renames a version folder and records what it did in log.
type moveFolder struct {
	dir         folders
	from, to    string
	failExecute error
	failUndo    error
	cancel      context.CancelFunc
	log         *[]string
}

func (m *moveFolder) Execute(context.Context) error {
	if m.failExecute != nil {
		return m.failExecute
	}
	delete(m.dir, m.from)
	m.dir[m.to] = true
	*m.log = append(*m.log, "move "+m.from+">"+m.to)
	if m.cancel != nil {
		m.cancel()
	}
	return nil
}

func (m *moveFolder) Rollback(ctx context.Context) error {
	*m.log = append(*m.log, "undo "+m.from+">"+m.to)
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.failUndo != nil {
		return m.failUndo
	}
	delete(m.dir, m.to)
	m.dir[m.from] = true
	return nil
}

func (m *moveFolder) Description() string {
	return fmt.Sprintf("move versions/%s to versions/%s", m.from, m.to)
}

func TestGetOrFetch(t *testing.T) {
	t.Parallel()

	errUnreadable := errors.New("version json unreadable")

	tests := []struct {
		name      string
		key       string
		fetched   string
		fetchErr  error
		wantCalls int
	}{
		{name: "value is fetched once", key: "version:1.20.1", fetched: "1.20.1", wantCalls: 1},
		{name: "error is fetched once", key: "version:broken", fetchErr: errUnreadable, wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rc := New(t.Context())
			calls := 0
			fetch := func(context.Context) (string, error) {
				calls++
				return tt.fetched, tt.fetchErr
			}

			for range 3 {
				got, err := GetOrFetch(rc, tt.key, fetch)
				if !errors.Is(err, tt.fetchErr) {
					t.Fatalf("GetOrFetch() error = %v, want %v", err, tt.fetchErr)
				}
				if got != tt.fetched {
					t.Fatalf("GetOrFetch() = %q, want %q", got, tt.fetched)
				}
			}
			if calls != tt.wantCalls {
				t.Errorf("fetch called %d times, want %d", calls, tt.wantCalls)
			}
		})
	}
}

func TestGetOrFetch_TypeMismatch(t *testing.T) {
	t.Parallel()

	rc := New(t.Context())
	_, _ = GetOrFetch(rc, "version:forge", func(context.Context) (string, error) { return "forge", nil })

	_, err := GetOrFetch(rc, "version:forge", func(context.Context) (int, error) { return 47, nil })
	if !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("GetOrFetch() error = %v, want ErrTypeMismatch", err)
	}
}

func TestStage_ReadsBackStagedValue(t *testing.T) {
	t.Parallel()

	var log []string
	dir := folders{"modded": true}
	rc := New(t.Context())

	if err := rc.Stage("current", "modpack", &moveFolder{dir: dir, from: "modded", to: "modpack", log: &log}); err != nil {
		t.Fatalf("Stage() error = %v", err)
	}

	got, err := GetOrFetch(rc, "current", func(context.Context) (string, error) {
		t.Error("fetch called for a staged key")
		return "", nil
	})
	if err != nil || got != "modpack" {
		t.Errorf("GetOrFetch() = %q, %v, want modpack", got, err)
	}
	if rc.Pending() != 1 || len(log) != 0 {
		t.Errorf("Pending() = %d with log %v, want 1 queued and nothing run", rc.Pending(), log)
	}
}

func TestQueue_RejectsNilAndLateActions(t *testing.T) {
	t.Parallel()

	var log []string
	rc := New(t.Context())

	if err := rc.AddAction(nil); !errors.Is(err, ErrNilAction) {
		t.Errorf("AddAction(nil) = %v, want ErrNilAction", err)
	}
	if err := rc.Stage("current", "x", nil); !errors.Is(err, ErrNilAction) {
		t.Errorf("Stage(nil) = %v, want ErrNilAction", err)
	}
	if err := rc.Execute(nil); !errors.Is(err, ErrNilAction) {
		t.Errorf("Execute(nil) = %v, want ErrNilAction", err)
	}

	if err := rc.Commit(t.Context()); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}

	late := &moveFolder{dir: folders{}, from: "a", to: "b", log: &log}
	if err := rc.AddAction(late); !errors.Is(err, ErrAlreadyCommitted) {
		t.Errorf("AddAction() after commit = %v, want ErrAlreadyCommitted", err)
	}
	if err := rc.Stage("current", "b", late); !errors.Is(err, ErrAlreadyCommitted) {
		t.Errorf("Stage() after commit = %v, want ErrAlreadyCommitted", err)
	}
	if err := rc.Commit(t.Context()); !errors.Is(err, ErrAlreadyCommitted) {
		t.Errorf("second Commit() = %v, want ErrAlreadyCommitted", err)
	}
}

func TestAddAction_Concurrent(t *testing.T) {
	t.Parallel()

	var log []string
	rc := New(t.Context())

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Go(func() {
			_ = rc.AddAction(&moveFolder{dir: folders{}, from: fmt.Sprint(i), to: "x", log: &log})
		})
	}
	wg.Wait()

	if got := rc.Pending(); got != 50 {
		t.Errorf("Pending() = %d, want 50", got)
	}
}

func TestCommit_RenameWithParking(t *testing.T) {
	t.Parallel()

	errDenied := errors.New("permission denied")

	tests := []struct {
		name    string
		failAt  int
		wantLog []string
		wantDir folders
	}{
		{
			name:    "all moves applied",
			failAt:  -1,
			wantLog: []string{"move modpack>modpack-old", "move modded>modpack", "move modpack>current"},
			wantDir: folders{"modpack-old": true, "current": true},
		},
		{
			name:    "last move fails",
			failAt:  2,
			wantLog: []string{"move modpack>modpack-old", "move modded>modpack", "undo modded>modpack", "undo modpack>modpack-old"},
			wantDir: folders{"modded": true, "modpack": true},
		},
		{
			name:    "first move fails",
			failAt:  0,
			wantDir: folders{"modded": true, "modpack": true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var log []string
			dir := folders{"modded": true, "modpack": true}
			rc := New(t.Context())

			steps := [][2]string{{"modpack", "modpack-old"}, {"modded", "modpack"}, {"modpack", "current"}}
			for i, s := range steps {
				m := &moveFolder{dir: dir, from: s[0], to: s[1], log: &log}
				if i == tt.failAt {
					m.failExecute = errDenied
				}
				if err := rc.AddAction(m); err != nil {
					t.Fatalf("AddAction() error = %v", err)
				}
			}

			err := rc.Commit(t.Context())
			if wantErr := tt.failAt >= 0; (err != nil) != wantErr {
				t.Fatalf("Commit() error = %v, wantErr %v", err, wantErr)
			}
			if err != nil && !errors.Is(err, errDenied) {
				t.Errorf("Commit() error = %v, want it to wrap %v", err, errDenied)
			}
			if !slices.Equal(log, tt.wantLog) {
				t.Errorf("log = %v, want %v", log, tt.wantLog)
			}
			if fmt.Sprint(dir) != fmt.Sprint(tt.wantDir) {
				t.Errorf("folders = %v, want %v", dir, tt.wantDir)
			}
		})
	}
}

func TestCommit_FailedUndoDoesNotStopRollback(t *testing.T) {
	t.Parallel()

	var log []string
	dir := folders{"a": true, "b": true, "c": true}
	rc := New(t.Context())

	_ = rc.AddAction(&moveFolder{dir: dir, from: "a", to: "a2", log: &log})
	_ = rc.AddAction(&moveFolder{dir: dir, from: "b", to: "b2", log: &log, failUndo: errors.New("busy")})
	_ = rc.AddAction(&moveFolder{dir: dir, from: "c", to: "c2", log: &log, failExecute: errors.New("disk full")})

	_ = rc.Commit(t.Context())

	want := []string{"move a>a2", "move b>b2", "undo b>b2", "undo a>a2"}
	if !slices.Equal(log, want) {
		t.Errorf("log = %v, want %v", log, want)
	}
}

func TestCommit_RollbackSurvivesCancel(t *testing.T) {
	t.Parallel()

	var log []string
	dir := folders{"modded": true}
	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()
	rc := New(ctx)

	_ = rc.AddAction(&moveFolder{dir: dir, from: "modded", to: "modpack", log: &log, cancel: cancel})
	_ = rc.AddAction(&moveFolder{dir: dir, from: "modpack", to: "x", log: &log, failExecute: context.Canceled})

	if err := rc.Commit(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Commit() error = %v, want context.Canceled", err)
	}
	if !dir["modded"] || dir["modpack"] {
		t.Errorf("dir = %v, want modded restored", dir)
	}
}

func TestCommit_ErrorNamesTheAction(t *testing.T) {
	t.Parallel()

	var log []string
	rc := New(t.Context())
	_ = rc.AddAction(&moveFolder{dir: folders{}, from: "modded", to: "modpack", log: &log, failExecute: errors.New("permission denied")})

	err := rc.Commit(t.Context())
	if got, want := fmt.Sprint(err), "executing move versions/modded to versions/modpack: permission denied"; got != want {
		t.Errorf("Commit() error = %q, want %q", got, want)
	}
}

func TestExecute_RunsAfterCommit(t *testing.T) {
	t.Parallel()

	var log []string
	dir := folders{"old": true}
	rc := New(t.Context())
	_ = rc.Commit(t.Context())

	if err := rc.Execute(&moveFolder{dir: dir, from: "old", to: "new", log: &log}); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !dir["new"] || dir["old"] {
		t.Errorf("folders = %v, want old moved to new", dir)
	}
}
