package health_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/shard-launcher-service/internal/platform/health"
	"github.com/jsamuelsen11/shard-launcher-service/mocks"
)

func checker(t *testing.T, name string, err error) *mocks.MockHealthChecker {
	t.Helper()
	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return(name)
	c.EXPECT().HealthCheck(mock.Anything).Return(err)
	return c
}

func TestCheckAll(t *testing.T) {
	t.Parallel()

	errOpen := errors.New("manifest-api: failing (circuit breaker open)")

	tests := []struct {
		name    string
		results map[string]error
	}{
		{name: "nothing registered", results: map[string]error{}},
		{name: "healthy", results: map[string]error{"manifest-api": nil, "native-runtime": nil}},
		{name: "one failing", results: map[string]error{"manifest-api": errOpen, "native-runtime": nil}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := health.New()
			for name, err := range tt.results {
				r.Register(checker(t, name, err))
			}

			got := r.CheckAll(t.Context())
			if got == nil || len(got) != len(tt.results) {
				t.Fatalf("CheckAll() = %v, want %d results", got, len(tt.results))
			}
			for name, want := range tt.results {
				if !errors.Is(got[name], want) {
					t.Errorf("%s = %v, want %v", name, got[name], want)
				}
			}
		})
	}
}

func TestRegister_SameNameReplaces(t *testing.T) {
	t.Parallel()

	// The replaced checker is never run.
	stale := mocks.NewMockHealthChecker(t)
	stale.EXPECT().Name().Return("native-runtime")

	errNoJava := errors.New("java not found")
	r := health.New()
	r.Register(stale)
	r.Register(checker(t, "native-runtime", errNoJava))

	got := r.CheckAll(t.Context())
	if len(got) != 1 || !errors.Is(got["native-runtime"], errNoJava) {
		t.Errorf("CheckAll() = %v, want only the replacement's result", got)
	}
}

func TestCheckAll_RunsInParallel(t *testing.T) {
	t.Parallel()

	// Each check waits for the other, so a sequential run would block.
	var started sync.WaitGroup
	started.Add(2)
	gate := func(context.Context) error {
		started.Done()
		started.Wait()
		return nil
	}

	r := health.New()
	for _, name := range []string{"manifest-api", "native-runtime"} {
		c := mocks.NewMockHealthChecker(t)
		c.EXPECT().Name().Return(name)
		c.EXPECT().HealthCheck(mock.Anything).RunAndReturn(gate).Once()
		r.Register(c)
	}

	done := make(chan map[string]error, 1)
	go func() { done <- r.CheckAll(t.Context()) }()

	select {
	case got := <-done:
		if len(got) != 2 {
			t.Errorf("CheckAll() = %v, want 2 results", got)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("checks ran one after the other")
	}
}

func TestCheckAll_PassesContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return("native-runtime")
	c.EXPECT().HealthCheck(mock.Anything).RunAndReturn(func(ctx context.Context) error {
		return ctx.Err()
	}).Once()

	r := health.New()
	r.Register(c)

	if got := r.CheckAll(ctx)["native-runtime"]; !errors.Is(got, context.Canceled) {
		t.Errorf("native-runtime = %v, want context.Canceled", got)
	}
}

func TestRegistry_ConcurrentUse(t *testing.T) {
	t.Parallel()

	r := health.New()
	var wg sync.WaitGroup
	for i := range 40 {
		if i%2 == 0 {
			c := mocks.NewMockHealthChecker(t)
			c.EXPECT().Name().Return("native-runtime").Maybe()
			c.EXPECT().HealthCheck(mock.Anything).Return(nil).Maybe()
			wg.Go(func() { r.Register(c) })
			continue
		}
		wg.Go(func() { r.CheckAll(t.Context()) })
	}
	wg.Wait()
}
