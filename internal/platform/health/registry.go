// Package health keeps the checkers behind the readiness probe: the manifest
// client's circuit breaker and the native runtime probe.
package health

import (
	"context"
	"slices"
	"sync"

	"github.com/jsamuelsen11/shard-launcher-service/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// Registry is safe for concurrent use. Checker names are unique: registering
// a name again replaces the earlier checker.
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

func New() *Registry {
	return &Registry{}
}

func (r *Registry) Register(checker ports.HealthChecker) {
	name := checker.Name()

	r.mu.Lock()
	defer r.mu.Unlock()

	i := slices.IndexFunc(r.checkers, func(c ports.HealthChecker) bool { return c.Name() == name })
	if i >= 0 {
		r.checkers[i] = checker
		return
	}
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs every check in parallel, so a slow JVM probe does not hold
// up the breaker check, and returns the results by name. nil means healthy.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := slices.Clone(r.checkers)
	r.mu.RUnlock()

	errs := make([]error, len(checkers))
	var wg sync.WaitGroup
	for i, c := range checkers {
		wg.Go(func() { errs[i] = c.HealthCheck(ctx) })
	}
	wg.Wait()

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[c.Name()] = errs[i]
	}
	return results
}
