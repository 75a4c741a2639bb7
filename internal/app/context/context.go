// Package appctx carries per-operation state for the version services:
// memoized reads of version folders and a queue of folder moves that
// commit together.
//
//	rc := appctx.New(ctx)
//	src, err := appctx.GetOrFetch(rc, "version:modded", loadModded)
//	_ = rc.AddAction(&moveFolderAction{repo: repo, from: "modded", to: "modpack"})
//	_ = rc.AddAction(&renameArtifactsAction{repo: repo, folder: "modpack", from: "modded", to: "modpack"})
//	err = rc.Commit(ctx)
//
// If the second move fails, Commit moves modpack back to modded before
// returning the error.
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jsamuelsen11/shard-launcher-service/internal/domain"
)

var _ domain.WriteStager = (*RequestContext)(nil)

var (
	ErrAlreadyCommitted = errors.New("appctx: actions already committed")
	ErrNilAction        = errors.New("appctx: nil action")

	// ErrTypeMismatch means one memo key was read as two different types.
	ErrTypeMismatch = errors.New("appctx: memoized value has another type")
)

// RequestContext belongs to a single service call. Memoized reads are
// not safe for concurrent use; queueing actions is.
type RequestContext struct {
	context.Context

	memo map[string]memoized

	mu        sync.Mutex
	queue     []domain.Action
	committed bool
}

type memoized struct {
	value any
	err   error
}

func New(ctx context.Context) *RequestContext {
	return &RequestContext{Context: ctx, memo: map[string]memoized{}}
}

// GetOrFetch returns what is memoized under key, calling fetch on the first
// read. Failed fetches are memoized as well, so a broken version JSON is
// read from disk only once per operation.
func GetOrFetch[T any](rc *RequestContext, key string, fetch func(context.Context) (T, error)) (T, error) {
	m, ok := rc.memo[key]
	if !ok {
		v, err := fetch(rc.Context)
		rc.memo[key] = memoized{value: v, err: err}
		return v, err
	}

	var zero T
	if m.err != nil {
		return zero, m.err
	}
	v, ok := m.value.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %q is %T, not %T", ErrTypeMismatch, key, m.value, zero)
	}
	return v, nil
}

// Stage queues action and memoizes entity under key, so reads later in
// the operation see the state the action will produce.
func (rc *RequestContext) Stage(key string, entity any, action domain.Action) error {
	return rc.enqueue(action, func() {
		rc.memo[key] = memoized{value: entity}
	})
}

// Execute runs action now, bypassing the queue. It is allowed after
// Commit.
func (rc *RequestContext) Execute(action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}
	return action.Execute(rc.Context)
}

// enqueue appends action under the lock and runs also, if non-nil, while
// still holding it.
func (rc *RequestContext) enqueue(action domain.Action, also func()) error {
	if action == nil {
		return ErrNilAction
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()

	if rc.committed {
		return ErrAlreadyCommitted
	}
	if also != nil {
		also()
	}
	rc.queue = append(rc.queue, action)
	return nil
}
