package appctx

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/jsamuelsen11/shard-launcher-service/internal/domain"
	"github.com/jsamuelsen11/shard-launcher-service/internal/platform/logging"
)

// AddAction queues action for Commit.
func (rc *RequestContext) AddAction(action domain.Action) error {
	return rc.enqueue(action, nil)
}

// Pending is the number of queued actions.
func (rc *RequestContext) Pending() int {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return len(rc.queue)
}

// Commit executes the queue in order. On the first failure the actions
// that already ran are rolled back, newest first, and the failure is
// returned. A rollback that fails is logged and the rest still run.
// Rollback ignores cancellation of ctx so a timed-out request still
// restores what it changed.
//
// The queue is consumed whether or not Commit succeeds; calling it again
// returns ErrAlreadyCommitted.
func (rc *RequestContext) Commit(ctx context.Context) error {
	queue, err := rc.take()
	if err != nil {
		return err
	}

	logger := logging.FromContext(ctx).With(slog.String("operation", "appctx.Commit"))

	for i, action := range queue {
		logger.DebugContext(ctx, "running action",
			slog.String("action", action.Description()),
			slog.String("step", fmt.Sprintf("%d/%d", i+1, len(queue))),
		)
		if err := action.Execute(ctx); err != nil {
			logger.ErrorContext(ctx, "action failed, undoing earlier steps",
				slog.String("action", action.Description()),
				slog.Int("undo", i),
				slog.Any("error", err),
			)
			undo(context.WithoutCancel(ctx), logger, queue[:i])
			return fmt.Errorf("executing %s: %w", action.Description(), err)
		}
	}
	return nil
}

func (rc *RequestContext) take() ([]domain.Action, error) {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	if rc.committed {
		return nil, ErrAlreadyCommitted
	}
	rc.committed = true
	return rc.queue, nil
}

func undo(ctx context.Context, logger *slog.Logger, done []domain.Action) {
	for _, action := range slices.Backward(done) {
		if err := action.Rollback(ctx); err != nil {
			logger.ErrorContext(ctx, "rollback failed",
				slog.String("action", action.Description()),
				slog.Any("error", err),
			)
			continue
		}
		logger.InfoContext(ctx, "rolled back", slog.String("action", action.Description()))
	}
}
