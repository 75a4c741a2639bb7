package domain

import "context"

// Action represents a single executable operation with rollback capability.
// Version rename and copy are built from Actions so that a failure halfway
// through leaves the versions directory as it was.
type Action interface {
	// Execute performs the action.
	Execute(ctx context.Context) error

	// Rollback reverses the effect of a previously successful Execute call.
	// Rollback is only called if Execute returned nil.
	Rollback(ctx context.Context) error

	// Description returns a human-readable description for logging
	// (e.g., "move versions/1.20.1 to versions/modded").
	Description() string
}

// WriteStager is the domain's view of the application-layer RequestContext.
type WriteStager interface {
	// Stage records entity under key and queues action for Commit.
	Stage(key string, entity any, action Action) error

	// Execute runs an action immediately, outside the commit queue.
	Execute(action Action) error
}
