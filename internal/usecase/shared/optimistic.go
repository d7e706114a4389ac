// Package shared contains helpers used by multiple use cases.
package shared

import (
	"context"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// MutateDeps carries the collaborators every optimistic mutation needs.
type MutateDeps struct {
	Cache    domain.QueryCache
	Notifier domain.Notifier
	Logger   domain.Logger
}

// MutateInput describes one optimistic mutation.
type MutateInput struct {
	// Intent names the backend operation, for logging and notifications.
	Intent string

	// TaskID is the affected task, if any.
	TaskID string

	// Keys are the cache keys the projection may touch. The snapshot
	// covers exactly these keys.
	Keys []string

	// Project applies the expected effect to the cache. It runs after
	// the snapshot is captured and before the remote call is issued.
	Project func()

	// Call issues the remote operation.
	Call func(ctx context.Context) error
}

// Mutate runs the three-phase optimistic mutation contract:
//
//  1. snapshot the covered cache keys, then apply the optimistic
//     projection;
//  2. issue the remote call;
//  3. on failure restore the snapshot in full, and in every case mark the
//     covered keys stale so a background refetch reconciles any drift the
//     projection missed.
//
// Rollback and invalidation are both required: skipping the rollback
// leaves stale optimistic state lingering, and skipping the invalidation
// lets a concurrent second mutation race the rollback.
func Mutate(ctx context.Context, deps MutateDeps, in MutateInput) (*domain.Mutation, error) {
	snap := deps.Cache.Snapshot(in.Keys...)
	m := domain.NewMutation(in.Intent, in.TaskID, snap)

	if in.Project != nil {
		in.Project()
	}

	err := in.Call(ctx)
	if err != nil {
		deps.Cache.Restore(snap)
		deps.Logger.Warn("usecase", in.Intent+": rolled back: "+err.Error())
		deps.Notifier.Error(err.Error())
	}
	m.Settle(err)

	deps.Cache.Invalidate(in.Keys...)
	return m, err
}
