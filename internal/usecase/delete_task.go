package usecase

import (
	"context"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/usecase/shared"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	TaskID string
}

// DeleteTaskOutput contains the result of deleting a task.
type DeleteTaskOutput struct {
	Mutation *domain.Mutation
}

// DeleteTask is the use case for deleting a task. The optimistic
// projection removes the task from every cached list it appears in;
// a failed remote call restores each list in its original order.
type DeleteTask struct {
	cache     domain.QueryCache
	transport domain.Transport
	notifier  domain.Notifier
	logger    domain.Logger
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(cache domain.QueryCache, transport domain.Transport, notifier domain.Notifier, logger domain.Logger) *DeleteTask {
	return &DeleteTask{
		cache:     cache,
		transport: transport,
		notifier:  notifier,
		logger:    logger,
	}
}

// Execute deletes the task with the given ID.
func (uc *DeleteTask) Execute(ctx context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	keys := taskMutationKeys(uc.cache, in.TaskID)

	m, err := shared.Mutate(ctx, shared.MutateDeps{
		Cache:    uc.cache,
		Notifier: uc.notifier,
		Logger:   uc.logger,
	}, shared.MutateInput{
		Intent: "delete",
		TaskID: in.TaskID,
		Keys:   keys,
		Project: func() {
			projectLists(uc.cache, keys, func(_ listEntry, t *domain.Task) (*domain.Task, bool) {
				if t.ID == in.TaskID {
					return nil, true
				}
				return t, false
			})
			// Detail entries for a deleted task are dropped outright;
			// Restore brings them back on failure.
			uc.cache.Restore(dropSnapshot(keys, domain.TaskShowKeyPrefix(in.TaskID)))
		},
		Call: func(ctx context.Context) error {
			return uc.transport.DeleteTask(ctx, in.TaskID)
		},
	})
	if err != nil {
		return nil, err
	}
	return &DeleteTaskOutput{Mutation: m}, nil
}

// dropSnapshot builds a snapshot that, when restored, removes every key
// under prefix. Reusing Restore keeps removal inside the cache's write
// path so subscribers still hear about it.
func dropSnapshot(keys []string, prefix string) domain.CacheSnapshot {
	snap := make(domain.CacheSnapshot)
	for _, k := range keys {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			snap[k] = domain.SnapshotEntry{Present: false}
		}
	}
	return snap
}
