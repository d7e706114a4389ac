package usecase

import (
	"context"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/usecase/shared"
)

// UpdateStatusInput contains the parameters for a status transition.
type UpdateStatusInput struct {
	TaskID string
	Status domain.Status
}

// UpdateStatusOutput contains the result of a status transition.
type UpdateStatusOutput struct {
	Mutation *domain.Mutation
}

// UpdateStatus is the use case for transitioning a task's status with
// optimistic-update semantics.
type UpdateStatus struct {
	cache     domain.QueryCache
	transport domain.Transport
	notifier  domain.Notifier
	clock     domain.Clock
	logger    domain.Logger
}

// NewUpdateStatus creates a new UpdateStatus use case.
func NewUpdateStatus(cache domain.QueryCache, transport domain.Transport, notifier domain.Notifier, clock domain.Clock, logger domain.Logger) *UpdateStatus {
	return &UpdateStatus{
		cache:     cache,
		transport: transport,
		notifier:  notifier,
		clock:     clock,
		logger:    logger,
	}
}

// Execute transitions the task to the given status. The cached entries
// are rewritten immediately; the remote call settles the projection.
func (uc *UpdateStatus) Execute(ctx context.Context, in UpdateStatusInput) (*UpdateStatusOutput, error) {
	if !in.Status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	keys := taskMutationKeys(uc.cache, in.TaskID)
	now := uc.clock.Now()

	m, err := shared.Mutate(ctx, uc.deps(), shared.MutateInput{
		Intent: "update_status",
		TaskID: in.TaskID,
		Keys:   keys,
		Project: func() {
			projectLists(uc.cache, keys, func(entry listEntry, t *domain.Task) (*domain.Task, bool) {
				if t.ID != in.TaskID {
					return t, false
				}
				t.Status = in.Status
				t.Updated = &now
				// A patched task that no longer matches the list's
				// filter drops out instead of lingering mislabeled.
				if !entry.Filter.Matches(t) {
					return nil, true
				}
				return t, true
			})
			projectShows(uc.cache, keys, in.TaskID, func(t *domain.Task) bool {
				t.Status = in.Status
				t.Updated = &now
				return true
			})
		},
		Call: func(ctx context.Context) error {
			return uc.transport.UpdateStatus(ctx, in.TaskID, in.Status)
		},
	})
	if err != nil {
		return nil, err
	}
	return &UpdateStatusOutput{Mutation: m}, nil
}

func (uc *UpdateStatus) deps() shared.MutateDeps {
	return shared.MutateDeps{
		Cache:    uc.cache,
		Notifier: uc.notifier,
		Logger:   uc.logger,
	}
}
