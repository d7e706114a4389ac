package usecase

import (
	"context"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/usecase/shared"
)

// EditTaskInput contains the parameters for editing task fields.
type EditTaskInput struct {
	TaskID string
	Patch  domain.TaskPatch
}

// EditTaskOutput contains the result of editing a task.
type EditTaskOutput struct {
	Mutation *domain.Mutation
}

// EditTask is the use case for partial field updates with optimistic
// semantics.
type EditTask struct {
	cache     domain.QueryCache
	transport domain.Transport
	notifier  domain.Notifier
	clock     domain.Clock
	logger    domain.Logger
}

// NewEditTask creates a new EditTask use case.
func NewEditTask(cache domain.QueryCache, transport domain.Transport, notifier domain.Notifier, clock domain.Clock, logger domain.Logger) *EditTask {
	return &EditTask{
		cache:     cache,
		transport: transport,
		notifier:  notifier,
		clock:     clock,
		logger:    logger,
	}
}

// Execute applies the patch to the task.
func (uc *EditTask) Execute(ctx context.Context, in EditTaskInput) (*EditTaskOutput, error) {
	if in.Patch.Empty() {
		return nil, domain.ErrNoFieldsToUpdate
	}
	if in.Patch.Title != nil {
		if err := (&domain.Task{Title: *in.Patch.Title}).Validate(); err != nil {
			return nil, err
		}
	}

	keys := taskMutationKeys(uc.cache, in.TaskID)
	now := uc.clock.Now()
	apply := func(t *domain.Task) {
		if in.Patch.Title != nil {
			t.Title = *in.Patch.Title
		}
		if in.Patch.Description != nil {
			t.Description = *in.Patch.Description
		}
		if in.Patch.Context != nil {
			t.Context = *in.Patch.Context
		}
		if in.Patch.Priority != nil {
			t.Priority = *in.Patch.Priority
		}
		if in.Patch.Tags != nil {
			t.Tags = append([]string(nil), *in.Patch.Tags...)
		}
		t.Updated = &now
	}

	m, err := shared.Mutate(ctx, shared.MutateDeps{
		Cache:    uc.cache,
		Notifier: uc.notifier,
		Logger:   uc.logger,
	}, shared.MutateInput{
		Intent: "edit",
		TaskID: in.TaskID,
		Keys:   keys,
		Project: func() {
			projectLists(uc.cache, keys, func(_ listEntry, t *domain.Task) (*domain.Task, bool) {
				if t.ID != in.TaskID {
					return t, false
				}
				apply(t)
				return t, true
			})
			projectShows(uc.cache, keys, in.TaskID, func(t *domain.Task) bool {
				apply(t)
				return true
			})
		},
		Call: func(ctx context.Context) error {
			return uc.transport.EditTask(ctx, in.TaskID, in.Patch)
		},
	})
	if err != nil {
		return nil, err
	}
	return &EditTaskOutput{Mutation: m}, nil
}
