package usecase

import (
	"context"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/usecase/shared"
)

// ToggleStepInput contains the parameters for toggling a step.
type ToggleStepInput struct {
	TaskID    string
	Path      domain.StepPath
	Completed bool
}

// ToggleStepOutput contains the result of toggling a step.
type ToggleStepOutput struct {
	Mutation *domain.Mutation
}

// ToggleStep is the use case for flipping one node's completion flag in a
// task's step tree. A path that does not resolve in the cached tree shape
// is a silent no-op at the projection level: the cache may briefly lag the
// true shape, and the settle-time invalidation reconciles it. The remote
// call is issued either way, since the backend owns the real tree.
type ToggleStep struct {
	cache     domain.QueryCache
	transport domain.Transport
	notifier  domain.Notifier
	logger    domain.Logger
}

// NewToggleStep creates a new ToggleStep use case.
func NewToggleStep(cache domain.QueryCache, transport domain.Transport, notifier domain.Notifier, logger domain.Logger) *ToggleStep {
	return &ToggleStep{
		cache:     cache,
		transport: transport,
		notifier:  notifier,
		logger:    logger,
	}
}

// Execute sets the completion flag of the addressed step.
func (uc *ToggleStep) Execute(ctx context.Context, in ToggleStepInput) (*ToggleStepOutput, error) {
	if len(in.Path) == 0 {
		return nil, domain.ErrInvalidStepPath
	}

	keys := taskMutationKeys(uc.cache, in.TaskID)

	m, err := shared.Mutate(ctx, shared.MutateDeps{
		Cache:    uc.cache,
		Notifier: uc.notifier,
		Logger:   uc.logger,
	}, shared.MutateInput{
		Intent: "set_step_status",
		TaskID: in.TaskID,
		Keys:   keys,
		Project: func() {
			projectLists(uc.cache, keys, func(_ listEntry, t *domain.Task) (*domain.Task, bool) {
				if t.ID != in.TaskID {
					return t, false
				}
				return t, in.Path.SetCompleted(t, in.Completed)
			})
			projectShows(uc.cache, keys, in.TaskID, func(t *domain.Task) bool {
				return in.Path.SetCompleted(t, in.Completed)
			})
		},
		Call: func(ctx context.Context) error {
			return uc.transport.ToggleStep(ctx, in.TaskID, in.Path, in.Completed)
		},
	})
	if err != nil {
		return nil, err
	}
	return &ToggleStepOutput{Mutation: m}, nil
}
