package usecase

import (
	"context"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// CreateTasksInput contains the parameters for creating tasks. Drafts may
// come from command-line flags or a parsed draft file.
type CreateTasksInput struct {
	Drafts []domain.TaskDraft
	// DryRun validates the drafts without creating anything.
	DryRun bool
}

// CreateTasksOutput contains the created tasks in draft order.
type CreateTasksOutput struct {
	Tasks []*domain.Task
}

// CreateTasks is the use case for creating tasks. There is no optimistic
// insert: the server assigns identifiers, so the cache is just invalidated
// and the next list read picks the new tasks up.
type CreateTasks struct {
	cache     domain.QueryCache
	transport domain.Transport
	logger    domain.Logger
}

// NewCreateTasks creates a new CreateTasks use case.
func NewCreateTasks(cache domain.QueryCache, transport domain.Transport, logger domain.Logger) *CreateTasks {
	return &CreateTasks{
		cache:     cache,
		transport: transport,
		logger:    logger,
	}
}

// Execute validates all drafts, then creates them in order. A failure
// partway leaves earlier tasks created; the error names the failed draft.
func (uc *CreateTasks) Execute(ctx context.Context, in CreateTasksInput) (*CreateTasksOutput, error) {
	if len(in.Drafts) == 0 {
		return nil, domain.ErrNoTasksInFile
	}
	for i := range in.Drafts {
		if err := in.Drafts[i].Validate(); err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
	}
	if in.DryRun {
		return &CreateTasksOutput{}, nil
	}

	out := &CreateTasksOutput{Tasks: make([]*domain.Task, 0, len(in.Drafts))}
	var created int
	defer func() {
		if created > 0 {
			uc.cache.InvalidatePrefix(domain.KeyPrefixTaskList)
		}
	}()

	for i := range in.Drafts {
		task, err := uc.transport.CreateTask(ctx, in.Drafts[i])
		if err != nil {
			return nil, fmt.Errorf("create task %d: %w", i+1, err)
		}
		created++
		uc.logger.Info("usecase", "created task "+task.ID)
		out.Tasks = append(out.Tasks, task)
	}
	return out, nil
}
