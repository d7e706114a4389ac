package usecase

import (
	"context"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// ShowTaskInput contains the parameters for retrieving a single task.
type ShowTaskInput struct {
	TaskID  string
	Domain  string
	Refresh bool
}

// ShowTaskOutput contains the result of retrieving a task.
type ShowTaskOutput struct {
	Task      *domain.Task
	FromCache bool
}

// ShowTask is the use case for retrieving a single task.
type ShowTask struct {
	cache     domain.QueryCache
	transport domain.Transport
}

// NewShowTask creates a new ShowTask use case.
func NewShowTask(cache domain.QueryCache, transport domain.Transport) *ShowTask {
	return &ShowTask{
		cache:     cache,
		transport: transport,
	}
}

// Execute retrieves a task by ID.
func (uc *ShowTask) Execute(ctx context.Context, in ShowTaskInput) (*ShowTaskOutput, error) {
	key := domain.TaskShowKey(in.TaskID, in.Domain)

	if !in.Refresh && !uc.cache.IsStale(key) {
		if task, ok := getShowEntry(uc.cache, key); ok {
			return &ShowTaskOutput{Task: task.Clone(), FromCache: true}, nil
		}
	}

	task, err := uc.transport.ShowTask(ctx, in.TaskID, in.Domain)
	if err != nil {
		return nil, fmt.Errorf("show task: %w", err)
	}

	if ctx.Err() == nil {
		uc.cache.Put(key, task.Clone())
	}
	return &ShowTaskOutput{Task: task}, nil
}
