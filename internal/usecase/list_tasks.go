package usecase

import (
	"context"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	Filter domain.TaskFilter
	// Refresh forces a remote fetch even when the cached entry is fresh.
	Refresh bool
	// CachedOnly returns whatever the cache holds without going remote.
	// Used by the TUI to render immediately while a refresh runs.
	CachedOnly bool
}

// ListTasksOutput contains the result of listing tasks.
type ListTasksOutput struct {
	Tasks []*domain.Task
	Total int
	// FromCache reports whether the result was served without a remote
	// call (it may still be stale).
	FromCache bool
}

// ListTasks is the use case for listing tasks. Reads return the most
// recently cached collection for the exact filter tuple when it is fresh,
// and refetch otherwise.
type ListTasks struct {
	cache     domain.QueryCache
	transport domain.Transport
	logger    domain.Logger
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(cache domain.QueryCache, transport domain.Transport, logger domain.Logger) *ListTasks {
	return &ListTasks{
		cache:     cache,
		transport: transport,
		logger:    logger,
	}
}

// Execute lists tasks matching the given filter.
func (uc *ListTasks) Execute(ctx context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	key := in.Filter.CacheKey()

	if !in.Refresh {
		if entry, ok := getListEntry(uc.cache, key); ok {
			if in.CachedOnly || !uc.cache.IsStale(key) {
				return &ListTasksOutput{
					Tasks:     domain.CloneTasks(entry.Tasks),
					Total:     entry.Total,
					FromCache: true,
				}, nil
			}
		} else if in.CachedOnly {
			return &ListTasksOutput{FromCache: true}, nil
		}
	}

	tasks, total, err := uc.transport.ListTasks(ctx, in.Filter)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	// A read whose subscriber went away before the call returned is
	// discarded on arrival: no cache write.
	if ctx.Err() == nil {
		uc.cache.Put(key, listEntry{
			Filter: in.Filter,
			Tasks:  domain.CloneTasks(tasks),
			Total:  total,
		})
	}

	return &ListTasksOutput{Tasks: tasks, Total: total}, nil
}
