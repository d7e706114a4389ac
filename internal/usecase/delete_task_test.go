package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/domain"
)

func TestDeleteTask_Success(t *testing.T) {
	f := newFixture(t)
	filter := domain.TaskFilter{Namespace: "work"}
	listKey := f.seedList(filter,
		&domain.Task{ID: "T-1", Title: "write report", Status: domain.StatusTodo, Namespace: "work"},
		&domain.Task{ID: "T-2", Title: "review PR", Status: domain.StatusActive, Namespace: "work"},
	)
	showKey := f.seedShow(&domain.Task{ID: "T-1", Title: "write report", Namespace: "work"}, "")

	uc := NewDeleteTask(f.cache, f.transport, f.notifier, f.logger)
	out, err := uc.Execute(context.Background(), DeleteTaskInput{TaskID: "T-1"})
	require.NoError(t, err)
	assert.Equal(t, domain.MutationSucceeded, out.Mutation.Phase)

	entry, ok := getListEntry(f.cache, listKey)
	require.True(t, ok)
	assert.Equal(t, []string{"T-2"}, taskIDs(entry.Tasks))
	assert.Equal(t, 1, entry.Total)

	_, ok = f.cache.Get(showKey)
	assert.False(t, ok, "detail entry for a deleted task is dropped")
}

func TestDeleteTask_RollbackPreservesOrder(t *testing.T) {
	f := newFixture(t)
	filter := domain.TaskFilter{Namespace: "work"}
	listKey := f.seedList(filter,
		&domain.Task{ID: "T-1", Title: "write report", Status: domain.StatusTodo, Namespace: "work"},
		&domain.Task{ID: "T-2", Title: "review PR", Status: domain.StatusActive, Namespace: "work"},
	)
	showKey := f.seedShow(&domain.Task{ID: "T-1", Title: "write report", Namespace: "work"}, "")

	remoteErr := domain.NewRemoteError("delete", "task not found")
	f.transport.DeleteTaskFn = func(context.Context, string) error {
		// The optimistic removal is already visible mid-flight.
		tasks := f.listFromCache(t, listKey)
		assert.Equal(t, []string{"T-2"}, taskIDs(tasks))
		return remoteErr
	}

	uc := NewDeleteTask(f.cache, f.transport, f.notifier, f.logger)
	_, err := uc.Execute(context.Background(), DeleteTaskInput{TaskID: "T-1"})
	require.ErrorIs(t, err, remoteErr)

	// Rollback restores the list in its original order, not appended.
	tasks := f.listFromCache(t, listKey)
	assert.Equal(t, []string{"T-1", "T-2"}, taskIDs(tasks))

	detail, ok := getShowEntry(f.cache, showKey)
	require.True(t, ok, "dropped detail entry comes back on rollback")
	assert.Equal(t, "write report", detail.Title)

	assert.True(t, f.cache.IsStale(listKey))
}

func TestDeleteTask_AbsentFromCache(t *testing.T) {
	f := newFixture(t)

	uc := NewDeleteTask(f.cache, f.transport, f.notifier, f.logger)
	out, err := uc.Execute(context.Background(), DeleteTaskInput{TaskID: "T-9"})

	// Nothing cached means nothing to project, but the remote call
	// still runs: the backend may hold the task.
	require.NoError(t, err)
	assert.Equal(t, []string{"delete"}, f.transport.Calls)
	assert.Equal(t, domain.MutationSucceeded, out.Mutation.Phase)
}
