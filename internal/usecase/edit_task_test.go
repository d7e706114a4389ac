package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestEditTask_EmptyPatch(t *testing.T) {
	f := newFixture(t)
	uc := NewEditTask(f.cache, f.transport, f.notifier, f.clock, f.logger)

	_, err := uc.Execute(context.Background(), EditTaskInput{TaskID: "T-1"})

	require.ErrorIs(t, err, domain.ErrNoFieldsToUpdate)
	assert.Empty(t, f.transport.Calls)
}

func TestEditTask_EmptyTitleRejected(t *testing.T) {
	f := newFixture(t)
	uc := NewEditTask(f.cache, f.transport, f.notifier, f.clock, f.logger)

	_, err := uc.Execute(context.Background(), EditTaskInput{
		TaskID: "T-1",
		Patch:  domain.TaskPatch{Title: strPtr("  ")},
	})

	require.ErrorIs(t, err, domain.ErrEmptyTitle)
	assert.Empty(t, f.transport.Calls)
}

func TestEditTask_ProjectsPatchedFields(t *testing.T) {
	f := newFixture(t)
	filter := domain.TaskFilter{Namespace: "work"}
	listKey := f.seedList(filter,
		&domain.Task{ID: "T-1", Title: "write report", Priority: "low", Namespace: "work", Status: domain.StatusTodo},
	)
	showKey := f.seedShow(&domain.Task{ID: "T-1", Title: "write report", Priority: "low", Namespace: "work"}, "")

	uc := NewEditTask(f.cache, f.transport, f.notifier, f.clock, f.logger)
	tags := []string{"q3", "finance"}
	out, err := uc.Execute(context.Background(), EditTaskInput{
		TaskID: "T-1",
		Patch: domain.TaskPatch{
			Title:    strPtr("write quarterly report"),
			Priority: strPtr("high"),
			Tags:     &tags,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.MutationSucceeded, out.Mutation.Phase)

	tasks := f.listFromCache(t, listKey)
	require.Len(t, tasks, 1)
	assert.Equal(t, "write quarterly report", tasks[0].Title)
	assert.Equal(t, "high", tasks[0].Priority)
	assert.Equal(t, tags, tasks[0].Tags)
	require.NotNil(t, tasks[0].Updated)
	assert.Equal(t, fixedNow, *tasks[0].Updated)

	detail, ok := getShowEntry(f.cache, showKey)
	require.True(t, ok)
	assert.Equal(t, "write quarterly report", detail.Title)
}

func TestEditTask_RollbackOnRemoteFailure(t *testing.T) {
	f := newFixture(t)
	filter := domain.TaskFilter{Namespace: "work"}
	listKey := f.seedList(filter,
		&domain.Task{ID: "T-1", Title: "write report", Namespace: "work", Status: domain.StatusTodo},
	)

	remoteErr := domain.NewRemoteError("edit", "task is locked")
	f.transport.EditTaskFn = func(context.Context, string, domain.TaskPatch) error {
		return remoteErr
	}

	uc := NewEditTask(f.cache, f.transport, f.notifier, f.clock, f.logger)
	_, err := uc.Execute(context.Background(), EditTaskInput{
		TaskID: "T-1",
		Patch:  domain.TaskPatch{Title: strPtr("renamed")},
	})
	require.ErrorIs(t, err, remoteErr)

	tasks := f.listFromCache(t, listKey)
	assert.Equal(t, "write report", tasks[0].Title)
	assert.Nil(t, tasks[0].Updated)
}
