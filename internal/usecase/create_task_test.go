package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/domain"
)

func TestCreateTasks_NoDrafts(t *testing.T) {
	f := newFixture(t)
	uc := NewCreateTasks(f.cache, f.transport, f.logger)

	_, err := uc.Execute(context.Background(), CreateTasksInput{})

	require.ErrorIs(t, err, domain.ErrNoTasksInFile)
}

func TestCreateTasks_ValidatesAllBeforeCreatingAny(t *testing.T) {
	f := newFixture(t)
	uc := NewCreateTasks(f.cache, f.transport, f.logger)

	_, err := uc.Execute(context.Background(), CreateTasksInput{
		Drafts: []domain.TaskDraft{
			{Title: "valid"},
			{Title: ""},
		},
	})

	require.ErrorIs(t, err, domain.ErrEmptyTitle)
	assert.Contains(t, err.Error(), "task 2")
	assert.Empty(t, f.transport.Calls, "a bad draft anywhere blocks the whole batch")
}

func TestCreateTasks_DryRun(t *testing.T) {
	f := newFixture(t)
	uc := NewCreateTasks(f.cache, f.transport, f.logger)

	out, err := uc.Execute(context.Background(), CreateTasksInput{
		Drafts: []domain.TaskDraft{{Title: "valid"}},
		DryRun: true,
	})

	require.NoError(t, err)
	assert.Empty(t, out.Tasks)
	assert.Empty(t, f.transport.Calls)
}

func TestCreateTasks_CreatesInOrderAndInvalidatesLists(t *testing.T) {
	f := newFixture(t)
	listKey := f.seedList(domain.TaskFilter{Namespace: "work"},
		&domain.Task{ID: "T-1", Namespace: "work", Status: domain.StatusTodo},
	)

	var titles []string
	f.transport.CreateTaskFn = func(_ context.Context, draft domain.TaskDraft) (*domain.Task, error) {
		titles = append(titles, draft.Title)
		return &domain.Task{ID: "T-" + draft.Title, Title: draft.Title, Status: domain.StatusTodo}, nil
	}

	uc := NewCreateTasks(f.cache, f.transport, f.logger)
	out, err := uc.Execute(context.Background(), CreateTasksInput{
		Drafts: []domain.TaskDraft{{Title: "a"}, {Title: "b"}},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, titles)
	require.Len(t, out.Tasks, 2)
	assert.Equal(t, "T-a", out.Tasks[0].ID)

	// No optimistic insert: lists just go stale and refetch.
	assert.True(t, f.cache.IsStale(listKey))
}

func TestCreateTasks_PartialFailureStillInvalidates(t *testing.T) {
	f := newFixture(t)
	listKey := f.seedList(domain.TaskFilter{Namespace: "work"},
		&domain.Task{ID: "T-1", Namespace: "work", Status: domain.StatusTodo},
	)

	remoteErr := errors.New("quota exceeded")
	f.transport.CreateTaskFn = func(_ context.Context, draft domain.TaskDraft) (*domain.Task, error) {
		if draft.Title == "b" {
			return nil, remoteErr
		}
		return &domain.Task{ID: "T-a", Title: draft.Title}, nil
	}

	uc := NewCreateTasks(f.cache, f.transport, f.logger)
	_, err := uc.Execute(context.Background(), CreateTasksInput{
		Drafts: []domain.TaskDraft{{Title: "a"}, {Title: "b"}},
	})

	require.ErrorIs(t, err, remoteErr)
	assert.Contains(t, err.Error(), "create task 2")
	// The first task was created on the server, so cached lists are
	// stale even though the batch failed.
	assert.True(t, f.cache.IsStale(listKey))
}
