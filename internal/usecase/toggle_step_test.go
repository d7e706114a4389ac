package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/domain"
)

func steppedTask() *domain.Task {
	return &domain.Task{
		ID:        "T-1",
		Title:     "ship release",
		Status:    domain.StatusActive,
		Namespace: "work",
		Steps: []domain.Step{
			{Title: "build", Plan: &domain.Plan{Steps: []domain.Step{
				{Title: "compile"},
				{Title: "package"},
			}}},
			{Title: "announce"},
		},
	}
}

func TestToggleStep_EmptyPath(t *testing.T) {
	f := newFixture(t)
	uc := NewToggleStep(f.cache, f.transport, f.notifier, f.logger)

	_, err := uc.Execute(context.Background(), ToggleStepInput{TaskID: "T-1"})

	require.ErrorIs(t, err, domain.ErrInvalidStepPath)
	assert.Empty(t, f.transport.Calls)
}

func TestToggleStep_ProjectsOnlyAddressedStep(t *testing.T) {
	f := newFixture(t)
	filter := domain.TaskFilter{Namespace: "work"}
	listKey := f.seedList(filter, steppedTask())
	showKey := f.seedShow(steppedTask(), "")

	uc := NewToggleStep(f.cache, f.transport, f.notifier, f.logger)
	out, err := uc.Execute(context.Background(), ToggleStepInput{
		TaskID:    "T-1",
		Path:      domain.StepPath{0, 1},
		Completed: true,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.MutationSucceeded, out.Mutation.Phase)

	tasks := f.listFromCache(t, listKey)
	require.Len(t, tasks, 1)
	steps := tasks[0].Steps
	assert.True(t, steps[0].Plan.Steps[1].Completed)
	assert.False(t, steps[0].Plan.Steps[0].Completed, "sibling leaf untouched")
	assert.False(t, steps[1].Completed)

	detail, ok := getShowEntry(f.cache, showKey)
	require.True(t, ok)
	assert.True(t, detail.Steps[0].Plan.Steps[1].Completed)
}

func TestToggleStep_StalePathIsSilentNoOp(t *testing.T) {
	tests := []struct {
		name string
		path domain.StepPath
	}{
		{"top level out of range", domain.StepPath{5, 0}},
		{"nested out of range", domain.StepPath{0, 9}},
		{"descends through leaf", domain.StepPath{1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			filter := domain.TaskFilter{Namespace: "work"}
			listKey := f.seedList(filter, steppedTask())

			uc := NewToggleStep(f.cache, f.transport, f.notifier, f.logger)
			_, err := uc.Execute(context.Background(), ToggleStepInput{
				TaskID:    "T-1",
				Path:      tt.path,
				Completed: true,
			})
			require.NoError(t, err)

			// The cached tree shape may lag the backend's; an
			// unresolvable path leaves the entry byte-for-byte alone.
			tasks := f.listFromCache(t, listKey)
			require.Len(t, tasks, 1)
			assert.Equal(t, steppedTask(), tasks[0])
			assert.Empty(t, f.notifier.Errors)

			// The backend owns the real tree, so the call still goes out.
			assert.Equal(t, []string{"set_step_status"}, f.transport.Calls)
		})
	}
}

func TestToggleStep_RollbackOnRemoteFailure(t *testing.T) {
	f := newFixture(t)
	filter := domain.TaskFilter{Namespace: "work"}
	listKey := f.seedList(filter, steppedTask())

	remoteErr := domain.NewRemoteError("set_step_status", "step path out of date")
	f.transport.ToggleStepFn = func(context.Context, string, domain.StepPath, bool) error {
		return remoteErr
	}

	uc := NewToggleStep(f.cache, f.transport, f.notifier, f.logger)
	_, err := uc.Execute(context.Background(), ToggleStepInput{
		TaskID:    "T-1",
		Path:      domain.StepPath{0, 0},
		Completed: true,
	})
	require.ErrorIs(t, err, remoteErr)

	tasks := f.listFromCache(t, listKey)
	require.Len(t, tasks, 1)
	assert.Equal(t, steppedTask(), tasks[0])
	assert.Equal(t, []string{"step path out of date"}, f.notifier.Errors)
}
