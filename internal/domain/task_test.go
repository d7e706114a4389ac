package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTask_Progress_FlatTree(t *testing.T) {
	task := &Task{
		Steps: []Step{
			{Title: "a", Completed: true},
			{Title: "b"},
			{Title: "c", Completed: true},
			{Title: "d"},
		},
	}
	assert.Equal(t, 50, task.Progress())
}

func TestTask_Progress_NestedPlanCountsLeavesOnly(t *testing.T) {
	// A step with a non-empty nested plan is a branch, not a leaf: only
	// the plan's steps count toward progress.
	task := &Task{
		Steps: []Step{
			{
				Title: "branch",
				Plan: &Plan{
					Steps: []Step{
						{Title: "leaf 1", Completed: true},
						{Title: "leaf 2", Completed: true},
						{Title: "leaf 3"},
					},
				},
			},
			{Title: "top leaf"},
		},
	}
	// 2 done of 4 leaves (three nested + one top-level).
	assert.Equal(t, 50, task.Progress())
}

func TestTask_Progress_EmptyTree(t *testing.T) {
	assert.Equal(t, 0, (&Task{}).Progress())
}

func TestTask_Progress_RecomputedAfterMutation(t *testing.T) {
	task := &Task{Steps: []Step{{Title: "a"}, {Title: "b"}}}
	assert.Equal(t, 0, task.Progress())

	task.Steps[0].Completed = true
	assert.Equal(t, 50, task.Progress())
}

func TestTask_Clone_DeepIndependence(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	orig := &Task{
		ID:      "proj:T-1",
		Title:   "original",
		Status:  StatusTodo,
		Tags:    []string{"one", "two"},
		Created: &created,
		Steps: []Step{
			{Title: "s0", Plan: &Plan{Steps: []Step{{Title: "s0.0"}}}},
		},
	}

	clone := orig.Clone()
	require.Equal(t, orig, clone)

	// Mutating the clone must not leak into the original.
	clone.Tags[0] = "changed"
	clone.Steps[0].Plan.Steps[0].Completed = true
	*clone.Created = clone.Created.Add(time.Hour)

	assert.Equal(t, "one", orig.Tags[0])
	assert.False(t, orig.Steps[0].Plan.Steps[0].Completed)
	assert.Equal(t, created, *orig.Created)
}

func TestCloneTasks_PreservesOrder(t *testing.T) {
	tasks := []*Task{{ID: "T-1"}, {ID: "T-2"}, {ID: "T-3"}}
	clones := CloneTasks(tasks)
	require.Len(t, clones, 3)
	for i, c := range clones {
		assert.Equal(t, tasks[i].ID, c.ID)
		assert.NotSame(t, tasks[i], c)
	}
	assert.Nil(t, CloneTasks(nil))
}

func TestStorageInfo_Clone_DeepIndependence(t *testing.T) {
	orig := &StorageInfo{
		CurrentNamespace: "work",
		CurrentStorage:   StorageFile,
		Namespaces:       []Namespace{{Name: "work", TaskCount: 3}},
	}

	clone := orig.Clone()
	require.Equal(t, orig, clone)

	clone.Namespaces[0].Name = "changed"
	assert.Equal(t, "work", orig.Namespaces[0].Name)

	var nilInfo *StorageInfo
	assert.Nil(t, nilInfo.Clone())
}

func TestTask_HasTag(t *testing.T) {
	task := &Task{Tags: []string{"ui", "urgent"}}
	assert.True(t, task.HasTag("urgent"))
	assert.False(t, task.HasTag("backend"))
}

func TestTask_Validate(t *testing.T) {
	assert.ErrorIs(t, (&Task{Title: "  "}).Validate(), ErrEmptyTitle)
	assert.ErrorIs(t, (&Task{Title: "x", Status: "NOPE"}).Validate(), ErrInvalidStatus)
	assert.NoError(t, (&Task{Title: "x", Status: StatusTodo}).Validate())
}
