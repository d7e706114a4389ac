package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/domain"
)

func TestFlattenSteps(t *testing.T) {
	task := &domain.Task{
		ID: "T-1",
		Steps: []domain.Step{
			{Title: "build", Plan: &domain.Plan{Steps: []domain.Step{
				{Title: "compile", Completed: true},
				{Title: "package"},
			}}},
			{Title: "announce"},
		},
	}

	nodes := flattenSteps(task)
	require.Len(t, nodes, 4)

	assert.Equal(t, "build", nodes[0].title)
	assert.Equal(t, "0", nodes[0].path.String())
	assert.True(t, nodes[0].branch)

	assert.Equal(t, "compile", nodes[1].title)
	assert.Equal(t, "0.0", nodes[1].path.String())
	assert.Equal(t, 1, nodes[1].depth)
	assert.True(t, nodes[1].completed)

	assert.Equal(t, "package", nodes[2].title)
	assert.Equal(t, "0.1", nodes[2].path.String())

	assert.Equal(t, "announce", nodes[3].title)
	assert.Equal(t, "1", nodes[3].path.String())
	assert.Equal(t, 0, nodes[3].depth)
}

func TestFlattenSteps_NilOrEmpty(t *testing.T) {
	assert.Nil(t, flattenSteps(nil))
	assert.Empty(t, flattenSteps(&domain.Task{ID: "T-1"}))
}
