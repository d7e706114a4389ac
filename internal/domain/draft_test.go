package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTaskDrafts_BareList(t *testing.T) {
	content := []byte(`
- title: First task
  tags: [backend, urgent]
  priority: HIGH
- title: Second task
  description: |
    Multi-line
    description.
`)
	drafts, err := ParseTaskDrafts(content)
	require.NoError(t, err)
	require.Len(t, drafts, 2)
	assert.Equal(t, "First task", drafts[0].Title)
	assert.Equal(t, []string{"backend", "urgent"}, drafts[0].Tags)
	assert.Equal(t, "HIGH", drafts[0].Priority)
	assert.Contains(t, drafts[1].Description, "Multi-line")
}

func TestParseTaskDrafts_TasksKey(t *testing.T) {
	content := []byte(`
tasks:
  - title: Only task
    namespace: demo
`)
	drafts, err := ParseTaskDrafts(content)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "demo", drafts[0].Namespace)
}

func TestParseTaskDrafts_Errors(t *testing.T) {
	_, err := ParseTaskDrafts([]byte("   \n"))
	assert.ErrorIs(t, err, ErrEmptyFile)

	_, err = ParseTaskDrafts([]byte("tasks: []\n"))
	assert.ErrorIs(t, err, ErrNoTasksInFile)

	_, err = ParseTaskDrafts([]byte("- description: no title\n"))
	assert.ErrorIs(t, err, ErrEmptyTitle)
}
