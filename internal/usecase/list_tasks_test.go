package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/domain"
)

func TestListTasks_FetchesAndCaches(t *testing.T) {
	f := newFixture(t)
	filter := domain.TaskFilter{Namespace: "work"}
	remote := []*domain.Task{
		{ID: "T-1", Title: "write report", Status: domain.StatusTodo, Namespace: "work"},
	}
	f.transport.ListTasksFn = func(_ context.Context, got domain.TaskFilter) ([]*domain.Task, int, error) {
		assert.Equal(t, filter, got)
		return remote, 1, nil
	}

	uc := NewListTasks(f.cache, f.transport, f.logger)
	out, err := uc.Execute(context.Background(), ListTasksInput{Filter: filter})
	require.NoError(t, err)
	assert.False(t, out.FromCache)
	assert.Equal(t, 1, out.Total)

	// The second read is served from cache without a remote call.
	out2, err := uc.Execute(context.Background(), ListTasksInput{Filter: filter})
	require.NoError(t, err)
	assert.True(t, out2.FromCache)
	assert.Equal(t, []string{"T-1"}, taskIDs(out2.Tasks))
	assert.Equal(t, []string{"list"}, f.transport.Calls)
}

func TestListTasks_FilterTupleIsolation(t *testing.T) {
	f := newFixture(t)
	var seen []domain.TaskFilter
	f.transport.ListTasksFn = func(_ context.Context, got domain.TaskFilter) ([]*domain.Task, int, error) {
		seen = append(seen, got)
		return nil, 0, nil
	}

	uc := NewListTasks(f.cache, f.transport, f.logger)
	filters := []domain.TaskFilter{
		{},
		{Namespace: "work"},
		{Namespace: "work", Status: domain.StatusTodo},
		{Namespace: "work", Status: domain.StatusTodo, Domain: "reports"},
	}
	for _, filter := range filters {
		_, err := uc.Execute(context.Background(), ListTasksInput{Filter: filter})
		require.NoError(t, err)
	}

	// Each distinct tuple is its own cache entry, so each goes remote.
	assert.Equal(t, filters, seen)

	// Repeating one tuple hits its cache entry, not another's.
	_, err := uc.Execute(context.Background(), ListTasksInput{Filter: filters[1]})
	require.NoError(t, err)
	assert.Len(t, seen, 4)
}

func TestListTasks_RefreshBypassesCache(t *testing.T) {
	f := newFixture(t)
	filter := domain.TaskFilter{Namespace: "work"}
	f.seedList(filter, &domain.Task{ID: "T-1", Namespace: "work", Status: domain.StatusTodo})

	uc := NewListTasks(f.cache, f.transport, f.logger)
	out, err := uc.Execute(context.Background(), ListTasksInput{Filter: filter, Refresh: true})
	require.NoError(t, err)
	assert.False(t, out.FromCache)
	assert.Equal(t, []string{"list"}, f.transport.Calls)
}

func TestListTasks_CachedOnlyServesStaleEntry(t *testing.T) {
	f := newFixture(t)
	filter := domain.TaskFilter{Namespace: "work"}
	key := f.seedList(filter, &domain.Task{ID: "T-1", Namespace: "work", Status: domain.StatusTodo})
	f.cache.Invalidate(key)

	uc := NewListTasks(f.cache, f.transport, f.logger)
	out, err := uc.Execute(context.Background(), ListTasksInput{Filter: filter, CachedOnly: true})
	require.NoError(t, err)
	assert.True(t, out.FromCache)
	assert.Equal(t, []string{"T-1"}, taskIDs(out.Tasks))
	assert.Empty(t, f.transport.Calls)
}

func TestListTasks_StaleEntryRefetches(t *testing.T) {
	f := newFixture(t)
	filter := domain.TaskFilter{Namespace: "work"}
	key := f.seedList(filter, &domain.Task{ID: "T-1", Namespace: "work", Status: domain.StatusTodo})
	f.cache.Invalidate(key)

	f.transport.ListTasksFn = func(context.Context, domain.TaskFilter) ([]*domain.Task, int, error) {
		return []*domain.Task{
			{ID: "T-1", Namespace: "work", Status: domain.StatusDone},
		}, 1, nil
	}

	uc := NewListTasks(f.cache, f.transport, f.logger)
	out, err := uc.Execute(context.Background(), ListTasksInput{Filter: filter})
	require.NoError(t, err)
	assert.False(t, out.FromCache)
	assert.Equal(t, domain.StatusDone, out.Tasks[0].Status)
	assert.False(t, f.cache.IsStale(key), "refetch replaces the stale entry")
}

func TestListTasks_CancelledContextDiscardsResult(t *testing.T) {
	f := newFixture(t)
	filter := domain.TaskFilter{Namespace: "work"}
	key := filter.CacheKey()

	ctx, cancel := context.WithCancel(context.Background())
	f.transport.ListTasksFn = func(context.Context, domain.TaskFilter) ([]*domain.Task, int, error) {
		// The caller goes away while the call is in flight.
		cancel()
		return []*domain.Task{{ID: "T-1", Namespace: "work"}}, 1, nil
	}

	uc := NewListTasks(f.cache, f.transport, f.logger)
	_, err := uc.Execute(ctx, ListTasksInput{Filter: filter})
	require.NoError(t, err)

	_, ok := f.cache.Get(key)
	assert.False(t, ok, "a result arriving after cancellation is not cached")
}

func TestListTasks_RemoteFailure(t *testing.T) {
	f := newFixture(t)
	remoteErr := errors.New("backend unavailable")
	f.transport.ListTasksFn = func(context.Context, domain.TaskFilter) ([]*domain.Task, int, error) {
		return nil, 0, remoteErr
	}

	uc := NewListTasks(f.cache, f.transport, f.logger)
	_, err := uc.Execute(context.Background(), ListTasksInput{})
	require.ErrorIs(t, err, remoteErr)
}

func TestListTasks_ResultsAreIsolatedCopies(t *testing.T) {
	f := newFixture(t)
	filter := domain.TaskFilter{Namespace: "work"}
	key := f.seedList(filter, &domain.Task{ID: "T-1", Title: "write report", Namespace: "work", Status: domain.StatusTodo})

	uc := NewListTasks(f.cache, f.transport, f.logger)
	out, err := uc.Execute(context.Background(), ListTasksInput{Filter: filter})
	require.NoError(t, err)

	// Callers mutating their result must not corrupt the cache.
	out.Tasks[0].Title = "scribbled"
	cached := f.listFromCache(t, key)
	assert.Equal(t, "write report", cached[0].Title)
}
