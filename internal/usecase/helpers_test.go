package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/infra/querycache"
	"github.com/taskdeck/taskdeck/internal/testutil"
)

// fixedNow is the timestamp every test clock reports.
var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	cache     *querycache.Store
	transport *testutil.MockTransport
	notifier  *testutil.MockNotifier
	clock     *testutil.MockClock
	logger    testutil.NopLogger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cache, err := querycache.New(0)
	require.NoError(t, err)
	return &fixture{
		cache:     cache,
		transport: &testutil.MockTransport{},
		notifier:  &testutil.MockNotifier{},
		clock:     &testutil.MockClock{NowTime: fixedNow},
	}
}

// seedList primes the cache with a list entry and returns its key.
func (f *fixture) seedList(filter domain.TaskFilter, tasks ...*domain.Task) string {
	key := filter.CacheKey()
	f.cache.Put(key, listEntry{
		Filter: filter,
		Tasks:  domain.CloneTasks(tasks),
		Total:  len(tasks),
	})
	return key
}

// seedShow primes the cache with a detail entry and returns its key.
func (f *fixture) seedShow(task *domain.Task, dom string) string {
	key := domain.TaskShowKey(task.ID, dom)
	f.cache.Put(key, task.Clone())
	return key
}

// listFromCache reads a cached list back for assertions.
func (f *fixture) listFromCache(t *testing.T, key string) []*domain.Task {
	t.Helper()
	entry, ok := getListEntry(f.cache, key)
	require.True(t, ok, "expected cached list under %s", key)
	return entry.Tasks
}

func taskIDs(tasks []*domain.Task) []string {
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids
}
