// Package usecase contains application use cases. Mutating use cases all
// follow the same optimistic-update contract; see shared.Mutate.
package usecase

import (
	"github.com/taskdeck/taskdeck/internal/domain"
)

// listEntry is the cached value shape under task-list keys. The filter
// travels with the entry so optimistic projections can drop tasks that no
// longer match it instead of patching them in place.
type listEntry struct {
	Filter domain.TaskFilter
	Tasks  []*domain.Task
	Total  int
}

// getListEntry reads and type-asserts a cached list entry.
func getListEntry(cache domain.QueryCache, key string) (listEntry, bool) {
	v, ok := cache.Get(key)
	if !ok {
		return listEntry{}, false
	}
	entry, ok := v.(listEntry)
	return entry, ok
}

// getShowEntry reads and type-asserts a cached task detail entry.
func getShowEntry(cache domain.QueryCache, key string) (*domain.Task, bool) {
	v, ok := cache.Get(key)
	if !ok {
		return nil, false
	}
	task, ok := v.(*domain.Task)
	return task, ok
}

// taskMutationKeys collects every cache key an optimistic projection for
// the given task may touch: list entries that contain the task, plus the
// task's detail entries across domains. Lists the task does not appear in
// are left out of the snapshot so rolling this mutation back cannot
// revert another task's concurrent projection.
func taskMutationKeys(cache domain.QueryCache, taskID string) []string {
	var keys []string
	for _, key := range cache.Keys(domain.KeyPrefixTaskList) {
		entry, ok := getListEntry(cache, key)
		if !ok {
			continue
		}
		for _, t := range entry.Tasks {
			if t.ID == taskID {
				keys = append(keys, key)
				break
			}
		}
	}
	keys = append(keys, cache.Keys(domain.TaskShowKeyPrefix(taskID))...)
	return keys
}

// projectLists rewrites every cached list entry through fn. fn receives a
// deep copy of each task and returns the replacement (nil drops the task
// from the list) plus whether it modified anything. Entries are replaced
// wholesale, never mutated in place.
func projectLists(cache domain.QueryCache, keys []string, fn func(entry listEntry, task *domain.Task) (*domain.Task, bool)) {
	for _, key := range keys {
		entry, ok := getListEntry(cache, key)
		if !ok {
			continue
		}
		changed := false
		next := make([]*domain.Task, 0, len(entry.Tasks))
		for _, t := range entry.Tasks {
			replacement, modified := fn(entry, t.Clone())
			if modified {
				changed = true
			}
			if replacement != nil {
				next = append(next, replacement)
			}
		}
		if !changed {
			continue
		}
		cache.Put(key, listEntry{
			Filter: entry.Filter,
			Tasks:  next,
			Total:  entry.Total - (len(entry.Tasks) - len(next)),
		})
	}
}

// projectShows rewrites the task's cached detail entries through fn,
// which mutates the deep copy it receives and reports whether to keep it.
func projectShows(cache domain.QueryCache, cacheKeys []string, taskID string, fn func(task *domain.Task) bool) {
	prefix := domain.TaskShowKeyPrefix(taskID)
	for _, key := range cacheKeys {
		if len(key) < len(prefix) || key[:len(prefix)] != prefix {
			continue
		}
		task, ok := getShowEntry(cache, key)
		if !ok {
			continue
		}
		clone := task.Clone()
		if fn(clone) {
			cache.Put(key, clone)
		}
	}
}
