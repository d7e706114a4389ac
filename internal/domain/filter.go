package domain

// TaskFilter specifies criteria for listing tasks. The zero value means
// "all tasks everywhere". The cache key is the full tuple: two different
// filters never share a cache entry.
// Fields are ordered to minimize memory padding.
type TaskFilter struct {
	Namespace string // "" = all namespaces
	Status    Status // "" = any status
	Domain    string // "" = any domain
}

// Cache key prefixes. Every cached entry belongs to exactly one of these
// key spaces; prefix invalidation uses them.
const (
	KeyPrefixTaskList = "tasks/list"
	KeyPrefixTaskShow = "tasks/show"
	KeyPrefixHistory  = "history"
	KeyStorage        = "storage"
)

// CacheKey returns the cache key for this filter's task list.
func (f TaskFilter) CacheKey() string {
	return KeyPrefixTaskList + "|ns=" + f.Namespace + "|status=" + string(f.Status) + "|domain=" + f.Domain
}

// TaskShowKey returns the detail cache key for a task.
func TaskShowKey(taskID, dom string) string {
	return KeyPrefixTaskShow + "|id=" + taskID + "|domain=" + dom
}

// TaskShowKeyPrefix returns the prefix shared by all detail cache keys
// for a task, across domains.
func TaskShowKeyPrefix(taskID string) string {
	return KeyPrefixTaskShow + "|id=" + taskID + "|"
}

// HistoryKey returns the operation-history cache key for a namespace.
func HistoryKey(namespace string) string {
	return KeyPrefixHistory + "|ns=" + namespace
}

// Matches reports whether the task satisfies the filter. Used for
// optimistic projections: a patched task that no longer matches a cached
// filter is dropped from that list rather than patched in place.
func (f TaskFilter) Matches(t *Task) bool {
	if t == nil {
		return false
	}
	if f.Namespace != "" && t.Namespace != f.Namespace {
		return false
	}
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	return true
}
