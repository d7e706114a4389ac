package domain

import (
	"context"
	"time"
)

// Transport is the remote-call boundary to the backend process: method name
// plus structured arguments in, structured result or error out. Application
// level failures (success:false envelopes) come back as *RemoteError so
// callers treat them identically to transport failures for rollback.
type Transport interface {
	// ListTasks retrieves tasks matching the filter. total is the
	// server-reported match count before any truncation.
	ListTasks(ctx context.Context, filter TaskFilter) (tasks []*Task, total int, err error)

	// ShowTask retrieves a single task, optionally scoped to a domain.
	ShowTask(ctx context.Context, taskID, dom string) (*Task, error)

	// CreateTask creates a task and returns the server-assigned record.
	CreateTask(ctx context.Context, draft TaskDraft) (*Task, error)

	// EditTask applies a partial field update to a task.
	EditTask(ctx context.Context, taskID string, patch TaskPatch) error

	// UpdateStatus transitions a task to the given status.
	UpdateStatus(ctx context.Context, taskID string, status Status) error

	// DeleteTask removes a task.
	DeleteTask(ctx context.Context, taskID string) error

	// ToggleStep sets the completion flag of one node in a task's step tree.
	ToggleStep(ctx context.Context, taskID string, path StepPath, completed bool) error

	// GetStorage returns namespaces and the backend's current storage state.
	GetStorage(ctx context.Context) (*StorageInfo, error)

	// SetStorageMode switches the backend storage mode. restarted reports
	// whether the backend restarted to apply the change.
	SetStorageMode(ctx context.Context, mode string) (restarted bool, err error)

	// History returns the most recent operation history entries.
	History(ctx context.Context, limit int) ([]HistoryEntry, error)

	// Undo reverts the most recent operation in the current namespace.
	Undo(ctx context.Context) error

	// Redo re-applies the most recently undone operation.
	Redo(ctx context.Context) error

	// Close shuts down the backend connection.
	Close() error
}

// TaskPatch is a partial task update. Nil fields are left unchanged.
type TaskPatch struct {
	Title       *string
	Description *string
	Context     *string
	Priority    *string
	Tags        *[]string
}

// Empty reports whether the patch changes nothing.
func (p TaskPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Context == nil &&
		p.Priority == nil && p.Tags == nil
}

// QueryCache is the client-side cache of query results, keyed by the full
// filter tuple. Stored values are treated as immutable: writers replace an
// entry wholesale rather than mutating it in place, which is what makes
// snapshots cheap and rollbacks exact.
type QueryCache interface {
	// Get returns the cached value for key, if present. Stale entries are
	// still returned; staleness only schedules a refetch.
	Get(key string) (any, bool)

	// Put stores a fresh value and clears the entry's stale flag.
	Put(key string, value any)

	// Keys returns all live keys with the given prefix.
	Keys(prefix string) []string

	// Snapshot captures the current value (or absence) of the given keys.
	Snapshot(keys ...string) CacheSnapshot

	// Restore re-establishes the exact state captured by Snapshot:
	// present entries are re-put, absent entries are removed.
	Restore(snap CacheSnapshot)

	// Invalidate marks entries stale so the next read refetches.
	// Invalidating an unknown key is a no-op.
	Invalidate(keys ...string)

	// InvalidatePrefix marks every entry under prefix stale.
	InvalidatePrefix(prefix string)

	// IsStale reports whether key holds a stale entry. Missing keys
	// are reported stale.
	IsStale(key string) bool

	// Subscribe delivers the keys of entries that are written or
	// invalidated under prefix. Notification is best-effort and
	// non-blocking; the returned func cancels the subscription.
	Subscribe(prefix string) (<-chan string, func())
}

// Notifier is the user-facing notification surface. The CLI prints to
// stderr; the TUI shows a status line.
type Notifier interface {
	Info(msg string)
	Error(msg string)
}

// Logger writes structured client logs. Category names the subsystem
// (bridge, cache, usecase).
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (local + global).
	Load() (*Config, error)

	// LoadGlobal returns only the global configuration.
	LoadGlobal() (*Config, error)
}

// SessionStore persists client session state (selected namespace, last
// status filter) between runs. This is client-side convenience state, not
// backend settings.
type SessionStore interface {
	Load() (*SessionState, error)
	Save(state *SessionState) error
}

// SessionState is the persisted client session.
type SessionState struct {
	Namespace    string `json:"namespace"`
	StatusFilter string `json:"statusFilter,omitempty"`
}
