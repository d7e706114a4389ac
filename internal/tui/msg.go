package tui

import "github.com/taskdeck/taskdeck/internal/domain"

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
type Msg interface {
	sealed()
}

// MsgTasksLoaded is sent when a task list read completes.
type MsgTasksLoaded struct {
	Tasks []*domain.Task
	Total int
}

func (MsgTasksLoaded) sealed() {}

// MsgTaskLoaded is sent when a task detail read completes.
type MsgTaskLoaded struct {
	Task *domain.Task
}

func (MsgTaskLoaded) sealed() {}

// MsgStorageLoaded is sent when storage info is loaded.
type MsgStorageLoaded struct {
	Storage *domain.StorageInfo
}

func (MsgStorageLoaded) sealed() {}

// MsgMutationSettled is sent when an optimistic mutation resolves. The
// projection already updated the visible state; this only refreshes from
// the now-invalidated cache.
type MsgMutationSettled struct {
	Err    error
	Intent string
}

func (MsgMutationSettled) sealed() {}

// MsgCacheChanged is sent when a cache entry the TUI displays was written
// or invalidated from elsewhere.
type MsgCacheChanged struct {
	Key string
}

func (MsgCacheChanged) sealed() {}

// MsgNotice carries a transient statusline notification.
type MsgNotice struct {
	Text    string
	IsError bool
}

func (MsgNotice) sealed() {}

// MsgClearNotice clears the statusline notification.
type MsgClearNotice struct{}

func (MsgClearNotice) sealed() {}

// MsgError is sent when a read fails.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}
