package domain

import "time"

// HistoryEntry is one record in the backend's operation history.
// Append-only from the client's perspective; ordering is server-defined
// (most recent first).
// Fields are ordered to minimize memory padding.
type HistoryEntry struct {
	Time   time.Time `json:"timestamp"`
	ID     string    `json:"id"`
	Intent string    `json:"intent"`
	TaskID string    `json:"task_id,omitempty"`
	Undone bool      `json:"undone"`
}
