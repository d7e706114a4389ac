package domain

import "github.com/google/uuid"

// MutationPhase is the lifecycle state of one in-flight mutation.
// Each mutation cycles idle -> pending -> succeeded | failed; the phase is
// carried explicitly instead of being implied by callback timing.
type MutationPhase string

const (
	MutationPending   MutationPhase = "pending"
	MutationSucceeded MutationPhase = "succeeded"
	MutationFailed    MutationPhase = "failed"
)

// Mutation tracks one optimistic write against the query cache. The
// snapshot captured before projection travels with the mutation so a
// failed remote call can restore the exact pre-mutation cache state.
// Each mutation carries its own independent snapshot: rolling back one
// in-flight mutation never affects another's projection.
// Fields are ordered to minimize memory padding.
type Mutation struct {
	Snapshot CacheSnapshot
	ID       string
	Intent   string
	TaskID   string
	Phase    MutationPhase
}

// NewMutation creates a pending mutation with a fresh identifier.
func NewMutation(intent, taskID string, snap CacheSnapshot) *Mutation {
	return &Mutation{
		ID:       uuid.NewString(),
		Intent:   intent,
		TaskID:   taskID,
		Phase:    MutationPending,
		Snapshot: snap,
	}
}

// Settle marks the mutation resolved. On failure the snapshot is kept for
// rollback; on success it is dropped so the cache entries can be collected.
func (m *Mutation) Settle(err error) {
	if err != nil {
		m.Phase = MutationFailed
		return
	}
	m.Phase = MutationSucceeded
	m.Snapshot = nil
}

// CacheSnapshot is a point-in-time copy of a set of cache entries,
// including which keys were absent, so Restore can reproduce the exact
// pre-mutation state rather than a partial patch.
type CacheSnapshot map[string]SnapshotEntry

// SnapshotEntry records one cache entry at snapshot time.
type SnapshotEntry struct {
	Value   any
	Present bool
}
