// Package domain contains core business entities and interfaces.
package domain

import (
	"strings"
	"time"
)

// Task represents a work unit owned by the backend. The client only ever
// holds cached, possibly-stale copies; every field change goes through a
// remote call that confirms or reverts it.
// Fields are ordered to minimize memory padding.
type Task struct {
	Created     *time.Time `json:"created_at,omitempty"`   // Server-assigned
	Updated     *time.Time `json:"updated_at,omitempty"`   // Server-assigned
	Completed   *time.Time `json:"completed_at,omitempty"` // Server-assigned
	ID          string     `json:"id"`                     // Stable, namespaced by project
	Title       string     `json:"title"`
	Priority    string     `json:"priority,omitempty"`
	Description string     `json:"description,omitempty"`
	Context     string     `json:"context,omitempty"`
	Namespace   string     `json:"namespace,omitempty"`
	PlanID      string     `json:"plan_id,omitempty"` // Parent plan (empty = none)
	Status      Status     `json:"status"`
	Tags        []string   `json:"tags,omitempty"` // Set semantics, order irrelevant
	Steps       []Step     `json:"steps,omitempty"`
}

// Step is a node in a task's recursive step tree. A step may carry a nested
// plan whose steps recurse further.
type Step struct {
	Plan      *Plan  `json:"plan,omitempty"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Plan is an ordered step list with a cursor denoting the next unstarted
// step. Invariant: 0 <= Current <= len(Steps).
type Plan struct {
	ID       string `json:"id,omitempty"`
	Title    string `json:"title,omitempty"`
	Contract string `json:"contract,omitempty"`
	Steps    []Step `json:"steps,omitempty"`
	Current  int    `json:"current"`
}

// HasTag reports tag membership. Tags have set semantics; order is
// irrelevant to correctness.
func (t *Task) HasTag(tag string) bool {
	for _, have := range t.Tags {
		if have == tag {
			return true
		}
	}
	return false
}

// Progress returns completed leaf steps over total leaf steps as a
// percentage in [0, 100]. It is always recomputed from the tree; the
// client never trusts a stored percentage across mutations.
func (t *Task) Progress() int {
	total, done := countLeaves(t.Steps)
	if total == 0 {
		return 0
	}
	return done * 100 / total
}

// StepCounts returns completed and total leaf steps.
func (t *Task) StepCounts() (done, total int) {
	total, done = countLeaves(t.Steps)
	return done, total
}

// countLeaves walks the step tree iteratively in pre-order, counting
// leaf steps (steps without a nested plan, or whose plan has no steps).
func countLeaves(steps []Step) (total, done int) {
	type frame struct {
		steps []Step
		idx   int
	}
	stack := []frame{{steps: steps}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.idx >= len(top.steps) {
			stack = stack[:len(stack)-1]
			continue
		}
		st := top.steps[top.idx]
		top.idx++
		if st.Plan != nil && len(st.Plan.Steps) > 0 {
			stack = append(stack, frame{steps: st.Plan.Steps})
			continue
		}
		total++
		if st.Completed {
			done++
		}
	}
	return total, done
}

// Clone returns a deep copy of the task. Mutation projections operate on
// clones so cache snapshots stay untouched.
func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	c := *t
	c.Created = cloneTime(t.Created)
	c.Updated = cloneTime(t.Updated)
	c.Completed = cloneTime(t.Completed)
	if t.Tags != nil {
		c.Tags = append([]string(nil), t.Tags...)
	}
	c.Steps = cloneSteps(t.Steps)
	return &c
}

// CloneTasks deep-copies a task slice, preserving order.
func CloneTasks(tasks []*Task) []*Task {
	if tasks == nil {
		return nil
	}
	out := make([]*Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}

func cloneSteps(steps []Step) []Step {
	if steps == nil {
		return nil
	}
	out := make([]Step, len(steps))
	for i, st := range steps {
		out[i] = st
		if st.Plan != nil {
			p := *st.Plan
			p.Steps = cloneSteps(st.Plan.Steps)
			out[i].Plan = &p
		}
	}
	return out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

// Validate checks client-side task invariants before a create or edit call.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}
	if t.Status != "" && !t.Status.IsValid() {
		return ErrInvalidStatus
	}
	return nil
}

// Namespace is a project-scoped partition of the task collection.
// TaskCount is server-reported and advisory only.
type Namespace struct {
	Name      string `json:"name"`
	Path      string `json:"path"` // Filesystem path, opaque to the client
	TaskCount int    `json:"task_count"`
}

// StorageInfo describes the backend's storage state.
type StorageInfo struct {
	CurrentNamespace string      `json:"current_namespace"`
	CurrentStorage   string      `json:"current_storage"`
	Namespaces       []Namespace `json:"namespaces"`
}

// Clone returns a deep copy of the storage state. Cached values are
// immutable, so readers and writers exchange clones.
func (s *StorageInfo) Clone() *StorageInfo {
	if s == nil {
		return nil
	}
	c := *s
	if s.Namespaces != nil {
		c.Namespaces = append([]Namespace(nil), s.Namespaces...)
	}
	return &c
}

// Storage modes accepted by the backend.
const (
	StorageFile   = "file"
	StorageSQLite = "sqlite"
)

// ValidStorageMode reports whether mode is a known storage mode.
func ValidStorageMode(mode string) bool {
	return mode == StorageFile || mode == StorageSQLite
}
