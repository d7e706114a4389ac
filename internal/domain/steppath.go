package domain

import (
	"strconv"
	"strings"
)

// StepPath locates a node in a task's recursive step tree as a sequence of
// integer indices. The first index selects from the task's top-level steps;
// each subsequent index selects from the previous step's nested plan steps.
type StepPath []int

// ParseStepPath parses a dot-separated index path such as "0.2.1".
// Negative indices and non-numeric segments are rejected.
func ParseStepPath(raw string) (StepPath, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrInvalidStepPath
	}
	parts := strings.Split(raw, ".")
	path := make(StepPath, 0, len(parts))
	for _, p := range parts {
		idx, err := strconv.Atoi(p)
		if err != nil || idx < 0 {
			return nil, ErrInvalidStepPath
		}
		path = append(path, idx)
	}
	return path, nil
}

// String renders the path back to dot-separated form.
func (p StepPath) String() string {
	parts := make([]string, len(p))
	for i, idx := range p {
		parts[i] = strconv.Itoa(idx)
	}
	return strings.Join(parts, ".")
}

// Resolve walks the task's step tree and returns the addressed step.
// A path that runs off the end of a collection, or descends into a step
// with no nested plan, returns nil. The cache may be briefly out of sync
// with the true tree shape, so an unresolvable path is tolerated rather
// than reported.
func (p StepPath) Resolve(t *Task) *Step {
	if t == nil || len(p) == 0 {
		return nil
	}
	steps := t.Steps
	var node *Step
	for depth, idx := range p {
		if idx >= len(steps) {
			return nil
		}
		node = &steps[idx]
		if depth == len(p)-1 {
			break
		}
		if node.Plan == nil {
			return nil
		}
		steps = node.Plan.Steps
	}
	return node
}

// SetCompleted flips the completion flag of the addressed step in place.
// Returns false when the path does not resolve; the task is left
// unmodified in that case.
func (p StepPath) SetCompleted(t *Task, completed bool) bool {
	node := p.Resolve(t)
	if node == nil {
		return false
	}
	node.Completed = completed
	return true
}
