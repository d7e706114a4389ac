package domain

import "strings"

// Status represents the lifecycle state of a task.
type Status string

const (
	StatusTodo   Status = "TODO"   // Created, not started
	StatusActive Status = "ACTIVE" // Work in progress
	StatusDone   Status = "DONE"   // Completed
)

// AllStatuses returns all valid status values.
func AllStatuses() []Status {
	return []Status{StatusTodo, StatusActive, StatusDone}
}

// ParseStatus normalizes a status token (trim, uppercase, spaces to
// underscores) and returns it if it is a known status.
func ParseStatus(value string) (Status, error) {
	token := NormalizeStatusToken(value)
	if token == "" {
		return "", ErrInvalidStatus
	}
	s := Status(token)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// NormalizeStatusToken uppercases and underscores a raw status input
// without validating it. Display code tolerates unknown tokens.
func NormalizeStatusToken(value string) string {
	return strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(value)), " ", "_")
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusActive, StatusDone:
		return true
	default:
		return false
	}
}

// IsTerminal returns true if the status is a terminal state.
func (s Status) IsTerminal() bool {
	return s == StatusDone
}

// Display returns a human-readable representation of the status.
func (s Status) Display() string {
	switch s {
	case StatusTodo:
		return "To Do"
	case StatusActive:
		return "Active"
	case StatusDone:
		return "Done"
	default:
		return string(s)
	}
}

// Glyph returns the single-character marker used in list views.
func (s Status) Glyph() string {
	switch s {
	case StatusTodo:
		return "○"
	case StatusActive:
		return "●"
	case StatusDone:
		return "✓"
	default:
		return "?"
	}
}
