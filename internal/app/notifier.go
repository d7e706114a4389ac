package app

import (
	"fmt"
	"io"
	"os"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// Ensure StderrNotifier implements domain.Notifier.
var _ domain.Notifier = (*StderrNotifier)(nil)

// StderrNotifier prints notifications as plain lines. Errors are prefixed
// so they stand out in piped output.
type StderrNotifier struct {
	out io.Writer
}

// NewStderrNotifier creates a notifier writing to stderr.
func NewStderrNotifier() *StderrNotifier {
	return &StderrNotifier{out: os.Stderr}
}

// NewWriterNotifier creates a notifier writing to w. Useful for tests.
func NewWriterNotifier(w io.Writer) *StderrNotifier {
	return &StderrNotifier{out: w}
}

// Info prints an informational notification.
func (n *StderrNotifier) Info(msg string) {
	_, _ = fmt.Fprintln(n.out, msg)
}

// Error prints an error notification.
func (n *StderrNotifier) Error(msg string) {
	_, _ = fmt.Fprintf(n.out, "Error: %s\n", msg)
}
