package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrEmptyTitle        = errors.New("title cannot be empty")
	ErrNoNamespace       = errors.New("no namespace selected")
	ErrInvalidStepPath   = errors.New("invalid step path")
	ErrNoFieldsToUpdate  = errors.New("no fields to update")
	ErrInvalidStorage    = errors.New("invalid storage mode")
	ErrEmptyFile         = errors.New("file is empty")
	ErrNoTasksInFile     = errors.New("no tasks found in file")
	ErrBackendNotStarted = errors.New("backend process not started")
)

// RemoteError is an application-level failure reported by the backend
// (a success:false envelope). The message is the backend's error string,
// passed through verbatim to the notification surface.
type RemoteError struct {
	Intent  string // Backend intent name, e.g. "update_status"
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return e.Intent + " failed"
	}
	return e.Message
}

// NewRemoteError creates a RemoteError for the given intent.
func NewRemoteError(intent, message string) *RemoteError {
	return &RemoteError{Intent: intent, Message: message}
}

// IsRemote reports whether err is an application-level backend failure.
func IsRemote(err error) bool {
	var re *RemoteError
	return errors.As(err, &re)
}
