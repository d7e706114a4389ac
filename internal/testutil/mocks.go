// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"time"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockNotifier records notifications for assertions.
type MockNotifier struct {
	Infos  []string
	Errors []string
}

// Info records an info notification.
func (m *MockNotifier) Info(msg string) {
	m.Infos = append(m.Infos, msg)
}

// Error records an error notification.
func (m *MockNotifier) Error(msg string) {
	m.Errors = append(m.Errors, msg)
}

// NopLogger is a no-op domain.Logger.
type NopLogger struct{}

func (NopLogger) Debug(string, string) {}
func (NopLogger) Info(string, string)  {}
func (NopLogger) Warn(string, string)  {}
func (NopLogger) Error(string, string) {}

// MockTransport is a test double for domain.Transport. Unset function
// fields succeed with zero values; Calls records invocation order.
// Fields are ordered to minimize memory padding.
type MockTransport struct {
	ListTasksFn      func(ctx context.Context, filter domain.TaskFilter) ([]*domain.Task, int, error)
	ShowTaskFn       func(ctx context.Context, taskID, dom string) (*domain.Task, error)
	CreateTaskFn     func(ctx context.Context, draft domain.TaskDraft) (*domain.Task, error)
	EditTaskFn       func(ctx context.Context, taskID string, patch domain.TaskPatch) error
	UpdateStatusFn   func(ctx context.Context, taskID string, status domain.Status) error
	DeleteTaskFn     func(ctx context.Context, taskID string) error
	ToggleStepFn     func(ctx context.Context, taskID string, path domain.StepPath, completed bool) error
	GetStorageFn     func(ctx context.Context) (*domain.StorageInfo, error)
	SetStorageModeFn func(ctx context.Context, mode string) (bool, error)
	HistoryFn        func(ctx context.Context, limit int) ([]domain.HistoryEntry, error)
	UndoFn           func(ctx context.Context) error
	RedoFn           func(ctx context.Context) error
	Calls            []string
}

// Ensure MockTransport implements domain.Transport.
var _ domain.Transport = (*MockTransport)(nil)

func (m *MockTransport) record(call string) {
	m.Calls = append(m.Calls, call)
}

// ListTasks calls ListTasksFn or returns an empty result.
func (m *MockTransport) ListTasks(ctx context.Context, filter domain.TaskFilter) ([]*domain.Task, int, error) {
	m.record("list")
	if m.ListTasksFn != nil {
		return m.ListTasksFn(ctx, filter)
	}
	return nil, 0, nil
}

// ShowTask calls ShowTaskFn or reports not found.
func (m *MockTransport) ShowTask(ctx context.Context, taskID, dom string) (*domain.Task, error) {
	m.record("show")
	if m.ShowTaskFn != nil {
		return m.ShowTaskFn(ctx, taskID, dom)
	}
	return nil, domain.ErrTaskNotFound
}

// CreateTask calls CreateTaskFn or echoes the draft back as a task.
func (m *MockTransport) CreateTask(ctx context.Context, draft domain.TaskDraft) (*domain.Task, error) {
	m.record("create")
	if m.CreateTaskFn != nil {
		return m.CreateTaskFn(ctx, draft)
	}
	return &domain.Task{ID: "created", Title: draft.Title, Status: domain.StatusTodo}, nil
}

// EditTask calls EditTaskFn or succeeds.
func (m *MockTransport) EditTask(ctx context.Context, taskID string, patch domain.TaskPatch) error {
	m.record("edit")
	if m.EditTaskFn != nil {
		return m.EditTaskFn(ctx, taskID, patch)
	}
	return nil
}

// UpdateStatus calls UpdateStatusFn or succeeds.
func (m *MockTransport) UpdateStatus(ctx context.Context, taskID string, status domain.Status) error {
	m.record("update_status")
	if m.UpdateStatusFn != nil {
		return m.UpdateStatusFn(ctx, taskID, status)
	}
	return nil
}

// DeleteTask calls DeleteTaskFn or succeeds.
func (m *MockTransport) DeleteTask(ctx context.Context, taskID string) error {
	m.record("delete")
	if m.DeleteTaskFn != nil {
		return m.DeleteTaskFn(ctx, taskID)
	}
	return nil
}

// ToggleStep calls ToggleStepFn or succeeds.
func (m *MockTransport) ToggleStep(ctx context.Context, taskID string, path domain.StepPath, completed bool) error {
	m.record("set_step_status")
	if m.ToggleStepFn != nil {
		return m.ToggleStepFn(ctx, taskID, path, completed)
	}
	return nil
}

// GetStorage calls GetStorageFn or returns an empty storage info.
func (m *MockTransport) GetStorage(ctx context.Context) (*domain.StorageInfo, error) {
	m.record("storage_get")
	if m.GetStorageFn != nil {
		return m.GetStorageFn(ctx)
	}
	return &domain.StorageInfo{}, nil
}

// SetStorageMode calls SetStorageModeFn or succeeds without restart.
func (m *MockTransport) SetStorageMode(ctx context.Context, mode string) (bool, error) {
	m.record("storage_set_mode")
	if m.SetStorageModeFn != nil {
		return m.SetStorageModeFn(ctx, mode)
	}
	return false, nil
}

// History calls HistoryFn or returns no entries.
func (m *MockTransport) History(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	m.record("get_history")
	if m.HistoryFn != nil {
		return m.HistoryFn(ctx, limit)
	}
	return nil, nil
}

// Undo calls UndoFn or succeeds.
func (m *MockTransport) Undo(ctx context.Context) error {
	m.record("undo")
	if m.UndoFn != nil {
		return m.UndoFn(ctx)
	}
	return nil
}

// Redo calls RedoFn or succeeds.
func (m *MockTransport) Redo(ctx context.Context) error {
	m.record("redo")
	if m.RedoFn != nil {
		return m.RedoFn(ctx)
	}
	return nil
}

// Close records the call.
func (m *MockTransport) Close() error {
	m.record("close")
	return nil
}

// MockSessionStore is a test double for domain.SessionStore.
type MockSessionStore struct {
	State   *domain.SessionState
	SaveErr error
}

// Load returns the stored state or the zero state.
func (m *MockSessionStore) Load() (*domain.SessionState, error) {
	if m.State == nil {
		return &domain.SessionState{}, nil
	}
	return m.State, nil
}

// Save stores the state.
func (m *MockSessionStore) Save(state *domain.SessionState) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.State = state
	return nil
}
