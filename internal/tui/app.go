// Package tui provides the interactive terminal interface. It renders
// straight from the query cache, so optimistic projections show up the
// moment a mutation is issued and rollbacks show up the moment it fails.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

// viewMode selects which screen the TUI is showing.
type viewMode int

const (
	modeList viewMode = iota
	modeDetail
	modeConfirmDelete
)

// noticeTimeout is how long a statusline notification stays visible.
const noticeTimeout = 4 * time.Second

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	err       error

	// Cache subscription
	cacheCh   <-chan string
	cacheStop func()
	notices   chan MsgNotice

	// State
	tasks   []*domain.Task
	detail  *domain.Task
	storage *domain.StorageInfo
	filter  domain.TaskFilter
	notice  string

	// Components
	keys     KeyMap
	styles   Styles
	help     help.Model
	taskList list.Model

	// Numeric state (smaller types last)
	mode       viewMode
	width      int
	height     int
	stepCursor int
	noticeErr  bool
}

// channelNotifier forwards notifications into the TUI message loop.
type channelNotifier struct {
	ch chan MsgNotice
}

func (n *channelNotifier) Info(msg string)  { n.send(MsgNotice{Text: msg}) }
func (n *channelNotifier) Error(msg string) { n.send(MsgNotice{Text: msg, IsError: true}) }

func (n *channelNotifier) send(m MsgNotice) {
	select {
	case n.ch <- m:
	default:
	}
}

// NewApp creates the TUI model. Notifications from use cases are routed
// into the message loop instead of stderr.
func NewApp(c *app.Container) *Model {
	notices := make(chan MsgNotice, 16)
	container := c.WithNotifier(&channelNotifier{ch: notices})

	cacheCh, cacheStop := container.Cache.Subscribe("")

	styles := DefaultStyles()
	delegate := newTaskDelegate(styles)
	taskList := list.New([]list.Item{}, delegate, 0, 0)
	taskList.SetShowTitle(false)
	taskList.SetShowStatusBar(false)
	taskList.SetShowHelp(false)
	taskList.SetShowPagination(false)
	taskList.SetFilteringEnabled(true)
	taskList.DisableQuitKeybindings()

	filter := domain.TaskFilter{}
	if container.AppConfig != nil {
		filter.Namespace = container.AppConfig.UI.Namespace
		filter.Domain = container.AppConfig.UI.Domain
		if container.AppConfig.UI.Status != "" {
			if status, err := domain.ParseStatus(container.AppConfig.UI.Status); err == nil {
				filter.Status = status
			}
		}
	}
	if container.Session != nil {
		if state, err := container.Session.Load(); err == nil && state.Namespace != "" {
			filter.Namespace = state.Namespace
		}
	}

	return &Model{
		container: container,
		cacheCh:   cacheCh,
		cacheStop: cacheStop,
		notices:   notices,
		filter:    filter,
		keys:      DefaultKeyMap(),
		styles:    styles,
		help:      help.New(),
		taskList:  taskList,
		mode:      modeList,
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadTasks(false),
		m.loadStorage(),
		m.waitForNotice(),
		m.waitForCacheChange(),
	)
}

// loadTasks returns a command that reads the task list for the current
// filter. The cached collection answers immediately when fresh.
func (m *Model) loadTasks(refresh bool) tea.Cmd {
	filter := m.filter
	return func() tea.Msg {
		out, err := m.container.ListTasksUseCase().Execute(context.Background(), usecase.ListTasksInput{
			Filter:  filter,
			Refresh: refresh,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTasksLoaded{Tasks: out.Tasks, Total: out.Total}
	}
}

// loadDetail returns a command that reads one task's details.
func (m *Model) loadDetail(taskID string) tea.Cmd {
	dom := m.filter.Domain
	return func() tea.Msg {
		out, err := m.container.ShowTaskUseCase().Execute(context.Background(), usecase.ShowTaskInput{
			TaskID: taskID,
			Domain: dom,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskLoaded{Task: out.Task}
	}
}

// loadStorage returns a command that reads namespaces and storage mode.
func (m *Model) loadStorage() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.GetStorageUseCase().Execute(context.Background(), usecase.GetStorageInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgStorageLoaded{Storage: out.Storage}
	}
}

// updateStatus returns a command running a status transition. The
// projection is already visible when the command starts executing.
func (m *Model) updateStatus(taskID string, status domain.Status) tea.Cmd {
	return func() tea.Msg {
		_, err := m.container.UpdateStatusUseCase().Execute(context.Background(), usecase.UpdateStatusInput{
			TaskID: taskID,
			Status: status,
		})
		return MsgMutationSettled{Intent: "update_status", Err: err}
	}
}

// deleteTask returns a command deleting a task.
func (m *Model) deleteTask(taskID string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.container.DeleteTaskUseCase().Execute(context.Background(), usecase.DeleteTaskInput{
			TaskID: taskID,
		})
		return MsgMutationSettled{Intent: "delete", Err: err}
	}
}

// toggleStep returns a command flipping one step's completion flag.
func (m *Model) toggleStep(taskID string, path domain.StepPath, completed bool) tea.Cmd {
	return func() tea.Msg {
		_, err := m.container.ToggleStepUseCase().Execute(context.Background(), usecase.ToggleStepInput{
			TaskID:    taskID,
			Path:      path,
			Completed: completed,
		})
		return MsgMutationSettled{Intent: "set_step_status", Err: err}
	}
}

// undo returns a command reverting the last operation.
func (m *Model) undo() tea.Cmd {
	namespace := m.currentNamespace()
	return func() tea.Msg {
		_, err := m.container.UndoUseCase().Execute(context.Background(), usecase.UndoInput{Namespace: namespace})
		return MsgMutationSettled{Intent: "undo", Err: err}
	}
}

// redo returns a command re-applying the last undone operation.
func (m *Model) redo() tea.Cmd {
	namespace := m.currentNamespace()
	return func() tea.Msg {
		_, err := m.container.RedoUseCase().Execute(context.Background(), usecase.RedoInput{Namespace: namespace})
		return MsgMutationSettled{Intent: "redo", Err: err}
	}
}

// waitForNotice returns a command delivering the next notification.
func (m *Model) waitForNotice() tea.Cmd {
	return func() tea.Msg {
		return <-m.notices
	}
}

// waitForCacheChange returns a command delivering the next cache event.
func (m *Model) waitForCacheChange() tea.Cmd {
	return func() tea.Msg {
		key, ok := <-m.cacheCh
		if !ok {
			return nil
		}
		return MsgCacheChanged{Key: key}
	}
}

// clearNoticeLater schedules the statusline notification to disappear.
func clearNoticeLater() tea.Cmd {
	return tea.Tick(noticeTimeout, func(time.Time) tea.Msg {
		return MsgClearNotice{}
	})
}

// currentNamespace is the namespace mutations like undo operate in.
func (m *Model) currentNamespace() string {
	if m.filter.Namespace != "" {
		return m.filter.Namespace
	}
	if m.storage != nil {
		return m.storage.CurrentNamespace
	}
	return ""
}

// selectedTask returns the task under the cursor in the list view.
func (m *Model) selectedTask() *domain.Task {
	item, ok := m.taskList.SelectedItem().(taskItem)
	if !ok {
		return nil
	}
	return item.task
}

// Close releases the cache subscription.
func (m *Model) Close() {
	if m.cacheStop != nil {
		m.cacheStop()
	}
}
