package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

// Update handles messages and returns the updated model and next command.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.taskList.SetSize(msg.Width-2, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case MsgTasksLoaded:
		m.tasks = msg.Tasks
		items := make([]list.Item, len(msg.Tasks))
		for i, t := range msg.Tasks {
			items[i] = taskItem{task: t}
		}
		return m, m.taskList.SetItems(items)

	case MsgTaskLoaded:
		m.detail = msg.Task
		if max := len(flattenSteps(msg.Task)) - 1; m.stepCursor > max {
			m.stepCursor = max
		}
		if m.stepCursor < 0 {
			m.stepCursor = 0
		}
		return m, nil

	case MsgStorageLoaded:
		m.storage = msg.Storage
		return m, nil

	case MsgMutationSettled:
		// The settle invalidated the covered keys; refetch the visible
		// views. Failures already arrived as notices.
		cmds := []tea.Cmd{m.loadTasks(false)}
		if m.mode == modeDetail && m.detail != nil {
			cmds = append(cmds, m.loadDetail(m.detail.ID))
		}
		return m, tea.Batch(cmds...)

	case MsgCacheChanged:
		// Another mutation's projection or rollback touched the cache;
		// re-render from whatever it holds now, without going remote.
		return m, tea.Batch(m.reloadFromCache(msg.Key), m.waitForCacheChange())

	case MsgNotice:
		m.notice = msg.Text
		m.noticeErr = msg.IsError
		return m, tea.Batch(m.waitForNotice(), clearNoticeLater())

	case MsgClearNotice:
		m.notice = ""
		m.noticeErr = false
		return m, nil

	case MsgError:
		m.err = msg.Err
		return m, nil
	}

	var cmd tea.Cmd
	m.taskList, cmd = m.taskList.Update(msg)
	return m, cmd
}

// updateKey routes key presses by mode.
func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the list filter input is active, it gets every key.
	if m.mode == modeList && m.taskList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.taskList, cmd = m.taskList.Update(msg)
		return m, cmd
	}

	switch m.mode {
	case modeDetail:
		return m.updateDetailKey(msg)
	case modeConfirmDelete:
		return m.updateConfirmKey(msg)
	default:
		return m.updateListKey(msg)
	}
}

func (m *Model) updateListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		task := m.selectedTask()
		if task == nil {
			return m, nil
		}
		m.mode = modeDetail
		m.stepCursor = 0
		m.detail = task
		return m, m.loadDetail(task.ID)

	case key.Matches(msg, m.keys.MarkTodo):
		return m.transition(domain.StatusTodo)
	case key.Matches(msg, m.keys.MarkActive):
		return m.transition(domain.StatusActive)
	case key.Matches(msg, m.keys.MarkDone):
		return m.transition(domain.StatusDone)

	case key.Matches(msg, m.keys.Delete):
		if m.selectedTask() == nil {
			return m, nil
		}
		m.mode = modeConfirmDelete
		return m, nil

	case key.Matches(msg, m.keys.Undo):
		return m, m.undo()
	case key.Matches(msg, m.keys.Redo):
		return m, m.redo()

	case key.Matches(msg, m.keys.CycleNS):
		m.cycleNamespace()
		return m, m.loadTasks(false)

	case key.Matches(msg, m.keys.Refresh):
		return m, tea.Batch(m.loadTasks(true), m.loadStorage())
	}

	var cmd tea.Cmd
	m.taskList, cmd = m.taskList.Update(msg)
	return m, cmd
}

func (m *Model) updateDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	steps := flattenSteps(m.detail)

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.mode = modeList
		m.detail = nil
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.stepCursor > 0 {
			m.stepCursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.stepCursor < len(steps)-1 {
			m.stepCursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleStep):
		if m.detail == nil || len(steps) == 0 {
			return m, nil
		}
		node := steps[m.stepCursor]
		return m, m.toggleStep(m.detail.ID, node.path, !node.completed)

	case key.Matches(msg, m.keys.MarkTodo):
		return m.transitionDetail(domain.StatusTodo)
	case key.Matches(msg, m.keys.MarkActive):
		return m.transitionDetail(domain.StatusActive)
	case key.Matches(msg, m.keys.MarkDone):
		return m.transitionDetail(domain.StatusDone)

	case key.Matches(msg, m.keys.Undo):
		return m, m.undo()
	case key.Matches(msg, m.keys.Redo):
		return m, m.redo()
	}
	return m, nil
}

func (m *Model) updateConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.mode = modeList
		task := m.selectedTask()
		if task == nil {
			return m, nil
		}
		return m, m.deleteTask(task.ID)
	default:
		m.mode = modeList
		return m, nil
	}
}

// transition runs a status change for the selected list task.
func (m *Model) transition(status domain.Status) (tea.Model, tea.Cmd) {
	task := m.selectedTask()
	if task == nil {
		return m, nil
	}
	// The optimistic projection lands synchronously inside Execute, so
	// the refetch triggered by the settle is the only repaint needed.
	return m, m.updateStatus(task.ID, status)
}

// transitionDetail runs a status change for the task in the detail view.
func (m *Model) transitionDetail(status domain.Status) (tea.Model, tea.Cmd) {
	if m.detail == nil {
		return m, nil
	}
	return m, m.updateStatus(m.detail.ID, status)
}

// cycleNamespace steps through known namespaces: all -> ns1 -> ns2 -> all.
func (m *Model) cycleNamespace() {
	if m.storage == nil || len(m.storage.Namespaces) == 0 {
		return
	}
	names := make([]string, len(m.storage.Namespaces))
	for i, ns := range m.storage.Namespaces {
		names[i] = ns.Name
	}

	next := ""
	if m.filter.Namespace == "" {
		next = names[0]
	} else {
		for i, name := range names {
			if name == m.filter.Namespace && i+1 < len(names) {
				next = names[i+1]
				break
			}
		}
	}
	m.filter.Namespace = next

	if m.container.Session != nil {
		state, err := m.container.Session.Load()
		if err != nil {
			state = &domain.SessionState{}
		}
		state.Namespace = next
		_ = m.container.Session.Save(state)
	}
}

// reloadFromCache re-reads the views backed by the changed key.
func (m *Model) reloadFromCache(key string) tea.Cmd {
	listKey := m.filter.CacheKey()
	var cmds []tea.Cmd
	if key == listKey {
		filter := m.filter
		cmds = append(cmds, func() tea.Msg {
			out, err := m.container.ListTasksUseCase().Execute(context.Background(), usecase.ListTasksInput{
				Filter:     filter,
				CachedOnly: true,
			})
			if err != nil {
				return MsgError{Err: err}
			}
			return MsgTasksLoaded{Tasks: out.Tasks, Total: out.Total}
		})
	}
	if m.mode == modeDetail && m.detail != nil && key == domain.TaskShowKey(m.detail.ID, m.filter.Domain) {
		cmds = append(cmds, m.loadDetail(m.detail.ID))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}
