package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// stepNode is one row of the flattened step tree.
type stepNode struct {
	path      domain.StepPath
	title     string
	depth     int
	completed bool
	branch    bool
}

// flattenSteps lists the step tree in pre-order, one node per row, with
// the dot path that addresses it.
func flattenSteps(task *domain.Task) []stepNode {
	if task == nil {
		return nil
	}
	var nodes []stepNode
	var walk func(steps []domain.Step, prefix domain.StepPath)
	walk = func(steps []domain.Step, prefix domain.StepPath) {
		for i, step := range steps {
			path := append(append(domain.StepPath(nil), prefix...), i)
			branch := step.Plan != nil && len(step.Plan.Steps) > 0
			nodes = append(nodes, stepNode{
				path:      path,
				title:     step.Title,
				depth:     len(prefix),
				completed: step.Completed,
				branch:    branch,
			})
			if branch {
				walk(step.Plan.Steps, path)
			}
		}
	}
	walk(task.Steps, nil)
	return nodes
}

// View renders the current screen.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var body string
	switch m.mode {
	case modeDetail:
		body = m.viewDetail()
	case modeConfirmDelete:
		body = m.viewConfirm()
	default:
		body = m.taskList.View()
	}

	sections := []string{
		m.viewHeader(),
		body,
		m.viewStatusLine(),
		m.help.View(m.keys),
	}
	return m.styles.App.Render(strings.Join(sections, "\n"))
}

// viewHeader renders the title bar with the active filter.
func (m *Model) viewHeader() string {
	title := m.styles.Header.Render("taskdeck")

	var parts []string
	if m.filter.Namespace != "" {
		parts = append(parts, "ns:"+m.filter.Namespace)
	} else {
		parts = append(parts, "ns:all")
	}
	if m.filter.Status != "" {
		parts = append(parts, "status:"+strings.ToLower(string(m.filter.Status)))
	}
	if m.filter.Domain != "" {
		parts = append(parts, "domain:"+m.filter.Domain)
	}
	if m.storage != nil {
		parts = append(parts, "store:"+m.storage.CurrentStorage)
	}

	return title + "  " + m.styles.Dim.Render(strings.Join(parts, "  "))
}

// viewDetail renders the task detail screen with the step tree.
func (m *Model) viewDetail() string {
	task := m.detail
	if task == nil {
		return m.styles.Dim.Render("Loading task...")
	}

	var b strings.Builder

	glyph := lipgloss.NewStyle().Foreground(StatusColor(task.Status)).Render(task.Status.Glyph())
	b.WriteString(glyph + " " + m.styles.Header.Render(task.Title) + "\n")
	b.WriteString(m.styles.Dim.Render(task.ID+"  "+task.Status.Display()) + "\n")

	if task.Description != "" {
		b.WriteString("\n" + m.styles.Normal.Render(task.Description) + "\n")
	}

	nodes := flattenSteps(task)
	if len(nodes) > 0 {
		done, total := task.StepCounts()
		b.WriteString("\n" + m.styles.Header.Render(fmt.Sprintf("Steps %d/%d (%d%%)", done, total, task.Progress())) + "\n")
		for i, n := range nodes {
			b.WriteString(m.viewStepRow(n, i == m.stepCursor) + "\n")
		}
	}

	return m.styles.DetailBox.Width(m.width - 4).Render(b.String())
}

// viewStepRow renders one step tree row.
func (m *Model) viewStepRow(n stepNode, selected bool) string {
	mark := "[ ]"
	style := m.styles.StepOpen
	if n.completed {
		mark = "[x]"
		style = m.styles.StepDone
	}
	cursor := "  "
	if selected {
		cursor = "> "
	}
	indent := strings.Repeat("  ", n.depth)
	line := cursor + indent + mark + " " + n.title
	if selected {
		return m.styles.Selected.Render(line)
	}
	return style.Render(line)
}

// viewConfirm renders the delete confirmation overlay.
func (m *Model) viewConfirm() string {
	task := m.selectedTask()
	if task == nil {
		return m.taskList.View()
	}
	prompt := fmt.Sprintf("Delete task %s (%s)? [y/N]", task.ID, task.Title)
	return m.taskList.View() + "\n" + m.styles.Error.Render(prompt)
}
