package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/taskdeck/taskdeck/internal/domain"
)

type taskItem struct {
	task *domain.Task
}

func (t taskItem) FilterValue() string {
	return t.task.Title
}

// escapeNewlines replaces newline characters with spaces for single-line display.
func escapeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

type taskDelegate struct {
	styles Styles
}

func newTaskDelegate(styles Styles) taskDelegate {
	return taskDelegate{styles: styles}
}

func (d taskDelegate) Height() int {
	return 1
}

func (d taskDelegate) Spacing() int {
	return 0
}

func (d taskDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ti, ok := item.(taskItem)
	if !ok {
		return
	}
	task := ti.task
	selected := index == m.Index()

	indicator := " "
	if selected {
		indicator = ">"
	}

	glyph := lipgloss.NewStyle().Foreground(StatusColor(task.Status)).Render(task.Status.Glyph())

	progress := ""
	if done, total := task.StepCounts(); total > 0 {
		progress = fmt.Sprintf(" (%d/%d)", done, total)
	}

	title := escapeNewlines(task.Title)
	maxTitle := m.Width() - runewidth.StringWidth(indicator+" "+task.ID+"  "+progress) - 6
	if maxTitle < 10 {
		maxTitle = 10
	}
	if runewidth.StringWidth(title) > maxTitle {
		title = runewidth.Truncate(title, maxTitle-3, "...")
	}

	var line string
	if selected {
		line = d.styles.Selected.Render(indicator+" "+task.ID) + " " + glyph + " " + d.styles.Selected.Render(title+progress)
	} else {
		line = d.styles.Dim.Render(indicator+" "+task.ID) + " " + glyph + " " + d.styles.Normal.Render(title) + d.styles.Dim.Render(progress)
	}
	_, _ = fmt.Fprint(w, line)
}
