package tui

import "fmt"

// viewStatusLine renders the one-line status area: transient notices,
// read errors, or a task count.
func (m *Model) viewStatusLine() string {
	if m.notice != "" {
		if m.noticeErr {
			return m.styles.Error.Render(m.notice)
		}
		return m.styles.Notice.Render(m.notice)
	}
	if m.err != nil {
		return m.styles.Error.Render(m.err.Error())
	}
	return m.styles.StatusLine.Render(fmt.Sprintf("%d tasks", len(m.tasks)))
}
