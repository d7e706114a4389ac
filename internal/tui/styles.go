package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary    lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Selected   lipgloss.Color
	TitleText  lipgloss.Color
	DimText    lipgloss.Color
	StatusTodo lipgloss.Color
	StatusAct  lipgloss.Color
	StatusDone lipgloss.Color
}{
	Primary:    lipgloss.Color("#6C5CE7"),
	Muted:      lipgloss.Color("#636E72"),
	Error:      lipgloss.Color("#D63031"),
	Success:    lipgloss.Color("#00B894"),
	Warning:    lipgloss.Color("#FDCB6E"),
	Selected:   lipgloss.Color("#FFEAA7"),
	TitleText:  lipgloss.Color("#DFE6E9"),
	DimText:    lipgloss.Color("#B2BEC3"),
	StatusTodo: lipgloss.Color("#74B9FF"),
	StatusAct:  lipgloss.Color("#FDCB6E"),
	StatusDone: lipgloss.Color("#00B894"),
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	App        lipgloss.Style
	Header     lipgloss.Style
	Selected   lipgloss.Style
	Normal     lipgloss.Style
	Dim        lipgloss.Style
	StatusLine lipgloss.Style
	Notice     lipgloss.Style
	Error      lipgloss.Style
	DetailBox  lipgloss.Style
	StepDone   lipgloss.Style
	StepOpen   lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		App:        lipgloss.NewStyle().Padding(0, 1),
		Header:     lipgloss.NewStyle().Foreground(Colors.Primary).Bold(true),
		Selected:   lipgloss.NewStyle().Foreground(Colors.Selected).Bold(true),
		Normal:     lipgloss.NewStyle().Foreground(Colors.TitleText),
		Dim:        lipgloss.NewStyle().Foreground(Colors.Muted),
		StatusLine: lipgloss.NewStyle().Foreground(Colors.DimText),
		Notice:     lipgloss.NewStyle().Foreground(Colors.Success),
		Error:      lipgloss.NewStyle().Foreground(Colors.Error),
		DetailBox:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Colors.Muted).Padding(0, 1),
		StepDone:   lipgloss.NewStyle().Foreground(Colors.Success),
		StepOpen:   lipgloss.NewStyle().Foreground(Colors.TitleText),
	}
}

// StatusColor returns the color for a task status.
func StatusColor(s domain.Status) lipgloss.Color {
	switch s {
	case domain.StatusTodo:
		return Colors.StatusTodo
	case domain.StatusActive:
		return Colors.StatusAct
	case domain.StatusDone:
		return Colors.StatusDone
	default:
		return Colors.Muted
	}
}
