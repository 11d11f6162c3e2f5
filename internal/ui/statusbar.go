package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// statusBar renders the bottom status line: spinner while any request
// is in flight, a DEBUG indicator, and extra info (active view name).
type statusBar struct {
	spinner spinner.Model
	busy    bool
	debug   bool
}

func newStatusBar() statusBar {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))

	return statusBar{spinner: s}
}

// Tick returns the command that keeps the spinner animated.
func (sb statusBar) Tick() tea.Cmd {
	return sb.spinner.Tick
}

// Update advances the spinner animation.
func (sb statusBar) Update(msg tea.Msg) (statusBar, tea.Cmd) {
	var cmd tea.Cmd
	sb.spinner, cmd = sb.spinner.Update(msg)
	return sb, cmd
}

// View renders the status line stretched to width.
func (sb statusBar) View(width int, extra string) string {
	var parts []string

	if sb.busy {
		parts = append(parts, sb.spinner.View()+"Working...")
	} else {
		parts = append(parts, lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Render("✓ Ready"))
	}

	if sb.debug {
		parts = append(parts, lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("196")).
			Render(" DEBUG "))
	}

	if extra != "" {
		parts = append(parts, lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Render(extra))
	}

	line := strings.Join(parts, "  ")
	return lipgloss.NewStyle().
		Background(lipgloss.Color("235")).
		Width(width).
		Render(line)
}
