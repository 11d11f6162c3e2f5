// Рендер
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m MainModel) View() string {
	if !m.ready {
		return "Initializing UI..."
	}

	var sections []string

	sections = append(sections, m.renderTabs())
	sections = append(sections, "User ID: "+m.userIDInput.View()+"   "+statusNeutralStyle("Ctrl+N creates a user"))
	sections = append(sections, m.userBarStatus.render())
	sections = append(sections, m.divider())
	sections = append(sections, m.renderForm())
	sections = append(sections, m.divider())
	sections = append(sections, m.viewport.View())

	if m.showHelp {
		sections = append(sections, m.help.View(m.keys))
	}

	sections = append(sections, m.bar.View(m.width, m.activeView.String()))

	return strings.Join(sections, "\n")
}

// renderTabs рендерит строку вкладок; активная подсвечена.
func (m MainModel) renderTabs() string {
	tabs := make([]string, 0, len(viewOrder))
	for _, v := range viewOrder {
		if v == m.activeView {
			tabs = append(tabs, activeTabStyle.Render(v.String()))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(v.String()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderForm рендерит область ввода активной вкладки.
func (m MainModel) renderForm() string {
	switch m.activeView {
	case viewSearch:
		return m.topicInput.View() + "\n" + m.searchStatus.render()

	case viewCheck:
		return m.titleInput.View() + "\n" +
			m.urlInput.View() + "\n" +
			m.textInput.View() + "\n" +
			m.checkStatus.render()

	case viewHistory:
		if m.confirm != nil {
			return statusErrorStyle(confirmDeletePrompt)
		}
		return statusNeutralStyle("Enter: reload  ↑/↓: select  Ctrl+X: delete")
	}
	return ""
}

// divider — горизонтальная разделительная линия на всю ширину.
func (m MainModel) divider() string {
	width := m.width
	if width <= 0 {
		width = 40
	}
	return lipgloss.NewStyle().
		Foreground(grayColor).
		Render(strings.Repeat("─", width))
}

// formHeight — сколько строк занимает область ввода активной вкладки.
func (m MainModel) formHeight() int {
	switch m.activeView {
	case viewCheck:
		return 6 // title + url + textarea(3) + статус
	case viewHistory:
		return 1
	default:
		return 2 // topic + статус
	}
}

// resize пересчитывает размеры viewport'а и полей ввода.
func (m *MainModel) resize() {
	// tabs + user bar + user bar status + 2 разделителя + статус бар
	reserved := 6 + m.formHeight()
	if m.showHelp {
		reserved += 3
	}

	vpHeight := m.height - reserved
	if vpHeight < 0 {
		vpHeight = 0
	}

	m.viewport.Width = m.width
	m.viewport.Height = vpHeight

	inputWidth := m.width - 4
	if inputWidth < 20 {
		inputWidth = 20
	}
	m.topicInput.Width = inputWidth
	m.titleInput.Width = inputWidth
	m.urlInput.Width = inputWidth
	m.textInput.SetWidth(inputWidth)
	m.help.Width = m.width
}

// refreshViewport пересобирает контент viewport'а из состояния
// активной вкладки. Полная замена, без инкрементальных диффов.
func (m *MainModel) refreshViewport() {
	width := m.viewport.Width - 2
	if width < 20 {
		width = 20
	}

	var content string
	switch m.activeView {
	case viewSearch:
		if m.searchLoaded {
			content = renderSearchResults(m.searchSummary, m.articles, width)
		}

	case viewCheck:
		if m.checkLoaded {
			content = renderVerdict(m.verdict, m.checkSummary, width)
		}

	case viewHistory:
		switch {
		case m.historyFailed:
			content = statusNeutralStyle("Could not load history.")
		case m.historyLoaded && len(m.history) == 0:
			content = statusNeutralStyle("No history yet for this user.")
		case m.historyLoaded:
			content = renderHistoryList(m.history, m.selected, width)
		}
	}

	m.viewport.SetContent(content)
	m.viewport.GotoTop()
}
