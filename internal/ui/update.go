// Логика - обрабатывает нажатия клавиш и результаты workflow'ов.
//
// Каждый сетевой вызов уходит как tea.Cmd и возвращается отдельным
// result-сообщением: пока запрос в полете, loop продолжает обслуживать
// ввод. In-flight guard'а нет — повторный запуск workflow'а разрешен,
// финальное состояние определяет порядок завершения.
package ui

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/altpoint/newscope/internal/app"
	"github.com/altpoint/newscope/pkg/utils"
)

// Generic-тексты ошибок. Любой транспортный сбой и любой не-2xx
// статус сервера схлопываются в один и тот же текст на workflow.
const (
	genericErrText      = "Something went wrong. Please try again."
	historyErrText      = "Error loading history."
	deleteErrText       = "Error deleting item."
	createUserErrText   = "Error creating user."
	confirmDeletePrompt = "Delete this history item? (y/n)"
)

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		m.refreshViewport()
		return m, nil

	case spinner.TickMsg:
		m.bar.busy = m.state.IsBusy()
		var cmd tea.Cmd
		m.bar, cmd = m.bar.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.debug {
			utils.Debug("key pressed", "key", msg.String(), "view", m.activeView.String())
		}
		return m.handleKey(msg)

	case app.SearchResultMsg:
		m = m.applySearchResult(msg)
		return m, nil

	case app.CheckResultMsg:
		m = m.applyCheckResult(msg)
		return m, nil

	case app.HistoryResultMsg:
		m = m.applyHistoryResult(msg)
		return m, nil

	case app.DeleteResultMsg:
		m = m.applyDeleteResult(msg)
		return m, nil

	case app.CreateUserResultMsg:
		m = m.applyCreateUserResult(msg)
		return m, nil

	case saveSuccessMsg:
		m.userBarStatus = status{text: fmt.Sprintf("Saved to %s", msg.filename)}
		return m, nil

	case saveErrorMsg:
		m.userBarStatus = status{text: fmt.Sprintf("Failed to save: %v", msg.err), isError: true}
		return m, nil

	default:
		// Блинк курсора и прочие служебные сообщения компонентов
		return m.updateInputs(msg)
	}
}

// handleKey обрабатывает нажатия клавиш.
func (m MainModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Модальное подтверждение удаления перехватывает весь ввод
	if m.confirm != nil {
		switch msg.String() {
		case "y", "Y":
			id := m.confirm.id
			m.confirm = nil
			m.state.RequestStarted()
			return m, app.DeleteHistoryItem(m.state, id)
		case "n", "N", "esc":
			m.confirm = nil
			return m, nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.ToggleHelp):
		m.showHelp = !m.showHelp
		m.resize()
		return m, nil

	case key.Matches(msg, m.keys.NextView):
		return m.switchView(1)

	case key.Matches(msg, m.keys.PrevView):
		return m.switchView(-1)

	case key.Matches(msg, m.keys.NextField):
		m.focus = (m.focus + 1) % m.focusCount()
		m.applyFocus()
		return m, nil

	case key.Matches(msg, m.keys.CreateUser):
		return m.startCreateUser()

	case key.Matches(msg, m.keys.DeleteItem):
		if m.activeView == viewHistory && m.historyLoaded && !m.historyFailed &&
			m.selected >= 0 && m.selected < len(m.history) {
			m.confirm = &pendingDelete{id: m.history[m.selected].ID}
		}
		return m, nil

	case key.Matches(msg, m.keys.ScrollUp):
		m.viewport.LineUp(3)
		return m, nil

	case key.Matches(msg, m.keys.ScrollDown):
		m.viewport.LineDown(3)
		return m, nil

	case key.Matches(msg, m.keys.SaveToFile):
		return m, m.saveViewToFile()

	case key.Matches(msg, m.keys.ToggleDebug):
		m.debug = !m.debug
		m.bar.debug = m.debug
		utils.Info("debug toggled", "enabled", m.debug)
		return m, nil

	case key.Matches(msg, m.keys.ConfirmInput):
		return m.submitActiveView()
	}

	// Выбор карточки истории стрелками (текстовых полей со стрелочной
	// навигацией на этой вкладке нет)
	if m.activeView == viewHistory && len(m.history) > 0 {
		switch msg.String() {
		case "up":
			if m.selected > 0 {
				m.selected--
				m.refreshViewport()
			}
			return m, nil
		case "down":
			if m.selected < len(m.history)-1 {
				m.selected++
				m.refreshViewport()
			}
			return m, nil
		}
	}

	// Остальное — ввод текста в сфокусированное поле
	return m.updateInputs(msg)
}

// updateInputs пробрасывает сообщение в поля ввода.
//
// Каждый компонент сам игнорирует ввод без фокуса, поэтому
// пробрасываем во все.
func (m MainModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.userIDInput, cmd = m.userIDInput.Update(msg)
	cmds = append(cmds, cmd)
	m.topicInput, cmd = m.topicInput.Update(msg)
	cmds = append(cmds, cmd)
	m.titleInput, cmd = m.titleInput.Update(msg)
	cmds = append(cmds, cmd)
	m.urlInput, cmd = m.urlInput.Update(msg)
	cmds = append(cmds, cmd)
	m.textInput, cmd = m.textInput.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// switchView переключает активную вкладку на delta позиций.
//
// Переключение на History всегда перезапрашивает историю — вкладка
// не кэшируется.
func (m MainModel) switchView(delta int) (tea.Model, tea.Cmd) {
	idx := int(m.activeView)
	idx = (idx + delta + len(viewOrder)) % len(viewOrder)
	m.activeView = viewOrder[idx]

	if m.activeView == viewHistory {
		m.focus = 0
	} else {
		m.focus = 1
	}
	m.applyFocus()
	m.resize()
	m.refreshViewport()

	if m.activeView == viewHistory {
		var cmd tea.Cmd
		m, cmd = m.startHistoryLoad()
		return m, cmd
	}
	return m, nil
}

// submitActiveView запускает workflow активной вкладки по Enter.
func (m MainModel) submitActiveView() (tea.Model, tea.Cmd) {
	switch m.activeView {
	case viewSearch:
		return m.startSearch()
	case viewCheck:
		return m.startCheck()
	case viewHistory:
		var cmd tea.Cmd
		m, cmd = m.startHistoryLoad()
		return m, cmd
	}
	return m, nil
}

// startSearch — workflow "поиск проверенных новостей".
func (m MainModel) startSearch() (tea.Model, tea.Cmd) {
	query := strings.TrimSpace(m.topicInput.Value())
	if query == "" {
		m.searchStatus = status{text: "Please enter a topic first.", isError: true}
		return m, nil
	}

	m.searchStatus = status{text: "Fetching and verifying news..."}
	m.searchLoaded = false // Секция результата скрыта пока запрос в полете
	m.refreshViewport()

	m.state.RequestStarted()
	return m, app.SearchNews(m.state, m.currentUserID(), query)
}

// startCheck — workflow "проверка пользовательской новости".
func (m MainModel) startCheck() (tea.Model, tea.Cmd) {
	title := strings.TrimSpace(m.titleInput.Value())
	url := strings.TrimSpace(m.urlInput.Value())
	text := strings.TrimSpace(m.textInput.Value())

	if title == "" && url == "" && text == "" {
		m.checkStatus = status{text: "Provide at least a URL, headline, or text.", isError: true}
		return m, nil
	}

	m.checkStatus = status{text: "Checking realism..."}
	m.checkLoaded = false
	m.refreshViewport()

	m.state.RequestStarted()
	return m, app.CheckNews(m.state, m.currentUserID(), title, url, text)
}

// startHistoryLoad — workflow "загрузка истории".
//
// Единственный workflow с обязательным пользователем: без валидного
// положительного ID запрос не уходит вовсе.
func (m MainModel) startHistoryLoad() (MainModel, tea.Cmd) {
	uid := m.currentUserID()
	if uid == nil || *uid <= 0 {
		m.userBarStatus = status{text: "Enter a valid User ID to load history.", isError: true}
		return m, nil
	}

	m.userBarStatus = status{text: "Loading history..."}
	m.history = nil
	m.historyLoaded = false
	m.historyFailed = false
	m.selected = 0
	m.refreshViewport()

	m.state.RequestStarted()
	return m, app.LoadHistory(m.state, *uid)
}

// startCreateUser — workflow "создание пользователя".
//
// Имя генерируется на клиенте; перезагрузку истории этот workflow
// не запускает.
func (m MainModel) startCreateUser() (tea.Model, tea.Cmd) {
	m.userBarStatus = status{text: "Creating user..."}
	m.state.RequestStarted()
	return m, app.CreateUser(m.state, app.GenerateUserName())
}

// applySearchResult применяет результат поиска.
func (m MainModel) applySearchResult(msg app.SearchResultMsg) MainModel {
	if msg.Err != nil {
		m.searchStatus = status{text: genericErrText, isError: true}
		m.searchLoaded = false
		m.refreshViewport()
		return m
	}

	m.searchSummary = msg.Resp.Summary
	m.articles = msg.Resp.Articles
	m.searchLoaded = true

	if len(m.articles) > 0 {
		m.searchStatus = status{text: "Done. Showing trusted, summarized news."}
	} else {
		// Пустой список — нейтральный статус, не ошибка
		m.searchStatus = status{text: "No high-confidence trusted news found for this topic."}
	}

	m.refreshViewport()
	return m
}

// applyCheckResult применяет результат проверки.
func (m MainModel) applyCheckResult(msg app.CheckResultMsg) MainModel {
	if msg.Err != nil {
		m.checkStatus = status{text: genericErrText, isError: true}
		m.checkLoaded = false
		m.refreshViewport()
		return m
	}

	m.verdict = msg.Resp.Verdict
	m.checkSummary = msg.Resp.Summary
	m.checkLoaded = true
	m.checkStatus = status{text: "Verdict generated."}

	m.refreshViewport()
	return m
}

// applyHistoryResult применяет результат загрузки истории.
func (m MainModel) applyHistoryResult(msg app.HistoryResultMsg) MainModel {
	m.historyLoaded = true

	if msg.Err != nil {
		m.historyFailed = true
		m.userBarStatus = status{text: historyErrText, isError: true}
		m.refreshViewport()
		return m
	}

	m.historyFailed = false
	m.history = msg.Items
	m.selected = 0

	if len(m.history) == 0 {
		m.userBarStatus = status{text: "No history found."}
	} else {
		m.userBarStatus = status{text: "History loaded."}
	}

	m.refreshViewport()
	return m
}

// applyDeleteResult применяет результат удаления записи истории.
//
// Успех убирает ровно одну карточку из списка без перезагрузки;
// любой другой исход список не трогает.
func (m MainModel) applyDeleteResult(msg app.DeleteResultMsg) MainModel {
	if msg.Err != nil {
		m.userBarStatus = status{text: deleteErrText, isError: true}
		return m
	}

	if msg.Resp.Status != "success" {
		reason := msg.Resp.Message
		if reason == "" {
			reason = "request rejected"
		}
		m.userBarStatus = status{text: "Delete failed: " + reason, isError: true}
		return m
	}

	for i, it := range m.history {
		if it.ID == msg.ID {
			m.history = append(m.history[:i], m.history[i+1:]...)
			break
		}
	}
	if m.selected >= len(m.history) && m.selected > 0 {
		m.selected = len(m.history) - 1
	}

	m.refreshViewport()
	return m
}

// applyCreateUserResult применяет результат создания пользователя.
func (m MainModel) applyCreateUserResult(msg app.CreateUserResultMsg) MainModel {
	if msg.Err != nil {
		m.userBarStatus = status{text: createUserErrText, isError: true}
		return m
	}

	// Единственное место где этот слой пишет в поле User ID.
	// История, захватившая старый ID до завершения create, долетит
	// со старыми данными — принятая гонка.
	m.userIDInput.SetValue(strconv.Itoa(msg.UserID))
	m.userBarStatus = status{text: fmt.Sprintf("User created! ID = %d", msg.UserID)}
	return m
}

// saveViewToFile сохраняет результаты активной вкладки в markdown файл.
func (m MainModel) saveViewToFile() tea.Cmd {
	content := m.viewport.View()
	view := strings.ToLower(strings.ReplaceAll(m.activeView.String(), " ", "-"))

	return func() tea.Msg {
		timestamp := time.Now().Format("20060102_150405")
		filename := fmt.Sprintf("newscope_%s_%s.md", view, timestamp)

		var b strings.Builder
		b.WriteString("# newscope — " + view + "\n\n")
		b.WriteString(fmt.Sprintf("**Generated:** %s\n\n---\n\n", time.Now().Format("2006-01-02 15:04:05")))
		b.WriteString(stripANSICodes(content))
		b.WriteString("\n")

		if err := os.WriteFile(filename, []byte(b.String()), 0644); err != nil {
			return saveErrorMsg{err: err}
		}
		return saveSuccessMsg{filename: filename}
	}
}

// stripANSICodes удаляет ANSI escape коды из строки.
func stripANSICodes(s string) string {
	result := strings.Builder{}
	i := 0
	for i < len(s) {
		if s[i] == 0x1B { // ESC символ
			i++
			for i < len(s) && (s[i] < '@' || s[i] > '~') {
				i++
			}
			if i < len(s) {
				i++
			}
		} else {
			result.WriteByte(s[i])
			i++
		}
	}
	return result.String()
}
