// Package ui реализует Model компонент Bubble Tea TUI.
//
// Три вкладки — Search / Check news / History — поверх одного общего
// user bar'а. Каждая вкладка владеет своим статусным слотом и своим
// результатом, поэтому одновременные запросы друг другу не мешают.
package ui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/altpoint/newscope/internal/app"
	"github.com/altpoint/newscope/pkg/verify"
)

// viewID — идентификатор вкладки. Ровно одна активна в любой момент.
type viewID int

const (
	viewSearch viewID = iota
	viewCheck
	viewHistory
)

// viewOrder задает порядок вкладок для Ctrl+T / Ctrl+B.
var viewOrder = []viewID{viewSearch, viewCheck, viewHistory}

func (v viewID) String() string {
	switch v {
	case viewSearch:
		return "Search"
	case viewCheck:
		return "Check news"
	case viewHistory:
		return "History"
	default:
		return "?"
	}
}

// status — транзиентное статусное сообщение одного региона.
// Каждое следующее сообщение перезаписывает предыдущее, очереди нет.
type status struct {
	text    string
	isError bool
}

// render возвращает стилизованный текст статуса.
func (s status) render() string {
	if s.text == "" {
		return ""
	}
	if s.isError {
		return statusErrorStyle(s.text)
	}
	return statusNeutralStyle(s.text)
}

// pendingDelete — запись, ожидающая подтверждения удаления (y/n).
type pendingDelete struct {
	id int64
}

// MainModel — корневая модель TUI.
type MainModel struct {
	state *app.AppState
	keys  KeyMap
	help  help.Model
	bar   statusBar

	activeView viewID
	width      int
	height     int
	ready      bool
	showHelp   bool
	debug      bool

	// Поля ввода. userIDInput общий для всех вкладок (user bar).
	userIDInput textinput.Model
	topicInput  textinput.Model
	titleInput  textinput.Model
	urlInput    textinput.Model
	textInput   textarea.Model
	focus       int // Индекс в фокус-кольце активной вкладки; 0 — userIDInput

	viewport viewport.Model

	// Статусные регионы: по одному на workflow.
	// История и создание пользователя делят user bar (как и браузерный
	// прототип делил один статус под полем User ID).
	searchStatus  status
	checkStatus   status
	userBarStatus status

	// Результаты поиска
	searchSummary string
	articles      []verify.Article
	searchLoaded  bool

	// Результат проверки
	verdict      *verify.Verdict
	checkSummary string
	checkLoaded  bool

	// История
	history       []verify.HistoryItem
	historyLoaded bool
	historyFailed bool
	selected      int
	confirm       *pendingDelete
}

// NewMainModel создает корневую модель.
func NewMainModel(state *app.AppState) MainModel {
	userID := textinput.New()
	userID.Placeholder = "user id"
	userID.CharLimit = 12
	userID.Width = 14
	if state.Config.App.DefaultUserID > 0 {
		userID.SetValue(strconv.Itoa(state.Config.App.DefaultUserID))
	}

	topic := textinput.New()
	topic.Placeholder = "topic, e.g. climate policy"
	topic.CharLimit = 200
	topic.Focus()

	title := textinput.New()
	title.Placeholder = "headline (optional)"
	title.CharLimit = 300

	url := textinput.New()
	url.Placeholder = "url (optional)"
	url.CharLimit = 500

	text := textarea.New()
	text.Placeholder = "paste news text (optional)"
	text.SetHeight(3)
	text.ShowLineNumbers = false

	return MainModel{
		state:       state,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		bar:         newStatusBar(),
		activeView:  viewSearch,
		userIDInput: userID,
		topicInput:  topic,
		titleInput:  title,
		urlInput:    url,
		textInput:   text,
		focus:       1, // Топик, не user id
		viewport:    viewport.New(0, 0),
		debug:       state.Config.App.Debug,
	}
}

// Init реализует tea.Model интерфейс.
func (m MainModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.bar.Tick())
}

// focusCount возвращает размер фокус-кольца активной вкладки.
func (m MainModel) focusCount() int {
	switch m.activeView {
	case viewCheck:
		return 4 // userID, title, url, text
	case viewHistory:
		return 1 // только userID
	default:
		return 2 // userID, topic
	}
}

// applyFocus снимает фокус со всех полей и ставит на текущее.
func (m *MainModel) applyFocus() {
	m.userIDInput.Blur()
	m.topicInput.Blur()
	m.titleInput.Blur()
	m.urlInput.Blur()
	m.textInput.Blur()

	if m.focus == 0 {
		m.userIDInput.Focus()
		return
	}

	switch m.activeView {
	case viewSearch:
		m.topicInput.Focus()
	case viewCheck:
		switch m.focus {
		case 1:
			m.titleInput.Focus()
		case 2:
			m.urlInput.Focus()
		case 3:
			m.textInput.Focus()
		}
	}
}

// currentUserID парсит поле User ID; невалидный ввод → nil.
func (m MainModel) currentUserID() *int {
	return app.ParseUserID(m.userIDInput.Value())
}

// saveSuccessMsg — сообщение об успешном сохранении вида в файл.
type saveSuccessMsg struct {
	filename string
}

// saveErrorMsg — сообщение об ошибке сохранения.
type saveErrorMsg struct {
	err error
}

// Ensure MainModel implements tea.Model
var _ tea.Model = MainModel{}
