package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altpoint/newscope/internal/app"
	"github.com/altpoint/newscope/pkg/config"
	"github.com/altpoint/newscope/pkg/verify"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// newTestModel собирает модель без реального сервера: тесты ниже либо
// не доводят дело до сетевого вызова, либо не исполняют вернувшийся cmd.
func newTestModel() MainModel {
	cfg := config.Default()
	client, err := verify.NewFromConfig(cfg.API)
	if err != nil {
		panic(err)
	}
	state := app.NewAppState(cfg, client)

	m := NewMainModel(state)
	m.width = 100
	m.height = 40
	m.ready = true
	m.resize()
	return m
}

func TestStartHistoryLoad_RequiresValidUser(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty field", ""},
		{"non-numeric", "abc"},
		{"decimal", "12.5"},
		{"zero", "0"},
		{"negative", "-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel()
			m.userIDInput.SetValue(tt.input)

			m2, cmd := m.startHistoryLoad()

			assert.Nil(t, cmd, "no request may be issued without a valid user")
			assert.True(t, m2.userBarStatus.isError)
			assert.Contains(t, m2.userBarStatus.text, "User ID")
			assert.False(t, m2.state.IsBusy())
		})
	}
}

func TestStartHistoryLoad_ValidUser(t *testing.T) {
	m := newTestModel()
	m.userIDInput.SetValue("42")

	m2, cmd := m.startHistoryLoad()

	assert.NotNil(t, cmd)
	assert.False(t, m2.userBarStatus.isError)
	assert.Contains(t, m2.userBarStatus.text, "Loading history")
	assert.True(t, m2.state.IsBusy())
}

func TestStartSearch_EmptyTopic(t *testing.T) {
	m := newTestModel()
	m.topicInput.SetValue("   ")

	model, cmd := m.startSearch()
	m2 := model.(MainModel)

	assert.Nil(t, cmd)
	assert.True(t, m2.searchStatus.isError)
	assert.Contains(t, m2.searchStatus.text, "topic")
}

func TestStartCheck_AllFieldsEmpty(t *testing.T) {
	m := newTestModel()

	model, cmd := m.startCheck()
	m2 := model.(MainModel)

	assert.Nil(t, cmd)
	assert.True(t, m2.checkStatus.isError)
}

func TestStartCheck_SingleFieldSuffices(t *testing.T) {
	m := newTestModel()
	m.textInput.SetValue("some pasted article text")

	model, cmd := m.startCheck()
	m2 := model.(MainModel)

	assert.NotNil(t, cmd)
	assert.False(t, m2.checkStatus.isError)
	assert.Contains(t, m2.checkStatus.text, "Checking realism")
}

func TestApplySearchResult(t *testing.T) {
	t.Run("error collapses to generic text", func(t *testing.T) {
		m := newTestModel()
		m2 := m.applySearchResult(app.SearchResultMsg{Err: assert.AnError})

		assert.True(t, m2.searchStatus.isError)
		assert.Equal(t, genericErrText, m2.searchStatus.text)
		assert.False(t, m2.searchLoaded)
	})

	t.Run("empty list is a neutral status", func(t *testing.T) {
		m := newTestModel()
		m2 := m.applySearchResult(app.SearchResultMsg{Resp: &verify.QueryResponse{}})

		assert.False(t, m2.searchStatus.isError)
		assert.Contains(t, m2.searchStatus.text, "No high-confidence")
		assert.True(t, m2.searchLoaded)
	})

	t.Run("articles land in the model", func(t *testing.T) {
		m := newTestModel()
		m2 := m.applySearchResult(app.SearchResultMsg{Resp: &verify.QueryResponse{
			Summary:  "overall",
			Articles: []verify.Article{{Title: "X", Label: "real"}},
		}})

		assert.Equal(t, "overall", m2.searchSummary)
		require.Len(t, m2.articles, 1)
		assert.Contains(t, m2.searchStatus.text, "trusted, summarized news")
	})
}

func TestApplyHistoryResult_Error(t *testing.T) {
	m := newTestModel()
	m2 := m.applyHistoryResult(app.HistoryResultMsg{Err: assert.AnError})

	assert.True(t, m2.historyLoaded)
	assert.True(t, m2.historyFailed)
	assert.Equal(t, historyErrText, m2.userBarStatus.text)
}

func TestApplyDeleteResult(t *testing.T) {
	seed := func() MainModel {
		m := newTestModel()
		m.history = []verify.HistoryItem{{ID: 1}, {ID: 2}, {ID: 3}}
		m.historyLoaded = true
		m.selected = 2
		return m
	}

	t.Run("success removes exactly the confirmed card", func(t *testing.T) {
		m := seed()
		m2 := m.applyDeleteResult(app.DeleteResultMsg{
			ID:   2,
			Resp: &verify.DeleteResponse{Status: "success"},
		})

		require.Len(t, m2.history, 2)
		assert.Equal(t, int64(1), m2.history[0].ID)
		assert.Equal(t, int64(3), m2.history[1].ID)
		// Выделение не выходит за пределы укоротившегося списка
		assert.Equal(t, 1, m2.selected)
	})

	t.Run("non-success leaves the list untouched", func(t *testing.T) {
		m := seed()
		m2 := m.applyDeleteResult(app.DeleteResultMsg{
			ID:   2,
			Resp: &verify.DeleteResponse{Status: "error", Message: "item not found"},
		})

		assert.Len(t, m2.history, 3)
		assert.True(t, m2.userBarStatus.isError)
		assert.Contains(t, m2.userBarStatus.text, "item not found")
	})

	t.Run("transport error leaves the list untouched", func(t *testing.T) {
		m := seed()
		m2 := m.applyDeleteResult(app.DeleteResultMsg{ID: 2, Err: assert.AnError})

		assert.Len(t, m2.history, 3)
		assert.Equal(t, deleteErrText, m2.userBarStatus.text)
	})
}

func TestApplyCreateUserResult(t *testing.T) {
	t.Run("success fills the user field", func(t *testing.T) {
		m := newTestModel()
		m.userIDInput.SetValue("")

		m2 := m.applyCreateUserResult(app.CreateUserResultMsg{UserID: 7})

		assert.Equal(t, "7", m2.userIDInput.Value())
		assert.Contains(t, m2.userBarStatus.text, "7")
		assert.False(t, m2.userBarStatus.isError)
	})

	t.Run("error keeps the field as typed", func(t *testing.T) {
		m := newTestModel()
		m.userIDInput.SetValue("42")

		m2 := m.applyCreateUserResult(app.CreateUserResultMsg{Err: assert.AnError})

		assert.Equal(t, "42", m2.userIDInput.Value())
		assert.Equal(t, createUserErrText, m2.userBarStatus.text)
	})
}

func TestSwitchView(t *testing.T) {
	t.Run("cycles forward and wraps", func(t *testing.T) {
		m := newTestModel()
		assert.Equal(t, viewSearch, m.activeView)

		model, _ := m.switchView(1)
		m = model.(MainModel)
		assert.Equal(t, viewCheck, m.activeView)

		model, _ = m.switchView(1)
		m = model.(MainModel)
		assert.Equal(t, viewHistory, m.activeView)

		model, _ = m.switchView(1)
		m = model.(MainModel)
		assert.Equal(t, viewSearch, m.activeView)
	})

	t.Run("cycles backward from the first tab", func(t *testing.T) {
		m := newTestModel()
		model, _ := m.switchView(-1)
		m = model.(MainModel)
		assert.Equal(t, viewHistory, m.activeView)
	})

	t.Run("entering history reloads it for a valid user", func(t *testing.T) {
		m := newTestModel()
		m.userIDInput.SetValue("42")
		m.activeView = viewCheck

		model, cmd := m.switchView(1)
		m = model.(MainModel)

		assert.Equal(t, viewHistory, m.activeView)
		assert.NotNil(t, cmd)
	})

	t.Run("entering history without a user issues no request", func(t *testing.T) {
		m := newTestModel()
		m.activeView = viewCheck

		model, cmd := m.switchView(1)
		m = model.(MainModel)

		assert.Equal(t, viewHistory, m.activeView)
		assert.Nil(t, cmd)
		assert.True(t, m.userBarStatus.isError)
	})
}

func TestDeleteConfirmFlow(t *testing.T) {
	m := newTestModel()
	m.activeView = viewHistory
	m.historyLoaded = true
	m.history = []verify.HistoryItem{{ID: 9}}
	m.selected = 0
	m.confirm = &pendingDelete{id: 9}

	t.Run("n cancels without a request", func(t *testing.T) {
		model, cmd := m.handleKey(keyMsg("n"))
		m2 := model.(MainModel)

		assert.Nil(t, cmd)
		assert.Nil(t, m2.confirm)
		assert.Len(t, m2.history, 1)
	})

	t.Run("y issues the delete command", func(t *testing.T) {
		model, cmd := m.handleKey(keyMsg("y"))
		m2 := model.(MainModel)

		assert.NotNil(t, cmd)
		assert.Nil(t, m2.confirm)
		assert.True(t, m2.state.IsBusy())
	})
}

func TestStripANSICodes(t *testing.T) {
	in := "\x1b[1mBold\x1b[0m plain \x1b[38;5;28mgreen\x1b[0m"
	assert.Equal(t, "Bold plain green", stripANSICodes(in))
}
