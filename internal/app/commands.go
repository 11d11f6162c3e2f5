// Асинхронные команды workflow'ов.
//
// Каждый workflow — одна tea.Cmd closure: один HTTP запрос, одно
// result-сообщение. Отмены и ретраев нет; результаты применяются
// в порядке завершения (последний победил).
package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/altpoint/newscope/pkg/utils"
	"github.com/altpoint/newscope/pkg/verify"
)

// SearchResultMsg — результат поиска проверенных новостей.
type SearchResultMsg struct {
	Resp *verify.QueryResponse
	Err  error
}

// CheckResultMsg — результат проверки пользовательской новости.
type CheckResultMsg struct {
	Resp *verify.CheckResponse
	Err  error
}

// HistoryResultMsg — результат загрузки истории.
type HistoryResultMsg struct {
	Items []verify.HistoryItem
	Err   error
}

// DeleteResultMsg — результат удаления записи истории.
type DeleteResultMsg struct {
	ID   int64
	Resp *verify.DeleteResponse
	Err  error
}

// CreateUserResultMsg — результат создания пользователя.
type CreateUserResultMsg struct {
	UserID int
	Err    error
}

// SearchNews возвращает команду поиска проверенных новостей по теме.
//
// userID может быть nil — анонимный поиск разрешен.
func SearchNews(state *AppState, userID *int, query string) tea.Cmd {
	return func() tea.Msg {
		defer state.RequestFinished()

		// Таймаут — только транспортный (http.Client); контекст без
		// дедлайна, этот слой дедлайнов не добавляет.
		resp, err := state.Client.QueryNews(context.Background(), userID, query)
		if err != nil {
			utils.Error("search failed", "query", query, "type", state.Client.ClassifyError(err), "err", err)
			return SearchResultMsg{Err: err}
		}

		utils.Info("search done", "query", query, "articles", len(resp.Articles))
		return SearchResultMsg{Resp: resp}
	}
}

// CheckNews возвращает команду проверки реалистичности новости.
func CheckNews(state *AppState, userID *int, title, url, text string) tea.Cmd {
	return func() tea.Msg {
		defer state.RequestFinished()

		resp, err := state.Client.CheckNews(context.Background(), userID, title, url, text)
		if err != nil {
			utils.Error("check failed", "type", state.Client.ClassifyError(err), "err", err)
			return CheckResultMsg{Err: err}
		}

		utils.Info("check done")
		return CheckResultMsg{Resp: resp}
	}
}

// LoadHistory возвращает команду загрузки истории пользователя.
//
// Precondition (положительный userID) проверяется в UI слое до
// вызова; сюда приходит уже валидный ID.
func LoadHistory(state *AppState, userID int) tea.Cmd {
	return func() tea.Msg {
		defer state.RequestFinished()

		items, err := state.Client.History(context.Background(), userID)
		if err != nil {
			utils.Error("history load failed", "user_id", userID, "type", state.Client.ClassifyError(err), "err", err)
			return HistoryResultMsg{Err: err}
		}

		utils.Info("history loaded", "user_id", userID, "items", len(items))
		return HistoryResultMsg{Items: items}
	}
}

// DeleteHistoryItem возвращает команду удаления записи истории.
func DeleteHistoryItem(state *AppState, id int64) tea.Cmd {
	return func() tea.Msg {
		defer state.RequestFinished()

		resp, err := state.Client.DeleteHistoryItem(context.Background(), id)
		if err != nil {
			utils.Error("history delete failed", "id", id, "err", err)
			return DeleteResultMsg{ID: id, Err: err}
		}

		utils.Info("history delete response", "id", id, "status", resp.Status)
		return DeleteResultMsg{ID: id, Resp: resp}
	}
}

// CreateUser возвращает команду создания нового пользователя.
func CreateUser(state *AppState, name string) tea.Cmd {
	return func() tea.Msg {
		defer state.RequestFinished()

		id, err := state.Client.CreateUser(context.Background(), name)
		if err != nil {
			utils.Error("create user failed", "name", name, "err", err)
			return CreateUserResultMsg{Err: err}
		}

		utils.Info("user created", "name", name, "user_id", id)
		return CreateUserResultMsg{UserID: id}
	}
}
