// Package verify provides a client for the news verification backend.
//
// This is a thin API client, not an SDK with workarounds: the backend
// owns all the heavy lifting (search, summarization, verdicts), the
// client only ships JSON over HTTP and classifies failures.
//
// Design notes:
//   - HTTP client behind the HTTPClient interface for testability
//   - Per-endpoint rate limiting via golang.org/x/time/rate
//   - No retries: every workflow issues exactly one request and the
//     UI layer reports the outcome; a re-trigger is a user action
package verify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/altpoint/newscope/pkg/config"
	"golang.org/x/time/rate"
)

// ErrorType представляет тип ошибки при обращении к backend'у.
type ErrorType int

const (
	ErrUnknown ErrorType = iota
	ErrTimeout
	ErrNetwork
	ErrServer
)

// String возвращает строковое представление типа ошибки.
func (e ErrorType) String() string {
	switch e {
	case ErrTimeout:
		return "timeout"
	case ErrNetwork:
		return "network_error"
	case ErrServer:
		return "server_error"
	default:
		return "unknown"
	}
}

// HTTPClient интерфейс для выполнения HTTP запросов.
//
// Позволяет мокировать HTTP клиент в тестах.
// Стандартный *http.Client реализует этот интерфейс.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client — клиент backend'а верификации новостей.
type Client struct {
	baseURL    string
	httpClient HTTPClient

	rateLimit int // запросов в минуту, на endpoint
	burst     int

	mu       sync.RWMutex
	limiters map[string]*rate.Limiter // endpoint ID → limiter
}

// NewFromConfig создает новый клиент из конфигурации.
//
// Поля с нулевыми значениями берут дефолты через GetDefaults().
func NewFromConfig(cfg config.APIConfig) (*Client, error) {
	cfg = cfg.GetDefaults()

	timeout, err := time.ParseDuration(cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid api.timeout format: %w", err)
	}

	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid api.base_url: %w", err)
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		rateLimit: cfg.RateLimit,
		burst:     cfg.BurstLimit,
		limiters:  make(map[string]*rate.Limiter),
	}, nil
}

// SetHTTPClient подменяет транспорт (для тестов).
func (c *Client) SetHTTPClient(hc HTTPClient) {
	c.httpClient = hc
}

// ClassifyError классифицирует ошибку по типу для лучшей диагностики.
//
// Статусная строка UI при любом типе остается generic — классификация
// нужна только для логов.
func (c *Client) ClassifyError(err error) ErrorType {
	if err == nil {
		return ErrUnknown
	}

	errMsg := strings.ToLower(err.Error())

	if strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "deadline exceeded") {
		return ErrTimeout
	}

	if strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "no such host") {
		return ErrNetwork
	}

	if strings.Contains(errMsg, "unexpected status") {
		return ErrServer
	}

	return ErrUnknown
}

// doRequest выполняет один HTTP запрос с rate limiting и разбирает JSON ответ.
//
// Любой не-2xx статус — одна общая ошибка, без разбора кодов.
// dest может быть nil если тело ответа не нужно.
func (c *Client) doRequest(ctx context.Context, endpointID, method, rawURL string, body io.Reader, dest interface{}) error {
	limiter := c.getOrCreateLimiter(endpointID)
	if err := limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(respBody))
	}

	if dest == nil {
		return nil
	}

	if err := json.Unmarshal(respBody, dest); err != nil {
		return fmt.Errorf("unmarshal error: %w", err)
	}

	return nil
}

// postJSON сериализует body в JSON и выполняет POST запрос.
func (c *Client) postJSON(ctx context.Context, endpointID, path string, body interface{}, dest interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}
	return c.doRequest(ctx, endpointID, http.MethodPost, c.baseURL+path, bytes.NewReader(payload), dest)
}

// getOrCreateLimiter возвращает существующий limiter для endpoint или создаёт новый.
func (c *Client) getOrCreateLimiter(endpointID string) *rate.Limiter {
	c.mu.RLock()
	limiter, exists := c.limiters[endpointID]
	c.mu.RUnlock()
	if exists {
		return limiter
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if limiter, exists := c.limiters[endpointID]; exists {
		return limiter
	}

	// rateLimit в запросах/минуту → rate.Limit в запросах/секунду
	ratePerSec := float64(c.rateLimit) / 60.0
	limiter = rate.NewLimiter(rate.Limit(ratePerSec), c.burst)
	c.limiters[endpointID] = limiter

	return limiter
}

// nullable возвращает nil для пустой строки, иначе указатель на неё.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// QueryNews запрашивает проверенные статьи по теме.
//
// userID может быть nil — поиск доступен и анонимно.
func (c *Client) QueryNews(ctx context.Context, userID *int, query string) (*QueryResponse, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("query is required")
	}

	var resp QueryResponse
	err := c.postJSON(ctx, "news_query", "/api/news/query", queryRequest{
		UserID: userID,
		Query:  query,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// CheckNews отправляет пользовательскую новость на проверку реалистичности.
//
// Хотя бы одно из title/url/text должно быть непустым.
// Пустые поля уходят на сервер как null.
func (c *Client) CheckNews(ctx context.Context, userID *int, title, url, text string) (*CheckResponse, error) {
	if title == "" && url == "" && text == "" {
		return nil, fmt.Errorf("at least one of title, url or text is required")
	}

	var resp CheckResponse
	err := c.postJSON(ctx, "news_check", "/api/news/check", checkRequest{
		UserID: userID,
		Title:  nullable(title),
		URL:    nullable(url),
		Text:   nullable(text),
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// History загружает историю запросов пользователя.
func (c *Client) History(ctx context.Context, userID int) ([]HistoryItem, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("userID must be positive")
	}

	var items []HistoryItem
	rawURL := fmt.Sprintf("%s/api/history/%d", c.baseURL, userID)
	if err := c.doRequest(ctx, "history_load", http.MethodGet, rawURL, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteHistoryItem удаляет запись истории по ID.
//
// Не-"success" статус в теле ответа — не транспортная ошибка:
// вызывающий решает что показать пользователю (resp.Message).
func (c *Client) DeleteHistoryItem(ctx context.Context, id int64) (*DeleteResponse, error) {
	var resp DeleteResponse
	rawURL := fmt.Sprintf("%s/api/history/delete/%d", c.baseURL, id)
	if err := c.doRequest(ctx, "history_delete", http.MethodDelete, rawURL, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateUser создает нового пользователя и возвращает его ID.
func (c *Client) CreateUser(ctx context.Context, name string) (int, error) {
	if name == "" {
		return 0, fmt.Errorf("name is required")
	}

	var resp createUserResponse
	rawURL := fmt.Sprintf("%s/api/users/create?name=%s", c.baseURL, url.QueryEscape(name))
	if err := c.doRequest(ctx, "users_create", http.MethodPost, rawURL, nil, &resp); err != nil {
		return 0, err
	}
	return resp.UserID, nil
}
