// Package app предоставляет состояние приложения и асинхронные
// команды workflow'ов поверх pkg/verify.
//
// Весь UI-специфичный код живет в internal/ui; здесь только состояние
// и бизнес-логика клиента.
package app

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/altpoint/newscope/pkg/config"
	"github.com/altpoint/newscope/pkg/verify"
)

// AppState представляет состояние приложения.
//
// Thread-safe: Update loop Bubble Tea однопоточный, но tea.Cmd
// closures читают состояние из других горутин.
type AppState struct {
	Config *config.AppConfig
	Client *verify.Client

	mu sync.RWMutex

	// pending — число запросов в полете (для спиннера).
	// Дубликаты не блокируются: workflow можно перезапустить до
	// завершения предыдущего, побеждает последний завершившийся.
	pending int
}

// NewAppState создает новое состояние приложения.
func NewAppState(cfg *config.AppConfig, client *verify.Client) *AppState {
	return &AppState{
		Config: cfg,
		Client: client,
	}
}

// RequestStarted увеличивает счетчик запросов в полете.
func (s *AppState) RequestStarted() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending++
}

// RequestFinished уменьшает счетчик запросов в полете.
func (s *AppState) RequestFinished() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending > 0 {
		s.pending--
	}
}

// IsBusy сообщает есть ли хотя бы один запрос в полете.
func (s *AppState) IsBusy() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pending > 0
}

// ParseUserID разбирает ввод поля User ID.
//
// Возвращает nil на пустой/нечисловой/дробный ввод — это "пользователь
// не выбран", не ошибка. Решение что делать с nil принимает workflow:
// поиск и проверка работают анонимно, история требует положительный ID.
func ParseUserID(input string) *int {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil
	}

	id, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil
	}
	return &id
}

// GenerateUserName генерирует отображаемое имя для нового пользователя.
//
// Имя производно от wall-clock времени; проверки уникальности на этом
// слое нет — при очень быстром повторном создании коллизия возможна.
func GenerateUserName() string {
	return fmt.Sprintf("User%d", time.Now().UnixMilli())
}
