package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// AppConfig — корневая структура конфигурации.
// Она зеркалит структуру config.yaml.
type AppConfig struct {
	API APIConfig   `yaml:"api"`
	App AppSpecific `yaml:"app"`
}

// APIConfig — настройки backend'а верификации новостей.
type APIConfig struct {
	BaseURL    string `yaml:"base_url"`   // Базовый URL сервиса (поддерживает ${VAR})
	Timeout    string `yaml:"timeout"`    // Timeout для HTTP запросов (например, "30s")
	RateLimit  int    `yaml:"rate_limit"` // Запросов в минуту
	BurstLimit int    `yaml:"burst_limit"`
}

// GetDefaults возвращает дефолтные значения для незаполненных полей.
func (c *APIConfig) GetDefaults() APIConfig {
	result := *c // Копируем текущие значения

	if result.BaseURL == "" {
		result.BaseURL = "http://127.0.0.1:8000"
	}
	if result.Timeout == "" {
		result.Timeout = "30s"
	}
	if result.RateLimit == 0 {
		result.RateLimit = 60 // запросов в минуту
	}
	if result.BurstLimit == 0 {
		result.BurstLimit = 5
	}

	return result
}

// AppSpecific — общие настройки приложения.
type AppSpecific struct {
	Debug         bool `yaml:"debug"`
	DefaultUserID int  `yaml:"default_user_id"` // Предзаполнение поля User ID (0 = пусто)
}

// Load читает YAML файл, подставляет ENV переменные и возвращает готовую структуру.
func Load(path string) (*AppConfig, error) {
	// 1. Проверяем существование файла
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found at: %s", path)
	}

	// 2. Читаем файл целиком
	rawBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// 3. Подставляем переменные окружения.
	// os.ExpandEnv заменяет ${VAR} или $VAR на значение из системы.
	contentWithEnv := os.ExpandEnv(string(rawBytes))

	// 4. Парсим YAML в структуру
	var cfg AppConfig
	if err := yaml.Unmarshal([]byte(contentWithEnv), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}

	// 5. Валидируем критические настройки
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Default возвращает конфигурацию целиком из дефолтов.
//
// Клиент должен запускаться и без config.yaml — у всех параметров
// есть рабочие значения по умолчанию.
func Default() *AppConfig {
	api := APIConfig{}
	return &AppConfig{API: api.GetDefaults()}
}

// validate проверяет обязательные поля.
func (c *AppConfig) validate() error {
	api := c.API.GetDefaults()
	if _, err := time.ParseDuration(api.Timeout); err != nil {
		return fmt.Errorf("invalid api.timeout format: %w", err)
	}
	if c.App.DefaultUserID < 0 {
		return fmt.Errorf("app.default_user_id must not be negative")
	}
	return nil
}
