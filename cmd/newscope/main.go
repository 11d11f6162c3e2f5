// Newscope TUI
// Точка входа клиента проверки новостей
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/altpoint/newscope/internal/app"
	"github.com/altpoint/newscope/internal/ui"
	"github.com/altpoint/newscope/pkg/config"
	"github.com/altpoint/newscope/pkg/utils"
	"github.com/altpoint/newscope/pkg/verify"
)

const configPath = "config.yaml"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// .env опционален; переменные нужны только для ${...} подстановок
	// в config.yaml
	_ = godotenv.Load()

	// 0. Инициализируем логгер
	if err := utils.InitLogger(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logger: %v\n", err)
	}
	defer utils.Close()

	utils.Info("Application started")

	// 1. Загружаем конфигурацию; без файла работаем на дефолтах
	var cfg *config.AppConfig
	if _, statErr := os.Stat(configPath); statErr != nil {
		utils.Info("Config not found, using defaults", "path", configPath)
		cfg = config.Default()
	} else {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			utils.Error("Failed to load config", "path", configPath, "err", err)
			return err
		}
		utils.Info("Config loaded", "path", configPath, "base_url", cfg.API.BaseURL)
	}

	// 2. HTTP клиент backend'а
	client, err := verify.NewFromConfig(cfg.API)
	if err != nil {
		utils.Error("Failed to create API client", "err", err)
		return err
	}

	// 3. Состояние приложения
	state := app.NewAppState(cfg, client)

	// 4. Запускаем Bubble Tea программу
	utils.Info("Starting TUI", "base_url", cfg.API.BaseURL)

	p := tea.NewProgram(
		ui.NewMainModel(state),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		utils.Error("TUI exited with error", "err", err)
		return fmt.Errorf("tui error: %w", err)
	}

	utils.Info("Application stopped")
	return nil
}
