// Красота
package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Цвета
	primaryColor = lipgloss.Color("62")  // Фиолетовый
	grayColor    = lipgloss.Color("240")
	dimColor     = lipgloss.Color("245")

	// Стили хедера и вкладок
	activeTabStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(primaryColor).
		Padding(0, 1).
		Bold(true)

	inactiveTabStyle = lipgloss.NewStyle().
		Foreground(dimColor).
		Padding(0, 1)

	// Бейджи классификации: real / fake / uncertain
	badgeRealStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("28")). // Зеленый
		Padding(0, 1).
		Bold(true)

	badgeFakeStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("124")). // Красный
		Padding(0, 1).
		Bold(true)

	badgeUncertainStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("232")).
		Background(lipgloss.Color("178")). // Желтый
		Padding(0, 1).
		Bold(true)

	// Статусные сообщения
	statusNeutralStyle = lipgloss.NewStyle().
		Foreground(grayColor).
		Render

	statusErrorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("196")).
		Bold(true).
		Render

	// Элементы карточек
	cardTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Render

	linkStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("39")). // Голубой
		Underline(true).
		Render

	metaStyle = lipgloss.NewStyle().
		Foreground(dimColor).
		Render

	selectedMarkStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Render

	labelStyle = lipgloss.NewStyle().
		Foreground(grayColor).
		Render
)
