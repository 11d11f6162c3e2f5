// Рендер сущностей в текст карточек.
//
// Все функции здесь чистые: payload + ширина → строка. Применение к
// экрану (viewport) — отдельный тонкий шаг в view.go, поэтому
// правила рендеринга тестируются без терминала.
//
// Каждое поле payload'а опционально с точки зрения клиента —
// отсутствие чего угодно деградирует в placeholder, никогда в панику.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/muesli/reflow/wordwrap"

	"github.com/altpoint/newscope/pkg/verify"
)

const (
	// Лимит длины summary в карточке истории (+ многоточие при обрезке).
	summaryLimit = 220

	untitledArticle  = "Untitled article"
	noTitlePlacehold = "(no title / topic stored)"
	noSummaryText    = "No summary available."
	noCheckSummary   = "No summary generated for this news."
)

// istZone — фиксированная таймзона для отображения дат истории.
// Презентация дат — внешний контракт, не зависящий от локали терминала.
var istZone = time.FixedZone("IST", 5*3600+30*60)

// badgeClass — трёхзначная классификация бейджа.
//
// Всё что не "real" и не "fake" (включая пустую строку и любые
// нераспознанные значения) — "uncertain".
func badgeClass(label string) string {
	switch label {
	case "real":
		return "real"
	case "fake":
		return "fake"
	default:
		return "uncertain"
	}
}

// renderBadge рендерит бейдж для label.
//
// Текст бейджа — label в верхнем регистре; при пустом label берется
// fallback. Стиль всегда определяется классификацией badgeClass.
func renderBadge(label, fallback string) string {
	text := label
	if text == "" {
		text = fallback
	}
	text = strings.ToUpper(text)

	switch badgeClass(label) {
	case "real":
		return badgeRealStyle.Render(text)
	case "fake":
		return badgeFakeStyle.Render(text)
	default:
		return badgeUncertainStyle.Render(text)
	}
}

// formatConfidence форматирует долю [0,1] как процент с одним знаком.
func formatConfidence(c float64) string {
	return fmt.Sprintf("%.1f%%", c*100)
}

// formatVerdictConfidence — как formatConfidence, но nil → "N/A".
func formatVerdictConfidence(c *float64) string {
	if c == nil {
		return "N/A"
	}
	return formatConfidence(*c)
}

// truncateSummary обрезает summary до лимита.
//
// Многоточие добавляется только если обрезка реально произошла.
// Считаем руны, не байты.
func truncateSummary(s string) string {
	runes := []rune(s)
	if len(runes) <= summaryLimit {
		return s
	}
	return string(runes[:summaryLimit]) + "..."
}

// formatCreatedAt форматирует серверный timestamp в фиксированную
// презентацию: день, сокращенный месяц, год, 12-часовое время.
//
// Формат серверной метки не контрактный, поэтому парсим лояльно
// через dateparse. Пустая или неразбираемая метка → "" (строка даты
// опускается целиком).
func formatCreatedAt(raw string) string {
	if raw == "" {
		return ""
	}

	t, err := dateparse.ParseAny(raw)
	if err != nil {
		return ""
	}

	return t.In(istZone).Format("02 Jan 2006, 03:04 pm")
}

// renderArticleCard рендерит карточку одной статьи.
func renderArticleCard(a verify.Article, width int) string {
	var b strings.Builder

	b.WriteString(renderBadge(a.Label, "uncertain"))
	b.WriteString("\n")

	title := a.Title
	if title == "" {
		title = untitledArticle
	}
	b.WriteString(cardTitleStyle(wordwrap.String(title, width)))
	b.WriteString("\n")

	// Ссылка опускается целиком если URL нет; текст ссылки
	// предпочитает source_domain голому URL.
	if a.URL != "" {
		display := a.SourceDomain
		if display == "" {
			display = a.URL
		}
		b.WriteString(linkStyle(display))
		b.WriteString("\n")
	}

	b.WriteString(labelStyle("Confidence: ") + formatConfidence(a.Confidence))

	return b.String()
}

// renderSearchResults рендерит summary и список карточек статей.
func renderSearchResults(summary string, articles []verify.Article, width int) string {
	var sections []string

	if summary == "" {
		summary = noSummaryText
	}
	sections = append(sections, labelStyle("Summary")+"\n"+wordwrap.String(summary, width))

	for _, a := range articles {
		sections = append(sections, renderArticleCard(a, width))
	}

	return strings.Join(sections, "\n\n")
}

// renderVerdict рендерит блок вердикта с summary.
//
// nil verdict эквивалентен пустому: label по умолчанию "uncertain",
// confidence "N/A", причин нет.
func renderVerdict(v *verify.Verdict, summary string, width int) string {
	if v == nil {
		v = &verify.Verdict{}
	}

	label := v.Label
	if label == "" {
		label = "uncertain"
	}

	var b strings.Builder
	b.WriteString(renderBadge(label, "uncertain"))
	b.WriteString("\n")
	b.WriteString(labelStyle("Confidence: ") + formatVerdictConfidence(v.Confidence))

	// Причины в порядке получения; пустой список — ни одной строки,
	// не empty-state сообщение.
	for i, reason := range v.Reasons {
		b.WriteString("\n")
		b.WriteString(wordwrap.String(fmt.Sprintf("%d. %s", i+1, reason), width))
	}

	b.WriteString("\n\n")
	if summary == "" {
		summary = noCheckSummary
	}
	b.WriteString(labelStyle("Summary") + "\n" + wordwrap.String(summary, width))

	return b.String()
}

// renderHistoryCard рендерит карточку записи истории.
func renderHistoryCard(it verify.HistoryItem, selected bool, width int) string {
	var b strings.Builder

	if selected {
		b.WriteString(selectedMarkStyle("▶ "))
	} else {
		b.WriteString("  ")
	}
	b.WriteString(renderBadge(it.Label, "unknown"))
	b.WriteString("\n")

	title := it.Title
	if title == "" {
		title = it.Topic
	}
	if title == "" {
		title = noTitlePlacehold
	}
	b.WriteString(cardTitleStyle(wordwrap.String(title, width)))
	b.WriteString("\n")

	// Мета-строка: тип + дата. При отсутствии даты остается один тип.
	meta := it.Type
	if formatted := formatCreatedAt(it.CreatedAt); formatted != "" {
		meta = meta + " • " + formatted
	}
	b.WriteString(metaStyle(meta))

	if it.URL != "" {
		b.WriteString("\n")
		b.WriteString(linkStyle(it.URL))
	}

	if it.Summary != "" {
		b.WriteString("\n")
		b.WriteString(wordwrap.String(truncateSummary(it.Summary), width))
	}

	return b.String()
}

// renderHistoryList рендерит все карточки истории; selected помечает
// карточку, к которой относится Ctrl+X.
func renderHistoryList(items []verify.HistoryItem, selected int, width int) string {
	cards := make([]string, 0, len(items))
	for i, it := range items {
		cards = append(cards, renderHistoryCard(it, i == selected, width))
	}
	return strings.Join(cards, "\n\n")
}
