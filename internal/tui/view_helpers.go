package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: выход"))

	return b.String()
}

// renderMessages appends the status and error lines shared by every screen.
func renderMessages(b *strings.Builder, status, errMsg string) {
	if status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render("OK: " + status))
		b.WriteString("\n")
	}
	if errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + errMsg))
		b.WriteString("\n")
	}
}

// renderFields renders label/value rows as a two-column table.
func renderFields(b *strings.Builder, labels, values []string) {
	width := lipgloss.Width("Поле")
	for _, l := range labels {
		if w := lipgloss.Width(l); w > width {
			width = w
		}
	}

	b.WriteString(fmt.Sprintf("%-*s │ %s\n", width, "Поле", "Значение"))
	b.WriteString(strings.Repeat("─", width))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", 40))
	b.WriteString("\n")
	for i, l := range labels {
		v := ""
		if i < len(values) {
			v = values[i]
		}
		b.WriteString(fmt.Sprintf("%-*s │ %s\n", width, l, v))
	}
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

// fitText truncates v to max runes.
func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func cursorMark(selected bool) string {
	if selected {
		return ">"
	}
	return " "
}
