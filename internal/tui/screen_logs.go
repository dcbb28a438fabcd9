package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-employee-registry/internal/service"
	"github.com/MKhiriev/go-employee-registry/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// LogsModel is the activity log viewer: newest first, filtered by action,
// ten entries per page.
type LogsModel struct {
	ctx      context.Context
	activity service.ClientActivityService

	action  models.Action
	page    models.Page[models.ActivityLog]
	current int
	idx     int
	loading bool

	showConfirm bool
	confirm     confirmModel
	pendingID   string

	status string
	errMsg string
}

func NewLogsModel(ctx context.Context, activity service.ClientActivityService) *LogsModel {
	return &LogsModel{
		ctx:      ctx,
		activity: activity,
		action:   models.ActionAll,
		current:  1,
	}
}

func (m *LogsModel) Init() tea.Cmd {
	m.action = models.ActionAll
	m.current = 1
	m.status = ""
	return m.cmdLoad()
}

func (m *LogsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case logsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.page = msg.page
		if m.idx >= len(m.page.Items) {
			m.idx = max(len(m.page.Items)-1, 0)
		}
		return m, nil
	case logDeletedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "Запись журнала удалена"
		return m, m.cmdLoad()
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m *LogsModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showConfirm {
		switch {
		case key.Matches(msg, keys.yes):
			m.showConfirm = false
			return m, m.cmdDelete(m.pendingID)
		case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
			m.showConfirm = false
			m.pendingID = ""
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		return m, func() tea.Msg { return NavigateTo{Page: pageEmployees} }
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.page.Items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.prevPage):
		if m.current > 1 {
			m.current--
			m.idx = 0
			return m, m.cmdLoad()
		}
	case key.Matches(msg, keys.nextPage):
		if m.current < m.page.TotalPages {
			m.current++
			m.idx = 0
			return m, m.cmdLoad()
		}
	case key.Matches(msg, keys.filter):
		m.action = nextAction(m.action)
		m.current = 1
		m.idx = 0
		return m, m.cmdLoad()
	case key.Matches(msg, keys.refresh):
		return m, m.cmdLoad()
	case key.Matches(msg, keys.delete):
		if m.idx >= len(m.page.Items) {
			return m, nil
		}
		entry := m.page.Items[m.idx]
		m.pendingID = entry.ID
		m.confirm.message = fmt.Sprintf("%s %s", entry.Action, entry.Timestamp.Local().Format("2006-01-02 15:04"))
		m.showConfirm = true
	}
	return m, nil
}

func (m *LogsModel) View() string {
	if m.showConfirm {
		return m.confirm.View()
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Действие: %s\n\n", m.action))

	if m.loading {
		b.WriteString("Загрузка...\n")
	} else if len(m.page.Items) == 0 {
		b.WriteString("Записей нет\n")
	} else {
		b.WriteString(fmt.Sprintf("  %-16s │ %-7s │ %-24s │ %-20s │ %s\n", "Время", "Действие", "Пользователь", "Сотрудник", "Детали"))
		b.WriteString(strings.Repeat("─", 100))
		b.WriteString("\n")
		for i, l := range m.page.Items {
			row := fmt.Sprintf("%s %-16s │ %-7s │ %-24s │ %-20s │ %s", cursorMark(i == m.idx),
				l.Timestamp.Local().Format("2006-01-02 15:04"), l.Action, fitText(l.UserEmail, 24),
				fitText(valueOrDash(l.EmployeeName), 20), fitText(l.Details, 30))
			if i == m.idx {
				row = selectedStyle.Render(row)
			}
			b.WriteString(row)
			b.WriteString("\n")
		}
	}
	b.WriteString(fmt.Sprintf("\nСтр. %d из %d │ всего %d\n", m.current, m.page.TotalPages, m.page.TotalItems))

	renderMessages(&b, m.status, m.errMsg)

	return renderPage("ЖУРНАЛ ДЕЙСТВИЙ", strings.TrimRight(b.String(), "\n"), "f: действие │ ←/→: страницы │ ctrl+d: удалить │ r: обновить │ esc: к списку")
}

func (m *LogsModel) cmdLoad() tea.Cmd {
	m.loading = true
	ctx, activity, action, page := m.ctx, m.activity, m.action, m.current

	return func() tea.Msg {
		p, err := activity.Page(ctx, action, page)
		return logsLoadedMsg{page: p, err: err}
	}
}

func (m *LogsModel) cmdDelete(id string) tea.Cmd {
	ctx, activity := m.ctx, m.activity

	return func() tea.Msg {
		return logDeletedMsg{err: activity.Delete(ctx, id)}
	}
}

// nextAction cycles "all" → each known action → "all".
func nextAction(current models.Action) models.Action {
	options := append([]models.Action{models.ActionAll}, models.Actions...)
	for i, a := range options {
		if a == current {
			return options[(i+1)%len(options)]
		}
	}
	return models.ActionAll
}
