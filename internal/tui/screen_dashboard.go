package tui

import (
	"context"
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"

	"github.com/MKhiriev/go-employee-registry/internal/service"
	"github.com/MKhiriev/go-employee-registry/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// DashboardModel shows the admin statistics. Selecting a designation opens
// the listing filtered by it.
type DashboardModel struct {
	ctx       context.Context
	dashboard service.ClientDashboardService

	stats        models.DashboardStats
	designations []string
	idx          int
	loading      bool
	errMsg       string
}

func NewDashboardModel(ctx context.Context, dashboard service.ClientDashboardService) *DashboardModel {
	return &DashboardModel{ctx: ctx, dashboard: dashboard}
}

func (m *DashboardModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	ctx, dashboard := m.ctx, m.dashboard

	return func() tea.Msg {
		stats, err := dashboard.Stats(ctx)
		return statsLoadedMsg{stats: stats, err: err}
	}
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.stats = msg.stats
		m.designations = slices.Sorted(maps.Keys(msg.stats.ByDesignation))
		m.idx = 0
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageEmployees} }
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.designations)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.refresh):
			return m, m.Init()
		case key.Matches(msg, keys.enter):
			if m.idx >= len(m.designations) {
				return m, nil
			}
			return m, navigateToLink(service.DesignationLink(m.designations[m.idx]))
		}
	}
	return m, nil
}

func (m *DashboardModel) View() string {
	var b strings.Builder

	if m.loading {
		b.WriteString("Загрузка...\n")
	} else if m.errMsg == "" {
		b.WriteString(fmt.Sprintf("Всего сотрудников: %d\n\n", m.stats.TotalEmployees))

		b.WriteString("По должностям:\n")
		for i, d := range m.designations {
			row := fmt.Sprintf("%s %-24s │ %d", cursorMark(i == m.idx), fitText(d, 24), m.stats.ByDesignation[d])
			if i == m.idx {
				row = selectedStyle.Render(row)
			}
			b.WriteString(row)
			b.WriteString("\n")
		}

		b.WriteString("\nПоследние добавления:\n")
		if len(m.stats.RecentAdditions) == 0 {
			b.WriteString("  -\n")
		}
		for _, l := range m.stats.RecentAdditions {
			b.WriteString(fmt.Sprintf("  %s │ %s │ %s\n", l.Timestamp.Local().Format("2006-01-02 15:04"), valueOrDash(l.EmployeeName), l.UserEmail))
		}
	}

	renderMessages(&b, "", m.errMsg)

	return renderPage("ДАШБОРД", strings.TrimRight(b.String(), "\n"), "enter: сотрудники должности │ r: обновить │ esc: к списку")
}

// navigateToLink opens the listing location encoded in link.
func navigateToLink(link string) tea.Cmd {
	u, err := url.Parse(link)
	if err != nil {
		return nil
	}
	query := u.Query()
	return func() tea.Msg { return NavigateTo{Page: pageEmployees, Query: query} }
}
