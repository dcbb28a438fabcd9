package tui

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-employee-registry/internal/listing"
	"github.com/MKhiriev/go-employee-registry/internal/service"
	"github.com/MKhiriev/go-employee-registry/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// EmployeesModel is the employee listing: search, designation filter, name
// sort and pagination over the records fetched from the backend. All listing
// state lives in a [listing.Controller]; changes of search and designation
// are published as same-page navigations so the router location follows.
type EmployeesModel struct {
	ctx       context.Context
	employees service.ClientEmployeeService
	sessions  service.ClientSessionService
	listing   *listing.Controller

	search    textinput.Model
	searching bool
	idx       int

	showConfirm   bool
	confirm       confirmModel
	pendingDelete models.Employee

	status string
	errMsg string
}

func NewEmployeesModel(ctx context.Context, employees service.ClientEmployeeService, sessions service.ClientSessionService) *EmployeesModel {
	search := textinput.New()
	search.Placeholder = "поиск по имени или email"
	search.Width = 40

	return &EmployeesModel{
		ctx:       ctx,
		employees: employees,
		sessions:  sessions,
		listing:   listing.NewController(listing.PageSizeEmployees),
		search:    search,
	}
}

// Navigate seeds search and designation from the location query.
func (m *EmployeesModel) Navigate(query url.Values) {
	m.listing.Navigate(query)
	m.search.SetValue(m.listing.View().Query.Search)
}

func (m *EmployeesModel) Init() tea.Cmd {
	return m.cmdLoad()
}

func (m *EmployeesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case employeesLoadedMsg:
		if msg.err != nil {
			m.listing.Failed(msg.seq, msg.err)
			return m, nil
		}
		if m.listing.Loaded(msg.seq, msg.items) {
			m.idx = 0
		}
		return m, nil
	case employeeDeletedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "Сотрудник удалён"
		m.errMsg = ""
		return m, m.cmdLoad()
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	if m.searching {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *EmployeesModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showConfirm {
		switch {
		case key.Matches(msg, keys.yes):
			m.showConfirm = false
			return m, m.cmdDelete(m.pendingDelete.ID)
		case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
			m.showConfirm = false
			m.pendingDelete = models.Employee{}
		}
		return m, nil
	}

	if m.searching {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.searching = false
			m.search.Blur()
			return m, nil
		}

		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		if m.listing.SetSearch(m.search.Value()) {
			m.idx = 0
			return m, tea.Batch(cmd, m.cmdPublishLocation())
		}
		return m, cmd
	}

	items := m.listing.View().Page.Items

	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.prevPage):
		m.listing.Prev()
		m.idx = 0
	case key.Matches(msg, keys.nextPage):
		m.listing.Next()
		m.idx = 0
	case key.Matches(msg, keys.search):
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink
	case key.Matches(msg, keys.filter):
		m.idx = 0
		if m.listing.SetDesignation(m.nextDesignation()) {
			return m, m.cmdPublishLocation()
		}
	case key.Matches(msg, keys.sort):
		m.listing.ToggleSort()
		m.idx = 0
	case key.Matches(msg, keys.refresh):
		return m, m.cmdLoad()
	case key.Matches(msg, keys.enter):
		if e, ok := m.selected(items); ok {
			return m, navigateWithID(pageDetail, e.ID)
		}
		m.status = "Нет записей"
	case key.Matches(msg, keys.newItem):
		if !m.sessions.HasPermission(m.ctx, models.PermCreateEmployee) {
			m.errMsg = humanizeError(service.ErrPermissionDenied)
			return m, nil
		}
		return m, func() tea.Msg { return NavigateTo{Page: pageCreate} }
	case key.Matches(msg, keys.edit):
		e, ok := m.selected(items)
		if !ok {
			m.status = "Нет записей"
			return m, nil
		}
		if !m.sessions.HasPermission(m.ctx, models.PermUpdateEmployee) {
			m.errMsg = humanizeError(service.ErrPermissionDenied)
			return m, nil
		}
		return m, navigateWithID(pageEdit, e.ID)
	case key.Matches(msg, keys.delete):
		e, ok := m.selected(items)
		if !ok {
			m.status = "Нет записей"
			return m, nil
		}
		if !m.sessions.HasPermission(m.ctx, models.PermDeleteEmployee) {
			m.errMsg = humanizeError(service.ErrPermissionDenied)
			return m, nil
		}
		m.pendingDelete = e
		m.confirm.message = e.Name
		m.showConfirm = true
	case key.Matches(msg, keys.dashboard):
		return m, func() tea.Msg { return NavigateTo{Page: pageDashboard} }
	case key.Matches(msg, keys.logs):
		return m, func() tea.Msg { return NavigateTo{Page: pageLogs} }
	case key.Matches(msg, keys.profile):
		return m, func() tea.Msg { return NavigateTo{Page: pageProfile} }
	}

	return m, nil
}

func (m *EmployeesModel) View() string {
	if m.showConfirm {
		return m.confirm.View()
	}

	view := m.listing.View()
	var b strings.Builder

	if user, ok := m.sessions.CurrentUser(m.ctx); ok {
		b.WriteString(fmt.Sprintf("Пользователь: %s (%s)\n\n", user.Name, user.Role))
	}

	b.WriteString("Поиск: [")
	b.WriteString(m.search.View())
	b.WriteString("]\n")
	b.WriteString(fmt.Sprintf("Должность: %s │ Сортировка: %s\n\n", view.Query.Designation, sortLabel(view.Query.Sort)))

	switch view.Status {
	case listing.StatusLoading:
		b.WriteString("Загрузка...\n")
	case listing.StatusFailed:
		b.WriteString(errorStyle.Render("Не удалось загрузить сотрудников: " + humanizeError(view.Err)))
		b.WriteString("\n")
	}

	if view.Status != listing.StatusLoading {
		if len(view.Page.Items) == 0 {
			b.WriteString("Сотрудники не найдены\n")
		} else {
			b.WriteString(fmt.Sprintf("  %-24s │ %-18s │ %-26s │ %s\n", "Имя", "Должность", "Email", "Телефон"))
			b.WriteString(strings.Repeat("─", 90))
			b.WriteString("\n")
			for i, e := range view.Page.Items {
				row := fmt.Sprintf("%s %-24s │ %-18s │ %-26s │ %s", cursorMark(i == m.idx),
					fitText(e.Name, 24), fitText(e.Designation, 18), fitText(e.Email, 26), e.Phone)
				if i == m.idx {
					row = selectedStyle.Render(row)
				}
				b.WriteString(row)
				b.WriteString("\n")
			}
		}
		b.WriteString(fmt.Sprintf("\nСтр. %d из %d │ всего %d\n", view.Page.Page, view.Page.TotalPages, view.Page.TotalItems))
	}

	renderMessages(&b, m.status, m.errMsg)

	hotKeys := "/: поиск │ f: должность │ s: сортировка │ ←/→: страницы │ enter: открыть │ r: обновить │ p: профиль │ ctrl+l: выйти"
	if m.sessions.IsAdmin(m.ctx) {
		hotKeys += "\nn: новый │ e: изменить │ ctrl+d: удалить │ g: дашборд │ a: журнал"
	}

	return renderPage("СОТРУДНИКИ", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *EmployeesModel) selected(items []models.Employee) (models.Employee, bool) {
	if m.idx < 0 || m.idx >= len(items) {
		return models.Employee{}, false
	}
	return items[m.idx], true
}

// nextDesignation cycles "all" → each known designation → "all".
func (m *EmployeesModel) nextDesignation() string {
	view := m.listing.View()
	options := append([]string{models.DesignationAll}, view.Designations...)

	for i, d := range options {
		if d == view.Query.Designation {
			return options[(i+1)%len(options)]
		}
	}
	return models.DesignationAll
}

func (m *EmployeesModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	employees := m.employees
	seq := m.listing.BeginFetch()

	return func() tea.Msg {
		items, err := employees.List(ctx)
		return employeesLoadedMsg{seq: seq, items: items, err: err}
	}
}

func (m *EmployeesModel) cmdDelete(id string) tea.Cmd {
	ctx := m.ctx
	employees := m.employees

	return func() tea.Msg {
		return employeeDeletedMsg{err: employees.Delete(ctx, id)}
	}
}

func (m *EmployeesModel) cmdPublishLocation() tea.Cmd {
	query := m.listing.Query()
	return func() tea.Msg { return NavigateTo{Page: pageEmployees, Query: query} }
}

func navigateWithID(page, id string) tea.Cmd {
	return func() tea.Msg {
		return NavigateTo{Page: page, Query: url.Values{"id": {id}}}
	}
}

func sortLabel(order models.SortOrder) string {
	if order == models.SortDesc {
		return "Я → А"
	}
	return "А → Я"
}
