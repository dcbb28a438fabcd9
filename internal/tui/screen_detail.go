package tui

import (
	"context"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-employee-registry/internal/service"
	"github.com/MKhiriev/go-employee-registry/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// clipboardWrite is replaced in tests.
var clipboardWrite = clipboard.WriteAll

// DetailModel shows one employee.
type DetailModel struct {
	ctx       context.Context
	employees service.ClientEmployeeService
	sessions  service.ClientSessionService

	id       string
	employee models.Employee
	loading  bool

	showConfirm bool
	confirm     confirmModel

	status string
	errMsg string
}

func NewDetailModel(ctx context.Context, employees service.ClientEmployeeService, sessions service.ClientSessionService) *DetailModel {
	return &DetailModel{ctx: ctx, employees: employees, sessions: sessions}
}

func (m *DetailModel) Navigate(query url.Values) {
	m.id = query.Get("id")
	m.employee = models.Employee{}
	m.status = ""
	m.errMsg = ""
	m.showConfirm = false
}

func (m *DetailModel) Init() tea.Cmd {
	if m.id == "" {
		m.errMsg = "Сотрудник не выбран"
		return nil
	}
	m.loading = true
	return m.cmdLoad(m.id)
}

func (m *DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case employeeLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.employee = msg.employee
		return m, nil
	case employeeDeletedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		return m, func() tea.Msg { return NavigateTo{Page: pageEmployees} }
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m *DetailModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showConfirm {
		switch {
		case key.Matches(msg, keys.yes):
			m.showConfirm = false
			return m, m.cmdDelete(m.employee.ID)
		case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
			m.showConfirm = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		return m, func() tea.Msg { return NavigateTo{Page: pageEmployees} }
	case key.Matches(msg, keys.copy):
		if m.employee.Email == "" {
			m.status = "Нечего копировать"
			return m, nil
		}
		if err := clipboardWrite(m.employee.Email); err != nil {
			m.errMsg = "Ошибка копирования: " + err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.status = "Email скопирован"
	case key.Matches(msg, keys.edit):
		if m.employee.ID == "" {
			return m, nil
		}
		if !m.sessions.HasPermission(m.ctx, models.PermUpdateEmployee) {
			m.errMsg = humanizeError(service.ErrPermissionDenied)
			return m, nil
		}
		return m, navigateWithID(pageEdit, m.employee.ID)
	case key.Matches(msg, keys.delete):
		if m.employee.ID == "" {
			return m, nil
		}
		if !m.sessions.HasPermission(m.ctx, models.PermDeleteEmployee) {
			m.errMsg = humanizeError(service.ErrPermissionDenied)
			return m, nil
		}
		m.confirm.message = m.employee.Name
		m.showConfirm = true
	}
	return m, nil
}

func (m *DetailModel) View() string {
	if m.showConfirm {
		return m.confirm.View()
	}

	var b strings.Builder
	if m.loading {
		b.WriteString("Загрузка профиля сотрудника...\n")
	} else if m.employee.ID != "" {
		e := m.employee
		renderFields(&b,
			[]string{"ID", "Имя", "Должность", "Email", "Телефон", "Дата рождения", "Фото"},
			[]string{e.ID, e.Name, valueOrDash(e.Designation), valueOrDash(e.Email), valueOrDash(e.Phone), valueOrDash(e.DOB), valueOrDash(fitText(e.Photo, 40))},
		)
	}

	renderMessages(&b, m.status, m.errMsg)

	hotKeys := "esc: к списку │ c: копировать email"
	if m.sessions.IsAdmin(m.ctx) {
		hotKeys += " │ e: изменить │ ctrl+d: удалить"
	}
	return renderPage("СОТРУДНИК", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *DetailModel) cmdLoad(id string) tea.Cmd {
	ctx := m.ctx
	employees := m.employees

	return func() tea.Msg {
		e, err := employees.Get(ctx, id)
		return employeeLoadedMsg{employee: e, err: err}
	}
}

func (m *DetailModel) cmdDelete(id string) tea.Cmd {
	ctx := m.ctx
	employees := m.employees

	return func() tea.Msg {
		return employeeDeletedMsg{err: employees.Delete(ctx, id)}
	}
}
