package tui

import (
	"context"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-employee-registry/internal/service"
	"github.com/MKhiriev/go-employee-registry/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formMode int

const (
	formCreate formMode = iota
	formEdit
)

const (
	empName = iota
	empDesignation
	empEmail
	empPhone
	empDOB
	empPhoto
	empFieldsCount
)

var employeeFormLabels = []string{"Имя", "Должность", "Email", "Телефон", "Дата рождения", "Фото"}

// EmployeeFormModel creates or edits an employee. In edit mode the record is
// loaded on Init and submitted with the id taken from the location.
type EmployeeFormModel struct {
	ctx       context.Context
	employees service.ClientEmployeeService
	mode      formMode

	id         string
	inputs     []textinput.Model
	focus      int
	loading    bool
	submitting bool
	errMsg     string
}

func NewEmployeeFormModel(ctx context.Context, employees service.ClientEmployeeService, mode formMode) *EmployeeFormModel {
	placeholders := []string{"name", "designation", "email", "phone", "YYYY-MM-DD", "photo url"}

	inputs := make([]textinput.Model, empFieldsCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = placeholders[i]
		inputs[i].Width = 40
	}
	inputs[empName].Focus()

	return &EmployeeFormModel{
		ctx:       ctx,
		employees: employees,
		mode:      mode,
		inputs:    inputs,
	}
}

func (m *EmployeeFormModel) Navigate(query url.Values) {
	m.id = query.Get("id")
}

func (m *EmployeeFormModel) Init() tea.Cmd {
	m.fill(models.Employee{})
	m.errMsg = ""
	m.submitting = false

	if m.mode == formCreate {
		return textinput.Blink
	}
	if m.id == "" {
		m.errMsg = "Сотрудник не выбран"
		return nil
	}

	m.loading = true
	ctx, employees, id := m.ctx, m.employees, m.id
	return func() tea.Msg {
		e, err := employees.Get(ctx, id)
		return employeeLoadedMsg{employee: e, err: err}
	}
}

func (m *EmployeeFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case employeeLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.fill(msg.employee)
		return m, textinput.Blink
	case employeeSavedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		return m, navigateWithID(pageDetail, msg.employee.ID)
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return NavigateTo{Page: pageEmployees} }
		case "tab", "down":
			m.setFocus(m.focus + 1)
			return m, nil
		case "shift+tab", "up":
			m.setFocus(m.focus - 1)
			return m, nil
		case "enter":
			if m.submitting || m.loading {
				return m, nil
			}
			employee := m.value()
			if employee.Name == "" {
				m.errMsg = "Имя обязательно"
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSave(employee)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *EmployeeFormModel) View() string {
	title := "НОВЫЙ СОТРУДНИК"
	if m.mode == formEdit {
		title = "ИЗМЕНЕНИЕ СОТРУДНИКА"
	}

	var b strings.Builder
	if m.loading {
		b.WriteString("Загрузка...\n")
	} else {
		values := make([]string, len(m.inputs))
		for i := range m.inputs {
			values[i] = "[" + m.inputs[i].View() + "]"
		}
		renderFields(&b, employeeFormLabels, values)

		if m.submitting {
			b.WriteString("\n[Сохранить...]\n")
		} else {
			b.WriteString("\n[Сохранить]\n")
		}
	}

	renderMessages(&b, "", m.errMsg)

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc: отмена │ tab: след. поле │ enter: сохранить")
}

func (m *EmployeeFormModel) value() models.Employee {
	get := func(i int) string { return strings.TrimSpace(m.inputs[i].Value()) }

	return models.Employee{
		ID:          m.id,
		Name:        get(empName),
		Designation: get(empDesignation),
		Email:       get(empEmail),
		Phone:       get(empPhone),
		DOB:         get(empDOB),
		Photo:       get(empPhoto),
	}
}

func (m *EmployeeFormModel) fill(e models.Employee) {
	m.inputs[empName].SetValue(e.Name)
	m.inputs[empDesignation].SetValue(e.Designation)
	m.inputs[empEmail].SetValue(e.Email)
	m.inputs[empPhone].SetValue(e.Phone)
	m.inputs[empDOB].SetValue(e.DOB)
	m.inputs[empPhoto].SetValue(e.Photo)
	m.setFocus(0)
}

func (m *EmployeeFormModel) cmdSave(employee models.Employee) tea.Cmd {
	ctx := m.ctx
	employees := m.employees
	mode := m.mode
	id := m.id

	return func() tea.Msg {
		var (
			saved models.Employee
			err   error
		)
		if mode == formEdit {
			saved, err = employees.Update(ctx, id, employee)
		} else {
			employee.ID = ""
			saved, err = employees.Create(ctx, employee)
		}
		return employeeSavedMsg{employee: saved, err: err}
	}
}

func (m *EmployeeFormModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = (i + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
