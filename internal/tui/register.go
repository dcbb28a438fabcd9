package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-employee-registry/internal/service"
	"github.com/MKhiriev/go-employee-registry/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	regName = iota
	regEmail
	regPassword
	regRepeat
	regRole
	regPhoto
	regFieldsCount
)

// RegisterModel is the Bubble Tea model for the registration screen. It renders
// name, email, password, password confirmation, role and photo inputs and
// dispatches an async registration command on form submission.
// On success the form is reset and the login screen is opened with a
// [RegisterSuccessNotice] payload. Registration never logs the user in.
type RegisterModel struct {
	ctx      context.Context
	sessions service.ClientSessionService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewRegisterModel creates a [RegisterModel]. The name field receives focus
// immediately; the password fields use masked echo.
func NewRegisterModel(ctx context.Context, sessions service.ClientSessionService) *RegisterModel {
	fields := make([]textinput.Model, regFieldsCount)

	fields[regName] = textinput.New()
	fields[regName].Placeholder = "name"
	fields[regName].Width = 40
	fields[regName].Focus()

	fields[regEmail] = textinput.New()
	fields[regEmail].Placeholder = "email"
	fields[regEmail].CharLimit = 254
	fields[regEmail].Width = 40

	fields[regPassword] = textinput.New()
	fields[regPassword].Placeholder = "password (min 6)"
	fields[regPassword].EchoMode = textinput.EchoPassword
	fields[regPassword].EchoCharacter = '*'
	fields[regPassword].Width = 40

	fields[regRepeat] = textinput.New()
	fields[regRepeat].Placeholder = "repeat password"
	fields[regRepeat].EchoMode = textinput.EchoPassword
	fields[regRepeat].EchoCharacter = '*'
	fields[regRepeat].Width = 40

	fields[regRole] = textinput.New()
	fields[regRole].Placeholder = "employee | admin"
	fields[regRole].Width = 40

	fields[regPhoto] = textinput.New()
	fields[regPhoto].Placeholder = "photo url (можно пусто)"
	fields[regPhoto].Width = 40

	return &RegisterModel{
		ctx:      ctx,
		sessions: sessions,
		inputs:   fields,
	}
}

// Init implements [tea.Model].
func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Passwords must match before the command is
// sent; everything else is validated by the session service.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(RegisterResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
			return m, nil
		}

		m.errMsg = ""
		m.resetForm()
		return m, func() tea.Msg {
			return NavigateTo{
				Page:    pageLogin,
				Payload: RegisterSuccessNotice{Email: result.User.Email},
			}
		}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case "tab":
			m.setFocus(m.focus + 1)
			return m, nil
		case "shift+tab":
			m.setFocus(m.focus - 1)
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			if m.inputs[regPassword].Value() != m.inputs[regRepeat].Value() {
				m.errMsg = "Пароли не совпадают"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(models.Registration{
				Name:     strings.TrimSpace(m.inputs[regName].Value()),
				Email:    strings.TrimSpace(m.inputs[regEmail].Value()),
				Password: m.inputs[regPassword].Value(),
				Role:     models.Role(strings.TrimSpace(m.inputs[regRole].Value())),
				Photo:    strings.TrimSpace(m.inputs[regPhoto].Value()),
			})
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *RegisterModel) View() string {
	labels := []string{"Имя", "Email", "Пароль", "Повтор пароля", "Роль", "Фото"}
	values := make([]string, len(m.inputs))
	for i := range m.inputs {
		values[i] = "[" + m.inputs[i].View() + "]"
	}

	var b strings.Builder
	renderFields(&b, labels, values)

	if m.submitting {
		b.WriteString("\n[Зарегистрироваться...]\n")
	} else {
		b.WriteString("\n[Зарегистрироваться]\n")
	}

	renderMessages(&b, "", m.errMsg)

	return renderPage("РЕГИСТРАЦИЯ", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: подтвердить")
}

func (m *RegisterModel) cmdRegister(reg models.Registration) tea.Cmd {
	ctx := m.ctx
	sessions := m.sessions

	return func() tea.Msg {
		user, err := sessions.Register(ctx, reg)
		return RegisterResult{User: user, Err: err}
	}
}

func (m *RegisterModel) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.setFocus(0)
}

func (m *RegisterModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = (i + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
