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
	profName = iota
	profEmail
	profPhoto
	profPassword
	profFieldsCount
)

// ProfileModel edits the account of the session user. Only fields that
// differ from the session are sent.
type ProfileModel struct {
	ctx      context.Context
	sessions service.ClientSessionService

	user       models.SessionUser
	inputs     []textinput.Model
	focus      int
	submitting bool
	status     string
	errMsg     string
}

func NewProfileModel(ctx context.Context, sessions service.ClientSessionService) *ProfileModel {
	placeholders := []string{"name", "email", "photo url", "новый пароль (можно пусто)"}

	inputs := make([]textinput.Model, profFieldsCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = placeholders[i]
		inputs[i].Width = 40
	}
	inputs[profPassword].EchoMode = textinput.EchoPassword
	inputs[profPassword].EchoCharacter = '*'

	return &ProfileModel{ctx: ctx, sessions: sessions, inputs: inputs}
}

func (m *ProfileModel) Init() tea.Cmd {
	m.status = ""
	m.errMsg = ""
	user, ok := m.sessions.CurrentUser(m.ctx)
	if !ok {
		m.errMsg = humanizeError(service.ErrNotAuthenticated)
		return nil
	}
	m.fill(user)
	return textinput.Blink
}

func (m *ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileSavedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Профиль обновлён"
		if user, ok := m.sessions.CurrentUser(m.ctx); ok {
			m.fill(user)
		}
		return m, nil
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
			if m.submitting || m.user.ID == "" {
				return m, nil
			}
			update, changed := m.changes()
			if !changed {
				m.status = "Нет изменений"
				return m, nil
			}
			m.status = ""
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSave(m.user.ID, update)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *ProfileModel) View() string {
	values := make([]string, len(m.inputs))
	for i := range m.inputs {
		values[i] = "[" + m.inputs[i].View() + "]"
	}

	var b strings.Builder
	renderFields(&b, []string{"Имя", "Email", "Фото", "Пароль"}, values)
	b.WriteString("\nРоль: ")
	b.WriteString(valueOrDash(string(m.user.Role)))
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Сохранить...]\n")
	} else {
		b.WriteString("\n[Сохранить]\n")
	}

	renderMessages(&b, m.status, m.errMsg)

	return renderPage("ПРОФИЛЬ", strings.TrimRight(b.String(), "\n"), "esc: к списку │ tab: след. поле │ enter: сохранить │ ctrl+l: выйти")
}

func (m *ProfileModel) changes() (models.ProfileUpdate, bool) {
	var update models.ProfileUpdate
	changed := false

	set := func(i int, current string, dst **string) {
		v := strings.TrimSpace(m.inputs[i].Value())
		if v == current {
			return
		}
		*dst = &v
		changed = true
	}
	set(profName, m.user.Name, &update.Name)
	set(profEmail, m.user.Email, &update.Email)
	set(profPhoto, m.user.Photo, &update.Photo)

	if pass := m.inputs[profPassword].Value(); pass != "" {
		update.Password = &pass
		changed = true
	}

	return update, changed
}

func (m *ProfileModel) fill(user models.SessionUser) {
	m.user = user
	m.inputs[profName].SetValue(user.Name)
	m.inputs[profEmail].SetValue(user.Email)
	m.inputs[profPhoto].SetValue(user.Photo)
	m.inputs[profPassword].SetValue("")
	m.setFocus(0)
}

func (m *ProfileModel) cmdSave(userID string, update models.ProfileUpdate) tea.Cmd {
	ctx, sessions := m.ctx, m.sessions

	return func() tea.Msg {
		user, err := sessions.UpdateProfile(ctx, userID, update)
		return profileSavedMsg{user: user, err: err}
	}
}

func (m *ProfileModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = (i + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
