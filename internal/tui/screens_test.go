package tui

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-employee-registry/internal/listing"
	"github.com/MKhiriev/go-employee-registry/internal/mock"
	"github.com/MKhiriev/go-employee-registry/internal/service"
	"github.com/MKhiriev/go-employee-registry/models"
	tea "github.com/charmbracelet/bubbletea"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func sampleStaff() []models.Employee {
	return []models.Employee{
		{ID: "1", Name: "Zed", Designation: "QA", Email: "zed@x.com"},
		{ID: "2", Name: "Ann", Designation: "Dev", Email: "ann@x.com"},
		{ID: "3", Name: "Bob", Designation: "Dev", Email: "bob@x.com"},
	}
}

func newLoadedEmployees(t *testing.T) (*EmployeesModel, *mock.MockClientEmployeeService, *mock.MockClientSessionService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	employees := mock.NewMockClientEmployeeService(ctrl)
	sessions := mock.NewMockClientSessionService(ctrl)

	m := NewEmployeesModel(context.Background(), employees, sessions)
	employees.EXPECT().List(gomock.Any()).Return(sampleStaff(), nil)

	cmd := m.Init()
	require.NotNil(t, cmd)
	m.Update(cmd())
	require.Equal(t, listing.StatusReady, m.listing.View().Status)

	return m, employees, sessions
}

// ── employees ────────────────────────────────────────────────────────────────

func TestEmployeesModel_LoadSortsByName(t *testing.T) {
	m, _, _ := newLoadedEmployees(t)

	items := m.listing.View().Page.Items
	require.Len(t, items, 3)
	assert.Equal(t, "Ann", items[0].Name)
	assert.Equal(t, "Zed", items[2].Name)
}

func TestEmployeesModel_StaleLoadIgnored(t *testing.T) {
	m, employees, _ := newLoadedEmployees(t)

	employees.EXPECT().List(gomock.Any()).Return(nil, nil).Times(2)
	stale := m.cmdLoad()
	fresh := m.cmdLoad()

	m.Update(fresh())
	m.Update(stale())
	assert.Empty(t, m.listing.View().Page.Items)
}

func TestEmployeesModel_LoadFailureKeepsRecords(t *testing.T) {
	m, employees, _ := newLoadedEmployees(t)
	employees.EXPECT().List(gomock.Any()).Return(nil, service.ErrNetwork)

	m.Update(m.cmdLoad()())

	view := m.listing.View()
	assert.Equal(t, listing.StatusFailed, view.Status)
	assert.ErrorIs(t, view.Err, service.ErrNetwork)
	assert.Len(t, view.Page.Items, 3)
}

func TestEmployeesModel_NavigateSeedsSearch(t *testing.T) {
	m, _, _ := newLoadedEmployees(t)

	m.Navigate(url.Values{"search": {"bo"}})

	assert.Equal(t, "bo", m.search.Value())
	items := m.listing.View().Page.Items
	require.Len(t, items, 1)
	assert.Equal(t, "Bob", items[0].Name)
}

func TestEmployeesModel_SearchIgnoresDesignation(t *testing.T) {
	m, _, _ := newLoadedEmployees(t)

	// должность ищется фильтром, а не строкой поиска
	assert.NotContains(t, m.search.Placeholder, "должност")
	m.Navigate(url.Values{"search": {"QA"}})
	assert.Empty(t, m.listing.View().Page.Items)

	m.Navigate(url.Values{"search": {"ann@"}})
	require.Len(t, m.listing.View().Page.Items, 1)
}

func TestEmployeesModel_DesignationCyclePublishesLocation(t *testing.T) {
	m, _, _ := newLoadedEmployees(t)

	_, cmd := m.Update(runeKey('f'))
	require.NotNil(t, cmd)
	nav, ok := cmd().(NavigateTo)
	require.True(t, ok)
	assert.Equal(t, pageEmployees, nav.Page)
	assert.Equal(t, "Dev", nav.Query.Get("designation"))

	// эхо навигации не меняет состояние
	m.Navigate(nav.Query)
	assert.Equal(t, "Dev", m.listing.View().Query.Designation)

	_, _ = m.Update(runeKey('f'))
	_, cmd = m.Update(runeKey('f'))
	require.NotNil(t, cmd)
	nav = cmd().(NavigateTo)
	assert.Empty(t, nav.Query.Encode())
}

func TestEmployeesModel_SortToggle(t *testing.T) {
	m, _, _ := newLoadedEmployees(t)

	m.Update(runeKey('s'))

	assert.Equal(t, "Zed", m.listing.View().Page.Items[0].Name)
}

func TestEmployeesModel_EnterOpensDetail(t *testing.T) {
	m, _, _ := newLoadedEmployees(t)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	nav := cmd().(NavigateTo)
	assert.Equal(t, pageDetail, nav.Page)
	assert.Equal(t, "3", nav.Query.Get("id"))
}

func TestEmployeesModel_DeleteRequiresPermission(t *testing.T) {
	m, _, sessions := newLoadedEmployees(t)
	sessions.EXPECT().HasPermission(gomock.Any(), models.PermDeleteEmployee).Return(false)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})

	assert.Nil(t, cmd)
	assert.False(t, m.showConfirm)
	assert.Equal(t, "Недостаточно прав", m.errMsg)
}

func TestEmployeesModel_DeleteConfirmFlow(t *testing.T) {
	m, employees, sessions := newLoadedEmployees(t)
	sessions.EXPECT().HasPermission(gomock.Any(), models.PermDeleteEmployee).Return(true)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	require.True(t, m.showConfirm)
	assert.Equal(t, "Ann", m.confirm.message)

	employees.EXPECT().Delete(gomock.Any(), "2").Return(nil)
	_, cmd := m.Update(runeKey('y'))
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, employeeDeletedMsg{}, msg)

	employees.EXPECT().List(gomock.Any()).Return(sampleStaff()[:2], nil)
	_, reload := m.Update(msg)
	require.NotNil(t, reload)
	m.Update(reload())

	assert.Equal(t, "Сотрудник удалён", m.status)
	assert.Len(t, m.listing.View().Page.Items, 2)
}

func TestEmployeesModel_DeleteCancelled(t *testing.T) {
	m, _, sessions := newLoadedEmployees(t)
	sessions.EXPECT().HasPermission(gomock.Any(), models.PermDeleteEmployee).Return(true)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	_, cmd := m.Update(runeKey('n'))

	assert.Nil(t, cmd)
	assert.False(t, m.showConfirm)
}

func TestEmployeesModel_PagesClamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	employees := mock.NewMockClientEmployeeService(ctrl)
	m := NewEmployeesModel(context.Background(), employees, mock.NewMockClientSessionService(ctrl))

	staff := make([]models.Employee, 0, 8)
	for i := 0; i < 8; i++ {
		staff = append(staff, models.Employee{ID: fmt.Sprint(i), Name: fmt.Sprintf("E%d", i)})
	}
	employees.EXPECT().List(gomock.Any()).Return(staff, nil)
	m.Update(m.Init()())

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	view := m.listing.View()
	assert.Equal(t, 2, view.Page.Page)
	assert.Len(t, view.Page.Items, 2)

	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 1, m.listing.View().Page.Page)
}

// ── detail ───────────────────────────────────────────────────────────────────

func TestDetailModel_LoadAndCopyEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	employees := mock.NewMockClientEmployeeService(ctrl)
	m := NewDetailModel(context.Background(), employees, mock.NewMockClientSessionService(ctrl))

	var copied string
	prev := clipboardWrite
	clipboardWrite = func(s string) error { copied = s; return nil }
	t.Cleanup(func() { clipboardWrite = prev })

	employees.EXPECT().Get(gomock.Any(), "2").Return(sampleStaff()[1], nil)
	m.Navigate(url.Values{"id": {"2"}})
	m.Update(m.Init()())
	require.Equal(t, "Ann", m.employee.Name)

	m.Update(runeKey('c'))
	assert.Equal(t, "ann@x.com", copied)
	assert.Equal(t, "Email скопирован", m.status)
}

func TestDetailModel_CopyFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewDetailModel(context.Background(), mock.NewMockClientEmployeeService(ctrl), mock.NewMockClientSessionService(ctrl))
	m.employee = sampleStaff()[0]

	prev := clipboardWrite
	clipboardWrite = func(string) error { return errors.New("no clipboard") }
	t.Cleanup(func() { clipboardWrite = prev })

	m.Update(runeKey('c'))
	assert.Contains(t, m.errMsg, "no clipboard")
}

func TestDetailModel_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	employees := mock.NewMockClientEmployeeService(ctrl)
	m := NewDetailModel(context.Background(), employees, mock.NewMockClientSessionService(ctrl))

	employees.EXPECT().Get(gomock.Any(), "x").Return(models.Employee{}, service.ErrEmployeeNotFound)
	m.Navigate(url.Values{"id": {"x"}})
	m.Update(m.Init()())

	assert.Equal(t, "Сотрудник не найден", m.errMsg)
	assert.False(t, m.loading)
}

func TestDetailModel_WithoutID(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewDetailModel(context.Background(), mock.NewMockClientEmployeeService(ctrl), mock.NewMockClientSessionService(ctrl))

	m.Navigate(nil)
	assert.Nil(t, m.Init())
	assert.NotEmpty(t, m.errMsg)
}

// ── form ─────────────────────────────────────────────────────────────────────

func TestEmployeeFormModel_EditSubmitsWithLocationID(t *testing.T) {
	ctrl := gomock.NewController(t)
	employees := mock.NewMockClientEmployeeService(ctrl)
	m := NewEmployeeFormModel(context.Background(), employees, formEdit)

	employees.EXPECT().Get(gomock.Any(), "2").Return(sampleStaff()[1], nil)
	m.Navigate(url.Values{"id": {"2"}})
	m.Update(m.Init()())
	require.Equal(t, "Ann", m.inputs[empName].Value())

	m.inputs[empDesignation].SetValue("Lead")
	want := sampleStaff()[1]
	want.Designation = "Lead"
	employees.EXPECT().Update(gomock.Any(), "2", want).Return(want, nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	_, cmd = m.Update(cmd())
	require.NotNil(t, cmd)

	nav := cmd().(NavigateTo)
	assert.Equal(t, pageDetail, nav.Page)
	assert.Equal(t, "2", nav.Query.Get("id"))
}

func TestEmployeeFormModel_CreateRequiresName(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewEmployeeFormModel(context.Background(), mock.NewMockClientEmployeeService(ctrl), formCreate)
	m.Init()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Equal(t, "Имя обязательно", m.errMsg)
}

func TestEmployeeFormModel_CreateError(t *testing.T) {
	ctrl := gomock.NewController(t)
	employees := mock.NewMockClientEmployeeService(ctrl)
	m := NewEmployeeFormModel(context.Background(), employees, formCreate)
	m.Init()
	m.inputs[empName].SetValue("Neo")

	employees.EXPECT().Create(gomock.Any(), models.Employee{Name: "Neo"}).Return(models.Employee{}, service.ErrPermissionDenied)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.Update(cmd())

	assert.Equal(t, "Недостаточно прав", m.errMsg)
	assert.False(t, m.submitting)
}

// ── dashboard ────────────────────────────────────────────────────────────────

func TestDashboardModel_DesignationOpensFilteredListing(t *testing.T) {
	ctrl := gomock.NewController(t)
	dashboard := mock.NewMockClientDashboardService(ctrl)
	m := NewDashboardModel(context.Background(), dashboard)

	dashboard.EXPECT().Stats(gomock.Any()).Return(models.DashboardStats{
		TotalEmployees: 3,
		ByDesignation:  map[string]int{"QA": 1, "Dev Ops": 2},
	}, nil)
	m.Update(m.Init()())
	require.Equal(t, []string{"Dev Ops", "QA"}, m.designations)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	nav := cmd().(NavigateTo)
	assert.Equal(t, pageEmployees, nav.Page)
	assert.Equal(t, "Dev Ops", nav.Query.Get("designation"))
}

func TestDashboardModel_Forbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	dashboard := mock.NewMockClientDashboardService(ctrl)
	m := NewDashboardModel(context.Background(), dashboard)

	dashboard.EXPECT().Stats(gomock.Any()).Return(models.DashboardStats{}, service.ErrPermissionDenied)
	m.Update(m.Init()())

	assert.Equal(t, "Недостаточно прав", m.errMsg)
	assert.Contains(t, m.View(), "Недостаточно прав")
}

// ── logs ─────────────────────────────────────────────────────────────────────

func TestNextAction(t *testing.T) {
	got := []models.Action{models.ActionAll}
	for i := 0; i < len(models.Actions)+1; i++ {
		got = append(got, nextAction(got[len(got)-1]))
	}

	assert.Equal(t, models.ActionAll, got[len(got)-1])
	assert.Equal(t, models.ActionCreate, got[1])
	assert.Equal(t, models.ActionAll, nextAction("BOGUS"))
}

func TestLogsModel_FilterAndPages(t *testing.T) {
	ctrl := gomock.NewController(t)
	activity := mock.NewMockClientActivityService(ctrl)
	m := NewLogsModel(context.Background(), activity)

	entry := models.ActivityLog{ID: "l1", Action: models.ActionCreate, Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	gomock.InOrder(
		activity.EXPECT().Page(gomock.Any(), models.ActionAll, 1).
			Return(models.Page[models.ActivityLog]{Items: []models.ActivityLog{entry}, Page: 1, TotalPages: 2, TotalItems: 11}, nil),
		activity.EXPECT().Page(gomock.Any(), models.ActionAll, 2).
			Return(models.Page[models.ActivityLog]{Items: []models.ActivityLog{entry}, Page: 2, TotalPages: 2, TotalItems: 11}, nil),
		activity.EXPECT().Page(gomock.Any(), models.ActionCreate, 1).
			Return(models.Page[models.ActivityLog]{Items: []models.ActivityLog{entry}, Page: 1, TotalPages: 1, TotalItems: 1}, nil),
	)

	m.Update(m.Init()())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.NotNil(t, cmd)
	m.Update(cmd())
	assert.Equal(t, 2, m.current)

	// дальше последней страницы не идём
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Nil(t, cmd)

	_, cmd = m.Update(runeKey('f'))
	require.NotNil(t, cmd)
	m.Update(cmd())
	assert.Equal(t, models.ActionCreate, m.action)
	assert.Equal(t, 1, m.current)
}

func TestLogsModel_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	activity := mock.NewMockClientActivityService(ctrl)
	m := NewLogsModel(context.Background(), activity)
	m.page = models.Page[models.ActivityLog]{Items: []models.ActivityLog{{ID: "l7", Action: models.ActionLogin}}, Page: 1, TotalPages: 1, TotalItems: 1}

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	require.True(t, m.showConfirm)

	activity.EXPECT().Delete(gomock.Any(), "l7").Return(nil)
	_, cmd := m.Update(runeKey('y'))
	msg := cmd()

	activity.EXPECT().Page(gomock.Any(), models.ActionAll, 1).Return(models.Page[models.ActivityLog]{Page: 1, TotalPages: 1}, nil)
	_, reload := m.Update(msg)
	m.Update(reload())

	assert.Equal(t, "Запись журнала удалена", m.status)
	assert.Empty(t, m.page.Items)
}

// ── profile ──────────────────────────────────────────────────────────────────

func TestProfileModel_SendsOnlyChanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := mock.NewMockClientSessionService(ctrl)
	m := NewProfileModel(context.Background(), sessions)

	user := models.SessionUser{ID: "u1", Email: "a@x.com", Name: "Ann", Role: models.RoleEmployee}
	sessions.EXPECT().CurrentUser(gomock.Any()).Return(user, true).AnyTimes()
	m.Init()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, "Нет изменений", m.status)

	m.inputs[profName].SetValue("Anna")
	sessions.EXPECT().UpdateProfile(gomock.Any(), "u1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, update models.ProfileUpdate) (models.User, error) {
			require.NotNil(t, update.Name)
			assert.Equal(t, "Anna", *update.Name)
			assert.Nil(t, update.Email)
			assert.Nil(t, update.Photo)
			assert.Nil(t, update.Password)
			return models.User{ID: "u1", Name: "Anna"}, nil
		})

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Equal(t, "Профиль обновлён", m.status)
}

func TestProfileModel_LoggedOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := mock.NewMockClientSessionService(ctrl)
	m := NewProfileModel(context.Background(), sessions)
	sessions.EXPECT().CurrentUser(gomock.Any()).Return(models.SessionUser{}, false)

	assert.Nil(t, m.Init())
	assert.Equal(t, "Требуется вход", m.errMsg)
}

// ── login / register ─────────────────────────────────────────────────────────

func TestLoginModel_SubmitsTrimmedEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := mock.NewMockClientSessionService(ctrl)
	m := NewLoginModel(context.Background(), sessions)

	m.inputs[0].SetValue("  a@x.com ")
	m.inputs[1].SetValue("secret")
	sessions.EXPECT().Login(gomock.Any(), "a@x.com", "secret").Return(models.Session{}, service.ErrInvalidCredentials)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Equal(t, "Неверный email или пароль", m.errMsg)
	assert.False(t, m.submitting)
}

func TestLoginModel_EmptyFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewLoginModel(context.Background(), mock.NewMockClientSessionService(ctrl))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.NotEmpty(t, m.errMsg)
}

func TestRegisterModel_SuccessOpensLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := mock.NewMockClientSessionService(ctrl)
	m := NewRegisterModel(context.Background(), sessions)

	m.inputs[regName].SetValue("Ann")
	m.inputs[regEmail].SetValue("a@x.com")
	m.inputs[regPassword].SetValue("secret1")
	m.inputs[regRepeat].SetValue("secret1")

	sessions.EXPECT().Register(gomock.Any(), models.Registration{Name: "Ann", Email: "a@x.com", Password: "secret1"}).
		Return(models.User{ID: "u1", Email: "a@x.com"}, nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	_, cmd = m.Update(cmd())
	require.NotNil(t, cmd)

	nav := cmd().(NavigateTo)
	assert.Equal(t, pageLogin, nav.Page)
	assert.Equal(t, RegisterSuccessNotice{Email: "a@x.com"}, nav.Payload)
	assert.Empty(t, m.inputs[regName].Value())
}

func TestRegisterModel_PasswordMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewRegisterModel(context.Background(), mock.NewMockClientSessionService(ctrl))
	m.inputs[regPassword].SetValue("secret1")
	m.inputs[regRepeat].SetValue("secret2")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Equal(t, "Пароли не совпадают", m.errMsg)
}

// ── helpers ──────────────────────────────────────────────────────────────────

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{fmt.Errorf("wrap: %w", service.ErrNetwork), "Отсутствует сеть или Сервер недоступен"},
		{service.ErrDuplicateEmail, "Email уже зарегистрирован"},
		{errors.New("dial tcp 127.0.0.1:3001: connect: connection refused"), "Отсутствует сеть или Сервер недоступен"},
		{errors.New("something else"), "something else"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, humanizeError(tt.err))
	}
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "abc", fitText("abc", 5))
	assert.Equal(t, "ab", fitText("abcdef", 2))
	assert.Equal(t, "Алё...", fitText("Алёшенька", 6))
	assert.Equal(t, "abc", fitText("abc", 0))
}
