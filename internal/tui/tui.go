package tui

import (
	"context"

	"github.com/MKhiriev/go-employee-registry/internal/logger"
	"github.com/MKhiriev/go-employee-registry/internal/service"
	"github.com/MKhiriev/go-employee-registry/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errNoServices
	}
	if log == nil {
		log = logger.Nop()
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: log}, nil
}

// Pages builds every screen of the client.
func (t *TUI) Pages(ctx context.Context) map[string]tea.Model {
	s := t.services

	return map[string]tea.Model{
		pageMenu:      NewMenuModel(),
		pageLogin:     NewLoginModel(ctx, s.SessionService),
		pageRegister:  NewRegisterModel(ctx, s.SessionService),
		pageEmployees: NewEmployeesModel(ctx, s.EmployeeService, s.SessionService),
		pageDetail:    NewDetailModel(ctx, s.EmployeeService, s.SessionService),
		pageCreate:    NewEmployeeFormModel(ctx, s.EmployeeService, formCreate),
		pageEdit:      NewEmployeeFormModel(ctx, s.EmployeeService, formEdit),
		pageDashboard: NewDashboardModel(ctx, s.DashboardService),
		pageLogs:      NewLogsModel(ctx, s.ActivityService),
		pageProfile:   NewProfileModel(ctx, s.SessionService),
	}
}

// Run opens the employee listing, or the login screen when nobody is logged
// in, and blocks until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(ctx, t.services.SessionService, t.Pages(ctx), pageEmployees, t.buildInfo)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		t.logger.Err(err).Str("func", "TUI.Run").Msg("tui program failed")
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
