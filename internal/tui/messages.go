package tui

import (
	"net/url"

	"github.com/MKhiriev/go-employee-registry/models"
)

// Page names known to [RootModel].
const (
	pageMenu      = "menu"
	pageLogin     = "login"
	pageRegister  = "register"
	pageEmployees = "employees"
	pageDetail    = "detail"
	pageCreate    = "create"
	pageEdit      = "edit"
	pageDashboard = "dashboard"
	pageLogs      = "logs"
	pageProfile   = "profile"
)

// NavigateTo asks [RootModel] to switch to Page. Query plays the role of the
// location query string; pages that implement [navigable] receive it before
// Init. Navigating to the page that is already open only delivers Query.
type NavigateTo struct {
	Page    string
	Query   url.Values
	Payload any
}

// navigable is implemented by pages that read the location query.
type navigable interface {
	Navigate(query url.Values)
}

// LoginResult is produced by the login screen.
type LoginResult struct {
	Session models.Session
	Err     error
}

// RegisterResult is produced by the registration screen.
type RegisterResult struct {
	User models.User
	Err  error
}

// RegisterSuccessNotice is shown by the login screen after registration.
type RegisterSuccessNotice struct {
	Email string
}

// LogoutResult is produced after the session is cleared.
type LogoutResult struct {
	Err error
}

type employeesLoadedMsg struct {
	seq   uint64
	items []models.Employee
	err   error
}

type employeeLoadedMsg struct {
	employee models.Employee
	err      error
}

type employeeSavedMsg struct {
	employee models.Employee
	err      error
}

type employeeDeletedMsg struct {
	err error
}

type statsLoadedMsg struct {
	stats models.DashboardStats
	err   error
}

type logsLoadedMsg struct {
	page models.Page[models.ActivityLog]
	err  error
}

type logDeletedMsg struct {
	err error
}

type profileSavedMsg struct {
	user models.User
	err  error
}
