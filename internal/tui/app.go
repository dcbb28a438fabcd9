package tui

import (
	"context"

	"github.com/MKhiriev/go-employee-registry/internal/service"
	"github.com/MKhiriev/go-employee-registry/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// pageRequirements is the route guard table. Pages missing from it are open.
var pageRequirements = map[string]models.RouteRequirement{
	pageEmployees: {RequireAuth: true},
	pageDetail:    {RequireAuth: true},
	pageProfile:   {RequireAuth: true},
	pageCreate:    {RequireAuth: true, RequireAdmin: true},
	pageEdit:      {RequireAuth: true, RequireAdmin: true},
	pageDashboard: {RequireAuth: true, RequireAdmin: true},
	pageLogs:      {RequireAuth: true, RequireAdmin: true},
}

var pagePaths = map[string]string{
	pageMenu:      "/menu",
	pageLogin:     "/login",
	pageRegister:  "/register",
	pageEmployees: "/",
	pageDetail:    "/view-employee",
	pageCreate:    "/create-employee",
	pageEdit:      "/update-employee",
	pageDashboard: "/dashboard",
	pageLogs:      "/activity-logs",
	pageProfile:   "/profile",
}

// RootModel is a TUI router:
// 1) keeps active page and its location
// 2) checks the route guard on every navigation
// 3) handles global hotkeys (quit, logout, build info)
// 4) delegates all other messages to the active page
type RootModel struct {
	ctx      context.Context
	sessions service.ClientSessionService

	pages     map[string]tea.Model
	start     string
	current   string
	location  string
	buildInfo models.AppBuildInfo

	quitByUser    bool
	showBuildInfo bool
	showError     bool
	errorOverlay  errorOverlayModel
}

// NewRootModel registers all pages. startPage is opened through the route
// guard on Init, so a logged-out user asking for a protected page lands on
// the login screen.
func NewRootModel(
	ctx context.Context,
	sessions service.ClientSessionService,
	pages map[string]tea.Model,
	startPage string,
	buildInfo models.AppBuildInfo,
) RootModel {
	return RootModel{
		ctx:       ctx,
		sessions:  sessions,
		pages:     pages,
		start:     startPage,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	start := r.start
	return func() tea.Msg { return NavigateTo{Page: start} }
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "v":
			if r.current == pageMenu {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showError {
			if key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.esc) {
				r.showError = false
				r.errorOverlay.message = ""
			}
			return r, nil
		}
		if r.showBuildInfo {
			return r, nil
		}

		if key.Matches(keyMsg, keys.logout) && r.isProtectedPage() {
			return r, r.cmdLogout()
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		return r.navigate(msg)
	case LoginResult:
		next, cmd := r.delegate(msg)
		if msg.Err != nil {
			return next, cmd
		}
		routed, navCmd := next.navigate(NavigateTo{Page: pageEmployees})
		return routed, tea.Batch(cmd, navCmd)
	case LogoutResult:
		if msg.Err != nil {
			r.showError = true
			r.errorOverlay.message = humanizeError(msg.Err)
			return r, nil
		}
		return r.navigate(NavigateTo{Page: pageLogin})
	}

	return r.delegate(msg)
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.showError {
		return r.errorOverlay.View()
	}

	page, ok := r.pages[r.current]
	if !ok || page == nil {
		return renderPage("EMPLOYEE REGISTRY", "", "")
	}
	return helpStyle.Render(r.location) + "\n" + page.View()
}

// Location is the current page path with its query string.
func (r RootModel) Location() string {
	return r.location
}

func (r RootModel) delegate(msg tea.Msg) (RootModel, tea.Cmd) {
	page, ok := r.pages[r.current]
	if !ok || page == nil {
		return r, nil
	}

	updated, cmd := page.Update(msg)
	r.pages[r.current] = updated
	return r, cmd
}

func (r RootModel) navigate(nav NavigateTo) (RootModel, tea.Cmd) {
	target := r.resolve(nav.Page)
	page, ok := r.pages[target]
	if !ok || page == nil {
		return r, nil
	}

	query := nav.Query
	if target != nav.Page {
		query = nil
	}

	same := target == r.current
	r.current = target
	r.location = pagePaths[target]
	if len(query) > 0 {
		r.location += "?" + query.Encode()
	}
	r.showBuildInfo = false

	if n, ok := page.(navigable); ok {
		n.Navigate(query)
	}

	var cmds []tea.Cmd
	if !same {
		cmds = append(cmds, page.Init())
	}
	if nav.Payload != nil {
		payload := nav.Payload
		cmds = append(cmds, func() tea.Msg { return payload })
	}
	return r, tea.Batch(cmds...)
}

// resolve applies the route guard to page.
func (r RootModel) resolve(page string) string {
	req, guarded := pageRequirements[page]
	if !guarded {
		return page
	}

	switch r.sessions.Authorize(r.ctx, req) {
	case models.RouteRedirectLogin:
		return pageLogin
	case models.RouteRedirectHome:
		return pageEmployees
	default:
		return page
	}
}

func (r RootModel) isProtectedPage() bool {
	_, ok := pageRequirements[r.current]
	return ok
}

func (r RootModel) cmdLogout() tea.Cmd {
	ctx := r.ctx
	sessions := r.sessions

	return func() tea.Msg {
		return LogoutResult{Err: sessions.Logout(ctx)}
	}
}
