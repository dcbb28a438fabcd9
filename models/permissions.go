// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Permission names a single capability checked before an operation.
type Permission string

const (
	PermCreateEmployee Permission = "create_employee"
	PermReadEmployee   Permission = "read_employee"
	PermUpdateEmployee Permission = "update_employee"
	PermDeleteEmployee Permission = "delete_employee"
	PermViewDashboard  Permission = "view_dashboard"
	PermViewLogs       Permission = "view_logs"
)

// RolePermissions is the fixed role to permission-set table.
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermCreateEmployee,
		PermReadEmployee,
		PermUpdateEmployee,
		PermDeleteEmployee,
		PermViewDashboard,
		PermViewLogs,
	},
	RoleEmployee: {
		PermReadEmployee,
	},
}

// RouteRequirement describes what a screen needs from the current session.
type RouteRequirement struct {
	RequireAuth  bool
	RequireAdmin bool
}

// RouteDecision is the result of checking a [RouteRequirement].
type RouteDecision int

const (
	// RouteAllow lets the user through.
	RouteAllow RouteDecision = iota
	// RouteRedirectLogin sends an unauthenticated user to the login screen.
	RouteRedirectLogin
	// RouteRedirectHome sends a non-admin user away from an admin-only screen.
	RouteRedirectHome
)

func (d RouteDecision) String() string {
	switch d {
	case RouteAllow:
		return "allow"
	case RouteRedirectLogin:
		return "redirect_login"
	case RouteRedirectHome:
		return "redirect_home"
	default:
		return "unknown"
	}
}
