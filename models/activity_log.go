package models

import "time"

// Action is the kind of change recorded in the activity log.
type Action string

const (
	ActionCreate Action = "CREATE"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
	ActionLogin  Action = "LOGIN"
	ActionLogout Action = "LOGOUT"
)

// ActionAll is the activity-log filter value that matches every action.
const ActionAll Action = "all"

// Actions lists the known actions in display order.
var Actions = []Action{ActionCreate, ActionUpdate, ActionDelete, ActionLogin, ActionLogout}

// Valid reports whether a is one of the known actions.
func (a Action) Valid() bool {
	for _, known := range Actions {
		if a == known {
			return true
		}
	}
	return false
}

// ActivityLog is one append-only audit entry stored under /activityLogs.
//
// EmployeeName is filled on a best-effort basis and may be empty.
type ActivityLog struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	UserEmail    string    `json:"userEmail"`
	Action       Action    `json:"action"`
	EmployeeID   *string   `json:"employeeId"`
	EmployeeName string    `json:"employeeName"`
	Timestamp    time.Time `json:"timestamp"`
	Details      string    `json:"details"`
}

// TableName returns the name of the backend table that stores activity logs.
func (l ActivityLog) TableName() string {
	return "activity_logs"
}

// ActivityRequest describes an audit entry to record. An empty EmployeeID is
// stored as null; an empty EmployeeName is resolved from the backend when
// EmployeeID is set.
type ActivityRequest struct {
	UserID       string
	UserEmail    string
	Action       Action
	EmployeeID   string
	EmployeeName string
	Details      string
}
