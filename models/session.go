package models

import "time"

// SessionUser is the part of a [User] kept in the local session record.
type SessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
	Photo string `json:"photo,omitempty"`
}

// IsAdmin reports whether the user holds the admin role.
func (u SessionUser) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Session is the single persisted record identifying the logged-in user.
//
// Token is a reversible identifier derived from the user's email and id. It is
// not a credential. Readers only check that it decodes to User.ID and treat a
// mismatch as no token.
type Session struct {
	User      SessionUser `json:"user"`
	Token     string      `json:"token"`
	LoginTime time.Time   `json:"loginTime"`
}
