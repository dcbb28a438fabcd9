// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Role is the authorization role of a registry user.
type Role string

const (
	// RoleAdmin may manage employees and view the dashboard and activity logs.
	RoleAdmin Role = "admin"
	// RoleEmployee may only read employee records.
	RoleEmployee Role = "employee"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

// User is a registry account as stored by the backend under /users.
//
// PasswordHash keeps the backend field name of the original front-end. Records
// written by this client hold a bcrypt hash; older records may hold the plain
// secret.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"passwordHash,omitempty"`
	Photo        string    `json:"photo,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// SessionUser returns the identity subset stored in a session.
func (u User) SessionUser() SessionUser {
	return SessionUser{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
		Photo: u.Photo,
	}
}

// TableName returns the name of the backend table that stores users.
func (u User) TableName() string {
	return "users"
}

// Registration is the input of account registration. Password is the plain
// secret and is hashed before it leaves the client.
type Registration struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
	Photo    string `json:"photo,omitempty"`
}
