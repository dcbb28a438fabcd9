package models

import "time"

// UserPatch is a partial update of a [User] sent as PATCH /users/:id.
// Nil fields are left untouched.
type UserPatch struct {
	Name         *string    `json:"name,omitempty"`
	Email        *string    `json:"email,omitempty"`
	Photo        *string    `json:"photo,omitempty"`
	Role         *Role      `json:"role,omitempty"`
	PasswordHash *string    `json:"passwordHash,omitempty"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Photo == nil &&
		p.Role == nil && p.PasswordHash == nil && p.UpdatedAt == nil
}

// Apply returns u with the non-nil patch fields written over it.
func (p UserPatch) Apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Photo != nil {
		u.Photo = *p.Photo
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.PasswordHash != nil {
		u.PasswordHash = *p.PasswordHash
	}
	if p.UpdatedAt != nil {
		u.UpdatedAt = *p.UpdatedAt
	}
	return u
}

// ProfileUpdate is the user-facing profile change. Password holds the plain
// secret; nil fields are left untouched.
type ProfileUpdate struct {
	Name     *string
	Email    *string
	Photo    *string
	Role     *Role
	Password *string
}
