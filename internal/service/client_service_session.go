// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-employee-registry/internal/adapter"
	"github.com/MKhiriev/go-employee-registry/internal/logger"
	"github.com/MKhiriev/go-employee-registry/internal/store"
	"github.com/MKhiriev/go-employee-registry/internal/utils"
	"github.com/MKhiriev/go-employee-registry/internal/validators"
	"github.com/MKhiriev/go-employee-registry/internal/workers"
	"github.com/MKhiriev/go-employee-registry/models"
)

const (
	userIDPrefix        = "u"
	activityLogIDPrefix = "log"

	detailsLogin  = "User logged in"
	detailsLogout = "User logged out"
)

// avatarPalette is indexed by the character count of the name.
var avatarPalette = []string{"#4F46E5", "#2587F9", "#EC4899", "#F59E0B", "#10B981", "#8B5CF6"}

const avatarTemplate = `
    <svg width="100" height="100" viewBox="0 0 100 100" fill="none" xmlns="http://www.w3.org/2000/svg">
      <rect width="100" height="100" fill="%s"/>
      <text x="50" y="50" font-family="Arial" font-size="48" fill="white" text-anchor="middle" dy=".3em">
        %s
      </text>
    </svg>
  `

type clientSessionService struct {
	sessions   store.SessionStore
	backend    adapter.BackendAdapter
	dispatcher workers.Dispatcher
	validator  validators.Validator
	ids        *utils.UUIDGenerator
	now        func() time.Time

	logger *logger.Logger
}

// NewClientSessionService creates a ClientSessionService. Activity-log writes
// are handed to dispatcher and never block the caller.
func NewClientSessionService(
	sessions store.SessionStore,
	backend adapter.BackendAdapter,
	dispatcher workers.Dispatcher,
	logger *logger.Logger,
) ClientSessionService {
	return &clientSessionService{
		sessions:   sessions,
		backend:    backend,
		dispatcher: dispatcher,
		validator:  validators.NewRegistryValidator(),
		ids:        utils.NewUUIDGenerator(),
		now:        time.Now,
		logger:     logger,
	}
}

// DefaultAvatar returns a data URI of a 100x100 SVG showing the upper-cased
// first character of name. The background colour is picked by the number of
// characters in name.
func DefaultAvatar(name string) string {
	initial := ""
	if r, _ := utf8.DecodeRuneInString(name); r != utf8.RuneError {
		initial = string(unicode.ToUpper(r))
	}
	color := avatarPalette[utf8.RuneCountInString(name)%len(avatarPalette)]

	svg := fmt.Sprintf(avatarTemplate, color, initial)
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
}

func (s *clientSessionService) Register(ctx context.Context, reg models.Registration) (models.User, error) {
	if err := s.validator.Validate(ctx, reg); err != nil {
		return models.User{}, mapValidationError(err)
	}
	if reg.Role == "" {
		reg.Role = models.RoleEmployee
	}

	existing, err := s.backend.FindUsersByEmail(ctx, reg.Email)
	if err != nil {
		s.logger.Err(err).Str("func", "clientSessionService.Register").Msg("error looking up email")
		return models.User{}, mapAdapterError(err)
	}
	if len(existing) > 0 {
		return models.User{}, ErrDuplicateEmail
	}

	hash, err := utils.HashPassword(reg.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	photo := reg.Photo
	if photo == "" {
		photo = DefaultAvatar(reg.Name)
	}

	now := s.now().UTC()
	created, err := s.backend.CreateUser(ctx, models.User{
		ID:           s.ids.GenerateWithPrefix(userIDPrefix),
		Email:        reg.Email,
		Name:         reg.Name,
		Role:         reg.Role,
		PasswordHash: hash,
		Photo:        photo,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		s.logger.Err(err).Str("func", "clientSessionService.Register").Msg("error creating user")
		return models.User{}, mapAdapterError(err)
	}

	created.PasswordHash = ""
	return created, nil
}

func (s *clientSessionService) Login(ctx context.Context, email, password string) (models.Session, error) {
	if email == "" || password == "" {
		return models.Session{}, fmt.Errorf("%w: email and password required", ErrValidation)
	}

	users, err := s.backend.FindUsersByEmail(ctx, email)
	if err != nil {
		s.logger.Err(err).Str("func", "clientSessionService.Login").Msg("error looking up user")
		return models.Session{}, mapAdapterError(err)
	}
	if len(users) == 0 {
		return models.Session{}, ErrUserNotFound
	}

	user := users[0]
	legacy, err := utils.CheckPassword(user.PasswordHash, password)
	if err != nil {
		return models.Session{}, ErrInvalidCredentials
	}
	if legacy {
		s.logger.Warn().Str("user_id", user.ID).Msg("user record holds a plain-text password")
	}

	session := models.Session{
		User:      user.SessionUser(),
		Token:     utils.EncodeSessionToken(user.Email, user.ID),
		LoginTime: s.now().UTC(),
	}
	if err = s.sessions.Set(ctx, session); err != nil {
		s.logger.Err(err).Str("func", "clientSessionService.Login").Msg("error persisting session")
		return models.Session{}, fmt.Errorf("persist session: %w", err)
	}

	s.RecordActivity(ctx, models.ActivityRequest{
		UserID:    user.ID,
		UserEmail: user.Email,
		Action:    models.ActionLogin,
		Details:   detailsLogin,
	})

	return session, nil
}

func (s *clientSessionService) Logout(ctx context.Context) error {
	if user, ok := s.CurrentUser(ctx); ok {
		s.RecordActivity(ctx, models.ActivityRequest{
			UserID:    user.ID,
			UserEmail: user.Email,
			Action:    models.ActionLogout,
			Details:   detailsLogout,
		})
	}

	if err := s.sessions.Clear(ctx); err != nil {
		s.logger.Err(err).Str("func", "clientSessionService.Logout").Msg("error clearing session")
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// session is the fail-closed read every accessor goes through.
func (s *clientSessionService) session(ctx context.Context) (models.Session, bool) {
	session, err := s.sessions.Get(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrSessionNotFound) {
			s.logger.Debug().Err(err).Msg("session is unreadable, treating as logged out")
		}
		return models.Session{}, false
	}
	if session.User.ID == "" {
		return models.Session{}, false
	}
	return session, true
}

func (s *clientSessionService) CurrentUser(ctx context.Context) (models.SessionUser, bool) {
	session, ok := s.session(ctx)
	return session.User, ok
}

func (s *clientSessionService) Token(ctx context.Context) (string, bool) {
	session, ok := s.session(ctx)
	if !ok || session.Token == "" {
		return "", false
	}

	// токен должен указывать на пользователя сессии
	_, id, err := utils.DecodeSessionToken(session.Token)
	if err != nil || id != session.User.ID {
		s.logger.Debug().Err(err).Str("user_id", session.User.ID).Msg("session token does not match session user")
		return "", false
	}
	return session.Token, true
}

func (s *clientSessionService) IsAuthenticated(ctx context.Context) bool {
	_, ok := s.CurrentUser(ctx)
	return ok
}

func (s *clientSessionService) IsAdmin(ctx context.Context) bool {
	user, ok := s.CurrentUser(ctx)
	return ok && user.IsAdmin()
}

func (s *clientSessionService) HasPermission(ctx context.Context, permission models.Permission) bool {
	user, ok := s.CurrentUser(ctx)
	if !ok {
		return false
	}
	return slices.Contains(models.RolePermissions[user.Role], permission)
}

func (s *clientSessionService) Authorize(ctx context.Context, req models.RouteRequirement) models.RouteDecision {
	if !req.RequireAuth && !req.RequireAdmin {
		return models.RouteAllow
	}

	user, ok := s.CurrentUser(ctx)
	if !ok {
		return models.RouteRedirectLogin
	}
	if req.RequireAdmin && !user.IsAdmin() {
		return models.RouteRedirectHome
	}
	return models.RouteAllow
}

func (s *clientSessionService) RecordActivity(ctx context.Context, req models.ActivityRequest) {
	entry := models.ActivityLog{
		ID:           s.ids.GenerateWithPrefix(activityLogIDPrefix),
		UserID:       req.UserID,
		UserEmail:    req.UserEmail,
		Action:       req.Action,
		EmployeeName: req.EmployeeName,
		Timestamp:    s.now().UTC(),
		Details:      req.Details,
	}
	if req.EmployeeID != "" {
		employeeID := req.EmployeeID
		entry.EmployeeID = &employeeID
	}

	task := func(ctx context.Context) error {
		if entry.EmployeeID != nil && entry.EmployeeName == "" {
			employee, err := s.backend.GetEmployee(ctx, *entry.EmployeeID)
			if err != nil {
				s.logger.Debug().Err(err).Str("employee_id", *entry.EmployeeID).Msg("employee name lookup failed")
			} else {
				entry.EmployeeName = employee.Name
			}
		}

		if _, err := s.backend.CreateActivityLog(ctx, entry); err != nil {
			return fmt.Errorf("%w: %w", ErrLogWriteFailure, err)
		}
		return nil
	}

	if !s.dispatcher.Dispatch(ctx, "activity."+strings.ToLower(string(req.Action)), task) {
		s.logger.Warn().Err(ErrLogWriteFailure).Str("action", string(req.Action)).Msg("activity entry was not scheduled")
	}
}

func (s *clientSessionService) UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (models.User, error) {
	now := s.now().UTC()
	patch := models.UserPatch{
		Name:      update.Name,
		Email:     update.Email,
		Photo:     update.Photo,
		Role:      update.Role,
		UpdatedAt: &now,
	}

	if err := s.validator.Validate(ctx, patch); err != nil {
		return models.User{}, mapValidationError(err)
	}

	if update.Password != nil {
		reg := models.Registration{Password: *update.Password}
		if err := s.validator.Validate(ctx, reg, validators.FieldPassword); err != nil {
			return models.User{}, mapValidationError(err)
		}
		hash, err := utils.HashPassword(*update.Password)
		if err != nil {
			return models.User{}, fmt.Errorf("hash password: %w", err)
		}
		patch.PasswordHash = &hash
	}

	updated, err := s.backend.PatchUser(ctx, userID, patch)
	if err != nil {
		s.logger.Err(err).Str("func", "clientSessionService.UpdateProfile").Msg("error patching user")
		if errors.Is(err, adapter.ErrUnavailable) {
			return models.User{}, fmt.Errorf("%w: %w", ErrNetwork, err)
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrUpdateRejected, err)
	}

	if session, ok := s.session(ctx); ok && session.User.ID == userID {
		session.User = mergeSessionUser(session.User, update)
		if err = s.sessions.Set(ctx, session); err != nil {
			s.logger.Err(err).Str("func", "clientSessionService.UpdateProfile").Msg("error updating session")
		}
	}

	updated.PasswordHash = ""
	return updated, nil
}

func mergeSessionUser(u models.SessionUser, update models.ProfileUpdate) models.SessionUser {
	if update.Name != nil {
		u.Name = *update.Name
	}
	if update.Email != nil {
		u.Email = *update.Email
	}
	if update.Photo != nil {
		u.Photo = *update.Photo
	}
	if update.Role != nil {
		u.Role = *update.Role
	}
	return u
}
