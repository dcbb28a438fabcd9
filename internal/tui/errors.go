// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-employee-registry/internal/service"
)

var (
	ErrUserQuit   = errors.New("вышел из программы")
	errNoServices = errors.New("client services are not provided")
)

// humanizeError turns a service error into the message shown to the user.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrNetwork):
		return "Отсутствует сеть или Сервер недоступен"
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Неверный email или пароль"
	case errors.Is(err, service.ErrUserNotFound):
		return "Пользователь не найден"
	case errors.Is(err, service.ErrDuplicateEmail):
		return "Email уже зарегистрирован"
	case errors.Is(err, service.ErrNotAuthenticated):
		return "Требуется вход"
	case errors.Is(err, service.ErrPermissionDenied):
		return "Недостаточно прав"
	case errors.Is(err, service.ErrEmployeeNotFound):
		return "Сотрудник не найден"
	case errors.Is(err, service.ErrUpdateRejected):
		return "Сервер отклонил изменение"
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrInvalidInput):
		return err.Error()
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Сервер недоступен"
	}

	return err.Error()
}
