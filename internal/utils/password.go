// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned by CheckPassword when the secret does not match the stored value.
var ErrPasswordMismatch = errors.New("password does not match")

// bcryptMaxBytes is the input limit of bcrypt.GenerateFromPassword.
const bcryptMaxBytes = 72

// ErrPasswordTooLong is returned by HashPassword for passwords bcrypt cannot hash.
var ErrPasswordTooLong = errors.New("password is longer than 72 bytes")

// HashPassword returns the bcrypt hash of password using the default cost.
func HashPassword(password string) (string, error) {
	if len(password) > bcryptMaxBytes {
		return "", ErrPasswordTooLong
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hash), nil
}

// IsBcryptHash reports whether stored looks like a bcrypt hash ($2a$, $2b$, $2y$).
func IsBcryptHash(stored string) bool {
	if len(stored) != 60 {
		return false
	}
	return strings.HasPrefix(stored, "$2a$") ||
		strings.HasPrefix(stored, "$2b$") ||
		strings.HasPrefix(stored, "$2y$")
}

// CheckPassword compares password against stored.
//
// Stored bcrypt hashes are verified with bcrypt. Any other value is treated
// as a legacy plain-text record and compared in constant time; legacy is
// reported as true in that case so the caller can warn about it.
func CheckPassword(stored, password string) (legacy bool, err error) {
	if IsBcryptHash(stored) {
		if err = bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)); err != nil {
			if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
				return false, ErrPasswordMismatch
			}
			return false, fmt.Errorf("error comparing password hash: %w", err)
		}
		return false, nil
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(password)) != 1 {
		return true, ErrPasswordMismatch
	}
	return true, nil
}
