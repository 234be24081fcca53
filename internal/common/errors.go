// Package common defines shared constants, sentinel errors and the Failure
// value used across the client layers. Callers should use errors.Is to
// match the sentinel values.
package common

import "errors"

var (
	// Repository / data-source errors.
	ErrNotFound = errors.New("not found")

	// Auth errors.
	ErrUnauthorized       = errors.New("unauthorized")
	ErrEmailAlreadyInUse  = errors.New("email already in use")
	ErrSessionNotFound    = errors.New("no active session")
	ErrTokenExpired       = errors.New("token expired")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
