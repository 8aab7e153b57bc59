// Package common defines sentinel errors shared across CloudShare layers.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")

	// Input / reference errors, detected before any mutation.
	ErrValidation       = errors.New("validation error")
	ErrInvalidReference = errors.New("invalid folder reference")

	// Blob store errors.
	ErrStorageFailure = errors.New("storage failure")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
