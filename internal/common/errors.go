// Package common defines shared constants and sentinel errors used across
// the storekeeper server. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")
	ErrorValidation   = errors.New("validation error")
	// ErrorConflict means the row is still referenced and cannot change.
	ErrorConflict = errors.New("conflict")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// ErrConfiguration marks settings the server cannot start with.
	ErrConfiguration = errors.New("configuration error")

	// ErrAssetOperationFailed is reported when an object store call did not
	// confirm success. Callers proceed without the asset.
	ErrAssetOperationFailed = errors.New("asset operation failed")
)
