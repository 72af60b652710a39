package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrEmailNotFound      = errors.New("email not found")
)
