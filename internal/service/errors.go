package service

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")

	// ErrInvalidQuery means the input was empty after sanitization.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrNotFound means an owner-scoped record does not exist for the caller.
	// Deliberately the same answer whether the record is absent or belongs to
	// someone else.
	ErrNotFound = errors.New("not found")

	// ErrUpstream means every configured analysis provider failed.
	ErrUpstream = errors.New("upstream provider failure")
)
