package service

import "errors"

// Failure kinds surfaced to the API layer. Handlers map these onto HTTP
// status codes; messages are safe to show to callers.
var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrSelfDeletion       = errors.New("cannot delete your own account")
	ErrSelfModification   = errors.New("cannot change your own admin status")
	ErrAdminAlreadyExists = errors.New("an administrator already exists")
)
