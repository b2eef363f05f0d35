package user

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown user name and a wrong
	// password; callers must not be able to tell them apart.
	ErrInvalidCredentials = errors.New("invalid user name or password")

	// Conflict
	ErrIdentityExists = errors.New("identity already exists")
	ErrRoleExists     = errors.New("role already exists")

	ErrRoleNotFound = errors.New("role not found")
)
