package user

import "context"

// AuthService verifies credentials and issues access tokens.
type AuthService interface {
	// Login returns ErrInvalidCredentials for an unknown name or a wrong password.
	// Storage faults are returned wrapped and are never ErrInvalidCredentials.
	Login(ctx context.Context, userName, password string) (*LoginResponse, error)
}
