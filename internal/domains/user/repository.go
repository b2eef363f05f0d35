package user

import (
	"context"
)

// CredentialStore là data access contract cho identities và roles.
type CredentialStore interface {
	// FindByName returns nil, nil when no identity has that user name.
	FindByName(ctx context.Context, userName string) (*Identity, error)

	// FindByEmail returns nil, nil when no identity has that email.
	FindByEmail(ctx context.Context, email string) (*Identity, error)

	// GetRoles returns the role names of identity, sorted.
	GetRoles(ctx context.Context, identity *Identity) ([]string, error)

	RoleExists(ctx context.Context, name string) (bool, error)

	// CreateRole returns ErrRoleExists when the name is taken.
	CreateRole(ctx context.Context, name string) error

	// CreateIdentity inserts identity and its role memberships in one transaction.
	// Returns ErrIdentityExists when the user name or email is taken.
	CreateIdentity(ctx context.Context, identity *Identity, roles ...string) error
}
