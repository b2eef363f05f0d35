package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"bookstore-api/internal/domains/user"
	"bookstore-api/pkg/database"
)

const (
	selectIdentityByName = `
		SELECT id, user_name, email, password_hash, created_at
		FROM identities
		WHERE user_name = $1`

	selectIdentityByEmail = `
		SELECT id, user_name, email, password_hash, created_at
		FROM identities
		WHERE email = $1`

	selectRoleNames = `
		SELECT r.name
		FROM roles r
		JOIN identity_roles ir ON ir.role_id = r.id
		WHERE ir.identity_id = $1
		ORDER BY r.name`

	selectRoleExists = `SELECT EXISTS (SELECT 1 FROM roles WHERE name = $1)`

	insertRole = `INSERT INTO roles (id, name) VALUES ($1, $2)`

	insertIdentity = `
		INSERT INTO identities (id, user_name, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	insertMembership = `
		INSERT INTO identity_roles (identity_id, role_id)
		SELECT $1, id FROM roles WHERE name = $2`
)

// postgresRepository implements user.CredentialStore.
type postgresRepository struct {
	db database.Store
}

func NewPostgresRepository(db database.Store) user.CredentialStore {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) FindByName(ctx context.Context, userName string) (*user.Identity, error) {
	return r.findOne(ctx, "find identity by name", selectIdentityByName, userName)
}

func (r *postgresRepository) FindByEmail(ctx context.Context, email string) (*user.Identity, error) {
	return r.findOne(ctx, "find identity by email", selectIdentityByEmail, email)
}

func (r *postgresRepository) findOne(ctx context.Context, op, query string, arg string) (*user.Identity, error) {
	var i user.Identity
	err := r.db.QueryRow(ctx, query, arg).Scan(&i.ID, &i.UserName, &i.Email, &i.PasswordHash, &i.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, database.StorageFault(op, err)
	}
	return &i, nil
}

func (r *postgresRepository) GetRoles(ctx context.Context, identity *user.Identity) ([]string, error) {
	rows, err := r.db.Query(ctx, selectRoleNames, identity.ID)
	if err != nil {
		return nil, database.StorageFault("get roles", err)
	}

	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, database.StorageFault("get roles", err)
	}
	return names, nil
}

func (r *postgresRepository) RoleExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, selectRoleExists, name).Scan(&exists); err != nil {
		return false, database.StorageFault("role exists", err)
	}
	return exists, nil
}

func (r *postgresRepository) CreateRole(ctx context.Context, name string) error {
	_, err := r.db.Exec(ctx, insertRole, uuid.New(), name)
	if database.IsUniqueViolation(err) {
		return fmt.Errorf("create role %q: %w", name, user.ErrRoleExists)
	}
	if err != nil {
		return database.StorageFault("create role", err)
	}
	return nil
}

// CreateIdentity ghi identity + membership trong cùng 1 transaction;
// role không tồn tại thì rollback toàn bộ
func (r *postgresRepository) CreateIdentity(ctx context.Context, identity *user.Identity, roles ...string) error {
	if identity.ID == uuid.Nil {
		identity.ID = uuid.New()
	}

	err := database.WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, insertIdentity,
			identity.ID,
			identity.UserName,
			identity.Email,
			identity.PasswordHash,
			identity.CreatedAt,
		); err != nil {
			return err
		}

		for _, role := range roles {
			tag, err := tx.Exec(ctx, insertMembership, identity.ID, role)
			if err != nil {
				return err
			}
			if tag.RowsAffected() == 0 {
				return fmt.Errorf("assign %q: %w", role, user.ErrRoleNotFound)
			}
		}
		return nil
	})

	switch {
	case err == nil:
		return nil
	case errors.Is(err, user.ErrRoleNotFound):
		return err
	case database.IsUniqueViolation(err):
		return fmt.Errorf("create identity %q: %w", identity.UserName, user.ErrIdentityExists)
	default:
		return database.StorageFault("create identity", err)
	}
}
