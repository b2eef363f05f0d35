package user

import (
	"time"

	"github.com/google/uuid"
)

// Identity là tài khoản đăng nhập - ánh xạ bảng identities
type Identity struct {
	ID           uuid.UUID `db:"id" json:"id"`
	UserName     string    `db:"user_name" json:"user_name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"` // Never expose in JSON
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Role - ánh xạ bảng roles
type Role struct {
	ID   uuid.UUID `db:"id" json:"id"`
	Name string    `db:"name" json:"name"`
}

// Baseline roles
const (
	RoleAdministrator = "Administrator"
	RoleCustomer      = "Customer"
)

// BaselineRoles returns the roles every deployment starts with.
func BaselineRoles() []string {
	return []string{RoleAdministrator, RoleCustomer}
}
