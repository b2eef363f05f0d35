package service

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"

	"bookstore-api/internal/domains/user"
	"bookstore-api/pkg/logger"
)

// Account là 1 tài khoản mặc định được seed khi khởi động
type Account struct {
	UserName string
	Email    string
	Role     string
}

// BaselineAccounts - giữ nguyên danh sách tài khoản của hệ thống cũ
func BaselineAccounts() []Account {
	return []Account{
		{UserName: "admin", Email: "admin@bookstore.com", Role: user.RoleAdministrator},
		{UserName: "customer1", Email: "customer1@gmail.com", Role: user.RoleCustomer},
		{UserName: "customer2", Email: "customer2@gmail.com", Role: user.RoleCustomer},
	}
}

// Seeder tạo roles và accounts mặc định. Chạy lại nhiều lần không đổi kết quả.
type Seeder struct {
	store    user.CredentialStore
	hasher   user.PasswordHasher
	clock    clockwork.Clock
	password string
	roles    []string
	accounts []Account
}

func NewSeeder(store user.CredentialStore, hasher user.PasswordHasher, clock clockwork.Clock, password string) *Seeder {
	return &Seeder{
		store:    store,
		hasher:   hasher,
		clock:    clock,
		password: password,
		roles:    user.BaselineRoles(),
		accounts: BaselineAccounts(),
	}
}

// EnsureBaseline creates every missing baseline role, then every baseline
// account whose email is not taken. Existing records are never modified and
// roles are only assigned to accounts created here.
func (s *Seeder) EnsureBaseline(ctx context.Context) error {
	for _, role := range s.roles {
		if err := s.ensureRole(ctx, role); err != nil {
			return err
		}
	}

	for _, acc := range s.accounts {
		if err := s.ensureAccount(ctx, acc); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) ensureRole(ctx context.Context, name string) error {
	exists, err := s.store.RoleExists(ctx, name)
	if err != nil {
		return fmt.Errorf("seed role %s: %w", name, err)
	}
	if exists {
		logger.Debug("role already present", map[string]interface{}{"role": name})
		return nil
	}

	if err := s.store.CreateRole(ctx, name); err != nil {
		return fmt.Errorf("seed role %s: %w", name, err)
	}
	logger.Info("seeded role", map[string]interface{}{"role": name})
	return nil
}

func (s *Seeder) ensureAccount(ctx context.Context, acc Account) error {
	existing, err := s.store.FindByEmail(ctx, acc.Email)
	if err != nil {
		return fmt.Errorf("seed account %s: %w", acc.UserName, err)
	}
	if existing != nil {
		// không ghi đè account đã có, kể cả khi password hay role đã bị đổi
		logger.Debug("account already present", map[string]interface{}{"email": acc.Email})
		return nil
	}

	hash, err := s.hasher.Hash(s.password)
	if err != nil {
		return fmt.Errorf("seed account %s: %w", acc.UserName, err)
	}

	identity := &user.Identity{
		UserName:     acc.UserName,
		Email:        acc.Email,
		PasswordHash: hash,
		CreatedAt:    s.clock.Now().UTC(),
	}
	if err := s.store.CreateIdentity(ctx, identity, acc.Role); err != nil {
		return fmt.Errorf("seed account %s: %w", acc.UserName, err)
	}

	logger.Info("seeded account", map[string]interface{}{
		"user_name": acc.UserName,
		"role":      acc.Role,
	})
	return nil
}
