package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"bookstore-api/internal/domains/user"
	"bookstore-api/pkg/metrics"
)

// TokenIssuer mints access tokens. *jwt.Manager satisfies it.
type TokenIssuer interface {
	Issue(subjectEmail, subjectID string, roles []string, now time.Time) (string, error)
}

// authService implement user.AuthService interface
type authService struct {
	store  user.CredentialStore
	hasher user.PasswordHasher
	tokens TokenIssuer
	clock  clockwork.Clock

	// dummyHash được verify khi user name không tồn tại để 2 nhánh thất bại tốn thời gian như nhau
	dummyHash string
}

func NewAuthService(
	store user.CredentialStore,
	hasher user.PasswordHasher,
	tokens TokenIssuer,
	clock clockwork.Clock,
) (user.AuthService, error) {
	dummy, err := hasher.Hash(uuid.NewString())
	if err != nil {
		return nil, fmt.Errorf("prepare dummy hash: %w", err)
	}

	return &authService{
		store:     store,
		hasher:    hasher,
		tokens:    tokens,
		clock:     clock,
		dummyHash: dummy,
	}, nil
}

func (s *authService) Login(ctx context.Context, userName, password string) (*user.LoginResponse, error) {
	identity, err := s.store.FindByName(ctx, userName)
	if err != nil {
		metrics.RecordLogin(metrics.LoginError)
		log.Error().Err(err).Str("user_name", userName).Msg("login: credential lookup failed")
		return nil, fmt.Errorf("find identity: %w", err)
	}

	hash := s.dummyHash
	if identity != nil {
		hash = identity.PasswordHash
	}
	matched := s.hasher.Verify(hash, password)

	if identity == nil || !matched {
		metrics.RecordLogin(metrics.LoginFailure)
		log.Warn().Str("user_name", userName).Msg("login: invalid credentials")
		return nil, user.ErrInvalidCredentials
	}

	// Roles đọc tại thời điểm login; token giữ snapshot này tới khi hết hạn
	roles, err := s.store.GetRoles(ctx, identity)
	if err != nil {
		metrics.RecordLogin(metrics.LoginError)
		log.Error().Err(err).Str("user_name", userName).Msg("login: role lookup failed")
		return nil, fmt.Errorf("get roles: %w", err)
	}

	token, err := s.tokens.Issue(identity.Email, identity.ID.String(), roles, s.clock.Now())
	if err != nil {
		metrics.RecordLogin(metrics.LoginError)
		return nil, fmt.Errorf("issue token: %w", err)
	}

	metrics.RecordLogin(metrics.LoginSuccess)
	log.Info().Str("user_name", userName).Strs("roles", roles).Msg("login: success")

	return &user.LoginResponse{Token: token}, nil
}
