package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTTL là thời gian sống mặc định của access token
const DefaultTTL = 5 * time.Minute

var (
	ErrTokenExpired          = errors.New("token expired")
	ErrTokenInvalidSignature = errors.New("token signature is invalid")
	ErrTokenInvalid          = errors.New("token is invalid")
)

// Claims represents JWT claims structure
// sub = email, jti = random id, iss = aud = issuer đã cấu hình
type Claims struct {
	NameID string   `json:"nameid"`
	Roles  []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// Manager handles JWT operations
// Read-only sau khi khởi tạo, dùng chung giữa các goroutine
type Manager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewManager creates new JWT manager. ttl <= 0 falls back to DefaultTTL.
func NewManager(secret, issuer string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{secret: []byte(secret), issuer: issuer, ttl: ttl}
}

// TTL returns the lifetime given to issued tokens.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue signs an HS256 access token for the subject at now.
func (m *Manager) Issue(subjectEmail, subjectID string, roles []string, now time.Time) (string, error) {
	var granted []string
	if len(roles) > 0 {
		granted = append(make([]string, 0, len(roles)), roles...)
	}

	claims := Claims{
		NameID: subjectID,
		Roles:  granted,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectEmail,
			ID:        uuid.NewString(),
			Issuer:    m.issuer,
			Audience:  jwt.ClaimStrings{m.issuer},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate parses tokenString and checks signature, issuer, audience and
// expiry as of now. A token is expired from its exp instant onwards.
func (m *Manager) Validate(tokenString string, now time.Time) (*Claims, error) {
	claims := &Claims{}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithAudience(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)

	_, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	switch {
	case err == nil:
		return claims, nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return nil, ErrTokenInvalidSignature
	default:
		return nil, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}
}
