package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"bookstore-api/internal/shared/response"
	"bookstore-api/pkg/jwt"
)

// Context keys set by AuthMiddleware
const (
	ContextClaims = "claims"
	ContextUserID = "userID"
	ContextEmail  = "email"
	ContextRoles  = "roles"
)

// TokenValidator is the part of jwt.Manager the middleware needs.
type TokenValidator interface {
	Validate(token string, now time.Time) (*jwt.Claims, error)
}

// AuthMiddleware - Middleware xác thực Bearer token
// Token hết hạn, sai chữ ký hoặc sai issuer/audience đều trả 401 như nhau
func AuthMiddleware(tokens TokenValidator, clock clockwork.Clock) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Lấy token từ Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.AbortUnauthorized(c)
			return
		}

		// 2. Extract token từ "Bearer <token>"
		scheme, token, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			response.AbortUnauthorized(c)
			return
		}

		// 3. Verify và parse JWT
		claims, err := tokens.Validate(strings.TrimSpace(token), clock.Now())
		if err != nil {
			log.Debug().
				Err(err).
				Str("request_id", c.GetString(ContextRequestID)).
				Msg("rejected bearer token")
			response.AbortUnauthorized(c)
			return
		}

		// 4. Set claims vào context
		c.Set(ContextClaims, claims)
		c.Set(ContextUserID, claims.NameID)
		c.Set(ContextEmail, claims.Subject)
		c.Set(ContextRoles, claims.Roles)

		c.Next()
	}
}

// RequireRoles cho phép request khi user có ít nhất một trong các role.
// Phải đứng sau AuthMiddleware.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		granted, ok := c.Get(ContextRoles)
		if !ok {
			response.AbortUnauthorized(c)
			return
		}

		held, _ := granted.([]string)
		for _, want := range roles {
			for _, have := range held {
				if have == want {
					c.Next()
					return
				}
			}
		}

		response.AbortForbidden(c)
	}
}
