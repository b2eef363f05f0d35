package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
)

// Role names
const (
	RoleAdministrator = "Administrator"
	RoleCustomer      = "Customer"
)

// Guards gom các middleware phân quyền dùng khi đăng ký route
type Guards struct {
	Authenticated   gin.HandlerFunc
	Admin           gin.HandlerFunc
	AdminOrCustomer gin.HandlerFunc
}

// NewGuards: Admin và AdminOrCustomer phải đứng sau Authenticated
func NewGuards(tokens TokenValidator, clock clockwork.Clock) Guards {
	return Guards{
		Authenticated:   AuthMiddleware(tokens, clock),
		Admin:           RequireRoles(RoleAdministrator),
		AdminOrCustomer: RequireRoles(RoleAdministrator, RoleCustomer),
	}
}
