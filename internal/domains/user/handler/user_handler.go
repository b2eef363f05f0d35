package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bookstore-api/internal/domains/user"
	"bookstore-api/internal/shared/response"
)

// UserHandler xử lý HTTP requests cho user domain
type UserHandler struct {
	auth user.AuthService
}

func NewUserHandler(auth user.AuthService) *UserHandler {
	return &UserHandler{auth: auth}
}

// Login - POST /api/v1/users/login
// 200 {"token": "..."}, 401 khi sai user name hoặc password
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, response.Details(err))
		return
	}

	resp, err := h.auth.Login(c.Request.Context(), req.UserName, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			response.Unauthorized(c)
			return
		}
		log.Error().Err(err).Msg("users: login failed")
		response.InternalServerError(c)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.POST("/login", h.Login)
	}
}
