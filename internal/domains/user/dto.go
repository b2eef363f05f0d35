package user

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// LoginRequest - POST /api/v1/users/login
type LoginRequest struct {
	UserName string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UserName, validation.Required, validation.Length(1, 256)),
		validation.Field(&r.Password, validation.Required),
	)
}

// LoginResponse được trả thẳng (không bọc envelope) để giữ nguyên format {"token": "..."}
type LoginResponse struct {
	Token string `json:"token"`
}
