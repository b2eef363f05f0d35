package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// GenericErrorMessage là message duy nhất client nhận được khi server lỗi
const GenericErrorMessage = "Something went wrong. Please contact the administrator."

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

// Success ghi envelope thành công
func Success(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error ghi envelope lỗi; details có thể là nil, string hoặc validation errors
func Error(c *gin.Context, statusCode int, message string, details interface{}) {
	c.JSON(statusCode, Response{
		Success: false,
		Message: message,
		Error:   details,
	})
}

// NoContent trả 204 không có body
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Common error responses
func BadRequest(c *gin.Context, details interface{}) {
	Error(c, http.StatusBadRequest, "Bad Request", details)
}

func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, "Unauthorized", nil)
}

func Forbidden(c *gin.Context) {
	Error(c, http.StatusForbidden, "Forbidden", nil)
}

func NotFound(c *gin.Context, details interface{}) {
	Error(c, http.StatusNotFound, "Not Found", details)
}

// InternalServerError không bao giờ trả chi tiết lỗi ra ngoài
func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, GenericErrorMessage, nil)
}

// Abort variants dùng trong middleware
func AbortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, Response{Success: false, Message: "Unauthorized"})
}

func AbortForbidden(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden, Response{Success: false, Message: "Forbidden"})
}

func AbortInternalServerError(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, Response{Success: false, Message: GenericErrorMessage})
}

// Details trả validation errors theo field, các lỗi khác chỉ lấy message
func Details(err error) interface{} {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return verrs
	}
	return err.Error()
}
