package author

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrInvalidID       = errors.New("author id must be a positive integer")
	ErrIDMismatch      = errors.New("author id in path does not match the request body")
	ErrAuthorNotFound  = errors.New("author not found")
	ErrOperationFailed = errors.New("author change was not applied")
)

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidID), errors.Is(err, ErrIDMismatch):
		return http.StatusBadRequest
	case errors.Is(err, ErrAuthorNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
