package book

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrInvalidID       = errors.New("book id must be a positive integer")
	ErrIDMismatch      = errors.New("book id in path does not match the request body")
	ErrBookNotFound    = errors.New("book not found")
	ErrUnknownAuthor   = errors.New("author does not exist")
	ErrOperationFailed = errors.New("book change was not applied")
)

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidID), errors.Is(err, ErrIDMismatch), errors.Is(err, ErrUnknownAuthor):
		return http.StatusBadRequest
	case errors.Is(err, ErrBookNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
