package book

import "context"

// Service defines business logic operations for Book domain
type Service interface {
	GetAll(ctx context.Context) ([]*Book, error)

	// GetByID returns ErrBookNotFound when no book has id.
	GetByID(ctx context.Context, id int64) (*Book, error)

	// Create requires the referenced author to exist (ErrUnknownAuthor).
	Create(ctx context.Context, req *CreateBookRequest) (*Book, error)

	// Update replaces the mutable fields of the book stored under id; the ISBN is kept.
	// Errors: ErrInvalidID, ErrIDMismatch, ErrBookNotFound, ErrUnknownAuthor, validation.Errors, ErrOperationFailed
	Update(ctx context.Context, id int64, req *UpdateBookRequest) error

	// Delete removes the book stored under id.
	// Errors: ErrInvalidID, ErrBookNotFound, ErrOperationFailed
	Delete(ctx context.Context, id int64) error
}
