package author

import "context"

// Service defines business logic operations for Author domain
type Service interface {
	GetAll(ctx context.Context) ([]*Author, error)

	// GetByID returns ErrAuthorNotFound when no author has id.
	GetByID(ctx context.Context, id int64) (*Author, error)

	Create(ctx context.Context, req *CreateAuthorRequest) (*Author, error)

	// Update replaces the author stored under id.
	// Errors: ErrInvalidID, ErrIDMismatch, ErrAuthorNotFound, validation.Errors, ErrOperationFailed
	Update(ctx context.Context, id int64, req *UpdateAuthorRequest) error

	// Delete removes the author stored under id.
	// Errors: ErrInvalidID, ErrAuthorNotFound, ErrOperationFailed
	Delete(ctx context.Context, id int64) error
}
