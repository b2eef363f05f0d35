package service

import (
	"context"
	"fmt"

	"bookstore-api/internal/domains/author"
	"bookstore-api/internal/domains/book"
	"bookstore-api/pkg/database"
)

// bookService implements book.Service interface
type bookService struct {
	repos   book.RepositoryFactory
	authors author.RepositoryFactory
}

func NewBookService(repos book.RepositoryFactory, authors author.RepositoryFactory) book.Service {
	return &bookService{repos: repos, authors: authors}
}

func (s *bookService) GetAll(ctx context.Context) ([]*book.Book, error) {
	return s.repos().FindAll(ctx)
}

func (s *bookService) GetByID(ctx context.Context, id int64) (*book.Book, error) {
	if id < 1 {
		return nil, book.ErrBookNotFound
	}

	b, err := s.repos().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, book.ErrBookNotFound
	}
	return b, nil
}

func (s *bookService) Create(ctx context.Context, req *book.CreateBookRequest) (*book.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkAuthor(ctx, req.AuthorID); err != nil {
		return nil, err
	}

	b := req.ToEntity()
	ok, err := s.repos().Create(ctx, b)
	if err != nil {
		return nil, authorGone(err, req.AuthorID, "failed to create book")
	}
	if !ok {
		return nil, book.ErrOperationFailed
	}
	return b, nil
}

func (s *bookService) Update(ctx context.Context, id int64, req *book.UpdateBookRequest) error {
	if id < 1 {
		return book.ErrInvalidID
	}
	if id != req.ID {
		return book.ErrIDMismatch
	}

	repo := s.repos()
	exists, err := repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return book.ErrBookNotFound
	}

	if err := req.Validate(); err != nil {
		return err
	}
	if err := s.checkAuthor(ctx, req.AuthorID); err != nil {
		return err
	}

	// Lấy bản ghi hiện tại để giữ ISBN
	current, err := repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if current == nil {
		return book.ErrBookNotFound
	}
	req.ApplyTo(current)

	ok, err := repo.Update(ctx, current)
	if err != nil {
		return authorGone(err, req.AuthorID, fmt.Sprintf("failed to update book %d", id))
	}
	if !ok {
		return book.ErrOperationFailed
	}
	return nil
}

func (s *bookService) Delete(ctx context.Context, id int64) error {
	if id < 1 {
		return book.ErrInvalidID
	}

	repo := s.repos()
	b, err := repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if b == nil {
		return book.ErrBookNotFound
	}

	ok, err := repo.Delete(ctx, b)
	if err != nil {
		return fmt.Errorf("failed to delete book %d: %w", id, err)
	}
	if !ok {
		return book.ErrOperationFailed
	}
	return nil
}

// checkAuthor: nil author id is allowed, validation decides whether it is required
func (s *bookService) checkAuthor(ctx context.Context, authorID *int64) error {
	if authorID == nil {
		return nil
	}
	exists, err := s.authors().Exists(ctx, *authorID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %d", book.ErrUnknownAuthor, *authorID)
	}
	return nil
}

// authorGone: author bị xóa giữa checkAuthor và lúc ghi thì DB trả foreign key
// violation, báo lại như author không tồn tại thay vì lỗi storage
func authorGone(err error, authorID *int64, op string) error {
	if authorID != nil && database.IsForeignKeyViolation(err) {
		return fmt.Errorf("%s: %w: %d", op, book.ErrUnknownAuthor, *authorID)
	}
	return fmt.Errorf("%s: %w", op, err)
}
