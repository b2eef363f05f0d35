package service

import (
	"context"
	"fmt"

	"bookstore-api/internal/domains/author"
)

// authorService implements author.Service interface
// Mỗi method mở một repository mới từ factory nên không chia sẻ session giữa các request
type authorService struct {
	repos author.RepositoryFactory
}

func NewAuthorService(repos author.RepositoryFactory) author.Service {
	return &authorService{repos: repos}
}

func (s *authorService) GetAll(ctx context.Context) ([]*author.Author, error) {
	return s.repos().FindAll(ctx)
}

func (s *authorService) GetByID(ctx context.Context, id int64) (*author.Author, error) {
	if id < 1 {
		return nil, author.ErrAuthorNotFound
	}

	a, err := s.repos().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, author.ErrAuthorNotFound
	}
	return a, nil
}

func (s *authorService) Create(ctx context.Context, req *author.CreateAuthorRequest) (*author.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a := req.ToEntity()
	ok, err := s.repos().Create(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}
	if !ok {
		return nil, author.ErrOperationFailed
	}
	return a, nil
}

func (s *authorService) Update(ctx context.Context, id int64, req *author.UpdateAuthorRequest) error {
	if id < 1 {
		return author.ErrInvalidID
	}
	if id != req.ID {
		return author.ErrIDMismatch
	}

	repo := s.repos()
	exists, err := repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return author.ErrAuthorNotFound
	}

	if err := req.Validate(); err != nil {
		return err
	}

	ok, err := repo.Update(ctx, req.ToEntity())
	if err != nil {
		return fmt.Errorf("failed to update author %d: %w", id, err)
	}
	if !ok {
		return author.ErrOperationFailed
	}
	return nil
}

func (s *authorService) Delete(ctx context.Context, id int64) error {
	if id < 1 {
		return author.ErrInvalidID
	}

	repo := s.repos()
	a, err := repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if a == nil {
		return author.ErrAuthorNotFound
	}

	ok, err := repo.Delete(ctx, a)
	if err != nil {
		return fmt.Errorf("failed to delete author %d: %w", id, err)
	}
	if !ok {
		return author.ErrOperationFailed
	}
	return nil
}
