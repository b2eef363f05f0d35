package service

import (
	"context"
	"errors"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore-api/internal/domains/author"
	authorRepo "bookstore-api/internal/domains/author/repository"
	"bookstore-api/pkg/repository/repositorytest"
)

func strPtr(s string) *string { return &s }

func newService(rows ...author.Author) (author.Service, *repositorytest.Memory[author.Author]) {
	mem := repositorytest.NewMemory(authorRepo.Table(), rows...)
	return NewAuthorService(mem.Factory()), mem
}

func TestAuthorService_GetAll(t *testing.T) {
	svc, _ := newService(
		author.Author{ID: 2, Firstname: "Jane", Lastname: "Austen"},
		author.Author{ID: 1, Firstname: "Leo", Lastname: "Tolstoy"},
	)

	authors, err := svc.GetAll(context.Background())

	require.NoError(t, err)
	require.Len(t, authors, 2)
	assert.Equal(t, int64(1), authors[0].ID)
}

func TestAuthorService_GetByID(t *testing.T) {
	svc, _ := newService(author.Author{ID: 1, Firstname: "Leo", Lastname: "Tolstoy"})

	got, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Tolstoy", got.Lastname)

	_, err = svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, author.ErrAuthorNotFound)
}

func TestAuthorService_Create(t *testing.T) {
	tests := []struct {
		name    string
		req     author.CreateAuthorRequest
		noop    bool
		wantErr error
		invalid bool
	}{
		{name: "valid", req: author.CreateAuthorRequest{Firstname: "Toni", Lastname: "Morrison", Bio: strPtr("Nobel laureate")}},
		{name: "missing lastname", req: author.CreateAuthorRequest{Firstname: "Toni"}, invalid: true},
		{name: "nothing written", req: author.CreateAuthorRequest{Firstname: "Toni", Lastname: "Morrison"}, noop: true, wantErr: author.ErrOperationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mem := newService()
			mem.NoOp = tt.noop

			a, err := svc.Create(context.Background(), &tt.req)

			switch {
			case tt.invalid:
				var verrs validation.Errors
				assert.True(t, errors.As(err, &verrs))
				assert.Equal(t, 0, mem.Len())
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			default:
				require.NoError(t, err)
				assert.Positive(t, a.ID)
				stored, ok := mem.Get(a.ID)
				require.True(t, ok)
				assert.Equal(t, *a, stored)
			}
		})
	}
}

func TestAuthorService_Update(t *testing.T) {
	valid := func(id int64) *author.UpdateAuthorRequest {
		return &author.UpdateAuthorRequest{ID: id, Firstname: "Lev", Lastname: "Tolstoy"}
	}

	tests := []struct {
		name    string
		id      int64
		req     *author.UpdateAuthorRequest
		wantErr error
		invalid bool
	}{
		{name: "success", id: 1, req: valid(1)},
		{name: "non-positive id", id: 0, req: valid(0), wantErr: author.ErrInvalidID},
		{name: "path and body disagree", id: 1, req: valid(2), wantErr: author.ErrIDMismatch},
		{name: "unknown id", id: 9, req: valid(9), wantErr: author.ErrAuthorNotFound},
		{name: "invalid body", id: 1, req: &author.UpdateAuthorRequest{ID: 1}, invalid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mem := newService(author.Author{ID: 1, Firstname: "Leo", Lastname: "Tolstoy"})

			err := svc.Update(context.Background(), tt.id, tt.req)

			switch {
			case tt.invalid:
				var verrs validation.Errors
				assert.True(t, errors.As(err, &verrs))
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			default:
				require.NoError(t, err)
				stored, _ := mem.Get(1)
				assert.Equal(t, "Lev", stored.Firstname)
			}
		})
	}
}

func TestAuthorService_Delete(t *testing.T) {
	svc, mem := newService(author.Author{ID: 1, Firstname: "Leo", Lastname: "Tolstoy"})
	ctx := context.Background()

	assert.ErrorIs(t, svc.Delete(ctx, -1), author.ErrInvalidID)
	assert.ErrorIs(t, svc.Delete(ctx, 5), author.ErrAuthorNotFound)

	require.NoError(t, svc.Delete(ctx, 1))
	assert.Equal(t, 0, mem.Len())

	assert.ErrorIs(t, svc.Delete(ctx, 1), author.ErrAuthorNotFound)
}

func TestAuthorService_StorageFault(t *testing.T) {
	svc, mem := newService(author.Author{ID: 1, Firstname: "Leo", Lastname: "Tolstoy"})
	fault := errors.New("connection refused")
	mem.Err = fault

	_, err := svc.GetAll(context.Background())
	assert.ErrorIs(t, err, fault)
	assert.Equal(t, 500, author.ToHTTPStatus(err))
}
