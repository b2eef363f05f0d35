package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore-api/internal/domains/author"
	"bookstore-api/internal/domains/book"
	"bookstore-api/pkg/database"
)

func TestBookRepository_UpdateKeepsColumnOrder(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	year := int32(1869)
	price := decimal.RequireFromString("19.99")
	authorID := int64(1)
	b := &book.Book{ID: 5, Title: "War and Peace", Year: &year, Isbn: "978-0199232765", Price: &price, AuthorID: &authorID}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(
		`UPDATE books SET title = $1, year = $2, isbn = $3, summary = $4, image = $5, price = $6, author_id = $7 WHERE id = $8`)).
		WithArgs("War and Peace", &year, "978-0199232765", (*string)(nil), (*string)(nil), &price, &authorID, int64(5)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	ok, err := NewFactory(mock, nil, 0)().Update(context.Background(), b)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepository_UnknownAuthorIsConstraintFault(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	authorID := int64(404)
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO books`).
		WithArgs("t", (*int32)(nil), "i", (*string)(nil), (*string)(nil), (*decimal.Decimal)(nil), &authorID).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, Message: "violates foreign key constraint"})
	mock.ExpectRollback()

	ok, err := NewFactory(mock, nil, 0)().Create(context.Background(), &book.Book{Title: "t", Isbn: "i", AuthorID: &authorID})

	assert.False(t, ok)
	assert.ErrorIs(t, err, database.ErrStorageFault)
	assert.ErrorIs(t, err, database.ErrConstraintViolation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthorBookKeys(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM books WHERE author_id = $1`)).
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(10)).AddRow(int64(12)))

	keys, err := AuthorBookKeys(mock)(context.Background(), &author.Author{ID: 3})

	require.NoError(t, err)
	assert.Equal(t, []string{"book:10", "book:12"}, keys)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthorBookKeys_QueryFails(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT id FROM books`).
		WithArgs(int64(3)).
		WillReturnError(errors.New("connection reset"))

	keys, err := AuthorBookKeys(mock)(context.Background(), &author.Author{ID: 3})

	assert.Nil(t, keys)
	assert.ErrorIs(t, err, database.ErrStorageFault)
}
