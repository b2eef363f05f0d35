package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"

	"bookstore-api/internal/domains/author"
	"bookstore-api/internal/domains/book"
	"bookstore-api/pkg/cache"
	"bookstore-api/pkg/database"
	"bookstore-api/pkg/repository"
)

const (
	cacheKeyPrefix = "book:"

	selectIDsByAuthor = `SELECT id FROM books WHERE author_id = $1`
)

// Table mô tả bảng books cho repository generic
func Table() repository.Table[book.Book] {
	return repository.Table[book.Book]{
		Name:    "books",
		Key:     "id",
		Columns: []string{"title", "year", "isbn", "summary", "image", "price", "author_id"},
		ID:      func(b *book.Book) int64 { return b.ID },
		SetID:   func(b *book.Book, id int64) { b.ID = id },
		Values: func(b *book.Book) []any {
			return []any{b.Title, b.Year, b.Isbn, b.Summary, b.Image, b.Price, b.AuthorID}
		},
		Fields: func(b *book.Book) []any {
			return []any{&b.ID, &b.Title, &b.Year, &b.Isbn, &b.Summary, &b.Image, &b.Price, &b.AuthorID}
		},
	}
}

// NewFactory returns the book repository factory; c may be nil to disable caching.
func NewFactory(store database.Store, c cache.Cache, ttl time.Duration) book.RepositoryFactory {
	return repository.NewFactory(store, Table(), c, cacheKeyPrefix, ttl)
}

// AuthorBookKeys lists the cache keys of an author's books. Deleting the
// author sets author_id to NULL on those rows, so their cached copies must go too.
func AuthorBookKeys(store database.Store) func(ctx context.Context, a *author.Author) ([]string, error) {
	return func(ctx context.Context, a *author.Author) ([]string, error) {
		rows, err := store.Query(ctx, selectIDsByAuthor, a.ID)
		if err != nil {
			return nil, database.StorageFault("find books by author", err)
		}
		ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
		if err != nil {
			return nil, database.StorageFault("scan books by author", err)
		}

		keys := make([]string, len(ids))
		for i, id := range ids {
			keys[i] = cacheKeyPrefix + strconv.FormatInt(id, 10)
		}
		return keys, nil
	}
}
