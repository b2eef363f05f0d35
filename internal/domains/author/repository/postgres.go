package repository

import (
	"time"

	"bookstore-api/internal/domains/author"
	"bookstore-api/pkg/cache"
	"bookstore-api/pkg/database"
	"bookstore-api/pkg/repository"
)

const cacheKeyPrefix = "author:"

// Table mô tả bảng authors cho repository generic
func Table() repository.Table[author.Author] {
	return repository.Table[author.Author]{
		Name:    "authors",
		Key:     "id",
		Columns: []string{"firstname", "lastname", "bio"},
		ID:      func(a *author.Author) int64 { return a.ID },
		SetID:   func(a *author.Author, id int64) { a.ID = id },
		Values: func(a *author.Author) []any {
			return []any{a.Firstname, a.Lastname, a.Bio}
		},
		Fields: func(a *author.Author) []any {
			return []any{&a.ID, &a.Firstname, &a.Lastname, &a.Bio}
		},
	}
}

// NewFactory returns the author repository factory; c may be nil to disable caching.
// opts only apply when caching is on.
func NewFactory(store database.Store, c cache.Cache, ttl time.Duration, opts ...repository.CachedOption[author.Author]) author.RepositoryFactory {
	return repository.NewFactory(store, Table(), c, cacheKeyPrefix, ttl, opts...)
}
