// Package repository provides the CRUD contract shared by every catalog
// entity and its PostgreSQL implementation.
//
// Mutations follow a stage-then-commit model: Create, Update and Delete stage
// one statement on the repository's database.Session and then call Save.
// Save reports whether the commit touched at least one row. A false result
// with a nil error is a no-op commit (target missing or nothing changed); a
// storage fault is always returned as an error wrapping
// database.ErrStorageFault.
package repository

import (
	"context"
)

// Repository is the CRUD surface implemented once for all entity types.
type Repository[T any] interface {
	// FindAll returns every stored record ordered by identity.
	// An empty store yields an empty, non-nil slice.
	FindAll(ctx context.Context) ([]*T, error)

	// FindByID returns the record with the given identity, or nil when absent.
	FindByID(ctx context.Context, id int64) (*T, error)

	// Exists reports whether a record with the given identity is stored.
	Exists(ctx context.Context, id int64) (bool, error)

	// Create inserts entity and commits. The store assigns the identity and
	// it is written back into entity; any identity set by the caller is ignored.
	Create(ctx context.Context, entity *T) (bool, error)

	// Update replaces the full record keyed by entity's identity and commits.
	// It never inserts: a missing identity yields false.
	Update(ctx context.Context, entity *T) (bool, error)

	// Delete removes the record keyed by entity's identity and commits.
	Delete(ctx context.Context, entity *T) (bool, error)

	// Save commits everything staged on the session. True iff at least one
	// row was affected.
	Save(ctx context.Context) (bool, error)
}

// Factory opens a repository bound to a fresh unit of work.
// Handlers call it once per request.
type Factory[T any] func() Repository[T]

// Table describes how an entity type maps onto a table. Entity packages
// declare one Table; all SQL is derived from it.
type Table[T any] struct {
	Name string
	// Key is the store-assigned identity column.
	Key string
	// Columns lists every non-key column in the order used by Values and Fields.
	Columns []string

	ID    func(*T) int64
	SetID func(*T, int64)
	// Values returns the column values of an entity, in Columns order.
	Values func(*T) []any
	// Fields returns scan destinations: the key first, then Columns.
	Fields func(*T) []any
}
