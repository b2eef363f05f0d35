package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"bookstore-api/pkg/cache"
	"bookstore-api/pkg/database"
)

type statements struct {
	selectAll string
	selectOne string
	exists    string
	insert    string
	update    string
	delete    string
}

// postgresRepository implements Repository[T] over a database.Session.
// Reads go straight to the session's store; writes are staged and committed.
type postgresRepository[T any] struct {
	session *database.Session
	table   Table[T]
	sql     statements
}

// NewPostgres returns the PostgreSQL repository for table, staging its
// writes on session.
func NewPostgres[T any](session *database.Session, table Table[T]) Repository[T] {
	return &postgresRepository[T]{
		session: session,
		table:   table,
		sql:     buildStatements(table.Name, table.Key, table.Columns),
	}
}

// NewFactory returns a Factory opening a PostgreSQL repository on a new
// session for every call. With a non-nil cache the repository is wrapped in
// the cache-aside decorator using keyPrefix, ttl and opts.
func NewFactory[T any](store database.Store, table Table[T], c cache.Cache, keyPrefix string, ttl time.Duration, opts ...CachedOption[T]) Factory[T] {
	return func() Repository[T] {
		repo := NewPostgres(database.NewSession(store), table)
		if c == nil {
			return repo
		}
		return NewCached(repo, c, keyPrefix, ttl, table.ID, opts...)
	}
}

func buildStatements(name, key string, columns []string) statements {
	all := append([]string{key}, columns...)
	selectList := strings.Join(all, ", ")

	placeholders := make([]string, len(columns))
	assignments := make([]string, len(columns))
	for i, col := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		assignments[i] = fmt.Sprintf("%s = $%d", col, i+1)
	}

	return statements{
		selectAll: fmt.Sprintf("SELECT %s FROM %s ORDER BY %s", selectList, name, key),
		selectOne: fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", selectList, name, key),
		exists:    fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)", name, key),
		insert: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
			name, strings.Join(columns, ", "), strings.Join(placeholders, ", "), key),
		update: fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d",
			name, strings.Join(assignments, ", "), key, len(columns)+1),
		delete: fmt.Sprintf("DELETE FROM %s WHERE %s = $1", name, key),
	}
}

func (r *postgresRepository[T]) FindAll(ctx context.Context) ([]*T, error) {
	rows, err := r.session.Store().Query(ctx, r.sql.selectAll)
	if err != nil {
		return nil, database.StorageFault("find all "+r.table.Name, err)
	}
	defer rows.Close()

	entities := make([]*T, 0)
	for rows.Next() {
		var e T
		if err := rows.Scan(r.table.Fields(&e)...); err != nil {
			return nil, database.StorageFault("scan "+r.table.Name, err)
		}
		entities = append(entities, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, database.StorageFault("iterate "+r.table.Name, err)
	}

	return entities, nil
}

func (r *postgresRepository[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	var e T
	err := r.session.Store().QueryRow(ctx, r.sql.selectOne, id).Scan(r.table.Fields(&e)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, database.StorageFault("find "+r.table.Name+" by id", err)
	}
	return &e, nil
}

func (r *postgresRepository[T]) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.session.Store().QueryRow(ctx, r.sql.exists, id).Scan(&exists); err != nil {
		return false, database.StorageFault("check "+r.table.Name+" exists", err)
	}
	return exists, nil
}

func (r *postgresRepository[T]) Create(ctx context.Context, entity *T) (bool, error) {
	var id int64
	r.session.Stage(database.Mutation{
		Op:        "insert",
		Table:     r.table.Name,
		SQL:       r.sql.insert,
		Args:      r.table.Values(entity),
		Returning: []any{&id},
	})

	ok, err := r.Save(ctx)
	if err != nil {
		return false, err
	}
	if ok && id != 0 {
		r.table.SetID(entity, id)
	}
	return ok, nil
}

func (r *postgresRepository[T]) Update(ctx context.Context, entity *T) (bool, error) {
	args := append(r.table.Values(entity), r.table.ID(entity))
	r.session.Stage(database.Mutation{
		Op:    "update",
		Table: r.table.Name,
		SQL:   r.sql.update,
		Args:  args,
	})
	return r.Save(ctx)
}

func (r *postgresRepository[T]) Delete(ctx context.Context, entity *T) (bool, error) {
	r.session.Stage(database.Mutation{
		Op:    "delete",
		Table: r.table.Name,
		SQL:   r.sql.delete,
		Args:  []any{r.table.ID(entity)},
	})
	return r.Save(ctx)
}

func (r *postgresRepository[T]) Save(ctx context.Context) (bool, error) {
	affected, err := r.session.Commit(ctx)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
