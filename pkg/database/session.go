package database

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
)

// Store is the slice of a pgx pool used by sessions and repositories.
// *pgxpool.Pool satisfies it, and so does pgxmock.PgxPoolIface in tests.
type Store interface {
	Beginner
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Mutation is one staged statement.
//
// When Returning is non-empty the statement must end with a RETURNING clause;
// its columns are scanned into Returning at commit and the statement counts
// as one affected row if a row came back.
type Mutation struct {
	Op        string // insert, update, delete
	Table     string
	SQL       string
	Args      []any
	Returning []any
}

// Session is an ordered unit of work. Mutations are staged in memory and
// applied together, in staging order, by a single Commit.
type Session struct {
	store Store

	mu      sync.Mutex
	pending []Mutation
}

// NewSession opens an empty unit of work on store.
func NewSession(store Store) *Session {
	return &Session{store: store}
}

// Store returns the store the session commits to, for reads outside the unit of work.
func (s *Session) Store() Store {
	return s.store
}

// Stage queues m for the next Commit.
func (s *Session) Stage(m Mutation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, m)
}

// Pending returns the number of staged mutations.
func (s *Session) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Commit applies every staged mutation inside one transaction and returns
// the total number of affected rows. The staged list is consumed even when
// the commit fails; the transaction is rolled back in that case and the
// error wraps ErrStorageFault.
func (s *Session) Commit(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending := s.pending
	s.pending = nil
	if len(pending) == 0 {
		return 0, nil
	}

	affected, err := WithTransactionResult(ctx, s.store, func(tx pgx.Tx) (int64, error) {
		var total int64
		for _, m := range pending {
			n, err := apply(ctx, tx, m)
			if err != nil {
				return 0, fmt.Errorf("%s %s: %w", m.Op, m.Table, err)
			}
			total += n
		}
		return total, nil
	})
	if err != nil {
		return 0, StorageFault("commit", err)
	}

	log.Debug().
		Int("mutations", len(pending)).
		Int64("rows_affected", affected).
		Msg("session committed")

	return affected, nil
}

func apply(ctx context.Context, tx pgx.Tx, m Mutation) (int64, error) {
	if len(m.Returning) > 0 {
		err := tx.QueryRow(ctx, m.SQL, m.Args...).Scan(m.Returning...)
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		if err != nil {
			return 0, err
		}
		return 1, nil
	}

	tag, err := tx.Exec(ctx, m.SQL, m.Args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
