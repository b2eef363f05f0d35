package database

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrStorageFault marks any failure reported by the underlying store
	// (connectivity, rejected statement, failed commit).
	ErrStorageFault = errors.New("storage fault")

	// ErrConstraintViolation marks a storage fault caused by an integrity
	// constraint (unique, foreign key, not null, check). It always comes
	// wrapped together with ErrStorageFault.
	ErrConstraintViolation = errors.New("constraint violation")
)

// StorageFault wraps err so callers can recognise it with
// errors.Is(err, ErrStorageFault). Already wrapped errors are returned as is.
func StorageFault(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrStorageFault) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
		return fmt.Errorf("%w: %w: %s: %w", ErrStorageFault, ErrConstraintViolation, op, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrStorageFault, op, err)
}

// IsUniqueViolation reports whether err carries a PostgreSQL unique_violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// IsForeignKeyViolation reports whether err carries a PostgreSQL foreign_key_violation.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation
}
