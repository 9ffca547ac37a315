package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"blog-backend/internal/domain"
)

// PostgreSQL error codes this layer translates into domain errors.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// translateError maps low-level Postgres constraint violations onto the
// domain error taxonomy so services never inspect driver errors.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", domain.ErrDuplicateKey, pgErr.ConstraintName)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s", domain.ErrNotFound, pgErr.ConstraintName)
		case pgCheckViolation:
			return fmt.Errorf("%w: %s", domain.ErrInvalidRelation, pgErr.ConstraintName)
		}
	}
	return err
}
