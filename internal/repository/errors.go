package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the repositories react to.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsDuplicate reports a unique constraint violation, e.g. a second customer with the same email.
func IsDuplicate(err error) bool { return pgCode(err) == codeUniqueViolation }

// IsForeignKey reports a reference to a missing row, e.g. an order for an unknown service.
func IsForeignKey(err error) bool { return pgCode(err) == codeForeignKeyViolation }

// IsNotFound reports an empty single-row result.
func IsNotFound(err error) bool { return errors.Is(err, pgx.ErrNoRows) }
