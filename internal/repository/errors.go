package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"delivery-dispatch/internal/apperr"
)

// IsDuplicate - signals that the error is a unique violation.
func IsDuplicate(err error) bool {
	var pgerr *pgconn.PgError
	return errors.As(err, &pgerr) && pgerr.Code == "23505"
}

// IsForeignKey - signals that the error is a foreign key violation.
func IsForeignKey(err error) bool {
	var pgerr *pgconn.PgError
	return errors.As(err, &pgerr) && pgerr.Code == "23503"
}

// IsNotFound - signals that the error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// constraintError maps integrity violations onto domain categories and
// returns nil for any other error.
func constraintError(err error) error {
	switch {
	case IsDuplicate(err):
		return apperr.Conflict
	case IsForeignKey(err):
		return apperr.Reasonf(apperr.Invalid, "referenced row does not exist")
	default:
		return nil
	}
}
