package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	UniqueViolationCode     = "23505"
	ForeignKeyViolationCode = "23503"
)

func asPgError(err error) (*pgconn.PgError, bool) {
	var pe *pgconn.PgError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

func isUniqueViolation(err error) bool {
	pe, ok := asPgError(err)
	return ok && pe.Code == UniqueViolationCode
}

func isForeignKeyViolation(err error) bool {
	pe, ok := asPgError(err)
	return ok && pe.Code == ForeignKeyViolationCode
}
