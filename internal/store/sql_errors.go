package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// constraintKind names the integrity constraint a driver error violated.
type constraintKind int

const (
	noConstraint constraintKind = iota
	uniqueConstraint
	foreignKeyConstraint
)

// constraintViolation inspects driver errors from both supported databases
// and reports which integrity constraint, if any, was violated.
func constraintViolation(err error) constraintKind {
	if err == nil {
		return noConstraint
	}

	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		return uniqueConstraint
	case pgerrcode.ForeignKeyViolation:
		return foreignKeyConstraint
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return uniqueConstraint
		case sqlite3.ErrConstraintForeignKey:
			return foreignKeyConstraint
		}
	}

	return noConstraint
}

// postgresError returns the SQLSTATE code of a pgx error, or "".
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
