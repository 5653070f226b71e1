package postgres

import (
	"strings"

	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SQLSTATE codes of the integrity constraint violation class.
const (
	sqlStateNotNull    = "23502"
	sqlStateForeignKey = "23503"
	sqlStateUnique     = "23505"
	sqlStateCheck      = "23514"
)

type constraintKind int

const (
	constraintNone constraintKind = iota
	constraintUnique
	constraintForeignKey
	constraintNotNull
	constraintCheck
)

// violation classifies err from the postgres SQLSTATE, falling back to the errors gorm
// translates for other dialects. The constraint name is empty when the driver does not report it.
func violation(err error) (constraintKind, string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case sqlStateUnique:
			return constraintUnique, pgErr.ConstraintName
		case sqlStateForeignKey:
			return constraintForeignKey, pgErr.ConstraintName
		case sqlStateNotNull:
			return constraintNotNull, pgErr.ColumnName
		case sqlStateCheck:
			return constraintCheck, pgErr.ConstraintName
		}

		return constraintNone, ""
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return constraintUnique, ""
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return constraintForeignKey, ""
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return constraintCheck, ""
	case strings.Contains(strings.ToLower(err.Error()), "not null constraint"):
		return constraintNotNull, ""
	}

	return constraintNone, ""
}

// translateSaveError converts constraint violations of an aggregate write to domain errors.
func translateSaveError(err error, details string) error {
	kind, name := violation(err)
	if name != "" {
		details += " (" + name + ")"
	}

	switch kind {
	case constraintUnique:
		return domainerrors.ErrConflict.WithDetails(details)
	case constraintForeignKey:
		return domainerrors.ErrRestaurantNotFound.WithDetails(details)
	case constraintNotNull, constraintCheck:
		return domainerrors.ErrValidationFailed.WithDetails(details)
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}
