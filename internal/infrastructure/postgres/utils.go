package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/GestionVentas-api/internal/domain"
)

// Códigos SQLSTATE que el dominio distingue.
const (
	codeNotNullViolation    = "23502"
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeCheckViolation      = "23514"
	codeNoDataFound         = "P0002" // RAISE ... USING ERRCODE = 'no_data_found'
)

// pgCode devuelve el SQLSTATE del error o "" si no viene del servidor.
func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isUniqueViolation(err error) bool     { return pgCode(err) == codeUniqueViolation }
func isForeignKeyViolation(err error) bool { return pgCode(err) == codeForeignKeyViolation }
func isCheckViolation(err error) bool      { return pgCode(err) == codeCheckViolation }
func isNoDataFound(err error) bool         { return pgCode(err) == codeNoDataFound }

func isConstraintViolation(err error) bool {
	switch pgCode(err) {
	case codeNotNullViolation, codeForeignKeyViolation, codeUniqueViolation, codeCheckViolation:
		return true
	}
	return false
}

// wrapErr envuelve err con el nombre de la operación; las violaciones de restricción
// se marcan además con domain.ErrConstraint conservando la causa para los logs.
func wrapErr(op string, err error) error {
	if isConstraintViolation(err) {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrConstraint, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
