package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation detecta la violación de constraint único de Postgres
// (23505). Los repositorios la traducen a errores de dominio: código de
// estación duplicado en stations y email ya registrado en users.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	// Algunos drivers envuelven el error sin exponer *PgError.
	return strings.Contains(err.Error(), "23505")
}
