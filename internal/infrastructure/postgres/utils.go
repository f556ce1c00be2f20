package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/Catalogo-api/internal/domain"
)

const uniqueViolation = "23505"

// insertError traduce un error de INSERT: violación de unicidad -> domain.ErrDuplicate,
// cualquier otro se envuelve con la operación.
func insertError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return domain.ErrDuplicate
	}
	return fmt.Errorf("%s: %w", op, err)
}
