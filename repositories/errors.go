package repositories

import (
	"ecommerce-api/models"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// translateErr maps driver errors onto the shared error kinds so services
// and controllers never inspect Postgres codes themselves.
func translateErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return models.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return fmt.Errorf("%w: %s", models.ErrConflict, pgErr.ConstraintName)
		case "23503":
			return fmt.Errorf("%w: referenced record does not exist", models.ErrValidation)
		case "23514":
			return fmt.Errorf("%w: %s", models.ErrValidation, pgErr.ConstraintName)
		}
	}
	return err
}
