package postgres

import (
	"errors"
	"fmt"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// translateError maps constraint violations onto domain errors and keeps the
// server's message for the client.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return fmt.Errorf("%w: %s", domain.ErrDuplicate, pgErr.Message)
	default:
		return err
	}
}
