package postgres

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/L20660042/Backend-Proy-sub001/internal/domain"
)

const codeUniqueViolation = "23505"

// isUniqueViolation verifica si un error es una violación de constraint único.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}

// wrapErr traduce la violación de unicidad a domain.ErrDuplicate; el resto se envuelve con op.
func wrapErr(op string, err error) error {
	if isUniqueViolation(err) {
		return domain.WithCause(domain.ErrDuplicate, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// parseID valida que id sea un UUID; si no, domain.ErrInvalidID.
func parseID(id string) (uuid.UUID, error) {
	u, err := uuid.Parse(id)
	if err != nil || len(id) != 36 {
		return uuid.Nil, domain.ErrInvalidID
	}
	return u, nil
}

func newID() string { return uuid.NewString() }
