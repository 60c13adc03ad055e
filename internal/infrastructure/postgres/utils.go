package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/oms-agent/internal/domain"
)

// classify traduce SQLSTATE de PostgreSQL a errores de dominio, conservando la causa.
func classify(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s: %w: %w", op, domain.ErrDuplicate, err)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s: %w: %w", op, domain.ErrForeignKey, err)
		case "23514", "23502": // check_violation, not_null_violation
			return fmt.Errorf("%s: %w: %w", op, domain.ErrInvalidInput, err)
		}
	}
	if strings.Contains(err.Error(), "closed pool") {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreClosed, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// money convierte float64 a NUMERIC usando la representación decimal más corta,
// de modo que el valor leído de vuelta es el mismo float64.
func money(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}
