package usecase

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/jhoicas/oms-agent/internal/domain"
)

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s es requerido", domain.ErrInvalidInput, field)
	}
	return nil
}

func nonNegative(field string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: %s no es un número finito", domain.ErrInvalidInput, field)
	}
	if value < 0 {
		return fmt.Errorf("%w: %s no puede ser negativo", domain.ErrInvalidInput, field)
	}
	return nil
}

func finite(field string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: %s no es un número finito", domain.ErrInvalidInput, field)
	}
	return nil
}

func now() time.Time { return time.Now().UTC() }
