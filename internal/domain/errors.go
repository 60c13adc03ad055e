package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrForeignKey   = errors.New("referencia inexistente")
	ErrStoreClosed  = errors.New("almacenamiento cerrado")
)

// IsConstraint indica si err es una violación de restricción del almacenamiento
// (unicidad o llave foránea).
func IsConstraint(err error) bool {
	return errors.Is(err, ErrDuplicate) || errors.Is(err, ErrForeignKey)
}
