// Package result define el sobre uniforme que devuelven las herramientas y el
// despachador de comandos: status, code, message y data.
package result

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jhoicas/oms-agent/internal/domain"
)

// Kind clasifica el desenlace de una operación.
type Kind int

const (
	Success Kind = iota
	NotFound
	Validation
	MissingField
	Constraint
	Storage
	UnknownCommand
)

// Códigos estables expuestos en el campo code.
const (
	CodeValidation     = "VALIDATION"
	CodeMissingField   = "MISSING_FIELD"
	CodeConstraint     = "CONSTRAINT_VIOLATION"
	CodeStorage        = "STORAGE"
	CodeUnknownCommand = "UNKNOWN_COMMAND"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// UnknownCommandMessage mensaje fijo cuando ninguna regla coincide.
const UnknownCommandMessage = "Sorry, I could not understand that command."

// Result es el valor etiquetado que devuelve cada operación. Data siempre se
// serializa (null cuando no hay registro).
type Result struct {
	Kind    Kind   `json:"-"`
	Status  string `json:"status"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`

	// Err causa original cuando el resultado proviene de un error.
	Err error `json:"-"`
}

// OK resultado exitoso con datos.
func OK(data any) Result {
	return Result{Kind: Success, Status: statusSuccess, Data: data}
}

// Created resultado exitoso de una operación de alta.
func Created(message string, data any) Result {
	return Result{Kind: Success, Status: statusSuccess, Message: message, Data: data}
}

// Missing registro inexistente: es un éxito con data nula.
func Missing() Result {
	return Result{Kind: NotFound, Status: statusSuccess, Data: nil}
}

// Lookup devuelve OK(data) o Missing() si el puntero es nil.
func Lookup[T any](v *T) Result {
	if v == nil {
		return Missing()
	}
	return OK(v)
}

// Invalid error de validación de un valor.
func Invalid(message string) Result {
	return Result{Kind: Validation, Status: statusError, Code: CodeValidation, Message: message}
}

// FieldMissing falta un campo requerido por el comando.
func FieldMissing(name string) Result {
	return Result{Kind: MissingField, Status: statusError, Code: CodeMissingField, Message: fmt.Sprintf("missing field: %s", name)}
}

// Unknown ninguna regla coincidió con el comando.
func Unknown() Result {
	return Result{Kind: UnknownCommand, Status: statusError, Code: CodeUnknownCommand, Message: UnknownCommandMessage}
}

// FromError traduce un error de dominio o de almacenamiento a un Result.
func FromError(err error) Result {
	switch {
	case err == nil:
		return OK(nil)
	case errors.Is(err, domain.ErrInvalidInput):
		r := Invalid(err.Error())
		r.Err = err
		return r
	case domain.IsConstraint(err):
		return Result{Kind: Constraint, Status: statusError, Code: CodeConstraint, Message: err.Error(), Err: err}
	default:
		return Result{Kind: Storage, Status: statusError, Code: CodeStorage, Message: err.Error(), Err: err}
	}
}

// IsError indica si el resultado es un fallo.
func (r Result) IsError() bool { return r.Status == statusError }

// HTTPStatus código HTTP que corresponde al resultado.
func (r Result) HTTPStatus() int {
	switch r.Kind {
	case Success, NotFound:
		return http.StatusOK
	case Validation, MissingField, UnknownCommand:
		return http.StatusBadRequest
	case Constraint:
		return http.StatusConflict
	default:
		return http.StatusServiceUnavailable
	}
}
