package domain

import (
	"errors"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrLoteNotFound = errors.New("lote no encontrado")
	ErrDuplicate    = errors.New("ya existe un lote con ese código")
	ErrCoherencia   = errors.New("incoherencia temporal")
	ErrReglaNegocio = errors.New("regla de negocio violada")
)

// ValidationError agrupa las violaciones de reglas de campo de una entidad.
// Siempre lleva la lista completa de violaciones, nunca solo la primera.
type ValidationError struct {
	Violaciones []string
}

func (e *ValidationError) Error() string {
	return "validación fallida: " + strings.Join(e.Violaciones, ", ")
}

// NewValidationError construye el error a partir de la lista ordenada de violaciones.
func NewValidationError(violaciones []string) *ValidationError {
	return &ValidationError{Violaciones: violaciones}
}

// IsValidation indica si err es (o envuelve) un error de validación de campos.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
