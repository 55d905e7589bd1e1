package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrForbidden    = errors.New("operación fuera del alcance del token")
)

// ValidationError error de validación de entrada. Un único tipo cubre tipo de empresa y tax id;
// se distinguen por Field y por el mensaje.
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

// NewValidationError construye el error con mensaje "<message>: <value>".
func NewValidationError(field, value, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Message, e.Value)
}

// Is permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
