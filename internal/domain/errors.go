package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrNetwork           = errors.New("fallo de red")
	ErrAPI               = errors.New("error del API de inventario")
	ErrMalformedResponse = errors.New("respuesta no es JSON válido")
	ErrValidation        = errors.New("entrada inválida")
)

// APIError respuesta no-2xx del API externo con el mensaje que devolvió el servidor.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API respondió %d", e.Status)
	}
	return e.Message
}

// Is permite errors.Is(err, ErrAPI); 401 también se reporta como ErrUnauthorized y 404 como ErrNotFound.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrAPI:
		return true
	case ErrUnauthorized:
		return e.Status == 401
	case ErrNotFound:
		return e.Status == 404
	}
	return false
}

// ValidationError fallo de validación local; bloquea el envío antes de cualquier llamada de red.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Is permite errors.Is(err, ErrValidation).
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Invalid construye un ValidationError.
func Invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// UserMessage convierte un error en el mensaje en línea que muestra la vista que hizo la llamada.
// fallback se usa cuando el error no trae un mensaje apto para el usuario.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Message
	}
	var aErr *APIError
	if errors.As(err, &aErr) && aErr.Message != "" {
		return aErr.Message
	}
	if errors.Is(err, ErrNetwork) {
		return "No se pudo contactar el servidor de inventario"
	}
	if errors.Is(err, ErrMalformedResponse) {
		return "Respuesta inesperada del servidor de inventario"
	}
	return fallback
}
