package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrUserNotFound = errors.New("usuario no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrConflict     = errors.New("conflicto con el estado actual")

	// Ciclo de vida de leads y seguimientos.
	ErrInvalidTransition    = errors.New("transición de estado no permitida")
	ErrEmptyCompletionNotes = errors.New("las notas de cierre son obligatorias")
	ErrMissingFollowUpDate  = errors.New("la fecha del seguimiento es obligatoria")
)
