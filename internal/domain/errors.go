package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrValidation       = errors.New("entrada inválida")
	ErrInvalidDelta     = errors.New("delta inválido")
	ErrNegativeStock    = errors.New("la cantidad resultante sería negativa")
	ErrDuplicateBarcode = errors.New("el código de barras ya existe")
	ErrPersistence      = errors.New("fallo al persistir el documento")
	ErrUnauthorized     = errors.New("no autorizado")
)
