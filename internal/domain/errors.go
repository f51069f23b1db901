package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrInvalidPIN     = errors.New("el PIN debe tener al menos 4 dígitos")
	ErrPINMismatch    = errors.New("los PIN no coinciden")
	ErrInvalidStatus  = errors.New("estado de venta inválido")
	ErrInvalidRange   = errors.New("rango de fechas inválido")
	ErrUnauthorized   = errors.New("no autorizado")
	ErrForbidden      = errors.New("acceso denegado")
	ErrConflict       = errors.New("conflicto con el estado actual")
	ErrUpstream       = errors.New("la API remota no respondió correctamente")
	ErrSessionExpired = errors.New("sesión expirada")
)
