package dto

import "time"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ViewMeta metadatos de una pantalla.
// Stale indica que la última carga falló y los datos son los últimos conocidos;
// Warning lleva el mensaje para la notificación transitoria.
type ViewMeta struct {
	Stale     bool      `json:"stale"`
	UpdatedAt time.Time `json:"updated_at"`
	Warning   string    `json:"warning,omitempty"`
}

// MessageResponse respuesta simple de confirmación.
type MessageResponse struct {
	Message string `json:"message"`
}
