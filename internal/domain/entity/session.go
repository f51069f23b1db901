package entity

import "time"

// Session sesión del gateway: asocia el JWT emitido al token de la API remota.
type Session struct {
	ID            string    `json:"id"`
	UpstreamToken string    `json:"upstreamToken"`
	UserID        string    `json:"userId,omitempty"`
	FullName      string    `json:"fullName,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
