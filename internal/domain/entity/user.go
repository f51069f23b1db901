package entity

// Profile datos del usuario autenticado (/auth/profile).
type Profile struct {
	ID       string `json:"_id,omitempty"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// DefaultProfileName nombre mostrado cuando el perfil no se pudo obtener.
const DefaultProfileName = "User"

// MinPINLength longitud mínima del PIN de acceso.
const MinPINLength = 4
