package dto

// LoginRequest body de POST /api/auth/login.
type LoginRequest struct {
	PIN string `json:"pin"`
}

// LoginResponse token de sesión del gateway y perfil del usuario.
type LoginResponse struct {
	Token     string     `json:"token"`
	ExpiresIn int        `json:"expires_in"` // segundos
	User      ProfileDTO `json:"user"`
}

// ProfileDTO datos del usuario autenticado.
type ProfileDTO struct {
	ID       string `json:"id,omitempty"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// UpdateProfileRequest body de PUT /api/auth/profile.
type UpdateProfileRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// ChangePINRequest body de PUT /api/auth/pin.
type ChangePINRequest struct {
	CurrentPIN string `json:"current_pin"`
	NewPIN     string `json:"new_pin"`
	ConfirmPIN string `json:"confirm_pin"`
}
