package repository

import (
	"context"

	"github.com/jhoicas/ims-client/internal/domain/entity"
)

// LoginResult respuesta de /auth/login: token de la API remota y datos del usuario.
type LoginResult struct {
	Token   string
	Profile entity.Profile
}

// AuthRepository puerto de autenticación por PIN contra la API remota.
type AuthRepository interface {
	Login(ctx context.Context, pin string) (*LoginResult, error)
	GetProfile(ctx context.Context) (*entity.Profile, error)
	UpdateProfile(ctx context.Context, in entity.Profile) (*entity.Profile, error)
	UpdatePIN(ctx context.Context, currentPIN, newPIN string) error
}
