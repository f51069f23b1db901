package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/ims-client/internal/application/dto"
	"github.com/jhoicas/ims-client/internal/domain"
	"github.com/jhoicas/ims-client/internal/domain/entity"
	"github.com/jhoicas/ims-client/internal/domain/repository"
	"github.com/jhoicas/ims-client/pkg/jwt"
	"github.com/jhoicas/ims-client/pkg/logger"
)

// JWTConfig configuración para generación de tokens de sesión del gateway.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase login por PIN, sesiones, perfil y cambio de PIN.
//
// El token de la API remota se guarda en el almacén de sesiones; al cliente
// solo se le entrega un JWT propio con el id de sesión.
type AuthUseCase struct {
	authRepo repository.AuthRepository
	sessions repository.SessionRepository
	jwtCfg   JWTConfig
	log      *logger.Logger
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(authRepo repository.AuthRepository, sessions repository.SessionRepository, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{authRepo: authRepo, sessions: sessions, jwtCfg: jwtCfg, log: log.WithComponent("auth"), now: time.Now}
}

// ValidatePIN exige solo dígitos y al menos MinPINLength.
func ValidatePIN(pin string) error {
	if len(pin) < entity.MinPINLength {
		return domain.ErrInvalidPIN
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return domain.ErrInvalidPIN
		}
	}
	return nil
}

// Login valida el PIN contra la API remota, abre una sesión y emite el JWT del gateway.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	pin := strings.TrimSpace(in.PIN)
	if err := ValidatePIN(pin); err != nil {
		return nil, err
	}
	res, err := uc.authRepo.Login(ctx, pin)
	if err != nil {
		return nil, err
	}

	ttl := time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute
	sess := &entity.Session{
		ID:            uuid.New().String(),
		UpstreamToken: res.Token,
		UserID:        res.Profile.ID,
		FullName:      res.Profile.FullName,
		CreatedAt:     uc.now(),
	}
	if err := uc.sessions.Save(ctx, sess, ttl); err != nil {
		return nil, fmt.Errorf("guardar sesión: %w", err)
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, sess.ID, sess.UserID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		_ = uc.sessions.Delete(ctx, sess.ID)
		return nil, err
	}
	uc.log.Info().Str("session_id", sess.ID).Str("user_id", sess.UserID).Msg("sesión iniciada")

	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: int(ttl.Seconds()),
		User:      toProfileDTO(res.Profile),
	}, nil
}

// Logout cierra la sesión; cerrar una sesión inexistente no es error.
func (uc *AuthUseCase) Logout(ctx context.Context, sessionID string) error {
	if err := uc.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("cerrar sesión: %w", err)
	}
	uc.log.Info().Str("session_id", sessionID).Msg("sesión cerrada")
	return nil
}

// ResolveSession devuelve la sesión activa o ErrSessionExpired.
func (uc *AuthUseCase) ResolveSession(ctx context.Context, sessionID string) (*entity.Session, error) {
	sess, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, domain.ErrSessionExpired
	}
	return sess, nil
}

// Profile devuelve el perfil del usuario. Si la API falla se muestra el nombre por defecto.
func (uc *AuthUseCase) Profile(ctx context.Context) dto.ProfileDTO {
	p, err := uc.authRepo.GetProfile(ctx)
	if err != nil || p == nil {
		uc.log.Warn().Err(err).Msg("perfil no disponible; se usa el nombre por defecto")
		return dto.ProfileDTO{FullName: entity.DefaultProfileName}
	}
	out := toProfileDTO(*p)
	if out.FullName == "" {
		out.FullName = entity.DefaultProfileName
	}
	return out
}

// UpdateProfile actualiza nombre y correo. El nombre es obligatorio.
func (uc *AuthUseCase) UpdateProfile(ctx context.Context, in dto.UpdateProfileRequest) (*dto.ProfileDTO, error) {
	name := strings.TrimSpace(in.FullName)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	p, err := uc.authRepo.UpdateProfile(ctx, entity.Profile{FullName: name, Email: strings.TrimSpace(in.Email)})
	if err != nil {
		return nil, err
	}
	out := toProfileDTO(*p)
	return &out, nil
}

// ChangePIN valida el PIN nuevo y su confirmación antes de enviarlo.
func (uc *AuthUseCase) ChangePIN(ctx context.Context, in dto.ChangePINRequest) error {
	if in.CurrentPIN == "" {
		return fmt.Errorf("%w: el PIN actual es obligatorio", domain.ErrInvalidInput)
	}
	if err := ValidatePIN(in.NewPIN); err != nil {
		return err
	}
	if in.NewPIN != in.ConfirmPIN {
		return domain.ErrPINMismatch
	}
	return uc.authRepo.UpdatePIN(ctx, in.CurrentPIN, in.NewPIN)
}

func toProfileDTO(p entity.Profile) dto.ProfileDTO {
	return dto.ProfileDTO{ID: p.ID, FullName: p.FullName, Email: p.Email}
}
