package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ims-client/internal/application/dto"
	"github.com/jhoicas/ims-client/internal/application/screen"
	"github.com/jhoicas/ims-client/internal/domain"
	"github.com/jhoicas/ims-client/internal/domain/entity"
	"github.com/jhoicas/ims-client/internal/infrastructure/imsapi"
	"github.com/jhoicas/ims-client/pkg/jwt"
)

// Locals keys para SessionID y UserID en Fiber.
const (
	LocalSessionID = "session_id"
	LocalUserID    = "user_id"
)

// sessionResolver contrato mínimo para resolver la sesión del token.
// Lo implementa *auth.AuthUseCase.
type sessionResolver interface {
	ResolveSession(ctx context.Context, sessionID string) (*entity.Session, error)
}

// AuthMiddleware valida el Bearer Token del gateway, resuelve la sesión y deja
// en c.UserContext() el token de la API remota y el id de sesión (estado por pantalla).
func AuthMiddleware(jwtSecret string, sessions sessionResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		sessionID, userID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}

		sess, err := sessions.ResolveSession(c.UserContext(), sessionID)
		if err != nil {
			if errors.Is(err, domain.ErrSessionExpired) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_EXPIRED", Message: "la sesión expiró, inicie sesión de nuevo"})
			}
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "SESSION_STORE", Message: "no se pudo verificar la sesión, intente más tarde"})
		}

		c.Locals(LocalSessionID, sess.ID)
		c.Locals(LocalUserID, userID)

		ctx := imsapi.WithToken(c.UserContext(), sess.UpstreamToken)
		ctx = screen.WithSession(ctx, sess.ID)
		c.SetUserContext(ctx)
		return c.Next()
	}
}

// GetSessionID devuelve el id de sesión (después del middleware de auth).
func GetSessionID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalSessionID).(string)
	return s
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}
