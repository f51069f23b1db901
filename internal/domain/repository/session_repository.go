package repository

import (
	"context"
	"time"

	"github.com/jhoicas/ims-client/internal/domain/entity"
)

// SessionRepository almacén de sesiones del gateway (memoria o Redis).
// Get devuelve (nil, nil) si la sesión no existe o expiró.
type SessionRepository interface {
	Save(ctx context.Context, s *entity.Session, ttl time.Duration) error
	Get(ctx context.Context, id string) (*entity.Session, error)
	Delete(ctx context.Context, id string) error
}
