package session

import (
	"context"
	"fmt"
	"io"

	"github.com/jhoicas/ims-client/internal/domain/repository"
	"github.com/jhoicas/ims-client/pkg/config"
)

// New construye el almacén configurado. Con Redis verifica la conexión antes de devolverlo.
// El io.Closer devuelto libera la conexión (no-op en memoria).
func New(ctx context.Context, cfg config.SessionConfig) (repository.SessionRepository, io.Closer, error) {
	switch cfg.Backend {
	case "", "memory":
		return NewMemoryStore(), nopCloser{}, nil
	case "redis":
		store := NewRedisStore(cfg)
		if err := store.Ping(ctx); err != nil {
			_ = store.Close()
			return nil, nil, fmt.Errorf("session: redis no disponible en %s: %w", cfg.RedisAddr, err)
		}
		return store, store, nil
	default:
		return nil, nil, fmt.Errorf("session: backend desconocido %q", cfg.Backend)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
