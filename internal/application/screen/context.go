package screen

import (
	"context"

	"github.com/jhoicas/ims-client/internal/application/dto"
	"github.com/jhoicas/ims-client/pkg/config"
	"github.com/jhoicas/ims-client/pkg/logger"
)

type sessionKey struct{}

// WithSession adjunta el id de sesión con el que se indexa el estado de las pantallas.
func WithSession(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionKey{}, sessionID)
}

// SessionFrom devuelve el id de sesión del contexto, o "anon" (CLI, tests).
func SessionFrom(ctx context.Context) string {
	if s, _ := ctx.Value(sessionKey{}).(string); s != "" {
		return s
	}
	return "anon"
}

// FromConfig crea un almacén con los límites configurados.
func FromConfig[T any](cfg config.ScreenConfig, log *logger.Logger) *Store[T] {
	return NewStore[T](cfg.MaxEntries, cfg.StateTTL, log)
}

// Meta traduce un Result a los metadatos de la respuesta.
func Meta[T any](r Result[T]) dto.ViewMeta {
	m := dto.ViewMeta{Stale: r.Stale, UpdatedAt: r.UpdatedAt}
	if r.Err != nil {
		m.Warning = r.Err.Error()
	}
	return m
}
