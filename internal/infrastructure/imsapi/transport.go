package imsapi

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/google/uuid"
)

type ctxKey int

const (
	tokenKey ctxKey = iota
	requestIDKey
)

// WithToken adjunta al contexto el token de la API remota para la petición en curso.
// Tiene prioridad sobre el TokenSource del cliente.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// TokenFromContext devuelve el token adjunto con WithToken, o "".
func TokenFromContext(ctx context.Context) string {
	s, _ := ctx.Value(tokenKey).(string)
	return s
}

// WithRequestID propaga el id de petición del gateway hacia la API remota.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// TokenSource entrega el token almacenado (equivalente al almacenamiento local del dispositivo).
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// TokenStore TokenSource en memoria para clientes de un solo usuario (CLI).
type TokenStore struct {
	mu    sync.RWMutex
	token string
}

// Set guarda el token tras un login.
func (s *TokenStore) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Token implementa TokenSource.
func (s *TokenStore) Token(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, nil
}

// bearerTransport único interceptor de la API: adjunta el token almacenado a cada petición.
type bearerTransport struct {
	base   http.RoundTripper
	tokens TokenSource
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	token := TokenFromContext(ctx)
	if token == "" && t.tokens != nil {
		var err error
		token, err = t.tokens.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("imsapi: leer token: %w", err)
		}
	}

	r := req.Clone(ctx)
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	if r.Header.Get("Content-Type") == "" {
		r.Header.Set("Content-Type", "application/json")
	}
	reqID, _ := ctx.Value(requestIDKey).(string)
	if reqID == "" {
		reqID = uuid.NewString()
	}
	r.Header.Set("X-Request-ID", reqID)

	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(r)
}
