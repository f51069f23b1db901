// Package imsapi es el cliente REST de la API remota del inventario (carpetas,
// cajas, ventas, devoluciones y autenticación por PIN).
//
// Todas las peticiones pasan por un único interceptor (bearerTransport) que
// adjunta el token almacenado. Los payloads se normalizan en la frontera de
// ingesta con inventory.Normalize*; el resto del sistema solo ve entidades canónicas.
package imsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jhoicas/ims-client/internal/domain"
	"github.com/jhoicas/ims-client/pkg/config"
	"github.com/jhoicas/ims-client/pkg/logger"
)

// maxBodyBytes límite de lectura de respuestas (listados de hasta 5000 cajas).
const maxBodyBytes = 8 << 20

// APIError error HTTP devuelto por la API remota.
// Err es el error de dominio equivalente, para usar con errors.Is.
type APIError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("imsapi: HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("imsapi: HTTP %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error { return e.Err }

// Client cliente HTTP de la API remota.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient construye el cliente. tokens puede ser nil cuando el token llega
// siempre por contexto (gateway multi-sesión).
func NewClient(cfg config.UpstreamConfig, tokens TokenSource, log *logger.Logger) *Client {
	return newClient(cfg, tokens, log, http.DefaultTransport)
}

func newClient(cfg config.UpstreamConfig, tokens TokenSource, log *logger.Logger, base http.RoundTripper) *Client {
	if log == nil {
		log = logger.Nop()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: &bearerTransport{base: base, tokens: tokens},
		},
		log: log.WithComponent("imsapi"),
	}
}

// do ejecuta la petición y devuelve el cuerpo crudo de una respuesta 2xx.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("imsapi: serializar request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("imsapi: crear request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("llamada a la API remota fallida")
		if ctx.Err() != nil {
			return nil, fmt.Errorf("imsapi: timeout o cancelación: %w", errors.Join(domain.ErrUpstream, ctx.Err()))
		}
		return nil, fmt.Errorf("imsapi: %s %s: %w", method, path, errors.Join(domain.ErrUpstream, err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("imsapi: leer respuesta: %w", errors.Join(domain.ErrUpstream, err))
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("API remota")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(resp.StatusCode, raw)
	}
	return raw, nil
}

// newAPIError extrae el mensaje del servidor ({"message": "..."}) y lo asocia al error de dominio.
func newAPIError(status int, body []byte) *APIError {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	msg := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		msg = payload.Message
		if msg == "" {
			msg = payload.Error
		}
	}

	var sentinel error
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		sentinel = domain.ErrInvalidInput
	case http.StatusUnauthorized:
		sentinel = domain.ErrUnauthorized
	case http.StatusForbidden:
		sentinel = domain.ErrForbidden
	case http.StatusNotFound:
		sentinel = domain.ErrNotFound
	case http.StatusConflict:
		sentinel = domain.ErrConflict
	default:
		sentinel = domain.ErrUpstream
	}
	return &APIError{StatusCode: status, Message: msg, Err: sentinel}
}

// ServerMessage devuelve el mensaje del servidor si err proviene de la API remota.
func ServerMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
