package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/ims-client/internal/infrastructure/imsapi"
	"github.com/jhoicas/ims-client/pkg/logger"
)

// RequestLogger asigna el X-Request-ID (o respeta el recibido), lo propaga a la
// API remota y registra cada petición con su estado y duración.
func RequestLogger(log *logger.Logger) fiber.Handler {
	log = log.WithComponent("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		rid := c.Get(fiber.HeaderXRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(fiber.HeaderXRequestID, rid)
		c.SetUserContext(imsapi.WithRequestID(c.UserContext(), rid))

		err := c.Next()
		logged := err
		if logged == nil {
			logged, _ = c.Locals(LocalError).(error)
		}

		status := c.Response().StatusCode()
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		} else if err != nil {
			status = fiber.StatusInternalServerError
		}

		ev := log.Info()
		switch {
		case status >= 500:
			ev = log.Error()
		case status >= 400:
			ev = log.Warn()
		}
		ev.Str("request_id", rid).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("elapsed", time.Since(start)).
			Err(logged).
			Msg("petición HTTP")
		return err
	}
}
