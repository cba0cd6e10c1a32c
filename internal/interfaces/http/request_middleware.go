package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jhoicas/stock-finder/pkg/logger"
)

// LocalRequestID key de Fiber Locals para el ID de la petición.
const LocalRequestID = "request_id"

// RequestLogger asigna X-Request-ID (si el cliente no envía uno) y registra cada petición.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqID := c.Get(fiber.HeaderXRequestID)
		if _, err := uuid.Parse(reqID); err != nil {
			reqID = uuid.New().String()
		}
		c.Locals(LocalRequestID, reqID)
		c.Set(fiber.HeaderXRequestID, reqID)

		start := time.Now()
		err := c.Next()

		log.Info().
			Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Str("client_id", GetClientID(c)).
			Msg("http")
		return err
	}
}
