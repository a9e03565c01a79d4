package httpserver

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"plant-care-api/pkg/logger"
)

// RequestLogger writes one line per request. Server errors are logged as
// warnings, the error handler reports the cause itself.
func RequestLogger(l *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		started := time.Now()

		chainErr := c.Next()
		if chainErr != nil {
			// run the error handler now so the logged status is the final one
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		fields := map[string]any{
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     status,
			"latency_ms": time.Since(started).Milliseconds(),
			"request_id": c.GetRespHeader(fiber.HeaderXRequestID),
			"ip":         c.IP(),
		}

		if status >= fiber.StatusInternalServerError {
			l.Warning("request failed", fields)
		} else {
			l.Debug("request served", fields)
		}

		return nil
	}
}
