package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"plant-care-api/internal/models"
	"plant-care-api/pkg/logger"
)

// ErrorHandler renders every error as an ErrorResponse. Domain errors map to
// their HTTP status, anything unknown is logged and hidden behind a 500.
func ErrorHandler(l *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code, message := classify(err)
		if code >= fiber.StatusInternalServerError {
			l.Error(err, map[string]any{
				"method":     c.Method(),
				"path":       c.Path(),
				"request_id": c.GetRespHeader(fiber.HeaderXRequestID),
			})
		}

		return c.Status(code).JSON(ErrorResponse{Status: "error", Message: message})
	}
}

func classify(err error) (int, string) {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code, fe.Message
	}

	var ve *models.ValidationError
	if errors.As(err, &ve) {
		return fiber.StatusBadRequest, ve.Message
	}

	switch {
	case errors.Is(err, models.ErrInvalidInput):
		return fiber.StatusBadRequest, err.Error()
	case errors.Is(err, models.ErrUnauthorized):
		return fiber.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, models.ErrNotFound):
		return fiber.StatusNotFound, "Not found"
	case errors.Is(err, models.ErrConflict):
		return fiber.StatusConflict, "Already exists"
	}

	return fiber.StatusInternalServerError, "Internal server error"
}
