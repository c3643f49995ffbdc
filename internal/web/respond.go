package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/feastly/admin-console/internal/console"
	"github.com/feastly/admin-console/internal/upstream"
)

func ok(c *fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{"success": true, "data": data})
}

func created(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": data})
}

// ErrorHandler maps domain errors onto HTTP statuses. Upstream outages carry
// a retryable hint so pages can offer a "Try Again" affordance instead of a
// dead end.
func ErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		message := err.Error()
		retryable := false

		var fiberErr *fiber.Error
		var validationErr *console.ValidationError
		var unavailable *upstream.UnavailableError
		var decodeErr *upstream.DecodeError

		switch {
		case errors.As(err, &fiberErr):
			status = fiberErr.Code
			message = fiberErr.Message
		case errors.Is(err, console.ErrNotFound):
			status = fiber.StatusNotFound
		case errors.Is(err, console.ErrEmptyRejectReason):
			status = fiber.StatusBadRequest
		case errors.As(err, &validationErr):
			status = fiber.StatusUnprocessableEntity
		case errors.Is(err, upstream.ErrUnauthorized), errors.Is(err, upstream.ErrMissingToken):
			status = fiber.StatusUnauthorized
		case errors.As(err, &decodeErr):
			status = fiber.StatusBadGateway
		case errors.As(err, &unavailable):
			status = fiber.StatusServiceUnavailable
			retryable = true
		}

		if status >= fiber.StatusInternalServerError {
			log.WithFields(logrus.Fields{
				"path":   c.Path(),
				"status": status,
			}).WithError(err).Error("request failed")
		}

		payload := fiber.Map{"success": false, "error": message}
		if retryable {
			payload["retryable"] = true
		}
		return c.Status(status).JSON(payload)
	}
}
