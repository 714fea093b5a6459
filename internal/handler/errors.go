package handler

import (
	"errors"
	"log/slog"

	"github.com/EnmaSantos/office-snack-app/internal/middleware"
	"github.com/EnmaSantos/office-snack-app/internal/model"
	"github.com/EnmaSantos/office-snack-app/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorResponse{Message: message})
}

// statusFor maps a service error to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		return fiber.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden), errors.Is(err, service.ErrEmailNotAllowed):
		return fiber.StatusForbidden
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrSnackNotFound),
		errors.Is(err, service.ErrRequestNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrConcurrencyConflict):
		return fiber.StatusConflict
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrSelfTarget),
		errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrCartItemNotFound),
		errors.Is(err, service.ErrSnackUnavailable),
		errors.Is(err, service.ErrOutOfStock),
		errors.Is(err, service.ErrInsufficientFunds):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError writes err as a JSON message. Unexpected errors are logged and
// hidden behind a generic message.
func respondError(c *fiber.Ctx, log *slog.Logger, err error) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		log.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
		return fail(c, status, "internal server error")
	}
	return fail(c, status, err.Error())
}

func identity(c *fiber.Ctx) model.Identity {
	id, _ := middleware.CurrentIdentity(c)
	return id
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(name))
}

func wantsXLSX(c *fiber.Ctx) bool {
	return c.Query("format") == "xlsx"
}
