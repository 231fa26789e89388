package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/tunckiral/pocketledger/internal/apperrors"
	"github.com/tunckiral/pocketledger/internal/dto"
)

// ErrorHandler is the single place failures become wire responses:
// {name, message, inValidEntries?}. 5xx details are never exposed.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		if appErr.Status >= 500 {
			slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		}
		return c.Status(appErr.Status).JSON(dto.ErrorResponse{
			Name:           appErr.Name,
			Message:        appErr.Message,
			InvalidEntries: appErr.InvalidEntries,
		})
	}

	code := fiber.StatusInternalServerError
	message := "Internal server error"
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}

	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(dto.ErrorResponse{
		Name:    "ServerError",
		Message: message,
	})
}
