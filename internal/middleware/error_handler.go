package middleware

import (
	"errors"
	"log"
	"strings"

	"inventory/internal/apperrors"
	"inventory/internal/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

const internalErrorMessage = "Internal Server Error"

// ErrorHandler is the Fiber error handler that turns errors returned by
// handlers into HTTP responses. It is the only place where errors are
// mapped to status codes.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case apperrors.KindNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorDTO{
				Code:    "NOT_FOUND",
				Message: appErr.Message,
			})
		case apperrors.KindValidation:
			return c.Status(fiber.StatusBadRequest).JSON(appErr.FieldMessages())
		case apperrors.KindBadRequest:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorDTO{
				Code:    "BAD_REQUEST",
				Message: appErr.Message,
			})
		}
	}

	// Framework errors such as unknown routes keep their status.
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) && fiberErr.Code < fiber.StatusInternalServerError {
		return c.Status(fiberErr.Code).JSON(dto.ErrorDTO{
			Code:    statusCode(fiberErr.Code),
			Message: fiberErr.Message,
		})
	}

	log.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorDTO{
		Code:    "INTERNAL_ERROR",
		Message: internalErrorMessage,
	})
}

// statusCode turns an HTTP status into an upper snake case code, e.g. 405 -> METHOD_NOT_ALLOWED.
func statusCode(status int) string {
	return strings.ToUpper(strings.ReplaceAll(utils.StatusMessage(status), " ", "_"))
}
