package middleware

import (
	"byteforge/services"
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// JsonError sends an error body with the given status code
func JsonError(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"error": message,
	})
}

// ValidationErrorResponse sends the field->message map for a rejected payload
func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":  "Validation failed!",
		"fields": errors,
	})
}

// ErrorResponse maps service errors onto HTTP status codes:
// NotFound -> 404, Duplicate -> 409, Validation -> 400, anything else -> 500.
func ErrorResponse(c *fiber.Ctx, err error) error {
	var svcErr *services.ServiceError
	if errors.As(err, &svcErr) {
		switch svcErr.Kind {
		case services.KindNotFound:
			return JsonError(c, fiber.StatusNotFound, svcErr.Message)
		case services.KindDuplicate:
			return JsonError(c, fiber.StatusConflict, svcErr.Message)
		case services.KindValidation:
			return JsonError(c, fiber.StatusBadRequest, svcErr.Message)
		}
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return JsonError(c, fiber.StatusNotFound, "record not found")
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return JsonError(c, fiber.StatusConflict, "duplicate key")
	}
	return JsonError(c, fiber.StatusInternalServerError, err.Error())
}
