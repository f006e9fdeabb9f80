// file: internals/helpers/response.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Success envelope: {data, pagination?}
=================================*/

func JsonOK(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": data})
}

func JsonCreated(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": data})
}

func JsonList(c *fiber.Ctx, data any, pagination Meta) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":       data,
		"pagination": pagination,
	})
}

func JsonDeleted(c *fiber.Ctx, message string) error {
	if strings.TrimSpace(message) == "" {
		message = "Silindi"
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": fiber.Map{"message": message},
	})
}

/* ===============================
   Error envelope: {error, details?}
=================================*/

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = "Beklenmeyen bir hata oluştu"
	}
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// JsonErrorWithDetails carries a developer-facing detail next to the
// user-facing message (500 paths include the caught error here).
func JsonErrorWithDetails(c *fiber.Ctx, status int, message string, details any) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(fiber.Map{
		"error":   message,
		"details": details,
	})
}

// JsonValidationError renders a field-addressable error list (400).
func JsonValidationError(c *fiber.Ctx, fieldErrors []FieldError) error {
	if fieldErrors == nil {
		fieldErrors = []FieldError{}
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":   "Doğrulama hatası",
		"details": fieldErrors,
	})
}
