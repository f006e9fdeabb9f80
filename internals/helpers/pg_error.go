// file: internals/helpers/pg_error.go
package helper

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// MapPGError maps driver errors to HTTP status + Turkish message.
// Covers pgx and lib/pq; falls back to string matching for wrapped drivers.
func MapPGError(err error) (int, string) {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		switch pgxErr.Code {
		case "23505":
			return fiber.StatusConflict, "Kayıt zaten mevcut (benzersizlik ihlali)"
		case "23503":
			return fiber.StatusBadRequest, "İlişkili kayıt bulunamadı (FK ihlali)"
		default:
			return fiber.StatusInternalServerError, pgxErr.Message
		}
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case "23505":
			return fiber.StatusConflict, "Kayıt zaten mevcut (benzersizlik ihlali)"
		case "23503":
			return fiber.StatusBadRequest, "İlişkili kayıt bulunamadı (FK ihlali)"
		default:
			return fiber.StatusInternalServerError, pqErr.Error()
		}
	}
	if IsUniqueViolation(err) {
		return fiber.StatusConflict, "Kayıt zaten mevcut (benzersizlik ihlali)"
	}
	return fiber.StatusInternalServerError, err.Error()
}

// IsUniqueViolation: unique constraint detection that also works for
// wrapped drivers and sqlite (tests).
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint") ||
		strings.Contains(s, "23505")
}

func WritePGError(c *fiber.Ctx, err error) error {
	code, msg := MapPGError(err)
	if code >= 500 {
		return JsonErrorWithDetails(c, code, "Beklenmeyen bir hata oluştu", msg)
	}
	return JsonError(c, code, msg)
}
