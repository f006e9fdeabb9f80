// file: internals/helpers/auth/claims.go
package helperAuth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"kocluk_backend/internals/constants"
)

// Locals keys written by the auth middlewares.
const (
	LocUserID    = "user_id"
	LocUserRole  = "user_role"
	LocUserName  = "user_name"
	LocStudentID = "student_id"
)

// GetUserIDFromToken returns the authenticated user's id from Locals.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals(LocUserID).(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Oturum bulunamadı")
	}
	return id, nil
}

func GetRoleFromToken(c *fiber.Ctx) string {
	role, _ := c.Locals(LocUserRole).(string)
	return role
}

func IsSuperAdmin(c *fiber.Ctx) bool {
	return GetRoleFromToken(c) == constants.RoleSuperAdmin
}

// GetStudentIDFromToken returns the authenticated student's id from Locals.
func GetStudentIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals(LocStudentID).(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Öğrenci oturumu bulunamadı")
	}
	return id, nil
}

// OwnerAllowed: ownership gate used by every tenant-scoped handler.
// Super admin bypasses the owner comparison.
func OwnerAllowed(c *fiber.Ctx, ownerID uuid.UUID) bool {
	if IsSuperAdmin(c) {
		return true
	}
	uid, err := GetUserIDFromToken(c)
	if err != nil {
		return false
	}
	return uid == ownerID
}
