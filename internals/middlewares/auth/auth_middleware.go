// file: internals/middlewares/auth/auth_middleware.go
package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"kocluk_backend/internals/configs"
	"kocluk_backend/internals/constants"
	helper "kocluk_backend/internals/helpers"
	helperAuth "kocluk_backend/internals/helpers/auth"
)

// AuthMiddleware resolves the current session for teacher/super-admin routes:
// parses the access JWT (cookie or bearer header), validates expiry and
// token type, then copies claims into Locals.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := parseAccessToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}

		role, _ := claims["role"].(string)
		if role != constants.RoleTeacher && role != constants.RoleSuperAdmin {
			return helper.JsonError(c, fiber.StatusForbidden, "Bu işlem için yetkiniz yok")
		}

		sub, _ := claims["sub"].(string)
		if _, err := uuid.Parse(sub); err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Geçersiz oturum")
		}

		c.Locals(helperAuth.LocUserID, sub)
		c.Locals(helperAuth.LocUserRole, role)
		if name, ok := claims["name"].(string); ok {
			c.Locals(helperAuth.LocUserName, name)
		}
		return c.Next()
	}
}

// OnlySuperAdmin gates teacher-account management. Must run after AuthMiddleware.
func OnlySuperAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !helperAuth.IsSuperAdmin(c) {
			return helper.JsonError(c, fiber.StatusForbidden, "Bu işlem yalnızca süper yönetici içindir")
		}
		return c.Next()
	}
}

// StudentAuthMiddleware resolves student sessions (student-facing routes).
func StudentAuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := parseAccessToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}

		if role, _ := claims["role"].(string); role != constants.RoleStudent {
			return helper.JsonError(c, fiber.StatusForbidden, "Bu alan öğrenci hesapları içindir")
		}

		sub, _ := claims["sub"].(string)
		if _, err := uuid.Parse(sub); err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Geçersiz oturum")
		}

		c.Locals(helperAuth.LocStudentID, sub)
		return c.Next()
	}
}

func parseAccessToken(c *fiber.Ctx) (jwt.MapClaims, error) {
	tokenString := helper.GetRawAccessToken(c)
	if tokenString == "" {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Oturum bulunamadı")
	}

	secret := configs.JWTSecret
	if secret == "" {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "JWT secret tanımlı değil")
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Geçersiz imza yöntemi")
		}
		return []byte(secret), nil
	}); err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Geçersiz veya süresi dolmuş oturum")
	}

	if typ, _ := claims["typ"].(string); typ != "access" {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Geçersiz token türü")
	}
	if exp, ok := claims["exp"].(float64); ok && time.Now().Unix() > int64(exp) {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Oturum süresi doldu")
	}
	return claims, nil
}
