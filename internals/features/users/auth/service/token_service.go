// file: internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kocluk_backend/internals/configs"
	"kocluk_backend/internals/constants"
	authModel "kocluk_backend/internals/features/users/auth/model"
	userModel "kocluk_backend/internals/features/users/user/model"
	helper "kocluk_backend/internals/helpers"
)

const (
	AccessTTL  = 24 * time.Hour
	RefreshTTL = 7 * 24 * time.Hour
)

/* ==========================
   Claims & signing
========================== */

func buildAccessClaims(u userModel.UserModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":  u.UserID.String(),
		"name": u.UserName,
		"role": u.UserRole,
		"typ":  "access",
		"iat":  now.Unix(),
		"exp":  now.Add(AccessTTL).Unix(),
	}
}

func buildStudentClaims(studentID uuid.UUID, name string, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":  studentID.String(),
		"name": name,
		"role": constants.RoleStudent,
		"typ":  "access",
		"iat":  now.Unix(),
		"exp":  now.Add(AccessTTL).Unix(),
	}
}

func buildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub": userID.String(),
		"typ": "refresh",
		// jti keeps tokens issued within the same second distinct, otherwise
		// rotation would re-insert the hash it just revoked
		"jti": uuid.NewString(),
		"iat": now.Unix(),
		"exp": now.Add(RefreshTTL).Unix(),
	}
}

func signHS256(claims jwt.MapClaims, secret string) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// IssueAccessToken signs a teacher/super-admin access JWT.
func IssueAccessToken(u userModel.UserModel, now time.Time) (string, error) {
	return signHS256(buildAccessClaims(u, now), configs.JWTSecret)
}

// IssueStudentToken signs a student access JWT (student-facing login).
func IssueStudentToken(studentID uuid.UUID, name string, now time.Time) (string, error) {
	return signHS256(buildStudentClaims(studentID, name, now), configs.JWTSecret)
}

/* ==========================
   Refresh rotation: only the HMAC hash touches the DB
========================== */

func ComputeRefreshHash(token, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}

func IssueRefreshToken(db *gorm.DB, c *fiber.Ctx, userID uuid.UUID, now time.Time) (string, error) {
	refresh, err := signHS256(buildRefreshClaims(userID, now), configs.JWTRefreshSecret)
	if err != nil {
		return "", err
	}
	ua := c.Get("User-Agent")
	ip := c.IP()
	rec := authModel.RefreshTokenModel{
		RefreshTokenUserID:    userID,
		RefreshTokenHash:      ComputeRefreshHash(refresh, configs.JWTRefreshSecret),
		RefreshTokenExpiresAt: now.Add(RefreshTTL),
		RefreshTokenUserAgent: strPtr(ua),
		RefreshTokenIP:        strPtr(ip),
	}
	if err := db.Create(&rec).Error; err != nil {
		return "", err
	}
	return refresh, nil
}

// ValidateRefreshToken parses the refresh JWT and checks its hash is still
// known (not rotated away, not revoked, not expired).
func ValidateRefreshToken(db *gorm.DB, refresh string) (uuid.UUID, error) {
	tok, err := jwt.Parse(refresh, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Refresh token geçersiz")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Refresh token geçersiz")
	}
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Refresh token geçersiz")
	}

	hash := ComputeRefreshHash(refresh, configs.JWTRefreshSecret)
	var count int64
	if err := db.Model(&authModel.RefreshTokenModel{}).
		Where("refresh_token_hash = ? AND refresh_token_revoked_at IS NULL AND refresh_token_expires_at > ?", hash, time.Now()).
		Count(&count).Error; err != nil {
		return uuid.Nil, err
	}
	if count == 0 {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Refresh token tanınmıyor")
	}
	return userID, nil
}

// RevokeRefreshToken drops the stored hash; the cookie becomes worthless.
func RevokeRefreshToken(db *gorm.DB, refresh string) error {
	hash := ComputeRefreshHash(refresh, configs.JWTRefreshSecret)
	return db.Where("refresh_token_hash = ?", hash).
		Delete(&authModel.RefreshTokenModel{}).Error
}

/* ==========================
   Cookies
========================== */

// SetAuthCookies: access+refresh are HttpOnly; csrf_token is readable by the
// client so it can be echoed in X-CSRF-Token (double-submit pair).
func SetAuthCookies(c *fiber.Ctx, access, refresh string, now time.Time) string {
	secure := configs.GetEnv("COOKIE_SECURE", "true") != "false"

	c.Cookie(&fiber.Cookie{
		Name: "access_token", Value: access,
		Expires: now.Add(AccessTTL), HTTPOnly: true, Secure: secure, SameSite: "Lax", Path: "/",
	})
	c.Cookie(&fiber.Cookie{
		Name: "refresh_token", Value: refresh,
		Expires: now.Add(RefreshTTL), HTTPOnly: true, Secure: secure, SameSite: "Lax", Path: "/",
	})

	csrf := helper.NewCSRFToken()
	c.Cookie(&fiber.Cookie{
		Name: "csrf_token", Value: csrf,
		Expires: now.Add(RefreshTTL), HTTPOnly: false, Secure: secure, SameSite: "Lax", Path: "/",
	})
	return csrf
}

func ClearAuthCookies(c *fiber.Ctx) {
	expired := time.Now().Add(-time.Hour)
	for _, name := range []string{"access_token", "refresh_token", "csrf_token"} {
		c.Cookie(&fiber.Cookie{Name: name, Value: "", Expires: expired, Path: "/"})
	}
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
