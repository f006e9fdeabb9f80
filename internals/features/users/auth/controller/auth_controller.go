// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kocluk_backend/internals/configs"
	"kocluk_backend/internals/constants"
	studentDTO "kocluk_backend/internals/features/students/dto"
	studentModel "kocluk_backend/internals/features/students/model"
	authDTO "kocluk_backend/internals/features/users/auth/dto"
	"kocluk_backend/internals/features/users/auth/service"
	userModel "kocluk_backend/internals/features/users/user/model"
	helper "kocluk_backend/internals/helpers"
	helperAuth "kocluk_backend/internals/helpers/auth"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

const invalidCredentials = "E-posta veya parola hatalı"

/* =======================================================
   POST /api/auth/login - teacher & super-admin
======================================================= */

func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Geçersiz istek gövdesi")
	}
	req.Normalize()
	if errs := helper.ValidateStruct(req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	var user userModel.UserModel
	if err := ac.DB.Where("user_email = ?", req.Email).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, invalidCredentials)
	}
	if user.UserPassword == nil || !helper.CheckPassword(*user.UserPassword, req.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, invalidCredentials)
	}

	now := time.Now()
	if user.UserRole == constants.RoleTeacher && !user.SubscriptionActive(now) {
		return helper.JsonError(c, fiber.StatusForbidden, "Aboneliğiniz sona ermiş, lütfen yöneticinizle iletişime geçin")
	}

	access, err := service.IssueAccessToken(user, now)
	if err != nil {
		return helper.JsonErrorWithDetails(c, fiber.StatusInternalServerError, "Oturum oluşturulamadı", err.Error())
	}
	refresh, err := service.IssueRefreshToken(ac.DB, c, user.UserID, now)
	if err != nil {
		return helper.JsonErrorWithDetails(c, fiber.StatusInternalServerError, "Oturum oluşturulamadı", err.Error())
	}
	csrf := service.SetAuthCookies(c, access, refresh, now)

	return helper.JsonOK(c, authDTO.LoginResponse{
		ID:        user.UserID,
		Name:      user.UserName,
		Role:      user.UserRole,
		CSRFToken: csrf,
	})
}

/* =======================================================
   POST /api/auth/student/login
======================================================= */

func (ac *AuthController) StudentLogin(c *fiber.Ctx) error {
	var req studentDTO.StudentLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Geçersiz istek gövdesi")
	}
	if errs := helper.ValidateStruct(req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	var student studentModel.StudentModel
	if err := ac.DB.Where("student_email = ?", req.Email).First(&student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, invalidCredentials)
	}
	if student.StudentPassword == nil || !helper.CheckPassword(*student.StudentPassword, req.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, invalidCredentials)
	}

	now := time.Now()
	access, err := service.IssueStudentToken(student.StudentID, student.StudentName, now)
	if err != nil {
		return helper.JsonErrorWithDetails(c, fiber.StatusInternalServerError, "Oturum oluşturulamadı", err.Error())
	}
	// students get no refresh rotation; session lives as long as the access token
	csrf := service.SetAuthCookies(c, access, "", now)

	return helper.JsonOK(c, authDTO.LoginResponse{
		ID:        student.StudentID,
		Name:      student.StudentName,
		Role:      constants.RoleStudent,
		CSRFToken: csrf,
	})
}

/* =======================================================
   POST /api/auth/refresh - rotate the refresh token
======================================================= */

func (ac *AuthController) Refresh(c *fiber.Ctx) error {
	refresh := helper.GetRefreshTokenFromCookie(c)
	if refresh == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token bulunamadı")
	}

	userID, err := service.ValidateRefreshToken(ac.DB, refresh)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonErrorWithDetails(c, fiber.StatusInternalServerError, "Oturum yenilenemedi", err.Error())
	}

	var user userModel.UserModel
	if err := ac.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Hesap bulunamadı")
	}

	// rotation: old hash out, new pair in
	if err := service.RevokeRefreshToken(ac.DB, refresh); err != nil {
		return helper.JsonErrorWithDetails(c, fiber.StatusInternalServerError, "Oturum yenilenemedi", err.Error())
	}

	now := time.Now()
	access, err := service.IssueAccessToken(user, now)
	if err != nil {
		return helper.JsonErrorWithDetails(c, fiber.StatusInternalServerError, "Oturum yenilenemedi", err.Error())
	}
	newRefresh, err := service.IssueRefreshToken(ac.DB, c, user.UserID, now)
	if err != nil {
		return helper.JsonErrorWithDetails(c, fiber.StatusInternalServerError, "Oturum yenilenemedi", err.Error())
	}
	csrf := service.SetAuthCookies(c, access, newRefresh, now)

	return helper.JsonOK(c, authDTO.LoginResponse{
		ID:        user.UserID,
		Name:      user.UserName,
		Role:      user.UserRole,
		CSRFToken: csrf,
	})
}

/* =======================================================
   POST /api/auth/logout
======================================================= */

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	if refresh := helper.GetRefreshTokenFromCookie(c); refresh != "" {
		_ = service.RevokeRefreshToken(ac.DB, refresh)
	}
	service.ClearAuthCookies(c)
	return helper.JsonOK(c, fiber.Map{"message": "Çıkış yapıldı"})
}

/* =======================================================
   GET /api/auth/csrf - (re)mint the double-submit pair
======================================================= */

func (ac *AuthController) CSRF(c *fiber.Ctx) error {
	csrf := helper.NewCSRFToken()
	secure := configs.GetEnv("COOKIE_SECURE", "true") != "false"
	c.Cookie(&fiber.Cookie{
		Name: "csrf_token", Value: csrf,
		Expires: time.Now().Add(service.RefreshTTL), HTTPOnly: false, Secure: secure, SameSite: "Lax", Path: "/",
	})
	return helper.JsonOK(c, fiber.Map{"csrfToken": csrf})
}

/* =======================================================
   GET /api/auth/me - requires auth middleware
======================================================= */

func (ac *AuthController) Me(c *fiber.Ctx) error {
	uid, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusUnauthorized, "Oturum bulunamadı")
	}

	var user userModel.UserModel
	if err := ac.DB.First(&user, "user_id = ?", uid).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Hesap bulunamadı")
	}
	return helper.JsonOK(c, authDTO.MeResponse{
		ID:   user.UserID,
		Name: user.UserName,
		Role: user.UserRole,
	})
}
