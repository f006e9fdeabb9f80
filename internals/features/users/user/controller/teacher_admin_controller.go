// file: internals/features/users/user/controller/teacher_admin_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kocluk_backend/internals/constants"
	"kocluk_backend/internals/features/users/user/dto"
	"kocluk_backend/internals/features/users/user/model"
	helper "kocluk_backend/internals/helpers"
)

// TeacherAdminController: super-admin management of teacher accounts.
// Routes are gated by OnlySuperAdmin, handlers assume an admin session.
type TeacherAdminController struct {
	DB *gorm.DB
}

func NewTeacherAdminController(db *gorm.DB) *TeacherAdminController {
	return &TeacherAdminController{DB: db}
}

const teacherNotFound = "Öğretmen bulunamadı"

/* =======================================================
   POST /api/a/teachers
======================================================= */

func (tc *TeacherAdminController) Create(c *fiber.Ctx) error {
	var req dto.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Geçersiz istek gövdesi")
	}
	req.Normalize()
	if errs := helper.ValidateStruct(req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	hash, err := helper.HashPassword(req.Password)
	if err != nil {
		return helper.JsonErrorWithDetails(c, fiber.StatusInternalServerError, "Hesap oluşturulamadı", err.Error())
	}

	teacher := req.ToModel(hash)
	if err := tc.DB.Create(&teacher).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Bu e-posta adresi zaten kayıtlı")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, dto.FromUserModel(teacher))
}

/* =======================================================
   GET /api/a/teachers
======================================================= */

func (tc *TeacherAdminController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, helper.DefaultOpts)

	var total int64
	if err := tc.DB.Model(&model.UserModel{}).
		Where("user_role = ?", constants.RoleTeacher).
		Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var teachers []model.UserModel
	if err := tc.DB.
		Where("user_role = ?", constants.RoleTeacher).
		Order("user_created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&teachers).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, dto.FromUserModels(teachers), helper.BuildMeta(total, p))
}

/* =======================================================
   GET /api/a/teachers/:id
======================================================= */

func (tc *TeacherAdminController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Geçersiz kimlik")
	}

	var teacher model.UserModel
	if err := tc.DB.
		Where("user_id = ? AND user_role = ?", id, constants.RoleTeacher).
		First(&teacher).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, teacherNotFound)
	}
	return helper.JsonOK(c, dto.FromUserModel(teacher))
}

/* =======================================================
   PUT /api/a/teachers/:id
======================================================= */

func (tc *TeacherAdminController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Geçersiz kimlik")
	}

	var req dto.UpdateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Geçersiz istek gövdesi")
	}
	req.Normalize()
	if errs := helper.ValidateStruct(req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	var teacher model.UserModel
	if err := tc.DB.
		Where("user_id = ? AND user_role = ?", id, constants.RoleTeacher).
		First(&teacher).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, teacherNotFound)
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["user_name"] = *req.Name
	}
	if req.Email != nil {
		updates["user_email"] = *req.Email
	}
	if req.Password != nil {
		hash, err := helper.HashPassword(*req.Password)
		if err != nil {
			return helper.JsonErrorWithDetails(c, fiber.StatusInternalServerError, "Hesap güncellenemedi", err.Error())
		}
		updates["user_password"] = hash
	}
	// clearSubscription wins over a date in the same request
	if req.ClearSubscription != nil && *req.ClearSubscription {
		updates["user_subscription_end_date"] = nil
	} else if req.SubscriptionEndDate != nil {
		updates["user_subscription_end_date"] = *req.SubscriptionEndDate
	}

	if len(updates) > 0 {
		if err := tc.DB.Model(&teacher).Updates(updates).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return helper.JsonError(c, fiber.StatusConflict, "Bu e-posta adresi zaten kayıtlı")
			}
			return helper.WritePGError(c, err)
		}
	}

	if err := tc.DB.First(&teacher, "user_id = ?", id).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, dto.FromUserModel(teacher))
}

/* =======================================================
   DELETE /api/a/teachers/:id - cascades through the teacher's data
======================================================= */

func (tc *TeacherAdminController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Geçersiz kimlik")
	}

	res := tc.DB.
		Where("user_id = ? AND user_role = ?", id, constants.RoleTeacher).
		Delete(&model.UserModel{})
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, teacherNotFound)
	}
	return helper.JsonDeleted(c, "Öğretmen silindi")
}
