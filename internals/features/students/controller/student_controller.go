// file: internals/features/students/controller/student_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kocluk_backend/internals/features/students/dto"
	"kocluk_backend/internals/features/students/model"
	helper "kocluk_backend/internals/helpers"
	helperAuth "kocluk_backend/internals/helpers/auth"
)

// StudentController: teacher-scoped student CRUD. Every handler resolves the
// owning teacher from the session; a teacher can never see another teacher's
// students (super admin bypasses the ownership check).
type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

const studentNotFound = "Öğrenci bulunamadı"

// findOwned loads the student and enforces the ownership gate.
func (sc *StudentController) findOwned(c *fiber.Ctx, id uuid.UUID) (*model.StudentModel, error) {
	var student model.StudentModel
	if err := sc.DB.First(&student, "student_id = ?", id).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, studentNotFound)
	}
	if !helperAuth.OwnerAllowed(c, student.StudentTeacherID) {
		// hide existence of other tenants' records
		return nil, fiber.NewError(fiber.StatusNotFound, studentNotFound)
	}
	return &student, nil
}

/* =======================================================
   POST /api/a/students
======================================================= */

func (sc *StudentController) Create(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Oturum bulunamadı")
	}

	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Geçersiz istek gövdesi")
	}
	req.Normalize()
	if errs := req.Validate(); len(errs) > 0 {
		return helper.JsonValidationError(c, errs)
	}

	var passwordHash *string
	if req.Password != nil {
		h, err := helper.HashPassword(*req.Password)
		if err != nil {
			return helper.JsonErrorWithDetails(c, fiber.StatusInternalServerError, "Öğrenci oluşturulamadı", err.Error())
		}
		passwordHash = &h
	}

	student := req.ToModel(teacherID, passwordHash)
	if err := sc.DB.Create(&student).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Bu e-posta adresi zaten kayıtlı")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, dto.FromStudentModel(student))
}

/* =======================================================
   GET /api/a/students
======================================================= */

func (sc *StudentController) List(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Oturum bulunamadı")
	}
	p := helper.ParseFiber(c, helper.DefaultOpts)

	var total int64
	if err := sc.DB.Model(&model.StudentModel{}).
		Where("student_teacher_id = ?", teacherID).
		Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var students []model.StudentModel
	if err := sc.DB.
		Where("student_teacher_id = ?", teacherID).
		Order("student_name ASC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&students).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, dto.FromStudentModels(students), helper.BuildMeta(total, p))
}

/* =======================================================
   GET /api/a/students/:id
======================================================= */

func (sc *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Geçersiz kimlik")
	}
	student, err := sc.findOwned(c, id)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonOK(c, dto.FromStudentModel(*student))
}

/* =======================================================
   PUT /api/a/students/:id
======================================================= */

func (sc *StudentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Geçersiz kimlik")
	}
	student, err := sc.findOwned(c, id)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Geçersiz istek gövdesi")
	}
	req.Normalize()
	if errs := helper.ValidateStruct(req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	// email on a student without a password only makes sense together
	if req.Email != nil && student.StudentPassword == nil && req.Password == nil {
		return helper.JsonValidationError(c, []helper.FieldError{{
			Field:   "password",
			Message: "E-posta verildiğinde parola zorunludur",
		}})
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["student_name"] = *req.Name
	}
	if req.Email != nil {
		updates["student_email"] = *req.Email
	}
	if req.Password != nil {
		h, err := helper.HashPassword(*req.Password)
		if err != nil {
			return helper.JsonErrorWithDetails(c, fiber.StatusInternalServerError, "Öğrenci güncellenemedi", err.Error())
		}
		updates["student_password"] = h
	}
	if req.Phone != nil {
		updates["student_phone"] = *req.Phone
	}
	if req.ParentName != nil {
		updates["student_parent_name"] = *req.ParentName
	}
	if req.ParentPhone != nil {
		updates["student_parent_phone"] = *req.ParentPhone
	}
	if req.Notes != nil {
		updates["student_notes"] = *req.Notes
	}

	if len(updates) > 0 {
		if err := sc.DB.Model(student).Updates(updates).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return helper.JsonError(c, fiber.StatusConflict, "Bu e-posta adresi zaten kayıtlı")
			}
			return helper.WritePGError(c, err)
		}
	}

	if err := sc.DB.First(student, "student_id = ?", id).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, dto.FromStudentModel(*student))
}

/* =======================================================
   DELETE /api/a/students/:id - cascades into assignments,
   progress and schedules
======================================================= */

func (sc *StudentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Geçersiz kimlik")
	}
	student, err := sc.findOwned(c, id)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	if err := sc.DB.Delete(student).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "Öğrenci silindi")
}

/* =======================================================
   GET /api/s/me - student self profile
======================================================= */

func (sc *StudentController) Me(c *fiber.Ctx) error {
	studentID, err := helperAuth.GetStudentIDFromToken(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var student model.StudentModel
	if err := sc.DB.First(&student, "student_id = ?", studentID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, studentNotFound)
	}
	return helper.JsonOK(c, dto.FromStudentModel(student))
}
