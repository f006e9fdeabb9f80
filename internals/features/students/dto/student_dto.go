// file: internals/features/students/dto/student_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "kocluk_backend/internals/features/students/model"
	helper "kocluk_backend/internals/helpers"
)

/* =========================================================
   CREATE
========================================================= */

type CreateStudentRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Email       *string `json:"email" validate:"omitempty,email,max=255"`
	Password    *string `json:"password" validate:"omitempty,min=8,max=72"`
	Phone       *string `json:"phone" validate:"omitempty,phone"`
	ParentName  *string `json:"parentName" validate:"omitempty,min=2,max=100"`
	ParentPhone *string `json:"parentPhone" validate:"omitempty,phone"`
	Notes       *string `json:"notes" validate:"omitempty,max=2000"`
}

func (r *CreateStudentRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	trimPtr(&r.Email, true)
	trimPtr(&r.Phone, false)
	trimPtr(&r.ParentName, false)
	trimPtr(&r.ParentPhone, false)
	trimPtr(&r.Notes, false)
}

// Validate also enforces the invariant: email set ⇒ password set.
func (r CreateStudentRequest) Validate() []helper.FieldError {
	errs := helper.ValidateStruct(r)
	if r.Email != nil && (r.Password == nil || strings.TrimSpace(*r.Password) == "") {
		errs = append(errs, helper.FieldError{
			Field:   "password",
			Message: "E-posta verildiğinde parola zorunludur",
		})
	}
	return errs
}

func (r CreateStudentRequest) ToModel(teacherID uuid.UUID, passwordHash *string) m.StudentModel {
	return m.StudentModel{
		StudentTeacherID:   teacherID,
		StudentName:        r.Name,
		StudentEmail:       r.Email,
		StudentPassword:    passwordHash,
		StudentPhone:       r.Phone,
		StudentParentName:  r.ParentName,
		StudentParentPhone: r.ParentPhone,
		StudentNotes:       r.Notes,
	}
}

/* =========================================================
   UPDATE (partial)
========================================================= */

type UpdateStudentRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=100"`
	Email       *string `json:"email" validate:"omitempty,email,max=255"`
	Password    *string `json:"password" validate:"omitempty,min=8,max=72"`
	Phone       *string `json:"phone" validate:"omitempty,phone"`
	ParentName  *string `json:"parentName" validate:"omitempty,min=2,max=100"`
	ParentPhone *string `json:"parentPhone" validate:"omitempty,phone"`
	Notes       *string `json:"notes" validate:"omitempty,max=2000"`
}

func (r *UpdateStudentRequest) Normalize() {
	trimPtr(&r.Name, false)
	trimPtr(&r.Email, true)
	trimPtr(&r.Phone, false)
	trimPtr(&r.ParentName, false)
	trimPtr(&r.ParentPhone, false)
	trimPtr(&r.Notes, false)
}

/* =========================================================
   LOGIN (student-facing)
========================================================= */

type StudentLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

/* =========================================================
   RESPONSE
========================================================= */

type StudentResponse struct {
	ID          uuid.UUID `json:"id"`
	TeacherID   uuid.UUID `json:"teacherId"`
	Name        string    `json:"name"`
	Email       *string   `json:"email,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	ParentName  *string   `json:"parentName,omitempty"`
	ParentPhone *string   `json:"parentPhone,omitempty"`
	Notes       *string   `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromStudentModel(s m.StudentModel) StudentResponse {
	return StudentResponse{
		ID:          s.StudentID,
		TeacherID:   s.StudentTeacherID,
		Name:        s.StudentName,
		Email:       s.StudentEmail,
		Phone:       s.StudentPhone,
		ParentName:  s.StudentParentName,
		ParentPhone: s.StudentParentPhone,
		Notes:       s.StudentNotes,
		CreatedAt:   s.StudentCreatedAt,
		UpdatedAt:   s.StudentUpdatedAt,
	}
}

func FromStudentModels(list []m.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(list))
	for _, s := range list {
		out = append(out, FromStudentModel(s))
	}
	return out
}

func trimPtr(pp **string, lower bool) {
	if pp == nil || *pp == nil {
		return
	}
	v := strings.TrimSpace(**pp)
	if v == "" {
		*pp = nil
		return
	}
	if lower {
		v = strings.ToLower(v)
	}
	*pp = &v
}
