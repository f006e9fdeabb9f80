// file: internals/features/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "kocluk_backend/internals/features/users/user/model"
)

// StudentModel belongs exclusively to one teacher.
// Validation invariant (DTO level, not schema): email set ⇒ password set,
// so a student with an email can actually log in.
type StudentModel struct {
	// PK & owner
	StudentID        uuid.UUID `gorm:"column:student_id;type:uuid;primaryKey" json:"student_id"`
	StudentTeacherID uuid.UUID `gorm:"column:student_teacher_id;type:uuid;not null;index" json:"student_teacher_id"`

	StudentName string `gorm:"column:student_name;type:varchar(100);not null" json:"student_name"`

	// login identity (optional)
	StudentEmail    *string `gorm:"column:student_email;type:varchar(255);uniqueIndex:uq_students_email" json:"student_email,omitempty"`
	StudentPassword *string `gorm:"column:student_password;type:varchar(255)" json:"-"`

	StudentPhone       *string `gorm:"column:student_phone;type:varchar(20)" json:"student_phone,omitempty"`
	StudentParentName  *string `gorm:"column:student_parent_name;type:varchar(100)" json:"student_parent_name,omitempty"`
	StudentParentPhone *string `gorm:"column:student_parent_phone;type:varchar(20)" json:"student_parent_phone,omitempty"`
	StudentNotes       *string `gorm:"column:student_notes;type:text" json:"student_notes,omitempty"`

	StudentCreatedAt time.Time `gorm:"column:student_created_at;not null;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time `gorm:"column:student_updated_at;not null;autoUpdateTime" json:"student_updated_at"`

	Teacher *userModel.UserModel `gorm:"foreignKey:StudentTeacherID;references:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (StudentModel) TableName() string { return "students" }

func (s *StudentModel) BeforeCreate(tx *gorm.DB) error {
	if s.StudentID == uuid.Nil {
		s.StudentID = uuid.New()
	}
	return nil
}
