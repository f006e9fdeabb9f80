// file: internals/features/lessons/model/lesson_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "kocluk_backend/internals/features/users/user/model"
)

// LessonModel: a teacher's course (e.g. Matematik, 9. Sınıf, TYT).
type LessonModel struct {
	// PK & owner
	LessonID        uuid.UUID `gorm:"column:lesson_id;type:uuid;primaryKey" json:"lesson_id"`
	LessonTeacherID uuid.UUID `gorm:"column:lesson_teacher_id;type:uuid;not null;index" json:"lesson_teacher_id"`

	LessonName     string  `gorm:"column:lesson_name;type:varchar(100);not null" json:"lesson_name"`
	LessonGroup    string  `gorm:"column:lesson_group;type:varchar(100);not null" json:"lesson_group"`
	LessonExamType string  `gorm:"column:lesson_exam_type;type:varchar(10);not null" json:"lesson_exam_type"`
	LessonSubject  *string `gorm:"column:lesson_subject;type:varchar(100)" json:"lesson_subject,omitempty"`

	// one of the 7-color palette; auto-assigned when the client omits it
	LessonColor string `gorm:"column:lesson_color;type:varchar(20);not null" json:"lesson_color"`

	LessonCreatedAt time.Time `gorm:"column:lesson_created_at;not null;autoCreateTime" json:"lesson_created_at"`
	LessonUpdatedAt time.Time `gorm:"column:lesson_updated_at;not null;autoUpdateTime" json:"lesson_updated_at"`

	Teacher *userModel.UserModel `gorm:"foreignKey:LessonTeacherID;references:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (LessonModel) TableName() string { return "lessons" }

func (l *LessonModel) BeforeCreate(tx *gorm.DB) error {
	if l.LessonID == uuid.Nil {
		l.LessonID = uuid.New()
	}
	return nil
}
