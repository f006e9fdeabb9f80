// file: internals/features/assignments/model/student_progress_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	lessonModel "kocluk_backend/internals/features/lessons/model"
	resourceModel "kocluk_backend/internals/features/resources/model"
	studentModel "kocluk_backend/internals/features/students/model"
)

// StudentProgressModel: per-resource counters for one assignment.
// The unique (student, assignment, resource) triple is the upsert key.
// Intended but unenforced: solved ≈ correct + wrong + empty.
type StudentProgressModel struct {
	StudentProgressID           uuid.UUID `gorm:"column:student_progress_id;type:uuid;primaryKey" json:"student_progress_id"`
	StudentProgressStudentID    uuid.UUID `gorm:"column:student_progress_student_id;type:uuid;not null;uniqueIndex:uq_student_progress_key" json:"student_progress_student_id"`
	StudentProgressAssignmentID uuid.UUID `gorm:"column:student_progress_assignment_id;type:uuid;not null;uniqueIndex:uq_student_progress_key" json:"student_progress_assignment_id"`
	StudentProgressResourceID   uuid.UUID `gorm:"column:student_progress_resource_id;type:uuid;not null;uniqueIndex:uq_student_progress_key" json:"student_progress_resource_id"`

	StudentProgressLessonTopicID uuid.UUID `gorm:"column:student_progress_lesson_topic_id;type:uuid;not null;index" json:"student_progress_lesson_topic_id"`

	StudentProgressSolvedCount  int `gorm:"column:student_progress_solved_count;not null;default:0" json:"student_progress_solved_count"`
	StudentProgressCorrectCount int `gorm:"column:student_progress_correct_count;not null;default:0" json:"student_progress_correct_count"`
	StudentProgressWrongCount   int `gorm:"column:student_progress_wrong_count;not null;default:0" json:"student_progress_wrong_count"`
	StudentProgressEmptyCount   int `gorm:"column:student_progress_empty_count;not null;default:0" json:"student_progress_empty_count"`

	// legacy target field, accepted but never recomputed; per-resource counts
	// are authoritative
	StudentProgressTotalCount *int `gorm:"column:student_progress_total_count" json:"student_progress_total_count,omitempty"`

	StudentProgressLastSolvedAt *time.Time `gorm:"column:student_progress_last_solved_at" json:"student_progress_last_solved_at,omitempty"`

	StudentProgressCreatedAt time.Time `gorm:"column:student_progress_created_at;not null;autoCreateTime" json:"student_progress_created_at"`
	StudentProgressUpdatedAt time.Time `gorm:"column:student_progress_updated_at;not null;autoUpdateTime" json:"student_progress_updated_at"`

	Student    *studentModel.StudentModel    `gorm:"foreignKey:StudentProgressStudentID;references:StudentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Assignment *StudentAssignmentModel       `gorm:"foreignKey:StudentProgressAssignmentID;references:StudentAssignmentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Resource   *resourceModel.ResourceModel  `gorm:"foreignKey:StudentProgressResourceID;references:ResourceID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Topic      *lessonModel.LessonTopicModel `gorm:"foreignKey:StudentProgressLessonTopicID;references:LessonTopicID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (StudentProgressModel) TableName() string { return "student_progress" }

func (p *StudentProgressModel) BeforeCreate(tx *gorm.DB) error {
	if p.StudentProgressID == uuid.Nil {
		p.StudentProgressID = uuid.New()
	}
	return nil
}
