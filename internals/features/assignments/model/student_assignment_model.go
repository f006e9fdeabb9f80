// file: internals/features/assignments/model/student_assignment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	lessonModel "kocluk_backend/internals/features/lessons/model"
	studentModel "kocluk_backend/internals/features/students/model"
)

// QuestionCountMap: resourceID → topicID → count. Typed on purpose instead of
// a loose JSON blob; key semantics are part of the contract.
type QuestionCountMap map[string]map[string]int

// StudentAssignmentModel links one topic to one student for study tracking.
// Unique per (student, topic); the assignment POST replaces a student's whole
// set at once.
type StudentAssignmentModel struct {
	StudentAssignmentID            uuid.UUID `gorm:"column:student_assignment_id;type:uuid;primaryKey" json:"student_assignment_id"`
	StudentAssignmentStudentID     uuid.UUID `gorm:"column:student_assignment_student_id;type:uuid;not null;uniqueIndex:uq_student_assignments_pair" json:"student_assignment_student_id"`
	StudentAssignmentLessonTopicID uuid.UUID `gorm:"column:student_assignment_lesson_topic_id;type:uuid;not null;uniqueIndex:uq_student_assignments_pair" json:"student_assignment_lesson_topic_id"`

	StudentAssignmentAssignedAt  time.Time  `gorm:"column:student_assignment_assigned_at;not null" json:"student_assignment_assigned_at"`
	StudentAssignmentCompleted   bool       `gorm:"column:student_assignment_completed;not null;default:false" json:"student_assignment_completed"`
	StudentAssignmentCompletedAt *time.Time `gorm:"column:student_assignment_completed_at" json:"student_assignment_completed_at,omitempty"`

	StudentAssignmentQuestionCounts datatypes.JSONType[QuestionCountMap] `gorm:"column:student_assignment_question_counts" json:"student_assignment_question_counts"`

	StudentAssignmentCreatedAt time.Time `gorm:"column:student_assignment_created_at;not null;autoCreateTime" json:"student_assignment_created_at"`
	StudentAssignmentUpdatedAt time.Time `gorm:"column:student_assignment_updated_at;not null;autoUpdateTime" json:"student_assignment_updated_at"`

	Student *studentModel.StudentModel    `gorm:"foreignKey:StudentAssignmentStudentID;references:StudentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Topic   *lessonModel.LessonTopicModel `gorm:"foreignKey:StudentAssignmentLessonTopicID;references:LessonTopicID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (StudentAssignmentModel) TableName() string { return "student_assignments" }

func (a *StudentAssignmentModel) BeforeCreate(tx *gorm.DB) error {
	if a.StudentAssignmentID == uuid.Nil {
		a.StudentAssignmentID = uuid.New()
	}
	return nil
}
