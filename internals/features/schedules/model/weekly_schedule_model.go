// file: internals/features/schedules/model/weekly_schedule_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	assignmentModel "kocluk_backend/internals/features/assignments/model"
	studentModel "kocluk_backend/internals/features/students/model"
)

// WeeklyScheduleModel: date-bounded container of week buckets distributing a
// student's assignments over time. Weeks and week topics are generated with
// the schedule inside one transaction.
type WeeklyScheduleModel struct {
	WeeklyScheduleID        uuid.UUID `gorm:"column:weekly_schedule_id;type:uuid;primaryKey" json:"weekly_schedule_id"`
	WeeklyScheduleStudentID uuid.UUID `gorm:"column:weekly_schedule_student_id;type:uuid;not null;index" json:"weekly_schedule_student_id"`

	WeeklyScheduleTitle     string    `gorm:"column:weekly_schedule_title;type:varchar(200);not null" json:"weekly_schedule_title"`
	WeeklyScheduleStartDate time.Time `gorm:"column:weekly_schedule_start_date;not null" json:"weekly_schedule_start_date"`
	WeeklyScheduleEndDate   time.Time `gorm:"column:weekly_schedule_end_date;not null" json:"weekly_schedule_end_date"`
	WeeklyScheduleIsActive  bool      `gorm:"column:weekly_schedule_is_active;not null;default:true" json:"weekly_schedule_is_active"`

	WeeklyScheduleCreatedAt time.Time `gorm:"column:weekly_schedule_created_at;not null;autoCreateTime" json:"weekly_schedule_created_at"`
	WeeklyScheduleUpdatedAt time.Time `gorm:"column:weekly_schedule_updated_at;not null;autoUpdateTime" json:"weekly_schedule_updated_at"`

	Student *studentModel.StudentModel `gorm:"foreignKey:WeeklyScheduleStudentID;references:StudentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Weeks   []WeeklyScheduleWeekModel  `gorm:"foreignKey:WeeklyScheduleWeekScheduleID;references:WeeklyScheduleID" json:"-"`
}

func (WeeklyScheduleModel) TableName() string { return "weekly_schedules" }

func (s *WeeklyScheduleModel) BeforeCreate(tx *gorm.DB) error {
	if s.WeeklyScheduleID == uuid.Nil {
		s.WeeklyScheduleID = uuid.New()
	}
	return nil
}

// WeeklyScheduleWeekModel: one 7-day bucket; week_number is dense 1-based.
type WeeklyScheduleWeekModel struct {
	WeeklyScheduleWeekID         uuid.UUID `gorm:"column:weekly_schedule_week_id;type:uuid;primaryKey" json:"weekly_schedule_week_id"`
	WeeklyScheduleWeekScheduleID uuid.UUID `gorm:"column:weekly_schedule_week_schedule_id;type:uuid;not null;uniqueIndex:uq_weekly_schedule_weeks_number" json:"weekly_schedule_week_schedule_id"`
	WeeklyScheduleWeekNumber     int       `gorm:"column:weekly_schedule_week_number;not null;uniqueIndex:uq_weekly_schedule_weeks_number" json:"weekly_schedule_week_number"`

	WeeklyScheduleWeekStartDate time.Time `gorm:"column:weekly_schedule_week_start_date;not null" json:"weekly_schedule_week_start_date"`
	WeeklyScheduleWeekEndDate   time.Time `gorm:"column:weekly_schedule_week_end_date;not null" json:"weekly_schedule_week_end_date"`

	Schedule *WeeklyScheduleModel       `gorm:"foreignKey:WeeklyScheduleWeekScheduleID;references:WeeklyScheduleID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Topics   []WeeklyScheduleTopicModel `gorm:"foreignKey:WeeklyScheduleTopicWeekID;references:WeeklyScheduleWeekID" json:"-"`
}

func (WeeklyScheduleWeekModel) TableName() string { return "weekly_schedule_weeks" }

func (w *WeeklyScheduleWeekModel) BeforeCreate(tx *gorm.DB) error {
	if w.WeeklyScheduleWeekID == uuid.Nil {
		w.WeeklyScheduleWeekID = uuid.New()
	}
	return nil
}

// WeeklyScheduleTopicModel: one assignment placed into one week bucket with a
// dense topic_order starting at 1.
type WeeklyScheduleTopicModel struct {
	WeeklyScheduleTopicID           uuid.UUID `gorm:"column:weekly_schedule_topic_id;type:uuid;primaryKey" json:"weekly_schedule_topic_id"`
	WeeklyScheduleTopicWeekID       uuid.UUID `gorm:"column:weekly_schedule_topic_week_id;type:uuid;not null;uniqueIndex:uq_weekly_schedule_topics_pair" json:"weekly_schedule_topic_week_id"`
	WeeklyScheduleTopicAssignmentID uuid.UUID `gorm:"column:weekly_schedule_topic_assignment_id;type:uuid;not null;uniqueIndex:uq_weekly_schedule_topics_pair" json:"weekly_schedule_topic_assignment_id"`

	WeeklyScheduleTopicOrder       int        `gorm:"column:weekly_schedule_topic_order;not null" json:"weekly_schedule_topic_order"`
	WeeklyScheduleTopicIsCompleted bool       `gorm:"column:weekly_schedule_topic_is_completed;not null;default:false" json:"weekly_schedule_topic_is_completed"`
	WeeklyScheduleTopicCompletedAt *time.Time `gorm:"column:weekly_schedule_topic_completed_at" json:"weekly_schedule_topic_completed_at,omitempty"`

	Week       *WeeklyScheduleWeekModel                `gorm:"foreignKey:WeeklyScheduleTopicWeekID;references:WeeklyScheduleWeekID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Assignment *assignmentModel.StudentAssignmentModel `gorm:"foreignKey:WeeklyScheduleTopicAssignmentID;references:StudentAssignmentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (WeeklyScheduleTopicModel) TableName() string { return "weekly_schedule_topics" }

func (t *WeeklyScheduleTopicModel) BeforeCreate(tx *gorm.DB) error {
	if t.WeeklyScheduleTopicID == uuid.Nil {
		t.WeeklyScheduleTopicID = uuid.New()
	}
	return nil
}
