// file: internals/features/lessons/model/lesson_topic_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LessonTopicModel: ordered curriculum unit within a lesson.
// lesson_topic_order is a dense 1..N sequence per lesson; reorder rewrites
// every affected row inside one transaction.
type LessonTopicModel struct {
	LessonTopicID       uuid.UUID `gorm:"column:lesson_topic_id;type:uuid;primaryKey" json:"lesson_topic_id"`
	LessonTopicLessonID uuid.UUID `gorm:"column:lesson_topic_lesson_id;type:uuid;not null;index" json:"lesson_topic_lesson_id"`

	LessonTopicName  string `gorm:"column:lesson_topic_name;type:varchar(200);not null" json:"lesson_topic_name"`
	LessonTopicOrder int    `gorm:"column:lesson_topic_order;not null" json:"lesson_topic_order"`

	LessonTopicCreatedAt time.Time `gorm:"column:lesson_topic_created_at;not null;autoCreateTime" json:"lesson_topic_created_at"`
	LessonTopicUpdatedAt time.Time `gorm:"column:lesson_topic_updated_at;not null;autoUpdateTime" json:"lesson_topic_updated_at"`

	Lesson *LessonModel `gorm:"foreignKey:LessonTopicLessonID;references:LessonID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (LessonTopicModel) TableName() string { return "lesson_topics" }

func (t *LessonTopicModel) BeforeCreate(tx *gorm.DB) error {
	if t.LessonTopicID == uuid.Nil {
		t.LessonTopicID = uuid.New()
	}
	return nil
}
