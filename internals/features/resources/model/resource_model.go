// file: internals/features/resources/model/resource_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	lessonModel "kocluk_backend/internals/features/lessons/model"
	userModel "kocluk_backend/internals/features/users/user/model"
)

// ResourceModel: a study book/material owned by a teacher, linked to lessons
// and topics through the pivot tables below. Pivot rows are replaced together
// with the resource inside one transaction.
type ResourceModel struct {
	ResourceID        uuid.UUID `gorm:"column:resource_id;type:uuid;primaryKey" json:"resource_id"`
	ResourceTeacherID uuid.UUID `gorm:"column:resource_teacher_id;type:uuid;not null;index" json:"resource_teacher_id"`

	ResourceName        string  `gorm:"column:resource_name;type:varchar(200);not null" json:"resource_name"`
	ResourceDescription *string `gorm:"column:resource_description;type:text" json:"resource_description,omitempty"`

	ResourceCreatedAt time.Time `gorm:"column:resource_created_at;not null;autoCreateTime" json:"resource_created_at"`
	ResourceUpdatedAt time.Time `gorm:"column:resource_updated_at;not null;autoUpdateTime" json:"resource_updated_at"`

	Teacher *userModel.UserModel  `gorm:"foreignKey:ResourceTeacherID;references:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Lessons []ResourceLessonModel `gorm:"foreignKey:ResourceLessonResourceID;references:ResourceID" json:"-"`
	Topics  []ResourceTopicModel  `gorm:"foreignKey:ResourceTopicResourceID;references:ResourceID" json:"-"`
}

func (ResourceModel) TableName() string { return "resources" }

func (r *ResourceModel) BeforeCreate(tx *gorm.DB) error {
	if r.ResourceID == uuid.Nil {
		r.ResourceID = uuid.New()
	}
	return nil
}

// ResourceLessonModel: resource ↔ lesson link.
type ResourceLessonModel struct {
	ResourceLessonID         uuid.UUID `gorm:"column:resource_lesson_id;type:uuid;primaryKey" json:"resource_lesson_id"`
	ResourceLessonResourceID uuid.UUID `gorm:"column:resource_lesson_resource_id;type:uuid;not null;uniqueIndex:uq_resource_lessons_pair" json:"resource_lesson_resource_id"`
	ResourceLessonLessonID   uuid.UUID `gorm:"column:resource_lesson_lesson_id;type:uuid;not null;uniqueIndex:uq_resource_lessons_pair" json:"resource_lesson_lesson_id"`

	Lesson *lessonModel.LessonModel `gorm:"foreignKey:ResourceLessonLessonID;references:LessonID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (ResourceLessonModel) TableName() string { return "resource_lessons" }

func (rl *ResourceLessonModel) BeforeCreate(tx *gorm.DB) error {
	if rl.ResourceLessonID == uuid.Nil {
		rl.ResourceLessonID = uuid.New()
	}
	return nil
}

// ResourceTopicModel: resource ↔ topic link carrying the per-topic question
// count of the material.
type ResourceTopicModel struct {
	ResourceTopicID         uuid.UUID `gorm:"column:resource_topic_id;type:uuid;primaryKey" json:"resource_topic_id"`
	ResourceTopicResourceID uuid.UUID `gorm:"column:resource_topic_resource_id;type:uuid;not null;uniqueIndex:uq_resource_topics_pair" json:"resource_topic_resource_id"`
	ResourceTopicTopicID    uuid.UUID `gorm:"column:resource_topic_topic_id;type:uuid;not null;uniqueIndex:uq_resource_topics_pair" json:"resource_topic_topic_id"`

	ResourceTopicQuestionCount int `gorm:"column:resource_topic_question_count;not null;default:0" json:"resource_topic_question_count"`

	Topic *lessonModel.LessonTopicModel `gorm:"foreignKey:ResourceTopicTopicID;references:LessonTopicID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (ResourceTopicModel) TableName() string { return "resource_topics" }

func (rt *ResourceTopicModel) BeforeCreate(tx *gorm.DB) error {
	if rt.ResourceTopicID == uuid.Nil {
		rt.ResourceTopicID = uuid.New()
	}
	return nil
}
