// file: internals/features/lessons/dto/lesson_topic_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "kocluk_backend/internals/features/lessons/model"
)

/* =========================================================
   CREATE / UPDATE
========================================================= */

type CreateTopicRequest struct {
	LessonID uuid.UUID `json:"lessonId" validate:"required"`
	Name     string    `json:"name" validate:"required,min=1,max=200"`
	// 0 → appended to the end of the lesson's sequence
	Order int `json:"order" validate:"omitempty,gte=0"`
}

func (r *CreateTopicRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

func (r CreateTopicRequest) ToModel(order int) m.LessonTopicModel {
	return m.LessonTopicModel{
		LessonTopicLessonID: r.LessonID,
		LessonTopicName:     r.Name,
		LessonTopicOrder:    order,
	}
}

type UpdateTopicRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=200"`
}

// ReorderTopicsRequest: ordered id list becomes the dense 1..N sequence.
type ReorderTopicsRequest struct {
	LessonID uuid.UUID   `json:"lessonId" validate:"required"`
	TopicIDs []uuid.UUID `json:"topicIds" validate:"required,min=1"`
}

/* =========================================================
   RESPONSE
========================================================= */

type TopicResponse struct {
	ID        uuid.UUID `json:"id"`
	LessonID  uuid.UUID `json:"lessonId"`
	Name      string    `json:"name"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromTopicModel(t m.LessonTopicModel) TopicResponse {
	return TopicResponse{
		ID:        t.LessonTopicID,
		LessonID:  t.LessonTopicLessonID,
		Name:      t.LessonTopicName,
		Order:     t.LessonTopicOrder,
		CreatedAt: t.LessonTopicCreatedAt,
		UpdatedAt: t.LessonTopicUpdatedAt,
	}
}

func FromTopicModels(list []m.LessonTopicModel) []TopicResponse {
	out := make([]TopicResponse, 0, len(list))
	for _, t := range list {
		out = append(out, FromTopicModel(t))
	}
	return out
}
