// file: internals/features/resources/dto/resource_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "kocluk_backend/internals/features/resources/model"
)

/* =========================================================
   CREATE / UPDATE
========================================================= */

type ResourceTopicInput struct {
	TopicID       uuid.UUID `json:"topicId" validate:"required"`
	QuestionCount int       `json:"questionCount" validate:"gte=0"`
}

type CreateResourceRequest struct {
	Name        string               `json:"name" validate:"required,min=2,max=200"`
	Description *string              `json:"description" validate:"omitempty,max=2000"`
	LessonIDs   []uuid.UUID          `json:"lessonIds" validate:"omitempty,dive,required"`
	Topics      []ResourceTopicInput `json:"topics" validate:"omitempty,dive"`
}

func (r *CreateResourceRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	if r.Description != nil {
		v := strings.TrimSpace(*r.Description)
		if v == "" {
			r.Description = nil
		} else {
			r.Description = &v
		}
	}
}

func (r CreateResourceRequest) ToModel(teacherID uuid.UUID) m.ResourceModel {
	return m.ResourceModel{
		ResourceTeacherID:   teacherID,
		ResourceName:        r.Name,
		ResourceDescription: r.Description,
	}
}

// UpdateResourceRequest: nested links, when present, replace the existing set.
type UpdateResourceRequest struct {
	Name        *string               `json:"name" validate:"omitempty,min=2,max=200"`
	Description *string               `json:"description" validate:"omitempty,max=2000"`
	LessonIDs   *[]uuid.UUID          `json:"lessonIds"`
	Topics      *[]ResourceTopicInput `json:"topics" validate:"omitempty,dive"`
}

/* =========================================================
   RESPONSE
========================================================= */

type ResourceTopicResponse struct {
	TopicID       uuid.UUID `json:"topicId"`
	QuestionCount int       `json:"questionCount"`
}

type ResourceResponse struct {
	ID          uuid.UUID               `json:"id"`
	TeacherID   uuid.UUID               `json:"teacherId"`
	Name        string                  `json:"name"`
	Description *string                 `json:"description,omitempty"`
	LessonIDs   []uuid.UUID             `json:"lessonIds"`
	Topics      []ResourceTopicResponse `json:"topics"`
	CreatedAt   time.Time               `json:"createdAt"`
	UpdatedAt   time.Time               `json:"updatedAt"`
}

func FromResourceModel(r m.ResourceModel) ResourceResponse {
	lessonIDs := make([]uuid.UUID, 0, len(r.Lessons))
	for _, rl := range r.Lessons {
		lessonIDs = append(lessonIDs, rl.ResourceLessonLessonID)
	}
	topics := make([]ResourceTopicResponse, 0, len(r.Topics))
	for _, rt := range r.Topics {
		topics = append(topics, ResourceTopicResponse{
			TopicID:       rt.ResourceTopicTopicID,
			QuestionCount: rt.ResourceTopicQuestionCount,
		})
	}
	return ResourceResponse{
		ID:          r.ResourceID,
		TeacherID:   r.ResourceTeacherID,
		Name:        r.ResourceName,
		Description: r.ResourceDescription,
		LessonIDs:   lessonIDs,
		Topics:      topics,
		CreatedAt:   r.ResourceCreatedAt,
		UpdatedAt:   r.ResourceUpdatedAt,
	}
}

func FromResourceModels(list []m.ResourceModel) []ResourceResponse {
	out := make([]ResourceResponse, 0, len(list))
	for _, r := range list {
		out = append(out, FromResourceModel(r))
	}
	return out
}
