// file: internals/features/lessons/dto/lesson_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "kocluk_backend/internals/features/lessons/model"
)

/* =========================================================
   CREATE
========================================================= */

type CreateLessonRequest struct {
	Name     string  `json:"name" validate:"required,min=2,max=100"`
	Group    string  `json:"group" validate:"required,min=1,max=100"`
	ExamType string  `json:"type" validate:"required,oneof=TYT AYT"`
	Subject  *string `json:"subject" validate:"omitempty,max=100"`
	// empty → auto-assigned round-robin from the palette
	Color string `json:"color" validate:"omitempty,oneof=blue green red purple orange pink yellow"`
}

func (r *CreateLessonRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Group = strings.TrimSpace(r.Group)
	r.ExamType = strings.ToUpper(strings.TrimSpace(r.ExamType))
	r.Color = strings.ToLower(strings.TrimSpace(r.Color))
	if r.Subject != nil {
		v := strings.TrimSpace(*r.Subject)
		if v == "" {
			r.Subject = nil
		} else {
			r.Subject = &v
		}
	}
}

func (r CreateLessonRequest) ToModel(teacherID uuid.UUID, color string) m.LessonModel {
	return m.LessonModel{
		LessonTeacherID: teacherID,
		LessonName:      r.Name,
		LessonGroup:     r.Group,
		LessonExamType:  r.ExamType,
		LessonSubject:   r.Subject,
		LessonColor:     color,
	}
}

/* =========================================================
   UPDATE (partial)
========================================================= */

type UpdateLessonRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=2,max=100"`
	Group    *string `json:"group" validate:"omitempty,min=1,max=100"`
	ExamType *string `json:"type" validate:"omitempty,oneof=TYT AYT"`
	Subject  *string `json:"subject" validate:"omitempty,max=100"`
	Color    *string `json:"color" validate:"omitempty,oneof=blue green red purple orange pink yellow"`
}

/* =========================================================
   RESPONSE
========================================================= */

type LessonResponse struct {
	ID        uuid.UUID `json:"id"`
	TeacherID uuid.UUID `json:"teacherId"`
	Name      string    `json:"name"`
	Group     string    `json:"group"`
	ExamType  string    `json:"type"`
	Subject   *string   `json:"subject,omitempty"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromLessonModel(l m.LessonModel) LessonResponse {
	return LessonResponse{
		ID:        l.LessonID,
		TeacherID: l.LessonTeacherID,
		Name:      l.LessonName,
		Group:     l.LessonGroup,
		ExamType:  l.LessonExamType,
		Subject:   l.LessonSubject,
		Color:     l.LessonColor,
		CreatedAt: l.LessonCreatedAt,
		UpdatedAt: l.LessonUpdatedAt,
	}
}

func FromLessonModels(list []m.LessonModel) []LessonResponse {
	out := make([]LessonResponse, 0, len(list))
	for _, l := range list {
		out = append(out, FromLessonModel(l))
	}
	return out
}
