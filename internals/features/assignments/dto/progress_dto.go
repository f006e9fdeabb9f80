// file: internals/features/assignments/dto/progress_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "kocluk_backend/internals/features/assignments/model"
)

/* =========================================================
   UPSERT - keyed by (studentId, assignmentId, resourceId)
========================================================= */

type UpsertProgressRequest struct {
	StudentID    uuid.UUID `json:"studentId" validate:"required"`
	AssignmentID uuid.UUID `json:"assignmentId" validate:"required"`
	ResourceID   uuid.UUID `json:"resourceId" validate:"required"`
	TopicID      uuid.UUID `json:"topicId" validate:"required"`

	SolvedCount  int `json:"solvedCount" validate:"gte=0"`
	CorrectCount int `json:"correctCount" validate:"gte=0"`
	WrongCount   int `json:"wrongCount" validate:"gte=0"`
	EmptyCount   int `json:"emptyCount" validate:"gte=0"`

	// legacy target, stored as-is when provided
	TotalCount *int `json:"totalCount" validate:"omitempty,gte=0"`
}

func (r UpsertProgressRequest) ToModel(now time.Time) m.StudentProgressModel {
	return m.StudentProgressModel{
		StudentProgressStudentID:     r.StudentID,
		StudentProgressAssignmentID:  r.AssignmentID,
		StudentProgressResourceID:    r.ResourceID,
		StudentProgressLessonTopicID: r.TopicID,
		StudentProgressSolvedCount:   r.SolvedCount,
		StudentProgressCorrectCount:  r.CorrectCount,
		StudentProgressWrongCount:    r.WrongCount,
		StudentProgressEmptyCount:    r.EmptyCount,
		StudentProgressTotalCount:    r.TotalCount,
		StudentProgressLastSolvedAt:  &now,
	}
}

/* =========================================================
   UPDATE (by id) / INCREMENT
========================================================= */

type UpdateProgressRequest struct {
	SolvedCount  *int `json:"solvedCount" validate:"omitempty,gte=0"`
	CorrectCount *int `json:"correctCount" validate:"omitempty,gte=0"`
	WrongCount   *int `json:"wrongCount" validate:"omitempty,gte=0"`
	EmptyCount   *int `json:"emptyCount" validate:"omitempty,gte=0"`
	TotalCount   *int `json:"totalCount" validate:"omitempty,gte=0"`
}

// IncrementProgressRequest: atomic solvedCount += increment (default 1).
type IncrementProgressRequest struct {
	StudentID    uuid.UUID `json:"studentId" validate:"required"`
	AssignmentID uuid.UUID `json:"assignmentId" validate:"required"`
	ResourceID   uuid.UUID `json:"resourceId" validate:"required"`
	TopicID      uuid.UUID `json:"topicId" validate:"required"`
	Increment    *int      `json:"increment" validate:"omitempty,gt=0"`
}

func (r IncrementProgressRequest) Delta() int {
	if r.Increment == nil {
		return 1
	}
	return *r.Increment
}

/* =========================================================
   RESPONSE
========================================================= */

type ProgressResponse struct {
	ID           uuid.UUID  `json:"id"`
	StudentID    uuid.UUID  `json:"studentId"`
	AssignmentID uuid.UUID  `json:"assignmentId"`
	ResourceID   uuid.UUID  `json:"resourceId"`
	TopicID      uuid.UUID  `json:"topicId"`
	SolvedCount  int        `json:"solvedCount"`
	CorrectCount int        `json:"correctCount"`
	WrongCount   int        `json:"wrongCount"`
	EmptyCount   int        `json:"emptyCount"`
	TotalCount   *int       `json:"totalCount,omitempty"`
	LastSolvedAt *time.Time `json:"lastSolvedAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func FromProgressModel(p m.StudentProgressModel) ProgressResponse {
	return ProgressResponse{
		ID:           p.StudentProgressID,
		StudentID:    p.StudentProgressStudentID,
		AssignmentID: p.StudentProgressAssignmentID,
		ResourceID:   p.StudentProgressResourceID,
		TopicID:      p.StudentProgressLessonTopicID,
		SolvedCount:  p.StudentProgressSolvedCount,
		CorrectCount: p.StudentProgressCorrectCount,
		WrongCount:   p.StudentProgressWrongCount,
		EmptyCount:   p.StudentProgressEmptyCount,
		TotalCount:   p.StudentProgressTotalCount,
		LastSolvedAt: p.StudentProgressLastSolvedAt,
		CreatedAt:    p.StudentProgressCreatedAt,
		UpdatedAt:    p.StudentProgressUpdatedAt,
	}
}

func FromProgressModels(list []m.StudentProgressModel) []ProgressResponse {
	out := make([]ProgressResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromProgressModel(p))
	}
	return out
}
