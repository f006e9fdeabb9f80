// file: internals/features/schedules/dto/schedule_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "kocluk_backend/internals/features/schedules/model"
)

/* =========================================================
   CREATE (generation input)
========================================================= */

type CreateScheduleRequest struct {
	StudentID     uuid.UUID   `json:"studentId" validate:"required"`
	Title         string      `json:"title" validate:"required,min=2,max=200"`
	StartDate     time.Time   `json:"startDate" validate:"required"`
	EndDate       time.Time   `json:"endDate" validate:"required"`
	AssignmentIDs []uuid.UUID `json:"assignmentIds" validate:"required,min=1"`
}

func (r *CreateScheduleRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
}

/* =========================================================
   UPDATE
========================================================= */

type UpdateScheduleRequest struct {
	Title    *string `json:"title" validate:"omitempty,min=2,max=200"`
	IsActive *bool   `json:"isActive"`
}

// WeekTopicEdit: completion/order change of one placed topic.
type WeekTopicEdit struct {
	AssignmentID uuid.UUID `json:"assignmentId" validate:"required"`
	TopicOrder   *int      `json:"topicOrder" validate:"omitempty,gt=0"`
	IsCompleted  *bool     `json:"isCompleted"`
}

type UpdateWeekRequest struct {
	Topics []WeekTopicEdit `json:"topics" validate:"required,min=1,dive"`
}

/* =========================================================
   RESPONSE
========================================================= */

type WeekTopicResponse struct {
	ID           uuid.UUID  `json:"id"`
	AssignmentID uuid.UUID  `json:"assignmentId"`
	TopicOrder   int        `json:"topicOrder"`
	IsCompleted  bool       `json:"isCompleted"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
}

type WeekResponse struct {
	ID         uuid.UUID           `json:"id"`
	ScheduleID uuid.UUID           `json:"scheduleId"`
	WeekNumber int                 `json:"weekNumber"`
	StartDate  time.Time           `json:"startDate"`
	EndDate    time.Time           `json:"endDate"`
	Topics     []WeekTopicResponse `json:"topics"`
}

type ScheduleResponse struct {
	ID        uuid.UUID      `json:"id"`
	StudentID uuid.UUID      `json:"studentId"`
	Title     string         `json:"title"`
	StartDate time.Time      `json:"startDate"`
	EndDate   time.Time      `json:"endDate"`
	IsActive  bool           `json:"isActive"`
	Weeks     []WeekResponse `json:"weeks,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

func FromWeekTopicModel(t m.WeeklyScheduleTopicModel) WeekTopicResponse {
	return WeekTopicResponse{
		ID:           t.WeeklyScheduleTopicID,
		AssignmentID: t.WeeklyScheduleTopicAssignmentID,
		TopicOrder:   t.WeeklyScheduleTopicOrder,
		IsCompleted:  t.WeeklyScheduleTopicIsCompleted,
		CompletedAt:  t.WeeklyScheduleTopicCompletedAt,
	}
}

func FromWeekModel(w m.WeeklyScheduleWeekModel) WeekResponse {
	topics := make([]WeekTopicResponse, 0, len(w.Topics))
	for _, t := range w.Topics {
		topics = append(topics, FromWeekTopicModel(t))
	}
	return WeekResponse{
		ID:         w.WeeklyScheduleWeekID,
		ScheduleID: w.WeeklyScheduleWeekScheduleID,
		WeekNumber: w.WeeklyScheduleWeekNumber,
		StartDate:  w.WeeklyScheduleWeekStartDate,
		EndDate:    w.WeeklyScheduleWeekEndDate,
		Topics:     topics,
	}
}

func FromWeekModels(list []m.WeeklyScheduleWeekModel) []WeekResponse {
	out := make([]WeekResponse, 0, len(list))
	for _, w := range list {
		out = append(out, FromWeekModel(w))
	}
	return out
}

func FromScheduleModel(s m.WeeklyScheduleModel) ScheduleResponse {
	weeks := make([]WeekResponse, 0, len(s.Weeks))
	for _, w := range s.Weeks {
		weeks = append(weeks, FromWeekModel(w))
	}
	return ScheduleResponse{
		ID:        s.WeeklyScheduleID,
		StudentID: s.WeeklyScheduleStudentID,
		Title:     s.WeeklyScheduleTitle,
		StartDate: s.WeeklyScheduleStartDate,
		EndDate:   s.WeeklyScheduleEndDate,
		IsActive:  s.WeeklyScheduleIsActive,
		Weeks:     weeks,
		CreatedAt: s.WeeklyScheduleCreatedAt,
		UpdatedAt: s.WeeklyScheduleUpdatedAt,
	}
}

func FromScheduleModels(list []m.WeeklyScheduleModel) []ScheduleResponse {
	out := make([]ScheduleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, FromScheduleModel(s))
	}
	return out
}
