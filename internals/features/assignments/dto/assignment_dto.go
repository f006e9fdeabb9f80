// file: internals/features/assignments/dto/assignment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "kocluk_backend/internals/features/assignments/model"
)

/* =========================================================
   REPLACE (destructive): delete all, recreate from topicIds
========================================================= */

type ReplaceAssignmentsRequest struct {
	StudentID uuid.UUID   `json:"studentId" validate:"required"`
	TopicIDs  []uuid.UUID `json:"topicIds"`
}

// TopicResult: per-topic outcome of the batch; failures never abort the rest.
type TopicResult struct {
	TopicID uuid.UUID `json:"topicId"`
	Success bool      `json:"success"`
	Error   string    `json:"error,omitempty"`
}

type ReplaceAssignmentsResponse struct {
	Assignments      int          `json:"assignments"`
	TotalAssignments int          `json:"totalAssignments"`
	Results          []TopicResult `json:"results"`
}

/* =========================================================
   UPDATE (completion toggle)
========================================================= */

type UpdateAssignmentRequest struct {
	Completed *bool `json:"completed" validate:"required"`
}

/* =========================================================
   RESPONSE
========================================================= */

type AssignmentResponse struct {
	ID             uuid.UUID          `json:"id"`
	StudentID      uuid.UUID          `json:"studentId"`
	TopicID        uuid.UUID          `json:"topicId"`
	AssignedAt     time.Time          `json:"assignedAt"`
	Completed      bool               `json:"completed"`
	CompletedAt    *time.Time         `json:"completedAt,omitempty"`
	QuestionCounts m.QuestionCountMap `json:"questionCounts"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

func FromAssignmentModel(a m.StudentAssignmentModel) AssignmentResponse {
	qc := a.StudentAssignmentQuestionCounts.Data()
	if qc == nil {
		qc = m.QuestionCountMap{}
	}
	return AssignmentResponse{
		ID:             a.StudentAssignmentID,
		StudentID:      a.StudentAssignmentStudentID,
		TopicID:        a.StudentAssignmentLessonTopicID,
		AssignedAt:     a.StudentAssignmentAssignedAt,
		Completed:      a.StudentAssignmentCompleted,
		CompletedAt:    a.StudentAssignmentCompletedAt,
		QuestionCounts: qc,
		CreatedAt:      a.StudentAssignmentCreatedAt,
		UpdatedAt:      a.StudentAssignmentUpdatedAt,
	}
}

func FromAssignmentModels(list []m.StudentAssignmentModel) []AssignmentResponse {
	out := make([]AssignmentResponse, 0, len(list))
	for _, a := range list {
		out = append(out, FromAssignmentModel(a))
	}
	return out
}
