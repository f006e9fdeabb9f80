// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"kocluk_backend/internals/constants"
	m "kocluk_backend/internals/features/users/user/model"
)

/* =========================================================
   CREATE / UPDATE (super-admin teacher management)
========================================================= */

type CreateTeacherRequest struct {
	Name                string     `json:"name" validate:"required,min=2,max=100"`
	Email               string     `json:"email" validate:"required,email,max=255"`
	Password            string     `json:"password" validate:"required,min=8,max=72"`
	SubscriptionEndDate *time.Time `json:"subscriptionEndDate"`
}

func (r *CreateTeacherRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

func (r CreateTeacherRequest) ToModel(passwordHash string) m.UserModel {
	return m.UserModel{
		UserName:                r.Name,
		UserEmail:               r.Email,
		UserPassword:            &passwordHash,
		UserRole:                constants.RoleTeacher,
		UserSubscriptionEndDate: r.SubscriptionEndDate,
	}
}

// UpdateTeacherRequest: partial update, nil means "leave as is".
type UpdateTeacherRequest struct {
	Name                *string    `json:"name" validate:"omitempty,min=2,max=100"`
	Email               *string    `json:"email" validate:"omitempty,email,max=255"`
	Password            *string    `json:"password" validate:"omitempty,min=8,max=72"`
	SubscriptionEndDate *time.Time `json:"subscriptionEndDate"`
	ClearSubscription   *bool      `json:"clearSubscription"`
}

func (r *UpdateTeacherRequest) Normalize() {
	if r.Name != nil {
		v := strings.TrimSpace(*r.Name)
		r.Name = &v
	}
	if r.Email != nil {
		v := strings.ToLower(strings.TrimSpace(*r.Email))
		r.Email = &v
	}
}

/* =========================================================
   RESPONSE
========================================================= */

type TeacherResponse struct {
	ID                  uuid.UUID  `json:"id"`
	Name                string     `json:"name"`
	Email               string     `json:"email"`
	Role                string     `json:"role"`
	SubscriptionEndDate *time.Time `json:"subscriptionEndDate,omitempty"`
	SubscriptionActive  bool       `json:"subscriptionActive"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

func FromUserModel(u m.UserModel) TeacherResponse {
	return TeacherResponse{
		ID:                  u.UserID,
		Name:                u.UserName,
		Email:               u.UserEmail,
		Role:                u.UserRole,
		SubscriptionEndDate: u.UserSubscriptionEndDate,
		SubscriptionActive:  u.SubscriptionActive(time.Now()),
		CreatedAt:           u.UserCreatedAt,
		UpdatedAt:           u.UserUpdatedAt,
	}
}

func FromUserModels(list []m.UserModel) []TeacherResponse {
	out := make([]TeacherResponse, 0, len(list))
	for _, u := range list {
		out = append(out, FromUserModel(u))
	}
	return out
}
