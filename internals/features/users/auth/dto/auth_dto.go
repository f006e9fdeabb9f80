// file: internals/features/users/auth/dto/auth_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

// LoginResponse echoes the session identity plus the CSRF token the client
// must send back in X-CSRF-Token on every mutating request.
type LoginResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CSRFToken string    `json:"csrfToken"`
}

type MeResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Role string    `json:"role"`
}
