// file: internals/features/users/auth/model/refresh_token_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "kocluk_backend/internals/features/users/user/model"
)

// RefreshTokenModel stores the HMAC hash of an issued refresh JWT, never the
// token itself. Rotation deletes the old hash and inserts the new one.
type RefreshTokenModel struct {
	RefreshTokenID     uuid.UUID `gorm:"column:refresh_token_id;type:uuid;primaryKey" json:"refresh_token_id"`
	RefreshTokenUserID uuid.UUID `gorm:"column:refresh_token_user_id;type:uuid;not null;index" json:"refresh_token_user_id"`

	RefreshTokenHash      string     `gorm:"column:refresh_token_hash;type:varchar(128);not null;uniqueIndex:uq_refresh_tokens_hash" json:"-"`
	RefreshTokenExpiresAt time.Time  `gorm:"column:refresh_token_expires_at;not null" json:"refresh_token_expires_at"`
	RefreshTokenUserAgent *string    `gorm:"column:refresh_token_user_agent;type:text" json:"refresh_token_user_agent,omitempty"`
	RefreshTokenIP        *string    `gorm:"column:refresh_token_ip;type:varchar(64)" json:"refresh_token_ip,omitempty"`
	RefreshTokenRevokedAt *time.Time `gorm:"column:refresh_token_revoked_at" json:"refresh_token_revoked_at,omitempty"`

	RefreshTokenCreatedAt time.Time `gorm:"column:refresh_token_created_at;not null;autoCreateTime" json:"refresh_token_created_at"`

	User *userModel.UserModel `gorm:"foreignKey:RefreshTokenUserID;references:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (RefreshTokenModel) TableName() string { return "refresh_tokens" }

func (r *RefreshTokenModel) BeforeCreate(tx *gorm.DB) error {
	if r.RefreshTokenID == uuid.Nil {
		r.RefreshTokenID = uuid.New()
	}
	return nil
}
