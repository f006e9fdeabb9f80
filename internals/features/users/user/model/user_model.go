// file: internals/features/users/user/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel: teacher or super-admin account.
// A teacher's subscription is active iff user_subscription_end_date is
// NULL or in the future.
type UserModel struct {
	// PK
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`

	UserName  string `gorm:"column:user_name;type:varchar(100);not null" json:"user_name"`
	UserEmail string `gorm:"column:user_email;type:varchar(255);not null;uniqueIndex:uq_users_email" json:"user_email"`

	// nullable during account transition (invited but not yet activated)
	UserPassword *string `gorm:"column:user_password;type:varchar(255)" json:"-"`

	UserRole string `gorm:"column:user_role;type:varchar(20);not null;default:'TEACHER'" json:"user_role"`

	UserSubscriptionEndDate *time.Time `gorm:"column:user_subscription_end_date" json:"user_subscription_end_date,omitempty"`

	UserCreatedAt time.Time `gorm:"column:user_created_at;not null;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"column:user_updated_at;not null;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == uuid.Nil {
		u.UserID = uuid.New()
	}
	return nil
}

// SubscriptionActive: NULL end date means unlimited.
func (u *UserModel) SubscriptionActive(now time.Time) bool {
	return u.UserSubscriptionEndDate == nil || u.UserSubscriptionEndDate.After(now)
}
