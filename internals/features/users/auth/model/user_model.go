// file: internals/features/users/auth/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel holds every account: admins and examiner accounts alike, split by
// user_role. Examiner identity is what scoring partitions on.
type UserModel struct {
	UserID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`
	UserSchoolID uuid.UUID `gorm:"type:uuid;not null;column:user_school_id;uniqueIndex:uq_user_school_email,priority:1" json:"user_school_id"`

	UserFullName string `gorm:"type:varchar(180);not null;column:user_full_name" json:"user_full_name"`
	UserEmail    string `gorm:"type:varchar(190);not null;column:user_email;uniqueIndex:uq_user_school_email,priority:2" json:"user_email"`

	UserPasswordHash string `gorm:"type:varchar(100);not null;column:user_password_hash" json:"-"`

	UserRole     string `gorm:"type:varchar(20);not null;default:'examiner';column:user_role" json:"user_role"`
	UserIsActive bool   `gorm:"not null;default:true;column:user_is_active" json:"user_is_active"`

	UserCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:user_created_at" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:user_updated_at" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }
