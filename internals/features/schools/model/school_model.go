// file: internals/features/schools/model/school_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SchoolModel struct {
	SchoolID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:school_id" json:"school_id"`
	SchoolName string    `gorm:"type:varchar(160);not null;column:school_name" json:"school_name"`

	// Slug doubles as the subdomain ({slug}.example.com) and the X-School-ID value.
	SchoolSlug string `gorm:"type:varchar(80);not null;uniqueIndex;column:school_slug" json:"school_slug"`

	SchoolIsActive bool `gorm:"not null;default:true;column:school_is_active" json:"school_is_active"`

	SchoolCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:school_created_at" json:"school_created_at"`
	SchoolUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:school_updated_at" json:"school_updated_at"`
	SchoolDeletedAt gorm.DeletedAt `gorm:"column:school_deleted_at;index" json:"school_deleted_at,omitempty"`
}

func (SchoolModel) TableName() string { return "schools" }
