// file: internals/features/exams/programs/model/program_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProgramModel struct {
	ProgramID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:program_id" json:"program_id"`
	ProgramSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:program_school_id" json:"program_school_id"`

	ProgramName string  `gorm:"type:varchar(180);not null;column:program_name" json:"program_name"`
	ProgramCode *string `gorm:"type:varchar(40);column:program_code" json:"program_code,omitempty"`

	ProgramCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:program_created_at" json:"program_created_at"`
	ProgramUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:program_updated_at" json:"program_updated_at"`
	ProgramDeletedAt gorm.DeletedAt `gorm:"column:program_deleted_at;index" json:"program_deleted_at,omitempty"`
}

func (ProgramModel) TableName() string { return "programs" }
