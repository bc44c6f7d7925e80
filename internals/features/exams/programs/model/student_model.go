// file: internals/features/exams/programs/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentModel is read-only from the assessment subsystem's viewpoint; rows are
// provisioned by an external registration process.
type StudentModel struct {
	StudentID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`
	StudentSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:student_school_id" json:"student_school_id"`

	// Every student belongs to exactly one program.
	StudentProgramID uuid.UUID `gorm:"type:uuid;not null;index;column:student_program_id" json:"student_program_id"`

	StudentFullName    string `gorm:"type:varchar(180);not null;column:student_full_name" json:"student_full_name"`
	StudentIndexNumber string `gorm:"type:varchar(60);not null;column:student_index_number" json:"student_index_number"`

	StudentCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:student_created_at" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:student_updated_at" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }
