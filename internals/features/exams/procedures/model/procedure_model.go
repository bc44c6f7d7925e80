// file: internals/features/exams/procedures/model/procedure_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProcedureModel struct {
	ProcedureID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:procedure_id" json:"procedure_id"`
	ProcedureSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:procedure_school_id" json:"procedure_school_id"`

	// Checklist belongs to a program; students of that program get assigned to it.
	ProcedureProgramID uuid.UUID `gorm:"type:uuid;not null;index;column:procedure_program_id" json:"procedure_program_id"`

	ProcedureName string `gorm:"type:varchar(200);not null;column:procedure_name" json:"procedure_name"`

	ProcedureSteps []ProcedureStepModel `gorm:"foreignKey:ProcedureStepProcedureID;references:ProcedureID" json:"procedure_steps,omitempty"`

	ProcedureCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:procedure_created_at" json:"procedure_created_at"`
	ProcedureUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:procedure_updated_at" json:"procedure_updated_at"`
	ProcedureDeletedAt gorm.DeletedAt `gorm:"column:procedure_deleted_at;index" json:"procedure_deleted_at,omitempty"`
}

func (ProcedureModel) TableName() string { return "procedures" }

// ProcedureStepModel is one checklist item. It owns no score; scores live in
// step_scores keyed by (student_procedure, step, examiner).
type ProcedureStepModel struct {
	ProcedureStepID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:procedure_step_id" json:"procedure_step_id"`
	ProcedureStepProcedureID uuid.UUID `gorm:"type:uuid;not null;column:procedure_step_procedure_id;uniqueIndex:uq_procedure_step_position,priority:1" json:"procedure_step_procedure_id"`

	// Display order within the checklist; unique per procedure.
	ProcedureStepPosition    int    `gorm:"not null;column:procedure_step_position;uniqueIndex:uq_procedure_step_position,priority:2" json:"procedure_step_position"`
	ProcedureStepDescription string `gorm:"type:text;not null;column:procedure_step_description" json:"procedure_step_description"`

	ProcedureStepCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:procedure_step_created_at" json:"procedure_step_created_at"`
}

func (ProcedureStepModel) TableName() string { return "procedure_steps" }
