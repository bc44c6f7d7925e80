// file: internals/features/exams/procedures/model/step_score_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Score scale for a single checklist step.
const (
	StepScoreMin = 0
	StepScoreMax = 4
)

// StepScoreModel is the unit of truth: one durable score per
// (student_procedure, step, examiner). The unique index gives writes to the
// same key replace-on-conflict semantics; a later write never creates a
// second row. Scores are replaced, never deleted.
type StepScoreModel struct {
	StepScoreID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:step_score_id" json:"step_score_id"`
	StepScoreSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:step_score_school_id" json:"step_score_school_id"`

	StepScoreStudentProcedureID uuid.UUID `gorm:"type:uuid;not null;column:step_score_student_procedure_id;uniqueIndex:uq_step_score_key,priority:1" json:"step_score_student_procedure_id"`
	StepScoreStepID             uuid.UUID `gorm:"type:uuid;not null;column:step_score_step_id;uniqueIndex:uq_step_score_key,priority:2" json:"step_score_step_id"`
	StepScoreExaminerID         uuid.UUID `gorm:"type:uuid;not null;column:step_score_examiner_id;uniqueIndex:uq_step_score_key,priority:3" json:"step_score_examiner_id"`

	StepScoreValue int `gorm:"not null;column:step_score_value;check:step_score_value BETWEEN 0 AND 4" json:"step_score_value"`

	StepScoreCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:step_score_created_at" json:"step_score_created_at"`
	StepScoreUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:step_score_updated_at" json:"step_score_updated_at"`
}

func (StepScoreModel) TableName() string { return "step_scores" }

// ValidStepScore reports whether v is on the 0..4 scale.
func ValidStepScore(v int) bool { return v >= StepScoreMin && v <= StepScoreMax }
