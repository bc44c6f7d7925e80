// file: internals/features/exams/careplan/model/care_plan_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// CarePlanMaxScore is fixed for every assessment.
const CarePlanMaxScore = 20

// CarePlanAssessmentModel is write-once: at most one row per
// (student, program), enforced by the unique index so the existence check is
// atomic with the insert. Once a row exists it is permanently locked; there
// is no update or delete path.
type CarePlanAssessmentModel struct {
	CarePlanID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:care_plan_id" json:"care_plan_id"`
	CarePlanSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:care_plan_school_id" json:"care_plan_school_id"`

	CarePlanStudentID uuid.UUID `gorm:"type:uuid;not null;column:care_plan_student_id;uniqueIndex:uq_care_plan_student_program,priority:1" json:"care_plan_student_id"`
	CarePlanProgramID uuid.UUID `gorm:"type:uuid;not null;column:care_plan_program_id;uniqueIndex:uq_care_plan_student_program,priority:2" json:"care_plan_program_id"`

	CarePlanScore    int     `gorm:"not null;column:care_plan_score;check:care_plan_score BETWEEN 0 AND 20" json:"care_plan_score"`
	CarePlanMaxScore int     `gorm:"not null;default:20;column:care_plan_max_score" json:"care_plan_max_score"`
	CarePlanComments *string `gorm:"type:text;column:care_plan_comments" json:"care_plan_comments,omitempty"`

	CarePlanExaminerID uuid.UUID `gorm:"type:uuid;not null;column:care_plan_examiner_id" json:"care_plan_examiner_id"`
	CarePlanAssessedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:care_plan_assessed_at" json:"care_plan_assessed_at"`

	CarePlanIsLocked bool `gorm:"not null;default:true;column:care_plan_is_locked" json:"care_plan_is_locked"`

	CarePlanCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:care_plan_created_at" json:"care_plan_created_at"`
}

func (CarePlanAssessmentModel) TableName() string { return "care_plan_assessments" }

// Percentage is purely derived, never stored.
func (m *CarePlanAssessmentModel) Percentage() float64 {
	if m.CarePlanMaxScore == 0 {
		return 0
	}
	return float64(m.CarePlanScore) / float64(m.CarePlanMaxScore) * 100
}

// ValidCarePlanScore reports whether v is on the 0..20 scale.
func ValidCarePlanScore(v int) bool { return v >= 0 && v <= CarePlanMaxScore }
