// file: internals/features/exams/procedures/model/student_procedure_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentProcedureModel assigns one student to one procedure for assessment.
// Scores attach to this join entity, not to the procedure itself. Exactly one
// row exists per (student, procedure); an external scheduling process creates
// them, the admin endpoint is only a stand-in.
type StudentProcedureModel struct {
	StudentProcedureID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_procedure_id" json:"student_procedure_id"`
	StudentProcedureSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:student_procedure_school_id" json:"student_procedure_school_id"`

	StudentProcedureStudentID   uuid.UUID `gorm:"type:uuid;not null;column:student_procedure_student_id;uniqueIndex:uq_student_procedure,priority:1" json:"student_procedure_student_id"`
	StudentProcedureProcedureID uuid.UUID `gorm:"type:uuid;not null;column:student_procedure_procedure_id;uniqueIndex:uq_student_procedure,priority:2" json:"student_procedure_procedure_id"`

	// The two independent scorers. Scoring is partitioned by examiner identity,
	// which is why concurrent writes to the same step never race.
	StudentProcedureExaminerAID uuid.UUID `gorm:"type:uuid;not null;column:student_procedure_examiner_a_id" json:"student_procedure_examiner_a_id"`
	StudentProcedureExaminerBID uuid.UUID `gorm:"type:uuid;not null;column:student_procedure_examiner_b_id" json:"student_procedure_examiner_b_id"`

	StudentProcedureCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:student_procedure_created_at" json:"student_procedure_created_at"`
	StudentProcedureUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:student_procedure_updated_at" json:"student_procedure_updated_at"`
	StudentProcedureDeletedAt gorm.DeletedAt `gorm:"column:student_procedure_deleted_at;index" json:"student_procedure_deleted_at,omitempty"`
}

func (StudentProcedureModel) TableName() string { return "student_procedures" }

/* ==============================
   Examiner slot
============================== */

// ExaminerSlot names which of the two assignment seats the caller holds.
// Resolved once per request from the assignment row and passed explicitly
// through service calls.
type ExaminerSlot string

const (
	SlotA ExaminerSlot = "A"
	SlotB ExaminerSlot = "B"
)

func (s ExaminerSlot) Valid() bool { return s == SlotA || s == SlotB }

// SlotOf returns the slot the given examiner occupies on this assignment,
// or ok=false when the examiner is not assigned at all.
func (sp *StudentProcedureModel) SlotOf(examinerID uuid.UUID) (ExaminerSlot, bool) {
	switch examinerID {
	case sp.StudentProcedureExaminerAID:
		return SlotA, true
	case sp.StudentProcedureExaminerBID:
		return SlotB, true
	default:
		return "", false
	}
}

// ExaminerOf is the inverse of SlotOf.
func (sp *StudentProcedureModel) ExaminerOf(slot ExaminerSlot) uuid.UUID {
	if slot == SlotA {
		return sp.StudentProcedureExaminerAID
	}
	return sp.StudentProcedureExaminerBID
}
