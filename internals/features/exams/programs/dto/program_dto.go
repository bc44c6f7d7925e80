// file: internals/features/exams/programs/dto/program_dto.go
package dto

import (
	"github.com/google/uuid"

	model "practicals_backend/internals/features/exams/programs/model"
)

type ProgramItem struct {
	ProgramID   uuid.UUID `json:"program_id"`
	ProgramName string    `json:"program_name"`
	ProgramCode *string   `json:"program_code,omitempty"`
}

func NewProgramItem(m model.ProgramModel) ProgramItem {
	return ProgramItem{
		ProgramID:   m.ProgramID,
		ProgramName: m.ProgramName,
		ProgramCode: m.ProgramCode,
	}
}

type StudentItem struct {
	StudentID   uuid.UUID `json:"student_id"`
	FullName    string    `json:"full_name"`
	IndexNumber string    `json:"index_number"`
	ProgramID   uuid.UUID `json:"program_id"`
}

func NewStudentItem(m model.StudentModel) StudentItem {
	return StudentItem{
		StudentID:   m.StudentID,
		FullName:    m.StudentFullName,
		IndexNumber: m.StudentIndexNumber,
		ProgramID:   m.StudentProgramID,
	}
}

/* ==============================
   Student detail (per-procedure summary)
============================== */

type StudentProcedureSummary struct {
	StudentProcedureID uuid.UUID `json:"student_procedure_id"`
	ProcedureID        uuid.UUID `json:"procedure_id"`
	ProcedureName      string    `json:"procedure_name"`
	TotalSteps         int       `json:"total_steps"`
	MyScoredSteps      int       `json:"my_scored_steps"`
	MyExaminerSlot     *string   `json:"my_examiner_slot,omitempty"`
	Status             string    `json:"status"`
	ExaminerAComplete  bool      `json:"examiner_a_complete"`
	ExaminerBComplete  bool      `json:"examiner_b_complete"`
}

type StudentDetailResponse struct {
	Student    StudentItem               `json:"student"`
	Procedures []StudentProcedureSummary `json:"procedures"`
}
