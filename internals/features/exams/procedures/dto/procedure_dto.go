// file: internals/features/exams/procedures/dto/procedure_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	model "practicals_backend/internals/features/exams/procedures/model"
	"practicals_backend/internals/features/exams/procedures/service"
)

/* ==============================
   AUTOSAVE (POST /step-scores/autosave)
============================== */

type AutosaveStepScoreRequest struct {
	StepID             uuid.UUID `json:"step_id" validate:"required"`
	StudentProcedureID uuid.UUID `json:"student_procedure_id" validate:"required"`

	// Pointer so an explicit 0 still satisfies required.
	Score *int `json:"score" validate:"required,gte=0,lte=4"`
}

// AutosaveStepScoreResponse mirrors the wire contract exactly:
// {status, examiner_a_complete, examiner_b_complete}.
type AutosaveStepScoreResponse struct {
	Status            string `json:"status"`
	ExaminerAComplete bool   `json:"examiner_a_complete"`
	ExaminerBComplete bool   `json:"examiner_b_complete"`
}

func NewAutosaveStepScoreResponse(cs service.CompletionStatus) AutosaveStepScoreResponse {
	return AutosaveStepScoreResponse{
		Status:            cs.Status,
		ExaminerAComplete: cs.ExaminerAComplete,
		ExaminerBComplete: cs.ExaminerBComplete,
	}
}

/* ==============================
   DETAIL (GET /students/:student_id/procedures/:procedure_id)
============================== */

type ProcedureStepItem struct {
	StepID      uuid.UUID `json:"step_id"`
	Position    int       `json:"position"`
	Description string    `json:"description"`
}

type OwnScoreItem struct {
	StepID uuid.UUID `json:"step_id"`
	Score  int       `json:"score"`
}

// ProcedureDetailResponse carries the calling examiner's OWN scores only.
type ProcedureDetailResponse struct {
	ProcedureID        uuid.UUID                `json:"procedure_id"`
	ProcedureName      string                   `json:"procedure_name"`
	StudentProcedureID uuid.UUID                `json:"student_procedure_id"`
	ExaminerSlot       string                   `json:"examiner_slot"`
	Steps              []ProcedureStepItem      `json:"steps"`
	Scores             []OwnScoreItem           `json:"scores"`
	Completion         service.CompletionStatus `json:"completion"`
}

func NewProcedureDetailResponse(
	p *model.ProcedureModel,
	assignment *model.StudentProcedureModel,
	slot model.ExaminerSlot,
	own []model.StepScoreModel,
	completion service.CompletionStatus,
) ProcedureDetailResponse {
	steps := make([]ProcedureStepItem, 0, len(p.ProcedureSteps))
	for _, st := range p.ProcedureSteps {
		steps = append(steps, ProcedureStepItem{
			StepID:      st.ProcedureStepID,
			Position:    st.ProcedureStepPosition,
			Description: st.ProcedureStepDescription,
		})
	}
	scores := make([]OwnScoreItem, 0, len(own))
	for _, sc := range own {
		scores = append(scores, OwnScoreItem{StepID: sc.StepScoreStepID, Score: sc.StepScoreValue})
	}
	return ProcedureDetailResponse{
		ProcedureID:        p.ProcedureID,
		ProcedureName:      p.ProcedureName,
		StudentProcedureID: assignment.StudentProcedureID,
		ExaminerSlot:       string(slot),
		Steps:              steps,
		Scores:             scores,
		Completion:         completion,
	}
}

/* ==============================
   ADMIN (procedure + assignment create)
============================== */

type CreateProcedureStepRequest struct {
	Position    int    `json:"position" validate:"required,min=1"`
	Description string `json:"description" validate:"required"`
}

type CreateProcedureRequest struct {
	ProgramID uuid.UUID                    `json:"program_id" validate:"required"`
	Name      string                       `json:"name" validate:"required,max=200"`
	Steps     []CreateProcedureStepRequest `json:"steps" validate:"required,min=1,dive"`
}

func (r *CreateProcedureRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	for i := range r.Steps {
		r.Steps[i].Description = strings.TrimSpace(r.Steps[i].Description)
	}
}

func (r CreateProcedureRequest) ToModel(schoolID uuid.UUID) model.ProcedureModel {
	steps := make([]model.ProcedureStepModel, 0, len(r.Steps))
	for _, s := range r.Steps {
		steps = append(steps, model.ProcedureStepModel{
			ProcedureStepPosition:    s.Position,
			ProcedureStepDescription: s.Description,
		})
	}
	return model.ProcedureModel{
		ProcedureSchoolID:  schoolID,
		ProcedureProgramID: r.ProgramID,
		ProcedureName:      r.Name,
		ProcedureSteps:     steps,
	}
}

// AssignStudentProcedureRequest is the admin stand-in for the external
// scheduling process that pairs a student with a procedure and two examiners.
type AssignStudentProcedureRequest struct {
	StudentID   uuid.UUID `json:"student_id" validate:"required"`
	ProcedureID uuid.UUID `json:"procedure_id" validate:"required"`
	ExaminerAID uuid.UUID `json:"examiner_a_id" validate:"required"`
	ExaminerBID uuid.UUID `json:"examiner_b_id" validate:"required"`
}

// Validate covers what struct tags cannot: the two seats must be held by
// different people.
func (r AssignStudentProcedureRequest) Validate() error {
	if r.ExaminerAID == r.ExaminerBID {
		return errors.New("examiner_a_id and examiner_b_id must be different examiners")
	}
	return nil
}

func (r AssignStudentProcedureRequest) ToModel(schoolID uuid.UUID) model.StudentProcedureModel {
	return model.StudentProcedureModel{
		StudentProcedureSchoolID:    schoolID,
		StudentProcedureStudentID:   r.StudentID,
		StudentProcedureProcedureID: r.ProcedureID,
		StudentProcedureExaminerAID: r.ExaminerAID,
		StudentProcedureExaminerBID: r.ExaminerBID,
		StudentProcedureCreatedAt:   time.Now(),
	}
}
