// file: internals/features/exams/careplan/dto/care_plan_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "practicals_backend/internals/features/exams/careplan/model"
)

/* ==============================
   SUBMIT (POST /students/:student_id/programs/:program_id/care-plan)
============================== */

type SubmitCarePlanRequest struct {
	// Pointer so an explicit 0 still satisfies required.
	Score    *int   `json:"score" validate:"required,gte=0,lte=20"`
	Comments string `json:"comments" validate:"omitempty,max=4000"`
}

/* ==============================
   RESPONSE
============================== */

// CarePlanResponse renders either the locked record or an explicit
// "does not exist" marker (Exists=false) for first load.
type CarePlanResponse struct {
	Exists       bool       `json:"exists"`
	CarePlanID   *uuid.UUID `json:"care_plan_id,omitempty"`
	Score        *int       `json:"score,omitempty"`
	MaxScore     int        `json:"max_score"`
	Comments     *string    `json:"comments,omitempty"`
	ExaminerName *string    `json:"examiner_name,omitempty"`
	AssessedAt   *time.Time `json:"assessed_at,omitempty"`
	Percentage   *float64   `json:"percentage,omitempty"`
	IsLocked     bool       `json:"is_locked"`
}

func NewCarePlanNotAssessedResponse() CarePlanResponse {
	return CarePlanResponse{
		Exists:   false,
		MaxScore: model.CarePlanMaxScore,
		IsLocked: false,
	}
}

func NewCarePlanResponse(m *model.CarePlanAssessmentModel, examinerName string) CarePlanResponse {
	score := m.CarePlanScore
	pct := m.Percentage()
	assessedAt := m.CarePlanAssessedAt
	resp := CarePlanResponse{
		Exists:     true,
		CarePlanID: &m.CarePlanID,
		Score:      &score,
		MaxScore:   m.CarePlanMaxScore,
		Comments:   m.CarePlanComments,
		AssessedAt: &assessedAt,
		Percentage: &pct,
		IsLocked:   m.CarePlanIsLocked,
	}
	if examinerName != "" {
		resp.ExaminerName = &examinerName
	}
	return resp
}
