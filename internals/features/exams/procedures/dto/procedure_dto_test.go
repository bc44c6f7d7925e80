// file: internals/features/exams/procedures/dto/procedure_dto_test.go
package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

func intPtr(v int) *int { return &v }

func validAutosave() AutosaveStepScoreRequest {
	return AutosaveStepScoreRequest{
		StepID:             uuid.New(),
		StudentProcedureID: uuid.New(),
		Score:              intPtr(3),
	}
}

func TestAutosaveRequestValidation(t *testing.T) {
	if err := validate.Struct(validAutosave()); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	// Explicit zero is a legitimate score.
	req := validAutosave()
	req.Score = intPtr(0)
	if err := validate.Struct(req); err != nil {
		t.Errorf("score 0 rejected: %v", err)
	}

	req = validAutosave()
	req.Score = intPtr(4)
	if err := validate.Struct(req); err != nil {
		t.Errorf("score 4 rejected: %v", err)
	}

	req = validAutosave()
	req.Score = nil
	if err := validate.Struct(req); err == nil {
		t.Error("missing score accepted")
	}

	for _, v := range []int{-1, 5} {
		req = validAutosave()
		req.Score = intPtr(v)
		if err := validate.Struct(req); err == nil {
			t.Errorf("score %d accepted, want rejection", v)
		}
	}

	req = validAutosave()
	req.StepID = uuid.Nil
	if err := validate.Struct(req); err == nil {
		t.Error("zero step_id accepted")
	}
}

func TestCreateProcedureRequestValidation(t *testing.T) {
	req := CreateProcedureRequest{
		ProgramID: uuid.New(),
		Name:      "  Wound Care  ",
		Steps: []CreateProcedureStepRequest{
			{Position: 1, Description: " Verify patient identity "},
			{Position: 2, Description: "Prepare sterile field"},
		},
	}
	req.Normalize()
	if req.Name != "Wound Care" {
		t.Errorf("Name = %q, want trimmed", req.Name)
	}
	if req.Steps[0].Description != "Verify patient identity" {
		t.Errorf("step description not trimmed: %q", req.Steps[0].Description)
	}
	if err := validate.Struct(req); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	empty := req
	empty.Steps = nil
	if err := validate.Struct(empty); err == nil {
		t.Error("procedure without steps accepted")
	}

	badStep := CreateProcedureRequest{
		ProgramID: uuid.New(),
		Name:      "X",
		Steps:     []CreateProcedureStepRequest{{Position: 0, Description: "y"}},
	}
	if err := validate.Struct(badStep); err == nil {
		t.Error("step position 0 accepted")
	}
}

func TestAssignRequestRejectsSameExaminer(t *testing.T) {
	same := uuid.New()
	req := AssignStudentProcedureRequest{
		StudentID:   uuid.New(),
		ProcedureID: uuid.New(),
		ExaminerAID: same,
		ExaminerBID: same,
	}
	if err := validate.Struct(req); err != nil {
		t.Fatalf("tag validation should pass, duplicate check is in Validate: %v", err)
	}
	if err := req.Validate(); err == nil {
		t.Error("assignment with identical examiners accepted")
	}

	req.ExaminerBID = uuid.New()
	if err := req.Validate(); err != nil {
		t.Errorf("valid assignment rejected: %v", err)
	}
}
