// file: internals/features/exams/procedures/service/completion_service_test.go
package service

import (
	"testing"

	"github.com/google/uuid"

	model "practicals_backend/internals/features/exams/procedures/model"
)

func newAssignment() *model.StudentProcedureModel {
	return &model.StudentProcedureModel{
		StudentProcedureID:          uuid.New(),
		StudentProcedureExaminerAID: uuid.New(),
		StudentProcedureExaminerBID: uuid.New(),
	}
}

func newStepIDs(n int) []uuid.UUID {
	ids := make([]uuid.UUID, n)
	for i := range ids {
		ids[i] = uuid.New()
	}
	return ids
}

func scoreRow(examinerID, stepID uuid.UUID, v int) model.StepScoreModel {
	return model.StepScoreModel{
		StepScoreExaminerID: examinerID,
		StepScoreStepID:     stepID,
		StepScoreValue:      v,
	}
}

func TestEvaluateCompletionSubsetIsPending(t *testing.T) {
	sp := newAssignment()
	steps := newStepIDs(3)

	scores := []model.StepScoreModel{
		scoreRow(sp.StudentProcedureExaminerAID, steps[0], 4),
		scoreRow(sp.StudentProcedureExaminerAID, steps[1], 2),
	}

	got := EvaluateCompletion(sp, steps, scores)
	if got.ExaminerAComplete {
		t.Error("examiner A scored 2 of 3 steps, should not be complete")
	}
	if got.ExaminerBComplete {
		t.Error("examiner B scored nothing, should not be complete")
	}
	if got.Status != StatusPending {
		t.Errorf("Status = %q, want %q", got.Status, StatusPending)
	}
}

func TestEvaluateCompletionFullCoverageIsScored(t *testing.T) {
	sp := newAssignment()
	steps := newStepIDs(3)

	var scores []model.StepScoreModel
	for _, id := range steps {
		scores = append(scores, scoreRow(sp.StudentProcedureExaminerAID, id, 3))
		scores = append(scores, scoreRow(sp.StudentProcedureExaminerBID, id, 1))
	}

	got := EvaluateCompletion(sp, steps, scores)
	if !got.ExaminerAComplete || !got.ExaminerBComplete {
		t.Errorf("both examiners covered all steps, got A=%v B=%v", got.ExaminerAComplete, got.ExaminerBComplete)
	}
	if got.Status != StatusScored {
		t.Errorf("Status = %q, want %q", got.Status, StatusScored)
	}
}

func TestEvaluateCompletionOneExaminerDoneIsStillPending(t *testing.T) {
	sp := newAssignment()
	steps := newStepIDs(2)

	scores := []model.StepScoreModel{
		scoreRow(sp.StudentProcedureExaminerBID, steps[0], 0),
		scoreRow(sp.StudentProcedureExaminerBID, steps[1], 4),
	}

	got := EvaluateCompletion(sp, steps, scores)
	if !got.ExaminerBComplete {
		t.Error("examiner B covered every step, should be complete")
	}
	if got.ExaminerAComplete {
		t.Error("examiner A scored nothing, should not be complete")
	}
	if got.Status != StatusPending {
		t.Errorf("Status = %q, want %q", got.Status, StatusPending)
	}
}

func TestEvaluateCompletionOrderIndependent(t *testing.T) {
	sp := newAssignment()
	steps := newStepIDs(4)

	// Reverse scoring order, with duplicates from autosave retries.
	scores := []model.StepScoreModel{
		scoreRow(sp.StudentProcedureExaminerAID, steps[3], 1),
		scoreRow(sp.StudentProcedureExaminerAID, steps[1], 2),
		scoreRow(sp.StudentProcedureExaminerAID, steps[0], 2),
		scoreRow(sp.StudentProcedureExaminerAID, steps[2], 4),
		scoreRow(sp.StudentProcedureExaminerAID, steps[2], 3),
	}

	got := EvaluateCompletion(sp, steps, scores)
	if !got.ExaminerAComplete {
		t.Error("coverage is set membership, write order must not matter")
	}
}

func TestEvaluateCompletionIgnoresUnassignedExaminers(t *testing.T) {
	sp := newAssignment()
	steps := newStepIDs(2)
	stranger := uuid.New()

	scores := []model.StepScoreModel{
		scoreRow(stranger, steps[0], 4),
		scoreRow(stranger, steps[1], 4),
	}

	got := EvaluateCompletion(sp, steps, scores)
	if got.ExaminerAComplete || got.ExaminerBComplete {
		t.Error("rows from an examiner no longer on the assignment must not count")
	}
	if got.Status != StatusPending {
		t.Errorf("Status = %q, want %q", got.Status, StatusPending)
	}
}

func TestEvaluateCompletionEmptyProcedureNeverScored(t *testing.T) {
	sp := newAssignment()

	got := EvaluateCompletion(sp, nil, nil)
	if got.ExaminerAComplete || got.ExaminerBComplete || got.Status != StatusPending {
		t.Errorf("a procedure with zero steps must stay pending, got %+v", got)
	}
}

func TestSlotOf(t *testing.T) {
	sp := newAssignment()

	if slot, ok := sp.SlotOf(sp.StudentProcedureExaminerAID); !ok || slot != model.SlotA {
		t.Errorf("SlotOf(examinerA) = (%q, %v), want (A, true)", slot, ok)
	}
	if slot, ok := sp.SlotOf(sp.StudentProcedureExaminerBID); !ok || slot != model.SlotB {
		t.Errorf("SlotOf(examinerB) = (%q, %v), want (B, true)", slot, ok)
	}
	if _, ok := sp.SlotOf(uuid.New()); ok {
		t.Error("SlotOf(stranger) must report ok=false")
	}
	if got := sp.ExaminerOf(model.SlotA); got != sp.StudentProcedureExaminerAID {
		t.Errorf("ExaminerOf(A) = %s, want examiner A id", got)
	}
}

func TestValidStepScore(t *testing.T) {
	for _, v := range []int{0, 1, 4} {
		if !model.ValidStepScore(v) {
			t.Errorf("ValidStepScore(%d) = false, want true", v)
		}
	}
	for _, v := range []int{-1, 5, 100} {
		if model.ValidStepScore(v) {
			t.Errorf("ValidStepScore(%d) = true, want false", v)
		}
	}
}
