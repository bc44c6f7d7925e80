// file: internals/features/exams/procedures/service/completion_service.go
package service

import (
	"github.com/google/uuid"

	model "practicals_backend/internals/features/exams/procedures/model"
)

/* ==============================
   Completion status (derived)
============================== */

const (
	StatusPending = "pending"
	StatusScored  = "scored"
)

// CompletionStatus is recomputed from step_scores rows after every write; it
// is never stored independently.
type CompletionStatus struct {
	Status            string `json:"status"`
	ExaminerAComplete bool   `json:"examiner_a_complete"`
	ExaminerBComplete bool   `json:"examiner_b_complete"`
}

// EvaluateCompletion derives per-examiner completion for one assignment.
// A slot is complete iff the set of step ids it has scored equals the full
// step-id set of the procedure. Only set membership matters; write order and
// score values do not. Both slots complete → scored, otherwise pending.
func EvaluateCompletion(assignment *model.StudentProcedureModel, stepIDs []uuid.UUID, scores []model.StepScoreModel) CompletionStatus {
	scoredA := make(map[uuid.UUID]struct{}, len(stepIDs))
	scoredB := make(map[uuid.UUID]struct{}, len(stepIDs))

	for _, s := range scores {
		slot, ok := assignment.SlotOf(s.StepScoreExaminerID)
		if !ok {
			continue // rows of a reassigned examiner never count
		}
		if slot == model.SlotA {
			scoredA[s.StepScoreStepID] = struct{}{}
		} else {
			scoredB[s.StepScoreStepID] = struct{}{}
		}
	}

	out := CompletionStatus{
		Status:            StatusPending,
		ExaminerAComplete: coversAll(scoredA, stepIDs),
		ExaminerBComplete: coversAll(scoredB, stepIDs),
	}
	if out.ExaminerAComplete && out.ExaminerBComplete {
		out.Status = StatusScored
	}
	return out
}

// coversAll reports whether every step id is present in scored. An empty
// procedure has no steps to score, so it never counts as complete.
func coversAll(scored map[uuid.UUID]struct{}, stepIDs []uuid.UUID) bool {
	if len(stepIDs) == 0 {
		return false
	}
	for _, id := range stepIDs {
		if _, ok := scored[id]; !ok {
			return false
		}
	}
	return true
}
