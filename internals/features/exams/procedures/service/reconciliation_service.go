// file: internals/features/exams/procedures/service/reconciliation_service.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "practicals_backend/internals/features/exams/procedures/model"
)

// ErrReconciliationLocked gates the reconciliation view until BOTH examiners
// have scored every step.
var ErrReconciliationLocked = errors.New("reconciliation is locked until both examiners complete scoring")

/* ==============================
   Merge policy (pluggable)
============================== */

// MergePolicy turns the two per-step scores into a merged value once
// reconciliation is open. How the adjudication rule works is a product
// decision, so it stays pluggable; the default exposes both score sets side
// by side and computes nothing.
type MergePolicy interface {
	Name() string
	// Merge receives both slot scores for one step; either may be absent in
	// the degenerate case of a score changing after the gate opened.
	Merge(a, b *int) *int
}

type SideBySidePolicy struct{}

func (SideBySidePolicy) Name() string         { return "side_by_side" }
func (SideBySidePolicy) Merge(a, b *int) *int { return nil }

/* ==============================
   Reconciliation view
============================== */

type ReconciliationStep struct {
	StepID      uuid.UUID `json:"step_id"`
	Position    int       `json:"position"`
	Description string    `json:"description"`
	ScoreA      *int      `json:"score_a"`
	ScoreB      *int      `json:"score_b"`
	Merged      *int      `json:"merged,omitempty"`
}

type ReconciliationView struct {
	StudentProcedureID uuid.UUID            `json:"student_procedure_id"`
	ProcedureID        uuid.UUID            `json:"procedure_id"`
	Policy             string               `json:"policy"`
	Status             CompletionStatus     `json:"completion"`
	Steps              []ReconciliationStep `json:"steps"`
}

// ReconciliationService exposes both examiners' full score sets once the
// assignment reaches scored. Re-entrant: status is recomputed on every call,
// so the gate closes again in the degenerate case of a completion reverting.
type ReconciliationService struct {
	DB     *gorm.DB
	Policy MergePolicy
}

func NewReconciliationService(db *gorm.DB) *ReconciliationService {
	return &ReconciliationService{DB: db, Policy: SideBySidePolicy{}}
}

func (s *ReconciliationService) View(ctx context.Context, assignment *model.StudentProcedureModel) (*ReconciliationView, error) {
	tx := s.DB.WithContext(ctx)

	var steps []model.ProcedureStepModel
	if err := tx.
		Where("procedure_step_procedure_id = ?", assignment.StudentProcedureProcedureID).
		Order("procedure_step_position ASC").
		Find(&steps).Error; err != nil {
		return nil, err
	}
	scores, err := assignmentScores(tx, assignment.StudentProcedureID)
	if err != nil {
		return nil, err
	}

	stepIDs := make([]uuid.UUID, len(steps))
	for i, st := range steps {
		stepIDs[i] = st.ProcedureStepID
	}
	status := EvaluateCompletion(assignment, stepIDs, scores)
	if status.Status != StatusScored {
		return nil, ErrReconciliationLocked
	}

	byStep := map[uuid.UUID]map[model.ExaminerSlot]int{}
	for _, sc := range scores {
		slot, ok := assignment.SlotOf(sc.StepScoreExaminerID)
		if !ok {
			continue
		}
		if byStep[sc.StepScoreStepID] == nil {
			byStep[sc.StepScoreStepID] = map[model.ExaminerSlot]int{}
		}
		byStep[sc.StepScoreStepID][slot] = sc.StepScoreValue
	}

	view := &ReconciliationView{
		StudentProcedureID: assignment.StudentProcedureID,
		ProcedureID:        assignment.StudentProcedureProcedureID,
		Policy:             s.Policy.Name(),
		Status:             status,
		Steps:              make([]ReconciliationStep, 0, len(steps)),
	}
	for _, st := range steps {
		row := ReconciliationStep{
			StepID:      st.ProcedureStepID,
			Position:    st.ProcedureStepPosition,
			Description: st.ProcedureStepDescription,
		}
		if m, ok := byStep[st.ProcedureStepID]; ok {
			if v, ok := m[model.SlotA]; ok {
				a := v
				row.ScoreA = &a
			}
			if v, ok := m[model.SlotB]; ok {
				b := v
				row.ScoreB = &b
			}
		}
		row.Merged = s.Policy.Merge(row.ScoreA, row.ScoreB)
		view.Steps = append(view.Steps, row)
	}
	return view, nil
}
