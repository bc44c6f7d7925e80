// file: internals/features/exams/procedures/service/score_service.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	model "practicals_backend/internals/features/exams/procedures/model"
)

var (
	ErrScoreOutOfRange    = errors.New("score must be between 0 and 4")
	ErrStepNotInProcedure = errors.New("step does not belong to the assigned procedure")
	ErrNotAssigned        = errors.New("examiner is not assigned to this student procedure")
)

// ScoreService implements the autosave path: one upsert per call, then a fresh
// completion evaluation. No caching across writes.
type ScoreService struct {
	DB *gorm.DB
}

func NewScoreService(db *gorm.DB) *ScoreService {
	return &ScoreService{DB: db}
}

// UpsertStepScore stores or replaces the caller's score for one step and
// returns the recomputed completion status. The unique index on
// (student_procedure, step, examiner) serializes same-key writes at the DB,
// so rapid re-clicks resolve to last-write-wins; cross-key writes never
// conflict. The write and the recompute run in one transaction so the
// returned flags reflect at least this write.
func (s *ScoreService) UpsertStepScore(
	ctx context.Context,
	assignment *model.StudentProcedureModel,
	examinerID uuid.UUID,
	stepID uuid.UUID,
	score int,
) (CompletionStatus, error) {
	var status CompletionStatus

	if !model.ValidStepScore(score) {
		return status, ErrScoreOutOfRange
	}
	if _, ok := assignment.SlotOf(examinerID); !ok {
		return status, ErrNotAssigned
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		stepIDs, err := procedureStepIDs(tx, assignment.StudentProcedureProcedureID)
		if err != nil {
			return err
		}
		if !containsID(stepIDs, stepID) {
			return ErrStepNotInProcedure
		}

		row := model.StepScoreModel{
			StepScoreSchoolID:           assignment.StudentProcedureSchoolID,
			StepScoreStudentProcedureID: assignment.StudentProcedureID,
			StepScoreStepID:             stepID,
			StepScoreExaminerID:         examinerID,
			StepScoreValue:              score,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "step_score_student_procedure_id"},
				{Name: "step_score_step_id"},
				{Name: "step_score_examiner_id"},
			},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"step_score_value":      score,
				"step_score_updated_at": gorm.Expr("now()"),
			}),
		}).Create(&row).Error; err != nil {
			return err
		}

		scores, err := assignmentScores(tx, assignment.StudentProcedureID)
		if err != nil {
			return err
		}
		status = EvaluateCompletion(assignment, stepIDs, scores)
		return nil
	})
	return status, err
}

// OwnScores returns only the calling examiner's rows for the assignment,
// never the other examiner's. Scoring independence holds on the wire too.
func (s *ScoreService) OwnScores(ctx context.Context, studentProcedureID, examinerID uuid.UUID) ([]model.StepScoreModel, error) {
	var rows []model.StepScoreModel
	err := s.DB.WithContext(ctx).
		Where("step_score_student_procedure_id = ? AND step_score_examiner_id = ?", studentProcedureID, examinerID).
		Find(&rows).Error
	return rows, err
}

// Completion recomputes the derived status without writing anything.
func (s *ScoreService) Completion(ctx context.Context, assignment *model.StudentProcedureModel) (CompletionStatus, error) {
	var status CompletionStatus
	stepIDs, err := procedureStepIDs(s.DB.WithContext(ctx), assignment.StudentProcedureProcedureID)
	if err != nil {
		return status, err
	}
	scores, err := assignmentScores(s.DB.WithContext(ctx), assignment.StudentProcedureID)
	if err != nil {
		return status, err
	}
	return EvaluateCompletion(assignment, stepIDs, scores), nil
}

/* ==============================
   Internal queries
============================== */

func procedureStepIDs(tx *gorm.DB, procedureID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := tx.Model(&model.ProcedureStepModel{}).
		Where("procedure_step_procedure_id = ?", procedureID).
		Order("procedure_step_position ASC").
		Pluck("procedure_step_id", &ids).Error
	return ids, err
}

func assignmentScores(tx *gorm.DB, studentProcedureID uuid.UUID) ([]model.StepScoreModel, error) {
	var rows []model.StepScoreModel
	err := tx.
		Where("step_score_student_procedure_id = ?", studentProcedureID).
		Find(&rows).Error
	return rows, err
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
