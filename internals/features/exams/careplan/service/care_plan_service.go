// file: internals/features/exams/careplan/service/care_plan_service.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "practicals_backend/internals/features/exams/careplan/model"
)

var (
	ErrCarePlanScoreOutOfRange = errors.New("care plan score must be between 0 and 20")
	ErrAlreadyAssessed         = errors.New("care plan has already been assessed and is locked")
	ErrCarePlanNotFound        = errors.New("care plan assessment does not exist")
)

/* ==============================
   Store (swappable for tests)
============================== */

// CarePlanStore is the minimal persistence surface the lock logic needs. The
// GORM implementation backs production; tests use an in-memory one to pin the
// concurrent first-submit race.
type CarePlanStore interface {
	// Find returns ErrCarePlanNotFound when no row exists.
	Find(ctx context.Context, schoolID, studentID, programID uuid.UUID) (*model.CarePlanAssessmentModel, error)
	// Create must be atomic with the existence check: when a row already
	// exists for (student, program) it returns ErrAlreadyAssessed and writes
	// nothing.
	Create(ctx context.Context, row *model.CarePlanAssessmentModel) error
}

/* ==============================
   Service
============================== */

type CarePlanService struct {
	Store CarePlanStore
}

func NewCarePlanService(db *gorm.DB) *CarePlanService {
	return &CarePlanService{Store: &gormCarePlanStore{DB: db}}
}

// Get returns the locked assessment or ErrCarePlanNotFound. Absence is a
// normal state here (the client shows the scoring form), not a failure.
func (s *CarePlanService) Get(ctx context.Context, schoolID, studentID, programID uuid.UUID) (*model.CarePlanAssessmentModel, error) {
	return s.Store.Find(ctx, schoolID, studentID, programID)
}

// Submit creates the one and only assessment for (student, program).
// Exactly one of two concurrent first submissions wins; the loser gets
// ErrAlreadyAssessed together with the winning record, unchanged, so the
// caller can render the locked view.
func (s *CarePlanService) Submit(
	ctx context.Context,
	schoolID, studentID, programID, examinerID uuid.UUID,
	score int,
	comments string,
) (*model.CarePlanAssessmentModel, error) {
	if !model.ValidCarePlanScore(score) {
		return nil, ErrCarePlanScoreOutOfRange
	}

	row := &model.CarePlanAssessmentModel{
		CarePlanSchoolID:   schoolID,
		CarePlanStudentID:  studentID,
		CarePlanProgramID:  programID,
		CarePlanScore:      score,
		CarePlanMaxScore:   model.CarePlanMaxScore,
		CarePlanExaminerID: examinerID,
		CarePlanAssessedAt: time.Now().UTC(),
		CarePlanIsLocked:   true,
	}
	if c := strings.TrimSpace(comments); c != "" {
		row.CarePlanComments = &c
	}

	if err := s.Store.Create(ctx, row); err != nil {
		if errors.Is(err, ErrAlreadyAssessed) {
			existing, ferr := s.Store.Find(ctx, schoolID, studentID, programID)
			if ferr != nil {
				return nil, err
			}
			return existing, ErrAlreadyAssessed
		}
		return nil, err
	}
	return row, nil
}

/* ==============================
   GORM store
============================== */

type gormCarePlanStore struct {
	DB *gorm.DB
}

func (g *gormCarePlanStore) Find(ctx context.Context, schoolID, studentID, programID uuid.UUID) (*model.CarePlanAssessmentModel, error) {
	var row model.CarePlanAssessmentModel
	err := g.DB.WithContext(ctx).
		Where("care_plan_school_id = ? AND care_plan_student_id = ? AND care_plan_program_id = ?",
			schoolID, studentID, programID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCarePlanNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (g *gormCarePlanStore) Create(ctx context.Context, row *model.CarePlanAssessmentModel) error {
	if err := g.DB.WithContext(ctx).Create(row).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyAssessed
		}
		return err
	}
	return nil
}

// Postgres 23505 through lib/pq or pgx wrapped by gorm.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "23505")
}
