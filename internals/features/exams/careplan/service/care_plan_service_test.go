// file: internals/features/exams/careplan/service/care_plan_service_test.go
package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"

	model "practicals_backend/internals/features/exams/careplan/model"
)

/* ==============================
   In-memory store
============================== */

type memKey struct {
	school, student, program uuid.UUID
}

// memCarePlanStore mirrors the unique-index behavior of the real table:
// Create is atomic with the existence check.
type memCarePlanStore struct {
	mu   sync.Mutex
	rows map[memKey]*model.CarePlanAssessmentModel
}

func newMemStore() *memCarePlanStore {
	return &memCarePlanStore{rows: make(map[memKey]*model.CarePlanAssessmentModel)}
}

func (m *memCarePlanStore) Find(_ context.Context, schoolID, studentID, programID uuid.UUID) (*model.CarePlanAssessmentModel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[memKey{schoolID, studentID, programID}]
	if !ok {
		return nil, ErrCarePlanNotFound
	}
	cp := *row
	return &cp, nil
}

func (m *memCarePlanStore) Create(_ context.Context, row *model.CarePlanAssessmentModel) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := memKey{row.CarePlanSchoolID, row.CarePlanStudentID, row.CarePlanProgramID}
	if _, exists := m.rows[k]; exists {
		return ErrAlreadyAssessed
	}
	row.CarePlanID = uuid.New()
	cp := *row
	m.rows[k] = &cp
	return nil
}

/* ==============================
   Tests
============================== */

func TestCarePlanSubmitAndGet(t *testing.T) {
	svc := &CarePlanService{Store: newMemStore()}
	schoolID, studentID, programID, examinerID := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	row, err := svc.Submit(context.Background(), schoolID, studentID, programID, examinerID, 15, "  solid plan  ")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !row.CarePlanIsLocked {
		t.Error("submitted assessment must be locked")
	}
	if row.CarePlanMaxScore != model.CarePlanMaxScore {
		t.Errorf("CarePlanMaxScore = %d, want %d", row.CarePlanMaxScore, model.CarePlanMaxScore)
	}
	if row.CarePlanComments == nil || *row.CarePlanComments != "solid plan" {
		t.Errorf("CarePlanComments = %v, want trimmed %q", row.CarePlanComments, "solid plan")
	}
	if got := row.Percentage(); got != 75.0 {
		t.Errorf("Percentage() = %v, want 75.0", got)
	}

	found, err := svc.Get(context.Background(), schoolID, studentID, programID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if found.CarePlanScore != 15 {
		t.Errorf("CarePlanScore = %d, want 15", found.CarePlanScore)
	}
}

func TestCarePlanGetBeforeSubmit(t *testing.T) {
	svc := &CarePlanService{Store: newMemStore()}

	_, err := svc.Get(context.Background(), uuid.New(), uuid.New(), uuid.New())
	if !errors.Is(err, ErrCarePlanNotFound) {
		t.Errorf("Get before submit = %v, want ErrCarePlanNotFound", err)
	}
}

func TestCarePlanScoreBounds(t *testing.T) {
	svc := &CarePlanService{Store: newMemStore()}
	schoolID, studentID, programID, examinerID := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	for _, v := range []int{-1, 21, 1000} {
		if _, err := svc.Submit(context.Background(), schoolID, studentID, programID, examinerID, v, ""); !errors.Is(err, ErrCarePlanScoreOutOfRange) {
			t.Errorf("Submit(score=%d) = %v, want ErrCarePlanScoreOutOfRange", v, err)
		}
	}

	// Rejected submissions must not create the row.
	if _, err := svc.Get(context.Background(), schoolID, studentID, programID); !errors.Is(err, ErrCarePlanNotFound) {
		t.Errorf("row exists after rejected submissions: %v", err)
	}

	for _, v := range []int{0, 20} {
		sid := uuid.New()
		if _, err := svc.Submit(context.Background(), schoolID, sid, programID, examinerID, v, ""); err != nil {
			t.Errorf("Submit(score=%d) = %v, want nil", v, err)
		}
	}
}

func TestCarePlanSecondSubmitReturnsFirstRecord(t *testing.T) {
	svc := &CarePlanService{Store: newMemStore()}
	schoolID, studentID, programID := uuid.New(), uuid.New(), uuid.New()
	firstExaminer, secondExaminer := uuid.New(), uuid.New()

	winner, err := svc.Submit(context.Background(), schoolID, studentID, programID, firstExaminer, 18, "first")
	if err != nil {
		t.Fatalf("first Submit: %v", err)
	}

	got, err := svc.Submit(context.Background(), schoolID, studentID, programID, secondExaminer, 3, "second")
	if !errors.Is(err, ErrAlreadyAssessed) {
		t.Fatalf("second Submit err = %v, want ErrAlreadyAssessed", err)
	}
	if got == nil {
		t.Fatal("second Submit must return the stored record")
	}
	if got.CarePlanScore != 18 || got.CarePlanExaminerID != firstExaminer {
		t.Errorf("stored record changed: score=%d examiner=%s, want 18/%s", got.CarePlanScore, got.CarePlanExaminerID, firstExaminer)
	}
	if got.CarePlanID != winner.CarePlanID {
		t.Errorf("second Submit returned a different row: %s vs %s", got.CarePlanID, winner.CarePlanID)
	}
}

func TestCarePlanConcurrentFirstSubmit(t *testing.T) {
	svc := &CarePlanService{Store: newMemStore()}
	schoolID, studentID, programID := uuid.New(), uuid.New(), uuid.New()

	const n = 16
	var wg sync.WaitGroup
	errs := make([]error, n)
	rows := make([]*model.CarePlanAssessmentModel, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rows[i], errs[i] = svc.Submit(context.Background(), schoolID, studentID, programID, uuid.New(), i%21, "")
		}(i)
	}
	wg.Wait()

	wins := 0
	var winID uuid.UUID
	for i := 0; i < n; i++ {
		switch {
		case errs[i] == nil:
			wins++
			winID = rows[i].CarePlanID
		case errors.Is(errs[i], ErrAlreadyAssessed):
			if rows[i] == nil {
				t.Errorf("loser %d did not receive the winning record", i)
			}
		default:
			t.Errorf("submit %d: unexpected error %v", i, errs[i])
		}
	}
	if wins != 1 {
		t.Fatalf("winners = %d, want exactly 1", wins)
	}
	for i := 0; i < n; i++ {
		if errors.Is(errs[i], ErrAlreadyAssessed) && rows[i].CarePlanID != winID {
			t.Errorf("loser %d saw row %s, want winner %s", i, rows[i].CarePlanID, winID)
		}
	}
}

func TestValidCarePlanScore(t *testing.T) {
	for _, v := range []int{0, 10, 20} {
		if !model.ValidCarePlanScore(v) {
			t.Errorf("ValidCarePlanScore(%d) = false, want true", v)
		}
	}
	for _, v := range []int{-1, 21} {
		if model.ValidCarePlanScore(v) {
			t.Errorf("ValidCarePlanScore(%d) = true, want false", v)
		}
	}
}
