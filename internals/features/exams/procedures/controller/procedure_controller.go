// file: internals/features/exams/procedures/controller/procedure_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "practicals_backend/internals/features/exams/procedures/dto"
	model "practicals_backend/internals/features/exams/procedures/model"
	"practicals_backend/internals/features/exams/procedures/service"
	helper "practicals_backend/internals/helpers"
	helperAuth "practicals_backend/internals/helpers/auth"
)

/* ========================================================
   Controller
======================================================== */

type ProcedureController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Scores    *service.ScoreService
	Recon     *service.ReconciliationService
}

func NewProcedureController(db *gorm.DB) *ProcedureController {
	return &ProcedureController{
		DB:        db,
		Validator: validator.New(),
		Scores:    service.NewScoreService(db),
		Recon:     service.NewReconciliationService(db),
	}
}

/* ========================================================
   Helpers
======================================================== */

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Params(name)))
}

// findAssignmentByID loads a school-scoped assignment row.
func (ctl *ProcedureController) findAssignmentByID(c *fiber.Ctx, schoolID, id uuid.UUID) (*model.StudentProcedureModel, error) {
	var sp model.StudentProcedureModel
	err := ctl.DB.WithContext(c.Context()).
		Where("student_procedure_id = ? AND student_procedure_school_id = ?", id, schoolID).
		First(&sp).Error
	if err != nil {
		return nil, err
	}
	return &sp, nil
}

/* ========================================================
   Handlers (examiner)
======================================================== */

// GET /students/:student_id/procedures/:procedure_id
// Returns the checklist plus the CALLING examiner's own scores only.
func (ctl *ProcedureController) Detail(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromContext(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	examinerID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	studentID, err := parseUUIDParam(c, "student_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}
	procedureID, err := parseUUIDParam(c, "procedure_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid procedure id")
	}

	var proc model.ProcedureModel
	if err := ctl.DB.WithContext(c.Context()).
		Preload("ProcedureSteps", func(db *gorm.DB) *gorm.DB {
			return db.Order("procedure_step_position ASC")
		}).
		Where("procedure_id = ? AND procedure_school_id = ?", procedureID, schoolID).
		First(&proc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Procedure not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load procedure")
	}

	var assignment model.StudentProcedureModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("student_procedure_student_id = ? AND student_procedure_procedure_id = ? AND student_procedure_school_id = ?",
			studentID, procedureID, schoolID).
		First(&assignment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student is not assigned to this procedure")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load assignment")
	}

	slot, ok := assignment.SlotOf(examinerID)
	if !ok {
		return helper.JsonError(c, fiber.StatusForbidden, "You are not an assigned examiner for this procedure")
	}

	own, err := ctl.Scores.OwnScores(c.Context(), assignment.StudentProcedureID, examinerID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load scores")
	}
	completion, err := ctl.Scores.Completion(c.Context(), &assignment)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to evaluate completion")
	}

	return helper.JsonOK(c, "ok", dto.NewProcedureDetailResponse(&proc, &assignment, slot, own, completion))
}

// POST /step-scores/autosave
// One scoring click = one durable write. Responds with the fresh completion
// flags so the client can refresh its disposable cache.
func (ctl *ProcedureController) AutosaveStepScore(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromContext(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	examinerID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.AutosaveStepScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"score": {"score must be an integer between 0 and 4"},
		})
	}

	assignment, err := ctl.findAssignmentByID(c, schoolID, req.StudentProcedureID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student procedure not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load assignment")
	}

	status, err := ctl.Scores.UpsertStepScore(c.Context(), assignment, examinerID, req.StepID, *req.Score)
	switch {
	case err == nil:
		return helper.JsonOK(c, "saved", dto.NewAutosaveStepScoreResponse(status))
	case errors.Is(err, service.ErrScoreOutOfRange):
		return helper.JsonValidationError(c, map[string][]string{
			"score": {err.Error()},
		})
	case errors.Is(err, service.ErrNotAssigned):
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrStepNotInProcedure):
		return helper.JsonValidationError(c, map[string][]string{
			"step_id": {err.Error()},
		})
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save score")
	}
}

// GET /student-procedures/:id/reconciliation
// 409 while either examiner is still scoring; both full score sets once open.
func (ctl *ProcedureController) Reconciliation(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromContext(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student procedure id")
	}

	assignment, err := ctl.findAssignmentByID(c, schoolID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student procedure not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load assignment")
	}

	view, err := ctl.Recon.View(c.Context(), assignment)
	if err != nil {
		if errors.Is(err, service.ErrReconciliationLocked) {
			return helper.JsonError(c, fiber.StatusConflict, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build reconciliation view")
	}
	return helper.JsonOK(c, "ok", view)
}
