// file: internals/features/exams/careplan/controller/care_plan_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "practicals_backend/internals/features/exams/careplan/dto"
	"practicals_backend/internals/features/exams/careplan/service"
	userModel "practicals_backend/internals/features/users/auth/model"
	helper "practicals_backend/internals/helpers"
	helperAuth "practicals_backend/internals/helpers/auth"
)

/* ========================================================
   Controller
======================================================== */

type CarePlanController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Service   *service.CarePlanService
}

func NewCarePlanController(db *gorm.DB) *CarePlanController {
	return &CarePlanController{
		DB:        db,
		Validator: validator.New(),
		Service:   service.NewCarePlanService(db),
	}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Params(name)))
}

func (ctl *CarePlanController) examinerName(c *fiber.Ctx, examinerID uuid.UUID) string {
	var u userModel.UserModel
	if err := ctl.DB.WithContext(c.Context()).
		Select("user_full_name").
		Where("user_id = ?", examinerID).
		First(&u).Error; err != nil {
		return ""
	}
	return u.UserFullName
}

/* ========================================================
   Handlers
======================================================== */

// GET /students/:student_id/programs/:program_id/care-plan
// "Not assessed yet" is a state, not an error: respond 200 with exists=false.
func (ctl *CarePlanController) Get(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromContext(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	studentID, err := parseUUIDParam(c, "student_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}
	programID, err := parseUUIDParam(c, "program_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid program id")
	}

	row, err := ctl.Service.Get(c.Context(), schoolID, studentID, programID)
	if err != nil {
		if errors.Is(err, service.ErrCarePlanNotFound) {
			return helper.JsonOK(c, "ok", dto.NewCarePlanNotAssessedResponse())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load care plan")
	}
	return helper.JsonOK(c, "ok", dto.NewCarePlanResponse(row, ctl.examinerName(c, row.CarePlanExaminerID)))
}

// POST /students/:student_id/programs/:program_id/care-plan
// Write-once. A repeat submission gets 409 plus the stored record unchanged.
func (ctl *CarePlanController) Submit(c *fiber.Ctx) error {
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
	programID, err := parseUUIDParam(c, "program_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid program id")
	}

	var req dto.SubmitCarePlanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"score": {"score must be an integer between 0 and 20"},
		})
	}

	row, err := ctl.Service.Submit(c.Context(), schoolID, studentID, programID, examinerID, *req.Score, req.Comments)
	switch {
	case err == nil:
		return helper.JsonCreated(c, "Care plan submitted", dto.NewCarePlanResponse(row, ctl.examinerName(c, row.CarePlanExaminerID)))
	case errors.Is(err, service.ErrCarePlanScoreOutOfRange):
		return helper.JsonValidationError(c, map[string][]string{
			"score": {err.Error()},
		})
	case errors.Is(err, service.ErrAlreadyAssessed):
		var data any
		if row != nil {
			data = dto.NewCarePlanResponse(row, ctl.examinerName(c, row.CarePlanExaminerID))
		}
		return helper.JsonConflict(c, err.Error(), data)
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit care plan")
	}
}
