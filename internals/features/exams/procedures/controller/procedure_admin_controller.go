// file: internals/features/exams/procedures/controller/procedure_admin_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"

	dto "practicals_backend/internals/features/exams/procedures/dto"
	model "practicals_backend/internals/features/exams/procedures/model"
	helper "practicals_backend/internals/helpers"
	helperAuth "practicals_backend/internals/helpers/auth"
)

/* ========================================================
   Handlers (admin)
======================================================== */

// POST /procedures
func (ctl *ProcedureController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromContext(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req dto.CreateProcedureRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	row := req.ToModel(schoolID)
	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Duplicate step position in procedure")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create procedure")
	}
	return helper.JsonCreated(c, "Procedure created", row)
}

// GET /programs/:program_id/procedures
func (ctl *ProcedureController) ListByProgram(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromContext(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	programID, err := parseUUIDParam(c, "program_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid program id")
	}

	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	q := ctl.DB.WithContext(c.Context()).Model(&model.ProcedureModel{}).
		Where("procedure_school_id = ? AND procedure_program_id = ?", schoolID, programID)
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count procedures")
	}

	var rows []model.ProcedureModel
	if err := q.
		Preload("ProcedureSteps", func(db *gorm.DB) *gorm.DB {
			return db.Order("procedure_step_position ASC")
		}).
		Order("procedure_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list procedures")
	}

	return helper.JsonList(c, "ok", rows, helper.BuildPagination(total, p.Page, p.PerPage))
}

// POST /student-procedures
// Stand-in for the external scheduling process (one row per student+procedure).
func (ctl *ProcedureController) Assign(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromContext(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req dto.AssignStudentProcedureRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := req.Validate(); err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"examiner_b_id": {err.Error()},
		})
	}

	row := req.ToModel(schoolID)
	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Student is already assigned to this procedure")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to assign student procedure")
	}
	return helper.JsonCreated(c, "Student procedure assigned", row)
}

// isUniqueViolation detects Postgres 23505 through lib/pq or wrapped drivers.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// string fallback (covers pgx wrapped by gorm)
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "23505")
}
