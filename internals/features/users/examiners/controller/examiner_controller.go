// file: internals/features/users/examiners/controller/examiner_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"practicals_backend/internals/constants"
	userModel "practicals_backend/internals/features/users/auth/model"
	authService "practicals_backend/internals/features/users/auth/service"
	dto "practicals_backend/internals/features/users/examiners/dto"
	helper "practicals_backend/internals/helpers"
	helperAuth "practicals_backend/internals/helpers/auth"
)

/* ========================================================
   Controller
======================================================== */

type ExaminerController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewExaminerController(db *gorm.DB) *ExaminerController {
	return &ExaminerController{DB: db, Validator: validator.New()}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Params(name)))
}

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
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "23505")
}

/* ========================================================
   Handlers (CRUD)
======================================================== */

// GET /examiners
func (ctl *ExaminerController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromContext(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&userModel.UserModel{}).
		Where("user_school_id = ? AND user_role = ?", schoolID, constants.RoleExaminer)
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(user_full_name) LIKE ? OR LOWER(user_email) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count examiners")
	}

	var rows []userModel.UserModel
	if err := q.
		Order("user_full_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list examiners")
	}

	items := make([]dto.ExaminerItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.NewExaminerItem(r))
	}
	return helper.JsonList(c, "ok", items, helper.BuildPagination(total, p.Page, p.PerPage))
}

// POST /examiners
func (ctl *ExaminerController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromContext(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req dto.CreateExaminerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	hash, err := authService.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	row := userModel.UserModel{
		UserSchoolID:     schoolID,
		UserFullName:     req.FullName,
		UserEmail:        req.Email,
		UserPasswordHash: hash,
		UserRole:         constants.RoleExaminer,
		UserIsActive:     true,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "An account with this email already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create examiner")
	}
	return helper.JsonCreated(c, "Examiner created", dto.NewExaminerItem(row))
}

// PATCH /examiners/:id
func (ctl *ExaminerController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromContext(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid examiner id")
	}

	var req dto.UpdateExaminerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var row userModel.UserModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("user_id = ? AND user_school_id = ? AND user_role = ?", id, schoolID, constants.RoleExaminer).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Examiner not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load examiner")
	}

	updates := map[string]interface{}{}
	if req.FullName != nil && *req.FullName != "" {
		updates["user_full_name"] = *req.FullName
	}
	if req.Email != nil && *req.Email != "" {
		updates["user_email"] = *req.Email
	}
	if req.IsActive != nil {
		updates["user_is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		return helper.JsonUpdated(c, "No changes", dto.NewExaminerItem(row))
	}

	if err := ctl.DB.WithContext(c.Context()).
		Model(&row).Updates(updates).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "An account with this email already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update examiner")
	}
	return helper.JsonUpdated(c, "Examiner updated", dto.NewExaminerItem(row))
}

// DELETE /examiners/:id (soft delete)
func (ctl *ExaminerController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromContext(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid examiner id")
	}

	res := ctl.DB.WithContext(c.Context()).
		Where("user_id = ? AND user_school_id = ? AND user_role = ?", id, schoolID, constants.RoleExaminer).
		Delete(&userModel.UserModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete examiner")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Examiner not found")
	}
	return helper.JsonDeleted(c, "Examiner deleted", fiber.Map{"examiner_id": id})
}
