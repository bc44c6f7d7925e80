// file: internals/features/users/examiners/controller/examiner_import_controller.go
package controller

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"practicals_backend/internals/constants"
	userModel "practicals_backend/internals/features/users/auth/model"
	authService "practicals_backend/internals/features/users/auth/service"
	dto "practicals_backend/internals/features/users/examiners/dto"
	model "practicals_backend/internals/features/users/examiners/model"
	"practicals_backend/internals/features/users/examiners/service"
	helper "practicals_backend/internals/helpers"
	helperAuth "practicals_backend/internals/helpers/auth"
)

/* ========================================================
   Handlers (CSV bulk import / export)
======================================================== */

// POST /examiners/import (multipart field "file")
// Row-local failures (bad email, duplicate account) land in the report; the
// rest of the file still imports. The report is persisted so the admin UI can
// show it after the fact.
func (ctl *ExaminerController) ImportCSV(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromContext(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	adminID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing csv file upload")
	}
	f, err := fileHeader.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cannot read uploaded file")
	}
	defer f.Close()

	rows, rowErrs, err := service.ParseExaminerCSV(f)
	if err != nil {
		if errors.Is(err, service.ErrBadHeader) {
			return helper.JsonValidationError(c, map[string][]string{
				"file": {err.Error()},
			})
		}
		return helper.JsonError(c, fiber.StatusBadRequest, "Failed to parse csv")
	}

	totalRows := len(rows) + len(rowErrs)

	created := 0
	for _, row := range rows {
		hash, herr := authService.HashPassword(row.Password)
		if herr != nil {
			rowErrs = append(rowErrs, service.RowError{Line: row.Line, Message: "failed to hash password"})
			continue
		}
		u := userModel.UserModel{
			UserSchoolID:     schoolID,
			UserFullName:     row.FullName,
			UserEmail:        row.Email,
			UserPasswordHash: hash,
			UserRole:         constants.RoleExaminer,
			UserIsActive:     true,
		}
		if cerr := ctl.DB.WithContext(c.Context()).Create(&u).Error; cerr != nil {
			if isUniqueViolation(cerr) {
				rowErrs = append(rowErrs, service.RowError{Line: row.Line, Message: "account already exists: " + row.Email})
			} else {
				rowErrs = append(rowErrs, service.RowError{Line: row.Line, Message: "database error"})
			}
			continue
		}
		created++
	}

	report, _ := json.Marshal(rowErrs)
	logRow := model.ExaminerImportLogModel{
		ExaminerImportLogSchoolID:  schoolID,
		ExaminerImportLogFileName:  fileHeader.Filename,
		ExaminerImportLogTotalRows: totalRows,
		ExaminerImportLogCreated:   created,
		ExaminerImportLogFailed:    len(rowErrs),
		ExaminerImportLogReport:    datatypes.JSON(report),
		ExaminerImportLogCreatedBy: adminID,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&logRow).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Import ran but the log could not be saved")
	}

	return helper.JsonCreated(c, "Import finished", dto.ImportResult{
		ImportLogID: logRow.ExaminerImportLogID,
		TotalRows:   totalRows,
		Created:     created,
		Failed:      len(rowErrs),
		Errors:      rowErrs,
	})
}

// GET /examiners/export
func (ctl *ExaminerController) ExportCSV(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromContext(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var users []userModel.UserModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("user_school_id = ? AND user_role = ?", schoolID, constants.RoleExaminer).
		Order("user_full_name ASC").
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load examiners")
	}

	rows := make([]service.ExaminerCSVRow, 0, len(users))
	for _, u := range users {
		rows = append(rows, service.ExaminerCSVRow{FullName: u.UserFullName, Email: u.UserEmail})
	}

	var buf bytes.Buffer
	if err := service.WriteExaminerCSV(&buf, rows); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to render csv")
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="examiners.csv"`)
	return c.Send(buf.Bytes())
}

// GET /examiners/import-logs
func (ctl *ExaminerController) ImportLogs(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromContext(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var rows []model.ExaminerImportLogModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("examiner_import_log_school_id = ?", schoolID).
		Order("examiner_import_log_created_at DESC").
		Limit(50).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list import logs")
	}
	return helper.JsonOK(c, "ok", rows)
}
