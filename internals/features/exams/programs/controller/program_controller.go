// file: internals/features/exams/programs/controller/program_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "practicals_backend/internals/features/exams/programs/dto"
	model "practicals_backend/internals/features/exams/programs/model"
	procModel "practicals_backend/internals/features/exams/procedures/model"
	procService "practicals_backend/internals/features/exams/procedures/service"
	helper "practicals_backend/internals/helpers"
	helperAuth "practicals_backend/internals/helpers/auth"
)

/* ========================================================
   Controller
======================================================== */

type ProgramController struct {
	DB *gorm.DB
}

func NewProgramController(db *gorm.DB) *ProgramController {
	return &ProgramController{DB: db}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Params(name)))
}

/* ========================================================
   Handlers
======================================================== */

// GET /programs
func (ctl *ProgramController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromContext(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var rows []model.ProgramModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("program_school_id = ?", schoolID).
		Order("program_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list programs")
	}

	items := make([]dto.ProgramItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.NewProgramItem(r))
	}
	return helper.JsonOK(c, "ok", items)
}

// GET /programs/:program_id/students
func (ctl *ProgramController) ListStudents(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromContext(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	programID, err := parseUUIDParam(c, "program_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid program id")
	}

	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&model.StudentModel{}).
		Where("student_school_id = ? AND student_program_id = ?", schoolID, programID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count students")
	}

	var rows []model.StudentModel
	if err := q.
		Order("student_index_number ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list students")
	}

	items := make([]dto.StudentItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.NewStudentItem(r))
	}
	return helper.JsonList(c, "ok", items, helper.BuildPagination(total, p.Page, p.PerPage))
}

// GET /students/:student_id
// Student identity plus a per-procedure completion summary, recomputed from
// step_scores on every call (the server is the only source of truth).
func (ctl *ProgramController) StudentDetail(c *fiber.Ctx) error {
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

	var student model.StudentModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("student_id = ? AND student_school_id = ?", studentID, schoolID).
		First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load student")
	}

	var assignments []procModel.StudentProcedureModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("student_procedure_student_id = ? AND student_procedure_school_id = ?", studentID, schoolID).
		Find(&assignments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load assignments")
	}

	summaries := make([]dto.StudentProcedureSummary, 0, len(assignments))
	for i := range assignments {
		sp := &assignments[i]

		var proc procModel.ProcedureModel
		if err := ctl.DB.WithContext(c.Context()).
			Preload("ProcedureSteps").
			Where("procedure_id = ?", sp.StudentProcedureProcedureID).
			First(&proc).Error; err != nil {
			continue // orphaned assignment; skip rather than fail the page
		}

		stepIDs := make([]uuid.UUID, len(proc.ProcedureSteps))
		for j, st := range proc.ProcedureSteps {
			stepIDs[j] = st.ProcedureStepID
		}

		var scores []procModel.StepScoreModel
		if err := ctl.DB.WithContext(c.Context()).
			Where("step_score_student_procedure_id = ?", sp.StudentProcedureID).
			Find(&scores).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load scores")
		}

		completion := procService.EvaluateCompletion(sp, stepIDs, scores)

		summary := dto.StudentProcedureSummary{
			StudentProcedureID: sp.StudentProcedureID,
			ProcedureID:        proc.ProcedureID,
			ProcedureName:      proc.ProcedureName,
			TotalSteps:         len(stepIDs),
			Status:             completion.Status,
			ExaminerAComplete:  completion.ExaminerAComplete,
			ExaminerBComplete:  completion.ExaminerBComplete,
		}
		if slot, ok := sp.SlotOf(examinerID); ok {
			s := string(slot)
			summary.MyExaminerSlot = &s
			for _, sc := range scores {
				if sc.StepScoreExaminerID == examinerID {
					summary.MyScoredSteps++
				}
			}
		}
		summaries = append(summaries, summary)
	}

	return helper.JsonOK(c, "ok", dto.StudentDetailResponse{
		Student:    dto.NewStudentItem(student),
		Procedures: summaries,
	})
}
