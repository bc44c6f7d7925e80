package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctr "practicals_backend/internals/features/exams/procedures/controller"
)

// ProcedureExaminerRoutes mounts the scoring workflow for authenticated
// examiners (school scope applied by the parent group).
func ProcedureExaminerRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ctr.NewProcedureController(db)

	r.Get("/students/:student_id/procedures/:procedure_id", ctl.Detail)
	r.Post("/step-scores/autosave", ctl.AutosaveStepScore)
	r.Get("/student-procedures/:id/reconciliation", ctl.Reconciliation)
}
