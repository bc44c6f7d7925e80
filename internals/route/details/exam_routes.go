package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	careplanRoute "practicals_backend/internals/features/exams/careplan/route"
	procedureRoute "practicals_backend/internals/features/exams/procedures/route"
	programRoute "practicals_backend/internals/features/exams/programs/route"
)

// ExamExaminerRoutes mounts the scoring workflow under the authenticated,
// school-scoped group.
func ExamExaminerRoutes(r fiber.Router, db *gorm.DB) {
	g := r.Group("/exams")

	programRoute.ProgramExaminerRoutes(g, db)
	procedureRoute.ProcedureExaminerRoutes(g, db)
	careplanRoute.CarePlanExaminerRoutes(g, db)
}

// ExamAdminRoutes mounts checklist/assignment management.
func ExamAdminRoutes(r fiber.Router, db *gorm.DB) {
	g := r.Group("/exams")

	procedureRoute.ProcedureAdminRoutes(g, db)
}
