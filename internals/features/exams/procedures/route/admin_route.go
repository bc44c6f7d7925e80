package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctr "practicals_backend/internals/features/exams/procedures/controller"
)

// ProcedureAdminRoutes mounts checklist management + the assignment stand-in.
func ProcedureAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ctr.NewProcedureController(db)

	g := r.Group("/procedures")
	g.Post("/", ctl.Create)

	r.Get("/programs/:program_id/procedures", ctl.ListByProgram)
	r.Post("/student-procedures", ctl.Assign)
}
