package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctr "practicals_backend/internals/features/users/examiners/controller"
)

// ExaminerAdminRoutes mounts examiner account management (ADMIN only).
func ExaminerAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ctr.NewExaminerController(db)

	g := r.Group("/examiners")
	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Patch("/:id", ctl.Update)
	g.Delete("/:id", ctl.Delete)

	g.Post("/import", ctl.ImportCSV)
	g.Get("/export", ctl.ExportCSV)
	g.Get("/import-logs", ctl.ImportLogs)
}
