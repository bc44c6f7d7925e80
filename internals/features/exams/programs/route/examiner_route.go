package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctr "practicals_backend/internals/features/exams/programs/controller"
)

// ProgramExaminerRoutes mounts the read-only program/student surface.
func ProgramExaminerRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ctr.NewProgramController(db)

	r.Get("/programs", ctl.List)
	r.Get("/programs/:program_id/students", ctl.ListStudents)
	r.Get("/students/:student_id", ctl.StudentDetail)
}
