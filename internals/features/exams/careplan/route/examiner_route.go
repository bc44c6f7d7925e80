package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctr "practicals_backend/internals/features/exams/careplan/controller"
)

// CarePlanExaminerRoutes mounts the single-examiner care-plan surface.
func CarePlanExaminerRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ctr.NewCarePlanController(db)

	r.Get("/students/:student_id/programs/:program_id/care-plan", ctl.Get)
	r.Post("/students/:student_id/programs/:program_id/care-plan", ctl.Submit)
}
