package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	examinerRoute "practicals_backend/internals/features/users/examiners/route"
)

func AdminRoutes(r fiber.Router, db *gorm.DB) {
	examinerRoute.ExaminerAdminRoutes(r, db)
}
