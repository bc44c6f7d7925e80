package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "practicals_backend/internals/features/users/auth/route"
)

func AuthRoutes(public fiber.Router, private fiber.Router, db *gorm.DB) {
	authRoute.AuthRoutes(public, private, db)
}
