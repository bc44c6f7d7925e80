package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctr "practicals_backend/internals/features/users/auth/controller"
	middlewares "practicals_backend/internals/middlewares"
)

// AuthRoutes mounts the session surface. Login/refresh sit outside the auth
// middleware; logout/me/change-password hang off the authenticated group.
func AuthRoutes(public fiber.Router, private fiber.Router, db *gorm.DB) {
	ctl := ctr.NewAuthController(db)

	public.Post("/auth/login", middlewares.LoginRateLimiter(), ctl.Login)
	public.Post("/auth/refresh-token", ctl.RefreshToken)

	private.Post("/auth/logout", ctl.Logout)
	private.Get("/auth/me", ctl.Me)
	private.Post("/auth/change-password", ctl.ChangePassword)
}
