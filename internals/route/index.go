// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"practicals_backend/internals/constants"
	authMW "practicals_backend/internals/middlewares/auth"
	"practicals_backend/internals/middlewares/tenancy"
	routeDetails "practicals_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	schoolCtx := tenancy.SchoolContext(tenancy.SchoolContextOpts{DB: db})

	// ===================== PUBLIC (tenant-scoped, no JWT) =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api", schoolCtx)

	// ===================== PRIVATE (examiner/admin) =====================
	log.Println("[INFO] Setting up PRIVATE group (Auth + Scope)...")
	private := app.Group("/api/u",
		schoolCtx,
		authMW.AuthMiddleware(db),
	)

	// ===================== ADMIN (per school) =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + Scope + RoleCheck)...")
	admin := app.Group("/api/a",
		schoolCtx,
		authMW.AuthMiddleware(db),
		authMW.RequireRole(constants.RoleAdmin),
	)

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting Auth routes...")
	routeDetails.AuthRoutes(public, private, db)

	log.Println("[INFO] Mounting Exam routes...")
	routeDetails.ExamExaminerRoutes(private, db)
	routeDetails.ExamAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Admin routes...")
	routeDetails.AdminRoutes(admin, db)
}
