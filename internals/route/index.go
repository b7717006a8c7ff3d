// file: internals/route/index.go
package route

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	routeDetails "kdm_backend/internals/route/details"

	authRoute "kdm_backend/internals/features/users/auth/route"
	authMiddleware "kdm_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== AUTH / USER BASE =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u",
		authMiddleware.AuthMiddleware(db),
	)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
	)

	routeDetails.StudentRoutes(private, db)
	routeDetails.ProgressRoutes(private, db)
	routeDetails.FinanceUserRoutes(private, db)
	routeDetails.EventRoutes(private, db)
	routeDetails.SettingsUserRoutes(private, db)
	routeDetails.ReportRoutes(private, db)

	routeDetails.AdminRoutes(admin, db)

	// Healthcheck ringan untuk monitoring
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"uptime": time.Since(startTime).String(),
		})
	})
}
