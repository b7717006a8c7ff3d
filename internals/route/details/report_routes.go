// file: internals/route/details/report_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportRoute "kdm_backend/internals/features/reports/route"
)

func ReportRoutes(router fiber.Router, db *gorm.DB) {
	reportRoute.ReportRoutes(router, db)
}
