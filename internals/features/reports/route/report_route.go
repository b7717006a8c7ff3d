// file: internals/features/reports/route/report_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kdm_backend/internals/constants"
	reportController "kdm_backend/internals/features/reports/controller"
	authMiddleware "kdm_backend/internals/middlewares/auth"
)

func ReportRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := reportController.NewReportController(db)

	reports := router.Group("/reports",
		authMiddleware.PageGuard(constants.PageProfile),
		authMiddleware.OnlyRoles(constants.RoleErrorPengajar("laporan"), constants.PengajarAndAbove...),
	)

	reports.Get("/mou", ctrl.MoU)
	reports.Get("/bonus", ctrl.BonusRecap)
}
