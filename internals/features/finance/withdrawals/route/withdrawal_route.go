// file: internals/features/finance/withdrawals/route/withdrawal_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kdm_backend/internals/constants"
	withdrawalController "kdm_backend/internals/features/finance/withdrawals/controller"
	authMiddleware "kdm_backend/internals/middlewares/auth"
)

// WithdrawalUserRoutes = pengajuan pencairan dan rekap bonus (halaman profil)
func WithdrawalUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := withdrawalController.NewWithdrawalController(db)

	withdrawals := router.Group("/withdrawals",
		authMiddleware.PageGuard(constants.PageProfile),
	)
	withdrawals.Get("/", ctrl.GetAll)
	withdrawals.Get("/bonus-summary", ctrl.BonusSummary)
	withdrawals.Post("/",
		authMiddleware.OnlyRoles(constants.RoleErrorPengajar("pencairan bonus"), constants.PengajarAndAbove...),
		ctrl.Create,
	)
}

// WithdrawalAdminRoutes = perubahan status, khusus admin
func WithdrawalAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := withdrawalController.NewWithdrawalController(db)

	withdrawals := router.Group("/withdrawals",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("pencairan bonus"), constants.AdminOnly...),
	)
	withdrawals.Patch("/:id/status", ctrl.UpdateStatus)
}
