// file: internals/features/settings/settings/route/settings_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kdm_backend/internals/constants"
	settingsController "kdm_backend/internals/features/settings/settings/controller"
	authMiddleware "kdm_backend/internals/middlewares/auth"
)

// SettingsUserRoutes = endpoint baca yang dipakai halaman upgrade/pembayaran
func SettingsUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := settingsController.NewSettingsController(db)

	settings := router.Group("/settings")
	settings.Get("/vouchers/check", ctrl.CheckVoucher)
	settings.Get("/bank-accounts", ctrl.GetBankAccounts)
	settings.Get("/prices", ctrl.GetPrices)
	settings.Get("/bonus", ctrl.GetBonusSetting)
	settings.Get("/expense-categories", ctrl.GetExpenseCategories)
}

// SettingsAdminRoutes = pengelolaan penuh, khusus admin
func SettingsAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := settingsController.NewSettingsController(db)

	settings := router.Group("/settings",
		authMiddleware.PageGuard(constants.PageSettings),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("pengaturan"), constants.AdminOnly...),
	)

	settings.Get("/vouchers", ctrl.GetVouchers)
	settings.Post("/vouchers", ctrl.CreateVoucher)
	settings.Put("/vouchers/:id", ctrl.UpdateVoucher)
	settings.Delete("/vouchers/:id", ctrl.DeleteVoucher)

	settings.Post("/bank-accounts", ctrl.CreateBankAccount)
	settings.Delete("/bank-accounts/:id", ctrl.DeleteBankAccount)

	settings.Put("/prices", ctrl.UpsertPrice)
	settings.Put("/bonus", ctrl.UpsertBonusSetting)

	settings.Post("/expense-categories", ctrl.CreateExpenseCategory)
	settings.Delete("/expense-categories/:id", ctrl.DeleteExpenseCategory)
}
