// file: internals/route/details/admin_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentRoute "kdm_backend/internals/features/finance/payments/route"
	withdrawalRoute "kdm_backend/internals/features/finance/withdrawals/route"
	backupRoute "kdm_backend/internals/features/settings/backup/route"
	settingsRoute "kdm_backend/internals/features/settings/settings/route"
	userRoute "kdm_backend/internals/features/users/user/route"
)

// AdminRoutes = seluruh endpoint pengelolaan khusus admin (/api/a)
func AdminRoutes(router fiber.Router, db *gorm.DB) {
	userRoute.UserAdminRoutes(router, db)
	settingsRoute.SettingsAdminRoutes(router, db)
	backupRoute.BackupRoutes(router, db)
	withdrawalRoute.WithdrawalAdminRoutes(router, db)
	paymentRoute.PaymentAdminRoutes(router, db)
}
