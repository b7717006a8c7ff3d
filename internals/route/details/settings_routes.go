// file: internals/route/details/settings_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	settingsRoute "kdm_backend/internals/features/settings/settings/route"
)

// SettingsUserRoutes = endpoint baca pengaturan (harga, rekening, voucher)
func SettingsUserRoutes(router fiber.Router, db *gorm.DB) {
	settingsRoute.SettingsUserRoutes(router, db)
}
