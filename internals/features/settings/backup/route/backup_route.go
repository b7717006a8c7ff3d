// file: internals/features/settings/backup/route/backup_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kdm_backend/internals/constants"
	backupController "kdm_backend/internals/features/settings/backup/controller"
	authMiddleware "kdm_backend/internals/middlewares/auth"
)

func BackupRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := backupController.NewBackupController(db)

	backup := router.Group("/backup",
		authMiddleware.PageGuard(constants.PageBackup),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("backup"), constants.AdminOnly...),
	)

	backup.Get("/export", ctrl.Export)
	backup.Post("/import", ctrl.Import)
}
