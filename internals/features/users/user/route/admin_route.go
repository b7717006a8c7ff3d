// file: internals/features/users/user/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kdm_backend/internals/constants"
	userController "kdm_backend/internals/features/users/user/controller"
	authMiddleware "kdm_backend/internals/middlewares/auth"
)

// UserAdminRoutes: manajemen akun, khusus admin (page user-management).
func UserAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	users := router.Group("/users",
		authMiddleware.PageGuard(constants.PageUserManagement),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("manajemen user"), constants.RoleAdmin),
	)

	users.Get("/", ctrl.GetAll)
	users.Post("/", ctrl.Create)
	users.Put("/:id", ctrl.Update)
	users.Post("/:id/reset-password", ctrl.ResetPassword)
	users.Delete("/:id", ctrl.Delete)
}
