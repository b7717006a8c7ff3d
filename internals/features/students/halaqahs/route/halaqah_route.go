// file: internals/features/students/halaqahs/route/halaqah_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kdm_backend/internals/constants"
	halaqahController "kdm_backend/internals/features/students/halaqahs/controller"
	authMiddleware "kdm_backend/internals/middlewares/auth"
)

func HalaqahRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := halaqahController.NewHalaqahController(db)

	halaqahs := router.Group("/halaqahs",
		authMiddleware.PageGuard(constants.PageHalaqah),
	)

	halaqahs.Get("/", ctrl.GetAll)
	halaqahs.Get("/:id", ctrl.GetByID)

	write := halaqahs.Group("",
		authMiddleware.OnlyRoles(constants.RoleErrorPengajar("kelola halaqah"), constants.PengajarAndAbove...),
	)
	write.Post("/", ctrl.Create)
	write.Put("/:id", ctrl.Update)
	write.Delete("/:id", ctrl.Delete)
}
