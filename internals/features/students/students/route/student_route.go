// file: internals/features/students/students/route/student_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kdm_backend/internals/constants"
	studentController "kdm_backend/internals/features/students/students/controller"
	authMiddleware "kdm_backend/internals/middlewares/auth"
)

func StudentRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := studentController.NewStudentController(db)

	students := router.Group("/students")

	// Baca: semua role non-guest
	students.Get("/", authMiddleware.OnlyRoles(constants.RoleErrorGuest("data santri"), constants.NonGuestRoles...), ctrl.GetAll)
	students.Get("/:id", authMiddleware.OnlyRoles(constants.RoleErrorGuest("data santri"), constants.NonGuestRoles...), ctrl.GetByID)

	// Tulis: lewat page add-student (guru & admin)
	write := students.Group("",
		authMiddleware.PageGuard(constants.PageAddStudent),
		authMiddleware.OnlyRoles(constants.RoleErrorPengajar("pendaftaran santri"), constants.RoleGuru, constants.RoleAdmin),
	)
	write.Post("/", ctrl.Create)
	write.Put("/:id", ctrl.Update)
	write.Post("/:id/photo", ctrl.UploadPhoto)
	write.Delete("/:id", ctrl.Delete)
}
