package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kdm_backend/internals/constants"
	attendanceController "kdm_backend/internals/features/progress/attendance/controller"
	authMiddleware "kdm_backend/internals/middlewares/auth"
)

func AttendanceRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := attendanceController.NewAttendanceController(db)

	attendance := router.Group("/attendance",
		authMiddleware.PageGuard(constants.PageAttendance),
	)

	attendance.Get("/", ctrl.GetAll)
	attendance.Get("/recap", ctrl.Recap)
	attendance.Get("/leaderboard", ctrl.Leaderboard)

	write := attendance.Group("",
		authMiddleware.OnlyRoles(constants.RoleErrorPengajar("absensi"), constants.PengajarAndAbove...),
	)
	write.Post("/", ctrl.Create)
	write.Put("/:id", ctrl.Update)
	write.Delete("/:id", ctrl.Delete)
}
