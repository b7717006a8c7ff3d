// file: internals/features/progress/activities/route/activity_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kdm_backend/internals/constants"
	activityController "kdm_backend/internals/features/progress/activities/controller"
	authMiddleware "kdm_backend/internals/middlewares/auth"
)

func ActivityRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := activityController.NewActivityController(db)

	activities := router.Group("/activities",
		authMiddleware.PageGuard(constants.PageActivities),
	)

	activities.Get("/", ctrl.GetAll)
	activities.Get("/summary", ctrl.Summary)
	activities.Get("/leaderboard", ctrl.Leaderboard)

	write := activities.Group("",
		authMiddleware.OnlyRoles(constants.RoleErrorPengajar("amalan harian"), constants.PengajarAndAbove...),
	)
	write.Post("/", ctrl.Create)
	write.Put("/:id", ctrl.Update)
	write.Delete("/:id", ctrl.Delete)
}
