// file: internals/features/events/events/route/event_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kdm_backend/internals/constants"
	eventController "kdm_backend/internals/features/events/events/controller"
	authMiddleware "kdm_backend/internals/middlewares/auth"
)

func EventRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := eventController.NewEventController(db)

	events := router.Group("/events",
		authMiddleware.PageGuard(constants.PageEvent),
	)

	events.Get("/", ctrl.GetAll)

	write := events.Group("",
		authMiddleware.OnlyRoles(constants.RoleErrorPengajar("agenda"), constants.PengajarAndAbove...),
	)
	write.Post("/", ctrl.Create)
	write.Put("/:id", ctrl.Update)
	write.Patch("/:id/status", ctrl.UpdateStatus)
	write.Delete("/:id", ctrl.Delete)
}
