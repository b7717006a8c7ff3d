// file: internals/route/details/event_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventRoute "kdm_backend/internals/features/events/events/route"
)

func EventRoutes(router fiber.Router, db *gorm.DB) {
	eventRoute.EventRoutes(router, db)
}
