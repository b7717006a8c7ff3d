// file: internals/route/details/progress_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	activityRoute "kdm_backend/internals/features/progress/activities/route"
	attendanceRoute "kdm_backend/internals/features/progress/attendance/route"
	memorizationRoute "kdm_backend/internals/features/progress/memorization/route"
)

// ProgressRoutes = setoran hafalan, absensi, amalan harian
func ProgressRoutes(router fiber.Router, db *gorm.DB) {
	memorizationRoute.MemorizationRoutes(router, db)
	attendanceRoute.AttendanceRoutes(router, db)
	activityRoute.ActivityRoutes(router, db)
}
