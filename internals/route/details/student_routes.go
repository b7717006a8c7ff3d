// file: internals/route/details/student_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	halaqahRoute "kdm_backend/internals/features/students/halaqahs/route"
	studentRoute "kdm_backend/internals/features/students/students/route"
)

// StudentRoutes = data santri dan halaqah
func StudentRoutes(router fiber.Router, db *gorm.DB) {
	studentRoute.StudentRoutes(router, db)
	halaqahRoute.HalaqahRoutes(router, db)
}
