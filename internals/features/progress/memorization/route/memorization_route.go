// file: internals/features/progress/memorization/route/memorization_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kdm_backend/internals/constants"
	memorizationController "kdm_backend/internals/features/progress/memorization/controller"
	authMiddleware "kdm_backend/internals/middlewares/auth"
)

func MemorizationRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := memorizationController.NewMemorizationController(db)

	// Page kdm = entri setoran hafalan
	memo := router.Group("/memorization",
		authMiddleware.PageGuard(constants.PageKDM),
	)

	memo.Get("/", ctrl.GetAll)
	memo.Get("/leaderboard", ctrl.Leaderboard)
	memo.Get("/stats/monthly", ctrl.MonthlyStats)
	memo.Get("/stats/semester", ctrl.SemesterStats)

	write := memo.Group("",
		authMiddleware.OnlyRoles(constants.RoleErrorPengajar("entri setoran"), constants.PengajarAndAbove...),
	)
	write.Post("/", ctrl.Create)
	write.Put("/:id", ctrl.Update)
	write.Delete("/:id", ctrl.Delete)

	// Data statis mushaf untuk dropdown berjenjang
	quran := router.Group("/quran")
	quran.Get("/juz", ctrl.JuzList)
	quran.Get("/surah", ctrl.SurahList)
}
