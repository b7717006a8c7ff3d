// file: internals/features/finance/expenses/route/expense_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kdm_backend/internals/constants"
	expenseController "kdm_backend/internals/features/finance/expenses/controller"
	authMiddleware "kdm_backend/internals/middlewares/auth"
)

func ExpenseRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := expenseController.NewExpenseController(db)

	expenses := router.Group("/expenses",
		authMiddleware.PageGuard(constants.PageFinance),
	)

	expenses.Get("/", ctrl.GetAll)
	expenses.Get("/totals", ctrl.Totals)
	expenses.Get("/monthly", ctrl.MonthlyTotal)
	expenses.Get("/frugal", ctrl.MostFrugal)

	write := expenses.Group("",
		authMiddleware.OnlyRoles(constants.RoleErrorPengajar("keuangan"), constants.PengajarAndAbove...),
	)
	write.Post("/", ctrl.Create)
	write.Put("/:id", ctrl.Update)
	write.Delete("/:id", ctrl.Delete)
}
