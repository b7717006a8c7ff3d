// file: internals/route/details/finance_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	expenseRoute "kdm_backend/internals/features/finance/expenses/route"
	paymentRoute "kdm_backend/internals/features/finance/payments/route"
	withdrawalRoute "kdm_backend/internals/features/finance/withdrawals/route"
)

// FinanceUserRoutes = pengeluaran halaqah, pencairan bonus, upgrade premium
func FinanceUserRoutes(router fiber.Router, db *gorm.DB) {
	expenseRoute.ExpenseRoutes(router, db)
	withdrawalRoute.WithdrawalUserRoutes(router, db)
	paymentRoute.PaymentUserRoutes(router, db)
}
