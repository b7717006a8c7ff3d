// file: internals/features/finance/payments/route/payment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kdm_backend/internals/constants"
	paymentController "kdm_backend/internals/features/finance/payments/controller"
	authMiddleware "kdm_backend/internals/middlewares/auth"
)

// PaymentUserRoutes = alur upgrade premium (halaman upgrade/payment)
func PaymentUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := paymentController.NewPaymentController(db)

	payments := router.Group("/payments",
		authMiddleware.PageGuard(constants.PagePayment),
	)
	payments.Get("/", ctrl.GetAll)
	payments.Post("/upgrade", ctrl.CreateUpgrade)
}

// PaymentAdminRoutes = konfirmasi pembayaran manual, khusus admin
func PaymentAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := paymentController.NewPaymentController(db)

	payments := router.Group("/payments",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("pembayaran"), constants.AdminOnly...),
	)
	payments.Patch("/:id/confirm", ctrl.Confirm)
}
