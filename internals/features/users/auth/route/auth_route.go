// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "kdm_backend/internals/features/users/auth/controller"
	rateLimiter "kdm_backend/internals/middlewares"
	authMiddleware "kdm_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	// ==========================
	// PUBLIC — Base: /api/auth
	// ==========================
	baseAuth := app.Group("/api/auth")

	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)
	baseAuth.Post("/signup-waitlist", rateLimiter.RegisterRateLimiter(), authController.SignupWaitlist)
	baseAuth.Post("/refresh-token", authController.RefreshToken)

	// ==========================
	// PROTECTED — butuh access token
	// ==========================
	protectedAuth := app.Group("/api/auth", authMiddleware.AuthMiddleware(db))

	protectedAuth.Post("/logout", authController.Logout)
	protectedAuth.Post("/change-password", authController.ChangePassword)
	protectedAuth.Get("/me", authController.Me)

	// Menu navigasi per role (pengganti allow-list sidebar yang dulu terpisah)
	app.Get("/api/navigation", authMiddleware.AuthMiddleware(db), authController.Navigation)
}
