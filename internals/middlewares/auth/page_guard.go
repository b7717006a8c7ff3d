package auth

import (
	"github.com/gofiber/fiber/v2"

	"kdm_backend/internals/constants"
)

// PageGuard menjaga satu page ID lewat tabel akses tunggal (constants.RouteAccess).
// Dipasang SETELAH AuthMiddleware: role sudah ada di Locals.
// Tamu yang nyasar ke page terlarang dan role tanpa izin sama-sama ditolak 403;
// client yang mengarahkan ulang ke /dashboard.
func PageGuard(pageID string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("userRole").(string)
		if !ok || role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message":  "Unauthorized: silakan login dulu",
				"redirect": "/login",
			})
		}

		if !constants.CanAccess(role, pageID) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message":  "Anda tidak punya akses ke halaman ini",
				"redirect": "/dashboard",
			})
		}

		return c.Next()
	}
}
