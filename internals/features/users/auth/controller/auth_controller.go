package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kdm_backend/internals/constants"
	"kdm_backend/internals/features/users/auth/service"
	userModel "kdm_backend/internals/features/users/user/model"
	helper "kdm_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// GET /api/auth/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user userModel.UserModel
	if err := ac.DB.First(&user, "id = ?", userID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "User not found")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user": fiber.Map{
			"id":        user.ID,
			"user_name": user.UserName,
			"full_name": user.FullName,
			"role":      user.Role,
			"pages":     constants.PagesForRole(user.Role),
		},
	})
}

// GET /api/navigation — menu sidebar diturunkan dari tabel akses tunggal
func (ac *AuthController) Navigation(c *fiber.Ctx) error {
	role := helper.GetRoleFromToken(c)
	if role == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	return helper.JsonOK(c, "Menu navigasi", fiber.Map{
		"role":  role,
		"pages": constants.PagesForRole(role),
	})
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	return service.Register(ac.DB, c)
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	return service.Login(ac.DB, c)
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return service.Logout(ac.DB, c)
}

func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	return service.ChangePassword(ac.DB, c)
}

func (ac *AuthController) RefreshToken(c *fiber.Ctx) error {
	return service.RefreshToken(ac.DB, c)
}

func (ac *AuthController) SignupWaitlist(c *fiber.Ctx) error {
	return service.SignupWaitlist(c)
}
