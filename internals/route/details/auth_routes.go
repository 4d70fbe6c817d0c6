package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "presenca_backend/internals/features/users/auth/controller"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)
	app.Post("/api/auth/login", ctrl.Login)
}
