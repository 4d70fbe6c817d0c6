package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "presenca_backend/internals/features/users/auth/controller"
	userModel "presenca_backend/internals/features/users/auth/model"
	authMiddleware "presenca_backend/internals/middlewares/auth"
)

func UserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	g := api.Group("/users", authMiddleware.RequireRole(userModel.RoleAdmin))
	g.Get("/", ctrl.ListUsers)
	g.Post("/", ctrl.CreateUser)
	g.Put("/:id", ctrl.UpdateUser)
	g.Delete("/:id", ctrl.DeleteUser)
}
