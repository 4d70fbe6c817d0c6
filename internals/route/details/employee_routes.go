package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	employeeController "presenca_backend/internals/features/workforce/employees/controller"
)

func EmployeeRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := employeeController.NewEmployeeController(db)

	g := api.Group("/employees")
	g.Get("/", ctrl.List)
	g.Get("/search", ctrl.Search)
	g.Post("/", ctrl.Create)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}
