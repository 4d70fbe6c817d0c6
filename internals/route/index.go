package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMiddleware "presenca_backend/internals/middlewares/auth"
	routeDetails "presenca_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// Everything the dashboard touches sits behind the JWT guard.
	api := app.Group("/api", authMiddleware.AuthJWT())

	log.Println("[INFO] Setting up EmployeeRoutes...")
	routeDetails.EmployeeRoutes(api, db)

	log.Println("[INFO] Setting up EventRoutes...")
	routeDetails.EventRoutes(api, db)

	log.Println("[INFO] Setting up AuditRoutes...")
	routeDetails.AuditRoutes(api, db)

	log.Println("[INFO] Setting up UserRoutes...")
	routeDetails.UserRoutes(api, db)
}
