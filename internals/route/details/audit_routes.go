package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	auditController "presenca_backend/internals/features/attendance/logs/controller"

	"presenca_backend/internals/configs"
)

func AuditRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := auditController.NewAuditController(db, configs.Location())

	g := api.Group("/audit")
	g.Get("/logs", ctrl.Logs)
	g.Get("/last-entries", ctrl.LastEntries)
	g.Get("/export", ctrl.Export)
	g.Post("/perform", ctrl.Perform)
	g.Post("/checkout-all", ctrl.CheckoutAll)
	g.Post("/clean-orphans", ctrl.CleanOrphans)
}
