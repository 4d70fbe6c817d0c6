package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventController "presenca_backend/internals/features/events/events/controller"
	reportController "presenca_backend/internals/features/events/report/controller"

	"presenca_backend/internals/configs"
)

func EventRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := eventController.NewEventController(db)
	report := reportController.NewReportController(db, configs.Location())

	g := api.Group("/events")
	g.Get("/", ctrl.List)
	g.Post("/", ctrl.Create)

	// /attendance before /:id so the query-param form keeps working.
	g.Get("/attendance", report.Attendance)
	g.Get("/:id/report.xlsx", report.ReportXLSX)

	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)

	g.Post("/:id/registrations", ctrl.Register)
	g.Delete("/:id/registrations/:employeeId", ctrl.Unregister)
}
