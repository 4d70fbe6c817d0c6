package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	eventDTO "presenca_backend/internals/features/events/events/dto"
	eventModel "presenca_backend/internals/features/events/events/model"
	helper "presenca_backend/internals/helpers"
)

// REGISTER
// POST /api/events/:id/registrations
func (h *EventController) Register(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid event id")
	}

	var req eventDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid employee id")
	}

	var cnt int64
	if err := h.DB.Model(&eventModel.EventModel{}).Where("id = ?", eventID).Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if cnt == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Event not found")
	}

	if err := h.DB.Model(&eventModel.EventRegistrationModel{}).
		Where("event_id = ? AND employee_id = ?", eventID, employeeID).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if cnt > 0 {
		return fiber.NewError(fiber.StatusConflict, "Employee already registered for this event")
	}

	row := eventModel.EventRegistrationModel{
		EventID:    eventID,
		EmployeeID: employeeID,
		Status:     "confirmed",
	}
	if req.Status != "" {
		row.Status = req.Status
	}
	if err := h.DB.Create(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registration created", row)
}

// UNREGISTER
// DELETE /api/events/:id/registrations/:employeeId
func (h *EventController) Unregister(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid event id")
	}
	employeeID, err := uuid.Parse(strings.TrimSpace(c.Params("employeeId")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid employee id")
	}

	res := h.DB.Delete(&eventModel.EventRegistrationModel{},
		"event_id = ? AND employee_id = ?", eventID, employeeID)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Registration not found")
	}
	return helper.Success(c, "Registration removed", fiber.Map{
		"event_id":    eventID,
		"employee_id": employeeID,
	})
}
