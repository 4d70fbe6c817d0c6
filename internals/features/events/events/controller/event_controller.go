package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	eventDTO "presenca_backend/internals/features/events/events/dto"
	eventModel "presenca_backend/internals/features/events/events/model"
	helper "presenca_backend/internals/helpers"
)

type EventController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db, Validate: validator.New()}
}

// LIST
// GET /api/events — newest first, same order the resolver iterates in.
func (h *EventController) List(c *fiber.Ctx) error {
	var rows []eventModel.EventModel
	if err := h.DB.Order("start_date desc").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"items": rows})
}

// CREATE
// POST /api/events
func (h *EventController) Create(c *fiber.Ctx) error {
	var req eventDTO.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := req.CheckWindow(); err != nil {
		return err
	}

	row := req.ToModel()
	if err := h.DB.Create(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Event created", row)
}

// UPDATE
// PUT /api/events/:id
func (h *EventController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req eventDTO.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row eventModel.EventModel
	if err := h.DB.First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Event not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if err := req.Apply(&row); err != nil {
		return err
	}
	if err := h.DB.Save(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Event updated", row)
}

// DELETE
// DELETE /api/events/:id
func (h *EventController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	res := h.DB.Delete(&eventModel.EventModel{}, "id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Event not found")
	}
	return helper.Success(c, "Event deleted", fiber.Map{"id": id})
}
