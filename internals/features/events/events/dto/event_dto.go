package dto

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"

	m "presenca_backend/internals/features/events/events/model"
)

type CreateEventRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=160"`
	Location    *string `json:"location"`
	Description *string `json:"description"`

	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date"   validate:"required"`

	OrganizerTags []string `json:"organizer_tags"`
}

func (r *CreateEventRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	trimPtr(&r.Location)
	trimPtr(&r.Description)
}

func (r *CreateEventRequest) CheckWindow() error {
	if r.EndDate.Before(r.StartDate) {
		return fiber.NewError(fiber.StatusBadRequest, "end_date must not precede start_date")
	}
	return nil
}

func (r *CreateEventRequest) ToModel() m.EventModel {
	return m.EventModel{
		Name:          r.Name,
		Location:      r.Location,
		Description:   r.Description,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		OrganizerTags: pq.StringArray(r.OrganizerTags),
	}
}

type UpdateEventRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=160"`
	Location    *string `json:"location"`
	Description *string `json:"description"`

	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`

	OrganizerTags *[]string `json:"organizer_tags"`
}

func (r *UpdateEventRequest) Apply(ev *m.EventModel) error {
	if r.Name != nil {
		ev.Name = strings.TrimSpace(*r.Name)
	}
	if r.Location != nil {
		ev.Location = r.Location
	}
	if r.Description != nil {
		ev.Description = r.Description
	}
	if r.StartDate != nil {
		ev.StartDate = *r.StartDate
	}
	if r.EndDate != nil {
		ev.EndDate = *r.EndDate
	}
	if r.OrganizerTags != nil {
		ev.OrganizerTags = pq.StringArray(*r.OrganizerTags)
	}
	if ev.EndDate.Before(ev.StartDate) {
		return fiber.NewError(fiber.StatusBadRequest, "end_date must not precede start_date")
	}
	return nil
}

type RegisterRequest struct {
	EmployeeID string `json:"employee_id" validate:"required,uuid4"`
	Status     string `json:"status" validate:"omitempty,oneof=confirmed pending cancelled"`
}

func trimPtr(pp **string) {
	if pp == nil || *pp == nil {
		return
	}
	v := strings.TrimSpace(**pp)
	if v == "" {
		*pp = nil
		return
	}
	*pp = &v
}
