package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"presenca_backend/internals/features/attendance/reconcile"
	eventModel "presenca_backend/internals/features/events/events/model"
	"presenca_backend/internals/features/events/report/service"
)

type ReportController struct {
	DB  *gorm.DB
	Loc *time.Location
}

func NewReportController(db *gorm.DB, loc *time.Location) *ReportController {
	if loc == nil {
		loc = time.UTC
	}
	return &ReportController{DB: db, Loc: loc}
}

// attendanceItem is a projected record plus the registration info the
// dashboard shows next to it.
type attendanceItem struct {
	reconcile.Record
	RegisteredAt       *time.Time `json:"registered_at"`
	RegistrationStatus *string    `json:"registration_status"`
}

// ATTENDANCE
// GET /api/events/attendance?eventId= — one item per employee per event day,
// absentees included, sorted by employee name.
func (h *ReportController) Attendance(c *fiber.Ctx) error {
	eventID := strings.TrimSpace(c.Query("eventId"))
	if eventID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "eventId required")
	}

	_, records, err := h.reconcileEvent(c, eventID)
	if err != nil {
		return err
	}

	regs, err := h.registrations(eventID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	items := make([]attendanceItem, 0, len(records))
	for _, r := range records {
		item := attendanceItem{Record: r}
		if reg, ok := regs[r.EmployeeID]; ok {
			t := reg.RegisteredAt
			s := reg.Status
			item.RegisteredAt = &t
			item.RegistrationStatus = &s
		}
		items = append(items, item)
	}

	return c.JSON(fiber.Map{"items": items})
}

// REPORT XLSX
// GET /api/events/:id/report.xlsx — the per-day workbook, generated
// server-side so the dashboard only streams a file.
func (h *ReportController) ReportXLSX(c *fiber.Ctx) error {
	eventID := strings.TrimSpace(c.Params("id"))

	ev, records, err := h.reconcileEvent(c, eventID)
	if err != nil {
		return err
	}

	days := reconcile.EventDays(ev, h.Loc)
	f, err := service.BuildEventWorkbook(ev.Name, days, records, h.Loc)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	filename := safeFilename(ev.Name) + "_" + time.Now().In(h.Loc).Format("2006-01-02") + ".xlsx"
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

func (h *ReportController) reconcileEvent(c *fiber.Ctx, eventID string) (reconcile.Event, []reconcile.Record, error) {
	if _, err := uuid.Parse(eventID); err != nil {
		return reconcile.Event{}, nil, fiber.NewError(fiber.StatusBadRequest, "Invalid event id")
	}

	r := reconcile.New(reconcile.NewGormStore(h.DB), h.Loc)
	ev, records, err := r.EventReport(c.UserContext(), eventID)
	if err != nil {
		if errors.Is(err, reconcile.ErrEventNotFound) {
			return reconcile.Event{}, nil, fiber.NewError(fiber.StatusNotFound, "Event not found")
		}
		return reconcile.Event{}, nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return ev, records, nil
}

func (h *ReportController) registrations(eventID string) (map[string]eventModel.EventRegistrationModel, error) {
	var rows []eventModel.EventRegistrationModel
	if err := h.DB.Where("event_id = ?", eventID).
		Order("registered_at asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]eventModel.EventRegistrationModel, len(rows))
	for _, r := range rows {
		out[r.EmployeeID.String()] = r
	}
	return out, nil
}

func safeFilename(name string) string {
	if name == "" {
		return "evento"
	}
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '-', r == '_', r == ' ':
			b.WriteRune(r)
		}
	}
	s := strings.TrimSpace(b.String())
	if s == "" {
		return "evento"
	}
	return s
}
