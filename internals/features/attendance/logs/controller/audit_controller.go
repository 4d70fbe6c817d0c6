package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	logDTO "presenca_backend/internals/features/attendance/logs/dto"
	logModel "presenca_backend/internals/features/attendance/logs/model"
	employeeModel "presenca_backend/internals/features/workforce/employees/model"
	helper "presenca_backend/internals/helpers"
)

type AuditController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Loc      *time.Location
}

func NewAuditController(db *gorm.DB, loc *time.Location) *AuditController {
	if loc == nil {
		loc = time.UTC
	}
	return &AuditController{DB: db, Validate: validator.New(), Loc: loc}
}

// LOGS
// GET /api/audit/logs?page=&perPage= — newest first, with exact total.
func (h *AuditController) Logs(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := h.DB.Model(&logModel.AttendanceLogModel{}).
		Where("employee_id IS NOT NULL").
		Where("type IN ?", []string{logModel.TypeCheckin, logModel.TypeCheckout})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []logModel.AttendanceLogModel
	if err := q.Order("created_at desc").Offset(p.Offset()).Limit(p.Limit()).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"items":   rows,
		"total":   total,
		"page":    p.Page,
		"perPage": p.PerPage,
	})
}

// LAST ENTRIES
// GET /api/audit/last-entries?employeeId=&limit= — the audit drawer.
func (h *AuditController) LastEntries(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Query("employeeId"))
	if raw == "" {
		return c.JSON(fiber.Map{"items": []logModel.AttendanceLogModel{}})
	}
	employeeID, err := uuid.Parse(raw)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid employeeId")
	}

	limit := c.QueryInt("limit", 5)
	if limit < 1 || limit > 100 {
		limit = 5
	}

	var rows []logModel.AttendanceLogModel
	if err := h.DB.Where("employee_id = ?", employeeID).
		Order("created_at desc").Limit(limit).Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"items": rows})
}

// PERFORM — manual register. Resolves the employee from employeeId or from
// qrContent holding the employee id, infers the action from the last log when
// no type is given, then inserts one log row.
// POST /api/audit/perform
func (h *AuditController) Perform(c *fiber.Ctx) error {
	var req logDTO.PerformRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := h.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var employeeID *uuid.UUID
	if req.EmployeeID != nil {
		id, err := uuid.Parse(*req.EmployeeID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid employeeId")
		}
		employeeID = &id
	}

	if employeeID == nil && req.QRContent != nil {
		if id, err := uuid.Parse(*req.QRContent); err == nil {
			var emp employeeModel.EmployeeModel
			err := h.DB.Select("id").First(&emp, "id = ?", id).Error
			if err == nil {
				employeeID = &emp.EmployeeID
			} else if err != gorm.ErrRecordNotFound {
				return fiber.NewError(fiber.StatusInternalServerError, err.Error())
			}
		}
	}

	if employeeID == nil {
		return fiber.NewError(fiber.StatusBadRequest,
			"employeeId not provided and qrContent did not match any employee")
	}

	action := ""
	if req.Type != nil {
		action = *req.Type
	} else {
		var last logModel.AttendanceLogModel
		err := h.DB.Select("type").
			Where("employee_id = ?", *employeeID).
			Order("created_at desc").Limit(1).
			Take(&last).Error
		switch {
		case err == nil:
			action = InferAction(last.Type)
		case err == gorm.ErrRecordNotFound:
			action = logModel.TypeCheckin
		default:
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
	}

	createdAt := time.Now()
	if req.Timestamp != nil {
		createdAt = *req.Timestamp
	}

	row := logModel.AttendanceLogModel{
		EmployeeID: employeeID,
		QRContent:  req.QRContent,
		Type:       action,
		CreatedAt:  createdAt,
		Note:       req.Reason,
		Manual:     req.Manual,
	}
	if err := h.DB.Create(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{"item": row})
}

// InferAction flips the last logged type; a fresh employee starts with checkin.
func InferAction(lastType string) string {
	if lastType == logModel.TypeCheckin {
		return logModel.TypeCheckout
	}
	return logModel.TypeCheckin
}

// CHECKOUT ALL — one checkout per roster employee, unconditionally,
// timestamped now. Used to reset the roster before a new event.
// POST /api/audit/checkout-all
func (h *AuditController) CheckoutAll(c *fiber.Ctx) error {
	var employees []employeeModel.EmployeeModel
	if err := h.DB.Select("id").Find(&employees).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if len(employees) == 0 {
		return fiber.NewError(fiber.StatusNotFound, "No employees found")
	}

	now := time.Now()
	rows := make([]logModel.AttendanceLogModel, 0, len(employees))
	for _, emp := range employees {
		id := emp.EmployeeID
		rows = append(rows, logModel.AttendanceLogModel{
			EmployeeID: &id,
			Type:       logModel.TypeCheckout,
			CreatedAt:  now,
		})
	}
	if err := h.DB.Create(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"message": "Checkout performed for all employees",
		"count":   len(rows),
	})
}

// CLEAN ORPHANS — delete every log whose employee_id no longer resolves to an
// existing employee.
// POST /api/audit/clean-orphans
func (h *AuditController) CleanOrphans(c *fiber.Ctx) error {
	var loggedIDs []uuid.UUID
	if err := h.DB.Model(&logModel.AttendanceLogModel{}).
		Where("employee_id IS NOT NULL").
		Distinct().Pluck("employee_id", &loggedIDs).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if len(loggedIDs) == 0 {
		return c.JSON(fiber.Map{"message": "No orphan logs found", "deleted": 0})
	}

	var existingIDs []uuid.UUID
	if err := h.DB.Model(&employeeModel.EmployeeModel{}).
		Where("id IN ?", loggedIDs).
		Pluck("id", &existingIDs).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	existing := make(map[uuid.UUID]struct{}, len(existingIDs))
	for _, id := range existingIDs {
		existing[id] = struct{}{}
	}
	var orphans []uuid.UUID
	for _, id := range loggedIDs {
		if _, ok := existing[id]; !ok {
			orphans = append(orphans, id)
		}
	}
	if len(orphans) == 0 {
		return c.JSON(fiber.Map{"message": "No orphan logs found", "deleted": 0})
	}

	res := h.DB.Delete(&logModel.AttendanceLogModel{}, "employee_id IN ?", orphans)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}

	return c.JSON(fiber.Map{
		"message": "Orphan logs removed",
		"deleted": res.RowsAffected,
	})
}
