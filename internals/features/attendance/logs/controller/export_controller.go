package controller

import (
	"bytes"
	"encoding/csv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	logModel "presenca_backend/internals/features/attendance/logs/model"
	"presenca_backend/internals/features/attendance/reconcile"
	employeeModel "presenca_backend/internals/features/workforce/employees/model"
	helper "presenca_backend/internals/helpers"
)

const employeeLookupBatch = 100

// EXPORT
// GET /api/audit/export — the full audit trail as CSV, each log enriched with
// the employee snapshot and the inferred event. Headers stay in Portuguese;
// the dashboard operators open this straight in Excel.
func (h *AuditController) Export(c *fiber.Ctx) error {
	loc := h.Loc

	logs, err := helper.FetchAllPages(helper.FetchBatchSize, helper.FetchHardCapRows,
		func(offset, limit int) ([]logModel.AttendanceLogModel, error) {
			var batch []logModel.AttendanceLogModel
			err := h.DB.
				Where("type IN ?", []string{logModel.TypeCheckin, logModel.TypeCheckout}).
				Order("created_at desc").
				Offset(offset).Limit(limit).
				Find(&batch).Error
			return batch, err
		})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	employees, err := h.employeeSnapshots(logs)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	store := reconcile.NewGormStore(h.DB)
	events, err := store.EventsByStartDesc(c.UserContext())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	buf := &bytes.Buffer{}
	buf.WriteString("\uFEFF") // BOM for Excel on Windows
	w := csv.NewWriter(buf)
	_ = w.Write([]string{
		"Data/Hora", "Funcionário", "CPF", "Loja", "Cargo", "Função",
		"Evento", "Local do Evento", "Tipo", "Manual", "Motivo",
	})

	for _, l := range logs {
		var emp *employeeModel.EmployeeModel
		if l.EmployeeID != nil {
			emp = employees[*l.EmployeeID]
		}
		if emp == nil && l.QRContent != nil {
			// Old badges carried the employee id as the whole QR payload.
			if id, err := uuid.Parse(*l.QRContent); err == nil {
				emp = employees[id]
			}
		}

		var ev *reconcile.Event
		if matched, ok := reconcile.Resolve(toReconcileLog(l), events); ok {
			ev = &matched
		}

		_ = w.Write(exportRow(l, emp, ev, loc))
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	filename := "auditoria-" + time.Now().In(loc).Format("2006-01-02") + ".csv"
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

// employeeSnapshots loads the employees referenced by the logs in id batches,
// the store caps IN-list sizes well below the distinct-id count of a busy day.
func (h *AuditController) employeeSnapshots(logs []logModel.AttendanceLogModel) (map[uuid.UUID]*employeeModel.EmployeeModel, error) {
	seen := make(map[uuid.UUID]struct{})
	var ids []uuid.UUID
	add := func(id uuid.UUID) {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	for _, l := range logs {
		if l.EmployeeID != nil {
			add(*l.EmployeeID)
		}
		if l.QRContent != nil {
			if id, err := uuid.Parse(*l.QRContent); err == nil {
				add(id)
			}
		}
	}

	out := make(map[uuid.UUID]*employeeModel.EmployeeModel, len(ids))
	for start := 0; start < len(ids); start += employeeLookupBatch {
		end := start + employeeLookupBatch
		if end > len(ids) {
			end = len(ids)
		}
		var batch []employeeModel.EmployeeModel
		if err := h.DB.Where("id IN ?", ids[start:end]).Find(&batch).Error; err != nil {
			return nil, err
		}
		for i := range batch {
			out[batch[i].EmployeeID] = &batch[i]
		}
	}
	return out, nil
}

func toReconcileLog(l logModel.AttendanceLogModel) reconcile.Log {
	r := reconcile.Log{
		ID:        l.LogID.String(),
		Type:      l.Type,
		CreatedAt: l.CreatedAt,
		Manual:    l.Manual,
	}
	if l.EmployeeID != nil {
		r.EmployeeID = l.EmployeeID.String()
	}
	if l.EventID != nil {
		r.EventID = l.EventID.String()
	}
	if l.QRContent != nil {
		r.QRContent = *l.QRContent
	}
	if l.Note != nil {
		r.Note = *l.Note
	}
	return r
}

func exportRow(l logModel.AttendanceLogModel, emp *employeeModel.EmployeeModel, ev *reconcile.Event, loc *time.Location) []string {
	name := "[Colaborador não encontrado]"
	cpf := "-"
	store := "-"
	position := "-"
	role := "-"
	if emp != nil {
		name = emp.Name
		cpf = helper.FormatCPF(emp.CPF)
		position = orDash(emp.Position)
		// Store only makes sense for internal employees, role only for
		// external ones.
		if emp.IsInternal {
			store = orDash(emp.Store)
		} else {
			role = orDash(emp.Role)
		}
	}

	eventName, eventLocation := "-", "-"
	if ev != nil {
		eventName = ev.Name
		if ev.Location != "" {
			eventLocation = ev.Location
		}
	}

	logType := "Check-in"
	if l.Type == logModel.TypeCheckout {
		logType = "Check-out"
	}
	manual := "Não"
	if l.Manual {
		manual = "Sim"
	}

	return []string{
		l.CreatedAt.In(loc).Format("02/01/2006 15:04:05"),
		name,
		cpf,
		store,
		position,
		role,
		eventName,
		eventLocation,
		logType,
		manual,
		orDash(l.Note),
	}
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
