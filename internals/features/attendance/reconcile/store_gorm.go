package reconcile

import (
	"context"
	"time"

	"gorm.io/gorm"

	logModel "presenca_backend/internals/features/attendance/logs/model"
	eventModel "presenca_backend/internals/features/events/events/model"
	employeeModel "presenca_backend/internals/features/workforce/employees/model"
)

// GormStore adapts the Postgres tables to the Store contract. Controllers
// construct it per request; tests swap in an in-memory fake instead.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{DB: db} }

func (s *GormStore) LogsInWindow(ctx context.Context, from, to time.Time, offset, limit int) ([]Log, error) {
	var rows []logModel.AttendanceLogModel
	err := s.DB.WithContext(ctx).
		Where("type IN ?", []string{logModel.TypeCheckin, logModel.TypeCheckout}).
		Where("created_at >= ? AND created_at <= ?", from, to).
		Order("created_at asc").
		Offset(offset).Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	logs := make([]Log, 0, len(rows))
	for _, r := range rows {
		l := Log{
			ID:        r.LogID.String(),
			Type:      r.Type,
			CreatedAt: r.CreatedAt,
			Manual:    r.Manual,
		}
		if r.EmployeeID != nil {
			l.EmployeeID = r.EmployeeID.String()
		}
		if r.EventID != nil {
			l.EventID = r.EventID.String()
		}
		if r.QRContent != nil {
			l.QRContent = *r.QRContent
		}
		if r.Note != nil {
			l.Note = *r.Note
		}
		logs = append(logs, l)
	}
	return logs, nil
}

func (s *GormStore) EventsByStartDesc(ctx context.Context) ([]Event, error) {
	var rows []eventModel.EventModel
	if err := s.DB.WithContext(ctx).Order("start_date desc").Find(&rows).Error; err != nil {
		return nil, err
	}

	events := make([]Event, 0, len(rows))
	for _, r := range rows {
		e := Event{
			ID:        r.EventID.String(),
			Name:      r.Name,
			StartDate: r.StartDate,
			EndDate:   r.EndDate,
		}
		if r.Location != nil {
			e.Location = *r.Location
		}
		events = append(events, e)
	}
	return events, nil
}

func (s *GormStore) EmployeesPage(ctx context.Context, offset, limit int) ([]Employee, error) {
	var rows []employeeModel.EmployeeModel
	err := s.DB.WithContext(ctx).
		Order("name asc").
		Offset(offset).Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	employees := make([]Employee, 0, len(rows))
	for _, r := range rows {
		employees = append(employees, Employee{
			ID:         r.EmployeeID.String(),
			Name:       r.Name,
			CPF:        r.CPF,
			Store:      deref(r.Store),
			Position:   deref(r.Position),
			Sector:     deref(r.Sector),
			Role:       deref(r.Role),
			IsInternal: r.IsInternal,
		})
	}
	return employees, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
