// Package reconcile rebuilds per-employee, per-day attendance from loosely
// linked raw check-in/check-out logs and event windows. Logs may reference an
// event directly, hide an event id inside their QR payload, or carry nothing
// but a timestamp; events may span several calendar days. The pipeline is
// fetch -> event resolution -> day bucketing -> projection, recomputed fresh
// on every report request.
package reconcile

import (
	"context"
	"errors"
	"sort"
	"time"

	helper "presenca_backend/internals/helpers"
)

var ErrEventNotFound = errors.New("event not found")

// Log is one immutable check-in/check-out fact, id fields flattened to
// strings so the matcher can compare them against digit runs from QR
// payloads. Empty string means absent.
type Log struct {
	ID         string
	EmployeeID string
	QRContent  string
	Type       string // checkin | checkout
	CreatedAt  time.Time
	Note       string
	Manual     bool
	EventID    string
}

type Event struct {
	ID        string
	Name      string
	Location  string
	StartDate time.Time
	EndDate   time.Time
}

// Employee is the roster snapshot carried into every projected record.
type Employee struct {
	ID         string
	Name       string
	CPF        string
	Store      string
	Position   string
	Sector     string
	Role       string
	IsInternal bool
}

// Record is the derived attendance row: one per (employee, event-day).
// Never persisted.
type Record struct {
	EmployeeID    string     `json:"employee_id"`
	EmployeeName  string     `json:"employee_name"`
	CPF           string     `json:"cpf"`
	Position      string     `json:"position"`
	Store         string     `json:"store"`
	Sector        string     `json:"sector"`
	Role          string     `json:"role"`
	IsInternal    bool       `json:"isInternal"`
	AttendanceDay string     `json:"attendance_day"`
	CheckinAt     *time.Time `json:"checkin_at"`
	CheckoutAt    *time.Time `json:"checkout_at"`
	Manual        bool       `json:"manual"`
	Note          *string    `json:"note"`
}

// Store is what the pipeline needs from the persistence layer. The row cap of
// the hosted store forces the paged contracts; both paged methods must return
// rows in a stable order (logs by created_at asc, employees by name asc).
type Store interface {
	// LogsInWindow returns checkin/checkout logs with created_at in
	// [from, to], ordered by created_at asc.
	LogsInWindow(ctx context.Context, from, to time.Time, offset, limit int) ([]Log, error)
	// EventsByStartDesc returns all events ordered by start_date desc. This
	// order is also the resolution iteration order.
	EventsByStartDesc(ctx context.Context) ([]Event, error)
	EmployeesPage(ctx context.Context, offset, limit int) ([]Employee, error)
}

type Reconciler struct {
	store Store
	loc   *time.Location
}

func New(store Store, loc *time.Location) *Reconciler {
	if loc == nil {
		loc = time.UTC
	}
	return &Reconciler{store: store, loc: loc}
}

func (r *Reconciler) Location() *time.Location { return r.loc }

// EventReport produces one Record per roster employee per event day. Any
// fetch error aborts the whole report; a partial log set would silently
// understate attendance.
func (r *Reconciler) EventReport(ctx context.Context, eventID string) (Event, []Record, error) {
	events, err := r.store.EventsByStartDesc(ctx)
	if err != nil {
		return Event{}, nil, err
	}
	var ev Event
	found := false
	for _, e := range events {
		if e.ID == eventID {
			ev, found = e, true
			break
		}
	}
	if !found {
		return Event{}, nil, ErrEventNotFound
	}

	days := EventDays(ev, r.loc)

	// Extend the window one day past the end of multi-day events so
	// checkouts just after midnight are still fetched.
	from, to := ev.StartDate, ev.EndDate
	if len(days) > 1 {
		to = to.AddDate(0, 0, 1)
	}

	logs, err := helper.FetchAllPages(helper.FetchBatchSize, helper.FetchHardCapRows,
		func(offset, limit int) ([]Log, error) {
			return r.store.LogsInWindow(ctx, from, to, offset, limit)
		})
	if err != nil {
		return Event{}, nil, err
	}

	// The whole roster, not just registered employees, so people who logged
	// without registering are not silently dropped.
	employees, err := helper.FetchAllPages(helper.FetchBatchSize, helper.FetchHardCapRows,
		func(offset, limit int) ([]Employee, error) {
			return r.store.EmployeesPage(ctx, offset, limit)
		})
	if err != nil {
		return Event{}, nil, err
	}

	var owned []Log
	for _, l := range logs {
		if l.EmployeeID == "" {
			continue
		}
		if matched, ok := Resolve(l, events); ok && matched.ID == ev.ID {
			owned = append(owned, l)
		}
	}

	records := Project(employees, days, BucketLogs(owned, r.loc))
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		an, bn := a.EmployeeName, b.EmployeeName
		if an == "" {
			an = a.EmployeeID
		}
		if bn == "" {
			bn = b.EmployeeID
		}
		if an != bn {
			return an < bn
		}
		return a.AttendanceDay < b.AttendanceDay
	})
	return ev, records, nil
}
