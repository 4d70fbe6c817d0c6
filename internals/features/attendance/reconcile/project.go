package reconcile

import "time"

const dayFormat = "2006-01-02"

// EventDays enumerates every calendar day of the event, inclusive, in loc.
// A single-day event yields exactly one day.
func EventDays(ev Event, loc *time.Location) []time.Time {
	start := startOfDay(ev.StartDate.In(loc))
	end := startOfDay(ev.EndDate.In(loc))
	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// IsMultiDay reports whether the event covers more than one calendar day in loc.
func IsMultiDay(ev Event, loc *time.Location) bool {
	return len(EventDays(ev, loc)) > 1
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

type bucketKey struct {
	employeeID string
	day        string
}

// BucketLogs groups logs by (employee, calendar day of created_at in loc).
func BucketLogs(logs []Log, loc *time.Location) map[bucketKey][]Log {
	buckets := make(map[bucketKey][]Log)
	for _, l := range logs {
		if l.EmployeeID == "" {
			continue
		}
		k := bucketKey{employeeID: l.EmployeeID, day: l.CreatedAt.In(loc).Format(dayFormat)}
		buckets[k] = append(buckets[k], l)
	}
	return buckets
}

// Project emits exactly one Record per (employee, day): earliest checkin,
// latest checkout. Employees with an empty bucket still get a record with
// both timestamps nil — they are absent for that day, never dropped.
func Project(employees []Employee, days []time.Time, buckets map[bucketKey][]Log) []Record {
	records := make([]Record, 0, len(employees)*len(days))
	for _, emp := range employees {
		for _, day := range days {
			k := bucketKey{employeeID: emp.ID, day: day.Format(dayFormat)}
			rec := Record{
				EmployeeID:    emp.ID,
				EmployeeName:  emp.Name,
				CPF:           emp.CPF,
				Position:      emp.Position,
				Store:         emp.Store,
				Sector:        emp.Sector,
				Role:          emp.Role,
				IsInternal:    emp.IsInternal,
				AttendanceDay: k.day,
			}

			var checkin, checkout *Log
			for i := range buckets[k] {
				l := &buckets[k][i]
				switch l.Type {
				case "checkin":
					if checkin == nil || l.CreatedAt.Before(checkin.CreatedAt) {
						checkin = l
					}
				case "checkout":
					if checkout == nil || l.CreatedAt.After(checkout.CreatedAt) {
						checkout = l
					}
				}
			}

			if checkin != nil {
				t := checkin.CreatedAt
				rec.CheckinAt = &t
			}
			if checkout != nil {
				t := checkout.CreatedAt
				rec.CheckoutAt = &t
			}

			// Manual flag and note come from the selected checkin, falling
			// back to the selected checkout.
			if src := checkin; src != nil {
				rec.Manual = src.Manual
				if src.Note != "" {
					n := src.Note
					rec.Note = &n
				}
			} else if src := checkout; src != nil {
				rec.Manual = src.Manual
				if src.Note != "" {
					n := src.Note
					rec.Note = &n
				}
			}

			records = append(records, rec)
		}
	}
	return records
}

// Downstream classification: pure filters over the projection output.

func Present(r Record) bool { return r.CheckinAt != nil }

func Absent(r Record) bool { return r.CheckinAt == nil }

// Problem marks a checkin that never checked out.
func Problem(r Record) bool { return r.CheckinAt != nil && r.CheckoutAt == nil }
