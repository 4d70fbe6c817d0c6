package reconcile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEventDaysSingleDay(t *testing.T) {
	ev := Event{ID: "a", StartDate: at(2024, 3, 1, 8, 0), EndDate: at(2024, 3, 1, 18, 0)}
	days := EventDays(ev, tz)
	assert.Len(t, days, 1)
	assert.Equal(t, "2024-03-01", days[0].Format("2006-01-02"))
	assert.False(t, IsMultiDay(ev, tz))
}

func TestEventDaysMultiDay(t *testing.T) {
	ev := Event{ID: "a", StartDate: at(2024, 3, 1, 8, 0), EndDate: at(2024, 3, 3, 18, 0)}
	days := EventDays(ev, tz)
	assert.Len(t, days, 3)
	assert.Equal(t, "2024-03-01", days[0].Format("2006-01-02"))
	assert.Equal(t, "2024-03-03", days[2].Format("2006-01-02"))
	assert.True(t, IsMultiDay(ev, tz))
}

func TestBucketLogsGroupsByEmployeeAndDay(t *testing.T) {
	logs := []Log{
		{ID: "1", EmployeeID: "a", Type: "checkin", CreatedAt: at(2024, 3, 1, 9, 0)},
		{ID: "2", EmployeeID: "a", Type: "checkout", CreatedAt: at(2024, 3, 1, 17, 0)},
		{ID: "3", EmployeeID: "a", Type: "checkin", CreatedAt: at(2024, 3, 2, 9, 0)},
		{ID: "4", EmployeeID: "b", Type: "checkin", CreatedAt: at(2024, 3, 1, 9, 30)},
		{ID: "5", EmployeeID: "", Type: "checkin", CreatedAt: at(2024, 3, 1, 9, 30)}, // no employee, dropped
	}
	buckets := BucketLogs(logs, tz)
	assert.Len(t, buckets, 3)
	assert.Len(t, buckets[bucketKey{"a", "2024-03-01"}], 2)
	assert.Len(t, buckets[bucketKey{"a", "2024-03-02"}], 1)
	assert.Len(t, buckets[bucketKey{"b", "2024-03-01"}], 1)
}

func TestProjectFirstCheckinLastCheckout(t *testing.T) {
	emp := Employee{ID: "a", Name: "Ana"}
	days := []time.Time{at(2024, 3, 1, 0, 0)}
	logs := []Log{
		{ID: "1", EmployeeID: "a", Type: "checkin", CreatedAt: at(2024, 3, 1, 9, 15)},
		{ID: "2", EmployeeID: "a", Type: "checkin", CreatedAt: at(2024, 3, 1, 8, 45), Manual: true, Note: "esqueceu o crachá"},
		{ID: "3", EmployeeID: "a", Type: "checkout", CreatedAt: at(2024, 3, 1, 12, 0)},
		{ID: "4", EmployeeID: "a", Type: "checkout", CreatedAt: at(2024, 3, 1, 17, 30)},
	}

	records := Project([]Employee{emp}, days, BucketLogs(logs, tz))
	assert.Len(t, records, 1)
	r := records[0]
	assert.Equal(t, at(2024, 3, 1, 8, 45), *r.CheckinAt)
	assert.Equal(t, at(2024, 3, 1, 17, 30), *r.CheckoutAt)
	// Manual/note follow the selected (earliest) checkin.
	assert.True(t, r.Manual)
	assert.Equal(t, "esqueceu o crachá", *r.Note)
}

func TestProjectAbsenteesKept(t *testing.T) {
	emps := []Employee{{ID: "a", Name: "Ana"}, {ID: "b", Name: "Bruno"}}
	days := []time.Time{at(2024, 3, 1, 0, 0), at(2024, 3, 2, 0, 0)}
	logs := []Log{
		{ID: "1", EmployeeID: "a", Type: "checkin", CreatedAt: at(2024, 3, 1, 9, 0)},
	}

	records := Project(emps, days, BucketLogs(logs, tz))
	assert.Len(t, records, 4) // 2 employees x 2 days

	var empty int
	for _, r := range records {
		if r.CheckinAt == nil {
			assert.Nil(t, r.CheckoutAt)
			empty++
		}
	}
	assert.Equal(t, 3, empty)
}

func TestClassificationRelations(t *testing.T) {
	now := at(2024, 3, 1, 9, 0)
	later := at(2024, 3, 1, 17, 0)

	full := Record{CheckinAt: &now, CheckoutAt: &later}
	onlyIn := Record{CheckinAt: &now}
	none := Record{}

	assert.True(t, Present(full))
	assert.False(t, Problem(full))
	assert.True(t, Present(onlyIn))
	assert.True(t, Problem(onlyIn))
	assert.True(t, Absent(none))
	assert.False(t, Problem(none))

	// present and absent are mutually exclusive; problem implies present.
	for _, r := range []Record{full, onlyIn, none} {
		assert.NotEqual(t, Present(r), Absent(r))
		if Problem(r) {
			assert.True(t, Present(r))
		}
	}
}

func TestProjectManualFallsBackToCheckout(t *testing.T) {
	emp := Employee{ID: "a", Name: "Ana"}
	days := []time.Time{at(2024, 3, 1, 0, 0)}
	logs := []Log{
		{ID: "1", EmployeeID: "a", Type: "checkout", CreatedAt: at(2024, 3, 1, 17, 0), Manual: true, Note: "saída antecipada"},
	}

	records := Project([]Employee{emp}, days, BucketLogs(logs, tz))
	assert.Len(t, records, 1)
	r := records[0]
	assert.Nil(t, r.CheckinAt)
	assert.NotNil(t, r.CheckoutAt)
	assert.True(t, r.Manual)
	assert.Equal(t, "saída antecipada", *r.Note)
}
