package reconcile

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore serves pre-canned rows with the same paging contract as the real
// store: stable order, offset/limit windows, short batch at the end.
type fakeStore struct {
	logs      []Log      // created_at asc
	events    []Event    // start_date desc
	employees []Employee // name asc
	logsErr   error
}

func (f *fakeStore) LogsInWindow(_ context.Context, from, to time.Time, offset, limit int) ([]Log, error) {
	if f.logsErr != nil {
		return nil, f.logsErr
	}
	var in []Log
	for _, l := range f.logs {
		if !l.CreatedAt.Before(from) && !l.CreatedAt.After(to) {
			in = append(in, l)
		}
	}
	if offset >= len(in) {
		return nil, nil
	}
	end := offset + limit
	if end > len(in) {
		end = len(in)
	}
	return in[offset:end], nil
}

func (f *fakeStore) EventsByStartDesc(_ context.Context) ([]Event, error) {
	return f.events, nil
}

func (f *fakeStore) EmployeesPage(_ context.Context, offset, limit int) ([]Employee, error) {
	if offset >= len(f.employees) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.employees) {
		end = len(f.employees)
	}
	return f.employees[offset:end], nil
}

func recordFor(t *testing.T, records []Record, employeeID, day string) Record {
	t.Helper()
	for _, r := range records {
		if r.EmployeeID == employeeID && r.AttendanceDay == day {
			return r
		}
	}
	t.Fatalf("no record for %s on %s", employeeID, day)
	return Record{}
}

func TestEventReportThreeDayEvent(t *testing.T) {
	ev := Event{ID: "ev1", Name: "Feira", StartDate: at(2024, 3, 1, 8, 0), EndDate: at(2024, 3, 3, 18, 0)}
	store := &fakeStore{
		events: []Event{ev},
		employees: []Employee{
			{ID: "a", Name: "Ana"},
			{ID: "b", Name: "Bruno"},
		},
		logs: []Log{
			{ID: "1", EmployeeID: "a", EventID: "ev1", Type: "checkin", CreatedAt: at(2024, 3, 1, 9, 0)},
			{ID: "2", EmployeeID: "a", EventID: "ev1", Type: "checkout", CreatedAt: at(2024, 3, 1, 17, 0)},
		},
	}

	got, records, err := New(store, tz).EventReport(context.Background(), "ev1")
	require.NoError(t, err)
	assert.Equal(t, "ev1", got.ID)

	// 2 employees x 3 days, whether or not they ever logged.
	assert.Len(t, records, 6)

	day1 := recordFor(t, records, "a", "2024-03-01")
	require.NotNil(t, day1.CheckinAt)
	require.NotNil(t, day1.CheckoutAt)
	assert.Equal(t, at(2024, 3, 1, 9, 0), *day1.CheckinAt)
	assert.Equal(t, at(2024, 3, 1, 17, 0), *day1.CheckoutAt)

	for _, key := range []struct{ emp, day string }{
		{"a", "2024-03-02"}, {"a", "2024-03-03"},
		{"b", "2024-03-01"}, {"b", "2024-03-02"}, {"b", "2024-03-03"},
	} {
		r := recordFor(t, records, key.emp, key.day)
		assert.Nil(t, r.CheckinAt, "%s %s", key.emp, key.day)
		assert.Nil(t, r.CheckoutAt, "%s %s", key.emp, key.day)
	}
}

func TestEventReportSingleDay(t *testing.T) {
	ev := Event{ID: "ev1", Name: "Treinamento", StartDate: at(2024, 5, 10, 8, 0), EndDate: at(2024, 5, 10, 18, 0)}
	store := &fakeStore{
		events:    []Event{ev},
		employees: []Employee{{ID: "a", Name: "Ana"}, {ID: "b", Name: "Bruno"}, {ID: "c", Name: "Clara"}},
	}

	_, records, err := New(store, tz).EventReport(context.Background(), "ev1")
	require.NoError(t, err)
	assert.Len(t, records, 3)
	for _, r := range records {
		assert.Equal(t, "2024-05-10", r.AttendanceDay)
		assert.True(t, Absent(r))
	}
}

func TestEventReportExcludesOtherEventsLogs(t *testing.T) {
	target := Event{ID: "ev1", Name: "A", StartDate: at(2024, 3, 1, 8, 0), EndDate: at(2024, 3, 1, 18, 0)}
	other := Event{ID: "ev2", Name: "B", StartDate: at(2024, 3, 1, 9, 0), EndDate: at(2024, 3, 1, 19, 0)}
	store := &fakeStore{
		events:    []Event{other, target},
		employees: []Employee{{ID: "a", Name: "Ana"}},
		logs: []Log{
			// Inside target's window but directly tied to the other event.
			{ID: "1", EmployeeID: "a", EventID: "ev2", Type: "checkin", CreatedAt: at(2024, 3, 1, 10, 0)},
		},
	}

	_, records, err := New(store, tz).EventReport(context.Background(), "ev1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, Absent(records[0]))
}

func TestEventReportUnknownEvent(t *testing.T) {
	store := &fakeStore{events: []Event{{ID: "ev1", StartDate: at(2024, 3, 1, 8, 0), EndDate: at(2024, 3, 1, 18, 0)}}}
	_, _, err := New(store, tz).EventReport(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestEventReportFetchErrorAborts(t *testing.T) {
	ev := Event{ID: "ev1", StartDate: at(2024, 3, 1, 8, 0), EndDate: at(2024, 3, 1, 18, 0)}
	store := &fakeStore{
		events:    []Event{ev},
		employees: []Employee{{ID: "a", Name: "Ana"}},
		logsErr:   errors.New("connection reset"),
	}

	_, records, err := New(store, tz).EventReport(context.Background(), "ev1")
	assert.Error(t, err)
	assert.Nil(t, records)
}

func TestEventReportPaginatesPastBatchSize(t *testing.T) {
	ev := Event{ID: "ev1", Name: "Maratona", StartDate: at(2024, 3, 1, 0, 0), EndDate: at(2024, 3, 1, 23, 0)}
	store := &fakeStore{
		events:    []Event{ev},
		employees: []Employee{{ID: "a", Name: "Ana"}},
	}

	// 1200 checkins for the same employee spread over the day: more than one
	// fetch batch, earliest must still win.
	base := at(2024, 3, 1, 1, 0)
	for i := 0; i < 1200; i++ {
		store.logs = append(store.logs, Log{
			ID:         fmt.Sprintf("l%d", i),
			EmployeeID: "a",
			EventID:    "ev1",
			Type:       "checkin",
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		})
	}

	_, records, err := New(store, tz).EventReport(context.Background(), "ev1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.NotNil(t, records[0].CheckinAt)
	assert.Equal(t, base, *records[0].CheckinAt)
	assert.True(t, Problem(records[0]))
}

func TestEventReportSortedByNameThenDay(t *testing.T) {
	ev := Event{ID: "ev1", Name: "Feira", StartDate: at(2024, 3, 1, 8, 0), EndDate: at(2024, 3, 2, 18, 0)}
	store := &fakeStore{
		events:    []Event{ev},
		employees: []Employee{{ID: "a", Name: "Ana"}, {ID: "b", Name: "Bruno"}},
	}

	_, records, err := New(store, tz).EventReport(context.Background(), "ev1")
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, "Ana", records[0].EmployeeName)
	assert.Equal(t, "2024-03-01", records[0].AttendanceDay)
	assert.Equal(t, "Ana", records[1].EmployeeName)
	assert.Equal(t, "2024-03-02", records[1].AttendanceDay)
	assert.Equal(t, "Bruno", records[2].EmployeeName)
	assert.Equal(t, "Bruno", records[3].EmployeeName)
}
