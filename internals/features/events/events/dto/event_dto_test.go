package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "presenca_backend/internals/features/events/events/model"
)

func TestCheckWindow(t *testing.T) {
	start := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	ok := CreateEventRequest{Name: "Feira", StartDate: start, EndDate: start.Add(10 * time.Hour)}
	assert.NoError(t, ok.CheckWindow())

	same := CreateEventRequest{Name: "Feira", StartDate: start, EndDate: start}
	assert.NoError(t, same.CheckWindow())

	bad := CreateEventRequest{Name: "Feira", StartDate: start, EndDate: start.Add(-time.Minute)}
	assert.Error(t, bad.CheckWindow())
}

func TestApplyRejectsInvertedWindow(t *testing.T) {
	start := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	ev := m.EventModel{Name: "Feira", StartDate: start, EndDate: start.Add(time.Hour)}

	newEnd := start.Add(-time.Hour)
	upd := UpdateEventRequest{EndDate: &newEnd}
	assert.Error(t, upd.Apply(&ev))

	newEnd = start.Add(2 * time.Hour)
	require.NoError(t, (&UpdateEventRequest{EndDate: &newEnd}).Apply(&ev))
	assert.Equal(t, newEnd, ev.EndDate)
}

func TestCreateEventNormalize(t *testing.T) {
	loc := "  Pavilhão 2 "
	blank := "   "
	r := CreateEventRequest{Name: " Feira ", Location: &loc, Description: &blank}
	r.Normalize()
	assert.Equal(t, "Feira", r.Name)
	assert.Equal(t, "Pavilhão 2", *r.Location)
	assert.Nil(t, r.Description)
}
