package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"presenca_backend/internals/features/attendance/reconcile"
)

var tz = time.FixedZone("BRT", -3*60*60)

func stamp(h, min int) *time.Time {
	t := time.Date(2024, 3, 1, h, min, 0, 0, tz)
	return &t
}

func sampleRecords() []reconcile.Record {
	note := "crachá esquecido"
	return []reconcile.Record{
		{
			EmployeeID: "a", EmployeeName: "Ana", CPF: "123.456.789-01",
			Position: "Vendedora", Store: "Centro", Sector: "Moda", IsInternal: true,
			AttendanceDay: "2024-03-01",
			CheckinAt:     stamp(9, 0), CheckoutAt: stamp(17, 0),
		},
		{
			EmployeeID: "b", EmployeeName: "Bruno", Role: "Promotor",
			AttendanceDay: "2024-03-01",
			CheckinAt:     stamp(9, 30), Manual: true, Note: &note,
		},
		{
			EmployeeID: "c", EmployeeName: "Clara",
			AttendanceDay: "2024-03-01",
		},
	}
}

func TestBuildEventWorkbookSheets(t *testing.T) {
	days := []time.Time{time.Date(2024, 3, 1, 0, 0, 0, 0, tz)}
	f, err := BuildEventWorkbook("Feira", days, sampleRecords(), tz)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Presenças 01-03")
	assert.Contains(t, sheets, "Faltas 01-03")
	assert.Contains(t, sheets, "Percentual 01-03")
	assert.Contains(t, sheets, "Percentual Geral")
	assert.NotContains(t, sheets, "Sheet1")
}

func TestBuildEventWorkbookPresenceRows(t *testing.T) {
	days := []time.Time{time.Date(2024, 3, 1, 0, 0, 0, 0, tz)}
	f, err := BuildEventWorkbook("Feira", days, sampleRecords(), tz)
	require.NoError(t, err)
	defer f.Close()

	get := func(cell string) string {
		v, err := f.GetCellValue("Presenças 01-03", cell)
		require.NoError(t, err)
		return v
	}
	assert.Equal(t, "Nome", get("A1"))
	assert.Equal(t, "Ana", get("A2"))
	assert.Equal(t, "01/03/2024 09:00", get("G2"))
	assert.Equal(t, "01/03/2024 17:00", get("H2"))
	assert.Equal(t, "N/A", get("I2"))

	// Bruno: external role in Função, open checkout, note carried through.
	assert.Equal(t, "Bruno", get("A3"))
	assert.Equal(t, "Promotor", get("F3"))
	assert.Equal(t, "N/A", get("H3"))
	assert.Equal(t, "crachá esquecido", get("I3"))
}

func TestBuildEventWorkbookStats(t *testing.T) {
	days := []time.Time{time.Date(2024, 3, 1, 0, 0, 0, 0, tz)}
	f, err := BuildEventWorkbook("Feira", days, sampleRecords(), tz)
	require.NoError(t, err)
	defer f.Close()

	get := func(cell string) string {
		v, err := f.GetCellValue("Percentual Geral", cell)
		require.NoError(t, err)
		return v
	}
	assert.Equal(t, "3", get("B2"))
	assert.Equal(t, "2", get("B3"))
	assert.Equal(t, "1", get("B4"))
	assert.Equal(t, "1", get("B5"))
	assert.Equal(t, "66.67%", get("B6"))
	assert.Equal(t, "33.33%", get("B7"))
}

func TestBuildEventWorkbookEmptyDayOmitted(t *testing.T) {
	days := []time.Time{
		time.Date(2024, 3, 1, 0, 0, 0, 0, tz),
		time.Date(2024, 3, 2, 0, 0, 0, 0, tz),
	}
	recs := []reconcile.Record{{
		EmployeeID: "a", EmployeeName: "Ana",
		AttendanceDay: "2024-03-01", CheckinAt: stamp(9, 0),
	}}

	f, err := BuildEventWorkbook("Feira", days, recs, tz)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Presenças 01-03")
	assert.NotContains(t, sheets, "Presenças 02-03")
	assert.NotContains(t, sheets, "Faltas 02-03")
}

func TestPercentRounding(t *testing.T) {
	assert.Equal(t, 66.67, percent(2, 3))
	assert.Equal(t, 0.0, percent(1, 0))
	assert.Equal(t, 100.0, percent(5, 5))
}
