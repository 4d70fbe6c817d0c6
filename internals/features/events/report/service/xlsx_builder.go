// Package service builds the event report workbook: one Presenças/Faltas/
// Percentual sheet trio per event day plus a consolidated Percentual Geral
// sheet, mirroring the spreadsheet the coordinators already know.
package service

import (
	"fmt"
	"math"
	"time"

	"github.com/xuri/excelize/v2"

	"presenca_backend/internals/features/attendance/reconcile"
)

const dayKeyFormat = "2006-01-02"

type dayStats struct {
	Presence []reconcile.Record
	Absent   []reconcile.Record
	Manual   int
}

// BuildEventWorkbook renders the projected attendance records into an XLSX
// workbook. days must be the event's calendar days in order; records outside
// those days are ignored.
func BuildEventWorkbook(eventName string, days []time.Time, records []reconcile.Record, loc *time.Location) (*excelize.File, error) {
	f := excelize.NewFile()

	byDay := make(map[string]*dayStats, len(days))
	for _, d := range days {
		byDay[d.Format(dayKeyFormat)] = &dayStats{}
	}

	total := struct{ registered, present, absent, manual int }{}
	for _, r := range records {
		st, ok := byDay[r.AttendanceDay]
		if !ok {
			continue
		}
		if reconcile.Present(r) {
			st.Presence = append(st.Presence, r)
			total.present++
			if r.Manual {
				st.Manual++
				total.manual++
			}
		} else {
			st.Absent = append(st.Absent, r)
			total.absent++
		}
		total.registered++
	}

	for _, d := range days {
		key := d.Format(dayKeyFormat)
		label := d.Format("02-01")
		st := byDay[key]

		if len(st.Presence) > 0 || len(st.Absent) > 0 {
			if err := writePresenceSheet(f, "Presenças "+label, st.Presence, loc); err != nil {
				return nil, err
			}
		}
		if len(st.Absent) > 0 {
			if err := writeAbsentSheet(f, "Faltas "+label, st.Absent); err != nil {
				return nil, err
			}
		}
		dayTotal := len(st.Presence) + len(st.Absent)
		if dayTotal > 0 {
			if err := writeStatsSheet(f, "Percentual "+label, dayTotal, len(st.Presence), len(st.Absent), st.Manual); err != nil {
				return nil, err
			}
		}
	}

	if err := writeStatsSheet(f, "Percentual Geral", total.registered, total.present, total.absent, total.manual); err != nil {
		return nil, err
	}

	// Drop excelize's default sheet so the workbook opens on the first day.
	if f.SheetCount > 1 {
		_ = f.DeleteSheet("Sheet1")
	}
	return f, nil
}

func writePresenceSheet(f *excelize.File, name string, rows []reconcile.Record, loc *time.Location) error {
	if _, err := f.NewSheet(name); err != nil {
		return err
	}
	header := []interface{}{"Nome", "CPF", "Cargo", "Loja", "Setor", "Função", "Horario_CheckIn", "Horario_CheckOut", "Motivo_Nota"}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return err
	}
	for i, r := range rows {
		note := "N/A"
		if r.Note != nil && *r.Note != "" {
			note = *r.Note
		} else if r.Manual {
			note = "Manual"
		}
		row := []interface{}{
			displayName(r),
			orNA(r.CPF),
			orNA(r.Position),
			orNA(r.Store),
			orNA(r.Sector),
			roleColumn(r),
			fmtStamp(r.CheckinAt, loc),
			fmtStamp(r.CheckoutAt, loc),
			note,
		}
		if err := f.SetSheetRow(name, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}
	return nil
}

func writeAbsentSheet(f *excelize.File, name string, rows []reconcile.Record) error {
	if _, err := f.NewSheet(name); err != nil {
		return err
	}
	header := []interface{}{"Nome", "CPF", "Cargo", "Loja", "Setor", "Função", "Status"}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return err
	}
	for i, r := range rows {
		row := []interface{}{
			displayName(r),
			orNA(r.CPF),
			orNA(r.Position),
			orNA(r.Store),
			orNA(r.Sector),
			roleColumn(r),
			"Ausente",
		}
		if err := f.SetSheetRow(name, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}
	return nil
}

func writeStatsSheet(f *excelize.File, name string, total, present, absent, manual int) error {
	if _, err := f.NewSheet(name); err != nil {
		return err
	}
	rows := [][]interface{}{
		{"Métrica", "Valor"},
		{"Total Participantes", total},
		{"Total Presentes", present},
		{"Total Ausentes", absent},
		{"Check-ins Manuais", manual},
		{"% Presentes", fmt.Sprintf("%.2f%%", percent(present, total))},
		{"% Ausentes", fmt.Sprintf("%.2f%%", percent(absent, total))},
		{"% Check-ins Manuais", fmt.Sprintf("%.2f%%", percent(manual, total))},
	}
	for i := range rows {
		if err := f.SetSheetRow(name, fmt.Sprintf("A%d", i+1), &rows[i]); err != nil {
			return err
		}
	}
	return nil
}

func percent(v, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(v)/float64(total)*10000) / 100
}

func displayName(r reconcile.Record) string {
	if r.EmployeeName != "" {
		return r.EmployeeName
	}
	if r.EmployeeID != "" {
		return "ID: " + r.EmployeeID
	}
	return "N/A"
}

// roleColumn shows the external role only; internal employees have their
// position in Cargo.
func roleColumn(r reconcile.Record) string {
	if !r.IsInternal && r.Role != "" {
		return r.Role
	}
	return "N/A"
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func fmtStamp(t *time.Time, loc *time.Location) string {
	if t == nil {
		return "N/A"
	}
	return t.In(loc).Format("02/01/2006 15:04")
}
