package reconcile

import (
	"strconv"
	"time"

	"github.com/workforcehq/attendance-engine-go/internal/domain/reconcile"
	"github.com/workforcehq/attendance-engine-go/internal/domain/report"
)

// Projections reshape an already-resolved matrix and its aggregates into
// consumer payloads. None of them re-derives a status or re-rounds a rate,
// so the calendar grid, the summary table, and the chart series can never
// disagree with each other.

const timeOfDayLayout = "15:04"

// ProjectCalendarView builds the per-employee, per-day grid for the UI.
func ProjectCalendarView(matrix *reconcile.Matrix) report.CalendarViewPayload {
	payload := report.CalendarViewPayload{
		Days: make([]string, 0, len(matrix.Days)),
		Rows: make([]report.CalendarRow, 0, len(matrix.Employees)),
	}
	for _, day := range matrix.Days {
		payload.Days = append(payload.Days, day.Date.Format(reconcile.DateLayout))
	}

	for _, emp := range matrix.Employees {
		row := report.CalendarRow{
			EmployeeID: emp.ID,
			FullName:   emp.FullName,
			Department: emp.Department,
			Cells:      make([]report.CalendarCell, 0, len(matrix.Days)),
		}
		for _, day := range matrix.Days {
			cell, _ := matrix.Cell(emp.ID, day.Date)
			row.Cells = append(row.Cells, report.CalendarCell{
				Date:      day.Date.Format(reconcile.DateLayout),
				Status:    string(cell.Status),
				CheckIn:   formatClock(cell.CheckIn),
				CheckOut:  formatClock(cell.CheckOut),
				IsLate:    cell.IsLate,
				LeaveType: cell.LeaveType,
			})
		}
		payload.Rows = append(payload.Rows, row)
	}

	return payload
}

// ProjectSummaryTable builds the per-employee aggregate rows plus the
// organization totals, straight from the aggregated stats.
func ProjectSummaryTable(stats reconcile.AggregateStats) report.SummaryTablePayload {
	payload := report.SummaryTablePayload{
		Rows: make([]report.SummaryRow, 0, len(stats.PerEmployee)),
	}

	for _, es := range stats.PerEmployee {
		payload.Rows = append(payload.Rows, report.SummaryRow{
			EmployeeID:          es.EmployeeID,
			FullName:            es.FullName,
			Department:          es.Department,
			Present:             es.Present,
			Absent:              es.Absent,
			Leave:               es.Leave,
			Late:                es.LateCount,
			OvertimeMinutes:     es.OvertimeMinutes,
			WorkingDays:         es.WorkingDays,
			AttendanceRate:      es.AttendanceRate,
			AttendanceRateLabel: FormatRate(es.AttendanceRate),
		})
	}

	org := stats.Organization
	payload.Organization = report.OrganizationSummary{
		EmployeeCount:       org.EmployeeCount,
		WorkingDays:         org.WorkingDays,
		Present:             org.Present,
		Absent:              org.AbsentCount,
		Late:                org.LateCount,
		LeaveOverrides:      org.LeaveOverrides,
		AttendanceRate:      org.AttendanceRate,
		AttendanceRateLabel: FormatRate(org.AttendanceRate),
	}

	return payload
}

// ProjectDepartmentSeries builds the per-department points chart consumers
// plot.
func ProjectDepartmentSeries(stats reconcile.AggregateStats) report.DepartmentSeriesPayload {
	payload := report.DepartmentSeriesPayload{
		Points: make([]report.DepartmentPoint, 0, len(stats.PerDepartment)),
	}
	for _, ds := range stats.PerDepartment {
		payload.Points = append(payload.Points, report.DepartmentPoint{
			Department:          ds.Department,
			EmployeeCount:       ds.EmployeeCount,
			AttendanceRate:      ds.AttendanceRate,
			AttendanceRateLabel: FormatRate(ds.AttendanceRate),
			LateCount:           ds.LateCount,
			AbsentCount:         ds.AbsentCount,
		})
	}
	return payload
}

// CSVHeader is the fixed export column order the file-writing collaborator
// expects. ProjectCSVRows must stay in lockstep with it.
func CSVHeader() []string {
	return []string{
		"employee_id",
		"full_name",
		"department",
		"present",
		"absent",
		"leave",
		"late",
		"overtime_minutes",
		"working_days",
		"attendance_rate",
	}
}

// ProjectCSVRows flattens the summary into raw string rows, one per
// employee, matching CSVHeader order.
func ProjectCSVRows(stats reconcile.AggregateStats) [][]string {
	rows := make([][]string, 0, len(stats.PerEmployee))
	for _, es := range stats.PerEmployee {
		rows = append(rows, []string{
			es.EmployeeID,
			es.FullName,
			es.Department,
			strconv.Itoa(es.Present),
			strconv.Itoa(es.Absent),
			strconv.Itoa(es.Leave),
			strconv.Itoa(es.LateCount),
			strconv.Itoa(es.OvertimeMinutes),
			strconv.Itoa(es.WorkingDays),
			FormatRate(es.AttendanceRate),
		})
	}
	return rows
}

// ProjectWarnings converts collected matrix warnings to their transport
// shape and counts how many source records were excluded outright.
func ProjectWarnings(warnings []reconcile.Warning) ([]report.Warning, int) {
	out := make([]report.Warning, 0, len(warnings))
	ignored := 0
	for _, w := range warnings {
		out = append(out, report.Warning{
			Code:       string(w.Code),
			EmployeeID: w.EmployeeID,
			Date:       w.Date,
			Detail:     w.Detail,
		})
		switch w.Code {
		case reconcile.WarnMalformedRecord, reconcile.WarnOrphanedRecord, reconcile.WarnDuplicatePunch:
			ignored++
		}
	}
	return out, ignored
}

func formatClock(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(timeOfDayLayout)
	return &s
}
