package reconcile

import (
	"fmt"
	"time"

	"github.com/workforcehq/attendance-engine-go/internal/domain/reconcile"
)

// Builder assembles the dense attendance matrix for one period. It indexes
// punches and leaves by (employee, date) once, then resolves every cell,
// collecting data-quality warnings along the way. Bad records are excluded
// and reported; they never abort the report.
type Builder struct {
	resolver *Resolver
}

func NewBuilder(cfg reconcile.Config) *Builder {
	return &Builder{resolver: NewResolver(cfg)}
}

// Build guarantees total coverage: exactly one cell for every
// (employee, day) pair, weekends and holidays included.
func (b *Builder) Build(employees []reconcile.Employee, days []reconcile.CalendarDay, punches []reconcile.AttendancePunch, leaves []reconcile.LeaveRecord) (*reconcile.Matrix, error) {
	if len(employees) == 0 {
		return nil, reconcile.ErrEmptyRoster
	}

	matrix := &reconcile.Matrix{
		Days:      days,
		Employees: employees,
		Cells:     make(map[reconcile.CellKey]reconcile.DayStatus, len(employees)*len(days)),
	}
	if len(days) > 0 {
		matrix.Year = days[0].Date.Year()
		matrix.Month = days[0].Date.Month()
	}

	roster := make(map[string]bool, len(employees))
	for _, emp := range employees {
		roster[emp.ID] = true
	}

	periodStart, periodEnd := periodBounds(days)

	punchIndex := b.indexPunches(matrix, roster, punches, periodStart, periodEnd)
	leaveIndex := b.indexLeaves(matrix, roster, leaves, days)

	for _, emp := range employees {
		for _, day := range days {
			key := reconcile.CellKey{EmployeeID: emp.ID, Date: day.Date.Format(reconcile.DateLayout)}

			var punch *reconcile.AttendancePunch
			if p, ok := punchIndex[key]; ok {
				punch = &p
			}
			var leave *reconcile.LeaveRecord
			if l, ok := leaveIndex[key]; ok {
				leave = &l
			}

			cell := b.resolver.Resolve(day, punch, leave)
			cell.EmployeeID = emp.ID

			if cell.OverridesLeave {
				matrix.Warnings = append(matrix.Warnings, reconcile.NewWarning(
					reconcile.WarnPunchOnLeave, emp.ID, day.Date,
					"employee has a punch on a day covered by approved leave; punch kept",
				))
			}
			if cell.IncompleteRecord {
				matrix.Warnings = append(matrix.Warnings, reconcile.NewWarning(
					reconcile.WarnIncompletePunch, emp.ID, day.Date,
					"punch record is missing a check-in or check-out",
				))
			}

			matrix.Cells[key] = cell
		}
	}

	return matrix, nil
}

// indexPunches validates, deduplicates, and indexes punches by cell key.
// Malformed and orphaned records are excluded with a warning; duplicates
// keep the record with the latest check-out.
func (b *Builder) indexPunches(matrix *reconcile.Matrix, roster map[string]bool, punches []reconcile.AttendancePunch, periodStart, periodEnd time.Time) map[reconcile.CellKey]reconcile.AttendancePunch {
	index := make(map[reconcile.CellKey]reconcile.AttendancePunch, len(punches))

	for _, punch := range punches {
		punch.Date = midnightUTC(punch.Date)
		if punch.Date.IsZero() {
			matrix.Warnings = append(matrix.Warnings, reconcile.NewWarning(
				reconcile.WarnMalformedRecord, punch.EmployeeID, punch.Date,
				"punch has no usable date",
			))
			continue
		}
		if punch.Date.Before(periodStart) || punch.Date.After(periodEnd) {
			matrix.Warnings = append(matrix.Warnings, reconcile.NewWarning(
				reconcile.WarnMalformedRecord, punch.EmployeeID, punch.Date,
				"punch date falls outside the reporting period",
			))
			continue
		}
		if punch.CheckIn != nil && punch.CheckOut != nil && punch.CheckOut.Before(*punch.CheckIn) {
			matrix.Warnings = append(matrix.Warnings, reconcile.NewWarning(
				reconcile.WarnMalformedRecord, punch.EmployeeID, punch.Date,
				"check-out is earlier than check-in",
			))
			continue
		}
		if !roster[punch.EmployeeID] {
			matrix.Warnings = append(matrix.Warnings, reconcile.NewWarning(
				reconcile.WarnOrphanedRecord, punch.EmployeeID, punch.Date,
				"punch references an employee missing from the roster",
			))
			continue
		}

		key := reconcile.CellKey{EmployeeID: punch.EmployeeID, Date: punch.Date.Format(reconcile.DateLayout)}
		existing, dup := index[key]
		if !dup {
			index[key] = punch
			continue
		}

		kept := preferPunch(existing, punch)
		index[key] = kept
		matrix.Warnings = append(matrix.Warnings, reconcile.NewWarning(
			reconcile.WarnDuplicatePunch, punch.EmployeeID, punch.Date,
			"more than one punch for the same day; kept the record with the latest check-out",
		))
	}

	return index
}

// preferPunch picks the more complete of two punches for the same day: the
// one with the latest check-out wins, and any check-out beats none at all.
func preferPunch(a, b reconcile.AttendancePunch) reconcile.AttendancePunch {
	switch {
	case a.CheckOut == nil && b.CheckOut == nil:
		return a
	case a.CheckOut == nil:
		return b
	case b.CheckOut == nil:
		return a
	case b.CheckOut.After(*a.CheckOut):
		return b
	default:
		return a
	}
}

// indexLeaves expands leave ranges into per-day entries, clipped to the
// requested period so month-spanning leave behaves at the boundary.
func (b *Builder) indexLeaves(matrix *reconcile.Matrix, roster map[string]bool, leaves []reconcile.LeaveRecord, days []reconcile.CalendarDay) map[reconcile.CellKey]reconcile.LeaveRecord {
	index := make(map[reconcile.CellKey]reconcile.LeaveRecord)
	periodStart, periodEnd := periodBounds(days)

	for _, leave := range leaves {
		leave.StartDate = midnightUTC(leave.StartDate)
		leave.EndDate = midnightUTC(leave.EndDate)
		if leave.StartDate.IsZero() || leave.EndDate.IsZero() {
			matrix.Warnings = append(matrix.Warnings, reconcile.NewWarning(
				reconcile.WarnMalformedRecord, leave.EmployeeID, leave.StartDate,
				"leave record has no usable date range",
			))
			continue
		}
		if leave.EndDate.Before(leave.StartDate) {
			matrix.Warnings = append(matrix.Warnings, reconcile.NewWarning(
				reconcile.WarnMalformedRecord, leave.EmployeeID, leave.StartDate,
				fmt.Sprintf("leave range ends %s before it starts", leave.EndDate.Format(reconcile.DateLayout)),
			))
			continue
		}
		if !roster[leave.EmployeeID] {
			matrix.Warnings = append(matrix.Warnings, reconcile.NewWarning(
				reconcile.WarnOrphanedRecord, leave.EmployeeID, leave.StartDate,
				"leave references an employee missing from the roster",
			))
			continue
		}

		start := leave.StartDate
		if start.Before(periodStart) {
			start = periodStart
		}
		end := leave.EndDate
		if end.After(periodEnd) {
			end = periodEnd
		}
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			key := reconcile.CellKey{EmployeeID: leave.EmployeeID, Date: d.Format(reconcile.DateLayout)}
			index[key] = leave
		}
	}

	return index
}

func periodBounds(days []reconcile.CalendarDay) (time.Time, time.Time) {
	if len(days) == 0 {
		return time.Time{}, time.Time{}
	}
	return days[0].Date, days[len(days)-1].Date
}

// midnightUTC drops any time-of-day component so calendar dates compare and
// key consistently regardless of how the provider stored them.
func midnightUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
