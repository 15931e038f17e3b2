package reconcile

import (
	"math"
	"sort"
	"strconv"

	"github.com/workforcehq/attendance-engine-go/internal/domain/reconcile"
)

// Aggregate reduces a matrix into per-employee, per-department, and
// organization-wide statistics. Given the same matrix the output is always
// identical: employees keep roster order, departments sort by name, and
// rounding happens here exactly once.
func Aggregate(matrix *reconcile.Matrix) reconcile.AggregateStats {
	stats := reconcile.AggregateStats{
		PerEmployee: make([]reconcile.EmployeeStats, 0, len(matrix.Employees)),
	}

	type deptAccum struct {
		employees   int
		workingDays int
		present     int
		absent      int
		late        int
	}
	departments := make(map[string]*deptAccum)

	for _, emp := range matrix.Employees {
		es := reconcile.EmployeeStats{
			EmployeeID: emp.ID,
			FullName:   emp.FullName,
			Department: emp.Department,
		}

		for _, day := range matrix.Days {
			cell, ok := matrix.Cell(emp.ID, day.Date)
			if !ok {
				continue
			}

			switch cell.Status {
			case reconcile.StatusPresent:
				es.Present++
			case reconcile.StatusAbsent:
				es.Absent++
			case reconcile.StatusLeave:
				es.Leave++
			case reconcile.StatusWeekend:
				es.Weekend++
			case reconcile.StatusHoliday:
				es.Holiday++
			}

			// Working days are the cells that are not weekend/holiday. A
			// punch on a day off resolves to present, so it counts here.
			if cell.Status != reconcile.StatusWeekend && cell.Status != reconcile.StatusHoliday {
				es.WorkingDays++
			}
			if cell.IsLate {
				es.LateCount++
			}
			if cell.OverridesLeave {
				es.LeaveOverrides++
			}
			es.OvertimeMinutes += cell.OvertimeMinutes
		}

		es.AttendanceRate = RoundRate(ratio(es.Present, es.WorkingDays))
		stats.PerEmployee = append(stats.PerEmployee, es)

		dept, ok := departments[emp.Department]
		if !ok {
			dept = &deptAccum{}
			departments[emp.Department] = dept
		}
		dept.employees++
		dept.workingDays += es.WorkingDays
		dept.present += es.Present
		dept.absent += es.Absent
		dept.late += es.LateCount

		stats.Organization.EmployeeCount++
		stats.Organization.WorkingDays += es.WorkingDays
		stats.Organization.Present += es.Present
		stats.Organization.AbsentCount += es.Absent
		stats.Organization.LateCount += es.LateCount
		stats.Organization.LeaveOverrides += es.LeaveOverrides
	}

	names := make([]string, 0, len(departments))
	for name := range departments {
		names = append(names, name)
	}
	sort.Strings(names)

	stats.PerDepartment = make([]reconcile.DepartmentStats, 0, len(names))
	for _, name := range names {
		dept := departments[name]
		stats.PerDepartment = append(stats.PerDepartment, reconcile.DepartmentStats{
			Department:     name,
			EmployeeCount:  dept.employees,
			WorkingDays:    dept.workingDays,
			Present:        dept.present,
			AbsentCount:    dept.absent,
			LateCount:      dept.late,
			AttendanceRate: RoundRate(ratio(dept.present, dept.workingDays)),
		})
	}

	// Organization rate is weighted by employee-days, not a naive average of
	// per-employee rates, so a mid-month joiner cannot skew the total.
	stats.Organization.AttendanceRate = RoundRate(ratio(stats.Organization.Present, stats.Organization.WorkingDays))

	return stats
}

func ratio(present, workingDays int) float64 {
	if workingDays == 0 {
		return 0
	}
	return float64(present) / float64(workingDays) * 100
}

// RoundRate rounds a percentage half-up to one decimal. Every rate shown
// anywhere passes through here once, so projections can never disagree.
func RoundRate(rate float64) float64 {
	return math.Floor(rate*10+0.5) / 10
}

// FormatRate renders an already-rounded rate, e.g. "66.7%".
func FormatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', 1, 64) + "%"
}
