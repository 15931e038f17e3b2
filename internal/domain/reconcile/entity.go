package reconcile

import (
	"time"
)

// Status is the resolved state of one employee on one calendar day.
type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLeave   Status = "on_leave"
	StatusWeekend Status = "weekend"
	StatusHoliday Status = "holiday"
)

// DateLayout is the wire format for calendar dates everywhere in the engine.
const DateLayout = "2006-01-02"

type Employee struct {
	ID         string
	FullName   string
	Department string
}

// AttendancePunch is one raw clock record. CheckIn and CheckOut are optional;
// a punch with no CheckIn is an incomplete-but-present record.
type AttendancePunch struct {
	EmployeeID string
	Date       time.Time
	CheckIn    *time.Time
	CheckOut   *time.Time
}

// LeaveRecord covers an inclusive date range. Records arrive already approved.
type LeaveRecord struct {
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time
	LeaveType  string
}

type CalendarDay struct {
	Date      time.Time
	IsWeekend bool
	IsHoliday bool
}

// DayStatus is one resolved matrix cell. Status is a pure function of
// (CalendarDay, AttendancePunch?, LeaveRecord?) and is never assigned ad hoc.
type DayStatus struct {
	EmployeeID      string
	Date            time.Time
	Status          Status
	CheckIn         *time.Time
	CheckOut        *time.Time
	IsLate          bool
	OvertimeMinutes int
	LeaveType       string

	// OverridesLeave marks a present day that a leave record also covered.
	// The punch wins; the conflict is surfaced, not dropped.
	OverridesLeave bool
	// IncompleteRecord marks a punch with no check-out.
	IncompleteRecord bool
}

// CellKey addresses one matrix cell. Dates are keyed by their DateLayout
// string so two time.Time values for the same day always collide.
type CellKey struct {
	EmployeeID string
	Date       string
}

// Matrix is the dense per-employee, per-day status grid for one period.
// Every (employee, day) pair has exactly one cell; weekends and holidays get
// typed cells so consumers never special-case a missing record.
type Matrix struct {
	Year      int
	Month     time.Month
	Days      []CalendarDay
	Employees []Employee
	Cells     map[CellKey]DayStatus
	Warnings  []Warning
}

// Cell returns the resolved status for one employee on one day.
func (m *Matrix) Cell(employeeID string, date time.Time) (DayStatus, bool) {
	cell, ok := m.Cells[CellKey{EmployeeID: employeeID, Date: date.Format(DateLayout)}]
	return cell, ok
}

// EmployeeStats are the per-employee roll-ups of one matrix.
type EmployeeStats struct {
	EmployeeID      string
	FullName        string
	Department      string
	Present         int
	Absent          int
	Leave           int
	Weekend         int
	Holiday         int
	WorkingDays     int
	LateCount       int
	OvertimeMinutes int
	LeaveOverrides  int
	// AttendanceRate is present/workingDays as a percentage, already rounded
	// half-up to one decimal. Projections must not round again.
	AttendanceRate float64
}

type DepartmentStats struct {
	Department     string
	EmployeeCount  int
	WorkingDays    int
	Present        int
	AbsentCount    int
	LateCount      int
	AttendanceRate float64
}

// OrganizationStats weight by employee-days, not by averaging per-employee
// rates, so employees with fewer working days do not skew the total.
type OrganizationStats struct {
	EmployeeCount  int
	WorkingDays    int
	Present        int
	AbsentCount    int
	LateCount      int
	LeaveOverrides int
	AttendanceRate float64
}

// AggregateStats is derived, read-only, and recomputed for every report.
type AggregateStats struct {
	PerEmployee   []EmployeeStats
	PerDepartment []DepartmentStats
	Organization  OrganizationStats
}
