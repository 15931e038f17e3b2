package report

import (
	"fmt"
	"time"

	"github.com/workforcehq/attendance-engine-go/internal/pkg/validator"
)

// ========================================
// REPORT REQUEST
// ========================================

type AttendanceReportRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *AttendanceReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	currentYear := time.Now().Year()
	if r.Year < 2000 || r.Year > currentYear+1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between 2000 and %d", currentYear+1),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========================================
// SHARED REPORT PIECES
// ========================================

// Meta identifies one generated report. Reports have no storage; the ID only
// correlates a response with its log lines.
type Meta struct {
	ReportID    string `json:"report_id"`
	PeriodMonth int    `json:"period_month"`
	PeriodYear  int    `json:"period_year"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	GeneratedAt string `json:"generated_at"`
}

// Warning is one data-quality anomaly surfaced alongside the report so the
// UI can show "N records ignored" instead of a blank screen.
type Warning struct {
	Code       string `json:"code"`
	EmployeeID string `json:"employee_id,omitempty"`
	Date       string `json:"date,omitempty"`
	Detail     string `json:"detail"`
}

// ========================================
// CALENDAR VIEW
// ========================================

type CalendarCell struct {
	Date      string  `json:"date"`
	Status    string  `json:"status"`
	CheckIn   *string `json:"check_in,omitempty"`
	CheckOut  *string `json:"check_out,omitempty"`
	IsLate    bool    `json:"is_late,omitempty"`
	LeaveType string  `json:"leave_type,omitempty"`
}

type CalendarRow struct {
	EmployeeID string         `json:"employee_id"`
	FullName   string         `json:"full_name"`
	Department string         `json:"department"`
	Cells      []CalendarCell `json:"cells"`
}

type CalendarViewPayload struct {
	Days []string      `json:"days"`
	Rows []CalendarRow `json:"rows"`
}

// ========================================
// SUMMARY TABLE
// ========================================

type SummaryRow struct {
	EmployeeID          string  `json:"employee_id"`
	FullName            string  `json:"full_name"`
	Department          string  `json:"department"`
	Present             int     `json:"present"`
	Absent              int     `json:"absent"`
	Leave               int     `json:"leave"`
	Late                int     `json:"late"`
	OvertimeMinutes     int     `json:"overtime_minutes"`
	WorkingDays         int     `json:"working_days"`
	AttendanceRate      float64 `json:"attendance_rate"`
	AttendanceRateLabel string  `json:"attendance_rate_label"`
}

type OrganizationSummary struct {
	EmployeeCount       int     `json:"employee_count"`
	WorkingDays         int     `json:"working_days"`
	Present             int     `json:"present"`
	Absent              int     `json:"absent"`
	Late                int     `json:"late"`
	LeaveOverrides      int     `json:"leave_overrides"`
	AttendanceRate      float64 `json:"attendance_rate"`
	AttendanceRateLabel string  `json:"attendance_rate_label"`
}

type SummaryTablePayload struct {
	Rows         []SummaryRow        `json:"rows"`
	Organization OrganizationSummary `json:"organization"`
}

// ========================================
// DEPARTMENT SERIES (chart consumers)
// ========================================

type DepartmentPoint struct {
	Department          string  `json:"department"`
	EmployeeCount       int     `json:"employee_count"`
	AttendanceRate      float64 `json:"attendance_rate"`
	AttendanceRateLabel string  `json:"attendance_rate_label"`
	LateCount           int     `json:"late_count"`
	AbsentCount         int     `json:"absent_count"`
}

type DepartmentSeriesPayload struct {
	Points []DepartmentPoint `json:"points"`
}

// ========================================
// CSV EXPORT
// ========================================

// CSVExport is the raw tabular contract handed to the file-writing
// collaborator: a fixed header followed by one row per employee.
type CSVExport struct {
	Filename string     `json:"filename"`
	Header   []string   `json:"header"`
	Rows     [][]string `json:"rows"`
}

// ========================================
// FULL REPORT
// ========================================

type AttendanceReport struct {
	Meta           Meta                    `json:"meta"`
	Calendar       CalendarViewPayload     `json:"calendar"`
	Summary        SummaryTablePayload     `json:"summary"`
	Departments    DepartmentSeriesPayload `json:"departments"`
	Warnings       []Warning               `json:"warnings"`
	IgnoredRecords int                     `json:"ignored_records"`
}
