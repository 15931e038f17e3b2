package reconcile

import "time"

// WarningCode classifies a data-quality anomaly found while building a report.
// Warnings ride alongside the result; they never abort it.
type WarningCode string

const (
	WarnMalformedRecord    WarningCode = "malformed_record"
	WarnOrphanedRecord     WarningCode = "orphaned_record"
	WarnDuplicatePunch     WarningCode = "duplicate_punch"
	WarnIncompletePunch    WarningCode = "incomplete_punch"
	WarnPunchOnLeave       WarningCode = "punch_on_leave"
	WarnMissingHolidayData WarningCode = "missing_holiday_data"
)

type Warning struct {
	Code       WarningCode
	EmployeeID string
	Date       string
	Detail     string
}

// NewWarning builds a warning for one record. A zero date is rendered empty.
func NewWarning(code WarningCode, employeeID string, date time.Time, detail string) Warning {
	w := Warning{Code: code, EmployeeID: employeeID, Detail: detail}
	if !date.IsZero() {
		w.Date = date.Format(DateLayout)
	}
	return w
}
