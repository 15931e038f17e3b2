package report

import (
	"context"
	"time"

	"github.com/workforcehq/attendance-engine-go/internal/domain/reconcile"
)

// The report service consumes already-final data from these providers; it
// never writes through them and never decides leave approval.

// RosterRepository supplies the employee roster, in a stable order.
type RosterRepository interface {
	ListEmployees(ctx context.Context) ([]reconcile.Employee, error)
}

// PunchRepository supplies raw attendance punches for one month.
type PunchRepository interface {
	ListPunches(ctx context.Context, month, year int) ([]reconcile.AttendancePunch, error)
}

// LeaveRepository supplies approved leave records overlapping one month.
type LeaveRepository interface {
	ListApprovedLeaves(ctx context.Context, month, year int) ([]reconcile.LeaveRecord, error)
}

// HolidayRepository supplies holiday dates for one month. The collaborator
// is optional: a failure here degrades to "no holidays", never to a failed
// report.
type HolidayRepository interface {
	ListHolidays(ctx context.Context, month, year int) ([]time.Time, error)
}
