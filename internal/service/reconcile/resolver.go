package reconcile

import (
	"github.com/workforcehq/attendance-engine-go/internal/domain/reconcile"
)

// Resolver turns one (day, punch?, leave?) triple into a single DayStatus.
// Resolution is deterministic and total: the same inputs always produce the
// same cell.
type Resolver struct {
	lateCutoffSeconds    int
	standardShiftMinutes int
}

// NewResolver builds a resolver from validated configuration.
func NewResolver(cfg reconcile.Config) *Resolver {
	return &Resolver{
		lateCutoffSeconds:    cfg.LateCutoffSeconds(),
		standardShiftMinutes: cfg.StandardShiftMinutes,
	}
}

// Resolve applies the resolution order:
//
//  1. weekend/holiday with no punch -> weekend or holiday, weekend winning
//     the tie when a holiday falls on one;
//  2. punch -> present, with lateness and overtime derived, even on a day
//     off (an employee who worked a weekend is present, not "weekend");
//  3. leave covering the date -> on_leave;
//  4. otherwise -> absent.
//
// A punch that lands on a leave day stays present and is marked as a leave
// override so aggregation can surface the conflict.
func (r *Resolver) Resolve(day reconcile.CalendarDay, punch *reconcile.AttendancePunch, leave *reconcile.LeaveRecord) reconcile.DayStatus {
	cell := reconcile.DayStatus{Date: day.Date}
	if punch != nil {
		cell.EmployeeID = punch.EmployeeID
	} else if leave != nil {
		cell.EmployeeID = leave.EmployeeID
	}

	if punch == nil {
		switch {
		case day.IsWeekend:
			cell.Status = reconcile.StatusWeekend
		case day.IsHoliday:
			cell.Status = reconcile.StatusHoliday
		case leave != nil:
			cell.Status = reconcile.StatusLeave
			cell.LeaveType = leave.LeaveType
		default:
			cell.Status = reconcile.StatusAbsent
		}
		return cell
	}

	cell.Status = reconcile.StatusPresent
	cell.CheckIn = punch.CheckIn
	cell.CheckOut = punch.CheckOut
	cell.OverridesLeave = leave != nil

	if punch.CheckIn != nil {
		in := *punch.CheckIn
		secondsOfDay := in.Hour()*3600 + in.Minute()*60 + in.Second()
		cell.IsLate = secondsOfDay > r.lateCutoffSeconds

		if punch.CheckOut != nil {
			worked := int(punch.CheckOut.Sub(in).Minutes())
			if overtime := worked - r.standardShiftMinutes; overtime > 0 {
				cell.OvertimeMinutes = overtime
			}
		} else {
			cell.IncompleteRecord = true
		}
	} else {
		// Present with no check-in at all: nothing to derive from.
		cell.IncompleteRecord = true
	}

	return cell
}
