package reconcile

import (
	"time"

	"github.com/workforcehq/attendance-engine-go/internal/domain/reconcile"
)

// ExpandMonth produces one CalendarDay per calendar day of the month, in
// ascending date order. Month lengths (leap February included) come from the
// calendar system, never from a table. A nil holiday set means no holidays.
func ExpandMonth(year int, month time.Month, weekendDays map[time.Weekday]bool, holidays map[string]bool) []reconcile.CalendarDay {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	// Day zero of the next month is the last day of this one.
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)

	days := make([]reconcile.CalendarDay, 0, last.Day())
	for d := 1; d <= last.Day(); d++ {
		date := first.AddDate(0, 0, d-1)
		days = append(days, reconcile.CalendarDay{
			Date:      date,
			IsWeekend: weekendDays[date.Weekday()],
			IsHoliday: holidays[date.Format(reconcile.DateLayout)],
		})
	}
	return days
}

// HolidaySet converts a list of holiday dates into the lookup form
// ExpandMonth consumes.
func HolidaySet(dates []time.Time) map[string]bool {
	if len(dates) == 0 {
		return nil
	}
	set := make(map[string]bool, len(dates))
	for _, d := range dates {
		set[d.Format(reconcile.DateLayout)] = true
	}
	return set
}
