package reconcile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/workforcehq/attendance-engine-go/internal/domain/reconcile"
)

func testResolver() *Resolver {
	return NewResolver(reconcile.DefaultConfig())
}

func workday(date time.Time) reconcile.CalendarDay {
	return reconcile.CalendarDay{Date: date}
}

func at(date time.Time, hour, min, sec int) *time.Time {
	t := time.Date(date.Year(), date.Month(), date.Day(), hour, min, sec, 0, time.UTC)
	return &t
}

var (
	monday   = time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC)
	saturday = time.Date(2024, time.January, 6, 0, 0, 0, 0, time.UTC)
)

func punchFor(date time.Time, in, out *time.Time) *reconcile.AttendancePunch {
	return &reconcile.AttendancePunch{EmployeeID: "e1", Date: date, CheckIn: in, CheckOut: out}
}

func leaveFor(date time.Time) *reconcile.LeaveRecord {
	return &reconcile.LeaveRecord{EmployeeID: "e1", StartDate: date, EndDate: date, LeaveType: "annual"}
}

func TestResolve_StatusOrder(t *testing.T) {
	r := testResolver()

	cases := []struct {
		name  string
		day   reconcile.CalendarDay
		punch *reconcile.AttendancePunch
		leave *reconcile.LeaveRecord
		want  reconcile.Status
	}{
		{
			name: "no records on a workday is absent",
			day:  workday(monday),
			want: reconcile.StatusAbsent,
		},
		{
			name: "weekend with no punch",
			day:  reconcile.CalendarDay{Date: saturday, IsWeekend: true},
			want: reconcile.StatusWeekend,
		},
		{
			name: "holiday with no punch",
			day:  reconcile.CalendarDay{Date: monday, IsHoliday: true},
			want: reconcile.StatusHoliday,
		},
		{
			name: "holiday falling on a weekend resolves to weekend",
			day:  reconcile.CalendarDay{Date: saturday, IsWeekend: true, IsHoliday: true},
			want: reconcile.StatusWeekend,
		},
		{
			name:  "leave on a weekend stays weekend",
			day:   reconcile.CalendarDay{Date: saturday, IsWeekend: true},
			leave: leaveFor(saturday),
			want:  reconcile.StatusWeekend,
		},
		{
			name:  "leave covering a workday",
			day:   workday(monday),
			leave: leaveFor(monday),
			want:  reconcile.StatusLeave,
		},
		{
			name:  "punch on a workday",
			day:   workday(monday),
			punch: punchFor(monday, at(monday, 8, 30, 0), at(monday, 17, 0, 0)),
			want:  reconcile.StatusPresent,
		},
		{
			name:  "punch on a weekend is present, not weekend",
			day:   reconcile.CalendarDay{Date: saturday, IsWeekend: true},
			punch: punchFor(saturday, at(saturday, 9, 0, 0), at(saturday, 14, 0, 0)),
			want:  reconcile.StatusPresent,
		},
		{
			name:  "punch on a holiday is present, not holiday",
			day:   reconcile.CalendarDay{Date: monday, IsHoliday: true},
			punch: punchFor(monday, at(monday, 9, 0, 0), at(monday, 17, 0, 0)),
			want:  reconcile.StatusPresent,
		},
		{
			name:  "punch beats leave",
			day:   workday(monday),
			punch: punchFor(monday, at(monday, 8, 30, 0), at(monday, 17, 0, 0)),
			leave: leaveFor(monday),
			want:  reconcile.StatusPresent,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cell := r.Resolve(c.day, c.punch, c.leave)
			assert.Equal(t, c.want, cell.Status)
		})
	}
}

func TestResolve_PunchOverridingLeaveIsFlagged(t *testing.T) {
	r := testResolver()

	cell := r.Resolve(workday(monday), punchFor(monday, at(monday, 8, 30, 0), at(monday, 17, 0, 0)), leaveFor(monday))

	assert.Equal(t, reconcile.StatusPresent, cell.Status)
	assert.True(t, cell.OverridesLeave)
}

func TestResolve_Lateness(t *testing.T) {
	r := testResolver()

	cases := []struct {
		name string
		in   *time.Time
		late bool
	}{
		{"well before cutoff", at(monday, 8, 0, 0), false},
		{"exactly on the cutoff", at(monday, 9, 15, 0), false},
		{"one second past the cutoff", at(monday, 9, 15, 1), true},
		{"one minute past the cutoff", at(monday, 9, 16, 0), true},
		{"mid morning", at(monday, 10, 45, 0), true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cell := r.Resolve(workday(monday), punchFor(monday, c.in, at(monday, 17, 0, 0)), nil)
			assert.Equal(t, c.late, cell.IsLate)
		})
	}
}

func TestResolve_CustomLateCutoff(t *testing.T) {
	cfg := reconcile.DefaultConfig()
	cfg.LateCutoff = "08:00"
	r := NewResolver(cfg)

	cell := r.Resolve(workday(monday), punchFor(monday, at(monday, 8, 30, 0), at(monday, 17, 0, 0)), nil)
	assert.True(t, cell.IsLate)
}

func TestResolve_Overtime(t *testing.T) {
	r := testResolver()

	cases := []struct {
		name string
		in   *time.Time
		out  *time.Time
		want int
	}{
		{"exactly the standard shift", at(monday, 9, 0, 0), at(monday, 17, 0, 0), 0},
		{"shorter than the shift", at(monday, 9, 0, 0), at(monday, 15, 0, 0), 0},
		{"ninety minutes over", at(monday, 9, 0, 0), at(monday, 18, 30, 0), 90},
		{"no check-out yields zero", at(monday, 9, 0, 0), nil, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cell := r.Resolve(workday(monday), punchFor(monday, c.in, c.out), nil)
			assert.Equal(t, c.want, cell.OvertimeMinutes)
		})
	}
}

func TestResolve_IncompleteRecords(t *testing.T) {
	r := testResolver()

	missingOut := r.Resolve(workday(monday), punchFor(monday, at(monday, 9, 0, 0), nil), nil)
	assert.Equal(t, reconcile.StatusPresent, missingOut.Status)
	assert.True(t, missingOut.IncompleteRecord)

	// A punch with no check-in at all still counts as present.
	missingIn := r.Resolve(workday(monday), punchFor(monday, nil, nil), nil)
	assert.Equal(t, reconcile.StatusPresent, missingIn.Status)
	assert.True(t, missingIn.IncompleteRecord)
	assert.False(t, missingIn.IsLate)
	assert.Zero(t, missingIn.OvertimeMinutes)
}

func TestResolve_Deterministic(t *testing.T) {
	r := testResolver()
	day := workday(monday)
	punch := punchFor(monday, at(monday, 9, 20, 0), at(monday, 19, 0, 0))
	leave := leaveFor(monday)

	first := r.Resolve(day, punch, leave)
	second := r.Resolve(day, punch, leave)
	assert.Equal(t, first, second)
}
