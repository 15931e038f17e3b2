package reconcile

import (
	"fmt"
	"strings"
	"time"

	"github.com/workforcehq/attendance-engine-go/internal/pkg/validator"
)

const (
	DefaultLateCutoff           = "09:15"
	DefaultStandardShiftMinutes = 480
)

// Config carries the deployment-specific knobs of the engine. The engine
// reads explicit configuration only; it has no ambient state.
type Config struct {
	// WeekendDays is the set of weekdays that do not count as working days.
	WeekendDays map[time.Weekday]bool
	// LateCutoff is the "HH:MM" time of day after which a check-in is late.
	LateCutoff string
	// StandardShiftMinutes is the shift length beyond which worked minutes
	// count as overtime.
	StandardShiftMinutes int
}

// DefaultConfig returns the Saturday/Sunday, 09:15, 8-hour-shift defaults.
func DefaultConfig() Config {
	return Config{
		WeekendDays: map[time.Weekday]bool{
			time.Saturday: true,
			time.Sunday:   true,
		},
		LateCutoff:           DefaultLateCutoff,
		StandardShiftMinutes: DefaultStandardShiftMinutes,
	}
}

// Validate rejects configuration that would silently corrupt every lateness
// or overtime calculation. Callers must treat a failure as fatal.
func (c Config) Validate() error {
	var errs validator.ValidationErrors

	if _, err := c.lateCutoffSeconds(); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "late_cutoff",
			Message: "late_cutoff must be a valid HH:MM time",
		})
	}

	if c.StandardShiftMinutes <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "standard_shift_minutes",
			Message: "standard_shift_minutes must be greater than zero",
		})
	}

	if len(c.WeekendDays) >= 7 {
		errs = append(errs, validator.ValidationError{
			Field:   "weekend_days",
			Message: "weekend_days cannot cover the whole week",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (c Config) lateCutoffSeconds() (int, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(c.LateCutoff))
	if err != nil {
		return 0, fmt.Errorf("invalid late cutoff %q: %w", c.LateCutoff, err)
	}
	return t.Hour()*3600 + t.Minute()*60, nil
}

// LateCutoffSeconds returns the cutoff as seconds past midnight. Validate
// must have passed before this is called.
func (c Config) LateCutoffSeconds() int {
	secs, err := c.lateCutoffSeconds()
	if err != nil {
		secs, _ = Config{LateCutoff: DefaultLateCutoff}.lateCutoffSeconds()
	}
	return secs
}

// ParseWeekendDays parses a comma-separated list of weekday names, e.g.
// "saturday,sunday". Unknown names are an error.
func ParseWeekendDays(s string) (map[time.Weekday]bool, error) {
	names := map[string]time.Weekday{
		"sunday":    time.Sunday,
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
	}

	result := make(map[time.Weekday]bool)
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		day, ok := names[part]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", part)
		}
		result[day] = true
	}
	return result, nil
}
