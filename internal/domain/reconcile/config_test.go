package reconcile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.WeekendDays[time.Saturday])
	assert.True(t, cfg.WeekendDays[time.Sunday])
	assert.False(t, cfg.WeekendDays[time.Monday])
	assert.Equal(t, "09:15", cfg.LateCutoff)
	assert.Equal(t, 480, cfg.StandardShiftMinutes)
	assert.Equal(t, 9*3600+15*60, cfg.LateCutoffSeconds())
}

func TestConfigValidate(t *testing.T) {
	allWeek := map[time.Weekday]bool{}
	for d := time.Sunday; d <= time.Saturday; d++ {
		allWeek[d] = true
	}

	cases := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"midnight cutoff", func(c *Config) { c.LateCutoff = "00:00" }, true},
		{"friday weekend", func(c *Config) {
			c.WeekendDays = map[time.Weekday]bool{time.Friday: true}
		}, true},
		{"empty cutoff", func(c *Config) { c.LateCutoff = "" }, false},
		{"cutoff without minutes", func(c *Config) { c.LateCutoff = "9" }, false},
		{"out of range cutoff", func(c *Config) { c.LateCutoff = "25:99" }, false},
		{"zero shift", func(c *Config) { c.StandardShiftMinutes = 0 }, false},
		{"negative shift", func(c *Config) { c.StandardShiftMinutes = -60 }, false},
		{"weekend covers whole week", func(c *Config) { c.WeekendDays = allWeek }, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := DefaultConfig()
			c.mutate(&cfg)

			err := cfg.Validate()
			if c.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestParseWeekendDays(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    []time.Weekday
		wantErr bool
	}{
		{"saturday and sunday", "saturday,sunday", []time.Weekday{time.Saturday, time.Sunday}, false},
		{"mixed case with spaces", " Friday , SATURDAY ", []time.Weekday{time.Friday, time.Saturday}, false},
		{"single day", "sunday", []time.Weekday{time.Sunday}, false},
		{"empty string", "", nil, false},
		{"trailing comma", "saturday,", []time.Weekday{time.Saturday}, false},
		{"unknown name", "caturday", nil, true},
		{"abbreviation rejected", "sat,sun", nil, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ParseWeekendDays(c.input)
			if c.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, len(c.want))
			for _, day := range c.want {
				assert.True(t, got[day], "expected %s in set", day)
			}
		})
	}
}
