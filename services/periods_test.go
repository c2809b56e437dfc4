package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fixedClock pins "now" for deterministic tests.
type fixedClock time.Time

func (f fixedClock) Now() time.Time { return time.Time(f) }

func at(hour, minute int) Clock {
	return fixedClock(time.Date(2025, 6, 1, hour, minute, 0, 0, Bangkok))
}

func TestPeriodTimeRange(t *testing.T) {
	tests := []struct {
		period    int
		wantStart int
		wantEnd   int
	}{
		{1, 6, 7},
		{2, 7, 8},
		{8, 13, 14},
		{12, 17, 18},
	}

	for _, tt := range tests {
		start, end := PeriodTimeRange(tt.period)
		assert.Equal(t, tt.wantStart, start, "period %d start", tt.period)
		assert.Equal(t, tt.wantEnd, end, "period %d end", tt.period)
	}
}

func TestCurrentPeriod(t *testing.T) {
	tests := []struct {
		hour int
		want int
	}{
		{0, 0},
		{5, 0},
		{6, 1},
		{12, 7},
		{17, 12},
		{18, 0},
		{23, 0},
	}

	for _, tt := range tests {
		now := time.Date(2025, 6, 1, tt.hour, 30, 0, 0, Bangkok)
		assert.Equal(t, tt.want, CurrentPeriod(now), "hour %d", tt.hour)
	}
}
