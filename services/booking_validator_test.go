package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidBookingTime(t *testing.T) {
	// The clock is fixed to 2025-06-01 in UTC+7 unless stated otherwise.
	tests := []struct {
		name    string
		clock   Clock
		date    string
		periods []int
		want    bool
	}{
		{
			name:    "past date rejected",
			clock:   at(8, 0),
			date:    "2025-05-31",
			periods: []int{5},
			want:    false,
		},
		{
			name:    "future date always accepted",
			clock:   at(23, 59),
			date:    "2025-06-02",
			periods: []int{1},
			want:    true,
		},
		{
			name:    "today, period already started",
			clock:   at(17, 50),
			date:    "2025-06-01",
			periods: []int{8}, // starts 13:00, current hour 17
			want:    false,
		},
		{
			name:    "today, period starting within 15 minutes",
			clock:   at(5, 50),
			date:    "2025-06-01",
			periods: []int{1}, // starts 06:00
			want:    false,
		},
		{
			name:    "today, exactly 45 minutes past still accepted",
			clock:   at(9, 45),
			date:    "2025-06-01",
			periods: []int{5}, // starts 10:00
			want:    true,
		},
		{
			name:    "today, 46 minutes past rejected",
			clock:   at(9, 46),
			date:    "2025-06-01",
			periods: []int{5},
			want:    false,
		},
		{
			name:    "today, period comfortably in the future",
			clock:   at(9, 0),
			date:    "2025-06-01",
			periods: []int{5},
			want:    true,
		},
		{
			name:    "one bad period rejects the whole request",
			clock:   at(9, 0),
			date:    "2025-06-01",
			periods: []int{5, 3}, // period 3 starts 08:00, already past
			want:    false,
		},
		{
			name:    "malformed date fails closed",
			clock:   at(9, 0),
			date:    "06/01/2025",
			periods: []int{5},
			want:    false,
		},
		{
			name:    "empty date fails closed",
			clock:   at(9, 0),
			date:    "",
			periods: []int{5},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidBookingTime(tt.clock, tt.date, tt.periods))
		})
	}
}
