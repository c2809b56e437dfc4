package services

import "time"

// The booking day is divided into twelve one-hour periods:
// period 1 is 06:00-07:00, period 12 is 17:00-18:00.
const (
	FirstPeriod   = 1
	LastPeriod    = 12
	PeriodsPerDay = 12

	DateLayout = "2006-01-02"
)

// Bangkok is the fixed service timezone (UTC+7). All booking-time rules are
// evaluated against it.
var Bangkok = time.FixedZone("ICT", 7*60*60)

// Clock supplies "now" so time-dependent rules can be pinned in tests.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now().In(Bangkok) }

func NewClock() Clock { return realClock{} }

// PeriodTimeRange converts a period number to its wall-clock hour range in
// 24-hour format. Callers must keep period within 1-12.
func PeriodTimeRange(period int) (startHour, endHour int) {
	startHour = 5 + period
	return startHour, startHour + 1
}

// CurrentPeriod returns the period covering now, or 0 when now is outside
// 06:00-18:00. Zero is a sentinel, not period zero.
func CurrentPeriod(now time.Time) int {
	hour := now.Hour()
	if hour >= 6 && hour <= 17 {
		return hour - 5
	}
	return 0
}
