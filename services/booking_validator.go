package services

import "time"

// IsValidBookingTime decides whether date plus the requested periods is
// bookable now:
//   - past dates are never bookable
//   - future dates always are
//   - for today, every requested period must start strictly after the current
//     hour and not within the next 15 minutes; one bad period rejects the
//     whole request
//
// A date that fails to parse is treated as invalid.
func IsValidBookingTime(clock Clock, date string, periods []int) bool {
	now := clock.Now()

	bookingDate, err := time.ParseInLocation(DateLayout, date, Bangkok)
	if err != nil {
		return false
	}

	today, err := time.ParseInLocation(DateLayout, now.Format(DateLayout), Bangkok)
	if err != nil {
		return false
	}

	if bookingDate.Before(today) {
		return false
	}
	if bookingDate.After(today) {
		return true
	}

	currentHour := now.Hour()
	currentMinute := now.Minute()
	for _, period := range periods {
		startHour, _ := PeriodTimeRange(period)
		// Already started, or starts in less than 15 minutes.
		if startHour <= currentHour || (currentHour == startHour-1 && currentMinute > 45) {
			return false
		}
	}
	return true
}
