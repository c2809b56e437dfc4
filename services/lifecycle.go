package services

import (
	"errors"

	"github.com/lephucuong-hcmut/hcmut-booking-room/models"
)

// Domain errors surfaced by lifecycle guards. Handlers map these onto HTTP
// statuses.
var (
	ErrBookingNotOwned   = errors.New("this booking belongs to another user")
	ErrBookingNotPending = errors.New("booking is not in pending state")
	ErrBookingNotInUse   = errors.New("booking is not in use")
	ErrAlreadyCancelled  = errors.New("booking is already cancelled")
	ErrWrongCheckinDate  = errors.New("can only check in on the booking date")
	ErrOutsidePeriods    = errors.New("check-in is only available during valid periods (6AM-6PM)")
	ErrNotBookedPeriod   = errors.New("can only check in during your booked periods")
)

// CheckInPolicy carries optional checks that are disabled by default.
// EnforceBookedPeriod additionally requires the current period to be among the
// booking's selected periods.
type CheckInPolicy struct {
	EnforceBookedPeriod bool
}

// ValidateCheckIn guards the PENDING -> IN_USE transition. The requester
// identity check runs first so a foreign booking is always reported as
// Forbidden, regardless of its state.
func ValidateCheckIn(booking *models.Booking, email string, clock Clock, policy CheckInPolicy) error {
	if booking.Email != email {
		return ErrBookingNotOwned
	}
	if booking.Status != models.BookingStatePending {
		return ErrBookingNotPending
	}

	now := clock.Now()
	if now.Format(DateLayout) != booking.Date {
		return ErrWrongCheckinDate
	}

	currentPeriod := CurrentPeriod(now)
	if currentPeriod == 0 {
		return ErrOutsidePeriods
	}
	if policy.EnforceBookedPeriod && !containsPeriod(booking.SelectedPeriods, currentPeriod) {
		return ErrNotBookedPeriod
	}
	return nil
}

// ValidateCheckOut guards the IN_USE -> COMPLETED transition.
func ValidateCheckOut(booking *models.Booking, email string) error {
	if booking.Email != email {
		return ErrBookingNotOwned
	}
	if booking.Status != models.BookingStateInUse {
		return ErrBookingNotInUse
	}
	return nil
}

// ValidateCancel guards the transition to CANCELLED. Any non-cancelled
// booking may be cancelled; CANCELLED is terminal.
func ValidateCancel(booking *models.Booking) error {
	if booking.Status == models.BookingStateCancelled {
		return ErrAlreadyCancelled
	}
	return nil
}

func containsPeriod(periods []int, period int) bool {
	for _, p := range periods {
		if p == period {
			return true
		}
	}
	return false
}
