package services

import (
	"testing"

	"github.com/lephucuong-hcmut/hcmut-booking-room/models"
	"github.com/stretchr/testify/assert"
)

func pendingBooking() *models.Booking {
	return &models.Booking{
		BookingID:       "1000001",
		RoomID:          "R1",
		Date:            "2025-06-01",
		SelectedPeriods: []int{3, 4},
		Email:           "student@hcmut.edu.vn",
		Status:          models.BookingStatePending,
	}
}

func TestValidateCheckIn(t *testing.T) {
	relaxed := CheckInPolicy{}
	strict := CheckInPolicy{EnforceBookedPeriod: true}

	t.Run("happy path", func(t *testing.T) {
		b := pendingBooking()
		err := ValidateCheckIn(b, "student@hcmut.edu.vn", at(9, 0), relaxed)
		assert.NoError(t, err)
	})

	t.Run("email mismatch is forbidden before anything else", func(t *testing.T) {
		b := pendingBooking()
		b.Status = models.BookingStateCompleted // would also fail the status check
		err := ValidateCheckIn(b, "other@hcmut.edu.vn", at(9, 0), relaxed)
		assert.ErrorIs(t, err, ErrBookingNotOwned)
	})

	t.Run("non-pending booking rejected", func(t *testing.T) {
		b := pendingBooking()
		b.Status = models.BookingStateInUse
		err := ValidateCheckIn(b, b.Email, at(9, 0), relaxed)
		assert.ErrorIs(t, err, ErrBookingNotPending)
	})

	t.Run("wrong date rejected", func(t *testing.T) {
		b := pendingBooking()
		b.Date = "2025-06-02"
		err := ValidateCheckIn(b, b.Email, at(9, 0), relaxed)
		assert.ErrorIs(t, err, ErrWrongCheckinDate)
	})

	t.Run("outside operating hours rejected", func(t *testing.T) {
		b := pendingBooking()
		err := ValidateCheckIn(b, b.Email, at(5, 30), relaxed)
		assert.ErrorIs(t, err, ErrOutsidePeriods)

		err = ValidateCheckIn(b, b.Email, at(18, 0), relaxed)
		assert.ErrorIs(t, err, ErrOutsidePeriods)
	})

	t.Run("relaxed policy allows check-in outside booked periods", func(t *testing.T) {
		b := pendingBooking() // booked periods 3,4 = 08:00-10:00
		err := ValidateCheckIn(b, b.Email, at(15, 0), relaxed)
		assert.NoError(t, err)
	})

	t.Run("strict policy requires current period to be booked", func(t *testing.T) {
		b := pendingBooking()
		err := ValidateCheckIn(b, b.Email, at(15, 0), strict)
		assert.ErrorIs(t, err, ErrNotBookedPeriod)

		// 08:30 falls in period 3, which is booked.
		err = ValidateCheckIn(b, b.Email, at(8, 30), strict)
		assert.NoError(t, err)
	})
}

func TestValidateCheckOut(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		b := pendingBooking()
		b.Status = models.BookingStateInUse
		assert.NoError(t, ValidateCheckOut(b, b.Email))
	})

	t.Run("email mismatch forbidden", func(t *testing.T) {
		b := pendingBooking()
		b.Status = models.BookingStateInUse
		assert.ErrorIs(t, ValidateCheckOut(b, "other@hcmut.edu.vn"), ErrBookingNotOwned)
	})

	t.Run("not in use rejected", func(t *testing.T) {
		b := pendingBooking()
		assert.ErrorIs(t, ValidateCheckOut(b, b.Email), ErrBookingNotInUse)
	})
}

func TestValidateCancel(t *testing.T) {
	t.Run("pending booking cancellable", func(t *testing.T) {
		assert.NoError(t, ValidateCancel(pendingBooking()))
	})

	t.Run("in-use and completed bookings cancellable", func(t *testing.T) {
		b := pendingBooking()
		b.Status = models.BookingStateInUse
		assert.NoError(t, ValidateCancel(b))

		b.Status = models.BookingStateCompleted
		assert.NoError(t, ValidateCancel(b))
	})

	t.Run("double cancel rejected", func(t *testing.T) {
		b := pendingBooking()
		b.Status = models.BookingStateCancelled
		assert.ErrorIs(t, ValidateCancel(b), ErrAlreadyCancelled)
	})
}
