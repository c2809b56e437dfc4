package services

import (
	"testing"

	"github.com/lephucuong-hcmut/hcmut-booking-room/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func booking(id, status string, periods ...int) models.Booking {
	return models.Booking{
		BookingID:       id,
		RoomID:          "R1",
		Date:            "2025-06-01",
		SelectedPeriods: periods,
		Status:          status,
	}
}

func TestFirstConflict(t *testing.T) {
	t.Run("overlapping period clashes", func(t *testing.T) {
		existing := []models.Booking{booking("1000001", models.BookingStatePending, 3, 4)}

		clash := FirstConflict([]int{4, 5}, existing)
		require.NotNil(t, clash)
		assert.Equal(t, "1000001", clash.BookingID)
	})

	t.Run("disjoint periods pass", func(t *testing.T) {
		existing := []models.Booking{
			booking("1000001", models.BookingStatePending, 3, 4),
			booking("1000002", models.BookingStateInUse, 7),
		}

		assert.Nil(t, FirstConflict([]int{5, 6}, existing))
	})

	t.Run("cancelled and completed bookings never clash", func(t *testing.T) {
		existing := []models.Booking{
			booking("1000001", models.BookingStateCancelled, 4),
			booking("1000002", models.BookingStateCompleted, 5),
		}

		assert.Nil(t, FirstConflict([]int{4, 5}, existing))
	})

	t.Run("in-use clash reports the in-use booking", func(t *testing.T) {
		existing := []models.Booking{booking("1000003", models.BookingStateInUse, 2)}

		clash := FirstConflict([]int{2}, existing)
		require.NotNil(t, clash)
		assert.Equal(t, models.BookingStateInUse, clash.Status)
	})

	t.Run("no existing bookings", func(t *testing.T) {
		assert.Nil(t, FirstConflict([]int{1, 2, 3}, nil))
	})
}
