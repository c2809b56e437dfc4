package services

import (
	"testing"

	"github.com/lephucuong-hcmut/hcmut-booking-room/models"
	"github.com/stretchr/testify/assert"
)

func TestBuildRoomSchedule(t *testing.T) {
	t.Run("empty room is fully available", func(t *testing.T) {
		schedule := BuildRoomSchedule("R1", nil)

		assert.Equal(t, "R1", schedule.RoomID)
		assert.Len(t, schedule.Status, 12)
		for i, s := range schedule.Status {
			assert.Equal(t, models.RoomStateAvailable, s, "slot %d", i)
		}
	})

	t.Run("pending and in-use bookings mark their slots", func(t *testing.T) {
		bookings := []models.Booking{
			booking("1000001", models.BookingStatePending, 1, 2),
			booking("1000002", models.BookingStateInUse, 5),
		}

		schedule := BuildRoomSchedule("R1", bookings)

		want := []string{
			models.RoomStateBooked,
			models.RoomStateBooked,
			models.RoomStateAvailable,
			models.RoomStateAvailable,
			models.RoomStateInUse,
			models.RoomStateAvailable,
			models.RoomStateAvailable,
			models.RoomStateAvailable,
			models.RoomStateAvailable,
			models.RoomStateAvailable,
			models.RoomStateAvailable,
			models.RoomStateAvailable,
		}
		assert.Equal(t, want, schedule.Status)
	})

	t.Run("terminal bookings leave slots available", func(t *testing.T) {
		bookings := []models.Booking{
			booking("1000001", models.BookingStateCompleted, 3),
			booking("1000002", models.BookingStateCancelled, 4),
		}

		schedule := BuildRoomSchedule("R1", bookings)
		assert.Equal(t, models.RoomStateAvailable, schedule.Status[2])
		assert.Equal(t, models.RoomStateAvailable, schedule.Status[3])
	})

	t.Run("out-of-range periods are ignored", func(t *testing.T) {
		bookings := []models.Booking{
			booking("1000001", models.BookingStatePending, 0, 13, 6),
		}

		schedule := BuildRoomSchedule("R1", bookings)
		assert.Equal(t, models.RoomStateBooked, schedule.Status[5])
		for i, s := range schedule.Status {
			if i == 5 {
				continue
			}
			assert.Equal(t, models.RoomStateAvailable, s, "slot %d", i)
		}
	})
}
