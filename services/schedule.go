package services

import "github.com/lephucuong-hcmut/hcmut-booking-room/models"

// RoomSchedule is the derived 12-slot view of one room for one date.
// Status[0] covers period 1, Status[11] covers period 12.
type RoomSchedule struct {
	RoomID string   `json:"room_id"`
	Status []string `json:"status"`
}

// BuildRoomSchedule projects a room's bookings for a single date onto a
// period-status vector. PENDING marks a slot BOOKED, IN_USE marks it IN_USE;
// completed and cancelled bookings leave slots at the AVAILABLE default.
// Overlapping active bookings should not exist; if they do, later entries win.
func BuildRoomSchedule(roomID string, bookings []models.Booking) RoomSchedule {
	status := make([]string, PeriodsPerDay)
	for i := range status {
		status[i] = models.RoomStateAvailable
	}

	for _, booking := range bookings {
		var slot string
		switch booking.Status {
		case models.BookingStateInUse:
			slot = models.RoomStateInUse
		case models.BookingStatePending:
			slot = models.RoomStateBooked
		default:
			continue
		}
		for _, period := range booking.SelectedPeriods {
			if period < FirstPeriod || period > LastPeriod {
				continue
			}
			status[period-1] = slot
		}
	}

	return RoomSchedule{RoomID: roomID, Status: status}
}
