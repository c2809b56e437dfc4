package jobs

import (
	"log"

	"github.com/lephucuong-hcmut/hcmut-booking-room/database"
	"github.com/lephucuong-hcmut/hcmut-booking-room/models"
	"github.com/lephucuong-hcmut/hcmut-booking-room/services"
)

var clock = services.NewClock()

// CancelExpiredBookings sweeps PENDING bookings whose date has fully passed
// and marks them CANCELLED. It never touches today's bookings, so a pending
// booking stays claimable for check-in until its day ends.
func CancelExpiredBookings() {
	log.Println("Running job: CancelExpiredBookings...")

	today := clock.Now().Format(services.DateLayout)

	result := database.DB.
		Model(&models.Booking{}).
		Where("status = ? AND date < ?", models.BookingStatePending, today).
		Update("status", models.BookingStateCancelled)

	if result.Error != nil {
		log.Printf("Error cancelling expired bookings: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("Cancelled %d expired booking(s).", result.RowsAffected)
	}
}
