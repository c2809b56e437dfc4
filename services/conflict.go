package services

import "github.com/lephucuong-hcmut/hcmut-booking-room/models"

// FirstConflict returns the first existing active booking whose periods
// intersect the requested set, or nil when the request is clash-free.
// Periods are discrete one-hour slots, so plain set membership suffices; no
// interval merging is needed. Non-active bookings are skipped even if the
// caller forgot to filter them out.
func FirstConflict(requested []int, existing []models.Booking) *models.Booking {
	requestedSet := make(map[int]struct{}, len(requested))
	for _, p := range requested {
		requestedSet[p] = struct{}{}
	}

	for i := range existing {
		booking := &existing[i]
		if !models.IsActiveBookingState(booking.Status) {
			continue
		}
		for _, p := range booking.SelectedPeriods {
			if _, clash := requestedSet[p]; clash {
				return booking
			}
		}
	}
	return nil
}
