package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	BookingStatePending   = "PENDING"
	BookingStateInUse     = "IN_USE"
	BookingStateCompleted = "COMPLETED"
	BookingStateCancelled = "CANCELLED"
)

// IsActiveBookingState reports whether a status counts toward conflict checks.
func IsActiveBookingState(status string) bool {
	return status == BookingStatePending || status == BookingStateInUse
}

type Booking struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	BookingID string    `gorm:"size:20;not null;uniqueIndex" json:"booking_id"`

	RoomID      string `gorm:"size:64;not null;index:idx_bookings_room_date" json:"room_id"`
	StudentID   string `gorm:"size:20;index" json:"student_id"`
	StudentName string `gorm:"size:255" json:"student_name"`
	Purpose     string `gorm:"type:text" json:"purpose"`

	SelectedPeriods datatypes.JSONSlice[int] `gorm:"not null" json:"selected_periods"`
	Date            string                   `gorm:"size:10;not null;index:idx_bookings_room_date" json:"date"`

	Email  string `gorm:"size:255;index" json:"email"`
	Phone  string `gorm:"size:30" json:"phone"`
	Status string `gorm:"size:20;not null;default:'PENDING'" json:"status"`

	// Base64-encoded PNG, set right after creation.
	QRCode string `gorm:"type:text" json:"qr_code"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
