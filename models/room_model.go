package models

import (
	"time"

	"github.com/google/uuid"
)

// Room-level states. RoomState is informational: scheduling correctness is
// governed by booking statuses, not by this field.
const (
	RoomStateAvailable = "AVAILABLE"
	RoomStateBooked    = "BOOKED"
	RoomStateInUse     = "IN_USE"
)

type Room struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	RoomID   string    `gorm:"size:64;not null;uniqueIndex" json:"room_id"`
	Capacity int       `gorm:"not null" json:"capacity"`

	Description string `gorm:"type:text" json:"description"`
	RoomState   string `gorm:"size:20;not null;default:'AVAILABLE'" json:"room_state"`

	// Only written when SYNC_ROOM_STATE is enabled.
	CurrentReservedByUserID    *string `gorm:"size:20" json:"current_reserved_by_user_id"`
	CurrentReservedByBookingID *string `gorm:"size:20" json:"current_reserved_by_booking_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
