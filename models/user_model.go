package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID      string    `gorm:"size:20;not null;uniqueIndex" json:"user_id"`
	UserName    string    `gorm:"size:255;not null" json:"user_name"`
	Email       string    `gorm:"size:255;not null;unique" json:"email"`
	PhoneNumber string    `gorm:"size:30" json:"phone_number"`
	Password    string    `gorm:"not null" json:"-"`
	Role        string    `gorm:"size:20;not null;default:'student'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
