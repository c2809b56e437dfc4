package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/lephucuong-hcmut/hcmut-booking-room/models"
	"gorm.io/gorm"
)

var seededRand = rand.New(rand.NewSource(time.Now().UnixNano()))

// randomCode returns a 7-digit numeric business code.
func randomCode() string {
	return fmt.Sprintf("%07d", 1000000+seededRand.Intn(9000000))
}

// GenerateUniqueBookingCode produces a booking_id no existing booking uses.
// Ran inside the creation transaction so the uniqueness check and the insert
// see the same state.
func GenerateUniqueBookingCode(tx *gorm.DB) (string, error) {
	for {
		code := randomCode()

		var booking models.Booking
		err := tx.Where("booking_id = ?", code).First(&booking).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return code, nil
			}
			return "", err
		}
	}
}

// GenerateUniqueUserCode produces a user_id no existing user uses.
func GenerateUniqueUserCode(tx *gorm.DB) (string, error) {
	for {
		code := randomCode()

		var user models.User
		err := tx.Where("user_id = ?", code).First(&user).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return code, nil
			}
			return "", err
		}
	}
}
