package handlers

import (
	"errors"
	"fmt"
	"sort"

	"github.com/gofiber/fiber/v2"
	config "github.com/lephucuong-hcmut/hcmut-booking-room/configs"
	"github.com/lephucuong-hcmut/hcmut-booking-room/database"
	"github.com/lephucuong-hcmut/hcmut-booking-room/models"
	"github.com/lephucuong-hcmut/hcmut-booking-room/notifications"
	"github.com/lephucuong-hcmut/hcmut-booking-room/services"
	"github.com/lephucuong-hcmut/hcmut-booking-room/utils"
	ws "github.com/lephucuong-hcmut/hcmut-booking-room/websocket"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var clock = services.NewClock()

var (
	errRoomNotFound    = errors.New("room not found")
	errRoomUnavailable = errors.New("room is not available for booking")
	errBookingNotFound = errors.New("booking not found")
	errPeriodConflict  = errors.New("period conflict")
)

type CreateBookingRequest struct {
	StudentID       string `json:"student_id" validate:"required"`
	StudentName     string `json:"student_name" validate:"required"`
	Purpose         string `json:"purpose"`
	SelectedPeriods []int  `json:"selected_periods" validate:"required,min=1,dive,min=1,max=12"`
	Date            string `json:"date" validate:"required,datetime=2006-01-02"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone"`
}

// UpdateBookingRequest is an explicit patch: only non-nil fields are applied.
// The booking_id itself is never reassignable.
type UpdateBookingRequest struct {
	RoomID          *string `json:"room_id"`
	StudentID       *string `json:"student_id"`
	StudentName     *string `json:"student_name"`
	Purpose         *string `json:"purpose"`
	SelectedPeriods *[]int  `json:"selected_periods"`
	Date            *string `json:"date"`
	Email           *string `json:"email"`
	Phone           *string `json:"phone"`
	Status          *string `json:"status"`
}

// CreateBooking runs the validator, then the conflict check, then persists the
// new PENDING booking with its QR payload. The room row is locked for the
// whole read-check-write sequence so two concurrent requests for the same
// room serialize instead of both passing the conflict scan.
func CreateBooking(c *fiber.Ctx) error {
	roomID := c.Params("roomId")

	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if !services.IsValidBookingTime(clock, req.Date, req.SelectedPeriods) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid booking time. Cannot book past periods or periods starting in less than 15 minutes",
		})
	}

	var booking models.Booking
	var conflictWith *models.Booking
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("room_id = ?", roomID).First(&room).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errRoomNotFound
			}
			return err
		}

		if room.RoomState != models.RoomStateAvailable {
			return errRoomUnavailable
		}

		var existing []models.Booking
		if err := tx.
			Where("room_id = ? AND date = ? AND status IN ?", roomID, req.Date,
				[]string{models.BookingStatePending, models.BookingStateInUse}).
			Find(&existing).Error; err != nil {
			return err
		}

		if clash := services.FirstConflict(req.SelectedPeriods, existing); clash != nil {
			conflictWith = clash
			return errPeriodConflict
		}

		bookingCode, err := utils.GenerateUniqueBookingCode(tx)
		if err != nil {
			return err
		}

		qrCode, err := services.GenerateQRCode(services.EncodeQRPayload(bookingCode, req.Email))
		if err != nil {
			return err
		}

		booking = models.Booking{
			BookingID:       bookingCode,
			RoomID:          roomID,
			StudentID:       req.StudentID,
			StudentName:     req.StudentName,
			Purpose:         req.Purpose,
			SelectedPeriods: req.SelectedPeriods,
			Date:            req.Date,
			Email:           req.Email,
			Phone:           req.Phone,
			Status:          models.BookingStatePending,
			QRCode:          qrCode,
		}
		return tx.Create(&booking).Error
	})

	switch {
	case err == nil:
	case errors.Is(err, errRoomNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Room not found"})
	case errors.Is(err, errRoomUnavailable):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Room is not available for booking"})
	case errors.Is(err, errPeriodConflict):
		statusText := "booked"
		if conflictWith.Status == models.BookingStateInUse {
			statusText = "in use"
		}
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": fmt.Sprintf("Room is already %s for some of the selected periods", statusText),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create booking"})
	}

	ws.BroadcastBookingEvent("created", &booking)
	go notifications.SendBookingConfirmation(
		booking.StudentName, booking.Email, booking.BookingID,
		booking.RoomID, booking.Date, booking.SelectedPeriods, booking.QRCode,
	)

	return c.Status(fiber.StatusCreated).JSON(booking)
}

func UpdateBooking(c *fiber.Ctx) error {
	bookingID := c.Params("bookingId")

	var req UpdateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	var booking models.Booking
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("booking_id = ?", bookingID).First(&booking).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errBookingNotFound
			}
			return err
		}

		if req.RoomID != nil {
			booking.RoomID = *req.RoomID
		}
		if req.StudentID != nil {
			booking.StudentID = *req.StudentID
		}
		if req.StudentName != nil {
			booking.StudentName = *req.StudentName
		}
		if req.Purpose != nil {
			booking.Purpose = *req.Purpose
		}
		if req.SelectedPeriods != nil {
			booking.SelectedPeriods = *req.SelectedPeriods
		}
		if req.Date != nil {
			booking.Date = *req.Date
		}
		if req.Email != nil {
			booking.Email = *req.Email
		}
		if req.Phone != nil {
			booking.Phone = *req.Phone
		}
		if req.Status != nil {
			booking.Status = *req.Status
		}

		return tx.Save(&booking).Error
	})

	if err != nil {
		if errors.Is(err, errBookingNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update booking"})
	}

	return c.JSON(booking)
}

func GetRoomBookings(c *fiber.Ctx) error {
	roomID := c.Params("roomId")

	var bookings []models.Booking
	if err := database.DB.Where("room_id = ?", roomID).Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(bookings)
}

func GetUserBookings(c *fiber.Ctx) error {
	studentID := c.Params("studentId")

	var bookings []models.Booking
	if err := database.DB.Where("student_id = ?", studentID).Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(bookings)
}

func GetBookingDetail(c *fiber.Ctx) error {
	bookingID := c.Params("bookingId")

	var booking models.Booking
	if err := database.DB.Where("booking_id = ?", bookingID).First(&booking).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}
	return c.JSON(booking)
}

type CalendarEvent struct {
	Date            string  `json:"date"`
	RoomID          string  `json:"room_id"`
	RoomName        string  `json:"room_name"`
	RoomState       *string `json:"room_state"`
	BookingID       string  `json:"booking_id"`
	Purpose         string  `json:"purpose"`
	SelectedPeriods []int   `json:"selected_periods"`
	StudentName     string  `json:"student_name"`
	Status          string  `json:"status"`
	Email           string  `json:"email"`
	QRCode          string  `json:"qr_code"`
}

// GetUserCalendar returns every booking of the given email, enriched with
// room details, newest date first.
func GetUserCalendar(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email query parameter is required"})
	}

	var bookings []models.Booking
	if err := database.DB.Where("email = ?", email).Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	events := make([]CalendarEvent, 0, len(bookings))
	for _, booking := range bookings {
		roomName := fmt.Sprintf("Room %s", booking.RoomID)
		var roomState *string

		var room models.Room
		if err := database.DB.Where("room_id = ?", booking.RoomID).First(&room).Error; err == nil {
			roomName = fmt.Sprintf("Room %s (Capacity: %d)", room.RoomID, room.Capacity)
			roomState = &room.RoomState
		}

		events = append(events, CalendarEvent{
			Date:            booking.Date,
			RoomID:          booking.RoomID,
			RoomName:        roomName,
			RoomState:       roomState,
			BookingID:       booking.BookingID,
			Purpose:         booking.Purpose,
			SelectedPeriods: booking.SelectedPeriods,
			StudentName:     booking.StudentName,
			Status:          booking.Status,
			Email:           booking.Email,
			QRCode:          booking.QRCode,
		})
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].Date > events[j].Date
	})

	return c.JSON(events)
}

func GetUserProfile(c *fiber.Ctx) error {
	email := c.Params("email")

	var user models.User
	if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	return c.JSON(fiber.Map{
		"user_name":    user.UserName,
		"email":        user.Email,
		"phone_number": user.PhoneNumber,
	})
}

func CancelBooking(c *fiber.Ctx) error {
	bookingID := c.Params("bookingId")

	var booking models.Booking
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("booking_id = ?", bookingID).First(&booking).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errBookingNotFound
			}
			return err
		}

		if err := services.ValidateCancel(&booking); err != nil {
			return err
		}

		booking.Status = models.BookingStateCancelled
		return tx.Save(&booking).Error
	})

	switch {
	case err == nil:
	case errors.Is(err, errBookingNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	case errors.Is(err, services.ErrAlreadyCancelled):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Booking is already cancelled"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to cancel booking"})
	}

	ws.BroadcastBookingEvent("cancelled", &booking)
	return c.JSON(booking)
}

func CheckInBooking(c *fiber.Ctx) error {
	bookingID := c.Params("bookingId")
	email := c.Query("email")
	return checkinBooking(c, bookingID, email)
}

// CheckInBookingByQR drives the same transition from a scanned QR payload.
// The payload is parsed before any store lookup.
func CheckInBookingByQR(c *fiber.Ctx) error {
	type QRRequest struct {
		QRData string `json:"qr_data" validate:"required"`
	}

	var req QRRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	bookingID, email, err := services.ParseQRPayload(req.QRData)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid QR code format"})
	}

	return checkinBooking(c, bookingID, email)
}

func checkinBooking(c *fiber.Ctx, bookingID, email string) error {
	policy := services.CheckInPolicy{
		EnforceBookedPeriod: config.ConfigBool("STRICT_CHECKIN_PERIOD"),
	}
	syncRoomState := config.ConfigBool("SYNC_ROOM_STATE")

	var booking models.Booking
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("booking_id = ?", bookingID).First(&booking).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errBookingNotFound
			}
			return err
		}

		var room models.Room
		if err := tx.Where("room_id = ?", booking.RoomID).First(&room).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errRoomNotFound
			}
			return err
		}

		if err := services.ValidateCheckIn(&booking, email, clock, policy); err != nil {
			return err
		}

		booking.Status = models.BookingStateInUse
		if err := tx.Save(&booking).Error; err != nil {
			return err
		}

		if syncRoomState {
			room.RoomState = models.RoomStateInUse
			room.CurrentReservedByUserID = &booking.StudentID
			room.CurrentReservedByBookingID = &booking.BookingID
			if err := tx.Save(&room).Error; err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return respondLifecycleError(c, err)
	}

	ws.BroadcastBookingEvent("checked_in", &booking)
	return c.JSON(booking)
}

func CheckOutBooking(c *fiber.Ctx) error {
	bookingID := c.Params("bookingId")
	email := c.Query("email")
	syncRoomState := config.ConfigBool("SYNC_ROOM_STATE")

	var booking models.Booking
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("booking_id = ?", bookingID).First(&booking).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errBookingNotFound
			}
			return err
		}

		var room models.Room
		if err := tx.Where("room_id = ?", booking.RoomID).First(&room).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errRoomNotFound
			}
			return err
		}

		if err := services.ValidateCheckOut(&booking, email); err != nil {
			return err
		}

		booking.Status = models.BookingStateCompleted
		if err := tx.Save(&booking).Error; err != nil {
			return err
		}

		if syncRoomState {
			room.RoomState = models.RoomStateAvailable
			room.CurrentReservedByUserID = nil
			room.CurrentReservedByBookingID = nil
			if err := tx.Save(&room).Error; err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return respondLifecycleError(c, err)
	}

	ws.BroadcastBookingEvent("checked_out", &booking)
	return c.JSON(booking)
}

func respondLifecycleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, errBookingNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	case errors.Is(err, errRoomNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Room not found"})
	case errors.Is(err, services.ErrBookingNotOwned):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "This booking belongs to another user"})
	case errors.Is(err, services.ErrBookingNotPending),
		errors.Is(err, services.ErrBookingNotInUse),
		errors.Is(err, services.ErrWrongCheckinDate),
		errors.Is(err, services.ErrOutsidePeriods),
		errors.Is(err, services.ErrNotBookedPeriod):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update booking"})
	}
}
