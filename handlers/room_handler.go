package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lephucuong-hcmut/hcmut-booking-room/database"
	"github.com/lephucuong-hcmut/hcmut-booking-room/models"
	"github.com/lephucuong-hcmut/hcmut-booking-room/services"
)

type CreateRoomRequest struct {
	RoomID      string `json:"room_id" validate:"required"`
	Capacity    int    `json:"capacity" validate:"required,min=1"`
	Description string `json:"description"`
}

// UpdateRoomRequest is an explicit patch: only non-nil fields are applied.
// RoomID is present solely so attempts to change it can be rejected.
type UpdateRoomRequest struct {
	RoomID      *string `json:"room_id"`
	Capacity    *int    `json:"capacity"`
	Description *string `json:"description"`
	RoomState   *string `json:"room_state"`
}

func CreateRoom(c *fiber.Ctx) error {
	var req CreateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var existing models.Room
	if err := database.DB.Where("room_id = ?", req.RoomID).First(&existing).Error; err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Room ID already exists"})
	}

	room := models.Room{
		RoomID:      req.RoomID,
		Capacity:    req.Capacity,
		Description: req.Description,
		RoomState:   models.RoomStateAvailable,
	}
	if err := database.DB.Create(&room).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create room"})
	}

	return c.Status(fiber.StatusCreated).JSON(room)
}

func ListRooms(c *fiber.Ctx) error {
	var rooms []models.Room
	if err := database.DB.Find(&rooms).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(rooms)
}

// GetRoomSchedules derives the 12-slot status vector for every room on the
// requested date from its active bookings.
func GetRoomSchedules(c *fiber.Ctx) error {
	date := c.Query("date")
	if date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "date query parameter is required"})
	}

	var rooms []models.Room
	if err := database.DB.Find(&rooms).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	schedules := make([]services.RoomSchedule, 0, len(rooms))
	for _, room := range rooms {
		var bookings []models.Booking
		err := database.DB.
			Where("room_id = ? AND date = ? AND status IN ?", room.RoomID, date,
				[]string{models.BookingStatePending, models.BookingStateInUse}).
			Find(&bookings).Error
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
		}

		schedules = append(schedules, services.BuildRoomSchedule(room.RoomID, bookings))
	}

	return c.JSON(schedules)
}

func UpdateRoom(c *fiber.Ctx) error {
	roomID := c.Params("roomId")

	var room models.Room
	if err := database.DB.Where("room_id = ?", roomID).First(&room).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Room not found"})
	}

	var req UpdateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if req.RoomID != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot update room_id"})
	}

	if req.Capacity != nil {
		room.Capacity = *req.Capacity
	}
	if req.Description != nil {
		room.Description = *req.Description
	}
	if req.RoomState != nil {
		room.RoomState = *req.RoomState
	}

	if err := database.DB.Save(&room).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update room"})
	}

	return c.JSON(room)
}

// DeleteRoom removes a room unless it is in use or still has future pending
// bookings. Bookings reference rooms weakly, so this is policy, not a
// structural constraint.
func DeleteRoom(c *fiber.Ctx) error {
	roomID := c.Params("roomId")

	var room models.Room
	if err := database.DB.Where("room_id = ?", roomID).First(&room).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Room not found"})
	}

	if room.RoomState == models.RoomStateInUse {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Cannot delete room that is in use"})
	}

	today := clock.Now().Format(services.DateLayout)
	var futureCount int64
	err := database.DB.Model(&models.Booking{}).
		Where("room_id = ? AND date >= ? AND status = ?", roomID, today, models.BookingStatePending).
		Count(&futureCount).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	if futureCount > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Cannot delete room with future bookings"})
	}

	if err := database.DB.Delete(&room).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete room"})
	}

	return c.JSON(fiber.Map{"message": "Room deleted successfully"})
}
