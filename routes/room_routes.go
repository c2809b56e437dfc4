package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lephucuong-hcmut/hcmut-booking-room/handlers"
	"github.com/lephucuong-hcmut/hcmut-booking-room/middleware"
)

func RoomRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	rooms := api.Group("/rooms")
	rooms.Get("", handlers.ListRooms)
	rooms.Get("/schedules", handlers.GetRoomSchedules)

	rooms.Post("", middleware.Protected(), middleware.AdminRequired(), handlers.CreateRoom)
	rooms.Put("/:roomId", middleware.Protected(), handlers.UpdateRoom)
	rooms.Delete("/:roomId", middleware.Protected(), middleware.AdminRequired(), handlers.DeleteRoom)
}
