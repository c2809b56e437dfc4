package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lephucuong-hcmut/hcmut-booking-room/handlers"
	"github.com/lephucuong-hcmut/hcmut-booking-room/middleware"
)

func BookingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	bookings := api.Group("/bookings", middleware.Protected())
	bookings.Post("/:roomId", handlers.CreateBooking)
	bookings.Put("/:bookingId", handlers.UpdateBooking)
	bookings.Get("/room/:roomId", handlers.GetRoomBookings)
	bookings.Get("/user/:studentId", handlers.GetUserBookings)
	bookings.Get("/detail/:bookingId", handlers.GetBookingDetail)
	bookings.Get("/calendar/user", handlers.GetUserCalendar)
	bookings.Get("/profile/:email", handlers.GetUserProfile)
	bookings.Post("/cancel/:bookingId", handlers.CancelBooking)
	bookings.Post("/checkin/qr", handlers.CheckInBookingByQR)
	bookings.Post("/checkin/:bookingId", handlers.CheckInBooking)
	bookings.Post("/checkout/:bookingId", handlers.CheckOutBooking)
}
