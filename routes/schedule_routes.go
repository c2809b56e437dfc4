package routes

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	ws "github.com/lephucuong-hcmut/hcmut-booking-room/websocket"
)

// ScheduleRoutes exposes the live schedule feed. Clients receive a
// ScheduleEvent for every booking lifecycle change.
func ScheduleRoutes(app *fiber.App) {
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	app.Get("/ws/schedule", websocket.New(ws.ServeSchedule))
}
