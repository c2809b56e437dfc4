package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lephucuong-hcmut/hcmut-booking-room/handlers"
	"github.com/lephucuong-hcmut/hcmut-booking-room/middleware"
)

func AuthRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/signup/student", handlers.SignupStudent)
	auth.Post("/signup/admin", handlers.SignupAdmin)
	auth.Post("/signin/student", handlers.SigninStudent)
	auth.Post("/signin/admin", handlers.SigninAdmin)

	auth.Get("/users", middleware.Protected(), middleware.AdminRequired(), handlers.ListUsers)
	auth.Delete("/users/:userId", middleware.Protected(), middleware.AdminRequired(), handlers.DeleteUser)
}
