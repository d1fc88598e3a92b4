package routes

import (
	"github.com/gofiber/fiber/v2"

	"shopcore/interfaces/api/handlers"
	"shopcore/interfaces/api/middleware"
)

func SetupUserRoutes(api fiber.Router, h *handlers.Handlers, jwtSecret string) {
	users := api.Group("/users", middleware.Protected(jwtSecret))

	users.Get("/me", h.UserHandler.GetProfile)
	users.Put("/me", h.UserHandler.UpdateProfile)

	// Admin only
	users.Get("/", middleware.AdminOnly(), h.UserHandler.ListUsers)
}
