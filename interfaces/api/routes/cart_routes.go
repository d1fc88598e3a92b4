package routes

import (
	"github.com/gofiber/fiber/v2"

	"shopcore/interfaces/api/handlers"
	"shopcore/interfaces/api/middleware"
)

func SetupCartRoutes(api fiber.Router, h *handlers.Handlers, jwtSecret string) {
	cart := api.Group("/cart", middleware.Protected(jwtSecret))

	cart.Get("/", h.CartHandler.List)
	cart.Post("/items", h.CartHandler.Add)
	cart.Put("/items/:id", h.CartHandler.SetQuantity)
	cart.Delete("/items/:id", h.CartHandler.Remove)
	cart.Delete("/", h.CartHandler.Clear)
}
