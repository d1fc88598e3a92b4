package routes

import (
	"github.com/gofiber/fiber/v2"

	"shopcore/interfaces/api/handlers"
	"shopcore/interfaces/api/middleware"
)

func SetupCategoryRoutes(api fiber.Router, h *handlers.Handlers, jwtSecret string) {
	categories := api.Group("/categories")

	// Public routes
	categories.Get("/", h.CategoryHandler.List)
	categories.Get("/slug/:slug", h.CategoryHandler.GetBySlug)

	// Admin routes
	admin := categories.Group("", middleware.Protected(jwtSecret), middleware.AdminOnly())
	admin.Post("/", h.CategoryHandler.Create)
	admin.Put("/:id", h.CategoryHandler.Update)
	admin.Delete("/:id", h.CategoryHandler.Delete)
}
