package routes

import (
	"github.com/gofiber/fiber/v2"

	"shopcore/interfaces/api/handlers"
	"shopcore/interfaces/api/middleware"
)

func SetupProductRoutes(api fiber.Router, h *handlers.Handlers, jwtSecret string) {
	products := api.Group("/products")

	// Public routes
	products.Get("/", h.ProductHandler.List)
	products.Get("/slug/:slug", h.ProductHandler.GetBySlug)
	products.Get("/:id/reviews", h.ReviewHandler.ListByProduct)

	// Customer routes
	authed := products.Group("", middleware.Protected(jwtSecret))
	authed.Post("/:id/reviews", h.ReviewHandler.Create)
	authed.Post("/:id/favorite", h.FavoriteHandler.Add)
	authed.Delete("/:id/favorite", h.FavoriteHandler.Remove)

	// Admin routes
	admin := products.Group("", middleware.Protected(jwtSecret), middleware.AdminOnly())
	admin.Get("/:id", h.ProductHandler.GetByID)
	admin.Post("/", h.ProductHandler.Create)
	admin.Put("/:id", h.ProductHandler.Update)
	admin.Delete("/:id", h.ProductHandler.Delete)

	// Variants
	admin.Post("/:id/colors", h.ProductHandler.AddColor)
	admin.Put("/colors/:colorId", h.ProductHandler.UpdateColor)
	admin.Delete("/colors/:colorId", h.ProductHandler.DeleteColor)
	admin.Post("/colors/:colorId/sizes", h.ProductHandler.AddSize)
	admin.Put("/sizes/:sizeId", h.ProductHandler.UpdateSize)
	admin.Delete("/sizes/:sizeId", h.ProductHandler.DeleteSize)

	// Images
	admin.Post("/:id/images", h.ProductHandler.UploadImage)
	admin.Delete("/images/:imageId", h.ProductHandler.DeleteImage)
}
