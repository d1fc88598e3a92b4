package routes

import (
	"github.com/gofiber/fiber/v2"

	"shopcore/interfaces/api/handlers"
	"shopcore/interfaces/api/middleware"
)

func SetupReviewRoutes(api fiber.Router, h *handlers.Handlers, jwtSecret string) {
	reviews := api.Group("/reviews")

	// ใครก็กด helpful ได้
	reviews.Post("/:id/helpful", h.ReviewHandler.MarkHelpful)

	// เจ้าของรีวิว
	authed := reviews.Group("", middleware.Protected(jwtSecret))
	authed.Put("/:id", h.ReviewHandler.Update)
	authed.Delete("/:id", h.ReviewHandler.Delete)

	// Moderation (admin)
	admin := reviews.Group("", middleware.Protected(jwtSecret), middleware.AdminOnly())
	admin.Get("/pending", h.ReviewHandler.ListPending)
	admin.Put("/:id/approval", h.ReviewHandler.SetApproval)
}
