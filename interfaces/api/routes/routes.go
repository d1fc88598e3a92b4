package routes

import (
	"github.com/gofiber/fiber/v2"

	"shopcore/interfaces/api/handlers"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers, jwtSecret string) {
	SetupHealthRoutes(app)

	// API version group
	api := app.Group("/api/v1")

	SetupAuthRoutes(api, h, jwtSecret)
	SetupUserRoutes(api, h, jwtSecret)
	SetupCategoryRoutes(api, h, jwtSecret)
	SetupProductRoutes(api, h, jwtSecret)
	SetupCartRoutes(api, h, jwtSecret)
	SetupReviewRoutes(api, h, jwtSecret)
	SetupFavoriteRoutes(api, h, jwtSecret)
	SetupCouponRoutes(api, h, jwtSecret)
}
