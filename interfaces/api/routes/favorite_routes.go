package routes

import (
	"github.com/gofiber/fiber/v2"

	"shopcore/interfaces/api/handlers"
	"shopcore/interfaces/api/middleware"
)

func SetupFavoriteRoutes(api fiber.Router, h *handlers.Handlers, jwtSecret string) {
	favorites := api.Group("/favorites", middleware.Protected(jwtSecret))

	favorites.Get("/", h.FavoriteHandler.List)
}
