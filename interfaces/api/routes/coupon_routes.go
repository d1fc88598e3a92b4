package routes

import (
	"github.com/gofiber/fiber/v2"

	"shopcore/interfaces/api/handlers"
	"shopcore/interfaces/api/middleware"
)

func SetupCouponRoutes(api fiber.Router, h *handlers.Handlers, jwtSecret string) {
	coupons := api.Group("/coupons")

	// Customer ต้อง login ก่อนใช้คูปอง
	authed := coupons.Group("", middleware.Protected(jwtSecret))
	authed.Post("/validate", h.CouponHandler.Validate)
	authed.Post("/redeem", h.CouponHandler.Redeem)

	// Admin CRUD
	admin := coupons.Group("", middleware.Protected(jwtSecret), middleware.AdminOnly())
	admin.Get("/", h.CouponHandler.List)
	admin.Post("/", h.CouponHandler.Create)
	admin.Put("/:id", h.CouponHandler.Update)
	admin.Delete("/:id", h.CouponHandler.Delete)
}
