package routes

import (
	"github.com/gofiber/fiber/v2"

	"shopcore/interfaces/api/handlers"
)

func SetupAuthRoutes(api fiber.Router, h *handlers.Handlers, jwtSecret string) {
	auth := api.Group("/auth")

	// สมัครสมาชิกต้องผ่าน request-code -> verify-code -> register ตามลำดับ
	auth.Post("/request-code", h.AuthHandler.RequestCode)
	auth.Post("/verify-code", h.AuthHandler.VerifyCode)
	auth.Post("/register", h.AuthHandler.Register)
	auth.Post("/login", h.AuthHandler.Login)
}
