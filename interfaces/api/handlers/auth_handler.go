package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shopcore/domain/dto"
	"shopcore/domain/services"
	"shopcore/pkg/logger"
	"shopcore/pkg/utils"
)

type AuthHandler struct {
	userService         services.UserService
	verificationService services.VerificationService
}

func NewAuthHandler(userService services.UserService, verificationService services.VerificationService) *AuthHandler {
	return &AuthHandler{
		userService:         userService,
		verificationService: verificationService,
	}
}

// RequestCode ขอ verification code ทาง email
func (h *AuthHandler) RequestCode(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.RequestCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	if err := h.verificationService.RequestCode(ctx, req.Email); err != nil {
		logger.ErrorContext(ctx, "Request code failed", "error", err)
		return respondServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.MessageResponse{Message: "Verification code sent"})
}

// VerifyCode ตรวจ code ที่ user กรอก
func (h *AuthHandler) VerifyCode(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.VerifyCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	if err := h.verificationService.VerifyCode(ctx, req.Email, req.Code); err != nil {
		return respondServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.MessageResponse{Message: "Email verified"})
}

// Register สมัครสมาชิกด้วย email ที่ verify แล้ว
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	token, user, err := h.userService.Register(ctx, &req)
	if err != nil {
		logger.WarnContext(ctx, "Registration failed", "email", req.Email, "error", err)
		return respondServiceError(c, err)
	}

	return utils.CreatedResponse(c, dto.AuthResponse{
		Token: token,
		User:  dto.UserToUserResponse(user),
	})
}

// Login เข้าสู่ระบบ
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	token, user, err := h.userService.Login(ctx, &req)
	if err != nil {
		return respondServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.AuthResponse{
		Token: token,
		User:  dto.UserToUserResponse(user),
	})
}
