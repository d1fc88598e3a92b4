package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shopcore/domain/dto"
	"shopcore/domain/services"
	"shopcore/pkg/utils"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetProfile ข้อมูลของ user ที่ login อยู่
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	profile, err := h.userService.GetProfile(c.UserContext(), user.ID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.UserToUserResponse(profile))
}

// UpdateProfile แก้ชื่อของ user ที่ login อยู่
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	updated, err := h.userService.UpdateProfile(c.UserContext(), user.ID, &req)
	if err != nil {
		return respondServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.UserToUserResponse(updated))
}

// ListUsers รายชื่อ user ทั้งหมด (admin)
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	var query dto.PaginationQuery
	if err := c.QueryParser(&query); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}
	query.Normalize()

	offset := (query.Page - 1) * query.Limit
	users, total, err := h.userService.ListUsers(c.UserContext(), offset, query.Limit)
	if err != nil {
		return respondServiceError(c, err)
	}

	return utils.PaginatedSuccessResponse(c, dto.UsersToUserResponses(users), total, query.Page, query.Limit)
}
