package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"shopcore/domain/dto"
	"shopcore/domain/services"
	"shopcore/pkg/utils"
)

type CartHandler struct {
	cartService services.CartService
}

func NewCartHandler(cartService services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// List สรุปตะกร้าของ user ที่ login อยู่
func (h *CartHandler) List(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	items, err := h.cartService.List(c.UserContext(), user.ID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.CartItemsToSummaryResponse(items))
}

// Add เพิ่มสินค้าลงตะกร้า แถวซ้ำถูกรวมอัตโนมัติ
func (h *CartHandler) Add(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.AddToCartRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	item, err := h.cartService.AddToCart(c.UserContext(), user.ID, req.ProductSizeID, req.Quantity)
	if err != nil {
		return respondServiceError(c, err)
	}

	return utils.SuccessResponse(c, dto.CartItemToCartItemResponse(item))
}

// SetQuantity แก้จำนวน quantity <= 0 คือลบรายการ
func (h *CartHandler) SetQuantity(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid cart item ID")
	}

	var req dto.SetQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	item, err := h.cartService.SetQuantity(c.UserContext(), user.ID, itemID, req.Quantity)
	if err != nil {
		return respondServiceError(c, err)
	}

	if item == nil {
		// quantity 0 ลบรายการแล้ว
		return utils.NoContentResponse(c)
	}

	return utils.SuccessResponse(c, dto.CartItemToCartItemResponse(item))
}

// Remove ลบรายการออกจากตะกร้า
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid cart item ID")
	}

	if err := h.cartService.Remove(c.UserContext(), user.ID, itemID); err != nil {
		return respondServiceError(c, err)
	}

	return utils.NoContentResponse(c)
}

// Clear ล้างตะกร้าทั้งหมด
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.cartService.Clear(c.UserContext(), user.ID); err != nil {
		return respondServiceError(c, err)
	}

	return utils.NoContentResponse(c)
}
